package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/exec"
	"strings"

	"github.com/nerdfunk-net/nautobot-mcp/internal/config"
)

// MCPRequest represents a request to the MCP server
type MCPRequest struct {
	Jsonrpc string      `json:"jsonrpc"`
	ID      int         `json:"id"`
	Method  string      `json:"method"`
	Params  interface{} `json:"params,omitempty"`
}

// MCPResponse represents a response from the MCP server
type MCPResponse struct {
	Jsonrpc string      `json:"jsonrpc"`
	ID      int         `json:"id"`
	Result  interface{} `json:"result,omitempty"`
	Error   interface{} `json:"error,omitempty"`
}

// ToolCallParams represents parameters for calling a tool
type ToolCallParams struct {
	Name      string                 `json:"name"`
	Arguments map[string]interface{} `json:"arguments,omitempty"`
}

func main() {
	fmt.Println("🚀 Nautobot MCP Test Client")
	fmt.Println("===========================")

	// Load config to verify setup
	cfg := config.LoadConfig()
	if cfg.Nautobot.Token == "" {
		fmt.Println("❌ No API token found. Make sure your .env file is configured.")
		return
	}

	fmt.Printf("✅ Connected to: %s\n", cfg.Nautobot.URL)
	fmt.Printf("🔒 TLS Skip Verify: %v\n\n", cfg.Nautobot.InsecureSkipVerify)

	// Start the MCP server process
	cmd := exec.Command("./bin/nautobot-mcp-server")
	cmd.Env = os.Environ() // Pass through environment variables

	stdin, err := cmd.StdinPipe()
	if err != nil {
		log.Fatalf("Failed to create stdin pipe: %v", err)
	}

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		log.Fatalf("Failed to create stdout pipe: %v", err)
	}

	if err := cmd.Start(); err != nil {
		log.Fatalf("Failed to start MCP server: %v", err)
	}
	defer func() {
		err := cmd.Process.Kill()
		if err != nil {
			log.Printf("Failed to kill MCP server process: %v", err)
		}
	}()

	fmt.Println("📡 MCP Server started. Available commands:")
	fmt.Println()

	// Test available tools
	testCommands := []struct {
		name        string
		description string
		tool        string
		args        map[string]interface{}
	}{
		{
			name:        "show_all_devices",
			description: "List all devices",
			tool:        "query_devices_dynamic",
			args: map[string]interface{}{
				"prompt": "show all devices",
			},
		},
		{
			name:        "device_by_name",
			description: "Show one device with its primary IP",
			tool:        "query_devices_dynamic",
			args: map[string]interface{}{
				"variable_name":   "name",
				"variable_value":  []string{"router1"},
				"get_primary_ip4": true,
				"get_role":        true,
			},
		},
		{
			name:        "devices_fuzzy",
			description: "Devices whose name contains 'core'",
			tool:        "query_devices_dynamic",
			args: map[string]interface{}{
				"variable_name":  "name__ic",
				"variable_value": []string{"core"},
			},
		},
		{
			name:        "device_with_interfaces",
			description: "Device router1 with its Ethernet interfaces",
			tool:        "query_devices_dynamic",
			args: map[string]interface{}{
				"variable_name":      "name",
				"variable_value":     []string{"router1"},
				"get_interfaces":     true,
				"interface_variable": "name__isw",
				"interface_value":    []string{"Ethernet"},
			},
		},
		{
			name:        "interfaces_on_device",
			description: "Interfaces on device router1",
			tool:        "query_interfaces_dynamic",
			args: map[string]interface{}{
				"prompt": "interfaces on router1",
			},
		},
		{
			name:        "ip_address_lookup",
			description: "Look up an IP address and its assignments",
			tool:        "query_ipam_dynamic",
			args: map[string]interface{}{
				"prompt": "show ip address 192.168.1.1",
			},
		},
		{
			name:        "prefixes_within",
			description: "Prefixes within 10.0.0.0/8",
			tool:        "query_prefixes_dynamic",
			args: map[string]interface{}{
				"variable_name":  "within_include",
				"variable_value": []string{"10.0.0.0/8"},
			},
		},
		{
			name:        "all_locations",
			description: "List all locations with their ids",
			tool:        "query_locations_dynamic",
			args: map[string]interface{}{
				"show_all": true,
				"get_id":   true,
			},
		},
		{
			name:        "vlans_via_rest",
			description: "VLANs through the REST fallback",
			tool:        "query_rest_api_fallback",
			args: map[string]interface{}{
				"search_description": "vlans",
			},
		},
		{
			name:        "help",
			description: "Ask which tool finds devices",
			tool:        "help_find_query",
			args: map[string]interface{}{
				"search_intent": "find devices",
			},
		},
		{
			name:        "onboard_device",
			description: "Onboard a device (adjust IP/location/secrets first!)",
			tool:        "onboard_device",
			args: map[string]interface{}{
				"ip_address":    "192.168.1.1",
				"location":      "datacenter1",
				"secret_groups": "default",
			},
		},
		{
			name:        "cache_stats",
			description: "Show ID cache statistics",
			tool:        "get_cache_stats",
			args:        map[string]interface{}{},
		},
		{
			name:        "query_analytics",
			description: "Show recent tool call history",
			tool:        "get_query_analytics",
			args: map[string]interface{}{
				"limit": 10,
			},
		},
	}

	// Print available commands
	for i, cmd := range testCommands {
		fmt.Printf("%d. %s - %s\n", i+1, cmd.name, cmd.description)
	}
	fmt.Println("0. Exit")
	fmt.Println()

	// Interactive mode
	scanner := bufio.NewScanner(os.Stdin)
	requestID := 1

	for {
		fmt.Print("Enter command number (or 'help' for list): ")
		if !scanner.Scan() {
			break
		}

		input := strings.TrimSpace(scanner.Text())

		if input == "0" || input == "exit" || input == "quit" {
			fmt.Println("👋 Goodbye!")
			break
		}

		if input == "help" {
			for i, cmd := range testCommands {
				fmt.Printf("%d. %s - %s\n", i+1, cmd.name, cmd.description)
			}
			fmt.Println("0. Exit")
			continue
		}

		// Parse command number
		var cmdIndex int
		if _, err := fmt.Sscanf(input, "%d", &cmdIndex); err != nil {
			fmt.Println("❌ Invalid input. Enter a number or 'help'.")
			continue
		}

		if cmdIndex < 1 || cmdIndex > len(testCommands) {
			fmt.Println("❌ Invalid command number.")
			continue
		}

		selectedCmd := testCommands[cmdIndex-1]

		// Send MCP request
		fmt.Printf("🔄 Executing: %s...\n", selectedCmd.description)

		request := MCPRequest{
			Jsonrpc: "2.0",
			ID:      requestID,
			Method:  "tools/call",
			Params: ToolCallParams{
				Name:      selectedCmd.tool,
				Arguments: selectedCmd.args,
			},
		}
		requestID++

		// Send request
		requestBytes, _ := json.Marshal(request)
		if _, err := stdin.Write(append(requestBytes, '\n')); err != nil {
			fmt.Printf("❌ Failed to send request: %v\n", err)
			continue
		}

		// Read response
		responseScanner := bufio.NewScanner(stdout)
		responseScanner.Split(func(data []byte, atEOF bool) (advance int, token []byte, err error) {
			// Look for complete JSON objects
			start := 0
			for i := 0; i < len(data); i++ {
				if data[i] == '{' {
					start = i
					// Find matching closing brace
					braceCount := 1
					for j := i + 1; j < len(data); j++ {
						if data[j] == '{' {
							braceCount++
						} else if data[j] == '}' {
							braceCount--
							if braceCount == 0 {
								// Found complete JSON object
								return j + 1, data[start : j+1], nil
							}
						}
					}
				}
			}
			// Need more data
			return 0, nil, nil
		})

		if responseScanner.Scan() {
			responseText := responseScanner.Text()

			// Try to parse as JSON-RPC response
			var response MCPResponse
			if err := json.Unmarshal([]byte(responseText), &response); err != nil {
				fmt.Printf("❌ Failed to parse response: %v\n", err)
				fmt.Printf("Raw response: %s\n", responseText)
				continue
			}

			if response.Error != nil {
				fmt.Printf("❌ Error: %v\n", response.Error)
			} else {
				fmt.Printf("✅ Success!\n")
				// Pretty print the result
				resultBytes, _ := json.MarshalIndent(response.Result, "", "  ")
				fmt.Printf("📊 Result:\n%s\n", string(resultBytes))
			}
		} else {
			fmt.Println("❌ No response received")
		}

		fmt.Println()
	}
}
