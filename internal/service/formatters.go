package service

import (
	"fmt"
	"strings"

	"github.com/nerdfunk-net/nautobot-mcp/internal/query"
)

// nestedName unwraps the {"name": ...} objects GraphQL returns for related
// fields; plain strings pass through
func nestedName(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case map[string]interface{}:
		if name, ok := v["name"].(string); ok {
			return name
		}
	}
	return ""
}

// summarizeDevices renders one line per device from the fields the query
// actually selected. The full JSON payload follows the summary in the tool
// response.
func summarizeDevices(result *query.Result) string {
	if len(result.Records) == 0 {
		return "No devices found."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d devices:\n", len(result.Records))
	for _, raw := range result.Records {
		record, ok := raw.(map[string]interface{})
		if !ok {
			continue
		}

		name := nestedName(record["hostname"])
		if name == "" {
			name = nestedName(record["name"])
		}
		if name == "" {
			name = "(unnamed)"
		}

		var details []string
		for _, field := range []string{"role", "location", "status", "device_type", "platform"} {
			if text := nestedName(record[field]); text != "" {
				details = append(details, fmt.Sprintf("%s: %s", field, text))
			}
		}
		if ip, ok := record["primary_ip4"].(map[string]interface{}); ok {
			if addr, ok := ip["address"].(string); ok && addr != "" {
				details = append(details, fmt.Sprintf("primary_ip4: %s", addr))
			}
		}

		if len(details) > 0 {
			fmt.Fprintf(&b, "- %s (%s)\n", name, strings.Join(details, ", "))
		} else {
			fmt.Fprintf(&b, "- %s\n", name)
		}
	}
	return b.String()
}

// summarizeIPAddresses renders one line per address
func summarizeIPAddresses(result *query.Result) string {
	if len(result.Records) == 0 {
		return "No IP addresses found."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d IP addresses:\n", len(result.Records))
	for _, raw := range result.Records {
		record, ok := raw.(map[string]interface{})
		if !ok {
			continue
		}

		address, _ := record["address"].(string)
		if address == "" {
			address = "(no address selected)"
		}

		var details []string
		if dnsName, ok := record["dns_name"].(string); ok && dnsName != "" {
			details = append(details, fmt.Sprintf("dns_name: %s", dnsName))
		}
		for _, field := range []string{"type", "status", "parent"} {
			value := record[field]
			text := nestedName(value)
			if text == "" {
				if nested, ok := value.(map[string]interface{}); ok {
					if prefix, ok := nested["prefix"].(string); ok {
						text = prefix
					}
				}
			}
			if text != "" {
				details = append(details, fmt.Sprintf("%s: %s", field, text))
			}
		}

		if len(details) > 0 {
			fmt.Fprintf(&b, "- %s (%s)\n", address, strings.Join(details, ", "))
		} else {
			fmt.Fprintf(&b, "- %s\n", address)
		}
	}
	return b.String()
}
