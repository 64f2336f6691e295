package service

import (
	"encoding/json"
	"fmt"
	"strings"

	mcp "github.com/metoro-io/mcp-golang"
)

// endpointMapping maps search keywords to a REST collection path
type endpointMapping struct {
	keywords []string
	endpoint string
}

// endpointMappings covers resources without a dedicated query tool. Checked
// in order, first keyword hit wins.
var endpointMappings = []endpointMapping{
	// Circuits
	{keywords: []string{"circuit type", "circuit types"}, endpoint: "circuits/circuit-types/"},
	{keywords: []string{"circuit", "circuits"}, endpoint: "circuits/circuits/"},
	{keywords: []string{"provider", "providers"}, endpoint: "circuits/providers/"},
	// DCIM
	{keywords: []string{"cable", "cables"}, endpoint: "dcim/cables/"},
	{keywords: []string{"console", "console port", "console connection"}, endpoint: "dcim/console-ports/"},
	{keywords: []string{"power port", "power connection"}, endpoint: "dcim/power-ports/"},
	{keywords: []string{"power panel", "power panels"}, endpoint: "dcim/power-panels/"},
	{keywords: []string{"power feed", "power feeds"}, endpoint: "dcim/power-feeds/"},
	{keywords: []string{"rack", "racks"}, endpoint: "dcim/racks/"},
	{keywords: []string{"site", "sites"}, endpoint: "dcim/sites/"},
	{keywords: []string{"region", "regions"}, endpoint: "dcim/regions/"},
	// IPAM
	{keywords: []string{"vlan", "vlans"}, endpoint: "ipam/vlans/"},
	{keywords: []string{"vrf", "vrfs"}, endpoint: "ipam/vrfs/"},
	{keywords: []string{"aggregate", "aggregates"}, endpoint: "ipam/aggregates/"},
	// Tenancy
	{keywords: []string{"tenant group", "tenant groups"}, endpoint: "tenancy/tenant-groups/"},
	{keywords: []string{"tenant", "tenants"}, endpoint: "tenancy/tenants/"},
	// Users
	{keywords: []string{"user", "users"}, endpoint: "users/users/"},
	{keywords: []string{"group", "groups"}, endpoint: "users/groups/"},
	// Virtualization
	{keywords: []string{"virtual machine", "vm", "vms"}, endpoint: "virtualization/virtual-machines/"},
	{keywords: []string{"cluster", "clusters"}, endpoint: "virtualization/clusters/"},
	// Extras
	{keywords: []string{"webhook", "webhooks"}, endpoint: "extras/webhooks/"},
	{keywords: []string{"custom field", "custom fields"}, endpoint: "extras/custom-fields/"},
	{keywords: []string{"export template", "export templates"}, endpoint: "extras/export-templates/"},
	{keywords: []string{"config context", "config contexts"}, endpoint: "extras/config-contexts/"},
	{keywords: []string{"role", "roles"}, endpoint: "extras/roles/"},
	{keywords: []string{"status", "statuses"}, endpoint: "extras/statuses/"},
}

// restFallback queries resources that have no dedicated tool through the
// REST API
func (s *NautobotMCPService) restFallback(args RestFallbackArgs) (*mcp.ToolResponse, error) {
	var response *mcp.ToolResponse
	err := s.timeAndLogTool("query_rest_api_fallback", args, func() error {
		response = mcp.NewToolResponse(mcp.NewTextContent(s.runRestFallback(args.SearchDescription, args.ResourceHint)))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return response, nil
}

// resolveEndpoint turns the hint or the search description into a REST path
func resolveEndpoint(searchDescription, resourceHint string) string {
	if resourceHint != "" {
		endpoint := strings.Trim(resourceHint, "/")
		if !strings.HasPrefix(endpoint, "api/") {
			return "api/" + endpoint + "/"
		}
		return endpoint + "/"
	}

	description := strings.ToLower(searchDescription)
	for _, mapping := range endpointMappings {
		for _, keyword := range mapping.keywords {
			if strings.Contains(description, keyword) {
				return "api/" + mapping.endpoint
			}
		}
	}
	return ""
}

func (s *NautobotMCPService) runRestFallback(searchDescription, resourceHint string) string {
	endpoint := resolveEndpoint(searchDescription, resourceHint)
	if endpoint == "" {
		return noEndpointResponse(searchDescription)
	}

	s.logger.Info("Executing REST API fallback: %s", endpoint)
	result, err := s.client.RESTGet("/" + endpoint)
	if err != nil {
		var b strings.Builder
		fmt.Fprintf(&b, "Error querying REST API endpoint `%s`: %v\n\n", endpoint, err)
		b.WriteString("This could mean:\n")
		b.WriteString("1. The endpoint doesn't exist\n")
		b.WriteString("2. You don't have permission to access it\n")
		b.WriteString("3. The Nautobot instance is not responding\n\n")
		b.WriteString("Try checking the API documentation at /api/docs/")
		return b.String()
	}

	if len(result) == 0 {
		return fmt.Sprintf("No data returned from API endpoint `%s`", endpoint)
	}

	if items, ok := result["results"].([]interface{}); ok {
		return formatPaginatedResults(endpoint, result, items)
	}

	resultJSON, marshalErr := json.MarshalIndent(result, "", "  ")
	if marshalErr != nil {
		resultJSON = []byte(fmt.Sprintf("%v", result))
	}
	return fmt.Sprintf("Result from REST API endpoint `%s`:\n\n```json\n%s\n```", endpoint, resultJSON)
}

func noEndpointResponse(searchDescription string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "I couldn't find a specific API endpoint for '%s'.\n\n", strings.ToLower(searchDescription))
	b.WriteString("Available REST API categories include:\n")
	b.WriteString("- **Circuits**: circuit-types, circuits, providers\n")
	b.WriteString("- **DCIM**: cables, racks, power-panels, console-ports\n")
	b.WriteString("- **IPAM**: vlans, vrfs, aggregates\n")
	b.WriteString("- **Tenancy**: tenants, tenant-groups\n")
	b.WriteString("- **Virtualization**: virtual-machines, clusters\n")
	b.WriteString("- **Users**: users, groups\n")
	b.WriteString("- **Extras**: webhooks, custom-fields, config-contexts\n\n")
	b.WriteString("You can:\n")
	b.WriteString("1. Be more specific about what you're looking for\n")
	b.WriteString("2. Provide a `resource_hint` like 'circuits/circuit-types'\n")
	b.WriteString("3. Check the Nautobot API docs at /api/docs/\n")
	return b.String()
}

// formatPaginatedResults renders the first ten items of a paginated REST
// collection with their most useful fields
func formatPaginatedResults(endpoint string, result map[string]interface{}, items []interface{}) string {
	totalCount := len(items)
	if count, ok := result["count"].(float64); ok {
		totalCount = int(count)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d items from REST API endpoint `%s`:\n\n", totalCount, endpoint)

	shown := items
	if len(shown) > 10 {
		shown = shown[:10]
	}

	for i, raw := range shown {
		item, ok := raw.(map[string]interface{})
		if !ok {
			fmt.Fprintf(&b, "**%d. Item %d**\n\n", i+1, i+1)
			continue
		}

		fmt.Fprintf(&b, "**%d. %s**\n", i+1, displayName(item, i))

		keyFields := []string{"description", "status", "type", "location", "role"}
		var details []string
		for _, field := range keyFields {
			value, ok := item[field]
			if !ok || value == nil {
				continue
			}
			if nested, ok := value.(map[string]interface{}); ok {
				if name, ok := nested["name"]; ok {
					value = name
				}
			}
			if str := fmt.Sprintf("%v", value); str != "" {
				details = append(details, fmt.Sprintf("%s: %s", field, str))
			}
		}
		if len(details) > 0 {
			fmt.Fprintf(&b, "   %s\n", strings.Join(details, " | "))
		}
		b.WriteString("\n")
	}

	if len(items) > 10 {
		fmt.Fprintf(&b, "... and %d more items.\n\n", len(items)-10)
	}

	fmt.Fprintf(&b, "**API Endpoint**: `%s`\n", endpoint)
	fmt.Fprintf(&b, "**Total Count**: %d\n", totalCount)
	return b.String()
}

func displayName(item map[string]interface{}, index int) string {
	for _, field := range []string{"name", "display", "slug"} {
		if value, ok := item[field].(string); ok && value != "" {
			return value
		}
	}
	if id, ok := item["id"]; ok {
		return fmt.Sprintf("Item %v", id)
	}
	return fmt.Sprintf("Item %d", index+1)
}
