package service

import (
	"fmt"
	"strings"

	mcp "github.com/metoro-io/mcp-golang"
)

// toolRecommendation maps a set of intent keywords to one query tool
type toolRecommendation struct {
	keywords    []string
	tool        string
	description string
	examples    []string
}

// toolRecommendations is checked in order; every entry whose keywords appear
// in the search intent is included in the answer
var toolRecommendations = []toolRecommendation{
	{
		keywords:    []string{"device", "devices", "router", "switch", "server", "host", "hostname"},
		tool:        "query_devices_dynamic",
		description: "Use this to find devices, routers, switches, servers, or hosts",
		examples: []string{
			"show device router1",
			"devices in location datacenter1",
			"devices with role firewall",
		},
	},
	{
		keywords:    []string{"interface", "interfaces", "port", "ports", "ethernet"},
		tool:        "query_interfaces_dynamic",
		description: "Use this to find network interfaces, ports, or ethernet connections",
		examples: []string{
			"show all interfaces",
			"interfaces on device router1",
			"enabled interfaces",
		},
	},
	{
		keywords:    []string{"ip", "address", "addresses", "network", "subnet", "prefix"},
		tool:        "query_ipam_dynamic",
		description: "Use this to find IP addresses, networks, or subnets",
		examples: []string{
			"show ip address 192.168.1.1",
			"ip addresses with dns_name server",
			"addresses in prefix 10.0.0.0/8",
		},
	},
	{
		keywords:    []string{"prefix", "prefixes", "cidr", "range"},
		tool:        "query_prefixes_dynamic",
		description: "Use this to find network prefixes or CIDR blocks",
		examples: []string{
			"show prefix 10.0.0.0/8",
			"prefixes within 172.16.0.0/12",
			"prefixes with length 24",
		},
	},
	{
		keywords:    []string{"location", "locations", "site", "sites", "datacenter", "facility"},
		tool:        "query_locations_dynamic",
		description: "Use this to find locations, sites, or datacenters",
		examples: []string{
			"show location datacenter1",
			"locations with status active",
			"sites in region west",
		},
	},
	{
		keywords:    []string{"device type", "device types", "model", "models", "hardware"},
		tool:        "query_device_types_dynamic",
		description: "Use this to find device types, models, or hardware information",
		examples: []string{
			"show all device types",
			"device types with model c9300",
			"models from manufacturer cisco",
		},
	},
	{
		keywords:    []string{"manufacturer", "manufacturers", "vendor", "vendors", "make", "brand"},
		tool:        "query_manufacturers_dynamic",
		description: "Use this to find manufacturers, vendors, or brands",
		examples: []string{
			"show all manufacturers",
			"manufacturers with name cisco",
			"vendors contains hp",
		},
	},
	{
		keywords:    []string{"tag", "tags", "label", "labels"},
		tool:        "query_tags_dynamic",
		description: "Use this to find tags or labels",
		examples: []string{
			"show all tags",
			"tags with name production",
			"tags with description server",
		},
	},
	{
		keywords:    []string{"namespace", "namespaces", "tenant", "tenants"},
		tool:        "query_namespaces_dynamic",
		description: "Use this to find namespaces or tenants",
		examples: []string{
			"show namespace Global",
			"namespaces with description production",
			"show all namespaces",
		},
	},
	{
		keywords:    []string{"secret", "secrets", "secret group", "secrets group", "auth group", "credential"},
		tool:        "query_secrets_groups_dynamic",
		description: "Use this to find secrets groups, authentication groups, or credential groups",
		examples: []string{
			"show secrets group production",
			"secret group with name test",
			"show all secrets groups",
		},
	},
	{
		keywords:    []string{"onboard", "onboarding", "add device", "new device", "create device"},
		tool:        "onboard_device",
		description: "Use this to onboard a new network device to Nautobot",
		examples: []string{
			"onboard device 192.168.1.1 in location datacenter1",
			"add new device with IP 10.0.0.1",
			"create device at location site1",
		},
	},
}

// helpFindQuery recommends query tools matching a described intent
func (s *NautobotMCPService) helpFindQuery(args HelpFindQueryArgs) (*mcp.ToolResponse, error) {
	var response *mcp.ToolResponse
	err := s.timeAndLogTool("help_find_query", args, func() error {
		response = mcp.NewToolResponse(mcp.NewTextContent(s.recommendTools(args.SearchIntent)))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return response, nil
}

func (s *NautobotMCPService) recommendTools(searchIntent string) string {
	intent := strings.ToLower(searchIntent)

	var matches []toolRecommendation
	for _, rec := range toolRecommendations {
		for _, keyword := range rec.keywords {
			if strings.Contains(intent, keyword) {
				matches = append(matches, rec)
				break
			}
		}
	}

	var b strings.Builder
	if len(matches) == 0 {
		b.WriteString("I couldn't find a specific match for your search. Here are all available query tools:\n\n")
		for _, def := range s.registry.All() {
			fmt.Fprintf(&b, "**%s**\n", def.ToolName)
			fmt.Fprintf(&b, "  %s\n\n", def.Description)
		}
		b.WriteString("You can also describe what you're looking for more specifically, like:\n")
		b.WriteString("- 'find devices' → query_devices_dynamic\n")
		b.WriteString("- 'show interfaces' → query_interfaces_dynamic\n")
		b.WriteString("- 'get IP addresses' → query_ipam_dynamic\n")
		return b.String()
	}

	fmt.Fprintf(&b, "Based on your search for '%s', here are the recommended tools:\n\n", searchIntent)
	for i, rec := range matches {
		fmt.Fprintf(&b, "**%d. %s**\n", i+1, rec.tool)
		fmt.Fprintf(&b, "   %s\n", rec.description)
		b.WriteString("   Examples:\n")
		for _, example := range rec.examples {
			fmt.Fprintf(&b, "   - \"%s\"\n", example)
		}
		b.WriteString("\n")
	}

	if len(matches) == 1 {
		fmt.Fprintf(&b, "💡 **Recommended**: Use `%s` for your query.", matches[0].tool)
	} else {
		fmt.Fprintf(&b, "💡 **Most likely**: Use `%s` if unsure.", matches[0].tool)
	}
	return b.String()
}
