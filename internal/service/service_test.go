package service

import (
	"fmt"
	"strings"
	"testing"

	"github.com/nerdfunk-net/nautobot-mcp/internal/logger"
	"github.com/nerdfunk-net/nautobot-mcp/internal/query"
)

func boolPtr(v bool) *bool {
	return &v
}

func TestArgsToMap(t *testing.T) {
	args := DeviceQueryArgs{
		Prompt:        "show device router1",
		VariableName:  "name",
		VariableValue: []string{"router1"},
		GetRole:       boolPtr(true),
		GetStatus:     boolPtr(false),
	}

	argMap, err := argsToMap(args)
	if err != nil {
		t.Fatalf("argsToMap: %v", err)
	}

	if argMap["prompt"] != "show device router1" {
		t.Errorf("prompt = %v", argMap["prompt"])
	}
	if argMap["variable_name"] != "name" {
		t.Errorf("variable_name = %v", argMap["variable_name"])
	}
	if argMap["get_role"] != true {
		t.Errorf("get_role = %v, want true", argMap["get_role"])
	}
	if argMap["get_status"] != false {
		t.Errorf("get_status = %v, want false (explicitly set)", argMap["get_status"])
	}

	// Unset selector flags must be absent, not false, so template defaults
	// still apply.
	if _, ok := argMap["get_location"]; ok {
		t.Error("unset flag get_location leaked into the argument map")
	}
	if _, ok := argMap["show_all"]; ok {
		t.Error("unset show_all leaked into the argument map")
	}

	// Lists survive as []interface{}; the executor normalizes them.
	values, ok := argMap["variable_value"].([]interface{})
	if !ok || len(values) != 1 || values[0] != "router1" {
		t.Errorf("variable_value = %v", argMap["variable_value"])
	}
}

func TestArgsToMapCustomFieldDataFlag(t *testing.T) {
	args := DeviceQueryArgs{
		ShowAll:               true,
		GetRawCustomFieldData: boolPtr(true),
	}

	argMap, err := argsToMap(args)
	if err != nil {
		t.Fatalf("argsToMap: %v", err)
	}
	if argMap["show_all"] != true {
		t.Errorf("show_all = %v", argMap["show_all"])
	}
	if argMap["get__custom_field_data"] != true {
		t.Errorf("get__custom_field_data = %v", argMap["get__custom_field_data"])
	}
}

func TestRenderQueryError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"validation", query.NewValidationError("bad input"), "Error: bad input"},
		{"size limit", query.NewSizeLimitError("too big"), "Error: too big"},
		{"backend", query.NewBackendError("upstream down"), "Error executing query: upstream down"},
		{"resolution", query.NewResolutionError("Location 'x' not found"), "Location 'x' not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			response, err := renderQueryError(tt.err)
			if err != nil {
				t.Fatalf("renderQueryError: %v", err)
			}
			text := response.Content[0].TextContent.Text
			if text != tt.want {
				t.Errorf("rendered = %q, want %q", text, tt.want)
			}
		})
	}

	t.Run("non engine errors propagate", func(t *testing.T) {
		plain := fmt.Errorf("marshal failed")
		response, err := renderQueryError(plain)
		if response != nil || err != plain {
			t.Errorf("renderQueryError(plain) = (%v, %v), want passthrough", response, err)
		}
	})
}

func TestResolveEndpoint(t *testing.T) {
	tests := []struct {
		name        string
		description string
		hint        string
		want        string
	}{
		{"hint without api prefix", "", "circuits/circuit-types", "api/circuits/circuit-types/"},
		{"hint with api prefix", "", "api/ipam/vlans", "api/ipam/vlans/"},
		{"hint with surrounding slashes", "", "/dcim/racks/", "api/dcim/racks/"},
		{"keyword match", "show me all vlans", "", "api/ipam/vlans/"},
		{"multi word keyword", "list the circuit types", "", "api/circuits/circuit-types/"},
		{"circuit alone maps to circuits", "find a circuit", "", "api/circuits/circuits/"},
		{"case folded", "Show All VLANs", "", "api/ipam/vlans/"},
		{"no match", "quantum flux capacitors", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := resolveEndpoint(tt.description, tt.hint); got != tt.want {
				t.Errorf("resolveEndpoint(%q, %q) = %q, want %q", tt.description, tt.hint, got, tt.want)
			}
		})
	}
}

func TestFormatPaginatedResults(t *testing.T) {
	item := func(name, status string) interface{} {
		return map[string]interface{}{
			"name":   name,
			"status": map[string]interface{}{"name": status},
		}
	}

	t.Run("small collection", func(t *testing.T) {
		items := []interface{}{item("vlan100", "Active"), item("vlan200", "Reserved")}
		result := map[string]interface{}{"count": float64(2), "results": items}

		text := formatPaginatedResults("api/ipam/vlans/", result, items)
		if !strings.Contains(text, "Found 2 items from REST API endpoint `api/ipam/vlans/`") {
			t.Errorf("missing header:\n%s", text)
		}
		if !strings.Contains(text, "**1. vlan100**") || !strings.Contains(text, "**2. vlan200**") {
			t.Errorf("missing item names:\n%s", text)
		}
		if !strings.Contains(text, "status: Active") {
			t.Errorf("nested status name not flattened:\n%s", text)
		}
		if strings.Contains(text, "more items") {
			t.Errorf("truncation note on a small collection:\n%s", text)
		}
	})

	t.Run("truncates at ten items", func(t *testing.T) {
		var items []interface{}
		for i := 0; i < 14; i++ {
			items = append(items, item(fmt.Sprintf("vlan%d", i), "Active"))
		}
		result := map[string]interface{}{"count": float64(40), "results": items}

		text := formatPaginatedResults("api/ipam/vlans/", result, items)
		if !strings.Contains(text, "Found 40 items") {
			t.Errorf("count field ignored:\n%s", text)
		}
		if !strings.Contains(text, "... and 4 more items.") {
			t.Errorf("missing truncation note:\n%s", text)
		}
		if strings.Contains(text, "**11.") {
			t.Errorf("more than ten items rendered:\n%s", text)
		}
		if !strings.Contains(text, "**Total Count**: 40") {
			t.Errorf("missing footer:\n%s", text)
		}
	})

	t.Run("display name fallbacks", func(t *testing.T) {
		items := []interface{}{
			map[string]interface{}{"display": "shown-by-display"},
			map[string]interface{}{"slug": "shown-by-slug"},
			map[string]interface{}{"id": "abc-123"},
			map[string]interface{}{},
		}
		text := formatPaginatedResults("api/x/", map[string]interface{}{}, items)
		for _, want := range []string{"shown-by-display", "shown-by-slug", "Item abc-123", "**4. Item 4**"} {
			if !strings.Contains(text, want) {
				t.Errorf("missing %q:\n%s", want, text)
			}
		}
	})
}

func TestSummarizeDevices(t *testing.T) {
	t.Run("empty result", func(t *testing.T) {
		text := summarizeDevices(&query.Result{Collection: "devices"})
		if text != "No devices found." {
			t.Errorf("text = %q", text)
		}
	})

	t.Run("selected fields only", func(t *testing.T) {
		result := &query.Result{
			Collection: "devices",
			Records: []interface{}{
				map[string]interface{}{
					"hostname": "router1",
					"role":     map[string]interface{}{"name": "firewall"},
					"location": map[string]interface{}{"name": "datacenter1"},
					"primary_ip4": map[string]interface{}{
						"address": "192.168.1.1/24",
					},
				},
				map[string]interface{}{"hostname": "router2"},
			},
		}

		text := summarizeDevices(result)
		if !strings.Contains(text, "Found 2 devices:") {
			t.Errorf("missing header:\n%s", text)
		}
		if !strings.Contains(text, "- router1 (role: firewall, location: datacenter1, primary_ip4: 192.168.1.1/24)") {
			t.Errorf("missing detailed line:\n%s", text)
		}
		if !strings.Contains(text, "- router2\n") {
			t.Errorf("device without extra fields must render bare:\n%s", text)
		}
	})
}

func TestSummarizeIPAddresses(t *testing.T) {
	result := &query.Result{
		Collection: "ip_addresses",
		Records: []interface{}{
			map[string]interface{}{
				"address":  "10.0.0.1/32",
				"dns_name": "gw.example.com",
				"parent":   map[string]interface{}{"prefix": "10.0.0.0/24"},
			},
		},
	}

	text := summarizeIPAddresses(result)
	if !strings.Contains(text, "Found 1 IP addresses:") {
		t.Errorf("missing header:\n%s", text)
	}
	if !strings.Contains(text, "- 10.0.0.1/32 (dns_name: gw.example.com, parent: 10.0.0.0/24)") {
		t.Errorf("missing detail line:\n%s", text)
	}
}

func newHelpService(t *testing.T) *NautobotMCPService {
	t.Helper()
	log := logger.New()
	registry, err := query.NewRegistry(log)
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	return &NautobotMCPService{registry: registry, logger: log}
}

func TestRecommendTools(t *testing.T) {
	s := newHelpService(t)

	t.Run("single match", func(t *testing.T) {
		text := s.recommendTools("I want to find a webhook... no, a tag")
		if !strings.Contains(text, "query_tags_dynamic") {
			t.Errorf("missing tag tool:\n%s", text)
		}
	})

	t.Run("device intent recommends device tool first", func(t *testing.T) {
		text := s.recommendTools("find my core router")
		if !strings.Contains(text, "**1. query_devices_dynamic**") {
			t.Errorf("device tool not first:\n%s", text)
		}
		if !strings.Contains(text, "💡 **Recommended**: Use `query_devices_dynamic`") {
			t.Errorf("missing single-match recommendation:\n%s", text)
		}
	})

	t.Run("multiple matches pick the first as most likely", func(t *testing.T) {
		text := s.recommendTools("ip addresses of devices")
		if !strings.Contains(text, "query_devices_dynamic") || !strings.Contains(text, "query_ipam_dynamic") {
			t.Errorf("expected both tools:\n%s", text)
		}
		if !strings.Contains(text, "💡 **Most likely**: Use `query_devices_dynamic`") {
			t.Errorf("missing multi-match hint:\n%s", text)
		}
	})

	t.Run("onboarding intent", func(t *testing.T) {
		text := s.recommendTools("onboard a new device")
		if !strings.Contains(text, "onboard_device") {
			t.Errorf("missing onboarding tool:\n%s", text)
		}
	})

	t.Run("no match lists every query tool", func(t *testing.T) {
		text := s.recommendTools("xyzzy")
		if !strings.Contains(text, "I couldn't find a specific match") {
			t.Errorf("missing fallback intro:\n%s", text)
		}
		for _, tool := range []string{
			"query_devices_dynamic", "query_interfaces_dynamic", "query_ipam_dynamic",
			"query_prefixes_dynamic", "query_locations_dynamic", "query_statuses_dynamic",
		} {
			if !strings.Contains(text, tool) {
				t.Errorf("fallback listing missing %s:\n%s", tool, text)
			}
		}
	})
}
