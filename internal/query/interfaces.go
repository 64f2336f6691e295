package query

import (
	"regexp"

	"github.com/nerdfunk-net/nautobot-mcp/internal/logger"
)

const interfaceQueryTemplate = `
        query Interfaces(
            $get_id: Boolean = false,
            $get_name: Boolean = true,
            $get_enabled: Boolean = false,
            $get_label: Boolean = false,
            $get_type: Boolean = false,
            $get_status: Boolean = false,
            $get_role: Boolean = false,
            $get_description: Boolean = false,
            $get_device: Boolean = false,
            $get_tags: Boolean = false,
            $get_interface_redundancy_groups: Boolean = false,
            $variable_value: [String]
        ) {
            interfaces (enter_variable_name_here: $variable_value) {
                id @include(if: $get_id)
                name @include(if: $get_name)
                description @include(if: $get_description)
                enabled @include(if: $get_enabled)
                label @include(if: $get_label)
                status @include(if: $get_status) {
                    id @include(if: $get_id)
                    name
                }
                role @include(if: $get_role) {
                    id @include(if: $get_id)
                    name
                }
                tags @include(if: $get_tags) {
                    id @include(if: $get_id)
                    name
                }
                type @include(if: $get_type)
                interface_redundancy_groups @include(if: $get_interface_redundancy_groups) {
                    id
                    name
                }
                device @include(if: $get_device) {
                    id @include(if: $get_id)
                    name
                }
            }
        }`

var interfaceAliases = map[string]string{
	"interface":      "name",
	"interface_name": "name",
	"port":           "name",
	"port_name":      "name",
	"desc":           "description",
	"summary":        "description",
	"active":         "enabled",
	"state":          "status",
	"interface_type": "type",
	"port_type":      "type",
	"device_name":    "device",
	"host":           "device",
	"hostname":       "device",
	"tag":            "tags",
}

var interfaceValidFields = []string{
	"name", "description", "enabled", "label", "type", "status",
	"role", "device", "tags", "interface_redundancy_groups",
	"id", "url", "display",
}

var interfaceEnablers = map[string][]string{
	"name":        {"get_name"},
	"interface":   {"get_name"},
	"port":        {"get_name"},
	"description": {"get_description"},
	"desc":        {"get_description"},
	"enabled":     {"get_enabled"},
	"active":      {"get_enabled"},
	"disabled":    {"get_enabled"},
	"inactive":    {"get_enabled"},
	"status":      {"get_status"},
	"state":       {"get_status"},
	"role":        {"get_role"},
	"type":        {"get_type"},
	"label":       {"get_label"},
	"device":      {"get_device"},
	"host":        {"get_device"},
	"tag":         {"get_tags"},
	"redundancy":  {"get_interface_redundancy_groups"},
}

func newInterfaceDefinition(log *logger.Logger) (*Definition, error) {
	tmpl, err := NewTemplate("interfaces", interfaceQueryTemplate)
	if err != nil {
		return nil, err
	}

	fields := make(map[string]string, len(interfaceAliases)+len(interfaceValidFields))
	for _, f := range interfaceValidFields {
		fields[f] = f
	}
	for alias, canonical := range interfaceAliases {
		fields[alias] = canonical
	}

	parser := &promptParser{
		showAllPhrases: []string{
			"show all interfaces", "list all interfaces", "get all interfaces",
			"all interfaces", "show interfaces",
		},
		showAllExact: []string{"interfaces"},
		fixed: []fixedFilter{
			{phrases: []string{"active interfaces", "enabled interfaces"}, field: "enabled", values: []string{"true"}},
			{phrases: []string{"disabled interfaces", "inactive interfaces"}, field: "enabled", values: []string{"false"}},
		},
		patterns: []promptPattern{
			{re: regexp.MustCompile(`interfaces\s+(?:on|for|of)\s+(\w+)`), kind: patternFixedField, field: "device"},
			{re: regexp.MustCompile(`interfaces?\s+(?:with|having)\s+(\w+)\s+` + operatorAlternation + `\s+(.+)`), kind: patternFieldOperatorValue},
			{re: regexp.MustCompile(`interfaces?\s+(?:with|by|having)\s+(\w+)\s+(\w+)`), kind: patternFieldValue},
			{re: regexp.MustCompile(`show\s+(?:interface\s+|port\s+)?(\w+)(?:\s+(\w+))?`), kind: patternValueOrFieldValue, field: "name"},
		},
		fields:   fields,
		enablers: interfaceEnablers,
		defaults: []string{"get_name", "get_device", "get_status"},
		bulk: []string{
			"get_name", "get_description", "get_enabled", "get_label",
			"get_type", "get_status", "get_role", "get_device", "get_tags",
		},
		customFieldFlags: []string{"get_custom_field_data", "get__custom_field_data"},
	}

	return &Definition{
		ToolName:      "query_interfaces_dynamic",
		Entity:        "interface",
		Description:   "Query interfaces with dynamic filtering and field mapping. Supports natural language prompts and custom field queries.",
		Template:      tmpl,
		Fields:        NewFieldTable("interface", "name", interfaceValidFields, interfaceAliases, log),
		BooleanFields: map[string]struct{}{"enabled": {}},
		Parse:         parser.parse,
	}, nil
}
