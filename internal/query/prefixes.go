package query

import (
	"regexp"

	"github.com/nerdfunk-net/nautobot-mcp/internal/logger"
)

const prefixQueryTemplate = `
    query Prefixes(
    $get_id: Boolean = false,
    $get_prefix_length: Boolean = true,
    $get_ip_version: Boolean = true,
    $get_broadcast: Boolean = true,
    $get_description: Boolean = true,
    $get_parent: Boolean = true,
    $get_status: Boolean = true,
    $get_namespace: Boolean = true,
    $get_tags: Boolean = true,
    $get_vlan: Boolean = true,
    $get_location: Boolean = true,
    $get_vrf_assignments: Boolean = true,
    $get_custom_field_data: Boolean = true,
    $variable_value: [String],
    ) {
    prefixes (enter_variable_name_here: $variable_value) {
        id @include(if: $get_id)
        prefix
        ip_version @include(if: $get_ip_version)
        prefix_length @include(if: $get_prefix_length)
        broadcast @include(if: $get_broadcast)
        description @include(if: $get_description)
        _custom_field_data @include(if: $get_custom_field_data)
        status @include(if: $get_status) {
        id @include(if: $get_id)
        name
        }
        namespace @include(if: $get_namespace) {
        id @include(if: $get_id)
        name
        }
        tags @include(if: $get_tags) {
        id @include(if: $get_id)
        name
        }
        vlan @include(if: $get_vlan) {
        id @include(if: $get_id)
        vid
        vlan_group {
            id
        }
        name
        }
        parent @include(if: $get_parent) {
        id @include(if: $get_id)
        prefix
        prefix_length
        parent {
            id
        }
        }
        location @include(if: $get_location) {
        id @include(if: $get_id)
        name
        }
        vrf_assignments @include(if: $get_vrf_assignments) {
        id @include(if: $get_id)
        vrf {
            id
        }
        }
    }
    }`

var prefixAliases = map[string]string{
	"network": "prefix",
	"subnet":  "prefix",
	"site":    "location",
	"tag":     "tags",
	"vrf":     "vrf_assignments__vrf",
}

var prefixValidFields = []string{
	"prefix", "prefix_length", "within", "within_include", "description",
	"location", "status", "namespace", "tags", "vlan",
	"vrf_assignments__vrf", "parent", "broadcast", "ip_version",
}

var prefixEnablers = map[string][]string{
	"prefix":         {"get_prefix_length", "get_ip_version"},
	"network":        {"get_prefix_length", "get_ip_version"},
	"subnet":         {"get_prefix_length", "get_ip_version"},
	"prefix_length":  {"get_prefix_length"},
	"within":         {"get_parent"},
	"within_include": {"get_parent"},
	"description":    {"get_description"},
	"location":       {"get_location"},
	"status":         {"get_status"},
	"namespace":      {"get_namespace"},
	"tags":           {"get_tags"},
	"vlan":           {"get_vlan"},
	"vrf":            {"get_vrf_assignments"},
	"parent":         {"get_parent"},
	"broadcast":      {"get_broadcast"},
}

func newPrefixDefinition(log *logger.Logger) (*Definition, error) {
	tmpl, err := NewTemplate("prefixes", prefixQueryTemplate)
	if err != nil {
		return nil, err
	}

	fields := make(map[string]string, len(prefixAliases)+len(prefixValidFields))
	for _, f := range prefixValidFields {
		fields[f] = f
	}
	for alias, canonical := range prefixAliases {
		fields[alias] = canonical
	}

	parser := &promptParser{
		showAllPhrases: []string{
			"show all prefixes", "list all prefixes", "get all prefixes",
		},
		showAllExact: []string{"all prefixes", "prefixes"},
		patterns: []promptPattern{
			{re: regexp.MustCompile(`(?:show|get|find)\s+prefix\s+(\S+)`), kind: patternFixedField, field: "prefix"},
			{re: regexp.MustCompile(`(?:with|having)\s+prefix_length\s+(\d+)`), kind: patternFixedField, field: "prefix_length"},
			{re: regexp.MustCompile(`(?:prefixes?\s+)?within_include\s+(\d+\.\d+\.\d+\.\d+/\d+)`), kind: patternFixedField, field: "within_include"},
			{re: regexp.MustCompile(`(?:prefixes?\s+)?within\s+(\d+\.\d+\.\d+\.\d+/\d+)`), kind: patternFixedField, field: "within"},
			{re: regexp.MustCompile(`prefixes?\s+(?:with|having)\s+(\w+)\s+` + operatorAlternation + `\s+(.+)`), kind: patternFieldOperatorValue},
			{re: regexp.MustCompile(`prefixes?\s+(?:with|in|at|by)\s+(\w+)\s+(\w+)`), kind: patternFieldValue},
			{re: regexp.MustCompile(`(?:in|at)\s+location\s+(\w+)`), kind: patternFixedField, field: "location"},
			{re: regexp.MustCompile(`(?:with|having)\s+status\s+(\w+)`), kind: patternFixedField, field: "status"},
			{re: regexp.MustCompile(`show\s+(\w+)\s+(\w+)`), kind: patternFieldValue},
		},
		fields:           fields,
		enablers:         prefixEnablers,
		customFieldFlags: []string{"get_custom_field_data"},
	}

	return &Definition{
		ToolName:    "query_prefixes_dynamic",
		Entity:      "prefix",
		Description: "Query prefixes with dynamic filtering by network, prefix length, location, status and more. Supports 'within' and 'within_include' containment filters.",
		Template:    tmpl,
		Fields:      NewFieldTable("prefix", "prefix", prefixValidFields, prefixAliases, log),
		Parse:       parser.parse,
	}, nil
}
