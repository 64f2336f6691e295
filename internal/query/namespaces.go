package query

import (
	"regexp"

	"github.com/nerdfunk-net/nautobot-mcp/internal/logger"
)

const namespaceQueryTemplate = `
    query Namespaces(
        $get_id: Boolean = false,
        $get_description: Boolean = false,
        $get_location: Boolean = false,
        $get_tags: Boolean = false,
        $variable_value: [String],
        )
    {
      namespaces (enter_variable_name_here: $variable_value)
      {
        id @include(if: $get_id)
        name
        description @include(if: $get_description)
        location @include(if: $get_location) {
            id @include(if: $get_id)
            name
        }
        tags @include(if: $get_tags) {
            id @include(if: $get_id)
            name
        }
      }
    }`

var namespaceAliases = map[string]string{
	"namespace":      "name",
	"namespace_name": "name",
	"ns":             "name",
	"space":          "name",
	"desc":           "description",
	"summary":        "description",
	"note":           "description",
	"comment":        "description",
	"site":           "location",
	"datacenter":     "location",
	"facility":       "location",
	"tag":            "tags",
	"label":          "tags",
	"labels":         "tags",
}

var namespaceValidFields = []string{
	"name", "description", "location", "tags", "created", "custom_field_data",
}

func newNamespaceDefinition(log *logger.Logger) (*Definition, error) {
	tmpl, err := NewTemplate("namespaces", namespaceQueryTemplate)
	if err != nil {
		return nil, err
	}

	parser := &promptParser{
		showAllPhrases: []string{
			"show all namespaces", "list all namespaces", "get all namespaces",
		},
		showAllExact: []string{"namespaces", "all namespaces"},
		patterns: []promptPattern{
			{re: regexp.MustCompile(`namespaces?\s+(?:with|having)\s+(\w+)\s+` + operatorAlternation + `\s+(.+)`), kind: patternFieldOperatorValue},
			{re: regexp.MustCompile(`namespace\s+["']?([^"'\s]+)`), kind: patternFixedField, field: "name"},
			{re: regexp.MustCompile(`named?\s+["']?([^"'\s]+)`), kind: patternFixedField, field: "name"},
			{re: regexp.MustCompile(`with\s+name\s+["']?([^"'\s]+)`), kind: patternFixedField, field: "name"},
			{re: regexp.MustCompile(`called\s+["']?([^"'\s]+)`), kind: patternFixedField, field: "name"},
			{re: regexp.MustCompile(`(?:in|at)\s+location\s+["']?([^"'\s]+)`), kind: patternFixedField, field: "location"},
			{re: regexp.MustCompile(`location\s+["']?([^"'\s]+)`), kind: patternFixedField, field: "location"},
		},
		fields: namespaceAliases,
		enablers: map[string][]string{
			"description": {"get_description"},
			"location":    {"get_location"},
			"tag":         {"get_tags"},
		},
		bulk: []string{"get_id", "get_description", "get_location", "get_tags"},
	}

	return &Definition{
		ToolName:    "query_namespaces_dynamic",
		Entity:      "namespace",
		Description: "Query namespaces with dynamic filtering by name, description or location. Maps common aliases (ns, space → name).",
		Template:    tmpl,
		Fields:      NewFieldTable("namespace", "name", namespaceValidFields, namespaceAliases, log),
		Parse:       parser.parse,
	}, nil
}
