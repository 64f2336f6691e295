package query

import (
	"regexp"

	"github.com/nerdfunk-net/nautobot-mcp/internal/logger"
)

const statusQueryTemplate = `
    query Statuses (
        $get_id: Boolean = false,
        $get_name: Boolean = true,
        $get_description: Boolean = false,
        $get_content_types: Boolean = true,
        $variable_value: [String],
    ){
    statuses (enter_variable_name_here: $variable_value) {
        id @include(if: $get_id)
        name @include(if: $get_name)
        description @include(if: $get_description)
        content_types @include(if: $get_content_types)  {
        id
            model
        }
    }
    }`

var statusAliases = map[string]string{
	"status":      "name",
	"status_name": "name",
	"state":       "name",
	"desc":        "description",
	"summary":     "description",
}

var statusValidFields = []string{
	"name", "description", "content_types", "id",
}

func newStatusDefinition(log *logger.Logger) (*Definition, error) {
	tmpl, err := NewTemplate("statuses", statusQueryTemplate)
	if err != nil {
		return nil, err
	}

	parser := &promptParser{
		showAllPhrases: []string{
			"show all statuses", "list all statuses", "get all statuses",
		},
		showAllExact: []string{"statuses", "all statuses"},
		patterns: []promptPattern{
			{re: regexp.MustCompile(`status(?:es)?\s+(?:with\s+)?(name|description)\s+` + operatorAlternation + `\s+(.+)`), kind: patternFieldOperatorValue},
			{re: regexp.MustCompile(`status(?:es)?\s+(?:with\s+)?name\s+["']?([^"']+)`), kind: patternFixedField, field: "name"},
			{re: regexp.MustCompile(`status(?:es)?\s+(?:with\s+)?description\s+["']?([^"']+)`), kind: patternFixedField, field: "description"},
			{re: regexp.MustCompile(`show\s+status\s+["']?([^"']+)`), kind: patternFixedField, field: "name"},
		},
		fields: map[string]string{
			"name": "name",
		},
		defaults: []string{"get_name", "get_content_types"},
		bulk:     []string{"get_id", "get_name", "get_description", "get_content_types"},
	}

	return &Definition{
		ToolName:    "query_statuses_dynamic",
		Entity:      "status",
		Description: "Query statuses with dynamic filtering by name or description.",
		Template:    tmpl,
		Fields:      NewFieldTable("status", "name", statusValidFields, statusAliases, log),
		Parse:       parser.parse,
	}, nil
}
