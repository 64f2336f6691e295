package query

import (
	"regexp"

	"github.com/nerdfunk-net/nautobot-mcp/internal/logger"
)

const tagQueryTemplate = `
        query Tags(
            $get_id: Boolean = false,
            $get_name: Boolean = true,
            $get_description: Boolean = false,
            $get_content_types: Boolean = false,
            $variable_value: [String]
        ) {
            tags (enter_variable_name_here: $variable_value) {
                id @include(if: $get_id)
                name @include(if: $get_name)
                description @include(if: $get_description)
                content_types @include(if: $get_content_types) {
                    id @include(if: $get_id)
                    model
                }
            }
        }`

var tagAliases = map[string]string{
	"tag":      "name",
	"tag_name": "name",
	"title":    "name",
	"desc":     "description",
	"summary":  "description",
}

var tagValidFields = []string{
	"name", "description", "content_types", "id", "url", "display",
}

func newTagDefinition(log *logger.Logger) (*Definition, error) {
	tmpl, err := NewTemplate("tags", tagQueryTemplate)
	if err != nil {
		return nil, err
	}

	fields := make(map[string]string, len(tagAliases)+len(tagValidFields))
	for _, f := range tagValidFields {
		fields[f] = f
	}
	for alias, canonical := range tagAliases {
		fields[alias] = canonical
	}

	parser := &promptParser{
		showAllPhrases: []string{
			"show all tags", "list all tags", "get all tags",
		},
		showAllExact: []string{"tags", "all tags"},
		patterns: []promptPattern{
			{re: regexp.MustCompile(`tags?\s+(?:with|having)\s+(\w+)\s+` + operatorAlternation + `\s+(.+)`), kind: patternFieldOperatorValue},
			{re: regexp.MustCompile(`tags?\s+(?:with|by|having)\s+(\w+)\s+(\w+)`), kind: patternFieldValue},
			{re: regexp.MustCompile(`show\s+(?:tag\s+)?(\w+)(?:\s+(\w+))?`), kind: patternValueOrFieldValue, field: "name"},
		},
		fields: fields,
		enablers: map[string][]string{
			"description":  {"get_description"},
			"desc":         {"get_description"},
			"content_type": {"get_content_types"},
		},
		defaults: []string{"get_name"},
		bulk:     []string{"get_name", "get_description", "get_content_types"},
	}

	return &Definition{
		ToolName:    "query_tags_dynamic",
		Entity:      "tag",
		Description: "Query tags with dynamic filtering by name or description. Supports natural language prompts and lookup expressions.",
		Template:    tmpl,
		Fields:      NewFieldTable("tag", "name", tagValidFields, tagAliases, log),
		Parse:       parser.parse,
	}, nil
}
