package query

import (
	"regexp"

	"github.com/nerdfunk-net/nautobot-mcp/internal/logger"
)

const roleQueryTemplate = `
    query Roles (
        $get_id: Boolean = false,
        $get_name: Boolean = true,
        $get_description: Boolean = false,
        $get_content_types: Boolean = true,
        $variable_value: [String],
    ){
    roles (enter_variable_name_here: $variable_value) {
        id @include(if: $get_id)
        name @include(if: $get_name)
        description @include(if: $get_description)
        content_types @include(if: $get_content_types)  {
        id
            model
        }
    }
    }`

var roleAliases = map[string]string{
	"role":      "name",
	"role_name": "name",
	"desc":      "description",
	"summary":   "description",
}

var roleValidFields = []string{
	"name", "description", "content_types", "id",
}

func newRoleDefinition(log *logger.Logger) (*Definition, error) {
	tmpl, err := NewTemplate("roles", roleQueryTemplate)
	if err != nil {
		return nil, err
	}

	parser := &promptParser{
		showAllPhrases: []string{
			"show all roles", "list all roles", "get all roles",
		},
		showAllExact: []string{"roles", "all roles"},
		patterns: []promptPattern{
			{re: regexp.MustCompile(`roles?\s+(?:with\s+)?(name|description)\s+` + operatorAlternation + `\s+(.+)`), kind: patternFieldOperatorValue},
			{re: regexp.MustCompile(`roles?\s+(?:with\s+)?name\s+["']?([^"']+)`), kind: patternFixedField, field: "name"},
			{re: regexp.MustCompile(`roles?\s+(?:with\s+)?description\s+["']?([^"']+)`), kind: patternFixedField, field: "description"},
			{re: regexp.MustCompile(`roles?\s+(?:for|of)\s+content\s+type\s+["']?([^"']+)`), kind: patternFixedField, field: "content_types"},
			{re: regexp.MustCompile(`show\s+role\s+["']?([^"']+)`), kind: patternFixedField, field: "name"},
		},
		fields: map[string]string{
			"name": "name",
		},
		defaults: []string{"get_name", "get_content_types"},
		bulk:     []string{"get_id", "get_name", "get_description", "get_content_types"},
	}

	return &Definition{
		ToolName:    "query_roles_dynamic",
		Entity:      "role",
		Description: "Query roles with dynamic filtering by name, description or content type.",
		Template:    tmpl,
		Fields:      NewFieldTable("role", "name", roleValidFields, roleAliases, log),
		Parse:       parser.parse,
	}, nil
}
