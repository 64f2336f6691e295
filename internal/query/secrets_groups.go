package query

import (
	"regexp"

	"github.com/nerdfunk-net/nautobot-mcp/internal/logger"
)

const secretsGroupQueryTemplate = `
    query SecretsGroups(
        $get_id: Boolean = false,
        $get_description: Boolean = false,
        $get_secrets: Boolean = false,
        $variable_value: [String],
        )
    {
      secrets_groups (enter_variable_name_here: $variable_value)
      {
        id @include(if: $get_id)
        name
        description @include(if: $get_description)
        secrets @include(if: $get_secrets) {
            id @include(if: $get_id)
            name
            description
        }
      }
    }`

var secretsGroupAliases = map[string]string{
	"secrets_group":    "name",
	"group":            "name",
	"group_name":       "name",
	"secret_group":     "name",
	"auth_group":       "name",
	"credential_group": "name",
	"desc":             "description",
	"summary":          "description",
	"note":             "description",
	"comment":          "description",
	"secret":           "secrets",
	"credential":       "secrets",
	"credentials":      "secrets",
	"auth":             "secrets",
}

var secretsGroupValidFields = []string{
	"name", "description", "secrets", "created", "custom_field_data",
}

func newSecretsGroupDefinition(log *logger.Logger) (*Definition, error) {
	tmpl, err := NewTemplate("secrets_groups", secretsGroupQueryTemplate)
	if err != nil {
		return nil, err
	}

	parser := &promptParser{
		showAllPhrases: []string{
			"show all secrets groups", "list all secrets groups", "get all secrets groups",
			"show all secret groups", "list all secret groups", "get all secret groups",
		},
		showAllExact: []string{"secrets groups", "all secrets groups", "secret groups"},
		patterns: []promptPattern{
			{re: regexp.MustCompile(`secrets?\s+groups?\s+(?:with|having)\s+(\w+)\s+` + operatorAlternation + `\s+(.+)`), kind: patternFieldOperatorValue},
			{re: regexp.MustCompile(`secrets?\s+groups?\s+(?:with|by|having)\s+(\w+)\s+(\w+)`), kind: patternFieldValue},
			{re: regexp.MustCompile(`secrets?\s+group\s+["']?([^"'\s]+)`), kind: patternFixedField, field: "name"},
			{re: regexp.MustCompile(`named?\s+["']?([^"'\s]+)`), kind: patternFixedField, field: "name"},
			{re: regexp.MustCompile(`called\s+["']?([^"'\s]+)`), kind: patternFixedField, field: "name"},
		},
		fields: secretsGroupAliases,
		enablers: map[string][]string{
			"description": {"get_description"},
			"secret":      {"get_secrets"},
			"credential":  {"get_secrets"},
		},
		bulk: []string{"get_id", "get_description", "get_secrets"},
	}

	return &Definition{
		ToolName:    "query_secrets_groups_dynamic",
		Entity:      "secrets_group",
		Description: "Query secrets groups with dynamic filtering by name, description or contained secrets. Maps common aliases (group, credential_group → name).",
		Template:    tmpl,
		Fields:      NewFieldTable("secrets_group", "name", secretsGroupValidFields, secretsGroupAliases, log),
		Parse:       parser.parse,
	}, nil
}
