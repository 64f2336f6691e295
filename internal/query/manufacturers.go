package query

import (
	"regexp"

	"github.com/nerdfunk-net/nautobot-mcp/internal/logger"
)

const manufacturerQueryTemplate = `
        query Manufacturers(
            $get_id: Boolean = false,
            $get_name: Boolean = true,
            $get_description: Boolean = false,
            $get_device_types: Boolean = false,
            $variable_value: [String]
        ) {
            manufacturers (enter_variable_name_here: $variable_value) {
                id @include(if: $get_id)
                name @include(if: $get_name)
                description @include(if: $get_description)
                device_types @include(if: $get_device_types) {
                    id @include(if: $get_id)
                    model
                }
            }
        }`

var manufacturerAliases = map[string]string{
	"vendor":            "name",
	"make":              "name",
	"brand":             "name",
	"company":           "name",
	"mfg":               "name",
	"mfr":               "name",
	"oem":               "name",
	"manufacturer":      "name",
	"manufacturer_name": "name",
	"desc":              "description",
	"summary":           "description",
}

var manufacturerValidFields = []string{
	"name", "description", "device_types", "id", "url", "display",
}

func newManufacturerDefinition(log *logger.Logger) (*Definition, error) {
	tmpl, err := NewTemplate("manufacturers", manufacturerQueryTemplate)
	if err != nil {
		return nil, err
	}

	fields := make(map[string]string, len(manufacturerAliases)+len(manufacturerValidFields))
	for _, f := range manufacturerValidFields {
		fields[f] = f
	}
	for alias, canonical := range manufacturerAliases {
		fields[alias] = canonical
	}

	parser := &promptParser{
		showAllPhrases: []string{
			"show all manufacturers", "list all manufacturers", "get all manufacturers",
			"show all vendors", "list all vendors", "get all vendors",
		},
		showAllExact: []string{"manufacturers", "all manufacturers", "vendors", "all vendors"},
		patterns: []promptPattern{
			{re: regexp.MustCompile(`(?:manufacturers?|vendors?)\s+(?:with|having)\s+(\w+)\s+` + operatorAlternation + `\s+(.+)`), kind: patternFieldOperatorValue},
			{re: regexp.MustCompile(`(?:manufacturers?|vendors?)\s+(?:with|by|having)\s+(\w+)\s+(\w+)`), kind: patternFieldValue},
			{re: regexp.MustCompile(`show\s+(?:manufacturer\s+|vendor\s+)?(\w+)(?:\s+(\w+))?`), kind: patternValueOrFieldValue, field: "name"},
		},
		fields: fields,
		enablers: map[string][]string{
			"description": {"get_description"},
			"desc":        {"get_description"},
			"device_type": {"get_device_types"},
			"model":       {"get_device_types"},
		},
		defaults: []string{"get_name"},
		bulk:     []string{"get_name", "get_description", "get_device_types"},
	}

	return &Definition{
		ToolName:    "query_manufacturers_dynamic",
		Entity:      "manufacturer",
		Description: "Query manufacturers with dynamic filtering and field mapping. Maps common aliases (vendor, brand, make → name).",
		Template:    tmpl,
		Fields:      NewFieldTable("manufacturer", "name", manufacturerValidFields, manufacturerAliases, log),
		Parse:       parser.parse,
	}, nil
}
