package query

import (
	"regexp"

	"github.com/nerdfunk-net/nautobot-mcp/internal/logger"
)

const deviceTypeQueryTemplate = `
    query DeviceTypes(
        $get_id: Boolean = false,
        $get_model: Boolean = true,
        $get_manufacturer: Boolean = false,
        $get_devices: Boolean = false,
        $variable_value: [String],
    ) {
    device_types (enter_variable_name_here: $variable_value) {
        id @include(if: $get_id)
        model @include(if: $get_model)
        manufacturer @include(if: $get_manufacturer) {
            id @include(if: $get_id)
            name
        }
        devices @include(if: $get_devices) {
            id @include(if: $get_id)
            name
        }
    }
    }`

var deviceTypeAliases = map[string]string{
	"device_model": "model",
	"name":         "model",
	"device_name":  "model",
	"type":         "model",
	"device_type":  "model",
	"vendor":       "manufacturer",
	"make":         "manufacturer",
	"brand":        "manufacturer",
	"mfg":          "manufacturer",
	"mfr":          "manufacturer",
	"oem":          "manufacturer",
	"company":      "manufacturer",
}

var deviceTypeValidFields = []string{"model", "manufacturer"}

func newDeviceTypeDefinition(log *logger.Logger) (*Definition, error) {
	tmpl, err := NewTemplate("device_types", deviceTypeQueryTemplate)
	if err != nil {
		return nil, err
	}

	fields := make(map[string]string, len(deviceTypeAliases)+len(deviceTypeValidFields))
	for _, f := range deviceTypeValidFields {
		fields[f] = f
	}
	for alias, canonical := range deviceTypeAliases {
		fields[alias] = canonical
	}

	parser := &promptParser{
		showAllPhrases: []string{
			"show all device types", "list all device types", "get all device types",
		},
		showAllExact: []string{"device types", "all device types"},
		patterns: []promptPattern{
			{re: regexp.MustCompile(`device\s+types?\s+(?:with|having)\s+(\w+)\s+` + operatorAlternation + `\s+(.+)`), kind: patternFieldOperatorValue},
			{re: regexp.MustCompile(`device\s+types?\s+(?:with|by|having)\s+(\w+)\s+(\w+)`), kind: patternFieldValue},
			{re: regexp.MustCompile(`show\s+(\w+)\s+(.+)`), kind: patternFieldValue},
		},
		fields: fields,
		enablers: map[string][]string{
			"manufacturer": {"get_manufacturer"},
			"vendor":       {"get_manufacturer"},
			"device":       {"get_devices"},
		},
		defaults: []string{"get_model"},
		bulk:     []string{"get_model", "get_manufacturer", "get_devices"},
	}

	return &Definition{
		ToolName:    "query_device_types_dynamic",
		Entity:      "device_type",
		Description: "Query device types with dynamic filtering by model or manufacturer. Maps common aliases (vendor → manufacturer, name/type → model).",
		Template:    tmpl,
		Fields:      NewFieldTable("device_type", "model", deviceTypeValidFields, deviceTypeAliases, log),
		Parse:       parser.parse,
	}, nil
}
