package query

import (
	"regexp"

	"github.com/nerdfunk-net/nautobot-mcp/internal/logger"
)

const locationQueryTemplate = `
    query Locations(
        $get_id: Boolean = false,
        $get_name: Boolean = true,
        $get_parent: Boolean = false,
        $get_tags: Boolean = false,
        $get_racks: Boolean = false,
        $get_rack_groups: Boolean = false,
        $get_contact: Boolean = false,
        $get_vlans: Boolean = false,
        $get_status: Boolean = false,
        $get_tenant: Boolean = false,
        $get_prefix: Boolean = false,
        $get_latitude: Boolean = false,
        $get_created: Boolean = false,
        $get_custom_field_data: Boolean = false,
        $get_physical_address: Boolean = false,
        $get_shipping_address: Boolean = false,
        $variable_value: [String],
        )
    {
      locations (enter_variable_name_here: $variable_value)
      {
        id @include(if: $get_id)
        name @include(if: $get_name)
        associated_contacts {
          id @include(if: $get_id)
          contact @include(if: $get_contact)  {
            id @include(if: $get_id)
          }
        }
        parent @include(if: $get_parent) {
          name
        }
        tags @include(if: $get_tags) {
          id
        }
        racks @include(if: $get_racks) {
          id @include(if: $get_id)
          name
        }
        rack_groups @include(if: $get_rack_groups) {
          id  @include(if: $get_id)
          name
          parent {
            id
          }
        }
        vlans @include(if: $get_vlans) {
          id @include(if: $get_id)
          name
          vid
          vlan_group {
            id @include(if: $get_id)
          }
        }
        status @include(if: $get_status) {
          id @include(if: $get_id)
          name
        }
        tenant @include(if: $get_tenant) {
          id @include(if: $get_id)
          name
        }
        prefix_assignments @include(if: $get_prefix)  {
          id @include(if: $get_id)
          prefix {
            id
          }
        }
        latitude @include(if: $get_latitude)
        created @include(if: $get_created)
        _custom_field_data @include(if: $get_custom_field_data)
        physical_address @include(if: $get_physical_address)
        shipping_address @include(if: $get_shipping_address)
      }
    }`

var locationAliases = map[string]string{
	"location":        "name",
	"location_name":   "name",
	"site":            "name",
	"site_name":       "name",
	"parent_location": "parent",
	"parent_site":     "parent",
	"region":          "parent",
	"area":            "parent",
	"state":           "status",
	"condition":       "status",
	"tag":             "tags",
	"label":           "tags",
	"labels":          "tags",
	"customer":        "tenant",
	"organization":    "tenant",
	"org":             "tenant",
	"address":         "physical_address",
	"street_address":  "physical_address",
	"postal_address":  "physical_address",
	"lat":             "latitude",
	"long":            "longitude",
	"lng":             "longitude",
	"coordinates":     "latitude",
	"rack":            "racks",
	"cabinet":         "racks",
	"cabinets":        "racks",
	"vlan":            "vlans",
	"network":         "vlans",
	"networks":        "vlans",
	"prefix":          "prefixes",
	"subnet":          "prefixes",
	"subnets":         "prefixes",
	"ip_range":        "prefixes",
	"contact_person":  "contact",
	"admin":           "contact",
	"administrator":   "contact",
}

var locationValidFields = []string{
	"name", "parent", "status", "tags", "tenant", "physical_address",
	"latitude", "longitude", "racks", "vlans", "prefixes", "contact",
	"rack_groups", "created", "custom_field_data",
}

var locationEnablers = map[string][]string{
	"parent":  {"get_parent"},
	"status":  {"get_status"},
	"tenant":  {"get_tenant"},
	"tags":    {"get_tags"},
	"rack":    {"get_racks"},
	"vlan":    {"get_vlans"},
	"prefix":  {"get_prefix"},
	"contact": {"get_contact"},
	"address": {"get_physical_address"},
	"created": {"get_created"},
}

func newLocationDefinition(log *logger.Logger) (*Definition, error) {
	tmpl, err := NewTemplate("locations", locationQueryTemplate)
	if err != nil {
		return nil, err
	}

	fields := map[string]string{
		"location": "name",
		"name":     "name",
		"id":       "id",
		"parent":   "parent",
		"status":   "status",
		"tenant":   "tenant",
		"tag":      "tags",
		"tags":     "tags",
	}

	parser := &promptParser{
		showAllPhrases: []string{
			"show all locations", "list all locations", "get all locations",
		},
		showAllExact: []string{"all locations", "locations"},
		patterns: []promptPattern{
			{re: regexp.MustCompile(`locations?\s+(?:with|having)\s+(\w+)\s+` + operatorAlternation + `\s+(.+)`), kind: patternFieldOperatorValue},
			{re: regexp.MustCompile(`locations?\s+(?:with|having|where)\s+(\w+)\s+([a-zA-Z0-9-_.]+)`), kind: patternFieldValue},
			{re: regexp.MustCompile(`location\s+([a-zA-Z0-9-_.]+)`), kind: patternFixedField, field: "name"},
		},
		fields:           fields,
		enablers:         locationEnablers,
		defaults:         []string{"get_name"},
		bulk:             []string{"get_name", "get_parent", "get_status", "get_tenant", "get_tags", "get_physical_address", "get_created"},
		customFieldFlags: []string{"get_custom_field_data"},
	}

	return &Definition{
		ToolName:    "query_locations_dynamic",
		Entity:      "location",
		Description: "Query locations with dynamic filtering by any property (name, parent, tenant, status, etc.). Automatically maps common field aliases (site→name, region→parent, address→physical_address, etc.)",
		Template:    tmpl,
		Fields:      NewFieldTable("location", "name", locationValidFields, locationAliases, log),
		Parse:       parser.parse,
	}, nil
}
