package query

import (
	"regexp"

	"github.com/nerdfunk-net/nautobot-mcp/internal/logger"
)

const ipAddressQueryTemplate = `
    query IPaddresses (
      $get_address: Boolean = false,
      $get_config_context: Boolean = false,
      $get_custom_field_data: Boolean = false,
      $get__custom_field_data: Boolean = false,
      $get_description: Boolean = false,
      $get_device_type: Boolean = false,
      $get_dns_name: Boolean = false,
      $get_host: Boolean = false,
      $get_hostname: Boolean = false,
      $get_id: Boolean = false,
      $get_interfaces: Boolean = false,
      $get_interface_assignments: Boolean = false,
      $get_ip_version: Boolean = false,
      $get_location: Boolean = false,
      $get_mask_length: Boolean = false,
      $get_name: Boolean = false,
      $get_parent: Boolean = false,
      $get_platform: Boolean = false,
      $get_primary_ip4_for: Boolean = false,
      $get_primary_ip4: Boolean = false,
      $get_role: Boolean = false,
      $get_serial: Boolean = false,
      $get_status:  Boolean = false,
      $get_tags: Boolean = false,
      $get_tenant: Boolean = false,
      $get_type: Boolean = false,
      $variable_value: [String],
    )
    {
      ip_addresses(enter_variable_name_here: $variable_value)
      {
        id @include(if: $get_id)
        address @include(if: $get_address)
        description @include(if: $get_description)
        dns_name @include(if: $get_dns_name)
        type @include(if: $get_type)
        tags @include(if: $get_tags)
        {
          id @include(if: $get_id)
          name
        }
        parent @include(if: $get_parent)
        {
          id @include(if: $get_id)
          network
          prefix
          prefix_length
          namespace {
            id @include(if: $get_id)
            name
          }
          _custom_field_data @include(if: $get__custom_field_data)
          custom_field_data : _custom_field_data @include(if: $get_custom_field_data)
        }
        # all interfaces the IP address is assigned on
        interfaces @include(if: $get_interfaces)
        {
          id @include(if: $get_id)
          name
          device {
            id @include(if: $get_id)
            name
          }
          description
          enabled
          mac_address
          type
          mode
          ip_addresses {
            address
            role {
              id @include(if: $get_id)
              name
            }
            tags {
              name
              content_types {
                id @include(if: $get_id)
                app_label
                model
              }
            }
          }
        }

        # interface assignments
        interface_assignments @include(if: $get_interface_assignments)
        {
          id @include(if: $get_id)
          is_standby
          is_default
          is_destination
          interface {
            id @include(if: $get_id)
            name
            description
            type
            status {
              id @include(if: $get_id)
              name
            }
            device {
              id @include(if: $get_id)
              name
            }
            child_interfaces {
              id @include(if: $get_id)
              name
            }
          }
        }

        # full data for the device this IP is primary for
        primary_ip4_for @include(if: $get_primary_ip4_for) {
          id @include(if: $get_id)
          name @include(if: $get_name)
          hostname: name @include(if: $get_hostname)
          role @include(if: $get_role)
          {
            id @include(if: $get_id)
            name
          }
          device_type @include(if: $get_device_type)
          {
            id @include(if: $get_id)
            model
          }
          platform @include(if: $get_platform)
          {
            id @include(if: $get_id)
            name
            manufacturer {
              id @include(if: $get_id)
              name
            }
          }
          tags @include(if: $get_tags)
          {
            id @include(if: $get_id)
            name
            content_types {
              id @include(if: $get_id)
              app_label
              model
            }
          }
          tenant @include(if: $get_tenant)
          {
            id @include(if: $get_id)
            name
            tenant_group {
              name
            }
          }
          serial @include(if: $get_serial)
          status @include(if: $get_status)
          {
            id @include(if: $get_id)
            name
          }
          config_context @include(if: $get_config_context)
          _custom_field_data @include(if: $get__custom_field_data)
          custom_field_data : _custom_field_data @include(if: $get_custom_field_data)
          primary_ip4 @include(if: $get_primary_ip4)
          {
            id @include(if: $get_id)
            description @include(if: $get_description)
            ip_version @include(if: $get_ip_version)
            address @include(if: $get_address)
            host @include(if: $get_host)
            mask_length @include(if: $get_mask_length)
            dns_name @include(if: $get_dns_name)
            parent @include(if: $get_parent)
            {
              id @include(if: $get_id)
              prefix
            }
            status @include(if: $get_status)
            {
              id @include(if: $get_id)
              name
            }
            interfaces @include(if: $get_interfaces)
            {
              id @include(if: $get_id)
              name
              description
              enabled
              mac_address
              type
              mode
            }
          }
          interfaces @include(if: $get_interfaces)
          {
            id @include(if: $get_id)
            name
            device {
              name
            }
            description
            enabled
            mac_address
            type
            mode
            ip_addresses
            {
              address
              role {
                id @include(if: $get_id)
                name
              }
              tags
              {
                id @include(if: $get_id)
                name
                content_types {
                  id
                  app_label
                  model
                }
              }
            }
            connected_circuit_termination
            {
              circuit {
                cid
                commit_rate
                provider {
                  name
                }
              }
            }
            tagged_vlans
            {
              name
              vid
            }
            untagged_vlan
            {
              name
              vid
            }
            cable
            {
              termination_a_type
              status
              {
                name
              }
              color
            }
            tags
            {
              name
              content_types
              {
                id
                app_label
                model
              }
            }
            lag {
              name
              enabled
            }
            member_interfaces {
              name
            }
          }
          location @include(if: $get_location) {
            name
          }
        }
      }
    }`

var ipAddressAliases = map[string]string{
	"ip":         "address",
	"ip_address": "address",
	"dns":        "dns_name",
	"hostname":   "dns_name",
	"mask":       "mask_length",
	"version":    "ip_version",
	"tag":        "tags",
}

var ipAddressValidFields = []string{
	"address", "dns_name", "description", "type", "status", "host",
	"mask_length", "ip_version", "tags", "tenant", "parent",
}

var ipAddressEnablers = map[string][]string{
	"address":     {"get_address"},
	"ip":          {"get_address"},
	"dns":         {"get_dns_name"},
	"hostname":    {"get_dns_name"},
	"description": {"get_description"},
	"type":        {"get_type"},
	"status":      {"get_status"},
	"host":        {"get_host"},
	"mask":        {"get_mask_length"},
	"version":     {"get_ip_version"},
	"tag":         {"get_tags"},
	"tenant":      {"get_tenant"},
	"parent":      {"get_parent"},
	"interface":   {"get_interfaces"},
	"device":      {"get_primary_ip4_for", "get_interfaces"},
	"location":    {"get_location"},
}

func newIPAddressDefinition(log *logger.Logger) (*Definition, error) {
	tmpl, err := NewTemplate("ip_addresses", ipAddressQueryTemplate)
	if err != nil {
		return nil, err
	}

	fields := make(map[string]string, len(ipAddressAliases)+len(ipAddressValidFields))
	for _, f := range ipAddressValidFields {
		fields[f] = f
	}
	for alias, canonical := range ipAddressAliases {
		fields[alias] = canonical
	}

	parser := &promptParser{
		showAllPhrases: []string{
			"show all ip addresses", "list all ip addresses", "get all ip addresses",
		},
		showAllExact: []string{"all ip addresses", "ip addresses"},
		patterns: []promptPattern{
			{re: regexp.MustCompile(`(?:show|get|find)\s+(?:ip\s+address|address)\s+(\d+\.\d+\.\d+\.\d+)`), kind: patternFixedField, field: "address"},
			{re: regexp.MustCompile(`ip\s+addresses?\s+(?:with|having)\s+(\w+)\s+` + operatorAlternation + `\s+(.+)`), kind: patternFieldOperatorValue},
			{re: regexp.MustCompile(`ip\s+addresses?\s+(?:with|by|having)\s+(\w+)\s+(\w+)`), kind: patternFieldValue},
		},
		fields:   fields,
		enablers: ipAddressEnablers,
		defaults: []string{"get_address"},
		bulk: []string{
			"get_address", "get_description", "get_dns_name", "get_type",
			"get_status", "get_host", "get_mask_length", "get_ip_version",
			"get_tags", "get_parent",
		},
		customFieldFlags: []string{"get_custom_field_data", "get__custom_field_data"},
	}

	return &Definition{
		ToolName:    "query_ipam_dynamic",
		Entity:      "ip_address",
		Description: "Query IP addresses with dynamic filtering by address, DNS name, type and related objects. Supports natural language prompts and custom field queries.",
		Template:    tmpl,
		Fields:      NewFieldTable("ip_address", "address", ipAddressValidFields, ipAddressAliases, log),
		Parse:       parser.parse,
	}, nil
}
