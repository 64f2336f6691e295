package query

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nerdfunk-net/nautobot-mcp/internal/logger"
)

func testDefinition(t *testing.T, toolName string) *Definition {
	t.Helper()
	registry, err := NewRegistry(logger.New())
	require.NoError(t, err)
	def, ok := registry.Get(toolName)
	require.True(t, ok, "definition %s not registered", toolName)
	return def
}

func TestDevicePromptParsing(t *testing.T) {
	def := testDefinition(t, "query_devices_dynamic")

	t.Run("show all devices", func(t *testing.T) {
		args := def.Parse("show all devices")
		assert.Equal(t, true, args["show_all"])
		assert.NotContains(t, args, "variable_name")
	})

	t.Run("bare collection name", func(t *testing.T) {
		args := def.Parse("devices")
		assert.Equal(t, true, args["show_all"])
	})

	t.Run("show all with location still filters", func(t *testing.T) {
		args := def.Parse("show all devices in location datacenter1")
		assert.Equal(t, "location", args["variable_name"])
		assert.Equal(t, []string{"datacenter1"}, args["variable_value"])
	})

	t.Run("show device by name", func(t *testing.T) {
		args := def.Parse("show device router1")
		assert.Equal(t, "name", args["variable_name"])
		assert.Equal(t, []string{"router1"}, args["variable_value"])
		assert.Equal(t, true, args["get_hostname"])
	})

	t.Run("operator becomes lookup suffix", func(t *testing.T) {
		args := def.Parse("devices with name contains router")
		assert.Equal(t, "name__ic", args["variable_name"])
		assert.Equal(t, []string{"router"}, args["variable_value"])
	})

	t.Run("negated operator", func(t *testing.T) {
		args := def.Parse("devices with name not equal to router1")
		assert.Equal(t, "name__n", args["variable_name"])
		assert.Equal(t, []string{"router1"}, args["variable_value"])
	})

	t.Run("field value pattern", func(t *testing.T) {
		args := def.Parse("devices with role firewall")
		assert.Equal(t, "role", args["variable_name"])
		assert.Equal(t, []string{"firewall"}, args["variable_value"])
		assert.Equal(t, true, args["get_role"])
	})

	t.Run("alias in prompt resolves", func(t *testing.T) {
		args := def.Parse("devices with site datacenter1")
		assert.Equal(t, "location", args["variable_name"])
	})

	t.Run("interface sub filter", func(t *testing.T) {
		args := def.Parse("show device router1 with interface eth0")
		assert.Equal(t, "name", args["variable_name"])
		assert.Equal(t, "name", args["interface_variable"])
		assert.Equal(t, []string{"eth0"}, args["interface_value"])
		assert.Equal(t, true, args["get_interfaces"])
	})

	t.Run("all properties enables bulk flags", func(t *testing.T) {
		args := def.Parse("show all properties of device router1")
		assert.Equal(t, "name", args["variable_name"])
		for _, flag := range []string{"get_name", "get_location", "get_role", "get_device_type", "get_platform", "get_status", "get_tags"} {
			assert.Equal(t, true, args[flag], "expected %s to be enabled", flag)
		}
	})

	t.Run("custom field filter enables custom field flags", func(t *testing.T) {
		args := def.Parse("devices with cf_net backbone")
		assert.Equal(t, "cf_net", args["variable_name"])
		assert.Equal(t, true, args["get_custom_field_data"])
		assert.Equal(t, true, args["get__custom_field_data"])
	})

	t.Run("unparseable prompt yields empty map", func(t *testing.T) {
		args := def.Parse("what is the meaning of life")
		assert.Empty(t, args)
	})
}

func TestInterfacePromptParsing(t *testing.T) {
	def := testDefinition(t, "query_interfaces_dynamic")

	t.Run("show all interfaces", func(t *testing.T) {
		args := def.Parse("show all interfaces")
		assert.Equal(t, true, args["show_all"])
	})

	t.Run("interfaces on device", func(t *testing.T) {
		args := def.Parse("interfaces on router1")
		assert.Equal(t, "device", args["variable_name"])
		assert.Equal(t, []string{"router1"}, args["variable_value"])
		assert.Equal(t, true, args["get_name"])
		assert.Equal(t, true, args["get_device"])
		assert.Equal(t, true, args["get_status"])
	})

	t.Run("enabled interfaces fixed filter", func(t *testing.T) {
		args := def.Parse("enabled interfaces")
		assert.Equal(t, "enabled", args["variable_name"])
		assert.Equal(t, []string{"true"}, args["variable_value"])
		assert.Equal(t, true, args["get_enabled"])
	})

	t.Run("disabled interfaces fixed filter", func(t *testing.T) {
		args := def.Parse("disabled interfaces")
		assert.Equal(t, "enabled", args["variable_name"])
		assert.Equal(t, []string{"false"}, args["variable_value"])
	})

	t.Run("operator on type", func(t *testing.T) {
		args := def.Parse("interfaces with type contains ethernet")
		assert.Equal(t, "type__ic", args["variable_name"])
		assert.Equal(t, []string{"ethernet"}, args["variable_value"])
	})

	t.Run("show single interface", func(t *testing.T) {
		args := def.Parse("show interface eth0")
		assert.Equal(t, "name", args["variable_name"])
		assert.Equal(t, []string{"eth0"}, args["variable_value"])
	})
}

func TestIPAddressPromptParsing(t *testing.T) {
	def := testDefinition(t, "query_ipam_dynamic")

	t.Run("dotted quad", func(t *testing.T) {
		args := def.Parse("show ip address 192.168.1.1")
		assert.Equal(t, "address", args["variable_name"])
		assert.Equal(t, []string{"192.168.1.1"}, args["variable_value"])
		assert.Equal(t, true, args["get_address"])
	})

	t.Run("show all ip addresses", func(t *testing.T) {
		args := def.Parse("show all ip addresses")
		assert.Equal(t, true, args["show_all"])
	})
}

func TestPrefixPromptParsing(t *testing.T) {
	def := testDefinition(t, "query_prefixes_dynamic")

	t.Run("show prefix", func(t *testing.T) {
		args := def.Parse("show prefix 10.0.0.0/8")
		assert.Equal(t, "prefix", args["variable_name"])
		assert.Equal(t, []string{"10.0.0.0/8"}, args["variable_value"])
	})

	t.Run("within containment", func(t *testing.T) {
		args := def.Parse("prefixes within 172.16.0.0/12")
		assert.Equal(t, "within", args["variable_name"])
		assert.Equal(t, []string{"172.16.0.0/12"}, args["variable_value"])
		assert.Equal(t, true, args["get_parent"])
	})

	t.Run("within_include containment", func(t *testing.T) {
		args := def.Parse("prefixes within_include 10.0.0.0/8")
		assert.Equal(t, "within_include", args["variable_name"])
		assert.Equal(t, []string{"10.0.0.0/8"}, args["variable_value"])
	})

	t.Run("show all prefixes", func(t *testing.T) {
		args := def.Parse("show all prefixes")
		assert.Equal(t, true, args["show_all"])
	})
}

func TestLocationPromptParsing(t *testing.T) {
	def := testDefinition(t, "query_locations_dynamic")

	t.Run("location by name", func(t *testing.T) {
		args := def.Parse("show location datacenter1")
		assert.Equal(t, "name", args["variable_name"])
		assert.Equal(t, []string{"datacenter1"}, args["variable_value"])
		assert.Equal(t, true, args["get_name"])
	})

	t.Run("locations with status", func(t *testing.T) {
		args := def.Parse("locations with status active")
		assert.Equal(t, "status", args["variable_name"])
		assert.Equal(t, []string{"active"}, args["variable_value"])
	})
}

func TestNamespacePromptParsing(t *testing.T) {
	def := testDefinition(t, "query_namespaces_dynamic")

	args := def.Parse("show namespace Global")
	assert.Equal(t, "name", args["variable_name"])
	assert.Equal(t, []string{"global"}, args["variable_value"])
}

func TestRegistryDefinitions(t *testing.T) {
	registry, err := NewRegistry(logger.New())
	require.NoError(t, err)

	expected := []string{
		"query_device_types_dynamic",
		"query_devices_dynamic",
		"query_interfaces_dynamic",
		"query_ipam_dynamic",
		"query_locations_dynamic",
		"query_manufacturers_dynamic",
		"query_namespaces_dynamic",
		"query_prefixes_dynamic",
		"query_roles_dynamic",
		"query_secrets_groups_dynamic",
		"query_statuses_dynamic",
		"query_tags_dynamic",
	}

	var names []string
	for _, def := range registry.All() {
		names = append(names, def.ToolName)
	}
	if !reflect.DeepEqual(names, expected) {
		t.Errorf("registered tools = %v, want %v", names, expected)
	}

	t.Run("duplicate registration rejected", func(t *testing.T) {
		def, _ := registry.Get("query_devices_dynamic")
		require.Error(t, registry.Register(def))
	})
}
