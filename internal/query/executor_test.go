package query

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nerdfunk-net/nautobot-mcp/internal/logger"
)

// mockNautobotClient implements nautobot.ClientInterface for tests
type mockNautobotClient struct {
	lastQuery     string
	lastVariables map[string]interface{}
	graphQLCalls  int
	response      map[string]interface{}
	err           error
}

func (m *mockNautobotClient) GraphQLQuery(query string, variables map[string]interface{}) (map[string]interface{}, error) {
	m.graphQLCalls++
	m.lastQuery = query
	m.lastVariables = variables
	if m.err != nil {
		return nil, m.err
	}
	return m.response, nil
}

func (m *mockNautobotClient) RESTGet(path string) (map[string]interface{}, error) {
	return nil, fmt.Errorf("unexpected REST call: %s", path)
}

func (m *mockNautobotClient) RESTPost(path string, payload interface{}) (map[string]interface{}, error) {
	return nil, fmt.Errorf("unexpected REST call: %s", path)
}

func (m *mockNautobotClient) TestConnection() error {
	return nil
}

func deviceResponse(records ...interface{}) map[string]interface{} {
	return map[string]interface{}{
		"data": map[string]interface{}{
			"devices": records,
		},
	}
}

func newTestExecutor(client *mockNautobotClient, maxBytes int) *Executor {
	return NewExecutor(client, logger.New(), maxBytes)
}

func TestExecutorExplicitFilter(t *testing.T) {
	client := &mockNautobotClient{
		response: deviceResponse(map[string]interface{}{"hostname": "router1"}),
	}
	executor := newTestExecutor(client, 0)
	def := testDefinition(t, "query_devices_dynamic")

	result, err := executor.Execute(def, map[string]interface{}{
		"variable_name":  "name",
		"variable_value": []string{"router1"},
	})
	require.NoError(t, err)

	assert.Equal(t, "devices", result.Collection)
	assert.Len(t, result.Records, 1)
	assert.Equal(t, "name", result.QueryInfo.FieldName)
	assert.Equal(t, []string{"router1"}, result.QueryInfo.FieldValues)
	assert.False(t, result.QueryInfo.ShowAll)

	assert.Contains(t, client.lastQuery, "devices(name: $variable_value)")
	assert.Equal(t, []string{"router1"}, client.lastVariables["variable_value"])

	wire := result.ToMap()
	assert.Equal(t, 1, wire["total_count"])
	assert.Contains(t, wire, "devices")
	assert.Contains(t, wire, "query_info")
}

func TestExecutorShowAll(t *testing.T) {
	client := &mockNautobotClient{response: deviceResponse(
		map[string]interface{}{"hostname": "a"},
		map[string]interface{}{"hostname": "b"},
	)}
	executor := newTestExecutor(client, 0)
	def := testDefinition(t, "query_devices_dynamic")

	result, err := executor.Execute(def, map[string]interface{}{"show_all": true})
	require.NoError(t, err)

	assert.True(t, result.QueryInfo.ShowAll)
	assert.Len(t, result.Records, 2)
	assert.NotContains(t, client.lastQuery, FilterPlaceholder)
	assert.NotContains(t, client.lastVariables, "variable_value")
}

func TestExecutorPromptDrivesFilter(t *testing.T) {
	client := &mockNautobotClient{response: deviceResponse()}
	executor := newTestExecutor(client, 0)
	def := testDefinition(t, "query_devices_dynamic")

	_, err := executor.Execute(def, map[string]interface{}{
		"prompt": "devices with name contains router",
	})
	require.NoError(t, err)
	assert.Contains(t, client.lastQuery, "devices(name__ic: $variable_value)")
}

func TestExecutorManualArgsWinOverPrompt(t *testing.T) {
	client := &mockNautobotClient{response: deviceResponse()}
	executor := newTestExecutor(client, 0)
	def := testDefinition(t, "query_devices_dynamic")

	_, err := executor.Execute(def, map[string]interface{}{
		"prompt":         "show device router1",
		"variable_name":  "location",
		"variable_value": []string{"dc1"},
	})
	require.NoError(t, err)
	assert.Contains(t, client.lastQuery, "devices(location: $variable_value)")
	assert.Equal(t, []string{"dc1"}, client.lastVariables["variable_value"])
}

func TestExecutorValidation(t *testing.T) {
	client := &mockNautobotClient{response: deviceResponse()}
	executor := newTestExecutor(client, 0)
	def := testDefinition(t, "query_devices_dynamic")

	t.Run("missing filter", func(t *testing.T) {
		_, err := executor.Execute(def, map[string]interface{}{})
		require.Error(t, err)
		assert.Equal(t, KindValidation, KindOf(err))
		assert.Contains(t, err.Error(), "Either 'prompt' or both 'variable_name' and 'variable_value'")
	})

	t.Run("unknown field", func(t *testing.T) {
		_, err := executor.Execute(def, map[string]interface{}{
			"variable_name":  "bogus_field",
			"variable_value": []string{"x"},
		})
		require.Error(t, err)
		assert.Equal(t, KindValidation, KindOf(err))
		assert.Contains(t, err.Error(), "Invalid field name")
	})

	t.Run("unsafe value", func(t *testing.T) {
		_, err := executor.Execute(def, map[string]interface{}{
			"variable_name":  "name",
			"variable_value": []string{"router1; rm -rf /"},
		})
		require.Error(t, err)
		assert.Equal(t, KindValidation, KindOf(err))
		assert.Equal(t, 0, client.graphQLCalls)
	})
}

func TestExecutorBackendErrors(t *testing.T) {
	def := testDefinition(t, "query_devices_dynamic")

	t.Run("transport failure", func(t *testing.T) {
		client := &mockNautobotClient{err: fmt.Errorf("connection refused")}
		executor := newTestExecutor(client, 0)
		_, err := executor.Execute(def, map[string]interface{}{"show_all": true})
		require.Error(t, err)
		assert.Equal(t, KindBackend, KindOf(err))
		assert.Contains(t, err.Error(), "connection refused")
	})

	t.Run("graphql errors in envelope", func(t *testing.T) {
		client := &mockNautobotClient{response: map[string]interface{}{
			"errors": []interface{}{map[string]interface{}{"message": "Cannot query field"}},
		}}
		executor := newTestExecutor(client, 0)
		_, err := executor.Execute(def, map[string]interface{}{"show_all": true})
		require.Error(t, err)
		assert.Equal(t, KindBackend, KindOf(err))
		assert.Contains(t, err.Error(), "GraphQL errors")
	})
}

func TestExecutorSizeLimit(t *testing.T) {
	big := strings.Repeat("x", 200)
	client := &mockNautobotClient{response: deviceResponse(
		map[string]interface{}{"hostname": big},
		map[string]interface{}{"hostname": big},
	)}
	executor := newTestExecutor(client, 100)
	def := testDefinition(t, "query_devices_dynamic")

	_, err := executor.Execute(def, map[string]interface{}{"show_all": true})
	require.Error(t, err)
	assert.Equal(t, KindSizeLimit, KindOf(err))
	assert.Contains(t, err.Error(), "Response too large")
	assert.Contains(t, err.Error(), "devices")
}

func TestExecutorCustomFieldScalar(t *testing.T) {
	client := &mockNautobotClient{response: deviceResponse()}
	executor := newTestExecutor(client, 0)
	def := testDefinition(t, "query_devices_dynamic")

	_, err := executor.Execute(def, map[string]interface{}{
		"variable_name":  "cf_net",
		"variable_value": []string{"backbone", "ignored"},
	})
	require.NoError(t, err)

	assert.Contains(t, client.lastQuery, "devices(cf_net: $variable_value)")
	assert.Contains(t, client.lastQuery, "$variable_value: String")
	assert.Equal(t, "backbone", client.lastVariables["variable_value"])
}

func TestExecutorBooleanField(t *testing.T) {
	client := &mockNautobotClient{response: map[string]interface{}{
		"data": map[string]interface{}{"interfaces": []interface{}{}},
	}}
	executor := newTestExecutor(client, 0)
	def := testDefinition(t, "query_interfaces_dynamic")

	_, err := executor.Execute(def, map[string]interface{}{
		"variable_name":  "enabled",
		"variable_value": []string{"true"},
	})
	require.NoError(t, err)

	assert.Contains(t, client.lastQuery, "$variable_value: Boolean")
	assert.Equal(t, true, client.lastVariables["variable_value"])
}

func TestExecutorInterfaceSubtree(t *testing.T) {
	def := testDefinition(t, "query_devices_dynamic")

	t.Run("nested filter present", func(t *testing.T) {
		client := &mockNautobotClient{response: deviceResponse()}
		executor := newTestExecutor(client, 0)

		_, err := executor.Execute(def, map[string]interface{}{
			"variable_name":      "name",
			"variable_value":     []string{"router1"},
			"get_interfaces":     true,
			"interface_variable": "name__isw",
			"interface_value":    []string{"Ethernet"},
		})
		require.NoError(t, err)

		assert.Contains(t, client.lastQuery, "interfaces (name__isw: $interface_var_value)")
		assert.Equal(t, []string{"Ethernet"}, client.lastVariables["interface_var_value"])
		assert.Equal(t, true, client.lastVariables["get_interfaces"])
	})

	t.Run("nested filter absent drops subtree variables", func(t *testing.T) {
		client := &mockNautobotClient{response: deviceResponse()}
		executor := newTestExecutor(client, 0)

		_, err := executor.Execute(def, map[string]interface{}{
			"variable_name":  "name",
			"variable_value": []string{"router1"},
			"get_interfaces": true,
		})
		require.NoError(t, err)

		assert.NotContains(t, client.lastQuery, "$interface_var_value")
		assert.NotContains(t, client.lastVariables, "interface_var_value")
		assert.NotContains(t, client.lastVariables, "get_interfaces")
	})

	t.Run("unsafe nested value rejected", func(t *testing.T) {
		client := &mockNautobotClient{response: deviceResponse()}
		executor := newTestExecutor(client, 0)

		_, err := executor.Execute(def, map[string]interface{}{
			"variable_name":      "name",
			"variable_value":     []string{"router1"},
			"interface_variable": "name",
			"interface_value":    []string{"eth0; reboot"},
		})
		require.Error(t, err)
		assert.Equal(t, KindValidation, KindOf(err))
	})
}

func TestExecutorSelectorFlags(t *testing.T) {
	client := &mockNautobotClient{response: deviceResponse()}
	executor := newTestExecutor(client, 0)
	def := testDefinition(t, "query_devices_dynamic")

	_, err := executor.Execute(def, map[string]interface{}{
		"variable_name":  "name",
		"variable_value": []string{"router1"},
		"get_role":       true,
		"get_status":     false,
		"not_a_flag":     true,
	})
	require.NoError(t, err)

	assert.Equal(t, true, client.lastVariables["get_role"])
	assert.Equal(t, false, client.lastVariables["get_status"])
	assert.NotContains(t, client.lastVariables, "not_a_flag")
}

func TestExecutorTransportArgumentShapes(t *testing.T) {
	// JSON transport hands lists through as []interface{}
	client := &mockNautobotClient{response: deviceResponse()}
	executor := newTestExecutor(client, 0)
	def := testDefinition(t, "query_devices_dynamic")

	_, err := executor.Execute(def, map[string]interface{}{
		"variable_name":  "name",
		"variable_value": []interface{}{"router1", "router2"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"router1", "router2"}, client.lastVariables["variable_value"])
}
