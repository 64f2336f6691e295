package service

import (
	"encoding/json"
	"errors"
	"fmt"

	mcp "github.com/metoro-io/mcp-golang"

	"github.com/nerdfunk-net/nautobot-mcp/internal/query"
)

// argsToMap converts a typed args struct into the generic argument map the
// query executor consumes. The json tags of the args structs match the
// executor's expected keys, so a marshal round-trip is the whole conversion;
// omitempty keeps unset selector flags out of the map entirely.
func argsToMap(args interface{}) (map[string]interface{}, error) {
	raw, err := json.Marshal(args)
	if err != nil {
		return nil, fmt.Errorf("failed to encode tool arguments: %w", err)
	}

	var result map[string]interface{}
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("failed to decode tool arguments: %w", err)
	}
	return result, nil
}

// runDynamicQuery executes a registered dynamic query and renders the result
// as indented JSON. Engine errors carry a kind; they are rendered as text here
// at the transport boundary so the caller always gets a readable message
// instead of a bare protocol error.
func (s *NautobotMCPService) runDynamicQuery(toolName string, args interface{}) (*mcp.ToolResponse, error) {
	return s.runSummarizedQuery(toolName, args, nil)
}

// runSummarizedQuery is runDynamicQuery with an optional summary prepended to
// the JSON payload
func (s *NautobotMCPService) runSummarizedQuery(toolName string, args interface{}, summarize func(*query.Result) string) (*mcp.ToolResponse, error) {
	var response *mcp.ToolResponse
	err := s.timeAndLogTool(toolName, args, func() error {
		def, ok := s.registry.Get(toolName)
		if !ok {
			return fmt.Errorf("query %s is not registered", toolName)
		}

		argMap, err := argsToMap(args)
		if err != nil {
			return err
		}

		result, execErr := s.executor.Execute(def, argMap)
		if execErr != nil {
			rendered, renderErr := renderQueryError(execErr)
			if renderErr != nil {
				return execErr
			}
			response = rendered
			return execErr
		}

		resultJSON, err := json.MarshalIndent(result.ToMap(), "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal query result: %w", err)
		}

		text := string(resultJSON)
		if summarize != nil {
			text = summarize(result) + "\n" + text
		}
		response = mcp.NewToolResponse(mcp.NewTextContent(text))
		return nil
	})

	if response != nil {
		return response, nil
	}
	return nil, err
}

// renderQueryError turns a classified engine error into a text response. Only
// engine errors are rendered; anything else propagates as a protocol error.
func renderQueryError(err error) (*mcp.ToolResponse, error) {
	var qe *query.Error
	if !errors.As(err, &qe) {
		return nil, err
	}

	var text string
	switch qe.Kind {
	case query.KindValidation:
		text = fmt.Sprintf("Error: %s", qe.Message)
	case query.KindResolution:
		text = qe.Message
	case query.KindSizeLimit:
		text = fmt.Sprintf("Error: %s", qe.Message)
	case query.KindBackend:
		text = fmt.Sprintf("Error executing query: %s", qe.Message)
	default:
		text = fmt.Sprintf("Error: %s", qe.Message)
	}
	return mcp.NewToolResponse(mcp.NewTextContent(text)), nil
}

func (s *NautobotMCPService) queryDevices(args DeviceQueryArgs) (*mcp.ToolResponse, error) {
	return s.runSummarizedQuery("query_devices_dynamic", args, summarizeDevices)
}

func (s *NautobotMCPService) queryInterfaces(args InterfaceQueryArgs) (*mcp.ToolResponse, error) {
	return s.runDynamicQuery("query_interfaces_dynamic", args)
}

func (s *NautobotMCPService) queryIPAddresses(args IPAddressQueryArgs) (*mcp.ToolResponse, error) {
	return s.runSummarizedQuery("query_ipam_dynamic", args, summarizeIPAddresses)
}

func (s *NautobotMCPService) queryPrefixes(args PrefixQueryArgs) (*mcp.ToolResponse, error) {
	return s.runDynamicQuery("query_prefixes_dynamic", args)
}

func (s *NautobotMCPService) queryLocations(args LocationQueryArgs) (*mcp.ToolResponse, error) {
	return s.runDynamicQuery("query_locations_dynamic", args)
}

func (s *NautobotMCPService) queryManufacturers(args ManufacturerQueryArgs) (*mcp.ToolResponse, error) {
	return s.runDynamicQuery("query_manufacturers_dynamic", args)
}

func (s *NautobotMCPService) queryDeviceTypes(args DeviceTypeQueryArgs) (*mcp.ToolResponse, error) {
	return s.runDynamicQuery("query_device_types_dynamic", args)
}

func (s *NautobotMCPService) queryTags(args TagQueryArgs) (*mcp.ToolResponse, error) {
	return s.runDynamicQuery("query_tags_dynamic", args)
}

func (s *NautobotMCPService) queryNamespaces(args NamespaceQueryArgs) (*mcp.ToolResponse, error) {
	return s.runDynamicQuery("query_namespaces_dynamic", args)
}

func (s *NautobotMCPService) querySecretsGroups(args SecretsGroupQueryArgs) (*mcp.ToolResponse, error) {
	return s.runDynamicQuery("query_secrets_groups_dynamic", args)
}

func (s *NautobotMCPService) queryRoles(args RoleQueryArgs) (*mcp.ToolResponse, error) {
	return s.runDynamicQuery("query_roles_dynamic", args)
}

func (s *NautobotMCPService) queryStatuses(args StatusQueryArgs) (*mcp.ToolResponse, error) {
	return s.runDynamicQuery("query_statuses_dynamic", args)
}
