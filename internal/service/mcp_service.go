package service

import (
	"encoding/json"
	"fmt"
	"time"

	mcp "github.com/metoro-io/mcp-golang"

	"github.com/nerdfunk-net/nautobot-mcp/internal/config"
	"github.com/nerdfunk-net/nautobot-mcp/internal/idcache"
	"github.com/nerdfunk-net/nautobot-mcp/internal/logger"
	"github.com/nerdfunk-net/nautobot-mcp/internal/nautobot"
	"github.com/nerdfunk-net/nautobot-mcp/internal/onboard"
	"github.com/nerdfunk-net/nautobot-mcp/internal/query"
	"github.com/nerdfunk-net/nautobot-mcp/internal/resolver"
)

// NautobotMCPService exposes the Nautobot query engine as MCP tools
type NautobotMCPService struct {
	client       nautobot.ClientInterface
	config       *config.Config
	logger       *logger.Logger
	registry     *query.Registry
	executor     *query.Executor
	idCache      *idcache.Cache
	resolver     *resolver.Resolver
	orchestrator *onboard.Orchestrator
	history      *QueryHistory
}

// NewNautobotMCPService creates the service and wires the query engine,
// resolver cache and onboarding orchestrator together
func NewNautobotMCPService(cfg *config.Config, log *logger.Logger) (*NautobotMCPService, error) {
	client := nautobot.NewClient(&cfg.Nautobot)
	return NewNautobotMCPServiceWithClient(cfg, log, client)
}

// NewNautobotMCPServiceWithClient creates the service on top of an existing
// client. Tests use this to substitute a mock backend.
func NewNautobotMCPServiceWithClient(cfg *config.Config, log *logger.Logger, client nautobot.ClientInterface) (*NautobotMCPService, error) {
	registry, err := query.NewRegistry(log)
	if err != nil {
		return nil, fmt.Errorf("failed to build query registry: %w", err)
	}

	executor := query.NewExecutor(client, log, cfg.Nautobot.MaxResponseBytes)
	idCache := idcache.New(cfg.Nautobot.IDCache.TTLSeconds, log)
	res := resolver.New(client, idCache, registry, executor, log)

	history, err := NewQueryHistory(log)
	if err != nil {
		// The server still works without call history, only analytics degrade
		log.Warn("Query history unavailable: %v", err)
		history = nil
	}

	service := &NautobotMCPService{
		client:       client,
		config:       cfg,
		logger:       log,
		registry:     registry,
		executor:     executor,
		idCache:      idCache,
		resolver:     res,
		orchestrator: onboard.New(client, res, log),
		history:      history,
	}

	log.LogInitialization("nautobot-mcp-service", "created", map[string]interface{}{
		"nautobot_url":       cfg.Nautobot.URL,
		"registered_queries": len(registry.All()),
		"cache_ttl_seconds":  cfg.Nautobot.IDCache.TTLSeconds,
	})

	return service, nil
}

// TestConnection verifies the Nautobot API is reachable
func (s *NautobotMCPService) TestConnection() error {
	return s.client.TestConnection()
}

// Shutdown gracefully closes the service's resources
func (s *NautobotMCPService) Shutdown(timeout time.Duration) error {
	s.logger.Info("Shutting down Nautobot MCP service (timeout: %v)", timeout)

	done := make(chan error, 1)
	go func() {
		if s.history != nil {
			done <- s.history.Close()
			return
		}
		done <- nil
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("failed to close query history: %w", err)
		}
		s.logger.Info("Nautobot MCP service shutdown complete")
		return nil
	case <-time.After(timeout):
		return fmt.Errorf("shutdown timed out after %v", timeout)
	}
}

// logToolCall logs a completed tool invocation
func (s *NautobotMCPService) logToolCall(toolName string, args interface{}, duration time.Duration, err error) {
	s.logger.LogToolCall(toolName, args, duration, err)
	if s.history != nil {
		if recordErr := s.history.Record(toolName, duration, err); recordErr != nil {
			s.logger.Debug("Failed to record tool call: %v", recordErr)
		}
	}
}

// timeAndLogTool wraps a tool execution with timing and logging
func (s *NautobotMCPService) timeAndLogTool(toolName string, args interface{}, fn func() error) error {
	start := time.Now()
	err := fn()
	s.logToolCall(toolName, args, time.Since(start), err)
	return err
}

// RegisterTools registers all Nautobot tools with the MCP server
func (s *NautobotMCPService) RegisterTools(server *mcp.Server) error {
	if err := server.RegisterTool("query_devices_dynamic", "Query Nautobot devices with dynamic filtering. Accepts a natural language prompt or explicit variable_name/variable_value filters with lookup expressions (__ic, __isw, __re, ...). Output fields are selected with get_* flags.", s.queryDevices); err != nil {
		return fmt.Errorf("failed to register query_devices_dynamic tool: %w", err)
	}

	if err := server.RegisterTool("query_interfaces_dynamic", "Query Nautobot interfaces with dynamic filtering by name, device, type, status or enabled state.", s.queryInterfaces); err != nil {
		return fmt.Errorf("failed to register query_interfaces_dynamic tool: %w", err)
	}

	if err := server.RegisterTool("query_ipam_dynamic", "Query Nautobot IP addresses with dynamic filtering by address, DNS name, mask length or assignment.", s.queryIPAddresses); err != nil {
		return fmt.Errorf("failed to register query_ipam_dynamic tool: %w", err)
	}

	if err := server.RegisterTool("query_prefixes_dynamic", "Query Nautobot prefixes with dynamic filtering, including 'within' and 'within_include' containment lookups.", s.queryPrefixes); err != nil {
		return fmt.Errorf("failed to register query_prefixes_dynamic tool: %w", err)
	}

	if err := server.RegisterTool("query_locations_dynamic", "Query Nautobot locations with dynamic filtering by name, parent, status or tenant.", s.queryLocations); err != nil {
		return fmt.Errorf("failed to register query_locations_dynamic tool: %w", err)
	}

	if err := server.RegisterTool("query_manufacturers_dynamic", "Query Nautobot manufacturers with dynamic filtering by name or description.", s.queryManufacturers); err != nil {
		return fmt.Errorf("failed to register query_manufacturers_dynamic tool: %w", err)
	}

	if err := server.RegisterTool("query_device_types_dynamic", "Query Nautobot device types with dynamic filtering by model or manufacturer.", s.queryDeviceTypes); err != nil {
		return fmt.Errorf("failed to register query_device_types_dynamic tool: %w", err)
	}

	if err := server.RegisterTool("query_tags_dynamic", "Query Nautobot tags with dynamic filtering by name or description.", s.queryTags); err != nil {
		return fmt.Errorf("failed to register query_tags_dynamic tool: %w", err)
	}

	if err := server.RegisterTool("query_namespaces_dynamic", "Query Nautobot namespaces with dynamic filtering by name, description or location.", s.queryNamespaces); err != nil {
		return fmt.Errorf("failed to register query_namespaces_dynamic tool: %w", err)
	}

	if err := server.RegisterTool("query_secrets_groups_dynamic", "Query Nautobot secrets groups with dynamic filtering by name.", s.querySecretsGroups); err != nil {
		return fmt.Errorf("failed to register query_secrets_groups_dynamic tool: %w", err)
	}

	if err := server.RegisterTool("query_roles_dynamic", "Query Nautobot roles with dynamic filtering by name, description or content type.", s.queryRoles); err != nil {
		return fmt.Errorf("failed to register query_roles_dynamic tool: %w", err)
	}

	if err := server.RegisterTool("query_statuses_dynamic", "Query Nautobot statuses with dynamic filtering by name or description.", s.queryStatuses); err != nil {
		return fmt.Errorf("failed to register query_statuses_dynamic tool: %w", err)
	}

	if err := server.RegisterTool("onboard_device", "Onboard a network device into Nautobot. Resolves location, role, namespace, status, platform and secrets group names to IDs and starts the 'Sync Devices From Network' job.", s.onboardDevice); err != nil {
		return fmt.Errorf("failed to register onboard_device tool: %w", err)
	}

	if err := server.RegisterTool("help_find_query", "Find the right Nautobot query tool for what you are trying to do.", s.helpFindQuery); err != nil {
		return fmt.Errorf("failed to register help_find_query tool: %w", err)
	}

	if err := server.RegisterTool("query_rest_api_fallback", "Query Nautobot resources that have no dedicated tool (VLANs, VRFs, racks, circuits, tenants, ...) through the REST API.", s.restFallback); err != nil {
		return fmt.Errorf("failed to register query_rest_api_fallback tool: %w", err)
	}

	if err := server.RegisterTool("get_cache_stats", "Show hit/miss statistics of the name-to-ID resolution cache.", s.getCacheStats); err != nil {
		return fmt.Errorf("failed to register get_cache_stats tool: %w", err)
	}

	if err := server.RegisterTool("get_query_analytics", "Show recent tool call history and per-tool usage statistics.", s.getQueryAnalytics); err != nil {
		return fmt.Errorf("failed to register get_query_analytics tool: %w", err)
	}

	s.logger.Info("Registered %d MCP tools", 17)
	return nil
}

// RegisterPrompts registers interactive workflow prompts
func (s *NautobotMCPService) RegisterPrompts(server *mcp.Server) error {
	if err := server.RegisterPrompt("device_onboarding_workflow", "Interactive workflow for onboarding a new network device into Nautobot", func(args OnboardingWorkflowArgs) (*mcp.PromptResponse, error) {
		guide := "To onboard a device you need three things: the device's IP address, " +
			"its location name and the secrets group holding its credentials.\n\n" +
			"1. Use `query_locations_dynamic` to confirm the location exists\n" +
			"2. Use `query_secrets_groups_dynamic` to confirm the secrets group exists\n" +
			"3. Call `onboard_device` with ip_address, location and secret_groups\n\n" +
			"Role (default 'network'), namespace (default 'Global'), status (default 'Active') " +
			"and platform (default autodetect) are optional."
		return mcp.NewPromptResponse("Device Onboarding", mcp.NewPromptMessage(mcp.NewTextContent(guide), mcp.RoleAssistant)), nil
	}); err != nil {
		return fmt.Errorf("failed to register device_onboarding_workflow prompt: %w", err)
	}

	if err := server.RegisterPrompt("query_discovery", "Workflow for finding the right Nautobot query tool and building a filter", func(args QueryDiscoveryArgs) (*mcp.PromptResponse, error) {
		guide := "Finding data in Nautobot:\n\n" +
			"1. Describe what you are looking for to `help_find_query` (e.g. 'devices in a datacenter')\n" +
			"2. Call the recommended query tool with a natural language `prompt`, " +
			"or with explicit `variable_name`/`variable_value` filters\n" +
			"3. Narrow the output with `get_*` selector flags\n" +
			"4. Lookup expressions refine filters: `name__ic` (contains), `name__isw` (starts with), " +
			"`name__n` (not equal), `name__isnull`\n" +
			"5. For resources without a dedicated tool (VLANs, racks, circuits), " +
			"use `query_rest_api_fallback`"
		return mcp.NewPromptResponse("Query Discovery", mcp.NewPromptMessage(mcp.NewTextContent(guide), mcp.RoleAssistant)), nil
	}); err != nil {
		return fmt.Errorf("failed to register query_discovery prompt: %w", err)
	}

	return nil
}

// RegisterResources registers MCP resources
func (s *NautobotMCPService) RegisterResources(server *mcp.Server) error {
	if err := server.RegisterResource("nautobot://server/context", "server_context", "Current server context including registered query tools and cache state", "application/json", func() (*mcp.ResourceResponse, error) {
		tools := make([]map[string]string, 0)
		for _, def := range s.registry.All() {
			tools = append(tools, map[string]string{
				"tool":        def.ToolName,
				"entity":      def.Entity,
				"description": def.Description,
			})
		}

		context := map[string]interface{}{
			"nautobot_url": s.config.Nautobot.URL,
			"query_tools":  tools,
			"cache_stats":  s.idCache.Stats(),
		}

		contextJSON, err := json.MarshalIndent(context, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to marshal server context: %w", err)
		}

		s.logger.LogResourceAccess("nautobot://server/context", "read", true, nil)
		return mcp.NewResourceResponse(mcp.NewTextEmbeddedResource("nautobot://server/context", string(contextJSON), "application/json")), nil
	}); err != nil {
		return fmt.Errorf("failed to register server context resource: %w", err)
	}

	return nil
}

// getCacheStats returns the resolver cache counters
func (s *NautobotMCPService) getCacheStats(args CacheStatsArgs) (*mcp.ToolResponse, error) {
	var response *mcp.ToolResponse
	err := s.timeAndLogTool("get_cache_stats", args, func() error {
		stats := s.idCache.Stats()
		statsJSON, err := json.MarshalIndent(stats, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal cache stats: %w", err)
		}
		response = mcp.NewToolResponse(mcp.NewTextContent(string(statsJSON)))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return response, nil
}

// getQueryAnalytics returns recent tool call history from the local database
func (s *NautobotMCPService) getQueryAnalytics(args QueryAnalyticsArgs) (*mcp.ToolResponse, error) {
	var response *mcp.ToolResponse
	err := s.timeAndLogTool("get_query_analytics", args, func() error {
		if s.history == nil {
			response = mcp.NewToolResponse(mcp.NewTextContent("Query analytics are not available: the local history database could not be opened."))
			return nil
		}

		limit := args.Limit
		if limit <= 0 {
			limit = 20
		}

		analytics, err := s.history.Analytics(limit)
		if err != nil {
			return fmt.Errorf("failed to read query analytics: %w", err)
		}

		analyticsJSON, err := json.MarshalIndent(analytics, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal analytics: %w", err)
		}
		response = mcp.NewToolResponse(mcp.NewTextContent(string(analyticsJSON)))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return response, nil
}
