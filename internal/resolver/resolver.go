package resolver

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/nerdfunk-net/nautobot-mcp/internal/idcache"
	"github.com/nerdfunk-net/nautobot-mcp/internal/logger"
	"github.com/nerdfunk-net/nautobot-mcp/internal/nautobot"
	"github.com/nerdfunk-net/nautobot-mcp/internal/query"
)

// Resolver converts human-readable names into backend ids. GraphQL-backed
// categories go through the dynamic query layer with get_id enabled; the
// remaining categories filter a REST collection by name. All categories share
// one TTL cache.
type Resolver struct {
	client   nautobot.ClientInterface
	cache    *idcache.Cache
	registry *query.Registry
	executor *query.Executor
	log      *logger.Logger
}

// New creates a resolver on top of the shared cache and query layer
func New(client nautobot.ClientInterface, cache *idcache.Cache, registry *query.Registry, executor *query.Executor, log *logger.Logger) *Resolver {
	return &Resolver{
		client:   client,
		cache:    cache,
		registry: registry,
		executor: executor,
		log:      log,
	}
}

// resolve wraps a source lookup with the cache. Only successful, non-empty
// resolutions are written through.
func (r *Resolver) resolve(category, name string, fromSource func(string) (string, error)) (string, error) {
	operation := fmt.Sprintf("%s:%s", category, name)
	if id, ok := r.cache.Get(category, name); ok {
		r.log.LogCacheMetrics(operation, true, "id_cache", map[string]interface{}{"id": id})
		return id, nil
	}
	r.log.LogCacheMetrics(operation, false, "id_cache", nil)

	id, err := fromSource(name)
	if err == nil && id != "" {
		r.cache.Set(category, name, id)
	}
	return id, err
}

// resolveViaQuery runs the entity's dynamic query filtered by name with only
// the id selected. The first record wins when several match.
func (r *Resolver) resolveViaQuery(category, toolName, label, name string) (string, error) {
	return r.resolve(category, name, func(name string) (string, error) {
		def, ok := r.registry.Get(toolName)
		if !ok {
			return "", query.NewResolutionError("Error resolving %s '%s': query %s not registered", category, name, toolName)
		}

		result, err := r.executor.Execute(def, map[string]interface{}{
			"variable_name":  "name",
			"variable_value": []string{name},
			"get_id":         true,
		})
		if err != nil {
			return "", query.NewResolutionError("Error resolving %s '%s': %v", category, name, err)
		}

		if len(result.Records) == 0 {
			return "", query.NewResolutionError("%s '%s' not found", label, name)
		}
		if len(result.Records) > 1 {
			r.log.Warn("Multiple %s records match '%s', using the first", category, name)
		}

		record, ok := result.Records[0].(map[string]interface{})
		if !ok {
			return "", query.NewResolutionError("Error resolving %s '%s': malformed record", category, name)
		}
		id, ok := record["id"].(string)
		if !ok {
			return "", query.NewResolutionError("Error resolving %s '%s': record has no id", category, name)
		}
		return id, nil
	})
}

// resolveViaREST fetches a REST collection filtered by name and takes the
// first result
func (r *Resolver) resolveViaREST(category, path, label, name string) (string, error) {
	return r.resolve(category, name, func(name string) (string, error) {
		response, err := r.client.RESTGet(fmt.Sprintf("%s?name=%s", path, url.QueryEscape(name)))
		if err != nil {
			return "", query.NewResolutionError("Error resolving %s '%s': %v", category, name, err)
		}

		results, _ := response["results"].([]interface{})
		if len(results) == 0 {
			return "", query.NewResolutionError("%s '%s' not found", label, name)
		}
		if len(results) > 1 {
			r.log.Warn("Multiple %s records match '%s', using the first", category, name)
		}

		record, ok := results[0].(map[string]interface{})
		if !ok {
			return "", query.NewResolutionError("Error resolving %s '%s': malformed record", category, name)
		}
		id, ok := record["id"].(string)
		if !ok {
			return "", query.NewResolutionError("Error resolving %s '%s': record has no id", category, name)
		}
		return id, nil
	})
}

// ResolveLocation maps a location name to its id
func (r *Resolver) ResolveLocation(name string) (string, error) {
	return r.resolveViaQuery("location", "query_locations_dynamic", "Location", name)
}

// ResolveNamespace maps a namespace name to its id
func (r *Resolver) ResolveNamespace(name string) (string, error) {
	return r.resolveViaQuery("namespace", "query_namespaces_dynamic", "Namespace", name)
}

// ResolveSecretsGroup maps a secrets group name to its id
func (r *Resolver) ResolveSecretsGroup(name string) (string, error) {
	return r.resolveViaQuery("secrets_group", "query_secrets_groups_dynamic", "Secrets group", name)
}

// ResolveRole maps a role name to its id
func (r *Resolver) ResolveRole(name string) (string, error) {
	return r.resolveViaREST("role", "/api/extras/roles/", "Role", name)
}

// ResolveStatus maps a status name to its id
func (r *Resolver) ResolveStatus(name string) (string, error) {
	return r.resolveViaREST("status", "/api/extras/statuses/", "Status", name)
}

// autodetectNames are platform spellings meaning "let the backend detect the
// platform"
var autodetectNames = map[string]struct{}{
	"":           {},
	"auto":       {},
	"autodetect": {},
	"detect":     {},
}

// ResolvePlatform maps a platform name to its id. An empty or auto-detect
// name yields an empty id with no error, and lookup failures also fall back
// to auto-detection instead of propagating.
func (r *Resolver) ResolvePlatform(name string) (string, error) {
	if _, ok := autodetectNames[strings.ToLower(name)]; ok {
		return "", nil
	}

	id, err := r.resolveViaREST("platform", "/api/dcim/platforms/", "Platform", name)
	if err != nil {
		r.log.Warn("Platform '%s' could not be resolved, using autodetection: %v", name, err)
		return "", nil
	}
	return id, nil
}
