package onboard

import (
	"fmt"
	"strings"
	"sync"

	"github.com/nerdfunk-net/nautobot-mcp/internal/logger"
	"github.com/nerdfunk-net/nautobot-mcp/internal/nautobot"
	"github.com/nerdfunk-net/nautobot-mcp/internal/query"
	"github.com/nerdfunk-net/nautobot-mcp/internal/resolver"
)

// syncDevicesJobPath is the provisioning job endpoint
const syncDevicesJobPath = "/api/extras/jobs/Sync%20Devices%20From%20Network/run/"

const (
	defaultRole      = "network"
	defaultNamespace = "Global"
	defaultStatus    = "Active"
	defaultPort      = 22
	defaultTimeout   = 30
)

// Request carries the onboarding inputs. IPAddress, Location and
// SecretGroups are mandatory; the rest fall back to defaults.
type Request struct {
	IPAddress                     string
	Location                      string
	SecretGroups                  string
	Role                          string
	Namespace                     string
	Status                        string
	Platform                      string
	Port                          int
	Timeout                       int
	UpdateDevicesWithoutPrimaryIP bool
}

// Orchestrator resolves every name in an onboarding request to a backend id
// and triggers the provisioning job. Resolution failures are aggregated into
// one report; the job is only started when every resolution succeeded.
type Orchestrator struct {
	client   nautobot.ClientInterface
	resolver *resolver.Resolver
	log      *logger.Logger
}

// New creates an orchestrator
func New(client nautobot.ClientInterface, res *resolver.Resolver, log *logger.Logger) *Orchestrator {
	return &Orchestrator{client: client, resolver: res, log: log}
}

// resolution is one category's outcome
type resolution struct {
	category string
	id       string
	err      error
}

// Onboard validates the request, resolves all six identifier categories and
// starts the provisioning job. The returned string is the human-readable
// report; the error is non-nil only for validation failures.
func (o *Orchestrator) Onboard(req Request) (string, error) {
	if req.IPAddress == "" {
		return "", query.NewValidationError("Error: ip_address is required for device onboarding")
	}
	if req.Location == "" {
		return "", query.NewValidationError("Error: location is required for device onboarding")
	}
	if req.SecretGroups == "" {
		return "", query.NewValidationError("Error: secret_groups is required for device authentication")
	}

	role := req.Role
	if role == "" {
		role = defaultRole
	}
	namespace := req.Namespace
	if namespace == "" {
		namespace = defaultNamespace
	}
	status := req.Status
	if status == "" {
		status = defaultStatus
	}
	port := req.Port
	if port == 0 {
		port = defaultPort
	}
	timeout := req.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}

	o.log.Info("Starting onboarding process for device %s", req.IPAddress)
	o.log.Info("Resolving names to IDs...")

	tasks := []struct {
		category string
		name     string
		resolve  func(string) (string, error)
	}{
		{"location", req.Location, o.resolver.ResolveLocation},
		{"secrets_group", req.SecretGroups, o.resolver.ResolveSecretsGroup},
		{"role", role, o.resolver.ResolveRole},
		{"namespace", namespace, o.resolver.ResolveNamespace},
		{"status", status, o.resolver.ResolveStatus},
		{"platform", req.Platform, o.resolver.ResolvePlatform},
	}

	results := make([]resolution, len(tasks))
	var wg sync.WaitGroup
	for i, task := range tasks {
		wg.Add(1)
		go func(i int, category, name string, resolve func(string) (string, error)) {
			defer wg.Done()
			id, err := resolve(name)
			results[i] = resolution{category: category, id: id, err: err}
		}(i, task.category, task.name, task.resolve)
	}
	wg.Wait()

	resolved := make(map[string]string, len(tasks))
	var failures []string
	for _, res := range results {
		if res.err != nil {
			failures = append(failures, fmt.Sprintf("  ❌ %s: %v", res.category, res.err))
			continue
		}
		resolved[res.category] = res.id
		o.log.Info("✅ Resolved %s to ID: %s", res.category, res.id)
	}

	if len(failures) > 0 {
		var b strings.Builder
		b.WriteString("❌ Failed to resolve the following parameters to IDs:\n\n")
		b.WriteString(strings.Join(failures, "\n"))
		b.WriteString("\n\n**Troubleshooting:**\n")
		b.WriteString("- Use `query_locations_dynamic` to see available locations\n")
		b.WriteString("- Use `query_namespaces_dynamic` to see available namespaces\n")
		b.WriteString("- Use `query_rest_api_fallback` with 'roles' to see available roles\n")
		b.WriteString("- Use `query_rest_api_fallback` with 'statuses' to see available statuses\n")
		b.WriteString("- Check that secret groups exist in your Nautobot instance\n")
		return b.String(), nil
	}

	deviceData := map[string]interface{}{
		"location":                          resolved["location"],
		"ip_addresses":                      req.IPAddress,
		"secrets_group":                     resolved["secrets_group"],
		"device_role":                       resolved["role"],
		"namespace":                         resolved["namespace"],
		"device_status":                     resolved["status"],
		"interface_status":                  resolved["status"],
		"ip_address_status":                 resolved["status"],
		"platform":                          platformValue(resolved["platform"]),
		"port":                              port,
		"timeout":                           timeout,
		"update_devices_without_primary_ip": req.UpdateDevicesWithoutPrimaryIP,
	}

	o.log.Info("Resolved device data with IDs: %v", deviceData)

	response, err := o.client.RESTPost(syncDevicesJobPath, map[string]interface{}{"data": deviceData})
	if err != nil {
		return o.provisioningFailure(req, err), nil
	}

	jobID, _ := response["job_id"].(string)
	if jobID == "" {
		return fmt.Sprintf("❌ Device onboarding failed: No job ID returned from Nautobot\nResponse: %v", response), nil
	}

	return o.successReport(req, jobID, role, status, namespace, port, timeout, resolved), nil
}

// platformValue maps the auto-detect sentinel (empty id) to an explicit null
func platformValue(id string) interface{} {
	if id == "" {
		return nil
	}
	return id
}

func (o *Orchestrator) successReport(req Request, jobID, role, status, namespace string, port, timeout int, resolved map[string]string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "✅ Device %s successfully queued for onboarding\n\n", req.IPAddress)
	fmt.Fprintf(&b, "**Job ID**: %s\n\n", jobID)
	b.WriteString("**Device Details** (names → IDs resolved):\n")
	fmt.Fprintf(&b, "  - IP Address: %s\n", req.IPAddress)
	fmt.Fprintf(&b, "  - Location: %s → %s\n", req.Location, resolved["location"])
	if resolved["platform"] == "" {
		fmt.Fprintf(&b, "  - Platform: %s → autodetect\n", req.Platform)
	} else {
		fmt.Fprintf(&b, "  - Platform: %s → %s\n", req.Platform, resolved["platform"])
	}
	fmt.Fprintf(&b, "  - Role: %s → %s\n", role, resolved["role"])
	fmt.Fprintf(&b, "  - Status: %s → %s\n", status, resolved["status"])
	fmt.Fprintf(&b, "  - Namespace: %s → %s\n", namespace, resolved["namespace"])
	fmt.Fprintf(&b, "  - Secret Groups: %s → %s\n", req.SecretGroups, resolved["secrets_group"])
	fmt.Fprintf(&b, "  - Port: %d\n", port)
	fmt.Fprintf(&b, "  - Timeout: %ds\n\n", timeout)
	b.WriteString("The device onboarding job is now running in the background. ")
	b.WriteString("You can monitor the job progress in Nautobot's Jobs interface.")
	return b.String()
}

func (o *Orchestrator) provisioningFailure(req Request, err error) string {
	var b strings.Builder
	fmt.Fprintf(&b, "❌ Device onboarding failed: %v\n\n", err)
	b.WriteString("This could be due to:\n")
	b.WriteString("1. Network connectivity issues\n")
	b.WriteString("2. Authentication problems\n")
	b.WriteString("3. API endpoint not available\n")
	b.WriteString("4. Invalid resolved ID values\n\n")
	b.WriteString("**Debug Information**:\n")
	fmt.Fprintf(&b, "- IP Address: %s\n", req.IPAddress)
	fmt.Fprintf(&b, "- Location: %s\n", req.Location)
	fmt.Fprintf(&b, "- Secret Groups: %s\n", req.SecretGroups)
	return b.String()
}
