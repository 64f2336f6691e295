package query

import (
	"fmt"
	"sort"

	"github.com/nerdfunk-net/nautobot-mcp/internal/logger"
)

// Definition describes one entity type's dynamic query: its template, field
// tables and prompt parser. Definitions are data; a single Executor runs all
// of them.
type Definition struct {
	// ToolName is the MCP tool this definition is exposed as
	ToolName string
	// Entity keys the sanitizer's per-entity value rules
	Entity string
	// Description is surfaced to the tool transport
	Description string
	// Template is the parameterized query skeleton
	Template *Template
	// Fields validates and maps filter field names
	Fields *FieldTable
	// BooleanFields names filter fields whose variable narrows to Boolean
	BooleanFields map[string]struct{}
	// Parse converts a free-text prompt into partial arguments; nil when the
	// entity has no prompt parser
	Parse func(prompt string) map[string]interface{}
	// SubtreeVars are variable names dropped when the template's gated
	// subtree is stripped
	SubtreeVars []string
}

// IsBooleanField reports whether the resolved field (ignoring any lookup
// suffix) is boolean-valued
func (d *Definition) IsBooleanField(field string) bool {
	base, _ := SplitLookupSuffix(field)
	_, ok := d.BooleanFields[base]
	return ok
}

// Registry holds all query definitions, constructed once at startup and
// passed to the transport layer. There is no package-level instance.
type Registry struct {
	definitions map[string]*Definition
}

// NewRegistry builds the full entity catalog
func NewRegistry(log *logger.Logger) (*Registry, error) {
	r := &Registry{definitions: make(map[string]*Definition)}

	builders := []func(*logger.Logger) (*Definition, error){
		newDeviceDefinition,
		newInterfaceDefinition,
		newIPAddressDefinition,
		newPrefixDefinition,
		newLocationDefinition,
		newManufacturerDefinition,
		newDeviceTypeDefinition,
		newTagDefinition,
		newNamespaceDefinition,
		newSecretsGroupDefinition,
		newRoleDefinition,
		newStatusDefinition,
	}

	for _, build := range builders {
		def, err := build(log)
		if err != nil {
			return nil, fmt.Errorf("failed to build query definition: %w", err)
		}
		if err := r.Register(def); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// Register adds a definition, rejecting duplicate tool names
func (r *Registry) Register(def *Definition) error {
	if _, exists := r.definitions[def.ToolName]; exists {
		return fmt.Errorf("query definition %q already registered", def.ToolName)
	}
	r.definitions[def.ToolName] = def
	return nil
}

// Get looks up a definition by tool name
func (r *Registry) Get(toolName string) (*Definition, bool) {
	def, ok := r.definitions[toolName]
	return def, ok
}

// All returns every definition sorted by tool name
func (r *Registry) All() []*Definition {
	defs := make([]*Definition, 0, len(r.definitions))
	for _, def := range r.definitions {
		defs = append(defs, def)
	}
	sort.Slice(defs, func(i, j int) bool { return defs[i].ToolName < defs[j].ToolName })
	return defs
}
