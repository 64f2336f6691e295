package query

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/nerdfunk-net/nautobot-mcp/internal/logger"
)

// CustomFieldPrefix marks dynamically-typed schema extension fields. They
// bypass the valid-field check and are filtered as scalars on the backend.
const CustomFieldPrefix = "cf_"

// suggestionCutoff is the minimum similarity ratio for a fuzzy suggestion
const suggestionCutoff = 0.4

// IsCustomField reports whether a field name addresses a custom field
func IsCustomField(field string) bool {
	return strings.HasPrefix(field, CustomFieldPrefix)
}

// FieldTable holds the alias map and valid-field set for one entity type
type FieldTable struct {
	entity       string
	aliases      map[string]string
	valid        map[string]struct{}
	defaultField string
	log          *logger.Logger
}

// NewFieldTable builds a field table. Alias keys are expected lowercase and
// every alias target must be a member of validFields.
func NewFieldTable(entity, defaultField string, validFields []string, aliases map[string]string, log *logger.Logger) *FieldTable {
	valid := make(map[string]struct{}, len(validFields))
	for _, f := range validFields {
		valid[f] = struct{}{}
	}
	return &FieldTable{
		entity:       entity,
		aliases:      aliases,
		valid:        valid,
		defaultField: defaultField,
		log:          log,
	}
}

// MapField maps a user term to its canonical field name, falling back to the
// input unchanged when no alias exists
func (t *FieldTable) MapField(term string) string {
	if canonical, ok := t.aliases[strings.ToLower(term)]; ok {
		return canonical
	}
	return term
}

// IsValid reports whether a canonical field can be filtered on
func (t *FieldTable) IsValid(field string) bool {
	if IsCustomField(field) {
		return true
	}
	_, ok := t.valid[field]
	return ok
}

// ValidFields returns the sorted valid-field set
func (t *FieldTable) ValidFields() []string {
	fields := make([]string, 0, len(t.valid))
	for f := range t.valid {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fields
}

// Suggest proposes the closest field for an unknown term. An exact alias hit
// wins; otherwise approximate matching over the valid fields and alias keys,
// falling back to the entity default.
func (t *FieldTable) Suggest(term string) string {
	lower := strings.ToLower(term)
	if canonical, ok := t.aliases[lower]; ok {
		return canonical
	}

	candidates := make([]string, 0, len(t.valid)+len(t.aliases))
	for f := range t.valid {
		candidates = append(candidates, f)
	}
	for a := range t.aliases {
		candidates = append(candidates, a)
	}
	sort.Strings(candidates)

	best := ""
	bestRatio := 0.0
	for _, candidate := range candidates {
		ratio := similarity(lower, strings.ToLower(candidate))
		if ratio > bestRatio {
			bestRatio = ratio
			best = candidate
		}
	}
	if bestRatio < suggestionCutoff {
		return t.defaultField
	}
	// Suggestions always name a canonical field, never an alias
	return t.MapField(best)
}

// Resolve maps and validates a user-supplied field name, keeping any lookup
// suffix intact. Returns the canonical field or a validation error carrying
// the suggestion and the full valid-field list.
func (t *FieldTable) Resolve(field string) (string, error) {
	base, suffix := SplitLookupSuffix(field)
	mapped := t.MapField(base)

	if !t.IsValid(mapped) {
		return "", NewValidationError(
			"Invalid field name: '%s'. Did you mean '%s'? Available fields: %s. For custom fields, use 'cf_fieldname' format.",
			field, t.Suggest(base), strings.Join(t.ValidFields(), ", "))
	}

	if mapped != base && t.log != nil {
		t.log.Info("Mapped field '%s' to '%s'", base, mapped)
	}

	return mapped + suffix, nil
}

// similarity is a normalized edit-distance ratio in [0, 1]
func similarity(a, b string) float64 {
	if a == b {
		return 1.0
	}
	longest := len(a)
	if len(b) > longest {
		longest = len(b)
	}
	if longest == 0 {
		return 0.0
	}
	dist := levenshtein.ComputeDistance(a, b)
	return 1.0 - float64(dist)/float64(longest)
}
