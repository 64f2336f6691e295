package query

import (
	"fmt"
	"strings"
)

// FilterPlaceholder is the token each query template carries where the
// resolved filter field name is spliced in
const FilterPlaceholder = "enter_variable_name_here"

// VariableType is the declared GraphQL type of the filter variable after
// rewriting
type VariableType int

const (
	// VarStringList is the default declaration, [String]
	VarStringList VariableType = iota
	// VarString narrows to a scalar, used for custom field filters
	VarString
	// VarBoolean narrows to Boolean, used for boolean-valued fields
	VarBoolean
)

// listDeclaration is the declaration every template starts from
const listDeclaration = "$variable_value: [String]"

// subtree describes an optional nested filter section that is stripped as a
// self-contained block when unused
type subtree struct {
	marker       string
	declarations []string
}

// Template wraps a raw GraphQL query skeleton in a builder that validates
// placeholder presence at construction, so a missing placeholder is a caught
// error instead of a silent no-op substitution.
type Template struct {
	text       string
	collection string
	sub        *subtree
}

// TemplateOption configures optional template structure
type TemplateOption func(*Template)

// WithGatedSubtree registers a nested filter placeholder whose whole block
// (tracked by brace depth) plus the named variable declarations are removed
// when no nested filter is supplied
func WithGatedSubtree(marker string, declarations ...string) TemplateOption {
	return func(t *Template) {
		t.sub = &subtree{marker: marker, declarations: declarations}
	}
}

// NewTemplate validates that the skeleton contains exactly one filter
// placeholder, its filter clause and the list variable declaration
func NewTemplate(collection, text string, opts ...TemplateOption) (*Template, error) {
	if n := strings.Count(text, FilterPlaceholder); n != 1 {
		return nil, fmt.Errorf("template for %q must contain exactly one %q placeholder, found %d", collection, FilterPlaceholder, n)
	}
	if !strings.Contains(text, listDeclaration) {
		return nil, fmt.Errorf("template for %q is missing the %q declaration", collection, listDeclaration)
	}
	t := &Template{text: text, collection: collection}
	for _, opt := range opts {
		opt(t)
	}
	if t.sub != nil && !strings.Contains(text, t.sub.marker) {
		return nil, fmt.Errorf("template for %q is missing the %q placeholder", collection, t.sub.marker)
	}
	return t, nil
}

// Collection returns the top-level GraphQL collection this template queries
func (t *Template) Collection() string {
	return t.collection
}

// HasSubtree reports whether the template carries a gated nested filter
// section
func (t *Template) HasSubtree() bool {
	return t.sub != nil
}

// FilterSpec describes how the skeleton is rewritten into a final query
type FilterSpec struct {
	// Field is the resolved canonical filter field, possibly carrying a
	// lookup suffix. Ignored when ShowAll is set.
	Field string
	// VarType narrows the filter variable declaration
	VarType VariableType
	// ShowAll removes filtering entirely
	ShowAll bool
	// SubField fills the nested filter placeholder when the template has a
	// gated subtree; empty means the subtree is stripped
	SubField string
}

// Build rewrites the skeleton according to spec and returns the final query
// text
func (t *Template) Build(spec FilterSpec) (string, error) {
	text := t.text

	if spec.ShowAll {
		text = t.stripFilter(text)
		if t.sub != nil {
			text = t.stripSubtree(text)
		}
		return text, nil
	}

	if spec.Field == "" {
		return "", NewValidationError("Either 'prompt' or both 'variable_name' and 'variable_value' must be provided")
	}

	text = strings.Replace(text, FilterPlaceholder, spec.Field, 1)

	switch spec.VarType {
	case VarString:
		text = strings.Replace(text, listDeclaration, "$variable_value: String", 1)
	case VarBoolean:
		text = strings.Replace(text, listDeclaration, "$variable_value: Boolean", 1)
	}

	if t.sub != nil {
		if spec.SubField != "" {
			text = strings.Replace(text, t.sub.marker, spec.SubField, 1)
		} else {
			text = t.stripSubtree(text)
		}
	}

	return text, nil
}

// stripFilter removes the filter clause and the filter variable declaration,
// reverting to an unfiltered top-level fetch
func (t *Template) stripFilter(text string) string {
	for _, clause := range []string{
		t.collection + "(" + FilterPlaceholder + ": $variable_value)",
		t.collection + " (" + FilterPlaceholder + ": $variable_value)",
	} {
		text = strings.Replace(text, clause, t.collection, 1)
	}
	if strings.Contains(text, listDeclaration+",") {
		text = strings.Replace(text, listDeclaration+",", "", 1)
	} else {
		text = strings.Replace(text, listDeclaration, "", 1)
	}
	return text
}

// stripSubtree removes the nested filter block as a self-contained subtree,
// tracked by brace depth, along with its variable declarations, and repairs
// the trailing comma the removed declarations leave behind
func (t *Template) stripSubtree(text string) string {
	lines := strings.Split(text, "\n")
	result := make([]string, 0, len(lines))
	skipping := false
	braceDepth := 0

	for _, line := range lines {
		if !skipping && strings.Contains(line, t.sub.marker) {
			skipping = true
			braceDepth = strings.Count(line, "{") - strings.Count(line, "}")
			continue
		}
		if skipping {
			braceDepth += strings.Count(line, "{") - strings.Count(line, "}")
			if braceDepth <= 0 {
				skipping = false
			}
			continue
		}

		dropped := false
		for _, decl := range t.sub.declarations {
			if strings.Contains(line, decl) {
				dropped = true
				break
			}
		}
		if dropped {
			continue
		}

		result = append(result, line)
	}

	text = strings.Join(result, "\n")

	// The filter variable may now be the last declaration; drop its comma
	// so the header stays syntactically valid.
	text = strings.Replace(text, listDeclaration+",\n    )", listDeclaration+"\n    )", 1)
	return text
}

// truthyValues are the accepted boolean spellings for boolean-valued filter
// fields
var truthyValues = map[string]struct{}{
	"true":    {},
	"1":       {},
	"yes":     {},
	"on":      {},
	"enabled": {},
	"active":  {},
}

// CoerceBoolean converts the first filter value to a boolean. Absence of any
// value defaults to true; unrecognized spellings are false.
func CoerceBoolean(values []string) bool {
	if len(values) == 0 {
		return true
	}
	_, ok := truthyValues[strings.ToLower(strings.TrimSpace(values[0]))]
	return ok
}
