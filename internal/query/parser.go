package query

import (
	"regexp"
	"strings"
)

// patternKind selects how a prompt pattern's capture groups are interpreted
type patternKind int

const (
	// patternFixedField captures one value for a predetermined field
	patternFixedField patternKind = iota
	// patternFieldValue captures a field term and a value
	patternFieldValue
	// patternFieldOperatorValue captures a field term, a natural-language
	// operator and a value; the operator becomes a lookup suffix
	patternFieldOperatorValue
	// patternValueOrFieldValue captures either a single value for the
	// predetermined field, or a field term plus value when the second
	// group matched
	patternValueOrFieldValue
)

// promptPattern is one ordered extraction rule; the first rule that matches
// wins
type promptPattern struct {
	re    *regexp.Regexp
	kind  patternKind
	field string
}

// fixedFilter maps literal prompt phrases to a predetermined filter
type fixedFilter struct {
	phrases []string
	field   string
	values  []string
}

// operatorAlternation is the natural-language operator vocabulary embedded in
// field-operator-value patterns
const operatorAlternation = `((?:not\s+)?(?:equal|contains|includes|starts\s+with|begins\s+with|ends\s+with|exact|regex|regexp|regular\s+expression)(?:\s+to)?|is\s+(?:not\s+)?null)`

// promptParser converts a free-text prompt into a partial argument bag. Every
// entity type configures one with its own phrases, patterns and field
// vocabulary; parsing itself is identical across entities.
type promptParser struct {
	// showAllPhrases trigger show_all on substring match
	showAllPhrases []string
	// showAllExact trigger show_all when the whole prompt equals one of them
	showAllExact []string
	// fixed filters are checked before the regex patterns
	fixed []fixedFilter
	// patterns are tried in order; the first match wins
	patterns []promptPattern
	// fields maps prompt terms to canonical field names
	fields map[string]string
	// enablers maps prompt keywords to the output selector flags they imply
	enablers map[string][]string
	// defaults are flags enabled on every parsed prompt
	defaults []string
	// bulk flags are enabled when the prompt asks for all properties/details
	bulk []string
	// customFieldFlags are enabled when the filter targets a custom field
	customFieldFlags []string
	// subPatterns extract an optional nested filter (the device query's
	// interface filter); the captured value always filters the nested
	// collection's name field
	subPatterns []*regexp.Regexp
}

// parse normalizes the prompt and extracts a filter, an optional nested
// filter and the implied output selector flags. Unparseable prompts yield an
// empty map; the caller's validation catches the missing filter later.
func (p *promptParser) parse(prompt string) map[string]interface{} {
	lower := strings.ToLower(strings.TrimSpace(prompt))
	result := make(map[string]interface{})

	field, values := p.extractFilter(lower)
	switch {
	case field == "show_all":
		result["show_all"] = true
	case field != "" && len(values) > 0:
		result["variable_name"] = field
		result["variable_value"] = values
	}

	if len(result) == 0 {
		return result
	}

	p.extractSubFilter(lower, result)
	p.applyFlags(lower, result)
	return result
}

// extractFilter finds the main filter. Show-all synonyms are checked first so
// later patterns cannot mis-capture the word "all" as a filter value.
func (p *promptParser) extractFilter(prompt string) (string, []string) {
	for _, phrase := range p.showAllPhrases {
		if strings.Contains(prompt, phrase) {
			return "show_all", nil
		}
	}
	for _, exact := range p.showAllExact {
		if prompt == exact {
			return "show_all", nil
		}
	}

	for _, f := range p.fixed {
		for _, phrase := range f.phrases {
			if strings.Contains(prompt, phrase) {
				return f.field, f.values
			}
		}
	}

	for _, pattern := range p.patterns {
		match := pattern.re.FindStringSubmatch(prompt)
		if match == nil {
			continue
		}

		switch pattern.kind {
		case patternFixedField:
			return pattern.field, []string{match[1]}

		case patternFieldValue:
			if field, ok := p.lookupField(match[1]); ok {
				return field, []string{strings.TrimSpace(match[2])}
			}

		case patternFieldOperatorValue:
			field, ok := p.lookupField(match[1])
			if !ok {
				continue
			}
			value := strings.TrimSpace(match[3])
			if suffix, ok := SuffixForOperator(match[2]); ok {
				field += suffix
			}
			return field, []string{value}

		case patternValueOrFieldValue:
			if match[2] == "" {
				return pattern.field, []string{match[1]}
			}
			if field, ok := p.lookupField(match[1]); ok {
				return field, []string{match[2]}
			}
		}
	}

	return "", nil
}

// lookupField maps a prompt term to a canonical field. Custom field terms
// pass through unmapped.
func (p *promptParser) lookupField(term string) (string, bool) {
	if IsCustomField(term) {
		return term, true
	}
	if field, ok := p.fields[term]; ok {
		return field, true
	}
	return "", false
}

// extractSubFilter fills the nested filter arguments when a sub-pattern
// matches
func (p *promptParser) extractSubFilter(prompt string, result map[string]interface{}) {
	for _, re := range p.subPatterns {
		if match := re.FindStringSubmatch(prompt); match != nil {
			result["interface_variable"] = "name"
			result["interface_value"] = []string{match[1]}
			return
		}
	}
}

// applyFlags enables output selector flags: the defaults, flags implied by
// the resolved filter field (substring containment either way), flags implied
// by bare keyword presence, the custom-field flags, and the bulk set on
// comprehensive prompts.
func (p *promptParser) applyFlags(prompt string, result map[string]interface{}) {
	for _, flag := range p.defaults {
		result[flag] = true
	}

	if name, ok := result["variable_name"].(string); ok {
		base, _ := SplitLookupSuffix(name)
		if IsCustomField(base) {
			for _, flag := range p.customFieldFlags {
				result[flag] = true
			}
		}
		for keyword, flags := range p.enablers {
			if strings.Contains(base, keyword) || strings.Contains(keyword, base) {
				for _, flag := range flags {
					result[flag] = true
				}
			}
		}
	}

	for keyword, flags := range p.enablers {
		if strings.Contains(prompt, keyword) {
			for _, flag := range flags {
				result[flag] = true
			}
		}
	}

	if strings.Contains(prompt, "all properties") || strings.Contains(prompt, "all details") {
		for _, flag := range p.bulk {
			result[flag] = true
		}
	}
}
