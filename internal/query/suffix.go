package query

import "strings"

// Nautobot lookup expression suffixes accepted on filter field names
var lookupSuffixes = map[string]struct{}{
	"__n":      {},
	"__ic":     {},
	"__nic":    {},
	"__isw":    {},
	"__nisw":   {},
	"__iew":    {},
	"__niew":   {},
	"__ie":     {},
	"__nie":    {},
	"__re":     {},
	"__nre":    {},
	"__ire":    {},
	"__nire":   {},
	"__isnull": {},
}

// IsLookupSuffix reports whether s is a recognized lookup expression suffix
func IsLookupSuffix(s string) bool {
	_, ok := lookupSuffixes[s]
	return ok
}

// SplitLookupSuffix splits a field name into its base and lookup suffix.
// "name__ic" yields ("name", "__ic"); "name" yields ("name", "").
// An unrecognized trailing double-underscore segment stays with the base so
// validation rejects it as a whole.
func SplitLookupSuffix(field string) (base, suffix string) {
	idx := strings.LastIndex(field, "__")
	if idx <= 0 {
		return field, ""
	}
	candidate := field[idx:]
	if IsLookupSuffix(candidate) {
		return field[:idx], candidate
	}
	return field, ""
}

// operatorSuffixes maps the natural language operator vocabulary recognized
// in prompts onto lookup suffixes. Ordered so negated and multi-word forms
// match before their shorter substrings.
var operatorSuffixes = []struct {
	term   string
	suffix string
}{
	{"not starts with", "__nisw"},
	{"not begins with", "__nisw"},
	{"not ends with", "__niew"},
	{"not contains", "__nic"},
	{"not includes", "__nic"},
	{"not exact", "__nie"},
	{"not regular expression", "__nre"},
	{"not regexp", "__nre"},
	{"not regex", "__nre"},
	{"not equal", "__n"},
	{"starts with", "__isw"},
	{"begins with", "__isw"},
	{"ends with", "__iew"},
	{"contains", "__ic"},
	{"includes", "__ic"},
	{"exact", "__ie"},
	{"regular expression", "__re"},
	{"regexp", "__re"},
	{"regex", "__re"},
	{"is null", "__isnull"},
	{"equal", ""},
}

// SuffixForOperator maps a natural language operator term ("contains",
// "not equal to", "starts with") to its lookup suffix. The trailing "to" of
// forms like "equal to" is ignored.
func SuffixForOperator(term string) (string, bool) {
	normalized := strings.Join(strings.Fields(strings.ToLower(term)), " ")
	normalized = strings.TrimSuffix(normalized, " to")
	for _, op := range operatorSuffixes {
		if normalized == op.term {
			return op.suffix, true
		}
	}
	return "", false
}
