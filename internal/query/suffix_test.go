package query

import "testing"

func TestSplitLookupSuffix(t *testing.T) {
	tests := []struct {
		field  string
		base   string
		suffix string
	}{
		{"name", "name", ""},
		{"name__ic", "name", "__ic"},
		{"name__isnull", "name", "__isnull"},
		{"device_type__manufacturer", "device_type__manufacturer", ""},
		{"name__zz", "name__zz", ""},
		{"__ic", "__ic", ""},
		{"", "", ""},
	}

	for _, tt := range tests {
		base, suffix := SplitLookupSuffix(tt.field)
		if base != tt.base || suffix != tt.suffix {
			t.Errorf("SplitLookupSuffix(%q) = (%q, %q), want (%q, %q)",
				tt.field, base, suffix, tt.base, tt.suffix)
		}
	}
}

func TestIsLookupSuffix(t *testing.T) {
	for _, s := range []string{"__n", "__ic", "__nic", "__isw", "__nisw", "__iew", "__niew", "__ie", "__nie", "__re", "__nre", "__ire", "__nire", "__isnull"} {
		if !IsLookupSuffix(s) {
			t.Errorf("expected %q to be a lookup suffix", s)
		}
	}
	for _, s := range []string{"__zz", "ic", "__", ""} {
		if IsLookupSuffix(s) {
			t.Errorf("expected %q not to be a lookup suffix", s)
		}
	}
}

func TestSuffixForOperator(t *testing.T) {
	tests := []struct {
		term   string
		suffix string
		ok     bool
	}{
		{"contains", "__ic", true},
		{"includes", "__ic", true},
		{"not contains", "__nic", true},
		{"starts with", "__isw", true},
		{"begins with", "__isw", true},
		{"not starts with", "__nisw", true},
		{"ends with", "__iew", true},
		{"not ends with", "__niew", true},
		{"exact", "__ie", true},
		{"not exact", "__nie", true},
		{"regex", "__re", true},
		{"regexp", "__re", true},
		{"regular expression", "__re", true},
		{"not regex", "__nre", true},
		{"equal", "", true},
		{"equal to", "", true},
		{"not equal", "__n", true},
		{"not equal to", "__n", true},
		{"is null", "__isnull", true},
		{"CONTAINS", "__ic", true},
		{"starts  with", "__isw", true},
		{"similar to", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		suffix, ok := SuffixForOperator(tt.term)
		if suffix != tt.suffix || ok != tt.ok {
			t.Errorf("SuffixForOperator(%q) = (%q, %v), want (%q, %v)",
				tt.term, suffix, ok, tt.suffix, tt.ok)
		}
	}
}
