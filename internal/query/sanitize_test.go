package query

import (
	"strings"
	"testing"

	"github.com/nerdfunk-net/nautobot-mcp/internal/logger"
)

var sanitizerEntities = []string{
	"device", "interface", "location", "ip_address", "prefix",
	"role", "status", "tag", "manufacturer", "device_type",
	"namespace", "secrets_group",
}

func TestSanitizerRejectsMaliciousInput(t *testing.T) {
	s := NewSanitizer(logger.New())

	malicious := []string{
		"'; DROP TABLE devices; --",
		"<script>alert(1)</script>",
		"javascript:alert(1)",
		"router1; rm -rf /",
		"$(whoami)",
		"`id`",
		"../../../etc/passwd",
		"..\\..\\windows",
		"mutation { deleteAll }",
		"fragment f on Device",
		"a\x00b",
		"SELECT * FROM devices",
	}

	for _, entity := range sanitizerEntities {
		for _, value := range malicious {
			if s.IsSafe(entity, value) {
				t.Errorf("expected %q to be rejected for entity %s", value, entity)
			}
		}
	}
}

func TestSanitizerAcceptsValidInput(t *testing.T) {
	s := NewSanitizer(logger.New())

	tests := []struct {
		entity string
		value  string
	}{
		{"device", "router1"},
		{"device", "core-sw01.example.com"},
		{"interface", "GigabitEthernet0/0/1"},
		{"interface", "eth0:1"},
		{"ip_address", "192.168.1.1"},
		{"ip_address", "2001:db8::1"},
		{"prefix", "10.0.0.0/8"},
		{"location", "datacenter 1"},
		{"namespace", "Global"},
		{"secrets_group", "production creds"},
		{"manufacturer", "Hewlett Packard"},
	}

	for _, tt := range tests {
		if !s.IsSafe(tt.entity, tt.value) {
			t.Errorf("expected %q to be accepted for entity %s", tt.value, tt.entity)
		}
	}
}

func TestSanitizerValueLists(t *testing.T) {
	s := NewSanitizer(logger.New())

	t.Run("nil is safe", func(t *testing.T) {
		if !s.IsSafe("device", nil) {
			t.Error("nil value should be safe")
		}
	})

	t.Run("empty list is safe", func(t *testing.T) {
		if !s.IsSafe("device", []string{}) {
			t.Error("empty list should be safe")
		}
	})

	t.Run("empty string is unsafe", func(t *testing.T) {
		if s.IsSafe("device", "") {
			t.Error("empty string should be unsafe")
		}
	})

	t.Run("one bad value rejects the list", func(t *testing.T) {
		if s.IsSafe("device", []string{"router1", "router2; reboot"}) {
			t.Error("list with an unsafe member should be rejected")
		}
	})

	t.Run("generic interface list is unwrapped", func(t *testing.T) {
		if !s.IsSafe("device", []interface{}{"router1", "router2"}) {
			t.Error("list of safe strings should be accepted")
		}
		if s.IsSafe("device", []interface{}{"router1", 42}) {
			t.Error("non-string member should be rejected")
		}
	})
}

func TestSanitizerLengthLimit(t *testing.T) {
	s := NewSanitizer(logger.New())

	long := strings.Repeat("a", maxValueLength+1)
	if s.IsSafe("device", long) {
		t.Error("over-length value should be rejected")
	}
	if !s.IsSafe("device", strings.Repeat("a", maxValueLength)) {
		t.Error("value at the limit should be accepted")
	}
}

func TestSanitizerSuffixSegments(t *testing.T) {
	s := NewSanitizer(logger.New())

	if !s.IsSafe("device", "router__ic") {
		t.Error("known lookup suffix in a value should be accepted")
	}
	if s.IsSafe("device", "router__zz") {
		t.Error("unknown double-underscore segment should be rejected")
	}
}
