package query

import (
	"regexp"
	"strings"

	"github.com/nerdfunk-net/nautobot-mcp/internal/logger"
)

// maxValueLength bounds individual filter values
const maxValueLength = 1000

// unsafePatterns is the fixed battery every filter value must pass
var unsafePatterns = []*regexp.Regexp{
	// SQL injection keywords
	regexp.MustCompile(`(?i)\b(union|select|insert|update|delete|drop|create|alter|exec|execute)\b`),
	// Script injection
	regexp.MustCompile(`(?is)<script[^>]*>.*?</script>`),
	regexp.MustCompile(`javascript:`),
	regexp.MustCompile(`vbscript:`),
	// Command injection metacharacters
	regexp.MustCompile("[;&|`$()]"),
	// Path traversal
	regexp.MustCompile(`\.\./|\.\.\\`),
	// GraphQL structural keywords
	regexp.MustCompile(`(?i)\b(mutation|subscription|fragment)\b`),
	// Null bytes and control characters
	regexp.MustCompile("[\x00-\x08\x0B\x0C\x0E-\x1F\x7F]"),
}

// entityValuePatterns restricts the character class of the value's prefix
// portion (before any lookup suffix) per entity type
var entityValuePatterns = map[string]*regexp.Regexp{
	"device":        regexp.MustCompile(`^[a-zA-Z0-9._-]+$`),
	"interface":     regexp.MustCompile(`^[a-zA-Z0-9._/:-]+$`),
	"location":      regexp.MustCompile(`^[a-zA-Z0-9._\s-]+$`),
	"ip_address":    regexp.MustCompile(`^[a-zA-Z0-9._:/]+$`),
	"prefix":        regexp.MustCompile(`^[a-zA-Z0-9._:/]+$`),
	"role":          regexp.MustCompile(`^[a-zA-Z0-9._\s-]+$`),
	"status":        regexp.MustCompile(`^[a-zA-Z0-9._\s-]+$`),
	"tag":           regexp.MustCompile(`^[a-zA-Z0-9._\s-]+$`),
	"manufacturer":  regexp.MustCompile(`^[a-zA-Z0-9._\s-]+$`),
	"device_type":   regexp.MustCompile(`^[a-zA-Z0-9._\s-]+$`),
	"namespace":     regexp.MustCompile(`^[a-zA-Z0-9._\s-]+$`),
	"secrets_group": regexp.MustCompile(`^[a-zA-Z0-9._\s-]+$`),
}

// Sanitizer is a pure predicate guarding filter values before they reach the
// template rewriter. It never mutates input and never returns an error, only
// a verdict; callers treat false as "reject the whole request".
type Sanitizer struct {
	log *logger.Logger
}

// NewSanitizer creates a sanitizer with diagnostic logging
func NewSanitizer(log *logger.Logger) *Sanitizer {
	return &Sanitizer{log: log}
}

// IsSafe validates a single string value or a list of string values for the
// given entity type. A nil value is safe (no filter); an empty list is safe
// (no filter values); an empty string is unsafe.
func (s *Sanitizer) IsSafe(entity string, value interface{}) bool {
	if value == nil {
		return true
	}

	var values []string
	switch v := value.(type) {
	case string:
		values = []string{v}
	case []string:
		values = v
	case []interface{}:
		for _, item := range v {
			if item == nil {
				continue
			}
			str, ok := item.(string)
			if !ok {
				s.warn(entity, "non-string filter value")
				return false
			}
			values = append(values, str)
		}
	default:
		s.warn(entity, "unsupported filter value type")
		return false
	}

	for _, v := range values {
		if !s.isSafeValue(entity, v) {
			return false
		}
	}
	return true
}

func (s *Sanitizer) isSafeValue(entity, value string) bool {
	if len(value) > maxValueLength {
		s.warn(entity, value)
		return false
	}

	for _, pattern := range unsafePatterns {
		if pattern.MatchString(value) {
			s.warn(entity, value)
			return false
		}
	}

	// Values carrying a double-underscore segment must use a known lookup
	// suffix; unknown suffixes fail.
	base := value
	if idx := strings.LastIndex(value, "__"); idx > 0 {
		if !IsLookupSuffix(value[idx:]) {
			s.warn(entity, value)
			return false
		}
		base = value[:idx]
	}

	if pattern, ok := entityValuePatterns[entity]; ok {
		if !pattern.MatchString(base) {
			s.warn(entity, value)
			return false
		}
		return true
	}

	// Entities without a dedicated pattern still reject empty values
	return base != ""
}

func (s *Sanitizer) warn(entity, value string) {
	if s.log == nil {
		return
	}
	if len(value) > 50 {
		value = value[:50] + "..."
	}
	s.log.Warn("Unsafe input rejected for entity '%s': %s", entity, value)
}
