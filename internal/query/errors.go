package query

import "fmt"

// ErrorKind classifies engine failures so the transport layer can decide how
// to render them without string matching.
type ErrorKind string

const (
	KindValidation ErrorKind = "validation"
	KindResolution ErrorKind = "resolution"
	KindBackend    ErrorKind = "backend"
	KindSizeLimit  ErrorKind = "size_limit"
)

// Error is the result-or-error type returned at every public engine boundary
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// NewValidationError reports bad input shape (missing field, unknown field
// name, failed sanitizer check). Raised before any backend call.
func NewValidationError(format string, args ...interface{}) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

// NewBackendError reports an error payload or transport failure from Nautobot
func NewBackendError(format string, args ...interface{}) *Error {
	return &Error{Kind: KindBackend, Message: fmt.Sprintf(format, args...)}
}

// NewSizeLimitError reports an oversized response, distinguishable from a
// genuine backend failure
func NewSizeLimitError(format string, args ...interface{}) *Error {
	return &Error{Kind: KindSizeLimit, Message: fmt.Sprintf(format, args...)}
}

// NewResolutionError reports a name that could not be mapped to an id
func NewResolutionError(format string, args ...interface{}) *Error {
	return &Error{Kind: KindResolution, Message: fmt.Sprintf(format, args...)}
}

// KindOf returns the kind of an engine error, or KindBackend for any other
// error value crossing the boundary
func KindOf(err error) ErrorKind {
	if qe, ok := err.(*Error); ok {
		return qe.Kind
	}
	return KindBackend
}
