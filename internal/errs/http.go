package errs

import "strings"

// FieldError represents a field-level validation error.
// Example:
//
//	{ "field": "name", "error": "is required" }
type FieldError struct {
	// Field is the field name/key the error relates to (e.g. "name").
	Field string `json:"field"`

	// Error is the human-readable error message.
	Error string `json:"error"`
}

// HTTPError is the main custom error type for API responses.
//
// It is serialized directly as the response body:
//
//	{ "error": "Item not found", "code": "NOT_FOUND" }
//
// Fields:
//   - Message: human-friendly message, rendered under the "error" key.
//   - Code: machine-friendly error code (e.g. "BAD_REQUEST").
//   - Status: HTTP status code, sent as the response status only.
//   - Errors: list of per-field errors (validation).
//   - Internal: the underlying cause, logged but never serialized.
type HTTPError struct {
	Message string `json:"error"`
	Code    string `json:"code"`
	Status  int    `json:"-"`

	// Errors holds field-level validation errors, typically for request bodies.
	Errors []FieldError `json:"errors,omitempty"`

	Internal error `json:"-"`
}

// Error makes *HTTPError satisfy the built-in `error` interface.
func (e *HTTPError) Error() string {
	return e.Message
}

// WithInternal records the cause of e for the logs and returns e.
func (e *HTTPError) WithInternal(err error) *HTTPError {
	e.Internal = err
	return e
}

// MakeUpperCaseWithUnderscores converts a string into an UPPER_CASE_WITH_UNDERSCORES format.
//
// Example:
//
//	"Bad Request" -> "BAD_REQUEST"
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
