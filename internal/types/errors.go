package types

import (
	"encoding/json"
	"fmt"
	"time"
)

// ------------------------------
// Error Taxonomy
// ------------------------------

// ErrorKind discriminates APIError variants so callers can switch on the
// failure category instead of matching message strings.
type ErrorKind string

const (
	// ErrKindAuthentication covers invalid or expired API keys (401/403).
	ErrKindAuthentication ErrorKind = "authentication"
	// ErrKindRateLimit covers throttled requests (429).
	ErrKindRateLimit ErrorKind = "rate_limit"
	// ErrKindValidation covers malformed input, whether rejected locally
	// before any network call or by the service (400/422).
	ErrKindValidation ErrorKind = "validation"
	// ErrKindNotFound covers missing resources (404).
	ErrKindNotFound ErrorKind = "not_found"
	// ErrKindAPI is the catch-all for other non-2xx statuses and
	// network or timeout failures.
	ErrKindAPI ErrorKind = "api"
)

// APIError is the single error type produced for every failed call.
//
// StatusCode is zero for client-side validation failures and transport
// errors. RetryAfter is set only on rate-limit errors when the service
// supplied a throttle hint. Body holds the raw error response, if any.
type APIError struct {
	Kind       ErrorKind
	StatusCode int
	Message    string
	RetryAfter time.Duration
	Body       json.RawMessage
	Err        error
}

func (e *APIError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("discourses: [%d] %s", e.StatusCode, e.Message)
	}
	return "discourses: " + e.Message
}

// Unwrap returns the underlying transport error, if any.
func (e *APIError) Unwrap() error { return e.Err }

// NewValidationError reports a client-side validation failure. No HTTP call
// was made, so the status code stays zero.
func NewValidationError(msg string) *APIError {
	return &APIError{Kind: ErrKindValidation, Message: msg}
}
