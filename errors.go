package discourses

import (
	"errors"

	"github.com/discourses/discourses-go/internal/types"
)

// Every failed call returns a *APIError whose Kind discriminates the failure
// category. Re-exported here so callers only import the client package and
// can pattern-match with errors.As plus Kind, or the Is* helpers below.
type (
	APIError  = types.APIError
	ErrorKind = types.ErrorKind
)

// Error kinds carried by APIError.
const (
	ErrKindAuthentication = types.ErrKindAuthentication
	ErrKindRateLimit      = types.ErrKindRateLimit
	ErrKindValidation     = types.ErrKindValidation
	ErrKindNotFound       = types.ErrKindNotFound
	ErrKindAPI            = types.ErrKindAPI
)

// IsAuthentication reports whether err is an invalid or expired API key
// failure (401/403).
func IsAuthentication(err error) bool { return hasKind(err, types.ErrKindAuthentication) }

// IsRateLimit reports whether err is a throttling failure (429). The
// APIError's RetryAfter carries the server's throttle hint when present.
func IsRateLimit(err error) bool { return hasKind(err, types.ErrKindRateLimit) }

// IsValidation reports whether err is a request validation failure, raised
// either locally before any network call or by the service (400/422).
func IsValidation(err error) bool { return hasKind(err, types.ErrKindValidation) }

// IsNotFound reports whether err is a missing-resource failure (404).
func IsNotFound(err error) bool { return hasKind(err, types.ErrKindNotFound) }

func hasKind(err error, kind types.ErrorKind) bool {
	var apiErr *types.APIError
	return errors.As(err, &apiErr) && apiErr.Kind == kind
}
