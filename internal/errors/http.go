// Package errors classifies HTTP failures so the optional retry policy can
// distinguish transient faults from final ones. Network-level failures never
// carry a status code and are always considered recoverable.
package errors

import "net/http"

// Recoverable reports whether a request that failed with the given HTTP
// status is worth retrying:
//   - 4xx client errors are final, except 408 (request timeout) and
//     429 (throttled)
//   - 5xx server errors may be transient
//   - unexpected codes are treated as transient
func Recoverable(statusCode int) bool {
	switch {
	case statusCode == http.StatusRequestTimeout, statusCode == http.StatusTooManyRequests:
		return true
	case statusCode >= 400 && statusCode < 500:
		return false
	default:
		return true
	}
}
