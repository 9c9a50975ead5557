package discourses

import (
	"net/http"
	"net/http/httputil"
	"os"

	"github.com/rs/zerolog/log"
)

// debugTransport provides detailed HTTP request/response logging for
// troubleshooting API communication problems: malformed requests, unexpected
// response shapes, or authentication issues.
//
// Dumps include full headers and bodies, which means the API key and the
// analyzed text end up in the logs. Only enable in development or staging
// environments.
//
// Example usage:
//
//	export DISCOURSES_DEBUG=true
//	go run main.go  # client now logs all HTTP traffic
type debugTransport struct{ base http.RoundTripper }

func (dt *debugTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if debugLoggingRequested() {
		if reqDump, err := httputil.DumpRequestOut(req, true); err == nil {
			log.Debug().Str("method", req.Method).Str("url", req.URL.String()).Str("request_dump", string(reqDump)).Msg("HTTP request")
		}
	}

	resp, err := dt.base.RoundTrip(req)
	if err != nil {
		if debugLoggingRequested() {
			log.Error().Err(err).Str("method", req.Method).Str("url", req.URL.String()).Msg("HTTP request failed")
		}
		return nil, err
	}

	if debugLoggingRequested() {
		if respDump, err := httputil.DumpResponse(resp, true); err == nil {
			log.Debug().Str("method", req.Method).Str("url", req.URL.String()).Int("status_code", resp.StatusCode).Str("response_dump", string(respDump)).Msg("HTTP response")
		}
	}
	return resp, nil
}

// debugLoggingRequested checks if HTTP debug logging should be enabled.
//
// Both DISCOURSES_DEBUG=true (targeted SDK debugging) and DEBUG=true
// (broader application debugging) are honored; the value comparison is
// case-sensitive.
func debugLoggingRequested() bool {
	return os.Getenv("DISCOURSES_DEBUG") == "true" || os.Getenv("DEBUG") == "true"
}
