package discourses

// This file defines functional options that configure the Client during
// construction. Keeping them in a standalone file avoids cluttering
// discourses.go and makes it easy to discover all available knobs at a
// glance.

import (
	"fmt"
	"net/http"
	"time"
)

// Option configures a Client during construction in New.
//
// Options are applied before the authorization transport wrapper is
// installed, so transport-related options (like debug logging) sit beneath
// the API-key wrapper. Options must be deterministic and side-effect free.
type Option func(*Client) error

// WithBaseURL overrides the hosted endpoint, e.g. for self-hosted
// deployments or tests. A trailing slash is trimmed.
func WithBaseURL(u string) Option {
	return func(c *Client) error {
		if u == "" {
			return fmt.Errorf("base url must not be empty")
		}
		c.baseURL = u
		return nil
	}
}

// WithHTTPTimeout sets the underlying http.Client Timeout used by the SDK.
//
// Prefer per-request context deadlines where possible; this timeout is a
// coarse safety net that bounds the total time spent on a single HTTP
// request. The value must be greater than zero.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("http timeout must be > 0")
		}
		c.http.Timeout = d
		return nil
	}
}

// WithHTTPClient supplies a custom http.Client, e.g. one with proxy settings
// or a pre-instrumented transport. The client's transport is preserved
// beneath the SDK's wrappers; its timeout applies as configured.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) error {
		if hc == nil {
			return fmt.Errorf("http client must not be nil")
		}
		c.http = hc
		return nil
	}
}

// WithUserAgent overrides the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(c *Client) error {
		if ua == "" {
			return fmt.Errorf("user agent must not be empty")
		}
		c.userAgent = ua
		return nil
	}
}

// WithDebugLogging wraps the client's transport so each request/response is
// logged when enabled is true.
//
// The debug transport is installed beneath the API-key wrapper. Do not
// enable this option in production environments: dumps include headers and
// full payloads.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		if enabled {
			c.http.Transport = &debugTransport{base: baseTransport(c.http)}
		}
		return nil
	}
}

// WithRetry enables the opt-in retry policy for transient failures. The SDK
// never retries unless this option is set; see RetryPolicy for what counts
// as retryable.
func WithRetry(p RetryPolicy) Option {
	return func(c *Client) error {
		if err := p.validate(); err != nil {
			return err
		}
		c.retry = &p
		return nil
	}
}
