// Package discourses is the Go SDK for the Discourses financial-sentiment
// API. It wraps the service's three analysis endpoints behind typed results
// and a typed error taxonomy; all sentiment computation happens server-side.
//
// A Client holds only immutable configuration, so one instance may be shared
// across goroutines:
//
//	client, err := discourses.New(apiKey)
//	if err != nil {
//		...
//	}
//	res, err := client.Analyze(ctx, discourses.AnalyzeRequest{
//		Text: "Strong growth with excellent outlook ahead",
//	})
package discourses

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/discourses/discourses-go/internal/api"
)

// Version is reported to the service in the User-Agent header.
const Version = "1.1.4"

// DefaultBaseURL is the hosted service endpoint.
const DefaultBaseURL = "https://discourses.io/api/v1"

// DefaultTimeout bounds a single request round trip, including connection
// setup and reading the response.
const DefaultTimeout = 30 * time.Second

// Client talks to the Discourses API. Configuration is fixed at
// construction; each call is a single stateless request/response round trip.
type Client struct {
	baseURL   string
	apiKey    string
	userAgent string
	http      *http.Client
	retry     *RetryPolicy
}

// New constructs a Client for the hosted endpoint with the given API key.
// Additional knobs are supplied via functional options.
func New(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, errors.New("discourses: api key is required")
	}

	c := &Client{
		baseURL:   DefaultBaseURL,
		apiKey:    apiKey,
		userAgent: "discourses-go/" + Version,
		http:      &http.Client{Timeout: DefaultTimeout},
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	c.baseURL = strings.TrimRight(c.baseURL, "/")

	// Transport chain, outermost first: auth, optional retry, metrics,
	// then whatever the option-supplied client brought. Auth sits on top so
	// every retried attempt keeps its headers; metrics sit below retry so
	// each attempt is observed.
	c.http.Transport = &metricsTransport{base: baseTransport(c.http)}
	if c.retry != nil {
		c.http.Transport = &retryTransport{base: c.http.Transport, policy: *c.retry}
	}
	c.http.Transport = &authTransport{
		base:      c.http.Transport,
		apiKey:    c.apiKey,
		userAgent: c.userAgent,
	}
	return c, nil
}

// BaseURL returns the configured endpoint.
func (c *Client) BaseURL() string { return c.baseURL }

// Analyze classifies the sentiment of a single text. An empty era in the
// request leaves era selection to the service.
func (c *Client) Analyze(ctx context.Context, req AnalyzeRequest) (*AnalysisResult, error) {
	return api.Analyze(ctx, c.http, c.baseURL, req)
}

// CompareEras evaluates the same text under several era lexicons and reports
// the semantic drift between them. An empty era list compares all eras.
func (c *Client) CompareEras(ctx context.Context, req CompareErasRequest) (*CompareResult, error) {
	return api.CompareEras(ctx, c.http, c.baseURL, req)
}

// Batch analyzes many texts in one request, keyed by caller-supplied ids.
// Per-item failures are reported in the result metadata; the call as a whole
// still succeeds.
func (c *Client) Batch(ctx context.Context, req BatchRequest) (*BatchResult, error) {
	return api.Batch(ctx, c.http, c.baseURL, req)
}

// authTransport injects the bearer token and User-Agent on every request.
type authTransport struct {
	base      http.RoundTripper
	apiKey    string
	userAgent string
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Clone the request to avoid modifying the original.
	cloned := req.Clone(req.Context())
	cloned.Header.Set("Authorization", "Bearer "+t.apiKey)
	cloned.Header.Set("User-Agent", t.userAgent)
	return t.base.RoundTrip(cloned)
}

func baseTransport(hc *http.Client) http.RoundTripper {
	if hc.Transport != nil {
		return hc.Transport
	}
	return http.DefaultTransport
}
