package discourses

import (
	"fmt"
	"io"
	"net/http"
	"time"

	backoff "github.com/cenkalti/backoff/v4"

	"github.com/discourses/discourses-go/internal/api"
	httperrors "github.com/discourses/discourses-go/internal/errors"
)

// RetryPolicy controls the opt-in retry behavior enabled by WithRetry.
//
// Only recoverable failures are retried: network errors, 5xx responses, 408,
// and 429 (honoring the server's Retry-After hint when present). Validation
// and authentication failures are final on the first attempt. Zero fields
// take the defaults noted below.
type RetryPolicy struct {
	// MaxAttempts is the total number of attempts, including the first
	// (default 3).
	MaxAttempts int
	// BaseBackoff is the first backoff interval (default 100ms).
	BaseBackoff time.Duration
	// MaxInterval caps the backoff growth (default 20s).
	MaxInterval time.Duration
}

func (p RetryPolicy) validate() error {
	if p.MaxAttempts < 0 || p.BaseBackoff < 0 || p.MaxInterval < 0 {
		return fmt.Errorf("retry policy values must not be negative")
	}
	return nil
}

func (p RetryPolicy) withDefaults() RetryPolicy {
	if p.MaxAttempts <= 0 {
		p.MaxAttempts = 3
	}
	if p.BaseBackoff <= 0 {
		p.BaseBackoff = 100 * time.Millisecond
	}
	if p.MaxInterval <= 0 {
		p.MaxInterval = 20 * time.Second
	}
	return p
}

// retryTransport re-issues requests that failed recoverably, backing off
// exponentially between attempts.
type retryTransport struct {
	base   http.RoundTripper
	policy RetryPolicy
}

func (t *retryTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	pol := t.policy.withDefaults()

	// A consumed body can only be replayed through GetBody; without it the
	// request gets a single attempt.
	canReplay := req.Body == nil || req.GetBody != nil

	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = pol.BaseBackoff
	exp.Multiplier = 2
	exp.MaxInterval = pol.MaxInterval
	exp.Reset()

	var resp *http.Response
	var err error
	for attempt := 1; ; attempt++ {
		var attemptReq *http.Request
		attemptReq, err = replayableRequest(req, attempt)
		if err != nil {
			return nil, err
		}
		resp, err = t.base.RoundTrip(attemptReq)
		if err == nil && resp.StatusCode < 400 {
			return resp, nil
		}
		if err == nil && !httperrors.Recoverable(resp.StatusCode) {
			// Final failure; the API layer maps it to a typed error.
			return resp, nil
		}
		if !canReplay || attempt >= pol.MaxAttempts {
			return resp, err
		}

		wait := exp.NextBackOff()
		if err == nil {
			if hint := api.RetryAfter(resp.Header); hint > 0 {
				wait = hint
			}
			// Drain so the connection can be reused.
			_, _ = io.Copy(io.Discard, resp.Body)
			_ = resp.Body.Close()
		}
		select {
		case <-req.Context().Done():
			return nil, req.Context().Err()
		case <-time.After(wait):
		}
	}
}

// replayableRequest returns req itself for the first attempt and a clone
// with a fresh body for subsequent ones.
func replayableRequest(req *http.Request, attempt int) (*http.Request, error) {
	if attempt == 1 || req.Body == nil {
		return req, nil
	}
	body, err := req.GetBody()
	if err != nil {
		return nil, err
	}
	cloned := req.Clone(req.Context())
	cloned.Body = body
	return cloned, nil
}
