// Package api builds and issues the HTTP requests behind each client
// operation and maps error responses onto the typed taxonomy.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/discourses/discourses-go/internal/types"
)

// Endpoint paths, relative to the configured base URL.
const (
	PathAnalyze     = "/analyze"
	PathCompareEras = "/analyze/compare-eras"
	PathBatch       = "/analyze/batch"
)

// postJSON issues a POST with a JSON body and decodes a 200 response into
// out. Non-2xx responses and transport failures are mapped to
// *types.APIError; the authorization header is added by the client's
// transport wrapper.
func postJSON(ctx context.Context, httpClient *http.Client, baseURL, path string, in, out any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	payload, err := json.Marshal(in)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := httpClient.Do(req)
	if err != nil {
		return &types.APIError{Kind: types.ErrKindAPI, Message: "request failed: " + err.Error(), Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &types.APIError{Kind: types.ErrKindAPI, StatusCode: resp.StatusCode, Message: "reading response body: " + err.Error(), Err: err}
	}
	if resp.StatusCode != http.StatusOK {
		return errorFromResponse(resp, body)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%s: decoding response: %w", path, err)
	}
	return nil
}

// errorFromResponse maps a non-2xx response onto the typed error taxonomy.
func errorFromResponse(resp *http.Response, body []byte) *types.APIError {
	apiErr := &types.APIError{
		StatusCode: resp.StatusCode,
		Message:    errorMessage(body),
		Body:       body,
	}
	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		apiErr.Kind = types.ErrKindAuthentication
	case http.StatusTooManyRequests:
		apiErr.Kind = types.ErrKindRateLimit
		apiErr.RetryAfter = RetryAfter(resp.Header)
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		apiErr.Kind = types.ErrKindValidation
	case http.StatusNotFound:
		apiErr.Kind = types.ErrKindNotFound
	default:
		apiErr.Kind = types.ErrKindAPI
	}
	return apiErr
}

// errorMessage extracts "message" or "error" from an error body, falling
// back to the raw text.
func errorMessage(body []byte) string {
	var eb struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &eb); err == nil {
		if eb.Message != "" {
			return eb.Message
		}
		if eb.Error != "" {
			return eb.Error
		}
	}
	if len(body) > 0 {
		return string(body)
	}
	return "unknown error"
}

// RetryAfter reads the throttle hint from Retry-After (delay seconds) or the
// service's X-RateLimit-Reset header. Zero means no hint was supplied.
func RetryAfter(h http.Header) time.Duration {
	for _, key := range []string{"Retry-After", "X-RateLimit-Reset"} {
		if v := h.Get(key); v != "" {
			if secs, err := strconv.Atoi(v); err == nil && secs >= 0 {
				return time.Duration(secs) * time.Second
			}
		}
	}
	return 0
}
