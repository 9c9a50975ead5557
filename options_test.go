package discourses

import (
	"net/http"
	"testing"
	"time"
)

func TestWithHTTPTimeout(t *testing.T) {
	c := &Client{http: &http.Client{}}
	if err := WithHTTPTimeout(5 * time.Second)(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.http.Timeout != 5*time.Second {
		t.Fatalf("http timeout not set")
	}
	if err := WithHTTPTimeout(0)(c); err == nil {
		t.Fatal("expected error for non-positive timeout")
	}
}

func TestWithBaseURL(t *testing.T) {
	if _, err := New("sk-test", WithBaseURL("")); err == nil {
		t.Fatal("expected error for empty base url")
	}
	c, err := New("sk-test", WithBaseURL("https://sandbox.example.com/api/v1"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if c.BaseURL() != "https://sandbox.example.com/api/v1" {
		t.Fatalf("BaseURL: %q", c.BaseURL())
	}
}

func TestWithHTTPClientAndUserAgent(t *testing.T) {
	hc := &http.Client{Timeout: 3 * time.Second}
	c, err := New("sk-test", WithHTTPClient(hc), WithUserAgent("custom/2.0"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if c.http != hc || c.http.Timeout != 3*time.Second {
		t.Fatal("custom http client not installed")
	}
	if c.userAgent != "custom/2.0" {
		t.Fatalf("user agent: %q", c.userAgent)
	}
	if _, err := New("sk-test", WithHTTPClient(nil)); err == nil {
		t.Fatal("expected error for nil http client")
	}
	if _, err := New("sk-test", WithUserAgent("")); err == nil {
		t.Fatal("expected error for empty user agent")
	}
}

func TestWithRetry_RejectsNegativeValues(t *testing.T) {
	if _, err := New("sk-test", WithRetry(RetryPolicy{MaxAttempts: -1})); err == nil {
		t.Fatal("expected error for negative retry values")
	}
}

func TestDebugLoggingRequested_EnvGate(t *testing.T) {
	t.Setenv("DISCOURSES_DEBUG", "")
	t.Setenv("DEBUG", "")
	if debugLoggingRequested() {
		t.Fatal("debug should be off by default")
	}
	t.Setenv("DISCOURSES_DEBUG", "true")
	if !debugLoggingRequested() {
		t.Fatal("DISCOURSES_DEBUG=true should enable debug")
	}
	t.Setenv("DISCOURSES_DEBUG", "")
	t.Setenv("DEBUG", "true")
	if !debugLoggingRequested() {
		t.Fatal("DEBUG=true should enable debug")
	}
}
