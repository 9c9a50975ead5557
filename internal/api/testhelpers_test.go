package api

import (
	"fmt"
	"net/http"
)

// errRT is a RoundTripper that always fails, for exercising transport-error
// paths without a server.
type errRT struct{}

func (errRT) RoundTrip(*http.Request) (*http.Response, error) {
	return nil, fmt.Errorf("boom")
}
