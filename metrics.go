package discourses

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "discourses_client",
			Name:      "requests_total",
			Help:      "API requests that received a response, by endpoint and status code.",
		},
		[]string{"endpoint", "code"},
	)

	requestErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "discourses_client",
			Name:      "request_errors_total",
			Help:      "API requests that failed at the transport level.",
		},
		[]string{"endpoint"},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "discourses_client",
			Name:      "request_duration_seconds",
			Help:      "API request latency.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)
)

// metricsTransport records request counts and latency per endpoint. It sits
// beneath the retry transport so every attempt is observed.
type metricsTransport struct{ base http.RoundTripper }

func (t *metricsTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	endpoint := req.URL.Path
	start := time.Now()
	resp, err := t.base.RoundTrip(req)
	requestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	if err != nil {
		requestErrorsTotal.WithLabelValues(endpoint).Inc()
		return nil, err
	}
	requestsTotal.WithLabelValues(endpoint, strconv.Itoa(resp.StatusCode)).Inc()
	return resp, nil
}
