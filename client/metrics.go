package client

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "emailight_client",
			Name:      "http_requests_total",
			Help:      "HTTP responses received from the backend.",
		},
		[]string{"code", "method"},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "emailight_client",
			Name:      "http_request_duration_seconds",
			Help:      "Round-trip latency of backend calls.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method"},
	)

	envelopeFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "emailight_client",
			Name:      "envelope_failures_total",
			Help:      "Calls that returned a failure envelope, by kind (application or transport).",
		},
		[]string{"kind"},
	)
)

// instrumentTransport records request counts and latency around next.
func instrumentTransport(next http.RoundTripper) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}
	return promhttp.InstrumentRoundTripperCounter(requestsTotal,
		promhttp.InstrumentRoundTripperDuration(requestDuration, next))
}
