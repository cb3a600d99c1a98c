// Package metrics holds the Prometheus collectors of the site server.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Contact submission outcomes.
const (
	OutcomeSent     = "sent"
	OutcomeInvalid  = "invalid"
	OutcomeFailed   = "failed"
	OutcomeRejected = "rejected" // relay API: missing fields
)

var (
	// HTTPRequestDuration tracks request latency per route pattern.
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "siteprisme_http_request_duration_seconds",
		Help:    "HTTP request latencies in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	HTTPRequestsInFlight = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "siteprisme_http_requests_in_flight",
		Help: "Current number of HTTP requests being served",
	})

	HTTPResponseSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "siteprisme_http_response_size_bytes",
		Help:    "HTTP response sizes in bytes",
		Buckets: prometheus.ExponentialBuckets(100, 10, 6),
	}, []string{"method", "path"})

	contactSubmissions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "siteprisme_contact_submissions_total",
		Help: "Contact submissions by entry point and outcome",
	}, []string{"source", "outcome"})

	relayDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "siteprisme_relay_duration_seconds",
		Help:    "Latency of outbound deliveries to the form relay and email provider",
		Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
	}, []string{"channel", "result"})

	inboxErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "siteprisme_inbox_write_errors_total",
		Help: "Submissions that could not be recorded in the inbox",
	})
)

// RecordSubmission counts one contact submission.
func RecordSubmission(source, outcome string) {
	contactSubmissions.WithLabelValues(source, outcome).Inc()
}

// ObserveRelay records the latency of one delivery attempt.
func ObserveRelay(channel string, ok bool, seconds float64) {
	result := "success"
	if !ok {
		result = "error"
	}
	relayDuration.WithLabelValues(channel, result).Observe(seconds)
}

// IncInboxError counts a failed inbox write.
func IncInboxError() {
	inboxErrors.Inc()
}
