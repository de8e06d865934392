package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "catalog"

// HTTP metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency distribution",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		},
		[]string{"method", "path"},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "http_requests_in_flight",
			Help:      "Current number of HTTP requests being processed",
		},
	)
)

// Pagination metrics
var (
	SequencesBuilt = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "pagination_sequences_built_total",
			Help:      "Total number of pagination link sequences assembled",
		},
	)

	PageViews = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "page_views_total",
			Help:      "Total number of catalog list pages served",
		},
		[]string{"store"},
	)

	OutOfRangeRequests = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "out_of_range_requests_total",
			Help:      "Requests for a page past the end of the collection",
		},
	)
)
