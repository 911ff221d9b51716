// Package metrics holds the Prometheus collectors shared by the buffer, codec,
// store and api packages.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	StatusSuccess = "success"
	StatusError   = "error"

	ResultHit  = "hit"
	ResultMiss = "miss"
)

var (
	// RecyclerAllocations counts recycler allocations by whether the cached
	// array could be reused.
	RecyclerAllocations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kcodec_recycler_allocations_total",
			Help: "Total number of buffer recycler allocations",
		},
		[]string{"result"},
	)

	// RecyclerDiscards counts arrays dropped because a larger one was cached.
	RecyclerDiscards = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "kcodec_recycler_discards_total",
			Help: "Total number of released arrays discarded in favour of a larger cached array",
		},
	)

	// CodecFailures counts decode and encode failures by error kind.
	CodecFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kcodec_codec_failures_total",
			Help: "Total number of codec failures",
		},
		[]string{"operation", "kind"},
	)

	// StoreOperations counts table operations.
	StoreOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kcodec_store_operations_total",
			Help: "Total number of table operations",
		},
		[]string{"operation", "status"},
	)

	// HTTPRequests counts API requests by route pattern and status code.
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kcodec_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "kcodec_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	HTTPRequestsInFlight = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "kcodec_http_requests_in_flight",
			Help: "Number of HTTP requests currently being processed",
		},
		[]string{"method", "endpoint"},
	)

	// AuthRequests counts requests that carried an X-API-Key header.
	AuthRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kcodec_auth_requests_total",
			Help: "Total number of authentication requests",
		},
		[]string{"status"},
	)
)

// RecordStoreOperation increments the store operation counter.
func RecordStoreOperation(operation string, err error) {
	status := StatusSuccess
	if err != nil {
		status = StatusError
	}
	StoreOperations.WithLabelValues(operation, status).Inc()
}
