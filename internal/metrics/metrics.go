package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all prometheus collectors for the API.
type Metrics struct {
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	StoreErrors     *prometheus.CounterVec
}

// New registers the collectors on the default registerer.
func New(namespace string) *Metrics {
	return NewWith(prometheus.DefaultRegisterer, namespace)
}

// NewWith registers the collectors on reg; tests pass a fresh registry.
func NewWith(reg prometheus.Registerer, namespace string) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		RequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "The total number of handled HTTP requests",
		}, []string{"method", "path", "status"}),
		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Time taken to handle HTTP requests",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "path"}),
		StoreErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "store_errors_total",
			Help:      "The total number of unclassified store failures",
		}, []string{"operation"}),
	}
}
