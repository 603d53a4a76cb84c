package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	UnitsRegistered   prometheus.Counter
	RequestsCreated   prometheus.Counter
	StatusTransitions *prometheus.CounterVec
	RequestLatency    *prometheus.HistogramVec
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		UnitsRegistered: promauto.NewCounter(prometheus.CounterOpts{
			Name: "lifebank_units_registered_total",
			Help: "Total number of blood units registered",
		}),
		RequestsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "lifebank_requests_created_total",
			Help: "Total number of blood requests created",
		}),
		StatusTransitions: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "lifebank_request_status_transitions_total",
			Help: "Total number of request status transitions by edge",
		}, []string{"from", "to"}),
		RequestLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "lifebank_http_request_duration_seconds",
			Help:    "HTTP request latency by route and status",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "status"}),
	}
}

// IncUnitsRegistered increments the units registered counter by 1.
func (m *Metrics) IncUnitsRegistered() {
	if m == nil {
		return
	}
	m.UnitsRegistered.Inc()
}

// IncRequestsCreated increments the requests created counter by 1.
func (m *Metrics) IncRequestsCreated() {
	if m == nil {
		return
	}
	m.RequestsCreated.Inc()
}

// ObserveStatusTransition records one status-machine edge traversal.
func (m *Metrics) ObserveStatusTransition(from, to string) {
	if m == nil {
		return
	}
	m.StatusTransitions.WithLabelValues(from, to).Inc()
}
