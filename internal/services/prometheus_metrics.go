package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	backendRequests      *prometheus.CounterVec
	backendDuration      prometheus.Histogram
	customerDecisions    *prometheus.CounterVec
	customerDecisionTime prometheus.Histogram
	pendingCustomers     prometheus.Gauge
	authorizationEvents  *prometheus.CounterVec
}

// NewPrometheusMetrics registers the console collectors with reg
func NewPrometheusMetrics(reg prometheus.Registerer) MetricsRecorderInterface {
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		backendRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "backend_requests_total",
				Help: "Total number of requests sent to the payments backend",
			},
			[]string{"method", "status"},
		),
		backendDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "backend_request_duration_seconds",
				Help:    "Payments backend request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),
		customerDecisions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "customer_decisions_total",
				Help: "Total number of approve/reject decisions submitted",
			},
			[]string{"decision", "status"},
		),
		customerDecisionTime: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "customer_decision_duration_milliseconds",
				Help:    "Customer status update duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		pendingCustomers: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "pending_customers",
				Help: "Customers awaiting review at the last dashboard load",
			},
		),
		authorizationEvents: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "authorization_events_total",
				Help: "Total number of operator authorization events",
			},
			[]string{"event_type"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	status := tags["status"]

	switch name {
	case "backend_request":
		m.backendRequests.WithLabelValues(tags["method"], status).Inc()
	case "customer_decision":
		if decision := tags["decision"]; decision != "" && status != "" {
			m.customerDecisions.WithLabelValues(decision, status).Inc()
		}
	case "authorization_event":
		if eventType := tags["event_type"]; eventType != "" {
			m.authorizationEvents.WithLabelValues(eventType).Inc()
		}
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "backend_request":
		m.backendDuration.Observe(duration.Seconds())
	case "customer_decision":
		m.customerDecisionTime.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "pending_customers":
		m.pendingCustomers.Set(value)
	}
}
