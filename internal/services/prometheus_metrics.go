package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	settlementsCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "settlements_created_total",
			Help: "Total number of settlement groups created",
		},
		[]string{"status"},
	)
	settlementsRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "settlements_rejected_total",
			Help: "Total number of settlement attempts rejected",
		},
		[]string{"reason"},
	)
	settlementsUndone = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "settlements_undone_total",
			Help: "Total number of settlement groups undone",
		},
		[]string{"reverted"},
	)
	settlementsRestored = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "settlements_restored_total",
			Help: "Total number of settlement groups restored",
		},
	)
	settlementDifference = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "settlement_difference_abs",
			Help:    "Absolute settlement difference in currency units",
			Buckets: prometheus.ExponentialBuckets(1, 10, 8),
		},
	)
	suggestionDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "suggestion_duration_milliseconds",
			Help:    "Aggregate suggestion computation duration in milliseconds",
			Buckets: prometheus.ExponentialBuckets(1, 2, 12),
		},
	)
	handlerErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "handler_errors_total",
			Help: "Total number of handler errors by code",
		},
		[]string{"code"},
	)
)

// PrometheusMetrics records settlement metrics on the default Prometheus
// registry
type PrometheusMetrics struct{}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case "settlement_created":
		if status := tags["status"]; status != "" {
			settlementsCreated.WithLabelValues(status).Inc()
		}
	case "settlement_rejected":
		if reason := tags["reason"]; reason != "" {
			settlementsRejected.WithLabelValues(reason).Inc()
		}
	case "settlement_undone":
		settlementsUndone.WithLabelValues(tags["reverted"]).Inc()
	case "settlement_restored":
		settlementsRestored.Inc()
	case "api_error":
		if code := tags["code"]; code != "" {
			handlerErrorsTotal.WithLabelValues(code).Inc()
		}
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "suggestion":
		suggestionDuration.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "settlement_difference":
		settlementDifference.Observe(value)
	}
}
