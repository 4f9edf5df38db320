package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// APICallMetrics records outcomes of outbound loyalty API calls.
type APICallMetrics struct {
	duration *prometheus.HistogramVec
	success  *prometheus.CounterVec
	failure  *prometheus.CounterVec
}

// NewAPICallMetrics registers the outbound call metrics on the provided registerer.
func NewAPICallMetrics(reg prometheus.Registerer) *APICallMetrics {
	if reg == nil {
		return &APICallMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "loyalty_api_call_duration_seconds",
		Help:    "Duration of loyalty API calls in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"resource", "operation"})
	success := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "loyalty_api_call_success",
		Help: "Successful loyalty API calls.",
	}, []string{"resource", "operation"})
	failure := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "loyalty_api_call_failure",
		Help: "Failed loyalty API calls.",
	}, []string{"resource", "operation"})
	reg.MustRegister(duration, success, failure)
	return &APICallMetrics{
		duration: duration,
		success:  success,
		failure:  failure,
	}
}

// ObserveDuration records the duration for the named operation.
func (a *APICallMetrics) ObserveDuration(resource, operation string, duration time.Duration) {
	if a == nil || a.duration == nil {
		return
	}
	a.duration.WithLabelValues(normalizeLabel(resource), normalizeLabel(operation)).Observe(duration.Seconds())
}

// IncSuccess increments the success counter for the named operation.
func (a *APICallMetrics) IncSuccess(resource, operation string) {
	if a == nil || a.success == nil {
		return
	}
	a.success.WithLabelValues(normalizeLabel(resource), normalizeLabel(operation)).Inc()
}

// IncFailure increments the failure counter for the named operation.
func (a *APICallMetrics) IncFailure(resource, operation string) {
	if a == nil || a.failure == nil {
		return
	}
	a.failure.WithLabelValues(normalizeLabel(resource), normalizeLabel(operation)).Inc()
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
