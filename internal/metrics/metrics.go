// Package metrics exposes Prometheus counters for calculations and HTTP traffic.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "windsign"

// Metrics is safe to use through a nil pointer; every method is then a no-op.
type Metrics struct {
	Calculations      *prometheus.CounterVec   // labels: sign_type, status
	CalculationErrors *prometheus.CounterVec   // labels: sign_type
	Warnings          *prometheus.CounterVec   // labels: sign_type
	HTTPRequests      *prometheus.CounterVec   // labels: route, code
	HTTPDuration      *prometheus.HistogramVec // labels: route
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Calculations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "calculations_total",
			Help:      "Completed wind loading calculations by sign type and overall status.",
		}, []string{"sign_type", "status"}),
		CalculationErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "calculation_errors_total",
			Help:      "Rejected calculations by sign type.",
		}, []string{"sign_type"}),
		Warnings: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "warnings_total",
			Help:      "Warnings attached to calculation results.",
		}, []string{"sign_type"}),
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route template and status code.",
		}, []string{"route", "code"}),
		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route template.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2.5},
		}, []string{"route"}),
	}
	reg.MustRegister(
		m.Calculations,
		m.CalculationErrors,
		m.Warnings,
		m.HTTPRequests,
		m.HTTPDuration,
	)
	return m
}

// Observe records one finished calculation.
func (m *Metrics) Observe(signType, status string, warnings int) {
	if m == nil {
		return
	}
	m.Calculations.WithLabelValues(signType, status).Inc()
	if warnings > 0 {
		m.Warnings.WithLabelValues(signType).Add(float64(warnings))
	}
}

// Failed records a rejected calculation.
func (m *Metrics) Failed(signType string) {
	if m == nil {
		return
	}
	m.CalculationErrors.WithLabelValues(signType).Inc()
}

// Request records one served HTTP request.
func (m *Metrics) Request(route string, code int, seconds float64) {
	if m == nil {
		return
	}
	m.HTTPRequests.WithLabelValues(route, statusText(code)).Inc()
	m.HTTPDuration.WithLabelValues(route).Observe(seconds)
}

func statusText(code int) string {
	switch {
	case code >= 500:
		return "5xx"
	case code >= 400:
		return "4xx"
	case code >= 300:
		return "3xx"
	default:
		return "2xx"
	}
}
