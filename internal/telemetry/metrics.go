// Package telemetry provides run metrics and tracing for the repair engine.
package telemetry

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics counts repair activity on a private registry.
type Metrics struct {
	registry           *prometheus.Registry
	attempts           *prometheus.CounterVec
	groupEvaluations   *prometheus.CounterVec
	projectValidations *prometheus.CounterVec
	attemptDuration    prometheus.Histogram
	tokens             *prometheus.CounterVec
}

// NewMetrics registers the repair collectors on a fresh registry.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		attempts: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "premm_attempts_total",
			Help: "Repair attempts by final result.",
		}, []string{"result"}),
		groupEvaluations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "premm_group_evaluations_total",
			Help: "Merged group evaluations by outcome.",
		}, []string{"outcome"}),
		projectValidations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "premm_project_validations_total",
			Help: "Full-suite validations by outcome.",
		}, []string{"outcome"}),
		attemptDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "premm_attempt_duration_seconds",
			Help:    "Wall-clock duration of one repair attempt.",
			Buckets: prometheus.ExponentialBuckets(1, 2, 14),
		}),
		tokens: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "premm_tokens_total",
			Help: "Tokens consumed by the repairer.",
		}, []string{"kind"}),
	}
}

// Registry exposes the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveAttempt records one finished attempt.
func (m *Metrics) ObserveAttempt(result string, d time.Duration) {
	if m == nil {
		return
	}

	m.attempts.WithLabelValues(result).Inc()
	m.attemptDuration.Observe(d.Seconds())
}

// GroupEvaluated records a merged group verdict.
func (m *Metrics) GroupEvaluated(outcome string) {
	if m == nil {
		return
	}

	m.groupEvaluations.WithLabelValues(outcome).Inc()
}

// ProjectValidated records a full-suite verdict.
func (m *Metrics) ProjectValidated(outcome string) {
	if m == nil {
		return
	}

	m.projectValidations.WithLabelValues(outcome).Inc()
}

// AddTokens accumulates repairer token usage.
func (m *Metrics) AddTokens(prompt, completion int) {
	if m == nil {
		return
	}

	m.tokens.WithLabelValues("prompt").Add(float64(prompt))
	m.tokens.WithLabelValues("completion").Add(float64(completion))
}

// WriteFile dumps the registry in text exposition format.
func (m *Metrics) WriteFile(path string) error {
	if m == nil || path == "" {
		return nil
	}

	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("failed to write metrics: %w", err)
	}

	return nil
}
