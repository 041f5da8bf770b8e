// Package observability holds Prometheus metrics and OpenTelemetry tracing setup.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Metrics holds all Prometheus metrics on a custom registry
type Metrics struct {
	Registry *prometheus.Registry

	// HTTP
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	HTTPInFlight        prometheus.Gauge

	// Domain
	ResponsesSubmitted prometheus.Counter
	RateLimited        prometheus.Counter
	AssessmentsChanged *prometheus.CounterVec
	WebhookEvents      *prometheus.CounterVec
	EventsDispatched   *prometheus.CounterVec
	EmailsSent         *prometheus.CounterVec
	ReportsGenerated   *prometheus.CounterVec
	AnalyticsCache     *prometheus.CounterVec
	AnalyticsDuration  prometheus.Histogram
	SchedulerRuns      *prometheus.CounterVec
}

// NewMetrics creates the metrics and registers them with Go and process collectors
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		Registry: reg,

		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "psicomapa",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests.",
		}, []string{"method", "route", "status"}),

		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "psicomapa",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),

		HTTPInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "psicomapa",
			Subsystem: "http",
			Name:      "requests_in_flight",
			Help:      "HTTP requests currently being served.",
		}),

		ResponsesSubmitted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "psicomapa",
			Subsystem: "survey",
			Name:      "responses_submitted_total",
			Help:      "Anonymous survey responses stored.",
		}),

		RateLimited: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "psicomapa",
			Subsystem: "survey",
			Name:      "rate_limited_total",
			Help:      "Public submissions rejected by the rate limiter.",
		}),

		AssessmentsChanged: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "psicomapa",
			Subsystem: "assessment",
			Name:      "transitions_total",
			Help:      "Assessment status transitions.",
		}, []string{"to", "trigger"}),

		WebhookEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "psicomapa",
			Subsystem: "stripe",
			Name:      "webhook_events_total",
			Help:      "Stripe webhook events by type and outcome.",
		}, []string{"type", "outcome"}),

		EventsDispatched: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "psicomapa",
			Subsystem: "n8n",
			Name:      "events_total",
			Help:      "Automation events by type and delivery outcome.",
		}, []string{"event", "outcome"}),

		EmailsSent: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "psicomapa",
			Subsystem: "email",
			Name:      "sent_total",
			Help:      "Transactional emails by template and status.",
		}, []string{"template", "status"}),

		ReportsGenerated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "psicomapa",
			Subsystem: "report",
			Name:      "generated_total",
			Help:      "Reports rendered by format.",
		}, []string{"format"}),

		AnalyticsCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "psicomapa",
			Subsystem: "analytics",
			Name:      "cache_total",
			Help:      "Analytics cache lookups by result.",
		}, []string{"result"}),

		AnalyticsDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "psicomapa",
			Subsystem: "analytics",
			Name:      "compute_duration_seconds",
			Help:      "Time spent loading and aggregating answers.",
			Buckets:   []float64{0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}),

		SchedulerRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "psicomapa",
			Subsystem: "scheduler",
			Name:      "runs_total",
			Help:      "Scheduled job runs by job and status.",
		}, []string{"job", "status"}),
	}

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.HTTPInFlight,
		m.ResponsesSubmitted,
		m.RateLimited,
		m.AssessmentsChanged,
		m.WebhookEvents,
		m.EventsDispatched,
		m.EmailsSent,
		m.ReportsGenerated,
		m.AnalyticsCache,
		m.AnalyticsDuration,
		m.SchedulerRuns,
	)

	return m
}

// ObserveEvent matches the n8n dispatcher's observer signature
func (m *Metrics) ObserveEvent(eventType, outcome string) {
	if m == nil {
		return
	}
	m.EventsDispatched.WithLabelValues(eventType, outcome).Inc()
}

// RecordTransition counts an assessment status change
func (m *Metrics) RecordTransition(to, trigger string) {
	if m == nil {
		return
	}
	m.AssessmentsChanged.WithLabelValues(to, trigger).Inc()
}

// RecordSubmission counts a stored public response
func (m *Metrics) RecordSubmission() {
	if m == nil {
		return
	}
	m.ResponsesSubmitted.Inc()
}

// RecordRateLimited counts a rejected public submission
func (m *Metrics) RecordRateLimited() {
	if m == nil {
		return
	}
	m.RateLimited.Inc()
}

// RecordWebhook counts a Stripe event by type and outcome
func (m *Metrics) RecordWebhook(eventType, outcome string) {
	if m == nil {
		return
	}
	m.WebhookEvents.WithLabelValues(eventType, outcome).Inc()
}

// RecordEmail counts a transactional email by template and status
func (m *Metrics) RecordEmail(template, status string) {
	if m == nil {
		return
	}
	m.EmailsSent.WithLabelValues(template, status).Inc()
}

// RecordReport counts a rendered report
func (m *Metrics) RecordReport(format string) {
	if m == nil {
		return
	}
	m.ReportsGenerated.WithLabelValues(format).Inc()
}

// RecordAnalyticsCache counts a cache hit or miss
func (m *Metrics) RecordAnalyticsCache(result string) {
	if m == nil {
		return
	}
	m.AnalyticsCache.WithLabelValues(result).Inc()
}

// ObserveAnalyticsDuration records how long an aggregation took
func (m *Metrics) ObserveAnalyticsDuration(seconds float64) {
	if m == nil {
		return
	}
	m.AnalyticsDuration.Observe(seconds)
}

// RecordSchedulerRun counts a scheduled job run
func (m *Metrics) RecordSchedulerRun(job, status string) {
	if m == nil {
		return
	}
	m.SchedulerRuns.WithLabelValues(job, status).Inc()
}
