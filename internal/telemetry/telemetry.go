// Package telemetry provides OpenTelemetry instrumentation for the
// trader-pulse service. It exports Prometheus metrics and provides tracing
// capabilities.
package telemetry

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const serviceName = "trader-pulse"

// Metrics holds all analysis Prometheus metrics
type Metrics struct {
	// Analysis metrics
	UsersAnalyzed    prometheus.Counter
	UsersSkipped     *prometheus.CounterVec
	AnalysisDuration prometheus.Histogram
	BatchSize        prometheus.Histogram
	BatchDuration    prometheus.Histogram

	// Ingest metrics
	PostsIngested   prometheus.Counter
	PostsDuplicated prometheus.Counter

	// Outcome distributions
	TierTotal       *prometheus.CounterVec
	StrategyTotal   *prometheus.CounterVec
	LikelihoodTotal *prometheus.CounterVec

	// Export metrics
	ProfilesPersisted prometheus.Counter
	ProfilesIndexed   prometheus.Counter
	ExportFailures    *prometheus.CounterVec
}

// Provider wraps telemetry providers
type Provider struct {
	Tracer  trace.Tracer
	Metrics *Metrics
}

// NewProvider initializes telemetry with Prometheus metrics
func NewProvider() *Provider {
	return &Provider{
		Tracer:  otel.Tracer(serviceName),
		Metrics: initMetrics(),
	}
}

// Handler returns the Prometheus HTTP handler for /metrics endpoint
func (p *Provider) Handler() http.Handler {
	return promhttp.Handler()
}

func initMetrics() *Metrics {
	m := &Metrics{}
	initAnalysisMetrics(m)
	initIngestMetrics(m)
	initOutcomeMetrics(m)
	initExportMetrics(m)
	return m
}

func initAnalysisMetrics(m *Metrics) {
	m.UsersAnalyzed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "traderpulse_users_analyzed_total",
		Help: "Total users successfully analyzed",
	})

	m.UsersSkipped = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "traderpulse_users_skipped_total",
		Help: "Total users skipped before analysis",
	}, []string{"reason"})

	m.AnalysisDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "traderpulse_analysis_duration_seconds",
		Help:    "Time to analyze a single user history",
		Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0},
	})

	m.BatchSize = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "traderpulse_batch_size",
		Help:    "Number of eligible users per batch run",
		Buckets: []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000},
	})

	m.BatchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "traderpulse_batch_duration_seconds",
		Help:    "Wall time of a full batch analysis",
		Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 10, 30, 60},
	})
}

func initIngestMetrics(m *Metrics) {
	m.PostsIngested = promauto.NewCounter(prometheus.CounterOpts{
		Name: "traderpulse_posts_ingested_total",
		Help: "Total posts accepted into the dataset",
	})

	m.PostsDuplicated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "traderpulse_posts_duplicated_total",
		Help: "Total posts rejected as duplicates by message id",
	})
}

func initOutcomeMetrics(m *Metrics) {
	m.TierTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "traderpulse_tier_total",
		Help: "Profiles produced by activity tier",
	}, []string{"tier"})

	m.StrategyTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "traderpulse_strategy_total",
		Help: "Profiles produced by primary strategy",
	}, []string{"strategy"})

	m.LikelihoodTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "traderpulse_likelihood_total",
		Help: "Profiles produced by product-fit likelihood",
	}, []string{"likelihood"})
}

func initExportMetrics(m *Metrics) {
	m.ProfilesPersisted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "traderpulse_profiles_persisted_total",
		Help: "Profiles written to the database",
	})

	m.ProfilesIndexed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "traderpulse_profiles_indexed_total",
		Help: "Profiles exported to Elasticsearch",
	})

	m.ExportFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "traderpulse_export_failures_total",
		Help: "Failed profile exports by sink",
	}, []string{"sink"})
}

// RecordUserAnalyzed records one completed analysis with its outcome labels
func (p *Provider) RecordUserAnalyzed(tier, strategy, likelihood string, duration time.Duration) {
	p.Metrics.AnalysisDuration.Observe(duration.Seconds())
	p.RecordUserProfiled(tier, strategy, likelihood)
}

// RecordUserProfiled records the outcome labels of one profile without a
// per-user duration. Batch runs use this: only the batch wall time is
// measured there, and observing zeros would skew the analysis histogram.
func (p *Provider) RecordUserProfiled(tier, strategy, likelihood string) {
	p.Metrics.UsersAnalyzed.Inc()
	p.Metrics.TierTotal.WithLabelValues(orUnknown(tier)).Inc()
	p.Metrics.StrategyTotal.WithLabelValues(orUnknown(strategy)).Inc()
	p.Metrics.LikelihoodTotal.WithLabelValues(orUnknown(likelihood)).Inc()
}

// RecordUserSkipped records a user excluded from analysis
func (p *Provider) RecordUserSkipped(reason string) {
	p.Metrics.UsersSkipped.WithLabelValues(reason).Inc()
}

// RecordIngest records ingest totals for a fetch merge
func (p *Provider) RecordIngest(accepted, duplicates int) {
	p.Metrics.PostsIngested.Add(float64(accepted))
	p.Metrics.PostsDuplicated.Add(float64(duplicates))
}

// RecordBatch records the size and duration of a batch run
func (p *Provider) RecordBatch(size int, duration time.Duration) {
	p.Metrics.BatchSize.Observe(float64(size))
	p.Metrics.BatchDuration.Observe(duration.Seconds())
}

// RecordPersisted records profiles written to the database
func (p *Provider) RecordPersisted(count int) {
	p.Metrics.ProfilesPersisted.Add(float64(count))
}

// RecordIndexed records profiles exported to Elasticsearch
func (p *Provider) RecordIndexed(count int) {
	p.Metrics.ProfilesIndexed.Add(float64(count))
}

// RecordExportFailure records a failed export to a sink
func (p *Provider) RecordExportFailure(sink string) {
	p.Metrics.ExportFailures.WithLabelValues(sink).Inc()
}

func orUnknown(label string) string {
	if label == "" {
		return "unknown"
	}
	return label
}

// StartSpan starts a new trace span.
// The caller is responsible for ending the span with span.End().
//
//nolint:spancheck // Caller is responsible for ending the span
func (p *Provider) StartSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	ctx, span := p.Tracer.Start(ctx, name, trace.WithAttributes(attrs...))
	return ctx, span
}
