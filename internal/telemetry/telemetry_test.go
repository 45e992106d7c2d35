package telemetry_test

import (
	"context"
	"sync"
	"testing"
	"time"

	dto "github.com/prometheus/client_model/go"

	"github.com/jonesrussell/trader-pulse/internal/telemetry"
)

// providerOnce ensures we only create one Provider per test run to avoid
// duplicate Prometheus metric registration errors from promauto's global registry
var (
	testProvider *telemetry.Provider
	providerOnce sync.Once
)

func getTestProvider(t *testing.T) *telemetry.Provider {
	t.Helper()
	providerOnce.Do(func() {
		testProvider = telemetry.NewProvider()
	})
	return testProvider
}

func TestNewProvider(t *testing.T) {
	provider := getTestProvider(t)
	if provider == nil {
		t.Fatal("expected non-nil provider")
	}
	if provider.Tracer == nil {
		t.Error("expected non-nil tracer")
	}
	if provider.Metrics == nil {
		t.Error("expected non-nil metrics")
	}
}

func TestRecordUserAnalyzed(t *testing.T) {
	provider := getTestProvider(t)

	// Should not panic
	provider.RecordUserAnalyzed("hyper_active", "scalper", "very_high", 2*time.Millisecond)
	provider.RecordUserAnalyzed("", "", "", time.Millisecond)
}

func durationSampleCount(t *testing.T, provider *telemetry.Provider) uint64 {
	t.Helper()
	m := &dto.Metric{}
	if err := provider.Metrics.AnalysisDuration.Write(m); err != nil {
		t.Fatalf("failed to read histogram: %v", err)
	}
	return m.GetHistogram().GetSampleCount()
}

func TestRecordUserProfiledSkipsDurationHistogram(t *testing.T) {
	provider := getTestProvider(t)

	before := durationSampleCount(t, provider)
	provider.RecordUserProfiled("active", "day_trader", "high")
	if got := durationSampleCount(t, provider); got != before {
		t.Errorf("profile-only recording observed a duration: %d -> %d", before, got)
	}

	provider.RecordUserAnalyzed("active", "day_trader", "high", time.Millisecond)
	if got := durationSampleCount(t, provider); got != before+1 {
		t.Errorf("expected one duration observation, got %d -> %d", before, got)
	}
}

func TestRecordUserSkipped(t *testing.T) {
	provider := getTestProvider(t)

	// Should not panic
	provider.RecordUserSkipped("insufficient_posts")
}

func TestRecordBatchAndIngest(t *testing.T) {
	provider := getTestProvider(t)

	// Should not panic
	provider.RecordBatch(25, 3*time.Second)
	provider.RecordIngest(100, 7)
	provider.RecordPersisted(25)
	provider.RecordIndexed(25)
	provider.RecordExportFailure("elasticsearch")
}

func TestHandler(t *testing.T) {
	provider := getTestProvider(t)
	if provider.Handler() == nil {
		t.Error("expected non-nil metrics handler")
	}
}

func TestStartSpan(t *testing.T) {
	provider := getTestProvider(t)

	ctx, span := provider.StartSpan(context.Background(), "test-span")
	if ctx == nil {
		t.Error("expected non-nil context")
	}
	if span == nil {
		t.Error("expected non-nil span")
	}
	span.End()
}
