package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/jonesrussell/trader-pulse/internal/classifier"
	"github.com/jonesrussell/trader-pulse/internal/domain"
	"github.com/jonesrussell/trader-pulse/internal/logger"
	"github.com/jonesrussell/trader-pulse/internal/telemetry"
)

// mockLogger implements Logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Info(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warn(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Error(msg string, keysAndValues ...interface{}) {}

// Provider uses promauto's global registry, so tests share one instance.
var (
	testTelemetry *telemetry.Provider
	telemetryOnce sync.Once
)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	telemetryOnce.Do(func() {
		testTelemetry = telemetry.NewProvider()
	})

	analyzer := classifier.NewAnalyzer(logger.NewNop())
	handler := NewHandler(analyzer, nil, testTelemetry, 3, 2, &mockLogger{})

	router := gin.New()
	SetupRoutes(router, handler, testTelemetry)
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func getPath(router *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAnalyzeUserEndpoint(t *testing.T) {
	router := setupTestRouter()

	req := AnalyzeUserRequest{
		Username: "sam",
		Posts: []*domain.Post{
			{ID: "m1", Username: "sam", Body: "Scalping SPY 0dte calls, need to move fast!!!", Symbols: []string{"SPY"}},
			{ID: "m2", Username: "sam", Body: "Watching the breakout above resistance"},
			{ID: "m3", Username: "sam", Body: "Out of the trade, quick scalp done"},
		},
	}

	w := postJSON(t, router, "/api/v1/analyze/user", req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp AnalyzeUserResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Profile == nil {
		t.Fatal("expected a profile in the response")
	}
	if resp.Profile.Username != "sam" {
		t.Errorf("username = %q, want sam", resp.Profile.Username)
	}
	if resp.Profile.Strategy.Primary != domain.StrategyScalper {
		t.Errorf("strategy = %q, want %q", resp.Profile.Strategy.Primary, domain.StrategyScalper)
	}
	if resp.Profile.PostCount != 3 {
		t.Errorf("post count = %d, want 3", resp.Profile.PostCount)
	}
}

func TestAnalyzeUserInsufficientPosts(t *testing.T) {
	router := setupTestRouter()

	req := AnalyzeUserRequest{
		Username: "quiet",
		Posts: []*domain.Post{
			{ID: "m1", Username: "quiet", Body: "hello"},
		},
	}

	w := postJSON(t, router, "/api/v1/analyze/user", req)
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d: %s", w.Code, w.Body.String())
	}
}

func TestAnalyzeUserBadRequest(t *testing.T) {
	router := setupTestRouter()

	// Missing username
	w := postJSON(t, router, "/api/v1/analyze/user", gin.H{
		"posts": []gin.H{{"message_id": "m1", "body": "hi"}},
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestAnalyzeEndpoint(t *testing.T) {
	router := setupTestRouter()

	req := AnalyzeRequest{
		Posts: []*domain.Post{
			{ID: "m1", Username: "dana", Body: "Scalping SPY today, quick trade", Symbols: []string{"SPY"}},
			{ID: "m2", Username: "dana", Body: "Watching support levels"},
			{ID: "m3", Username: "dana", Body: "Done for the session"},
			{ID: "m3", Username: "dana", Body: "Done for the session"}, // duplicate id
			{ID: "m4", Username: "solo", Body: "First post here"},
		},
	}

	w := postJSON(t, router, "/api/v1/analyze", req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp AnalyzeResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.TotalPosts != 4 {
		t.Errorf("total posts = %d, want 4", resp.TotalPosts)
	}
	if resp.Duplicates != 1 {
		t.Errorf("duplicates = %d, want 1", resp.Duplicates)
	}
	if resp.TotalUsers != 2 {
		t.Errorf("total users = %d, want 2", resp.TotalUsers)
	}
	// Only dana has enough posts to be profiled.
	if resp.Analyzed != 1 || len(resp.Profiles) != 1 {
		t.Fatalf("analyzed = %d with %d profiles, want 1 and 1", resp.Analyzed, len(resp.Profiles))
	}
	if resp.Profiles[0].Username != "dana" {
		t.Errorf("profile username = %q, want dana", resp.Profiles[0].Username)
	}
	if len(resp.Insights.TopPosts) == 0 {
		t.Error("expected top posts in insights")
	}
}

func TestAnalyzeBadRequest(t *testing.T) {
	router := setupTestRouter()

	w := postJSON(t, router, "/api/v1/analyze", gin.H{"posts": []gin.H{}})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for empty posts, got %d", w.Code)
	}
}

func TestProfileEndpointsWithoutStorage(t *testing.T) {
	router := setupTestRouter()

	if w := getPath(router, "/api/v1/profiles"); w.Code != http.StatusServiceUnavailable {
		t.Errorf("list profiles: expected 503, got %d", w.Code)
	}
	if w := getPath(router, "/api/v1/profiles/dana"); w.Code != http.StatusServiceUnavailable {
		t.Errorf("get profile: expected 503, got %d", w.Code)
	}
	if w := getPath(router, "/api/v1/stats/tiers"); w.Code != http.StatusServiceUnavailable {
		t.Errorf("tier stats: expected 503, got %d", w.Code)
	}
}

func TestLexiconEndpoint(t *testing.T) {
	router := setupTestRouter()

	w := getPath(router, "/api/v1/lexicon")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp LexiconResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	// 10 keyword groups, 4 timeframes, 8 strategies, 3 conviction, 2 risk.
	if resp.Total != 27 {
		t.Errorf("total categories = %d, want 27", resp.Total)
	}

	seen := make(map[string]bool)
	for _, cat := range resp.Categories {
		if cat.Patterns <= 0 {
			t.Errorf("category %q has no patterns", cat.Name)
		}
		seen[cat.Name] = true
	}
	for _, name := range []string{"day_trading", "options", "urgent"} {
		if !seen[name] {
			t.Errorf("missing lexicon category %q", name)
		}
	}
}

func TestHealthEndpoints(t *testing.T) {
	router := setupTestRouter()

	if w := getPath(router, "/healthz"); w.Code != http.StatusOK {
		t.Errorf("healthz: expected 200, got %d", w.Code)
	}
	if w := getPath(router, "/ready"); w.Code != http.StatusOK {
		t.Errorf("ready: expected 200, got %d", w.Code)
	}
	if w := getPath(router, "/metrics"); w.Code != http.StatusOK {
		t.Errorf("metrics: expected 200, got %d", w.Code)
	}
}
