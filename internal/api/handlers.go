package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"

	"github.com/jonesrussell/trader-pulse/internal/classifier"
	"github.com/jonesrussell/trader-pulse/internal/database"
	"github.com/jonesrussell/trader-pulse/internal/domain"
	"github.com/jonesrussell/trader-pulse/internal/ingest"
	"github.com/jonesrussell/trader-pulse/internal/lexicon"
	"github.com/jonesrussell/trader-pulse/internal/processor"
	"github.com/jonesrussell/trader-pulse/internal/telemetry"
)

// Listing defaults for persisted profiles.
const (
	defaultProfileLimit = 50
	maxProfileLimit     = 500
	topPostsLimit       = 5
)

// Logger defines the logging interface
type Logger interface {
	Debug(msg string, keysAndValues ...interface{})
	Info(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
}

// Handler handles HTTP requests for the trader-pulse API
type Handler struct {
	analyzer    *classifier.Analyzer
	profiles    *database.ProfileRepository
	telemetry   *telemetry.Provider
	minPosts    int
	concurrency int
	logger      Logger
}

// NewHandler creates a new API handler. The profile repository may be nil when
// persistence is disabled; the profile endpoints then report 503.
func NewHandler(
	analyzer *classifier.Analyzer,
	profiles *database.ProfileRepository,
	tel *telemetry.Provider,
	minPosts, concurrency int,
	logger Logger,
) *Handler {
	if minPosts <= 0 {
		minPosts = processor.BatchMinPosts
	}
	return &Handler{
		analyzer:    analyzer,
		profiles:    profiles,
		telemetry:   tel,
		minPosts:    minPosts,
		concurrency: concurrency,
		logger:      logger,
	}
}

// Analyze handles POST /api/v1/analyze. It deduplicates the supplied posts,
// profiles every eligible author, and returns ranked profiles with corpus
// insights.
func (h *Handler) Analyze(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Invalid analyze request", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(req.Posts) > maxBatchPosts {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "too many posts"})
		return
	}

	ctx, span := h.telemetry.StartSpan(c.Request.Context(), "analyze.batch",
		attribute.Int("posts", len(req.Posts)))
	defer span.End()

	start := time.Now()

	collector := ingest.NewCollector()
	accepted := collector.AddBatch(req.Posts)
	duplicates := len(req.Posts) - accepted
	posts := collector.Posts()
	h.telemetry.RecordIngest(accepted, duplicates)

	groups := ingest.GroupByUser(posts)

	minPosts := h.minPosts
	if req.MinPosts > 0 {
		minPosts = req.MinPosts
	}

	batch := processor.NewBatchAnalyzer(h.analyzer, minPosts, h.concurrency, h.logger)
	profiles, err := batch.Process(ctx, groups)
	if err != nil {
		h.logger.Error("Batch analysis failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	for _, p := range profiles {
		h.telemetry.RecordUserProfiled(p.Tier, p.Strategy.Primary, p.ProductFit.Likelihood)
	}
	h.telemetry.RecordBatch(len(profiles), time.Since(start))

	h.logger.Info("Analyze request completed",
		"posts", len(posts),
		"users", len(groups),
		"analyzed", len(profiles),
		"duration_ms", time.Since(start).Milliseconds(),
	)

	c.JSON(http.StatusOK, AnalyzeResponse{
		Profiles: profiles,
		Insights: CorpusInsights{
			TopPosts:      classifier.TopEngagedPosts(posts, topPostsLimit),
			Urgency:       classifier.AnalyzeUrgency(posts),
			Conversations: classifier.AnalyzeConversations(posts),
			Sentiment:     classifier.AnalyzeSentiment(posts),
		},
		TotalPosts: len(posts),
		TotalUsers: len(groups),
		Analyzed:   len(profiles),
		Duplicates: duplicates,
	})
}

// AnalyzeUser handles POST /api/v1/analyze/user
func (h *Handler) AnalyzeUser(c *gin.Context) {
	var req AnalyzeUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Invalid analyze user request", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(req.Posts) > maxUserPosts {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "too many posts"})
		return
	}

	ctx, span := h.telemetry.StartSpan(c.Request.Context(), "analyze.user",
		attribute.String("username", req.Username),
		attribute.Int("posts", len(req.Posts)))
	defer span.End()

	start := time.Now()

	profile, err := h.analyzer.AnalyzeUser(ctx, req.Username, req.Posts)
	if err != nil {
		if errors.Is(err, classifier.ErrInsufficientPosts) {
			h.telemetry.RecordUserSkipped("insufficient_posts")
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":     err.Error(),
				"min_posts": h.analyzer.MinPosts(),
			})
			return
		}
		h.logger.Error("User analysis failed", "username", req.Username, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.telemetry.RecordUserAnalyzed(profile.Tier, profile.Strategy.Primary,
		profile.ProductFit.Likelihood, time.Since(start))

	h.logger.Info("User analyzed",
		"username", profile.Username,
		"tier", profile.Tier,
		"product_fit", profile.ProductFit.Score,
	)

	c.JSON(http.StatusOK, AnalyzeUserResponse{Profile: profile})
}

// GetProfile handles GET /api/v1/profiles/:username
func (h *Handler) GetProfile(c *gin.Context) {
	if h.profiles == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "profile storage not configured"})
		return
	}

	username := c.Param("username")
	profile, err := h.profiles.GetByUsername(c.Request.Context(), username)
	if err != nil {
		if errors.Is(err, database.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
			return
		}
		h.logger.Error("Failed to get profile", "username", username, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get profile"})
		return
	}

	c.JSON(http.StatusOK, profile)
}

// ListProfiles handles GET /api/v1/profiles
func (h *Handler) ListProfiles(c *gin.Context) {
	if h.profiles == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "profile storage not configured"})
		return
	}

	limit := defaultProfileLimit
	if limitParam := c.Query("limit"); limitParam != "" {
		if n, err := strconv.Atoi(limitParam); err == nil && n > 0 && n <= maxProfileLimit {
			limit = n
		}
	}

	profiles, err := h.profiles.TopByProductFit(c.Request.Context(), limit)
	if err != nil {
		h.logger.Error("Failed to list profiles", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list profiles"})
		return
	}

	c.JSON(http.StatusOK, ProfilesListResponse{
		Profiles: profiles,
		Total:    len(profiles),
	})
}

// GetTierStats handles GET /api/v1/stats/tiers
func (h *Handler) GetTierStats(c *gin.Context) {
	if h.profiles == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "profile storage not configured"})
		return
	}

	counts, err := h.profiles.TierCounts(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to get tier stats", "error", err)
		// Return empty counts instead of error to avoid breaking dashboards
		c.JSON(http.StatusOK, gin.H{"tiers": gin.H{}})
		return
	}

	c.JSON(http.StatusOK, gin.H{"tiers": counts})
}

// GetLexicon handles GET /api/v1/lexicon
func (h *Handler) GetLexicon(c *gin.Context) {
	categories := lexiconInventory()
	c.JSON(http.StatusOK, LexiconResponse{
		Categories: categories,
		Total:      len(categories),
	})
}

func lexiconInventory() []LexiconCategory {
	keyword := func(g *lexicon.Group) LexiconCategory {
		return LexiconCategory{Name: g.Name(), Kind: "keyword", Patterns: g.Size()}
	}
	regex := func(g *lexicon.Group, label string) LexiconCategory {
		return LexiconCategory{Name: g.Name(), Kind: "regex", Patterns: g.Size(), Label: label}
	}

	categories := []LexiconCategory{
		keyword(lexicon.DayTrading),
		keyword(lexicon.Options),
		keyword(lexicon.Derivatives),
		keyword(lexicon.Urgent),
		keyword(lexicon.Technical),
		keyword(lexicon.FuturesTerms),
		keyword(lexicon.CryptoTerms),
		keyword(lexicon.Adversarial),
		keyword(lexicon.Collaborative),
		keyword(lexicon.NeutralTone),
	}
	for _, lg := range lexicon.Timeframes {
		categories = append(categories, regex(lg.Group, lg.Label))
	}
	for _, lg := range lexicon.Strategies {
		categories = append(categories, regex(lg.Group, lg.Label))
	}
	categories = append(categories,
		regex(lexicon.ConvictionHigh, domain.ConvictionHigh),
		regex(lexicon.ConvictionMedium, domain.ConvictionMedium),
		regex(lexicon.ConvictionLow, domain.ConvictionLow),
		regex(lexicon.RiskAggressive, domain.RiskAggressive),
		regex(lexicon.RiskConservative, domain.RiskConservative),
	)
	return categories
}

// HealthCheck handles GET /healthz
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "trader-pulse",
	})
}

// ReadyCheck handles GET /ready
func (h *Handler) ReadyCheck(c *gin.Context) {
	checks := gin.H{"analyzer": "ok"}
	if h.profiles == nil {
		checks["postgresql"] = "disabled"
	} else {
		checks["postgresql"] = "ok"
	}
	c.JSON(http.StatusOK, gin.H{
		"status": "ready",
		"checks": checks,
	})
}
