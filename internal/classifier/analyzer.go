package classifier

import (
	"context"
	"errors"

	"github.com/jonesrussell/trader-pulse/internal/domain"
	"github.com/jonesrussell/trader-pulse/internal/logger"
)

// DefaultMinPosts is the minimum post history required for a single-user
// analysis. Batch runs use a stricter minimum set by the caller.
const DefaultMinPosts = 3

// ErrInsufficientPosts is returned when a user's history is too thin to
// classify.
var ErrInsufficientPosts = errors.New("insufficient posts for analysis")

// Analyzer runs the full classification pipeline for one user at a time.
// It is stateless apart from configuration and safe for concurrent use.
type Analyzer struct {
	minPosts int
	logger   logger.Logger
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithMinPosts overrides the minimum post count required per user.
func WithMinPosts(n int) Option {
	return func(a *Analyzer) {
		if n > 0 {
			a.minPosts = n
		}
	}
}

// NewAnalyzer creates an analyzer with the given logger.
func NewAnalyzer(log logger.Logger, opts ...Option) *Analyzer {
	a := &Analyzer{
		minPosts: DefaultMinPosts,
		logger:   log,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// MinPosts returns the configured per-user minimum.
func (a *Analyzer) MinPosts() int { return a.minPosts }

// AnalyzeUser builds the complete profile for one user from their post
// history. The same history always produces the same profile.
func (a *Analyzer) AnalyzeUser(ctx context.Context, username string, posts []*domain.Post) (*domain.UserProfile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(posts) < a.minPosts {
		return nil, ErrInsufficientPosts
	}

	profile := &domain.UserProfile{
		Username:  username,
		PostCount: len(posts),
	}

	for _, p := range posts {
		if p.IsComment {
			profile.CommentCount++
		}
	}
	if len(posts) > 0 {
		profile.Followers = posts[0].Followers
	}
	profile.SymbolsTracked = distinctSymbols(posts)

	profile.Signals = ExtractSignals(posts)
	profile.FastTwitch = FastTwitchScore(profile.Signals)
	profile.Tier = ActivityTier(profile.FastTwitch)

	profile.Timeframe = ClassifyTimeframe(posts)
	profile.Strategy = ClassifyStrategy(posts)
	profile.Conviction = ClassifyConviction(posts)
	profile.Risk = ClassifyRisk(posts)
	profile.Instruments = ClassifyInstruments(posts)

	profile.ProductFit = ScoreProductFit(profile)

	a.logger.Debug("analyzed user",
		logger.String("username", username),
		logger.Int("posts", len(posts)),
		logger.Float64("fast_twitch", profile.FastTwitch),
		logger.String("timeframe", profile.Timeframe.Primary),
		logger.String("strategy", profile.Strategy.Primary))

	return profile, nil
}

// distinctSymbols collects the symbols a user mentioned, first occurrence
// order preserved.
func distinctSymbols(posts []*domain.Post) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, p := range posts {
		for _, sym := range p.Symbols {
			if _, ok := seen[sym]; ok {
				continue
			}
			seen[sym] = struct{}{}
			out = append(out, sym)
		}
	}
	return out
}
