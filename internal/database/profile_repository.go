package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/jonesrussell/trader-pulse/internal/domain"
)

// ErrProfileNotFound is returned when no profile exists for a username.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileRepository handles persistence of analyzed user profiles.
type ProfileRepository struct {
	db *sqlx.DB
}

// NewProfileRepository creates a profile repository.
func NewProfileRepository(db *sqlx.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// Upsert stores a profile, replacing any previous analysis for the same
// username.
func (r *ProfileRepository) Upsert(ctx context.Context, profile *domain.UserProfile) error {
	query := `
		INSERT INTO trader_profiles (
			username, post_count, comment_count, followers,
			fast_twitch_score, tier,
			timeframe, timeframe_confidence,
			strategy, strategy_confidence, secondary_strategy,
			conviction_level, conviction_score,
			risk_category, risk_score,
			primary_instrument,
			product_fit_score, product_fit_likelihood, recommended_features,
			symbols_tracked
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
		ON CONFLICT (username) DO UPDATE SET
			post_count = EXCLUDED.post_count,
			comment_count = EXCLUDED.comment_count,
			followers = EXCLUDED.followers,
			fast_twitch_score = EXCLUDED.fast_twitch_score,
			tier = EXCLUDED.tier,
			timeframe = EXCLUDED.timeframe,
			timeframe_confidence = EXCLUDED.timeframe_confidence,
			strategy = EXCLUDED.strategy,
			strategy_confidence = EXCLUDED.strategy_confidence,
			secondary_strategy = EXCLUDED.secondary_strategy,
			conviction_level = EXCLUDED.conviction_level,
			conviction_score = EXCLUDED.conviction_score,
			risk_category = EXCLUDED.risk_category,
			risk_score = EXCLUDED.risk_score,
			primary_instrument = EXCLUDED.primary_instrument,
			product_fit_score = EXCLUDED.product_fit_score,
			product_fit_likelihood = EXCLUDED.product_fit_likelihood,
			recommended_features = EXCLUDED.recommended_features,
			symbols_tracked = EXCLUDED.symbols_tracked,
			analyzed_at = NOW()
	`

	_, err := r.db.ExecContext(
		ctx,
		query,
		profile.Username,
		profile.PostCount,
		profile.CommentCount,
		profile.Followers,
		profile.FastTwitch,
		profile.Tier,
		profile.Timeframe.Primary,
		profile.Timeframe.Confidence,
		profile.Strategy.Primary,
		profile.Strategy.Confidence,
		profile.Strategy.Secondary,
		profile.Conviction.Level,
		profile.Conviction.Score,
		profile.Risk.Category,
		profile.Risk.Score,
		profile.Instruments.Primary,
		profile.ProductFit.Score,
		profile.ProductFit.Likelihood,
		pq.Array(profile.ProductFit.Features),
		pq.Array(profile.SymbolsTracked),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert profile for %s: %w", profile.Username, err)
	}
	return nil
}

// profileRow is the flat database shape of a stored profile.
type profileRow struct {
	Username             string         `db:"username"`
	PostCount            int            `db:"post_count"`
	CommentCount         int            `db:"comment_count"`
	Followers            int            `db:"followers"`
	FastTwitchScore      float64        `db:"fast_twitch_score"`
	Tier                 string         `db:"tier"`
	Timeframe            string         `db:"timeframe"`
	TimeframeConfidence  float64        `db:"timeframe_confidence"`
	Strategy             string         `db:"strategy"`
	StrategyConfidence   float64        `db:"strategy_confidence"`
	SecondaryStrategy    string         `db:"secondary_strategy"`
	ConvictionLevel      string         `db:"conviction_level"`
	ConvictionScore      float64        `db:"conviction_score"`
	RiskCategory         string         `db:"risk_category"`
	RiskScore            float64        `db:"risk_score"`
	PrimaryInstrument    string         `db:"primary_instrument"`
	ProductFitScore      float64        `db:"product_fit_score"`
	ProductFitLikelihood string         `db:"product_fit_likelihood"`
	RecommendedFeatures  pq.StringArray `db:"recommended_features"`
	SymbolsTracked       pq.StringArray `db:"symbols_tracked"`
}

func (row *profileRow) toDomain() *domain.UserProfile {
	return &domain.UserProfile{
		Username:     row.Username,
		PostCount:    row.PostCount,
		CommentCount: row.CommentCount,
		Followers:    row.Followers,
		FastTwitch:   row.FastTwitchScore,
		Tier:         row.Tier,
		Timeframe: domain.Classification{
			Primary:    row.Timeframe,
			Confidence: row.TimeframeConfidence,
		},
		Strategy: domain.Classification{
			Primary:    row.Strategy,
			Confidence: row.StrategyConfidence,
			Secondary:  row.SecondaryStrategy,
		},
		Conviction: domain.Conviction{
			Level: row.ConvictionLevel,
			Score: row.ConvictionScore,
		},
		Risk: domain.Risk{
			Category: row.RiskCategory,
			Score:    row.RiskScore,
		},
		Instruments: domain.InstrumentProfile{Primary: row.PrimaryInstrument},
		ProductFit: domain.ProductFit{
			Score:      row.ProductFitScore,
			Likelihood: row.ProductFitLikelihood,
			Features:   row.RecommendedFeatures,
		},
		SymbolsTracked: row.SymbolsTracked,
	}
}

const profileColumns = `
	username, post_count, comment_count, followers,
	fast_twitch_score, tier,
	timeframe, timeframe_confidence,
	strategy, strategy_confidence, secondary_strategy,
	conviction_level, conviction_score,
	risk_category, risk_score,
	primary_instrument,
	product_fit_score, product_fit_likelihood, recommended_features,
	symbols_tracked`

// GetByUsername retrieves the stored profile for a username.
func (r *ProfileRepository) GetByUsername(ctx context.Context, username string) (*domain.UserProfile, error) {
	query := `SELECT` + profileColumns + `
		FROM trader_profiles
		WHERE username = $1`

	var row profileRow
	if err := r.db.GetContext(ctx, &row, query, username); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to get profile for %s: %w", username, err)
	}
	return row.toDomain(), nil
}

// TopByProductFit retrieves the highest product-fit profiles, ranked the
// same way the batch analyzer ranks in memory.
func (r *ProfileRepository) TopByProductFit(ctx context.Context, limit int) ([]*domain.UserProfile, error) {
	query := `SELECT` + profileColumns + `
		FROM trader_profiles
		ORDER BY product_fit_score DESC, fast_twitch_score DESC, username ASC
		LIMIT $1`

	var rows []profileRow
	if err := r.db.SelectContext(ctx, &rows, query, limit); err != nil {
		return nil, fmt.Errorf("failed to list top profiles: %w", err)
	}

	profiles := make([]*domain.UserProfile, 0, len(rows))
	for i := range rows {
		profiles = append(profiles, rows[i].toDomain())
	}
	return profiles, nil
}

// TierCounts returns how many stored profiles sit in each activity tier.
func (r *ProfileRepository) TierCounts(ctx context.Context) (map[string]int, error) {
	query := `SELECT tier, COUNT(*) AS count FROM trader_profiles GROUP BY tier`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to count tiers: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var tier string
		var count int
		if err := rows.Scan(&tier, &count); err != nil {
			return nil, fmt.Errorf("failed to scan tier count: %w", err)
		}
		counts[tier] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate tier counts: %w", err)
	}
	return counts, nil
}
