package database

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonesrussell/trader-pulse/internal/domain"
)

func newMockRepo(t *testing.T) (*ProfileRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewProfileRepository(sqlx.NewDb(db, "sqlmock")), mock
}

func sampleProfile() *domain.UserProfile {
	return &domain.UserProfile{
		Username:     "fastfingers",
		PostCount:    12,
		CommentCount: 4,
		Followers:    900,
		FastTwitch:   61.3,
		Tier:         domain.TierActive,
		Timeframe:    domain.Classification{Primary: domain.TimeframeUltraShortTerm, Confidence: 100},
		Strategy:     domain.Classification{Primary: domain.StrategyScalper, Confidence: 90, Secondary: domain.StrategyDayTrader},
		Conviction:   domain.Conviction{Level: domain.ConvictionHigh, Score: 85},
		Risk:         domain.Risk{Category: domain.RiskAggressive, Score: 88},
		Instruments:  domain.InstrumentProfile{Primary: domain.InstrumentOptions},
		ProductFit: domain.ProductFit{
			Score:      100,
			Likelihood: domain.LikelihoodVeryHigh,
			Features:   []string{"Real-time quotes", "Level 2 data"},
		},
		SymbolsTracked: []string{"SPY", "TQQQ"},
	}
}

func TestProfileRepositoryUpsert(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec("INSERT INTO trader_profiles").
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.Upsert(context.Background(), sampleProfile())
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProfileRepositoryUpsertError(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec("INSERT INTO trader_profiles").
		WillReturnError(assert.AnError)

	err := repo.Upsert(context.Background(), sampleProfile())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "fastfingers")
}

func profileColumnsList() []string {
	return []string{
		"username", "post_count", "comment_count", "followers",
		"fast_twitch_score", "tier",
		"timeframe", "timeframe_confidence",
		"strategy", "strategy_confidence", "secondary_strategy",
		"conviction_level", "conviction_score",
		"risk_category", "risk_score",
		"primary_instrument",
		"product_fit_score", "product_fit_likelihood", "recommended_features",
		"symbols_tracked",
	}
}

func TestProfileRepositoryGetByUsername(t *testing.T) {
	repo, mock := newMockRepo(t)

	rows := sqlmock.NewRows(profileColumnsList()).AddRow(
		"fastfingers", 12, 4, 900,
		61.3, "active",
		"ultra_short_term", 100.0,
		"scalper", 90.0, "day_trader",
		"high", 85.0,
		"aggressive", 88.0,
		"options",
		100.0, "very_high", "{\"Real-time quotes\",\"Level 2 data\"}",
		"{SPY,TQQQ}",
	)
	mock.ExpectQuery("SELECT(.+)FROM trader_profiles").
		WithArgs("fastfingers").
		WillReturnRows(rows)

	profile, err := repo.GetByUsername(context.Background(), "fastfingers")
	require.NoError(t, err)

	assert.Equal(t, "fastfingers", profile.Username)
	assert.Equal(t, 61.3, profile.FastTwitch)
	assert.Equal(t, domain.StrategyScalper, profile.Strategy.Primary)
	assert.Equal(t, []string{"Real-time quotes", "Level 2 data"}, []string(profile.ProductFit.Features))
	assert.Equal(t, []string{"SPY", "TQQQ"}, []string(profile.SymbolsTracked))
}

func TestProfileRepositoryGetByUsernameNotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("SELECT(.+)FROM trader_profiles").
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows(profileColumnsList()))

	_, err := repo.GetByUsername(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestProfileRepositoryTopByProductFit(t *testing.T) {
	repo, mock := newMockRepo(t)

	rows := sqlmock.NewRows(profileColumnsList()).
		AddRow("a", 10, 2, 100, 80.0, "hyper_active", "ultra_short_term", 100.0,
			"scalper", 90.0, "", "high", 90.0, "aggressive", 95.0, "options",
			100.0, "very_high", "{}", "{}").
		AddRow("b", 8, 1, 50, 40.0, "moderate", "short_term", 50.0,
			"swing_trader", 60.0, "", "medium", 50.0, "moderate", 50.0, "stocks",
			55.0, "medium", "{}", "{}")
	mock.ExpectQuery("SELECT(.+)FROM trader_profiles(.+)ORDER BY product_fit_score").
		WithArgs(2).
		WillReturnRows(rows)

	profiles, err := repo.TopByProductFit(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, profiles, 2)
	assert.Equal(t, "a", profiles[0].Username)
	assert.Equal(t, 100.0, profiles[0].ProductFit.Score)
}

func TestProfileRepositoryTierCounts(t *testing.T) {
	repo, mock := newMockRepo(t)

	rows := sqlmock.NewRows([]string{"tier", "count"}).
		AddRow("active", 7).
		AddRow("passive", 3)
	mock.ExpectQuery("SELECT tier, COUNT").WillReturnRows(rows)

	counts, err := repo.TierCounts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"active": 7, "passive": 3}, counts)
}
