package domain

// Activity tier labels, keyed off the fast-twitch score.
const (
	TierHyperActive = "hyper_active"
	TierActive      = "active"
	TierModerate    = "moderate"
	TierPassive     = "passive"
)

// Product-fit likelihood labels.
const (
	LikelihoodVeryHigh = "very_high"
	LikelihoodHigh     = "high"
	LikelihoodMedium   = "medium"
	LikelihoodLow      = "low"
)

// SignalVector holds the eight bounded behavioral signals extracted from an
// author's posts. Every component is clamped to [0, 10].
type SignalVector struct {
	PostFrequency     float64 `json:"post_frequency"`
	Urgency           float64 `json:"urgency"`
	OptionsActivity   float64 `json:"options_activity"`
	Derivatives       float64 `json:"derivatives"`
	DayTradingLingo   float64 `json:"day_trading_lingo"`
	TechnicalAnalysis float64 `json:"technical_analysis"`
	LeveragedInterest float64 `json:"leveraged_interest"`
	Responsiveness    float64 `json:"responsiveness"`
}

// Sum returns the total of all eight signal components, in [0, 80].
func (s SignalVector) Sum() float64 {
	return s.PostFrequency + s.Urgency + s.OptionsActivity + s.Derivatives +
		s.DayTradingLingo + s.TechnicalAnalysis + s.LeveragedInterest +
		s.Responsiveness
}

// ProductFit describes how well an author matches the product offering.
type ProductFit struct {
	Score      float64  `json:"score"`
	Likelihood string   `json:"likelihood"`
	Features   []string `json:"features,omitempty"`
}

// InstrumentProfile summarizes the instrument classes an author discusses.
type InstrumentProfile struct {
	Counts  map[string]int `json:"counts"`
	Primary string         `json:"primary"`
}

// UserProfile is the complete analysis result for a single author.
type UserProfile struct {
	Username       string            `json:"username"`
	PostCount      int               `json:"post_count"`
	CommentCount   int               `json:"comment_count"`
	Followers      int               `json:"followers"`
	Signals        SignalVector      `json:"signals"`
	FastTwitch     float64           `json:"fast_twitch_score"`
	Tier           string            `json:"tier"`
	Timeframe      Classification    `json:"timeframe"`
	Strategy       Classification    `json:"strategy"`
	Conviction     Conviction        `json:"conviction"`
	Risk           Risk              `json:"risk"`
	Instruments    InstrumentProfile `json:"instruments"`
	ProductFit     ProductFit        `json:"product_fit"`
	SymbolsTracked []string          `json:"symbols_tracked,omitempty"`
}
