package domain

// Timeframe labels, ordered shortest to longest horizon.
const (
	TimeframeUltraShortTerm = "ultra_short_term"
	TimeframeShortTerm      = "short_term"
	TimeframeMediumTerm     = "medium_term"
	TimeframeLongTerm       = "long_term"
)

// Trading strategy labels.
const (
	StrategyScalper        = "scalper"
	StrategyDayTrader      = "day_trader"
	StrategySwingTrader    = "swing_trader"
	StrategyMomentumTrader = "momentum_trader"
	StrategyValueInvestor  = "value_investor"
	StrategyGrowthInvestor = "growth_investor"
	StrategyIncomeTrader   = "income_trader"
	StrategyContrarian     = "contrarian"
)

// Conviction levels.
const (
	ConvictionHigh   = "high"
	ConvictionMedium = "medium"
	ConvictionLow    = "low"
)

// Risk appetite categories.
const (
	RiskAggressive   = "aggressive"
	RiskModerate     = "moderate"
	RiskConservative = "conservative"
)

// LabelUnknown is returned by label classifiers when no pattern group scored.
const LabelUnknown = "unknown"

// Instrument type labels, in tie-break precedence order.
const (
	InstrumentOptions      = "options"
	InstrumentFutures      = "futures"
	InstrumentLeveragedETF = "leveraged_etf"
	InstrumentCrypto       = "crypto"
	InstrumentStocks       = "stocks"
)

// Classification is the outcome of a label classifier (timeframe or
// strategy): a winning label, a confidence percentage, the per-label raw
// match counts, and a bounded sample of matched evidence text.
type Classification struct {
	Primary             string         `json:"primary"`
	Confidence          float64        `json:"confidence"`
	Scores              map[string]int `json:"scores,omitempty"`
	Evidence            []string       `json:"evidence,omitempty"`
	Secondary           string         `json:"secondary,omitempty"`
	SecondaryConfidence float64        `json:"secondary_confidence,omitempty"`
}

// Conviction is the strength-of-conviction assessment for an author.
type Conviction struct {
	Level    string   `json:"level"`
	Score    float64  `json:"score"`
	Evidence []string `json:"evidence,omitempty"`
}

// Risk is the risk-appetite assessment for an author.
type Risk struct {
	Category string   `json:"category"`
	Score    float64  `json:"score"`
	Evidence []string `json:"evidence,omitempty"`
}
