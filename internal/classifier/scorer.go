package classifier

import "github.com/jonesrussell/trader-pulse/internal/domain"

// Product-fit bonus tables. Shorter horizons and more active styles fit an
// instant in-app trading product better.
var timeframeFitBonus = map[string]int{
	domain.TimeframeUltraShortTerm: 30,
	domain.TimeframeShortTerm:      25,
	domain.TimeframeMediumTerm:     15,
	domain.TimeframeLongTerm:       5,
}

var strategyFitBonus = map[string]int{
	domain.StrategyDayTrader:      25,
	domain.StrategyScalper:        25,
	domain.StrategySwingTrader:    20,
	domain.StrategyMomentumTrader: 20,
	domain.StrategyContrarian:     15,
	domain.StrategyGrowthInvestor: 10,
	domain.StrategyValueInvestor:  8,
	domain.StrategyIncomeTrader:   5,
}

var convictionFitBonus = map[string]int{
	domain.ConvictionHigh:   15,
	domain.ConvictionMedium: 10,
	domain.ConvictionLow:    5,
}

const (
	riskAggressiveBonus = 20
	riskModerateBonus   = 10
	optionsPrimaryBonus = 10
	maxProductFitScore  = 100
)

// Product-fit likelihood thresholds, inclusive lower bounds.
const (
	likelihoodVeryHighMin = 80
	likelihoodHighMin     = 60
	likelihoodMediumMin   = 40
)

// ScoreProductFit combines the classifier outputs into a fit score for
// instant in-app trading, a likelihood tier, and a deduplicated list of
// product features the user would benefit from.
func ScoreProductFit(profile *domain.UserProfile) domain.ProductFit {
	score := 0
	var features []string

	score += timeframeFitBonus[profile.Timeframe.Primary]
	if profile.Timeframe.Primary == domain.TimeframeUltraShortTerm {
		features = append(features, "Real-time quotes", "Quick execution", "0DTE options")
	}

	score += strategyFitBonus[profile.Strategy.Primary]
	if profile.Strategy.Primary == domain.StrategyDayTrader || profile.Strategy.Primary == domain.StrategyScalper {
		features = append(features, "Level 2 data", "Mobile alerts", "Paper trading")
	}

	score += convictionFitBonus[profile.Conviction.Level]

	switch profile.Risk.Category {
	case domain.RiskAggressive:
		score += riskAggressiveBonus
		features = append(features, "Options chains", "Margin trading", "Advanced orders")
	case domain.RiskModerate:
		score += riskModerateBonus
	}

	if profile.Instruments.Primary == domain.InstrumentOptions {
		score += optionsPrimaryBonus
		features = append(features, "Options strategies builder")
	}

	if score > maxProductFitScore {
		score = maxProductFitScore
	}

	return domain.ProductFit{
		Score:      float64(score),
		Likelihood: fitLikelihood(score),
		Features:   dedupe(features),
	}
}

func fitLikelihood(score int) string {
	switch {
	case score >= likelihoodVeryHighMin:
		return domain.LikelihoodVeryHigh
	case score >= likelihoodHighMin:
		return domain.LikelihoodHigh
	case score >= likelihoodMediumMin:
		return domain.LikelihoodMedium
	default:
		return domain.LikelihoodLow
	}
}

// dedupe removes duplicates preserving first occurrence.
func dedupe(items []string) []string {
	if len(items) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}
