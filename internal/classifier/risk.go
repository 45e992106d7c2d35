package classifier

import (
	"math"

	"github.com/jonesrussell/trader-pulse/internal/domain"
	"github.com/jonesrussell/trader-pulse/internal/lexicon"
)

// Risk score scale: 0 is fully conservative, 100 fully aggressive. With no
// signal at all the user sits at the neutral midpoint.
const (
	riskNeutralScore  = 50
	riskAggressiveMin = 70
	riskModerateMin   = 30
	maxRiskEvidence   = 5
)

// ClassifyRisk places a user on the conservative-to-aggressive scale from
// the ratio of aggressive to total risk signals. Moderate users get evidence
// from both sides.
func ClassifyRisk(posts []*domain.Post) domain.Risk {
	text := combinedText(posts)

	aggressive, aggressiveEvidence := lexicon.RiskAggressive.Match(text)
	conservative, conservativeEvidence := lexicon.RiskConservative.Match(text)

	if aggressive+conservative == 0 {
		return domain.Risk{
			Category: domain.RiskModerate,
			Score:    riskNeutralScore,
		}
	}

	score := int(math.Round(float64(aggressive) / float64(aggressive+conservative) * 100))

	var category string
	var evidence []string
	switch {
	case score >= riskAggressiveMin:
		category = domain.RiskAggressive
		evidence = aggressiveEvidence
	case score >= riskModerateMin:
		category = domain.RiskModerate
		evidence = append(append([]string{}, aggressiveEvidence...), conservativeEvidence...)
	default:
		category = domain.RiskConservative
		evidence = conservativeEvidence
	}

	return domain.Risk{
		Category: category,
		Score:    float64(score),
		Evidence: capEvidence(evidence, maxRiskEvidence),
	}
}
