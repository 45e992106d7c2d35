package classifier

import (
	"github.com/jonesrussell/trader-pulse/internal/domain"
	"github.com/jonesrussell/trader-pulse/internal/lexicon"
)

// Conviction weighting and thresholds. The score is a per-post average so a
// prolific poster does not outrank a terse high-conviction one.
const (
	highConvictionWeight   = 100
	mediumConvictionWeight = 60
	lowConvictionWeight    = 20

	convictionHighMin   = 80
	convictionMediumMin = 40

	maxConvictionScore    = 100
	maxConvictionEvidence = 3
)

// ClassifyConviction measures how strongly a user commits to their calls.
// Evidence comes from the tier that decided the level.
func ClassifyConviction(posts []*domain.Post) domain.Conviction {
	text := combinedText(posts)

	high, highEvidence := lexicon.ConvictionHigh.Match(text)
	medium, mediumEvidence := lexicon.ConvictionMedium.Match(text)
	low, lowEvidence := lexicon.ConvictionLow.Match(text)

	denom := len(posts)
	if denom < 1 {
		denom = 1
	}
	score := (high*highConvictionWeight + medium*mediumConvictionWeight + low*lowConvictionWeight) / denom

	var level string
	var evidence []string
	switch {
	case score >= convictionHighMin:
		level = domain.ConvictionHigh
		evidence = highEvidence
	case score >= convictionMediumMin:
		level = domain.ConvictionMedium
		evidence = mediumEvidence
	default:
		level = domain.ConvictionLow
		evidence = lowEvidence
	}

	if score > maxConvictionScore {
		score = maxConvictionScore
	}

	return domain.Conviction{
		Level:    level,
		Score:    float64(score),
		Evidence: capEvidence(evidence, maxConvictionEvidence),
	}
}
