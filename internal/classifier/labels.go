package classifier

import (
	"github.com/jonesrussell/trader-pulse/internal/domain"
	"github.com/jonesrussell/trader-pulse/internal/lexicon"
)

// Confidence weights per distinct matched pattern, plus a small volume bonus
// of 5 points per 5 posts. Confidence never exceeds 100.
const (
	timeframeMatchWeight = 25
	strategyMatchWeight  = 30

	volumeBonusPosts  = 5
	volumeBonusPoints = 5

	maxConfidence          = 100
	maxSecondaryConfidence = 80
	maxLabelEvidence       = 5
)

// classifyFamily scores each label group against text and returns the
// winning label. Ties break toward the earlier group in family order. When
// no group matches at all the result is the unknown label with zero
// confidence; the per-label score map is always populated.
func classifyFamily(family []lexicon.LabelGroup, text string, postCount, matchWeight int, withSecondary bool) domain.Classification {
	scores := make(map[string]int, len(family))
	counts := make([]int, len(family))
	evidence := make([][]string, len(family))

	best := -1
	for i, lg := range family {
		counts[i], evidence[i] = lg.Group.Match(text)
		scores[lg.Label] = counts[i]
		if counts[i] > 0 && (best < 0 || counts[i] > counts[best]) {
			best = i
		}
	}

	if best < 0 {
		return domain.Classification{
			Primary: domain.LabelUnknown,
			Scores:  scores,
		}
	}

	result := domain.Classification{
		Primary:    family[best].Label,
		Confidence: confidence(counts[best], matchWeight, postCount),
		Scores:     scores,
		Evidence:   capEvidence(evidence[best], maxLabelEvidence),
	}

	if withSecondary {
		second := -1
		for i := range family {
			if i == best {
				continue
			}
			if counts[i] > 0 && (second < 0 || counts[i] > counts[second]) {
				second = i
			}
		}
		if second >= 0 {
			result.Secondary = family[second].Label
			result.SecondaryConfidence = secondaryConfidence(counts[second], matchWeight)
		}
	}

	return result
}

func confidence(count, matchWeight, postCount int) float64 {
	c := count*matchWeight + (postCount/volumeBonusPosts)*volumeBonusPoints
	if c > maxConfidence {
		c = maxConfidence
	}
	return float64(c)
}

func secondaryConfidence(count, matchWeight int) float64 {
	c := count * matchWeight
	if c > maxSecondaryConfidence {
		c = maxSecondaryConfidence
	}
	return float64(c)
}

func capEvidence(evidence []string, limit int) []string {
	if len(evidence) > limit {
		return evidence[:limit]
	}
	return evidence
}

// ClassifyTimeframe determines the trading horizon a user's language
// points at.
func ClassifyTimeframe(posts []*domain.Post) domain.Classification {
	return classifyFamily(lexicon.Timeframes, combinedText(posts), len(posts), timeframeMatchWeight, false)
}

// ClassifyStrategy determines the dominant trading strategy, with an
// optional secondary label when a second strategy also matched.
func ClassifyStrategy(posts []*domain.Post) domain.Classification {
	return classifyFamily(lexicon.Strategies, combinedText(posts), len(posts), strategyMatchWeight, true)
}
