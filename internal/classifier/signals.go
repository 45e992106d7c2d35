// Package classifier turns a user's raw post history into bounded behavioral
// scores and categorical labels.
package classifier

import (
	"math"
	"strings"

	"github.com/jonesrussell/trader-pulse/internal/domain"
	"github.com/jonesrussell/trader-pulse/internal/lexicon"
)

// Per-signal weights. Each weighted count is capped at signalCap, so the
// eight-component vector sums to at most maxSignalTotal.
const (
	signalCap      = 10.0
	maxSignalTotal = 80.0

	urgencyWeight        = 2.0
	optionsWeight        = 1.5
	derivativesWeight    = 2.0
	dayTradingWeight     = 2.0
	technicalWeight      = 1.0
	leveragedWeight      = 3.0
	responsivenessWeight = 15.0
)

// Post-frequency steps. Frequency is a step function of total post count,
// not a per-day rate.
const (
	freqHyperPosts    = 10
	freqHighPosts     = 5
	freqModeratePosts = 3
	freqLowPosts      = 2

	freqHyperScore    = 10.0
	freqHighScore     = 7.0
	freqModerateScore = 5.0
	freqLowScore      = 3.0
)

// Fast-twitch tier thresholds, inclusive lower bounds.
const (
	tierHyperActiveMin = 70.0
	tierActiveMin      = 50.0
	tierModerateMin    = 30.0
)

// combinedText folds and joins every post body into the single haystack all
// lexical matching runs against. Order of posts does not affect any score.
func combinedText(posts []*domain.Post) string {
	bodies := make([]string, 0, len(posts))
	for _, p := range posts {
		bodies = append(bodies, p.Body)
	}
	return lexicon.Fold(strings.Join(bodies, " "))
}

// cappedSignal weights a raw match count and clamps it to signalCap.
func cappedSignal(count int, weight float64) float64 {
	return math.Min(float64(count)*weight, signalCap)
}

// postFrequencySignal maps total activity volume onto the step scale.
func postFrequencySignal(n int) float64 {
	switch {
	case n >= freqHyperPosts:
		return freqHyperScore
	case n >= freqHighPosts:
		return freqHighScore
	case n >= freqModeratePosts:
		return freqModerateScore
	case n >= freqLowPosts:
		return freqLowScore
	default:
		return 0
	}
}

// ExtractSignals computes the eight-component signal vector for a user's
// posts. Keyword signals count distinct vocabulary entries present anywhere
// in the combined text; the leveraged signal counts every symbol occurrence.
func ExtractSignals(posts []*domain.Post) domain.SignalVector {
	text := combinedText(posts)

	urgent, _ := lexicon.Urgent.Match(text)
	options, _ := lexicon.Options.Match(text)
	derivatives, _ := lexicon.Derivatives.Match(text)
	dayTrading, _ := lexicon.DayTrading.Match(text)
	technical, _ := lexicon.Technical.Match(text)

	leveraged := 0
	comments := 0
	for _, p := range posts {
		for _, sym := range p.Symbols {
			if lexicon.IsLeveraged(sym) {
				leveraged++
			}
		}
		if p.IsComment {
			comments++
		}
	}

	responsiveness := 0.0
	if len(posts) > 0 {
		ratio := float64(comments) / float64(len(posts))
		responsiveness = math.Min(ratio*responsivenessWeight, signalCap)
	}

	return domain.SignalVector{
		PostFrequency:     postFrequencySignal(len(posts)),
		Urgency:           cappedSignal(urgent, urgencyWeight),
		OptionsActivity:   cappedSignal(options, optionsWeight),
		Derivatives:       cappedSignal(derivatives, derivativesWeight),
		DayTradingLingo:   cappedSignal(dayTrading, dayTradingWeight),
		TechnicalAnalysis: cappedSignal(technical, technicalWeight),
		LeveragedInterest: cappedSignal(leveraged, leveragedWeight),
		Responsiveness:    responsiveness,
	}
}

// FastTwitchScore normalizes a signal vector onto [0, 100] with one decimal
// place of precision.
func FastTwitchScore(signals domain.SignalVector) float64 {
	score := math.Min(signals.Sum()/maxSignalTotal*100, 100)
	return math.Round(score*10) / 10
}

// ActivityTier buckets a fast-twitch score.
func ActivityTier(score float64) string {
	switch {
	case score >= tierHyperActiveMin:
		return domain.TierHyperActive
	case score >= tierActiveMin:
		return domain.TierActive
	case score >= tierModerateMin:
		return domain.TierModerate
	default:
		return domain.TierPassive
	}
}
