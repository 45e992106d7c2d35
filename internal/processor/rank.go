package processor

import (
	"sort"

	"github.com/jonesrussell/trader-pulse/internal/domain"
)

// RankByProductFit sorts profiles descending by product-fit score in place.
// Ties break by fast-twitch score, then username, so rankings never shuffle
// between runs.
func RankByProductFit(profiles []*domain.UserProfile) {
	sort.Slice(profiles, func(i, j int) bool {
		a, b := profiles[i], profiles[j]
		if a.ProductFit.Score != b.ProductFit.Score {
			return a.ProductFit.Score > b.ProductFit.Score
		}
		if a.FastTwitch != b.FastTwitch {
			return a.FastTwitch > b.FastTwitch
		}
		return a.Username < b.Username
	})
}

// RankByFastTwitch sorts profiles descending by fast-twitch score in place,
// with the same deterministic tie-breaking.
func RankByFastTwitch(profiles []*domain.UserProfile) {
	sort.Slice(profiles, func(i, j int) bool {
		a, b := profiles[i], profiles[j]
		if a.FastTwitch != b.FastTwitch {
			return a.FastTwitch > b.FastTwitch
		}
		if a.ProductFit.Score != b.ProductFit.Score {
			return a.ProductFit.Score > b.ProductFit.Score
		}
		return a.Username < b.Username
	})
}

// FilterCandidates keeps the profiles whose fast-twitch score meets the
// threshold. The input order is preserved.
func FilterCandidates(profiles []*domain.UserProfile, minScore float64) []*domain.UserProfile {
	out := make([]*domain.UserProfile, 0, len(profiles))
	for _, p := range profiles {
		if p.FastTwitch >= minScore {
			out = append(out, p)
		}
	}
	return out
}

// TopN truncates a ranked profile slice to at most n entries.
func TopN(profiles []*domain.UserProfile, n int) []*domain.UserProfile {
	if n >= 0 && len(profiles) > n {
		return profiles[:n]
	}
	return profiles
}
