package classifier

import (
	"math"
	"sort"

	"github.com/jonesrussell/trader-pulse/internal/domain"
	"github.com/jonesrussell/trader-pulse/internal/lexicon"
)

// Trading-day time buckets, local to the post's own timezone offset.
const (
	PeriodPreMarket   = "pre_market"
	PeriodMarketHours = "market_hours"
	PeriodAfterHours  = "after_hours"
	PeriodOffHours    = "off_hours"
)

// Corpus urgency tiers and their rate thresholds (percent, exclusive).
const (
	UrgencyHigh     = "HIGH"
	UrgencyModerate = "MODERATE"
	UrgencyLow      = "LOW"

	urgencyHighRate     = 20.0
	urgencyModerateRate = 10.0
)

// Sentiment tone labels.
const (
	ToneAdversarial             = "ADVERSARIAL"
	ToneCollaborative           = "COLLABORATIVE"
	ToneModeratelyAdversarial   = "MODERATELY_ADVERSARIAL"
	ToneModeratelyCollaborative = "MODERATELY_COLLABORATIVE"
	ToneNeutral                 = "NEUTRAL"
)

const (
	maxRankedUsers       = 20
	maxSentimentExamples = 20
	sentimentMinChars    = 5
	sentimentExcerptLen  = 200

	starterMinPosts     = 5
	starterMinRatio     = 1.0
	responderMinReplies = 5
	broadcasterMinPosts = 10
	participantMinEach  = 5
)

// periodOrder fixes deterministic tie-breaking for the most active period.
var periodOrder = []string{PeriodPreMarket, PeriodMarketHours, PeriodAfterHours, PeriodOffHours}

// TopEngagedPosts ranks top-level posts by engagement score, highest first.
// Comments are excluded. Ties keep input order.
func TopEngagedPosts(posts []*domain.Post, topN int) []*domain.Post {
	ranked := make([]*domain.Post, 0, len(posts))
	for _, p := range posts {
		if !p.IsComment {
			ranked = append(ranked, p)
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].EngagementScore() > ranked[j].EngagementScore()
	})
	if topN >= 0 && len(ranked) > topN {
		ranked = ranked[:topN]
	}
	return ranked
}

// UrgencyAnalysis summarizes how urgently and when the corpus wants to trade.
type UrgencyAnalysis struct {
	TotalMessages    int            `json:"total_messages"`
	UrgentMessages   int            `json:"urgent_messages"`
	UrgencyRate      float64        `json:"urgency_rate"`
	Tier             string         `json:"tier"`
	TimeDistribution map[string]int `json:"time_distribution"`
	MostActivePeriod string         `json:"most_active_period,omitempty"`
}

// AnalyzeUrgency measures the share of messages carrying urgent language and
// buckets posting times across the trading day. Posts with unparsable
// timestamps still count toward the urgency rate but not the distribution.
func AnalyzeUrgency(posts []*domain.Post) UrgencyAnalysis {
	analysis := UrgencyAnalysis{
		TotalMessages:    len(posts),
		TimeDistribution: make(map[string]int),
	}

	for _, p := range posts {
		if lexicon.Urgent.Contains(lexicon.Fold(p.Body)) {
			analysis.UrgentMessages++
		}
		if t, ok := p.CreatedTime(); ok {
			analysis.TimeDistribution[timePeriod(t.Hour())]++
		}
	}

	if analysis.TotalMessages > 0 {
		rate := float64(analysis.UrgentMessages) / float64(analysis.TotalMessages) * 100
		analysis.UrgencyRate = math.Round(rate*100) / 100
	}
	analysis.Tier = urgencyTier(analysis.UrgencyRate)

	best := 0
	for _, period := range periodOrder {
		if c := analysis.TimeDistribution[period]; c > best {
			best = c
			analysis.MostActivePeriod = period
		}
	}

	return analysis
}

func timePeriod(hour int) string {
	switch {
	case hour >= 7 && hour < 9:
		return PeriodPreMarket
	case hour >= 9 && hour < 16:
		return PeriodMarketHours
	case hour >= 16 && hour < 20:
		return PeriodAfterHours
	default:
		return PeriodOffHours
	}
}

func urgencyTier(rate float64) string {
	switch {
	case rate > urgencyHighRate:
		return UrgencyHigh
	case rate > urgencyModerateRate:
		return UrgencyModerate
	default:
		return UrgencyLow
	}
}

// ConversationUser is one user's standing in a conversation-pattern ranking.
type ConversationUser struct {
	Username        string  `json:"username"`
	Posts           int     `json:"posts"`
	Comments        int     `json:"comments"`
	RepliesReceived int     `json:"replies_received,omitempty"`
	Ratio           float64 `json:"ratio,omitempty"`
	Balance         float64 `json:"balance,omitempty"`
}

// ConversationPatterns describes how the corpus engages in discussion.
type ConversationPatterns struct {
	TotalPosts             int                `json:"total_posts"`
	TotalComments          int                `json:"total_comments"`
	PostsWithReplies       int                `json:"posts_with_replies"`
	PostsWithoutReplies    int                `json:"posts_without_replies"`
	AvgRepliesPerPost      float64            `json:"avg_replies_per_post"`
	EngagementRatio        float64            `json:"engagement_ratio"`
	ReplyRate              float64            `json:"reply_rate"`
	ConversationStarters   []ConversationUser `json:"conversation_starters"`
	EngagedResponders      []ConversationUser `json:"engaged_responders"`
	Broadcasters           []ConversationUser `json:"broadcasters"`
	DiscussionParticipants []ConversationUser `json:"discussion_participants"`
}

// AnalyzeConversations ranks conversation starters, engaged responders,
// broadcast-only posters and balanced discussion participants.
func AnalyzeConversations(posts []*domain.Post) ConversationPatterns {
	var patterns ConversationPatterns

	userPosts := make(map[string]int)
	userComments := make(map[string]int)
	repliesReceived := make(map[string]int)
	var totalReplies int

	for _, p := range posts {
		if p.IsComment {
			patterns.TotalComments++
			if p.Username != "" {
				userComments[p.Username]++
			}
			continue
		}
		patterns.TotalPosts++
		totalReplies += p.RepliesCount
		if p.RepliesCount > 0 {
			patterns.PostsWithReplies++
		} else {
			patterns.PostsWithoutReplies++
		}
		if p.Username != "" {
			userPosts[p.Username]++
			repliesReceived[p.Username] += p.RepliesCount
		}
	}

	if patterns.TotalPosts > 0 {
		patterns.AvgRepliesPerPost = float64(totalReplies) / float64(patterns.TotalPosts)
		patterns.EngagementRatio = float64(patterns.TotalComments) / float64(patterns.TotalPosts)
		patterns.ReplyRate = float64(patterns.PostsWithReplies) / float64(patterns.TotalPosts)
	}

	for user, n := range userPosts {
		if n < starterMinPosts {
			continue
		}
		ratio := float64(repliesReceived[user]) / float64(n)
		if ratio >= starterMinRatio {
			patterns.ConversationStarters = append(patterns.ConversationStarters, ConversationUser{
				Username:        user,
				Posts:           n,
				RepliesReceived: repliesReceived[user],
				Ratio:           ratio,
			})
		}
	}

	for user, comments := range userComments {
		if comments < responderMinReplies {
			continue
		}
		postCount := userPosts[user]
		denom := postCount
		if denom < 1 {
			denom = 1
		}
		patterns.EngagedResponders = append(patterns.EngagedResponders, ConversationUser{
			Username: user,
			Posts:    postCount,
			Comments: comments,
			Ratio:    float64(comments) / float64(denom),
		})
	}

	for user, n := range userPosts {
		if n >= broadcasterMinPosts && userComments[user] == 0 {
			patterns.Broadcasters = append(patterns.Broadcasters, ConversationUser{
				Username: user,
				Posts:    n,
			})
		}
		comments := userComments[user]
		if n >= participantMinEach && comments >= participantMinEach {
			balance := float64(minInt(n, comments)) / float64(maxInt(n, comments))
			patterns.DiscussionParticipants = append(patterns.DiscussionParticipants, ConversationUser{
				Username: user,
				Posts:    n,
				Comments: comments,
				Balance:  balance,
			})
		}
	}

	rankUsers(patterns.ConversationStarters, func(u ConversationUser) float64 { return u.Ratio })
	rankUsers(patterns.EngagedResponders, func(u ConversationUser) float64 { return u.Ratio })
	rankUsers(patterns.Broadcasters, func(u ConversationUser) float64 { return float64(u.Posts) })
	rankUsers(patterns.DiscussionParticipants, func(u ConversationUser) float64 { return float64(u.Posts + u.Comments) })

	patterns.ConversationStarters = capUsers(patterns.ConversationStarters)
	patterns.EngagedResponders = capUsers(patterns.EngagedResponders)
	patterns.Broadcasters = capUsers(patterns.Broadcasters)
	patterns.DiscussionParticipants = capUsers(patterns.DiscussionParticipants)

	return patterns
}

// rankUsers sorts descending by key, breaking ties by username so rankings
// are stable across runs.
func rankUsers(users []ConversationUser, key func(ConversationUser) float64) {
	sort.Slice(users, func(i, j int) bool {
		ki, kj := key(users[i]), key(users[j])
		if ki != kj {
			return ki > kj
		}
		return users[i].Username < users[j].Username
	})
}

func capUsers(users []ConversationUser) []ConversationUser {
	if len(users) > maxRankedUsers {
		return users[:maxRankedUsers]
	}
	return users
}

// SentimentExample is a short excerpt illustrating a sentiment category.
type SentimentExample struct {
	Username  string `json:"username"`
	Excerpt   string `json:"excerpt"`
	IsComment bool   `json:"is_comment"`
}

// SentimentDynamics describes the overall tone of discussion in the corpus.
type SentimentDynamics struct {
	AdversarialCount      int                `json:"adversarial_count"`
	CollaborativeCount    int                `json:"collaborative_count"`
	NeutralCount          int                `json:"neutral_count"`
	MixedCount            int                `json:"mixed_count"`
	NoClearSentiment      int                `json:"no_clear_sentiment"`
	AdversarialPct        float64            `json:"adversarial_pct"`
	CollaborativePct      float64            `json:"collaborative_pct"`
	NeutralPct            float64            `json:"neutral_pct"`
	OverallTone           string             `json:"overall_tone"`
	AdversarialExamples   []SentimentExample `json:"adversarial_examples,omitempty"`
	CollaborativeExamples []SentimentExample `json:"collaborative_examples,omitempty"`
}

// AnalyzeSentiment classifies each message as adversarial, collaborative,
// neutral or mixed and derives the corpus-wide tone. A message hitting both
// adversarial and collaborative vocabulary counts as mixed, not as either
// side.
func AnalyzeSentiment(posts []*domain.Post) SentimentDynamics {
	var dynamics SentimentDynamics

	for _, p := range posts {
		body := lexicon.Fold(p.Body)
		if len([]rune(body)) < sentimentMinChars {
			dynamics.NoClearSentiment++
			continue
		}

		adversarial, _ := lexicon.Adversarial.Match(body)
		collaborative, _ := lexicon.Collaborative.Match(body)
		neutral, _ := lexicon.NeutralTone.Match(body)

		switch {
		case adversarial > 0 && collaborative > 0:
			dynamics.MixedCount++
		case adversarial > collaborative && adversarial > neutral:
			dynamics.AdversarialCount++
			if len(dynamics.AdversarialExamples) < maxSentimentExamples {
				dynamics.AdversarialExamples = append(dynamics.AdversarialExamples, sentimentExample(p))
			}
		case collaborative > adversarial && collaborative > neutral:
			dynamics.CollaborativeCount++
			if len(dynamics.CollaborativeExamples) < maxSentimentExamples {
				dynamics.CollaborativeExamples = append(dynamics.CollaborativeExamples, sentimentExample(p))
			}
		case neutral > 0:
			dynamics.NeutralCount++
		default:
			dynamics.NoClearSentiment++
		}
	}

	if total := len(posts); total > 0 {
		dynamics.AdversarialPct = float64(dynamics.AdversarialCount) / float64(total) * 100
		dynamics.CollaborativePct = float64(dynamics.CollaborativeCount) / float64(total) * 100
		dynamics.NeutralPct = float64(dynamics.NeutralCount) / float64(total) * 100
	}
	dynamics.OverallTone = overallTone(dynamics.AdversarialPct, dynamics.CollaborativePct)

	return dynamics
}

func sentimentExample(p *domain.Post) SentimentExample {
	excerpt := p.Body
	if runes := []rune(excerpt); len(runes) > sentimentExcerptLen {
		excerpt = string(runes[:sentimentExcerptLen])
	}
	return SentimentExample{Username: p.Username, Excerpt: excerpt, IsComment: p.IsComment}
}

func overallTone(adversarialPct, collaborativePct float64) string {
	switch {
	case adversarialPct > collaborativePct*2:
		return ToneAdversarial
	case collaborativePct > adversarialPct*2:
		return ToneCollaborative
	case adversarialPct > collaborativePct:
		return ToneModeratelyAdversarial
	case collaborativePct > adversarialPct:
		return ToneModeratelyCollaborative
	default:
		return ToneNeutral
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
