package api

import (
	"github.com/jonesrussell/trader-pulse/internal/classifier"
	"github.com/jonesrussell/trader-pulse/internal/domain"
)

// Request size limits.
const (
	maxBatchPosts = 50000
	maxUserPosts  = 5000
)

// AnalyzeRequest represents a dataset analysis request.
type AnalyzeRequest struct {
	Posts []*domain.Post `json:"posts" binding:"required,min=1"`
	// MinPosts overrides the configured batch eligibility threshold when > 0.
	MinPosts int `json:"min_posts"`
}

// CorpusInsights aggregates the dataset-wide analyses returned alongside the
// ranked profiles.
type CorpusInsights struct {
	TopPosts      []*domain.Post                  `json:"top_posts"`
	Urgency       classifier.UrgencyAnalysis      `json:"urgency"`
	Conversations classifier.ConversationPatterns `json:"conversations"`
	Sentiment     classifier.SentimentDynamics    `json:"sentiment"`
}

// AnalyzeResponse represents a dataset analysis response.
type AnalyzeResponse struct {
	Profiles   []*domain.UserProfile `json:"profiles"`
	Insights   CorpusInsights        `json:"insights"`
	TotalPosts int                   `json:"total_posts"`
	TotalUsers int                   `json:"total_users"`
	Analyzed   int                   `json:"analyzed"`
	Duplicates int                   `json:"duplicates"`
}

// AnalyzeUserRequest represents a single-user analysis request.
type AnalyzeUserRequest struct {
	Username string         `json:"username" binding:"required"`
	Posts    []*domain.Post `json:"posts" binding:"required,min=1"`
}

// AnalyzeUserResponse represents a single-user analysis response.
type AnalyzeUserResponse struct {
	Profile *domain.UserProfile `json:"profile"`
}

// ProfilesListResponse represents a list of persisted profiles.
type ProfilesListResponse struct {
	Profiles []*domain.UserProfile `json:"profiles"`
	Total    int                   `json:"total"`
}

// LexiconCategory describes one pattern group exposed by the lexicon endpoint.
type LexiconCategory struct {
	Name     string `json:"name"`
	Kind     string `json:"kind"` // "keyword" or "regex"
	Patterns int    `json:"patterns"`
	Label    string `json:"label,omitempty"`
}

// LexiconResponse represents the lexicon inventory response.
type LexiconResponse struct {
	Categories []LexiconCategory `json:"categories"`
	Total      int               `json:"total"`
}
