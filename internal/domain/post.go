// Package domain defines the core data model for trader behavior analysis.
package domain

import "time"

// Engagement score weights. Replies indicate conversation and are worth more
// than passive likes; reshares sit in between.
const (
	likeWeight    = 1.0
	replyWeight   = 2.0
	reshareWeight = 1.5
)

// Post is a single social-media trading post as supplied by the fetch
// collaborator. Posts never mutate after creation. Missing fields default to
// zero values; no schema validation is performed here.
type Post struct {
	ID            string   `json:"message_id"`
	Username      string   `json:"username"`
	Body          string   `json:"body"`
	IsComment     bool     `json:"is_comment"`
	LikesCount    int      `json:"likes_count"`
	RepliesCount  int      `json:"replies_count"`
	ResharesCount int      `json:"reshares_count"`
	Symbols       []string `json:"symbols"`
	CreatedAt     string   `json:"created_at"`
	Followers     int      `json:"followers"`
}

// CreatedTime parses the post's creation timestamp. The second return value
// is false when the timestamp is absent or unparsable; such posts still count
// for every non-time-bucketed signal.
func (p *Post) CreatedTime() (time.Time, bool) {
	if p.CreatedAt == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339, p.CreatedAt)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// EngagementScore computes the weighted engagement of a post.
func (p *Post) EngagementScore() float64 {
	return float64(p.LikesCount)*likeWeight +
		float64(p.RepliesCount)*replyWeight +
		float64(p.ResharesCount)*reshareWeight
}
