// Package ingest merges fetched posts into a deduplicated dataset and groups
// them per author for analysis.
package ingest

import (
	"sync"

	"github.com/jonesrussell/trader-pulse/internal/domain"
)

// Collector accumulates posts from concurrent fetch workers, deduplicating
// by message id with first-writer-wins semantics. Posts without an id cannot
// be deduplicated and are always kept. Insertion order is preserved.
type Collector struct {
	mu    sync.Mutex
	seen  map[string]struct{}
	posts []*domain.Post
}

// NewCollector creates an empty collector.
func NewCollector() *Collector {
	return &Collector{seen: make(map[string]struct{})}
}

// Add inserts a post unless its id has been seen before. It reports whether
// the post was accepted.
func (c *Collector) Add(post *domain.Post) bool {
	if post == nil {
		return false
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if post.ID != "" {
		if _, dup := c.seen[post.ID]; dup {
			return false
		}
		c.seen[post.ID] = struct{}{}
	}
	c.posts = append(c.posts, post)
	return true
}

// AddBatch inserts a batch of posts and returns how many were accepted.
func (c *Collector) AddBatch(posts []*domain.Post) int {
	accepted := 0
	for _, p := range posts {
		if c.Add(p) {
			accepted++
		}
	}
	return accepted
}

// Posts returns a snapshot of the collected posts in insertion order.
func (c *Collector) Posts() []*domain.Post {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]*domain.Post, len(c.posts))
	copy(out, c.posts)
	return out
}

// Len returns the number of collected posts.
func (c *Collector) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.posts)
}
