package ingest

import (
	"sort"

	"github.com/jonesrussell/trader-pulse/internal/domain"
)

// GroupByUser partitions posts per author, preserving each author's post
// order. Posts without a username are dropped from grouping; dataset-wide
// statistics still see them through the flat collection.
func GroupByUser(posts []*domain.Post) map[string][]*domain.Post {
	groups := make(map[string][]*domain.Post)
	for _, p := range posts {
		if p.Username == "" {
			continue
		}
		groups[p.Username] = append(groups[p.Username], p)
	}
	return groups
}

// EligibleUsers returns the usernames with at least minPosts posts, sorted
// for deterministic iteration.
func EligibleUsers(groups map[string][]*domain.Post, minPosts int) []string {
	users := make([]string, 0, len(groups))
	for user, posts := range groups {
		if len(posts) >= minPosts {
			users = append(users, user)
		}
	}
	sort.Strings(users)
	return users
}
