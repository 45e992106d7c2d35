// Package processor fans per-user analysis out to a worker pool and ranks
// the resulting profiles.
package processor

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/jonesrussell/trader-pulse/internal/classifier"
	"github.com/jonesrussell/trader-pulse/internal/domain"
)

const defaultConcurrency = 10

// BatchMinPosts is the default eligibility threshold for batch runs,
// stricter than the single-user minimum.
const BatchMinPosts = 5

// Logger defines the logging interface.
type Logger interface {
	Debug(msg string, keysAndValues ...interface{})
	Info(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
}

// BatchAnalyzer runs the classification pipeline for many users in parallel.
// Users are independent, so workers share nothing but the immutable lexicon.
type BatchAnalyzer struct {
	analyzer    *classifier.Analyzer
	minPosts    int
	concurrency int
	logger      Logger
}

// NewBatchAnalyzer creates a batch analyzer. Non-positive concurrency or
// minPosts fall back to defaults.
func NewBatchAnalyzer(analyzer *classifier.Analyzer, minPosts, concurrency int, logger Logger) *BatchAnalyzer {
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}
	if minPosts <= 0 {
		minPosts = BatchMinPosts
	}
	return &BatchAnalyzer{
		analyzer:    analyzer,
		minPosts:    minPosts,
		concurrency: concurrency,
		logger:      logger,
	}
}

type userJob struct {
	username string
	posts    []*domain.Post
}

// Process analyzes every eligible user group and returns their profiles
// ranked by product-fit score. The ranking is deterministic: ties fall back
// to fast-twitch score, then username.
func (b *BatchAnalyzer) Process(ctx context.Context, groups map[string][]*domain.Post) ([]*domain.UserProfile, error) {
	eligible := 0
	for _, posts := range groups {
		if len(posts) >= b.minPosts {
			eligible++
		}
	}
	if eligible == 0 {
		return []*domain.UserProfile{}, nil
	}

	b.logger.Info("Starting batch analysis",
		"users_total", len(groups),
		"users_eligible", eligible,
		"min_posts", b.minPosts,
		"concurrency", b.concurrency,
	)
	startTime := time.Now()

	jobs := make(chan userJob, eligible)
	results := make(chan *domain.UserProfile, eligible)

	var wg sync.WaitGroup
	for i := 0; i < b.concurrency; i++ {
		wg.Add(1)
		go b.worker(ctx, i, jobs, results, &wg)
	}

	for username, posts := range groups {
		if len(posts) >= b.minPosts {
			jobs <- userJob{username: username, posts: posts}
		}
	}
	close(jobs)

	wg.Wait()
	close(results)

	profiles := make([]*domain.UserProfile, 0, eligible)
	for profile := range results {
		profiles = append(profiles, profile)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	RankByProductFit(profiles)

	b.logger.Info("Batch analysis complete",
		"profiles", len(profiles),
		"duration_ms", time.Since(startTime).Milliseconds(),
	)
	return profiles, nil
}

func (b *BatchAnalyzer) worker(
	ctx context.Context,
	id int,
	jobs <-chan userJob,
	results chan<- *domain.UserProfile,
	wg *sync.WaitGroup,
) {
	defer wg.Done()

	for job := range jobs {
		select {
		case <-ctx.Done():
			b.logger.Warn("Worker stopping due to context cancellation", "worker_id", id)
			return
		default:
		}

		profile, err := b.analyzer.AnalyzeUser(ctx, job.username, job.posts)
		if err != nil {
			// Eligibility is checked before dispatch, so this only fires
			// when the analyzer minimum is stricter than the batch one.
			if !errors.Is(err, classifier.ErrInsufficientPosts) {
				b.logger.Error("Failed to analyze user",
					"username", job.username,
					"error", err,
				)
			}
			continue
		}
		results <- profile
	}
}
