// Command analyze profiles every author in a dataset file and prints a
// ranked summary of in-app trading candidates.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/jonesrussell/trader-pulse/internal/bootstrap"
	"github.com/jonesrussell/trader-pulse/internal/classifier"
	"github.com/jonesrussell/trader-pulse/internal/config"
	"github.com/jonesrussell/trader-pulse/internal/domain"
	"github.com/jonesrussell/trader-pulse/internal/ingest"
	"github.com/jonesrussell/trader-pulse/internal/logger"
	"github.com/jonesrussell/trader-pulse/internal/processor"
	"github.com/jonesrussell/trader-pulse/internal/telemetry"
)

func main() {
	var (
		file     = flag.String("file", "", "dataset file (JSON array of posts)")
		minPosts = flag.Int("min-posts", 0, "minimum posts per user (0 = config default)")
		topN     = flag.Int("top", 0, "number of ranked users to print (0 = config default)")
		persist  = flag.Bool("persist", false, "write profiles to PostgreSQL")
		export   = flag.Bool("export", false, "export profiles to Elasticsearch")
		insights = flag.Bool("insights", true, "print corpus insights")
	)
	flag.Parse()

	if *file == "" {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(*file, *minPosts, *topN, *persist, *export, *insights); err != nil {
		log.Fatalf("analyze: %v", err)
	}
}

func run(file string, minPosts, topN int, persist, export, showInsights bool) error {
	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		return err
	}
	if minPosts <= 0 {
		minPosts = cfg.Analysis.BatchMinPosts
	}
	if topN <= 0 {
		topN = cfg.Analysis.TopN
	}

	logr, err := bootstrap.CreateLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = logr.Sync() }()

	posts, err := ingest.LoadDataset(file)
	if err != nil {
		return err
	}
	logr.Info("Dataset loaded",
		logger.String("file", file),
		logger.Int("posts", len(posts)),
	)

	groups := ingest.GroupByUser(posts)

	analyzer := classifier.NewAnalyzer(logr, classifier.WithMinPosts(cfg.Analysis.MinPosts))
	batch := processor.NewBatchAnalyzer(analyzer, minPosts, cfg.Service.Concurrency, logger.NewSugared(logr))

	ctx := context.Background()
	start := time.Now()
	profiles, err := batch.Process(ctx, groups)
	if err != nil {
		return err
	}

	printSummary(posts, groups, profiles, topN, cfg.Analysis.CandidateThreshold)
	if showInsights {
		printInsights(posts)
	}

	logr.Info("Analysis complete",
		logger.Int("profiles", len(profiles)),
		logger.Int64("duration_ms", time.Since(start).Milliseconds()),
	)

	if persist || export {
		tel := telemetry.NewProvider()
		if persist {
			if err := persistProfiles(ctx, cfg, tel, logr, profiles); err != nil {
				return err
			}
		}
		if export {
			if err := exportProfiles(ctx, cfg, tel, logr, profiles); err != nil {
				return err
			}
		}
	}
	return nil
}

func printSummary(
	posts []*domain.Post,
	groups map[string][]*domain.Post,
	profiles []*domain.UserProfile,
	topN int,
	threshold float64,
) {
	fmt.Printf("Analyzed %d posts from %d users, %d profiled\n\n",
		len(posts), len(groups), len(profiles))

	ranked := processor.TopN(profiles, topN)
	fmt.Println("Top users by product fit:")
	fmt.Printf("%-4s %-20s %8s %-13s %-16s %6s %-10s\n",
		"#", "USER", "FIT", "LIKELIHOOD", "STRATEGY", "TWITCH", "TIER")
	for i, p := range ranked {
		fmt.Printf("%-4d %-20s %8.1f %-13s %-16s %6.1f %-10s\n",
			i+1, p.Username, p.ProductFit.Score, p.ProductFit.Likelihood,
			p.Strategy.Primary, p.FastTwitch, p.Tier)
	}

	candidates := processor.FilterCandidates(profiles, threshold)
	fmt.Printf("\n%d fast-twitch candidates (score >= %.0f):\n", len(candidates), threshold)
	for _, p := range candidates {
		fmt.Printf("  %s (%.1f, %s)\n", p.Username, p.FastTwitch, p.Tier)
	}
}

func printInsights(posts []*domain.Post) {
	urgency := classifier.AnalyzeUrgency(posts)
	fmt.Printf("\nUrgency: %s (%.2f%% of posts, busiest period %s)\n",
		urgency.Tier, urgency.UrgencyRate, urgency.MostActivePeriod)

	sentiment := classifier.AnalyzeSentiment(posts)
	fmt.Printf("Community tone: %s (%d adversarial / %d collaborative messages)\n",
		sentiment.OverallTone, sentiment.AdversarialCount, sentiment.CollaborativeCount)

	conversations := classifier.AnalyzeConversations(posts)
	fmt.Printf("Conversation starters: %s\n", usernames(conversations.ConversationStarters))
	fmt.Printf("Active responders:     %s\n", usernames(conversations.EngagedResponders))

	top := classifier.TopEngagedPosts(posts, 5)
	fmt.Println("\nMost engaging posts:")
	for _, p := range top {
		fmt.Printf("  [%.1f] @%s: %s\n", p.EngagementScore(), p.Username, excerpt(p.Body))
	}
}

func usernames(users []classifier.ConversationUser) string {
	if len(users) == 0 {
		return "(none)"
	}
	names := make([]string, 0, len(users))
	for _, u := range users {
		names = append(names, u.Username)
	}
	return strings.Join(names, ", ")
}

const excerptLen = 80

func excerpt(body string) string {
	body = strings.ReplaceAll(body, "\n", " ")
	runes := []rune(body)
	if len(runes) <= excerptLen {
		return body
	}
	return string(runes[:excerptLen]) + "..."
}

func persistProfiles(ctx context.Context, cfg *config.Config, tel *telemetry.Provider, logr logger.Logger, profiles []*domain.UserProfile) error {
	dbComps, err := bootstrap.SetupDatabase(cfg, logr)
	if err != nil {
		return err
	}
	if dbComps == nil {
		return fmt.Errorf("persistence requested but database is disabled in config")
	}
	defer func() { _ = dbComps.DB.Close() }()

	return bootstrap.PersistProfiles(ctx, dbComps.ProfileRepo, tel, logr, profiles)
}

func exportProfiles(ctx context.Context, cfg *config.Config, tel *telemetry.Provider, logr logger.Logger, profiles []*domain.UserProfile) error {
	esStorage := bootstrap.SetupElasticsearch(cfg, logr)
	if esStorage == nil {
		return fmt.Errorf("export requested but Elasticsearch is unavailable")
	}
	return bootstrap.ExportProfiles(ctx, esStorage, tel, logr, profiles)
}
