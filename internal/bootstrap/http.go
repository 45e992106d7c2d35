package bootstrap

import (
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/jonesrussell/trader-pulse/internal/api"
	"github.com/jonesrussell/trader-pulse/internal/classifier"
	"github.com/jonesrussell/trader-pulse/internal/config"
	"github.com/jonesrussell/trader-pulse/internal/database"
	"github.com/jonesrussell/trader-pulse/internal/logger"
	"github.com/jonesrussell/trader-pulse/internal/storage"
	"github.com/jonesrussell/trader-pulse/internal/telemetry"
)

const defaultHTTPTimeout = 30 * time.Second

// HTTPComponents holds all components needed for the HTTP server.
type HTTPComponents struct {
	DB        *sqlx.DB
	ES        *storage.ElasticsearchStorage
	Handler   *api.Handler
	Server    *api.Server
	Telemetry *telemetry.Provider
}

// NewHTTPComponents creates all components for the HTTP server.
func NewHTTPComponents(cfg *config.Config, log logger.Logger) (*HTTPComponents, error) {
	dbComps, err := SetupDatabase(cfg, log)
	if err != nil {
		return nil, err
	}

	esStorage := SetupElasticsearch(cfg, log)

	tel := telemetry.NewProvider()

	analyzer := classifier.NewAnalyzer(log, classifier.WithMinPosts(cfg.Analysis.MinPosts))
	log.Info("Analyzer initialized",
		logger.Int("min_posts", analyzer.MinPosts()),
		logger.Int("concurrency", cfg.Service.Concurrency),
	)

	var profileRepo *database.ProfileRepository
	var db *sqlx.DB
	if dbComps != nil {
		profileRepo = dbComps.ProfileRepo
		db = dbComps.DB
	}

	handler := api.NewHandler(
		analyzer,
		profileRepo,
		tel,
		cfg.Analysis.BatchMinPosts,
		cfg.Service.Concurrency,
		logger.NewSugared(log),
	)

	server := api.NewServer(handler, api.ServerConfig{
		Port:         cfg.Service.Port,
		ReadTimeout:  defaultHTTPTimeout,
		WriteTimeout: defaultHTTPTimeout,
		Debug:        cfg.Service.Debug,
	}, tel)

	return &HTTPComponents{
		DB:        db,
		ES:        esStorage,
		Handler:   handler,
		Server:    server,
		Telemetry: tel,
	}, nil
}

// HTTPShutdownTimeout returns the timeout for HTTP server graceful shutdown.
func HTTPShutdownTimeout() time.Duration {
	return defaultHTTPTimeout
}
