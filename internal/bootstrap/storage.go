package bootstrap

import (
	"context"

	es "github.com/elastic/go-elasticsearch/v8"

	"github.com/jonesrussell/trader-pulse/internal/config"
	"github.com/jonesrussell/trader-pulse/internal/logger"
	"github.com/jonesrussell/trader-pulse/internal/storage"
)

// SetupElasticsearch creates optional Elasticsearch storage for profile
// export. Returns nil if ES is disabled or unavailable (the service still
// runs without it).
func SetupElasticsearch(cfg *config.Config, log logger.Logger) *storage.ElasticsearchStorage {
	if !cfg.Elasticsearch.Enabled {
		log.Info("Elasticsearch export disabled")
		return nil
	}

	client, err := es.NewClient(es.Config{
		Addresses: []string{cfg.Elasticsearch.URL},
	})
	if err != nil {
		log.Warn("Failed to create Elasticsearch client", logger.Error(err))
		log.Info("Profile export to Elasticsearch will not be available")
		return nil
	}

	esStorage := storage.NewElasticsearchStorage(client, cfg.Elasticsearch.Index)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Elasticsearch.Timeout)
	defer cancel()
	if err := esStorage.TestConnection(ctx); err != nil {
		log.Warn("Failed to verify Elasticsearch connection", logger.Error(err))
		log.Info("Profile export to Elasticsearch will not be available")
		return nil
	}
	if err := esStorage.EnsureIndex(ctx); err != nil {
		log.Warn("Failed to ensure profile index", logger.Error(err))
		log.Info("Profile export to Elasticsearch will not be available")
		return nil
	}

	log.Info("Elasticsearch connected successfully",
		logger.String("url", cfg.Elasticsearch.URL),
		logger.String("index", cfg.Elasticsearch.Index),
	)
	return esStorage
}
