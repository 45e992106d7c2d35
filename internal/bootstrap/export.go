package bootstrap

import (
	"context"
	"fmt"

	"github.com/jonesrussell/trader-pulse/internal/database"
	"github.com/jonesrussell/trader-pulse/internal/domain"
	"github.com/jonesrussell/trader-pulse/internal/logger"
	"github.com/jonesrussell/trader-pulse/internal/storage"
	"github.com/jonesrussell/trader-pulse/internal/telemetry"
)

// PersistProfiles writes computed profiles to the profile repository and
// records sink metrics. Stops at the first failed upsert.
func PersistProfiles(
	ctx context.Context,
	repo *database.ProfileRepository,
	tel *telemetry.Provider,
	log logger.Logger,
	profiles []*domain.UserProfile,
) error {
	persisted := 0
	for _, p := range profiles {
		if err := repo.Upsert(ctx, p); err != nil {
			tel.RecordPersisted(persisted)
			tel.RecordExportFailure("postgres")
			return fmt.Errorf("persist profile %s: %w", p.Username, err)
		}
		persisted++
	}

	tel.RecordPersisted(persisted)
	log.Info("Profiles persisted", logger.Int("count", persisted))
	return nil
}

// ExportProfiles bulk-indexes computed profiles into Elasticsearch and
// records sink metrics.
func ExportProfiles(
	ctx context.Context,
	es *storage.ElasticsearchStorage,
	tel *telemetry.Provider,
	log logger.Logger,
	profiles []*domain.UserProfile,
) error {
	if err := es.BulkIndexProfiles(ctx, profiles); err != nil {
		tel.RecordExportFailure("elasticsearch")
		return err
	}

	tel.RecordIndexed(len(profiles))
	log.Info("Profiles exported", logger.Int("count", len(profiles)))
	return nil
}
