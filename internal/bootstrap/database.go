package bootstrap

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/jonesrussell/trader-pulse/internal/config"
	"github.com/jonesrussell/trader-pulse/internal/database"
	"github.com/jonesrussell/trader-pulse/internal/logger"
)

// DatabaseComponents holds the database connection and repositories.
type DatabaseComponents struct {
	DB          *sqlx.DB
	ProfileRepo *database.ProfileRepository
}

// SetupDatabase creates the database connection and profile repository.
// Returns nil components when persistence is disabled in configuration.
func SetupDatabase(cfg *config.Config, log logger.Logger) (*DatabaseComponents, error) {
	if !cfg.Database.Enabled {
		log.Info("Profile persistence disabled, running in-memory only")
		return nil, nil
	}

	dbConfig := database.Config{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.Database,
		SSLMode:  cfg.Database.SSLMode,
	}

	log.Info("Connecting to PostgreSQL database",
		logger.String("host", dbConfig.Host),
		logger.Int("port", dbConfig.Port),
		logger.String("database", dbConfig.DBName),
	)

	db, err := database.Connect(dbConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	log.Info("Database connected successfully")

	return &DatabaseComponents{
		DB:          db,
		ProfileRepo: database.NewProfileRepository(db),
	}, nil
}
