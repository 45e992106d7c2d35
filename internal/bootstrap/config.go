// Package bootstrap wires configuration, logging, storage, and the HTTP
// server together for the service binaries.
package bootstrap

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/jonesrussell/trader-pulse/internal/config"
	"github.com/jonesrussell/trader-pulse/internal/logger"
)

const defaultConfigPath = "config.yml"

// LoadConfig loads configuration from CONFIG_PATH or config.yml. A missing
// file is not fatal: defaults plus environment overrides still apply.
func LoadConfig() (*config.Config, error) {
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = defaultConfigPath
	}
	cfg, err := config.Load(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("load config: %w", err)
		}
		log.Printf("Warning: config file %s not found, using defaults", path)
		cfg = &config.Config{}
		cfg.SetDefaults()
	}
	return cfg, nil
}

// CreateLogger creates a logger instance from configuration.
func CreateLogger(cfg *config.Config) (logger.Logger, error) {
	log, err := logger.New(logger.Config{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		Development: cfg.Service.Debug,
	})
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}
	return log.With(logger.String("service", cfg.Service.Name)), nil
}
