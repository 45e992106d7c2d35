// Command httpd runs the trader-pulse HTTP API server.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/jonesrussell/trader-pulse/internal/bootstrap"
	"github.com/jonesrussell/trader-pulse/internal/logger"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("httpd: %v", err)
	}
}

func run() error {
	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		return err
	}

	logr, err := bootstrap.CreateLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = logr.Sync() }()

	logr.Info("Starting trader-pulse HTTP server",
		logger.Int("port", cfg.Service.Port),
		logger.Bool("debug", cfg.Service.Debug),
	)

	comps, err := bootstrap.NewHTTPComponents(cfg, logr)
	if err != nil {
		return err
	}
	if comps.DB != nil {
		defer func() {
			if closeErr := comps.DB.Close(); closeErr != nil {
				logr.Error("Error closing database connection", logger.Error(closeErr))
			}
		}()
	}

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- comps.Server.Start()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return err
	case sig := <-shutdown:
		logr.Info("Shutdown signal received", logger.String("signal", sig.String()))

		ctx, cancel := context.WithTimeout(context.Background(), bootstrap.HTTPShutdownTimeout())
		defer cancel()

		if err := comps.Server.Shutdown(ctx); err != nil {
			return err
		}
		logr.Info("Server stopped gracefully")
	}
	return nil
}
