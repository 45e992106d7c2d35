package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jonesrussell/trader-pulse/internal/telemetry"
)

// Default timeout values.
const (
	defaultReadTimeout  = 30 * time.Second
	defaultWriteTimeout = 60 * time.Second
	defaultIdleTimeout  = 120 * time.Second
)

// ServerConfig holds server configuration.
type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	Debug        bool
}

// Server wraps the gin engine and the underlying http.Server.
type Server struct {
	engine *gin.Engine
	http   *http.Server
}

// NewServer creates the HTTP server with all routes registered.
func NewServer(handler *Handler, cfg ServerConfig, tel *telemetry.Provider) *Server {
	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	readTimeout := cfg.ReadTimeout
	if readTimeout == 0 {
		readTimeout = defaultReadTimeout
	}
	writeTimeout := cfg.WriteTimeout
	if writeTimeout == 0 {
		writeTimeout = defaultWriteTimeout
	}

	engine := gin.New()
	engine.Use(gin.Recovery())

	SetupRoutes(engine, handler, tel)

	return &Server{
		engine: engine,
		http: &http.Server{
			Addr:         fmt.Sprintf(":%d", cfg.Port),
			Handler:      engine,
			ReadTimeout:  readTimeout,
			WriteTimeout: writeTimeout,
			IdleTimeout:  defaultIdleTimeout,
		},
	}
}

// Engine exposes the router, mainly for tests.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// Start begins serving HTTP requests. It blocks until the server stops.
func (s *Server) Start() error {
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
