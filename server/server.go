// Package server exposes the analysis pipeline over HTTP.
package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/edupulse/channel-insights/config"
	"github.com/edupulse/channel-insights/model"
)

// BatchAnalyzer is the orchestration surface the HTTP layer depends on.
type BatchAnalyzer interface {
	AnalyzeAll(ctx context.Context, channels []string, windowDays int) (*model.AnalysisResponse, error)
}

// Server wires the HTTP routes to the batch analyzer.
type Server struct {
	router   *gin.Engine
	analyzer BatchAnalyzer
	cfg      *config.Config
}

// NewServer builds the router with CORS and all routes registered.
func NewServer(cfg *config.Config, a BatchAnalyzer) *Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if len(cfg.Server.CORSOrigins) == 1 && cfg.Server.CORSOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.Server.CORSOrigins
	}
	corsConfig.AllowMethods = []string{"GET", "POST"}
	corsConfig.AllowHeaders = []string{"Content-Type"}
	router.Use(cors.New(corsConfig))

	s := &Server{
		router:   router,
		analyzer: a,
		cfg:      cfg,
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.GET("/", s.health)
	s.router.POST("/api/analyze", s.analyze)
	s.router.GET("/api/status/:requestId", s.status)
}

// Run serves until the context is cancelled, then drains in-flight requests
// within the configured shutdown timeout.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", s.cfg.Server.Port),
		Handler: s.router,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Int("port", s.cfg.Server.Port).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
	defer cancel()

	log.Info().Msg("Shutting down HTTP server")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	return nil
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}
