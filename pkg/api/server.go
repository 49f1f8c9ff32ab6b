// Package api exposes the HTTP surface: telemetry ingest, run reads, RCA
// run management, the SSE progress stream, and health/metrics endpoints.
package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/agentops/agentops/pkg/config"
	"github.com/agentops/agentops/pkg/database"
	"github.com/agentops/agentops/pkg/progress"
	"github.com/agentops/agentops/pkg/queue"
	"github.com/agentops/agentops/pkg/services"
)

// Server is the API server.
type Server struct {
	settings  *config.Settings
	db        *database.Client
	ingest    *services.IngestService
	rca       *services.RCAService
	publisher *progress.Publisher
	pool      *queue.WorkerPool
	http      *http.Server
}

// NewServer creates the API server and wires up all routes.
func NewServer(settings *config.Settings, db *database.Client, ingest *services.IngestService, rca *services.RCAService, publisher *progress.Publisher, pool *queue.WorkerPool) *Server {
	s := &Server{
		settings:  settings,
		db:        db,
		ingest:    ingest,
		rca:       rca,
		publisher: publisher,
		pool:      pool,
	}

	if settings.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(securityHeaders())
	router.Use(corsMiddleware(settings.CORSOrigins))

	router.GET("/", s.Root)
	router.GET("/health", s.Health)
	router.GET("/metrics/overview", s.GetMetricsOverview)

	router.POST("/agent-runs", s.IngestAgentRun)
	router.GET("/agent-runs/:run_id", s.GetAgentRun)
	router.GET("/agent-runs/:run_id/timeline", s.GetTimeline)
	router.POST("/agent-runs/:run_id/rca-runs", s.CreateRCARun)
	router.GET("/agent-runs/rca-runs/:rca_run_id", s.GetRCARun)
	router.GET("/rca-runs/:rca_run_id/stream", s.StreamRCARun)

	s.http = &http.Server{
		Addr:              fmt.Sprintf(":%s", settings.HTTPPort),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Start begins serving HTTP requests. It blocks until the listener stops.
func (s *Server) Start() error {
	slog.Info("API server listening", "addr", s.http.Addr)
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	slog.Info("Shutting down API server")
	return s.http.Shutdown(ctx)
}
