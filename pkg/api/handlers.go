package api

import (
	"context"
	"crypto/subtle"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/agentops/agentops/pkg/database"
	"github.com/agentops/agentops/pkg/models"
)

// Root describes the service.
func (s *Server) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service": "agentops",
		"docs":    "/health, /agent-runs, /metrics/overview",
	})
}

// Health reports database and worker pool health.
func (s *Server) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	dbHealth, err := database.Health(ctx, s.db.DB())
	poolHealth := s.pool.Health()
	if err != nil || !poolHealth.IsHealthy {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"database": dbHealth,
			"queue":    poolHealth,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"database": dbHealth,
		"queue":    poolHealth,
	})
}

// IngestAgentRun accepts a full telemetry payload and upserts it.
func (s *Server) IngestAgentRun(c *gin.Context) {
	if secret := s.settings.AppIngestSecret; secret != "" {
		provided := c.GetHeader("X-Ingest-Secret")
		if subtle.ConstantTimeCompare([]byte(provided), []byte(secret)) != 1 {
			c.JSON(http.StatusForbidden, gin.H{"error": "invalid ingest secret"})
			return
		}
	}

	var payload models.AgentRunPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	runID, err := s.ingest.UpsertAgentRun(c.Request.Context(), &payload)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"run_id": runID})
}

// GetAgentRun returns the compact run view with child counts.
func (s *Server) GetAgentRun(c *gin.Context) {
	summary, err := s.ingest.GetRunSummary(c.Request.Context(), c.Param("run_id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// GetTimeline returns the chronological event list of a run.
func (s *Server) GetTimeline(c *gin.Context) {
	events, err := s.ingest.GetTimeline(c.Request.Context(), c.Param("run_id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"events": events})
}

// CreateRCARun enqueues an RCA analysis for a run (idempotent).
func (s *Server) CreateRCARun(c *gin.Context) {
	rcaRunID, err := s.rca.CreateRCARun(c.Request.Context(), c.Param("run_id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"rca_run_id": rcaRunID})
}

// GetRCARun returns RCA run status, embedding the report once done.
func (s *Server) GetRCARun(c *gin.Context) {
	view, err := s.rca.GetRCARun(c.Request.Context(), c.Param("rca_run_id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// GetMetricsOverview aggregates recent telemetry. The hours query parameter
// is clamped to [1, 168] and defaults to 24.
func (s *Server) GetMetricsOverview(c *gin.Context) {
	hours := 24
	if raw := c.Query("hours"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "hours must be an integer"})
			return
		}
		hours = parsed
	}

	overview, err := s.ingest.MetricsOverview(c.Request.Context(), hours)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, overview)
}
