// Package queue provides the RCA job queue: workers claim queued RCA runs
// from the database and hand them to the orchestrator.
package queue

import (
	"context"
	"errors"
	"time"
)

// ErrNoJobsAvailable indicates no queued RCA runs are waiting.
var ErrNoJobsAvailable = errors.New("no jobs available")

// JobExecutor processes one claimed RCA run. The executor owns the entire
// outcome: it persists success or failure on the row itself, so delivery is
// at-least-once and duplicates are absorbed by the executor's preflight.
type JobExecutor interface {
	ProcessRCARun(ctx context.Context, rcaRunID string)
}

// PoolHealth contains health information for the worker pool.
type PoolHealth struct {
	IsHealthy     bool           `json:"is_healthy"`
	DBReachable   bool           `json:"db_reachable"`
	DBError       string         `json:"db_error,omitempty"`
	PodID         string         `json:"pod_id"`
	ActiveWorkers int            `json:"active_workers"`
	TotalWorkers  int            `json:"total_workers"`
	QueueDepth    int            `json:"queue_depth"`
	WorkerStats   []WorkerHealth `json:"worker_stats"`
}

// WorkerHealth contains health information for a single worker.
type WorkerHealth struct {
	ID            string    `json:"id"`
	Status        string    `json:"status"` // "idle" or "working"
	CurrentJobID  string    `json:"current_job_id,omitempty"`
	JobsProcessed int       `json:"jobs_processed"`
	LastActivity  time.Time `json:"last_activity"`
}
