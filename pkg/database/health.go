package database

import (
	"context"
	stdsql "database/sql"
	"fmt"
	"time"
)

// HealthStatus describes the outcome of a database health probe.
type HealthStatus struct {
	Reachable bool          `json:"reachable"`
	Latency   time.Duration `json:"latency"`
	OpenConns int           `json:"open_conns"`
	Error     string        `json:"error,omitempty"`
}

// Health pings the database and reports connectivity and pool state.
func Health(ctx context.Context, db *stdsql.DB) (HealthStatus, error) {
	start := time.Now()
	err := db.PingContext(ctx)
	status := HealthStatus{
		Reachable: err == nil,
		Latency:   time.Since(start),
		OpenConns: db.Stats().OpenConnections,
	}
	if err != nil {
		status.Error = err.Error()
		return status, fmt.Errorf("database ping failed: %w", err)
	}
	return status, nil
}
