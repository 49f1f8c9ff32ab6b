// Package progress publishes RCA progress updates to Redis: a keyed
// snapshot for late joiners plus a pub/sub channel for live streaming.
package progress

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// StatusKey returns the snapshot key for an RCA run.
func StatusKey(rcaRunID string) string {
	return fmt.Sprintf("rca:%s:status", rcaRunID)
}

// Channel returns the pub/sub channel name for an RCA run.
func Channel(rcaRunID string) string {
	return fmt.Sprintf("rca:%s", rcaRunID)
}

// Event is the JSON document stored at the snapshot key and published on
// the channel.
type Event struct {
	Status    string `json:"status"`
	Step      string `json:"step"`
	Pct       int    `json:"pct"`
	Message   string `json:"message"`
	UpdatedAt string `json:"updated_at"`
}

// Publisher writes progress updates to Redis. All writes are best-effort:
// failures are logged and never propagated to the caller, the database row
// remains the authoritative record.
type Publisher struct {
	rdb    *redis.Client
	logger *slog.Logger
}

// NewPublisher creates a progress publisher on the given Redis client.
func NewPublisher(rdb *redis.Client) *Publisher {
	return &Publisher{
		rdb:    rdb,
		logger: slog.Default().With("component", "progress"),
	}
}

// Publish overwrites the snapshot at rca:<id>:status, then publishes the
// same JSON on channel rca:<id>.
func (p *Publisher) Publish(ctx context.Context, rcaRunID, status, step string, pct int, message string) {
	event := Event{
		Status:    status,
		Step:      step,
		Pct:       pct,
		Message:   message,
		UpdatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		p.logger.Error("Failed to marshal progress event", "rca_run_id", rcaRunID, "error", err)
		return
	}

	if err := p.rdb.HSet(ctx, StatusKey(rcaRunID),
		"status", event.Status,
		"step", event.Step,
		"pct", event.Pct,
		"message", event.Message,
		"updated_at", event.UpdatedAt,
	).Err(); err != nil {
		p.logger.Warn("Failed to write progress snapshot",
			"rca_run_id", rcaRunID, "error", err)
	}

	if err := p.rdb.Publish(ctx, Channel(rcaRunID), payload).Err(); err != nil {
		p.logger.Warn("Failed to publish progress event",
			"rca_run_id", rcaRunID, "error", err)
	}
}

// GetLatestStatus returns the snapshot for an RCA run, or nil when no
// snapshot exists or Redis is unreachable.
func (p *Publisher) GetLatestStatus(ctx context.Context, rcaRunID string) *Event {
	fields, err := p.rdb.HGetAll(ctx, StatusKey(rcaRunID)).Result()
	if err != nil {
		p.logger.Warn("Failed to read progress snapshot",
			"rca_run_id", rcaRunID, "error", err)
		return nil
	}
	if len(fields) == 0 {
		return nil
	}
	event := &Event{
		Status:    fields["status"],
		Step:      fields["step"],
		Message:   fields["message"],
		UpdatedAt: fields["updated_at"],
	}
	if pct, err := strconv.Atoi(fields["pct"]); err == nil {
		event.Pct = pct
	}
	return event
}

// Subscribe opens a pub/sub subscription on the channel for an RCA run.
// The caller owns the returned subscription and must close it.
func (p *Publisher) Subscribe(ctx context.Context, rcaRunID string) *redis.PubSub {
	return p.rdb.Subscribe(ctx, Channel(rcaRunID))
}
