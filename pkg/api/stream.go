package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/agentops/agentops/pkg/progress"
)

// StreamRCARun streams progress events for an RCA run over Server-Sent
// Events. The subscription is opened before the snapshot is flushed, so no
// update published in between is lost. The stream ends after the first
// terminal event (done or error) or when the client disconnects.
func (s *Server) StreamRCARun(c *gin.Context) {
	rcaRunID := c.Param("rca_run_id")

	view, err := s.rca.GetRCARun(c.Request.Context(), rcaRunID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	flusher, ok := c.Writer.(http.Flusher)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "streaming unsupported"})
		return
	}

	ctx := c.Request.Context()
	sub := s.publisher.Subscribe(ctx, rcaRunID)
	defer func() { _ = sub.Close() }()

	h := c.Writer.Header()
	h.Set("Content-Type", "text/event-stream")
	h.Set("Cache-Control", "no-cache")
	h.Set("Connection", "keep-alive")
	h.Set("X-Accel-Buffering", "no")
	c.Writer.WriteHeader(http.StatusOK)

	// Initial snapshot: the Redis snapshot when present, otherwise the
	// database row, which is authoritative on reconnect.
	snapshot := s.publisher.GetLatestStatus(ctx, rcaRunID)
	if snapshot == nil {
		snapshot = &progress.Event{
			Status:    view.Status,
			Step:      view.Step,
			Pct:       view.Pct,
			Message:   view.Message,
			UpdatedAt: time.Now().UTC().Format(time.RFC3339),
		}
	}
	payload, err := json.Marshal(snapshot)
	if err != nil {
		slog.Error("Failed to marshal progress snapshot", "rca_run_id", rcaRunID, "error", err)
		return
	}
	if !writeSSE(c.Writer, flusher, payload) {
		return
	}
	if isTerminal(snapshot.Status) {
		return
	}

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, open := <-ch:
			if !open {
				return
			}
			raw := []byte(msg.Payload)
			if !writeSSE(c.Writer, flusher, raw) {
				return
			}
			var event progress.Event
			if err := json.Unmarshal(raw, &event); err != nil {
				slog.Warn("Malformed progress event", "rca_run_id", rcaRunID, "error", err)
				continue
			}
			if isTerminal(event.Status) {
				return
			}
		}
	}
}

func writeSSE(w http.ResponseWriter, flusher http.Flusher, payload []byte) bool {
	if _, err := fmt.Fprintf(w, "data: %s\n\n", payload); err != nil {
		return false
	}
	flusher.Flush()
	return true
}

func isTerminal(status string) bool {
	return status == "done" || status == "error"
}
