package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/agentops/agentops/ent"
	"github.com/agentops/agentops/ent/agentrun"
	"github.com/agentops/agentops/ent/rcareport"
	"github.com/agentops/agentops/ent/rcarun"
	"github.com/agentops/agentops/pkg/models"
)

// IdempotencyWindow is how long an existing queued or running RCA run
// absorbs new creation requests for the same run_id.
const IdempotencyWindow = 10 * time.Minute

// RCAService manages RCA run lifecycle: idempotent creation and reads.
// Queued rows double as the job queue consumed by the worker pool.
type RCAService struct {
	client *ent.Client
	logger *slog.Logger
}

// NewRCAService creates a new RCA service.
func NewRCAService(client *ent.Client) *RCAService {
	return &RCAService{
		client: client,
		logger: slog.Default().With("component", "rca_service"),
	}
}

// CreateRCARun enqueues an RCA analysis for a run. If a queued or running
// RCA run for the same run_id was created within the idempotency window,
// its id is returned instead of creating a duplicate.
func (s *RCAService) CreateRCARun(ctx context.Context, runID string) (string, error) {
	exists, err := s.client.AgentRun.Query().
		Where(agentrun.IDEQ(runID)).
		Exist(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to check run: %w", err)
	}
	if !exists {
		return "", fmt.Errorf("agent run %s: %w", runID, ErrNotFound)
	}

	existing, err := s.client.RCARun.Query().
		Where(
			rcarun.RunIDEQ(runID),
			rcarun.StatusIn(rcarun.StatusQueued, rcarun.StatusRunning),
			rcarun.CreatedAtGTE(time.Now().Add(-IdempotencyWindow)),
		).
		Order(ent.Desc(rcarun.FieldCreatedAt)).
		First(ctx)
	if err == nil {
		s.logger.Info("Reusing in-flight RCA run",
			"run_id", runID,
			"rca_run_id", existing.ID,
			"status", existing.Status)
		return existing.ID, nil
	}
	if !ent.IsNotFound(err) {
		return "", fmt.Errorf("failed to query existing RCA runs: %w", err)
	}

	rcaRunID := uuid.New().String()
	if _, err := s.client.RCARun.Create().
		SetID(rcaRunID).
		SetRunID(runID).
		SetMessage("RCA job queued").
		Save(ctx); err != nil {
		return "", fmt.Errorf("failed to create RCA run: %w", err)
	}

	s.logger.Info("RCA run enqueued", "run_id", runID, "rca_run_id", rcaRunID)
	return rcaRunID, nil
}

// GetRCARun returns the current state of an RCA run. When the run is done
// the persisted report is embedded in the response.
func (s *RCAService) GetRCARun(ctx context.Context, rcaRunID string) (*models.RCARunView, error) {
	rr, err := s.client.RCARun.Get(ctx, rcaRunID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("RCA run %s: %w", rcaRunID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get RCA run: %w", err)
	}

	view := &models.RCARunView{
		RCARunID:     rr.ID,
		RunID:        rr.RunID,
		Status:       string(rr.Status),
		Step:         rr.Step,
		Pct:          rr.Pct,
		Message:      rr.Message,
		CreatedAt:    rr.CreatedAt,
		StartedAt:    rr.StartedAt,
		EndedAt:      rr.EndedAt,
		ErrorMessage: rr.ErrorMessage,
	}

	if rr.Status == rcarun.StatusDone {
		row, err := s.client.RCAReport.Query().
			Where(rcareport.RcaRunIDEQ(rcaRunID)).
			Only(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				// A done run without a report should not happen; surface the
				// state without the document rather than failing the read.
				s.logger.Warn("Done RCA run has no report", "rca_run_id", rcaRunID)
				return view, nil
			}
			return nil, fmt.Errorf("failed to load report: %w", err)
		}
		report, err := DecodeReport(row.ReportJSON)
		if err != nil {
			return nil, fmt.Errorf("failed to decode report %s: %w", row.ID, err)
		}
		view.Report = report
	}
	return view, nil
}

// DecodeReport converts a stored report document back into its typed form.
func DecodeReport(doc map[string]interface{}) (*models.Report, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	var report models.Report
	if err := json.Unmarshal(raw, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

// EncodeReport converts a typed report into the stored document form.
func EncodeReport(report *models.Report) (map[string]interface{}, error) {
	raw, err := json.Marshal(report)
	if err != nil {
		return nil, err
	}
	var doc map[string]interface{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}
