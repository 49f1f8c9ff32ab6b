package rca

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/agentops/agentops/ent"
	"github.com/agentops/agentops/ent/rcarun"
	"github.com/agentops/agentops/pkg/models"
	"github.com/agentops/agentops/pkg/progress"
	"github.com/agentops/agentops/pkg/services"
)

// Orchestrator drives one RCA run end to end: evidence collection,
// classification, report assembly, and persistence. Every stage both
// publishes progress and persists the same step/pct on the RCA run row, so
// the database stays authoritative when the broker is down.
type Orchestrator struct {
	client    *ent.Client
	evidence  *services.EvidenceStore
	publisher *progress.Publisher
	narrative *NarrativeEngine
	logger    *slog.Logger
}

// NewOrchestrator creates an orchestrator.
func NewOrchestrator(client *ent.Client, evidence *services.EvidenceStore, publisher *progress.Publisher, narrative *NarrativeEngine) *Orchestrator {
	return &Orchestrator{
		client:    client,
		evidence:  evidence,
		publisher: publisher,
		narrative: narrative,
		logger:    slog.Default().With("component", "orchestrator"),
	}
}

// ProcessRCARun executes the full analysis for one RCA run. Failures are
// persisted on the row and announced on the progress channel; they are
// never propagated to the worker, duplicates are absorbed by the preflight.
func (o *Orchestrator) ProcessRCARun(ctx context.Context, rcaRunID string) {
	rr, err := o.client.RCARun.Get(ctx, rcaRunID)
	if err != nil {
		if ent.IsNotFound(err) {
			o.logger.Error("RCA run not found", "rca_run_id", rcaRunID)
			return
		}
		o.fail(ctx, rcaRunID, fmt.Errorf("failed to load RCA run: %w", err))
		return
	}
	if rr.Status == rcarun.StatusDone {
		o.logger.Info("RCA run already completed, skipping", "rca_run_id", rcaRunID)
		return
	}

	if err := o.analyze(ctx, rr); err != nil {
		o.fail(ctx, rcaRunID, err)
	}
}

func (o *Orchestrator) analyze(ctx context.Context, rr *ent.RCARun) error {
	rcaRunID := rr.ID
	runID := rr.RunID

	o.publisher.Publish(ctx, rcaRunID, "running", "starting", 5, "Starting RCA analysis")
	if _, err := o.client.RCARun.UpdateOneID(rcaRunID).
		SetStatus(rcarun.StatusRunning).
		SetStep("starting").
		SetPct(5).
		SetMessage("Starting RCA analysis").
		SetStartedAt(time.Now()).
		Save(ctx); err != nil {
		return fmt.Errorf("failed to mark running: %w", err)
	}

	o.progress(ctx, rcaRunID, "Collecting evidence", 30)
	bundle, err := o.evidence.GetBundle(ctx, runID)
	if err != nil {
		return fmt.Errorf("failed to load telemetry: %w", err)
	}
	evidenceIndex := CollectEvidence(bundle)

	o.progress(ctx, rcaRunID, "Classifying failure", 55)
	category := Classify(bundle)
	insufficient := InsufficientEvidence(bundle, evidenceIndex)

	o.progress(ctx, rcaRunID, "Generating report", 85)
	var hypotheses []models.Hypothesis
	if !insufficient {
		hypothesis := BuildHypothesis(o.narrative, category, evidenceIndex)
		if o.narrative.Enabled() {
			hypothesis.Description = o.narrative.Rewrite(ctx, hypothesis.Description)
		}
		hypotheses = append(hypotheses, hypothesis)
	}
	actionItems := o.narrative.ActionItems(category, insufficient)

	metrics := CompileMetrics(bundle)
	jiraFields := BuildJiraFields(runID, category, hypotheses, actionItems, insufficient)

	report := &models.Report{
		ReportID:             uuid.New().String(),
		RCARunID:             rcaRunID,
		RunID:                runID,
		GeneratedAt:          time.Now().UTC(),
		Category:             category,
		InsufficientEvidence: insufficient,
		EvidenceIndex:        evidenceIndex,
		Hypotheses:           hypotheses,
		ActionItems:          actionItems,
		MetricsSnapshot:      metrics,
		JiraFields:           &jiraFields,
	}
	if insufficient {
		reason := InsufficientReason
		report.InsufficientReason = &reason
	}

	if err := o.persistReport(ctx, report); err != nil {
		return err
	}
	o.publisher.Publish(ctx, rcaRunID, "done", "completed", 100, "RCA analysis completed")

	o.logger.Info("RCA analysis completed",
		"rca_run_id", rcaRunID,
		"run_id", runID,
		"category", category,
		"insufficient_evidence", insufficient,
		"evidence_count", len(evidenceIndex))
	return nil
}

// persistReport writes the report and the done transition in a single
// transaction, so a crash can never leave a done run without its report.
func (o *Orchestrator) persistReport(ctx context.Context, report *models.Report) error {
	doc, err := services.EncodeReport(report)
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}

	tx, err := o.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	if _, err := tx.RCAReport.Create().
		SetID(report.ReportID).
		SetRcaRunID(report.RCARunID).
		SetRunID(report.RunID).
		SetReportJSON(doc).
		SetInsufficientEvidence(report.InsufficientEvidence).
		SetCategory(string(report.Category)).
		SetGeneratedAt(report.GeneratedAt).
		Save(ctx); err != nil {
		return fmt.Errorf("failed to save report: %w", err)
	}

	if _, err := tx.RCARun.UpdateOneID(report.RCARunID).
		SetStatus(rcarun.StatusDone).
		SetStep("completed").
		SetPct(100).
		SetMessage("RCA analysis completed").
		SetEndedAt(time.Now()).
		Save(ctx); err != nil {
		return fmt.Errorf("failed to mark done: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit report: %w", err)
	}
	committed = true
	return nil
}

// progress publishes a running-stage update and persists the same step and
// pct on the row.
func (o *Orchestrator) progress(ctx context.Context, rcaRunID, step string, pct int) {
	o.publisher.Publish(ctx, rcaRunID, "running", step, pct, step)
	if _, err := o.client.RCARun.UpdateOneID(rcaRunID).
		SetStep(step).
		SetPct(pct).
		SetMessage(step).
		Save(ctx); err != nil {
		o.logger.Warn("Failed to persist progress",
			"rca_run_id", rcaRunID, "step", step, "error", err)
	}
}

// fail records a terminal error outcome on the row and announces it.
func (o *Orchestrator) fail(ctx context.Context, rcaRunID string, cause error) {
	o.logger.Error("RCA analysis failed", "rca_run_id", rcaRunID, "error", cause)
	o.publisher.Publish(ctx, rcaRunID, "error", "failed", 0, fmt.Sprintf("Error: %s", cause))
	if _, err := o.client.RCARun.UpdateOneID(rcaRunID).
		SetStatus(rcarun.StatusError).
		SetStep("failed").
		SetPct(0).
		SetMessage("RCA failed").
		SetErrorMessage(cause.Error()).
		SetEndedAt(time.Now()).
		Save(ctx); err != nil {
		o.logger.Error("Failed to persist error outcome",
			"rca_run_id", rcaRunID, "error", err)
	}
}
