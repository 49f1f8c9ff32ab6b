package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/agentops/agentops/ent"
	"github.com/agentops/agentops/ent/agentrun"
	"github.com/agentops/agentops/ent/agentstep"
	"github.com/agentops/agentops/ent/guardrailevent"
	"github.com/agentops/agentops/ent/toolcall"
	"github.com/agentops/agentops/pkg/models"
)

// IngestService handles telemetry ingest and read-side queries over agent
// runs.
type IngestService struct {
	client *ent.Client
	logger *slog.Logger
}

// NewIngestService creates a new ingest service.
func NewIngestService(client *ent.Client) *IngestService {
	return &IngestService{
		client: client,
		logger: slog.Default().With("component", "ingest_service"),
	}
}

// UpsertAgentRun stores an agent run and all its children. Re-ingest of an
// existing run_id replaces the run's scalar fields and all children in a
// single transaction (full-replace, not merge). Returns the run_id.
func (s *IngestService) UpsertAgentRun(ctx context.Context, payload *models.AgentRunPayload) (string, error) {
	payload.Normalize()
	if err := payload.Validate(); err != nil {
		return "", NewValidationError("payload", err.Error())
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	exists, err := tx.AgentRun.Query().
		Where(agentrun.IDEQ(payload.RunID)).
		Exist(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to check for existing run: %w", err)
	}

	if exists {
		// Children first, guardrails before the rows they may reference.
		if _, err := tx.GuardrailEvent.Delete().
			Where(guardrailevent.RunIDEQ(payload.RunID)).
			Exec(ctx); err != nil {
			return "", fmt.Errorf("failed to delete guardrail events: %w", err)
		}
		if _, err := tx.ToolCall.Delete().
			Where(toolcall.RunIDEQ(payload.RunID)).
			Exec(ctx); err != nil {
			return "", fmt.Errorf("failed to delete tool calls: %w", err)
		}
		if _, err := tx.AgentStep.Delete().
			Where(agentstep.RunIDEQ(payload.RunID)).
			Exec(ctx); err != nil {
			return "", fmt.Errorf("failed to delete steps: %w", err)
		}

		upd := tx.AgentRun.UpdateOneID(payload.RunID).
			SetAgentName(payload.AgentName).
			SetAgentVersion(payload.AgentVersion).
			SetModel(payload.Model).
			SetEnvironment(payload.Environment).
			SetStatus(agentrun.Status(payload.Status)).
			SetStartedAt(payload.StartedAt).
			SetEndedAt(payload.EndedAt).
			SetCorrelationIds(payload.CorrelationIDs).
			SetCost(costMap(payload.Cost))
		if payload.ErrorType != nil {
			upd.SetErrorType(*payload.ErrorType)
		} else {
			upd.ClearErrorType()
		}
		if payload.ErrorMessage != nil {
			upd.SetErrorMessage(*payload.ErrorMessage)
		} else {
			upd.ClearErrorMessage()
		}
		if payload.TraceID != nil {
			upd.SetTraceID(*payload.TraceID)
		} else {
			upd.ClearTraceID()
		}
		if _, err := upd.Save(ctx); err != nil {
			return "", fmt.Errorf("failed to update run: %w", err)
		}
	} else {
		if _, err := tx.AgentRun.Create().
			SetID(payload.RunID).
			SetAgentName(payload.AgentName).
			SetAgentVersion(payload.AgentVersion).
			SetModel(payload.Model).
			SetEnvironment(payload.Environment).
			SetStatus(agentrun.Status(payload.Status)).
			SetStartedAt(payload.StartedAt).
			SetEndedAt(payload.EndedAt).
			SetNillableErrorType(payload.ErrorType).
			SetNillableErrorMessage(payload.ErrorMessage).
			SetNillableTraceID(payload.TraceID).
			SetCorrelationIds(payload.CorrelationIDs).
			SetCost(costMap(payload.Cost)).
			Save(ctx); err != nil {
			return "", fmt.Errorf("failed to create run: %w", err)
		}
	}

	// Insert children: steps and tool calls before guardrail events, which
	// may reference either.
	if len(payload.Steps) > 0 {
		builders := make([]*ent.AgentStepCreate, 0, len(payload.Steps))
		for _, step := range payload.Steps {
			builders = append(builders, tx.AgentStep.Create().
				SetID(step.StepID).
				SetRunID(payload.RunID).
				SetName(step.Name).
				SetStatus(agentstep.Status(step.Status)).
				SetStartedAt(step.StartedAt).
				SetEndedAt(step.EndedAt).
				SetLatencyMs(step.LatencyMs).
				SetRetries(step.Retries).
				SetInputSummary(step.InputSummary).
				SetOutputSummary(step.OutputSummary))
		}
		if err := tx.AgentStep.CreateBulk(builders...).Exec(ctx); err != nil {
			return "", fmt.Errorf("failed to insert steps: %w", err)
		}
	}
	if len(payload.ToolCalls) > 0 {
		builders := make([]*ent.ToolCallCreate, 0, len(payload.ToolCalls))
		for _, tc := range payload.ToolCalls {
			builders = append(builders, tx.ToolCall.Create().
				SetID(tc.CallID).
				SetRunID(payload.RunID).
				SetStepID(tc.StepID).
				SetToolName(tc.ToolName).
				SetStatus(toolcall.Status(tc.Status)).
				SetArgsJSON(tc.ArgsJSON).
				SetArgsHash(tc.ArgsHash).
				SetResultSummary(tc.ResultSummary).
				SetNillableErrorClass(tc.ErrorClass).
				SetNillableErrorMessage(tc.ErrorMessage).
				SetNillableStatusCode(tc.StatusCode).
				SetLatencyMs(tc.LatencyMs).
				SetRetries(tc.Retries))
		}
		if err := tx.ToolCall.CreateBulk(builders...).Exec(ctx); err != nil {
			return "", fmt.Errorf("failed to insert tool calls: %w", err)
		}
	}
	if len(payload.GuardrailEvents) > 0 {
		builders := make([]*ent.GuardrailEventCreate, 0, len(payload.GuardrailEvents))
		for _, ev := range payload.GuardrailEvents {
			builders = append(builders, tx.GuardrailEvent.Create().
				SetID(ev.EventID).
				SetRunID(payload.RunID).
				SetStepID(ev.StepID).
				SetCallID(ev.CallID).
				SetType(guardrailevent.Type(ev.Type)).
				SetMessage(ev.Message).
				SetCreatedAt(ev.CreatedAt))
		}
		if err := tx.GuardrailEvent.CreateBulk(builders...).Exec(ctx); err != nil {
			return "", fmt.Errorf("failed to insert guardrail events: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit transaction: %w", err)
	}
	committed = true

	s.logger.Info("Agent run ingested",
		"run_id", payload.RunID,
		"agent_name", payload.AgentName,
		"status", payload.Status,
		"steps", len(payload.Steps),
		"tool_calls", len(payload.ToolCalls),
		"guardrail_events", len(payload.GuardrailEvents))
	return payload.RunID, nil
}

// GetRunSummary returns the compact view of a run with child counts.
func (s *IngestService) GetRunSummary(ctx context.Context, runID string) (*models.RunSummary, error) {
	run, err := s.client.AgentRun.Get(ctx, runID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("agent run %s: %w", runID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get run: %w", err)
	}

	stepCount, err := s.client.AgentStep.Query().
		Where(agentstep.RunIDEQ(runID)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count steps: %w", err)
	}
	toolCallCount, err := s.client.ToolCall.Query().
		Where(toolcall.RunIDEQ(runID)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count tool calls: %w", err)
	}
	guardrailCount, err := s.client.GuardrailEvent.Query().
		Where(guardrailevent.RunIDEQ(runID)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count guardrail events: %w", err)
	}

	return &models.RunSummary{
		RunID:               run.ID,
		AgentName:           run.AgentName,
		Status:              string(run.Status),
		StartedAt:           run.StartedAt,
		EndedAt:             run.EndedAt,
		StepCount:           stepCount,
		ToolCallCount:       toolCallCount,
		GuardrailEventCount: guardrailCount,
	}, nil
}

// GetTimeline returns all events of a run sorted by timestamp ascending.
// Tool calls inherit the started_at of their owning step when it resolves;
// dangling step references fall back to the current time.
func (s *IngestService) GetTimeline(ctx context.Context, runID string) ([]models.TimelineEvent, error) {
	exists, err := s.client.AgentRun.Query().
		Where(agentrun.IDEQ(runID)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check run: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("agent run %s: %w", runID, ErrNotFound)
	}

	steps, err := s.client.AgentStep.Query().
		Where(agentstep.RunIDEQ(runID)).
		Order(ent.Asc(agentstep.FieldStartedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query steps: %w", err)
	}
	toolCalls, err := s.client.ToolCall.Query().
		Where(toolcall.RunIDEQ(runID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query tool calls: %w", err)
	}
	guardrails, err := s.client.GuardrailEvent.Query().
		Where(guardrailevent.RunIDEQ(runID)).
		Order(ent.Asc(guardrailevent.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query guardrail events: %w", err)
	}

	stepStart := make(map[string]time.Time, len(steps))
	events := make([]models.TimelineEvent, 0, len(steps)+len(toolCalls)+len(guardrails))
	for _, step := range steps {
		stepStart[step.ID] = step.StartedAt
		events = append(events, models.TimelineEvent{
			Kind:      "step",
			ID:        step.ID,
			Name:      step.Name,
			Status:    string(step.Status),
			Timestamp: step.StartedAt,
			LatencyMs: step.LatencyMs,
		})
	}
	for _, tc := range toolCalls {
		ts, ok := stepStart[tc.StepID]
		if !ok {
			ts = time.Now()
		}
		events = append(events, models.TimelineEvent{
			Kind:      "tool_call",
			ID:        tc.ID,
			Name:      tc.ToolName,
			Status:    string(tc.Status),
			Timestamp: ts,
			LatencyMs: tc.LatencyMs,
		})
	}
	for _, ev := range guardrails {
		events = append(events, models.TimelineEvent{
			Kind:      "guardrail",
			ID:        ev.ID,
			Name:      string(ev.Type),
			Timestamp: ev.CreatedAt,
		})
	}

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Timestamp.Before(events[j].Timestamp)
	})
	return events, nil
}

// MetricsOverview aggregates run and tool-call failures over a recent
// window. Hours is clamped to [1, 168].
func (s *IngestService) MetricsOverview(ctx context.Context, hours int) (*models.MetricsOverview, error) {
	if hours < 1 {
		hours = 1
	}
	if hours > 168 {
		hours = 168
	}
	since := time.Now().Add(-time.Duration(hours) * time.Hour)

	runs, err := s.client.AgentRun.Query().
		Where(agentrun.CreatedAtGTE(since)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	totalRuns := len(runs)
	totalCost := 0.0
	runsByStatus := make(map[string]int, 2)
	for _, run := range runs {
		runsByStatus[string(run.Status)]++
		if raw, ok := run.Cost["total_cost_usd"]; ok {
			if cost, ok := raw.(float64); ok {
				totalCost += cost
			}
		}
	}

	var toolCounts []struct {
		ToolName string `json:"tool_name"`
		Count    int    `json:"count"`
	}
	if err := s.client.ToolCall.Query().
		Where(
			toolcall.StatusEQ(toolcall.StatusFailure),
			toolcall.HasRunWith(agentrun.CreatedAtGTE(since)),
		).
		GroupBy(toolcall.FieldToolName).
		Aggregate(ent.Count()).
		Scan(ctx, &toolCounts); err != nil {
		return nil, fmt.Errorf("failed to group tool failures: %w", err)
	}
	sort.SliceStable(toolCounts, func(i, j int) bool {
		return toolCounts[i].Count > toolCounts[j].Count
	})
	if len(toolCounts) > 5 {
		toolCounts = toolCounts[:5]
	}
	topFailing := make([]models.ToolFailureCount, 0, len(toolCounts))
	for _, tc := range toolCounts {
		topFailing = append(topFailing, models.ToolFailureCount{
			ToolName: tc.ToolName,
			Failures: tc.Count,
		})
	}

	latencies, err := s.client.AgentStep.Query().
		Where(agentstep.HasRunWith(agentrun.CreatedAtGTE(since))).
		Select(agentstep.FieldLatencyMs).
		Ints(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query step latencies: %w", err)
	}

	failedRuns := runsByStatus[string(agentrun.StatusFailure)]
	overview := &models.MetricsOverview{
		WindowHours:      hours,
		TotalRuns:        totalRuns,
		FailedRuns:       failedRuns,
		RunsByStatus:     runsByStatus,
		TopFailingTools:  topFailing,
		P95StepLatencyMs: percentile(latencies, 95),
		TotalCostUSD:     totalCost,
	}
	if totalRuns > 0 {
		overview.FailureRate = float64(failedRuns) / float64(totalRuns)
	}
	return overview, nil
}

// percentile returns the nearest-rank p-th percentile of values, 0 when
// empty.
func percentile(values []int, p int) int {
	if len(values) == 0 {
		return 0
	}
	sorted := make([]int, len(values))
	copy(sorted, values)
	sort.Ints(sorted)
	rank := (len(sorted)*p + 99) / 100
	if rank < 1 {
		rank = 1
	}
	return sorted[rank-1]
}

func costMap(cost models.CostSummary) map[string]interface{} {
	m := map[string]interface{}{
		"tokens_prompt":     cost.TokensPrompt,
		"tokens_completion": cost.TokensCompletion,
	}
	if cost.TotalCostUSD != nil {
		m["total_cost_usd"] = *cost.TotalCostUSD
	}
	return m
}
