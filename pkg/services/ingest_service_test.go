package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentops/agentops/ent/agentstep"
	"github.com/agentops/agentops/ent/guardrailevent"
	"github.com/agentops/agentops/ent/toolcall"
	"github.com/agentops/agentops/pkg/models"
	"github.com/agentops/agentops/pkg/services"
	testdb "github.com/agentops/agentops/test/database"
)

func telemetryPayload(runID string) *models.AgentRunPayload {
	started := time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)
	return &models.AgentRunPayload{
		RunID:        runID,
		AgentName:    "support-agent",
		AgentVersion: "1.4.2",
		Model:        "gpt-4o",
		Environment:  "prod",
		StartedAt:    started,
		EndedAt:      started.Add(45 * time.Second),
		Status:       "failure",
		ErrorType:    strPtr("ToolError"),
		ErrorMessage: strPtr("tool call failed"),
		Steps: []models.StepPayload{
			{
				StepID:        runID + "-step-1",
				Name:          "plan",
				Status:        "success",
				StartedAt:     started,
				EndedAt:       started.Add(2 * time.Second),
				OutputSummary: "made a plan",
			},
			{
				StepID:        runID + "-step-2",
				Name:          "call_tool",
				Status:        "failure",
				StartedAt:     started.Add(2 * time.Second),
				EndedAt:       started.Add(40 * time.Second),
				Retries:       1,
				OutputSummary: "tool call failed",
			},
		},
		ToolCalls: []models.ToolCallPayload{
			{
				CallID:       runID + "-call-1",
				StepID:       runID + "-step-2",
				ToolName:     "search_api",
				Status:       "failure",
				ErrorClass:   strPtr("APIError"),
				ErrorMessage: strPtr("boom"),
				StatusCode:   intPtr(500),
				LatencyMs:    900,
			},
		},
		GuardrailEvents: []models.GuardrailEventPayload{
			{
				EventID:   runID + "-guard-1",
				Type:      "policy_block",
				Message:   "blocked outbound request",
				StepID:    runID + "-step-2",
				CreatedAt: started.Add(3 * time.Second),
			},
		},
	}
}

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

func TestUpsertAgentRunCreates(t *testing.T) {
	db := testdb.NewTestClient(t)
	svc := services.NewIngestService(db.Client)
	ctx := context.Background()

	runID, err := svc.UpsertAgentRun(ctx, telemetryPayload("run-create"))
	require.NoError(t, err)
	assert.Equal(t, "run-create", runID)

	run, err := db.Client.AgentRun.Get(ctx, runID)
	require.NoError(t, err)
	assert.Equal(t, "support-agent", run.AgentName)
	require.NotNil(t, run.ErrorType)
	assert.Equal(t, "ToolError", *run.ErrorType)

	steps, err := run.QuerySteps().All(ctx)
	require.NoError(t, err)
	assert.Len(t, steps, 2)
}

func TestUpsertAgentRunFullReplace(t *testing.T) {
	db := testdb.NewTestClient(t)
	svc := services.NewIngestService(db.Client)
	ctx := context.Background()

	_, err := svc.UpsertAgentRun(ctx, telemetryPayload("run-replace"))
	require.NoError(t, err)

	// Re-ingest: different scalars, one new step only, no tool calls, no
	// guardrails, cleared error fields.
	replacement := telemetryPayload("run-replace")
	replacement.Status = "success"
	replacement.ErrorType = nil
	replacement.ErrorMessage = nil
	replacement.Steps = replacement.Steps[:1]
	replacement.Steps[0].StepID = "run-replace-step-new"
	replacement.ToolCalls = nil
	replacement.GuardrailEvents = nil

	_, err = svc.UpsertAgentRun(ctx, replacement)
	require.NoError(t, err)

	run, err := db.Client.AgentRun.Get(ctx, "run-replace")
	require.NoError(t, err)
	assert.Equal(t, "success", string(run.Status))
	assert.Nil(t, run.ErrorType, "error_type must be cleared on replace")

	steps, err := db.Client.AgentStep.Query().
		Where(agentstep.RunIDEQ("run-replace")).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, steps, 1, "old children must be deleted, not merged")
	assert.Equal(t, "run-replace-step-new", steps[0].ID)

	toolCalls, err := db.Client.ToolCall.Query().
		Where(toolcall.RunIDEQ("run-replace")).
		Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, toolCalls)

	guardrails, err := db.Client.GuardrailEvent.Query().
		Where(guardrailevent.RunIDEQ("run-replace")).
		Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, guardrails)
}

func TestUpsertAgentRunGeneratesRunID(t *testing.T) {
	db := testdb.NewTestClient(t)
	svc := services.NewIngestService(db.Client)

	payload := telemetryPayload("")
	payload.RunID = ""
	runID, err := svc.UpsertAgentRun(context.Background(), payload)
	require.NoError(t, err)
	assert.NotEmpty(t, runID)
}

func TestUpsertAgentRunRejectsInvalidPayload(t *testing.T) {
	db := testdb.NewTestClient(t)
	svc := services.NewIngestService(db.Client)

	payload := telemetryPayload("run-invalid")
	payload.Environment = "qa"

	_, err := svc.UpsertAgentRun(context.Background(), payload)
	var validErr *services.ValidationError
	require.ErrorAs(t, err, &validErr)
}

func TestGetRunSummary(t *testing.T) {
	db := testdb.NewTestClient(t)
	svc := services.NewIngestService(db.Client)
	ctx := context.Background()

	_, err := svc.UpsertAgentRun(ctx, telemetryPayload("run-summary"))
	require.NoError(t, err)

	summary, err := svc.GetRunSummary(ctx, "run-summary")
	require.NoError(t, err)
	assert.Equal(t, "support-agent", summary.AgentName)
	assert.Equal(t, "failure", summary.Status)
	assert.Equal(t, 2, summary.StepCount)
	assert.Equal(t, 1, summary.ToolCallCount)
	assert.Equal(t, 1, summary.GuardrailEventCount)
}

func TestGetRunSummaryNotFound(t *testing.T) {
	db := testdb.NewTestClient(t)
	svc := services.NewIngestService(db.Client)

	_, err := svc.GetRunSummary(context.Background(), "missing")
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestGetTimeline(t *testing.T) {
	db := testdb.NewTestClient(t)
	svc := services.NewIngestService(db.Client)
	ctx := context.Background()

	_, err := svc.UpsertAgentRun(ctx, telemetryPayload("run-timeline"))
	require.NoError(t, err)

	events, err := svc.GetTimeline(ctx, "run-timeline")
	require.NoError(t, err)
	require.Len(t, events, 4)

	// Sorted ascending; the tool call inherits its owning step's started_at.
	for i := 1; i < len(events); i++ {
		assert.False(t, events[i].Timestamp.Before(events[i-1].Timestamp),
			"events must be sorted by timestamp")
	}
	var toolEvent *models.TimelineEvent
	for i := range events {
		if events[i].Kind == "tool_call" {
			toolEvent = &events[i]
		}
	}
	require.NotNil(t, toolEvent)
	assert.Equal(t, "search_api", toolEvent.Name)
}

func TestGetTimelineNotFound(t *testing.T) {
	db := testdb.NewTestClient(t)
	svc := services.NewIngestService(db.Client)

	_, err := svc.GetTimeline(context.Background(), "missing")
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestMetricsOverview(t *testing.T) {
	db := testdb.NewTestClient(t)
	svc := services.NewIngestService(db.Client)
	ctx := context.Background()

	_, err := svc.UpsertAgentRun(ctx, telemetryPayload("run-metrics-1"))
	require.NoError(t, err)

	success := telemetryPayload("run-metrics-2")
	success.Status = "success"
	success.ErrorType = nil
	success.ErrorMessage = nil
	success.ToolCalls = nil
	success.Steps[1].Status = "success"
	cost := 0.42
	success.Cost.TotalCostUSD = &cost
	_, err = svc.UpsertAgentRun(ctx, success)
	require.NoError(t, err)

	overview, err := svc.MetricsOverview(ctx, 24)
	require.NoError(t, err)
	assert.Equal(t, 24, overview.WindowHours)
	assert.Equal(t, 2, overview.TotalRuns)
	assert.Equal(t, 1, overview.FailedRuns)
	assert.InDelta(t, 0.5, overview.FailureRate, 0.001)
	require.Len(t, overview.TopFailingTools, 1)
	assert.Equal(t, "search_api", overview.TopFailingTools[0].ToolName)
	// Step latencies across both runs: 2000, 38000, 2000, 38000.
	assert.Equal(t, 38000, overview.P95StepLatencyMs)
	assert.InDelta(t, 0.42, overview.TotalCostUSD, 0.001)
}

func TestMetricsOverviewClampsHours(t *testing.T) {
	db := testdb.NewTestClient(t)
	svc := services.NewIngestService(db.Client)

	overview, err := svc.MetricsOverview(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, 1, overview.WindowHours)

	overview, err = svc.MetricsOverview(context.Background(), 1000)
	require.NoError(t, err)
	assert.Equal(t, 168, overview.WindowHours)
}
