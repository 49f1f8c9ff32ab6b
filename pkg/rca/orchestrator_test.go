package rca

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentops/agentops/ent"
	"github.com/agentops/agentops/ent/rcareport"
	"github.com/agentops/agentops/ent/rcarun"
	"github.com/agentops/agentops/pkg/models"
	"github.com/agentops/agentops/pkg/progress"
	"github.com/agentops/agentops/pkg/services"
	testdb "github.com/agentops/agentops/test/database"
)

type orchestratorFixture struct {
	client       *ent.Client
	orchestrator *Orchestrator
	publisher    *progress.Publisher
	redis        *miniredis.Miniredis
	ingest       *services.IngestService
}

func newOrchestratorFixture(t *testing.T) *orchestratorFixture {
	db := testdb.NewTestClient(t)
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	publisher := progress.NewPublisher(rdb)
	engine := NewNarrativeEngine("")
	store := services.NewEvidenceStore(db.Client)

	return &orchestratorFixture{
		client:       db.Client,
		orchestrator: NewOrchestrator(db.Client, store, publisher, engine),
		publisher:    publisher,
		redis:        mr,
		ingest:       services.NewIngestService(db.Client),
	}
}

func (f *orchestratorFixture) seedRun(t *testing.T, payload *models.AgentRunPayload) string {
	runID, err := f.ingest.UpsertAgentRun(context.Background(), payload)
	require.NoError(t, err)
	return runID
}

func (f *orchestratorFixture) createRCARun(t *testing.T, rcaRunID, runID string) {
	_, err := f.client.RCARun.Create().
		SetID(rcaRunID).
		SetRunID(runID).
		SetMessage("RCA job queued").
		Save(context.Background())
	require.NoError(t, err)
}

func (f *orchestratorFixture) loadReport(t *testing.T, rcaRunID string) *models.Report {
	row, err := f.client.RCAReport.Query().
		Where(rcareport.RcaRunIDEQ(rcaRunID)).
		Only(context.Background())
	require.NoError(t, err)
	report, err := services.DecodeReport(row.ReportJSON)
	require.NoError(t, err)
	return report
}

func sufficientFailurePayload(runID string) *models.AgentRunPayload {
	started := time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)
	return &models.AgentRunPayload{
		RunID:        runID,
		AgentName:    "support-agent",
		AgentVersion: "1.4.2",
		Model:        "gpt-4o",
		Environment:  "prod",
		StartedAt:    started,
		EndedAt:      started.Add(30 * time.Second),
		Status:       "failure",
		ErrorType:    strPtr("ToolError"),
		Steps: []models.StepPayload{
			{
				StepID:        runID + "-step-1",
				Name:          "call_tool",
				Status:        "failure",
				StartedAt:     started,
				EndedAt:       started.Add(10 * time.Second),
				Retries:       1,
				OutputSummary: "tool call rejected",
			},
		},
		ToolCalls: []models.ToolCallPayload{
			{
				CallID:       runID + "-call-1",
				StepID:       runID + "-step-1",
				ToolName:     "jira_api",
				Status:       "failure",
				ErrorClass:   strPtr("ValidationError"),
				ErrorMessage: strPtr("Missing required field: user_id"),
				LatencyMs:    450,
			},
		},
		GuardrailEvents: []models.GuardrailEventPayload{
			{
				EventID:   runID + "-guard-1",
				Type:      "schema_validation",
				Message:   "tool output failed schema validation",
				CreatedAt: started.Add(11 * time.Second),
			},
		},
	}
}

func insufficientFailurePayload(runID string) *models.AgentRunPayload {
	started := time.Date(2026, 8, 20, 11, 0, 0, 0, time.UTC)
	return &models.AgentRunPayload{
		RunID:        runID,
		AgentName:    "support-agent",
		AgentVersion: "1.4.2",
		Model:        "gpt-4o",
		Environment:  "prod",
		StartedAt:    started,
		EndedAt:      started.Add(5 * time.Second),
		Status:       "failure",
		ErrorMessage: strPtr("Internal Server Error"),
		Steps: []models.StepPayload{
			{
				StepID:        runID + "-step-1",
				Name:          "plan",
				Status:        "success",
				StartedAt:     started,
				EndedAt:       started.Add(time.Second),
				OutputSummary: "planned the work without issues",
			},
		},
	}
}

func TestProcessRCARunSufficient(t *testing.T) {
	f := newOrchestratorFixture(t)
	ctx := context.Background()

	runID := f.seedRun(t, sufficientFailurePayload("test-sufficient-001"))
	f.createRCARun(t, "rca-suf", runID)

	f.orchestrator.ProcessRCARun(ctx, "rca-suf")

	row, err := f.client.RCARun.Get(ctx, "rca-suf")
	require.NoError(t, err)
	assert.Equal(t, rcarun.StatusDone, row.Status)
	assert.Equal(t, "completed", row.Step)
	assert.Equal(t, 100, row.Pct)
	assert.NotNil(t, row.StartedAt)
	assert.NotNil(t, row.EndedAt)

	report := f.loadReport(t, "rca-suf")
	assert.Equal(t, models.CategoryToolSchemaMismatch, report.Category)
	assert.False(t, report.InsufficientEvidence)
	assert.Nil(t, report.InsufficientReason)
	assert.NotEmpty(t, report.EvidenceIndex)
	require.Len(t, report.Hypotheses, 1)
	assert.NotEmpty(t, report.ActionItems)

	// Every referenced evidence ID must exist in the evidence index.
	index := make(map[string]bool)
	for _, ev := range report.EvidenceIndex {
		index[ev.EvidenceID] = true
	}
	for _, id := range report.Hypotheses[0].EvidenceIDs {
		assert.True(t, index[id], "dangling evidence reference %s", id)
	}

	require.NotNil(t, report.JiraFields)
	assert.Contains(t, report.JiraFields.JiraSummary, "Tool Schema Mismatch")
	assert.Contains(t, report.JiraFields.JiraSummary, "Run test-suf")

	// Terminal snapshot in Redis.
	assert.Equal(t, "done", f.redis.HGet("rca:rca-suf:status", "status"))
	assert.Equal(t, "100", f.redis.HGet("rca:rca-suf:status", "pct"))
}

func TestProcessRCARunInsufficient(t *testing.T) {
	f := newOrchestratorFixture(t)
	ctx := context.Background()

	runID := f.seedRun(t, insufficientFailurePayload("test-insufficient-001"))
	f.createRCARun(t, "rca-insuf", runID)

	f.orchestrator.ProcessRCARun(ctx, "rca-insuf")

	row, err := f.client.RCARun.Get(ctx, "rca-insuf")
	require.NoError(t, err)
	assert.Equal(t, rcarun.StatusDone, row.Status)

	report := f.loadReport(t, "rca-insuf")
	assert.True(t, report.InsufficientEvidence)
	require.NotNil(t, report.InsufficientReason)
	assert.Equal(t, InsufficientReason, *report.InsufficientReason)
	assert.Empty(t, report.Hypotheses)

	var monitoring *models.ActionItem
	for i := range report.ActionItems {
		if report.ActionItems[i].Type == "monitoring" {
			monitoring = &report.ActionItems[i]
		}
	}
	require.NotNil(t, monitoring)
	assert.Equal(t, "Enable detailed tracing", monitoring.Title)
}

func TestProcessRCARunProgressSequence(t *testing.T) {
	f := newOrchestratorFixture(t)
	ctx := context.Background()

	runID := f.seedRun(t, sufficientFailurePayload("test-progress-001"))
	f.createRCARun(t, "rca-prog", runID)

	sub := f.publisher.Subscribe(ctx, "rca-prog")
	defer func() { _ = sub.Close() }()
	_, err := sub.Receive(ctx)
	require.NoError(t, err)

	f.orchestrator.ProcessRCARun(ctx, "rca-prog")

	var events []progress.Event
	deadline := time.After(3 * time.Second)
	for {
		var done bool
		select {
		case msg := <-sub.Channel():
			var event progress.Event
			require.NoError(t, json.Unmarshal([]byte(msg.Payload), &event))
			events = append(events, event)
			done = event.Status == "done" || event.Status == "error"
		case <-deadline:
			t.Fatal("terminal progress event never arrived")
		}
		if done {
			break
		}
	}

	require.GreaterOrEqual(t, len(events), 5)
	last := 0
	for _, event := range events {
		assert.GreaterOrEqual(t, event.Pct, last, "pct must be monotonically non-decreasing")
		last = event.Pct
	}
	assert.Equal(t, "done", events[len(events)-1].Status)
	assert.Equal(t, 100, events[len(events)-1].Pct)
}

func TestProcessRCARunMissingRowIsSilent(t *testing.T) {
	f := newOrchestratorFixture(t)

	// Must not panic or create anything.
	f.orchestrator.ProcessRCARun(context.Background(), "no-such-rca")

	count, err := f.client.RCARun.Query().Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestProcessRCARunDoneShortCircuit(t *testing.T) {
	f := newOrchestratorFixture(t)
	ctx := context.Background()

	runID := f.seedRun(t, sufficientFailurePayload("test-idem-001"))
	f.createRCARun(t, "rca-idem", runID)

	f.orchestrator.ProcessRCARun(ctx, "rca-idem")
	first, err := f.client.RCARun.Get(ctx, "rca-idem")
	require.NoError(t, err)

	// Redelivery of the same job is a no-op.
	f.orchestrator.ProcessRCARun(ctx, "rca-idem")

	second, err := f.client.RCARun.Get(ctx, "rca-idem")
	require.NoError(t, err)
	assert.Equal(t, first.EndedAt.Unix(), second.EndedAt.Unix())

	reports, err := f.client.RCAReport.Query().
		Where(rcareport.RcaRunIDEQ("rca-idem")).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, reports)
}

func TestProcessRCARunRateLimitedCategory(t *testing.T) {
	f := newOrchestratorFixture(t)
	ctx := context.Background()

	payload := sufficientFailurePayload("test-ratelimit-001")
	payload.ToolCalls[0].ErrorClass = strPtr("HTTPError")
	payload.ToolCalls[0].ErrorMessage = strPtr("429 Too Many Requests")
	payload.ToolCalls[0].StatusCode = intPtr(429)
	payload.GuardrailEvents = nil

	runID := f.seedRun(t, payload)
	f.createRCARun(t, "rca-rate", runID)

	f.orchestrator.ProcessRCARun(ctx, "rca-rate")

	report := f.loadReport(t, "rca-rate")
	assert.Equal(t, models.CategoryRateLimited, report.Category)
	require.NotNil(t, report.MetricsSnapshot.TopFailingTool)
	assert.Equal(t, "jira_api", *report.MetricsSnapshot.TopFailingTool)
}
