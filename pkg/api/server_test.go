package api

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentops/agentops/pkg/config"
	"github.com/agentops/agentops/pkg/models"
	"github.com/agentops/agentops/pkg/progress"
	"github.com/agentops/agentops/pkg/queue"
	"github.com/agentops/agentops/pkg/rca"
	"github.com/agentops/agentops/pkg/services"
	testdb "github.com/agentops/agentops/test/database"
)

type apiFixture struct {
	server   *httptest.Server
	settings *config.Settings
}

// newAPIFixture spins up the full service against a test database and an
// in-memory Redis: HTTP API plus a running worker pool.
func newAPIFixture(t *testing.T, ingestSecret string) *apiFixture {
	db := testdb.NewTestClient(t)
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	settings := &config.Settings{
		AppEnv:          "test",
		AppIngestSecret: ingestSecret,
		CORSOrigins:     []string{"*"},
		HTTPPort:        "0",
		Queue: &config.QueueConfig{
			WorkerCount:             1,
			PollInterval:            20 * time.Millisecond,
			PollIntervalJitter:      5 * time.Millisecond,
			GracefulShutdownTimeout: 5 * time.Second,
		},
	}

	publisher := progress.NewPublisher(rdb)
	engine := rca.NewNarrativeEngine("")
	store := services.NewEvidenceStore(db.Client)
	orchestrator := rca.NewOrchestrator(db.Client, store, publisher, engine)

	pool := queue.NewWorkerPool("test-pod", db.Client, settings.Queue, orchestrator)
	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, pool.Start(ctx))
	t.Cleanup(func() {
		cancel()
		pool.Stop()
	})

	ingest := services.NewIngestService(db.Client)
	rcaService := services.NewRCAService(db.Client)
	server := NewServer(settings, db, ingest, rcaService, publisher, pool)

	ts := httptest.NewServer(server.http.Handler)
	t.Cleanup(ts.Close)

	return &apiFixture{server: ts, settings: settings}
}

func (f *apiFixture) postJSON(t *testing.T, path string, body interface{}, headers map[string]string) *http.Response {
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPost, f.server.URL+path, bytes.NewReader(raw))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp, err := f.server.Client().Do(req)
	require.NoError(t, err)
	return resp
}

func (f *apiFixture) ingestRun(t *testing.T, runID string) {
	resp := f.postJSON(t, "/agent-runs", failurePayload(runID), nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func failurePayload(runID string) *models.AgentRunPayload {
	started := time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)
	return &models.AgentRunPayload{
		RunID:        runID,
		AgentName:    "support-agent",
		AgentVersion: "1.4.2",
		Model:        "gpt-4o",
		Environment:  "prod",
		StartedAt:    started,
		EndedAt:      started.Add(20 * time.Second),
		Status:       "failure",
		Steps: []models.StepPayload{
			{
				StepID:        runID + "-step-1",
				Name:          "call_tool",
				Status:        "failure",
				StartedAt:     started,
				EndedAt:       started.Add(5 * time.Second),
				OutputSummary: "tool rejected the request",
			},
		},
		ToolCalls: []models.ToolCallPayload{
			{
				CallID:       runID + "-call-1",
				StepID:       runID + "-step-1",
				ToolName:     "jira_api",
				Status:       "failure",
				ErrorClass:   ptr("ValidationError"),
				ErrorMessage: ptr("Missing required field: user_id"),
			},
		},
	}
}

func ptr(s string) *string { return &s }

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	defer resp.Body.Close()
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func TestIngestAndReadBack(t *testing.T) {
	f := newAPIFixture(t, "")

	f.ingestRun(t, "api-run-1")

	resp, err := f.server.Client().Get(f.server.URL + "/agent-runs/api-run-1")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "api-run-1", body["run_id"])
	assert.Equal(t, "support-agent", body["agent_name"])
	assert.Equal(t, float64(1), body["step_count"])
	assert.Equal(t, float64(1), body["tool_call_count"])
}

func TestIngestSecretEnforced(t *testing.T) {
	f := newAPIFixture(t, "sekret")

	resp := f.postJSON(t, "/agent-runs", failurePayload("secret-run"), nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = f.postJSON(t, "/agent-runs", failurePayload("secret-run"),
		map[string]string{"X-Ingest-Secret": "wrong"})
	resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = f.postJSON(t, "/agent-runs", failurePayload("secret-run"),
		map[string]string{"X-Ingest-Secret": "sekret"})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestIngestInvalidBody(t *testing.T) {
	f := newAPIFixture(t, "")

	req, err := http.NewRequest(http.MethodPost, f.server.URL+"/agent-runs",
		strings.NewReader("{not json"))
	require.NoError(t, err)
	resp, err := f.server.Client().Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestIngestInvalidPayload(t *testing.T) {
	f := newAPIFixture(t, "")

	payload := failurePayload("bad-env")
	payload.Environment = "qa"
	resp := f.postJSON(t, "/agent-runs", payload, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetAgentRunNotFound(t *testing.T) {
	f := newAPIFixture(t, "")

	resp, err := f.server.Client().Get(f.server.URL + "/agent-runs/missing")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestTimelineEndpoint(t *testing.T) {
	f := newAPIFixture(t, "")
	f.ingestRun(t, "timeline-run")

	resp, err := f.server.Client().Get(f.server.URL + "/agent-runs/timeline-run/timeline")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	events, ok := body["events"].([]interface{})
	require.True(t, ok)
	assert.Len(t, events, 2)
}

func TestCreateRCARunIdempotentOverHTTP(t *testing.T) {
	f := newAPIFixture(t, "")
	f.ingestRun(t, "rca-http-run")

	first := decodeBody(t, f.postJSON(t, "/agent-runs/rca-http-run/rca-runs", nil, nil))
	second := decodeBody(t, f.postJSON(t, "/agent-runs/rca-http-run/rca-runs", nil, nil))
	assert.Equal(t, first["rca_run_id"], second["rca_run_id"])
}

func TestCreateRCARunUnknownRun(t *testing.T) {
	f := newAPIFixture(t, "")

	resp := f.postJSON(t, "/agent-runs/missing/rca-runs", nil, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRCARunCompletesAndEmbedsReport(t *testing.T) {
	f := newAPIFixture(t, "")
	f.ingestRun(t, "rca-complete-run")

	created := decodeBody(t, f.postJSON(t, "/agent-runs/rca-complete-run/rca-runs", nil, nil))
	rcaRunID, ok := created["rca_run_id"].(string)
	require.True(t, ok)

	// The worker pool picks the job up asynchronously.
	require.Eventually(t, func() bool {
		resp, err := f.server.Client().Get(f.server.URL + "/agent-runs/rca-runs/" + rcaRunID)
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		var body map[string]interface{}
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			return false
		}
		return body["status"] == "done"
	}, 10*time.Second, 50*time.Millisecond, "RCA run never completed")

	resp, err := f.server.Client().Get(f.server.URL + "/agent-runs/rca-runs/" + rcaRunID)
	require.NoError(t, err)
	body := decodeBody(t, resp)
	report, ok := body["report"].(map[string]interface{})
	require.True(t, ok, "done RCA run must embed its report")
	assert.Equal(t, "tool_schema_mismatch", report["category"])
}

func TestStreamTerminatesOnDone(t *testing.T) {
	f := newAPIFixture(t, "")
	f.ingestRun(t, "stream-run")

	created := decodeBody(t, f.postJSON(t, "/agent-runs/stream-run/rca-runs", nil, nil))
	rcaRunID := created["rca_run_id"].(string)

	resp, err := f.server.Client().Get(f.server.URL + "/rca-runs/" + rcaRunID + "/stream")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	var last progress.Event
	terminals := 0
	scanner := bufio.NewScanner(resp.Body)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, "data: ") {
			continue
		}
		require.NoError(t, json.Unmarshal([]byte(strings.TrimPrefix(line, "data: ")), &last))
		if last.Status == "done" || last.Status == "error" {
			terminals++
		}
	}
	// The server closed the stream after exactly one terminal event.
	assert.Equal(t, 1, terminals)
	assert.Equal(t, "done", last.Status)
	assert.Equal(t, 100, last.Pct)
}

func TestStreamUnknownRCARun(t *testing.T) {
	f := newAPIFixture(t, "")

	resp, err := f.server.Client().Get(f.server.URL + "/rca-runs/missing/stream")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestMetricsOverviewEndpoint(t *testing.T) {
	f := newAPIFixture(t, "")
	f.ingestRun(t, "metrics-run")

	resp, err := f.server.Client().Get(f.server.URL + "/metrics/overview?hours=48")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, float64(48), body["window_hours"])
	assert.Equal(t, float64(1), body["total_runs"])

	resp, err = f.server.Client().Get(f.server.URL + "/metrics/overview?hours=nope")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCORSPreflight(t *testing.T) {
	f := newAPIFixture(t, "")

	req, err := http.NewRequest(http.MethodOptions, f.server.URL+"/agent-runs", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "https://dashboard.example.com")

	resp, err := f.server.Client().Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestHealthEndpoint(t *testing.T) {
	f := newAPIFixture(t, "")

	resp, err := f.server.Client().Get(f.server.URL + "/health")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "healthy", body["status"])
}

func TestSecurityHeaders(t *testing.T) {
	f := newAPIFixture(t, "")

	resp, err := f.server.Client().Get(f.server.URL + "/")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, "DENY", resp.Header.Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", resp.Header.Get("X-Content-Type-Options"))
}
