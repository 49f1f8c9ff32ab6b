package rca

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentops/agentops/ent"
	"github.com/agentops/agentops/ent/agentrun"
	"github.com/agentops/agentops/ent/agentstep"
	"github.com/agentops/agentops/ent/guardrailevent"
	"github.com/agentops/agentops/ent/toolcall"
	"github.com/agentops/agentops/pkg/models"
	"github.com/agentops/agentops/pkg/services"
)

func TestCollectEvidence(t *testing.T) {
	bundle := &services.EvidenceBundle{
		Run: failedRun(),
		Steps: []*ent.AgentStep{
			{ID: "s1", Name: "plan", Status: agentstep.StatusSuccess, OutputSummary: "ok"},
			{ID: "s2", Name: "call_tool", Status: agentstep.StatusFailure, OutputSummary: "tool blew up", LatencyMs: 1200, Retries: 1},
		},
		ToolCalls: []*ent.ToolCall{
			{ID: "c1", ToolName: "search_api", Status: toolcall.StatusSuccess},
			{ID: "c2", ToolName: "jira_api", Status: toolcall.StatusFailure, ErrorMessage: strPtr("boom"), ErrorClass: strPtr("APIError"), StatusCode: intPtr(500), LatencyMs: 900},
		},
		Guardrails: []*ent.GuardrailEvent{
			{ID: "g1", Type: guardrailevent.TypePiiRedaction, Message: "redacted an email address"},
		},
	}

	evidence := CollectEvidence(bundle)
	require.Len(t, evidence, 3)

	assert.Equal(t, "ev_step_s2", evidence[0].EvidenceID)
	assert.Equal(t, models.EvidenceKindStep, evidence[0].Kind)
	assert.Equal(t, "Failed step: call_tool", evidence[0].Title)
	assert.Equal(t, "tool blew up", evidence[0].Snippet)
	assert.Equal(t, 1200, evidence[0].Attributes["latency_ms"])
	assert.Equal(t, 1, evidence[0].Attributes["retries"])

	assert.Equal(t, "ev_tool_c2", evidence[1].EvidenceID)
	assert.Equal(t, models.EvidenceKindToolCall, evidence[1].Kind)
	assert.Equal(t, "boom", evidence[1].Snippet)
	assert.Equal(t, "APIError", evidence[1].Attributes["error_class"])
	assert.Equal(t, 500, evidence[1].Attributes["status_code"])

	// Guardrails contribute evidence regardless of run status.
	assert.Equal(t, "ev_guard_g1", evidence[2].EvidenceID)
	assert.Equal(t, models.EvidenceKindGuardrail, evidence[2].Kind)
	assert.Equal(t, "pii_redaction", evidence[2].Attributes["type"])
}

func TestCollectEvidenceTruncatesSnippets(t *testing.T) {
	long := strings.Repeat("x", 500)
	bundle := &services.EvidenceBundle{
		Run: failedRun(),
		Steps: []*ent.AgentStep{
			{ID: "s1", Name: "work", Status: agentstep.StatusFailure, OutputSummary: long},
		},
	}

	evidence := CollectEvidence(bundle)
	require.Len(t, evidence, 1)
	assert.Len(t, evidence[0].Snippet, 200)
}

func TestCollectEvidenceNilToolCallErrorMessage(t *testing.T) {
	bundle := &services.EvidenceBundle{
		Run: failedRun(),
		ToolCalls: []*ent.ToolCall{
			{ID: "c1", ToolName: "search_api", Status: toolcall.StatusFailure},
		},
	}

	evidence := CollectEvidence(bundle)
	require.Len(t, evidence, 1)
	assert.Equal(t, "", evidence[0].Snippet)
}

func TestInsufficientEvidence(t *testing.T) {
	t.Run("no signals at all", func(t *testing.T) {
		bundle := &services.EvidenceBundle{Run: failedRun()}
		assert.True(t, InsufficientEvidence(bundle, nil))
	})

	t.Run("guardrail alone is sufficient", func(t *testing.T) {
		bundle := &services.EvidenceBundle{
			Run: failedRun(),
			Guardrails: []*ent.GuardrailEvent{
				{ID: "g1", Type: guardrailevent.TypeOther, Message: "note"},
			},
		}
		assert.False(t, InsufficientEvidence(bundle, CollectEvidence(bundle)))
	})

	t.Run("generic internal server error without tool evidence", func(t *testing.T) {
		bundle := &services.EvidenceBundle{
			Run: &ent.AgentRun{
				ID:           "run-1",
				Status:       agentrun.StatusFailure,
				ErrorType:    strPtr("ServerError"),
				ErrorMessage: strPtr("Internal Server Error"),
			},
			Steps: []*ent.AgentStep{
				{ID: "s1", Name: "work", Status: agentstep.StatusSuccess},
			},
		}
		assert.True(t, InsufficientEvidence(bundle, CollectEvidence(bundle)))
	})

	t.Run("internal server error with tool evidence", func(t *testing.T) {
		bundle := &services.EvidenceBundle{
			Run: &ent.AgentRun{
				ID:           "run-1",
				Status:       agentrun.StatusFailure,
				ErrorMessage: strPtr("internal server error"),
			},
			ToolCalls: []*ent.ToolCall{
				{ID: "c1", ToolName: "jira_api", Status: toolcall.StatusFailure, ErrorMessage: strPtr("boom")},
			},
		}
		assert.False(t, InsufficientEvidence(bundle, CollectEvidence(bundle)))
	})
}

func TestBuildHypothesis(t *testing.T) {
	engine := NewNarrativeEngine("")
	evidence := make([]models.EvidenceRef, 0, 7)
	for i := 0; i < 7; i++ {
		evidence = append(evidence, models.EvidenceRef{
			EvidenceID: fmt.Sprintf("ev_tool_c%d", i),
			Kind:       models.EvidenceKindToolCall,
			Snippet:    fmt.Sprintf("snippet %d", i),
		})
	}

	hyp := BuildHypothesis(engine, models.CategoryToolSchemaMismatch, evidence)

	assert.Equal(t, "Tool Schema Mismatch Root Cause", hyp.Title)
	assert.Equal(t, "high", hyp.Confidence)
	assert.Len(t, hyp.EvidenceIDs, 5, "only the first five evidence IDs are referenced")
	assert.Equal(t, "ev_tool_c0", hyp.EvidenceIDs[0])
	assert.Equal(t, verificationSteps, hyp.VerificationSteps)
	assert.Equal(t, "Apply recommended action items below", hyp.Mitigation)
	assert.Contains(t, hyp.Description, "Evidence shows: snippet 0; snippet 1.")
}

func TestBuildHypothesisSingleEvidenceIsMedium(t *testing.T) {
	engine := NewNarrativeEngine("")
	evidence := []models.EvidenceRef{{EvidenceID: "ev_step_s1", Kind: models.EvidenceKindStep}}

	hyp := BuildHypothesis(engine, models.CategoryTimeout, evidence)
	assert.Equal(t, "medium", hyp.Confidence)
}

func TestCompileMetrics(t *testing.T) {
	cost := 0.42
	bundle := &services.EvidenceBundle{
		Run: &ent.AgentRun{
			ID:     "run-1",
			Status: agentrun.StatusFailure,
			Cost:   map[string]interface{}{"total_cost_usd": cost},
		},
		Steps: []*ent.AgentStep{
			{ID: "s1", LatencyMs: 300, Retries: 1},
			{ID: "s2", LatencyMs: 4500, Retries: 2},
		},
		ToolCalls: []*ent.ToolCall{
			{ID: "c1", ToolName: "search_api", Status: toolcall.StatusFailure, Retries: 1},
			{ID: "c2", ToolName: "jira_api", Status: toolcall.StatusFailure},
			{ID: "c3", ToolName: "jira_api", Status: toolcall.StatusFailure},
			{ID: "c4", ToolName: "slack_api", Status: toolcall.StatusSuccess, Retries: 5},
		},
	}

	metrics := CompileMetrics(bundle)

	require.NotNil(t, metrics.TopFailingTool)
	assert.Equal(t, "jira_api", *metrics.TopFailingTool)
	assert.Equal(t, 4500, metrics.MaxStepLatencyMs)
	assert.Equal(t, 9, metrics.TotalRetries)
	require.NotNil(t, metrics.TotalCostUSD)
	assert.Equal(t, cost, *metrics.TotalCostUSD)
}

func TestCompileMetricsTieBrokenByFirstSeen(t *testing.T) {
	bundle := &services.EvidenceBundle{
		Run: failedRun(),
		ToolCalls: []*ent.ToolCall{
			{ID: "c1", ToolName: "first_api", Status: toolcall.StatusFailure},
			{ID: "c2", ToolName: "second_api", Status: toolcall.StatusFailure},
		},
	}

	metrics := CompileMetrics(bundle)
	require.NotNil(t, metrics.TopFailingTool)
	assert.Equal(t, "first_api", *metrics.TopFailingTool)
}

func TestCompileMetricsEmpty(t *testing.T) {
	bundle := &services.EvidenceBundle{Run: failedRun()}

	metrics := CompileMetrics(bundle)
	assert.Nil(t, metrics.TopFailingTool)
	assert.Zero(t, metrics.MaxStepLatencyMs)
	assert.Zero(t, metrics.TotalRetries)
	assert.Nil(t, metrics.TotalCostUSD)
}

func TestBuildJiraFields(t *testing.T) {
	hypotheses := []models.Hypothesis{
		{
			Title:       "Rate Limited Root Cause",
			Confidence:  "high",
			Description: "Tool call was rate limited (HTTP 429).",
			EvidenceIDs: []string{"ev_tool_c1", "ev_tool_c2"},
		},
	}
	actions := []models.ActionItem{
		{Type: "change_config", Title: "Implement rate limiting backoff", Description: "Add exponential backoff.", Priority: "high"},
	}

	fields := BuildJiraFields("0f24b1c8-aaaa-bbbb-cccc-000000000000", models.CategoryRateLimited, hypotheses, actions, false)

	assert.Equal(t, "[AgentOps RCA] Rate Limited - Run 0f24b1c8", fields.JiraSummary)

	md := fields.JiraDescriptionMD
	assert.True(t, strings.HasPrefix(md, "# RCA Report: rate_limited\n"))
	assert.Contains(t, md, "**Run ID:** 0f24b1c8-aaaa-bbbb-cccc-000000000000")
	assert.Contains(t, md, "**Insufficient Evidence:** false")
	assert.Contains(t, md, "## Hypotheses")
	assert.Contains(t, md, "### Rate Limited Root Cause")
	assert.Contains(t, md, "- **Confidence:** high")
	assert.Contains(t, md, "- **Evidence Count:** 2")
	assert.Contains(t, md, "## Action Items")
	assert.Contains(t, md, "- [HIGH] **Implement rate limiting backoff** (change_config)")
	assert.Contains(t, md, "\n  Add exponential backoff.")
}

func TestBuildJiraFieldsInsufficient(t *testing.T) {
	fields := BuildJiraFields("run-x", models.CategoryUnknown, nil, nil, true)

	assert.Contains(t, fields.JiraDescriptionMD, "**Insufficient Evidence:** true")
	assert.Contains(t, fields.JiraDescriptionMD, "*Insufficient evidence to form hypotheses. Data collection required.*")
	assert.Equal(t, "[AgentOps RCA] Unknown - Run run-x", fields.JiraSummary)
}

func TestTitleCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"tool_schema_mismatch", "Tool Schema Mismatch"},
		{"rate_limited", "Rate Limited"},
		{"unknown", "Unknown"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, titleCase(tt.in))
	}
}
