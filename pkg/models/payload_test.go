package models

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validPayload() *AgentRunPayload {
	started := time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)
	return &AgentRunPayload{
		RunID:        "run-1",
		AgentName:    "support-agent",
		AgentVersion: "1.4.2",
		Model:        "gpt-4o",
		Environment:  "prod",
		StartedAt:    started,
		EndedAt:      started.Add(30 * time.Second),
		Status:       "failure",
		Steps: []StepPayload{
			{
				StepID:    "step-1",
				Name:      "plan",
				Status:    "success",
				StartedAt: started,
				EndedAt:   started.Add(2 * time.Second),
			},
		},
		ToolCalls: []ToolCallPayload{
			{CallID: "call-1", StepID: "step-1", ToolName: "search_api", Status: "failure"},
		},
		GuardrailEvents: []GuardrailEventPayload{
			{EventID: "ev-1", Type: "policy_block", Message: "blocked outbound request"},
		},
	}
}

func TestNormalizeGeneratesMissingIDs(t *testing.T) {
	p := validPayload()
	p.RunID = ""
	p.Steps[0].StepID = ""
	p.ToolCalls[0].CallID = ""
	p.GuardrailEvents[0].EventID = ""

	p.Normalize()

	assert.NotEmpty(t, p.RunID)
	assert.NotEmpty(t, p.Steps[0].StepID)
	assert.NotEmpty(t, p.ToolCalls[0].CallID)
	assert.NotEmpty(t, p.GuardrailEvents[0].EventID)
}

func TestNormalizeDerivesStepLatency(t *testing.T) {
	p := validPayload()
	p.Normalize()

	assert.Equal(t, 2000, p.Steps[0].LatencyMs)
}

func TestNormalizeKeepsExplicitLatency(t *testing.T) {
	p := validPayload()
	p.Steps[0].LatencyMs = 750
	p.Normalize()

	assert.Equal(t, 750, p.Steps[0].LatencyMs)
}

func TestNormalizeClampsNegativeLatency(t *testing.T) {
	p := validPayload()
	// ended before started
	p.Steps[0].EndedAt = p.Steps[0].StartedAt.Add(-time.Second)
	p.Normalize()

	assert.Equal(t, 0, p.Steps[0].LatencyMs)
}

func TestNormalizeDefaultsGuardrailCreatedAt(t *testing.T) {
	p := validPayload()
	require.True(t, p.GuardrailEvents[0].CreatedAt.IsZero())
	p.Normalize()

	assert.False(t, p.GuardrailEvents[0].CreatedAt.IsZero())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*AgentRunPayload)
		wantErr string
	}{
		{"valid payload", func(p *AgentRunPayload) {}, ""},
		{"missing agent name", func(p *AgentRunPayload) { p.AgentName = "" }, "agent_name"},
		{"bad run status", func(p *AgentRunPayload) { p.Status = "crashed" }, "status"},
		{"bad environment", func(p *AgentRunPayload) { p.Environment = "qa" }, "environment"},
		{"bad step status", func(p *AgentRunPayload) { p.Steps[0].Status = "pending" }, "step"},
		{"negative step retries", func(p *AgentRunPayload) { p.Steps[0].Retries = -1 }, "retries"},
		{"oversized output summary", func(p *AgentRunPayload) {
			p.Steps[0].OutputSummary = strings.Repeat("x", MaxSummaryLength+1)
		}, "output_summary"},
		{"oversized result summary", func(p *AgentRunPayload) {
			p.ToolCalls[0].ResultSummary = strings.Repeat("x", MaxSummaryLength+1)
		}, "result_summary"},
		{"bad guardrail type", func(p *AgentRunPayload) { p.GuardrailEvents[0].Type = "firewall" }, "type"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validPayload()
			tt.mutate(p)
			err := p.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateAcceptsMaxLengthSummary(t *testing.T) {
	p := validPayload()
	p.Steps[0].OutputSummary = strings.Repeat("x", MaxSummaryLength)
	assert.NoError(t, p.Validate())
}
