// Package models defines the wire-level payloads and report documents
// exchanged by the API, the orchestrator, and persistence.
package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// MaxSummaryLength bounds free-text summaries on ingest.
const MaxSummaryLength = 2000

// CostSummary carries token and dollar accounting for a run.
type CostSummary struct {
	TokensPrompt     int      `json:"tokens_prompt"`
	TokensCompletion int      `json:"tokens_completion"`
	TotalCostUSD     *float64 `json:"total_cost_usd,omitempty"`
}

// StepPayload is one agent step in an ingest payload.
type StepPayload struct {
	StepID        string    `json:"step_id"`
	Name          string    `json:"name"`
	Status        string    `json:"status"`
	StartedAt     time.Time `json:"started_at"`
	EndedAt       time.Time `json:"ended_at"`
	InputSummary  string    `json:"input_summary"`
	OutputSummary string    `json:"output_summary"`
	Retries       int       `json:"retries"`
	LatencyMs     int       `json:"latency_ms"`
}

// ToolCallPayload is one tool invocation in an ingest payload.
type ToolCallPayload struct {
	CallID        string                 `json:"call_id"`
	StepID        string                 `json:"step_id"`
	ToolName      string                 `json:"tool_name"`
	Status        string                 `json:"status"`
	ArgsJSON      map[string]interface{} `json:"args_json"`
	ArgsHash      string                 `json:"args_hash"`
	ResultSummary string                 `json:"result_summary"`
	ErrorClass    *string                `json:"error_class,omitempty"`
	ErrorMessage  *string                `json:"error_message,omitempty"`
	StatusCode    *int                   `json:"status_code,omitempty"`
	Retries       int                    `json:"retries"`
	LatencyMs     int                    `json:"latency_ms"`
}

// GuardrailEventPayload is one guardrail signal in an ingest payload.
type GuardrailEventPayload struct {
	EventID   string    `json:"event_id"`
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	StepID    string    `json:"step_id,omitempty"`
	CallID    string    `json:"call_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// AgentRunPayload is the full telemetry document POSTed to /agent-runs.
type AgentRunPayload struct {
	RunID           string                  `json:"run_id"`
	AgentName       string                  `json:"agent_name"`
	AgentVersion    string                  `json:"agent_version"`
	Model           string                  `json:"model"`
	Environment     string                  `json:"environment"`
	StartedAt       time.Time               `json:"started_at"`
	EndedAt         time.Time               `json:"ended_at"`
	Status          string                  `json:"status"`
	ErrorType       *string                 `json:"error_type,omitempty"`
	ErrorMessage    *string                 `json:"error_message,omitempty"`
	TraceID         *string                 `json:"trace_id,omitempty"`
	CorrelationIDs  []string                `json:"correlation_ids"`
	Steps           []StepPayload           `json:"steps"`
	ToolCalls       []ToolCallPayload       `json:"tool_calls"`
	GuardrailEvents []GuardrailEventPayload `json:"guardrail_events"`
	Cost            CostSummary             `json:"cost"`
}

var validRunStatuses = map[string]bool{"success": true, "failure": true}

var validEnvironments = map[string]bool{"prod": true, "staging": true, "dev": true}

var validGuardrailTypes = map[string]bool{
	"pii_redaction":     true,
	"policy_block":      true,
	"schema_validation": true,
	"other":             true,
}

// Normalize fills in server-generated identifiers and derives step latency
// from timestamps when the client did not provide it.
func (p *AgentRunPayload) Normalize() {
	if p.RunID == "" {
		p.RunID = uuid.New().String()
	}
	for i := range p.Steps {
		step := &p.Steps[i]
		if step.StepID == "" {
			step.StepID = uuid.New().String()
		}
		if step.LatencyMs <= 0 {
			step.LatencyMs = int(step.EndedAt.Sub(step.StartedAt).Milliseconds())
			if step.LatencyMs < 0 {
				step.LatencyMs = 0
			}
		}
	}
	for i := range p.ToolCalls {
		if p.ToolCalls[i].CallID == "" {
			p.ToolCalls[i].CallID = uuid.New().String()
		}
		if p.ToolCalls[i].LatencyMs < 0 {
			p.ToolCalls[i].LatencyMs = 0
		}
	}
	for i := range p.GuardrailEvents {
		ev := &p.GuardrailEvents[i]
		if ev.EventID == "" {
			ev.EventID = uuid.New().String()
		}
		if ev.CreatedAt.IsZero() {
			ev.CreatedAt = time.Now().UTC()
		}
	}
}

// Validate checks payload-level constraints: required fields, closed enums,
// and summary length bounds.
func (p *AgentRunPayload) Validate() error {
	if p.AgentName == "" {
		return fmt.Errorf("agent_name is required")
	}
	if !validRunStatuses[p.Status] {
		return fmt.Errorf("status must be 'success' or 'failure', got %q", p.Status)
	}
	if !validEnvironments[p.Environment] {
		return fmt.Errorf("environment must be one of prod, staging, dev, got %q", p.Environment)
	}
	for _, step := range p.Steps {
		if !validRunStatuses[step.Status] {
			return fmt.Errorf("step %s: status must be 'success' or 'failure', got %q", step.StepID, step.Status)
		}
		if len(step.InputSummary) > MaxSummaryLength {
			return fmt.Errorf("step %s: input_summary exceeds %d characters", step.StepID, MaxSummaryLength)
		}
		if len(step.OutputSummary) > MaxSummaryLength {
			return fmt.Errorf("step %s: output_summary exceeds %d characters", step.StepID, MaxSummaryLength)
		}
		if step.Retries < 0 {
			return fmt.Errorf("step %s: retries must be >= 0", step.StepID)
		}
	}
	for _, tc := range p.ToolCalls {
		if !validRunStatuses[tc.Status] {
			return fmt.Errorf("tool call %s: status must be 'success' or 'failure', got %q", tc.CallID, tc.Status)
		}
		if len(tc.ResultSummary) > MaxSummaryLength {
			return fmt.Errorf("tool call %s: result_summary exceeds %d characters", tc.CallID, MaxSummaryLength)
		}
	}
	for _, ev := range p.GuardrailEvents {
		if !validGuardrailTypes[ev.Type] {
			return fmt.Errorf("guardrail event %s: unknown type %q", ev.EventID, ev.Type)
		}
	}
	return nil
}
