package models

import "time"

// TimelineEvent is one row of the chronological run timeline. Kind is one of
// "step", "tool_call", or "guardrail".
type TimelineEvent struct {
	Kind      string    `json:"kind"`
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Status    string    `json:"status,omitempty"`
	Timestamp time.Time `json:"timestamp"`
	LatencyMs int       `json:"latency_ms,omitempty"`
}

// RunSummary is the compact view returned by GET /agent-runs/{run_id}.
type RunSummary struct {
	RunID               string    `json:"run_id"`
	AgentName           string    `json:"agent_name"`
	Status              string    `json:"status"`
	StartedAt           time.Time `json:"started_at"`
	EndedAt             time.Time `json:"ended_at"`
	StepCount           int       `json:"step_count"`
	ToolCallCount       int       `json:"tool_call_count"`
	GuardrailEventCount int       `json:"guardrail_event_count"`
}

// MetricsOverview aggregates recent telemetry for the metrics endpoint.
type MetricsOverview struct {
	WindowHours      int                `json:"window_hours"`
	TotalRuns        int                `json:"total_runs"`
	FailedRuns       int                `json:"failed_runs"`
	FailureRate      float64            `json:"failure_rate"`
	RunsByStatus     map[string]int     `json:"runs_by_status"`
	TopFailingTools  []ToolFailureCount `json:"top_failing_tools"`
	P95StepLatencyMs int                `json:"p95_step_latency_ms"`
	TotalCostUSD     float64            `json:"total_cost_usd"`
}

// ToolFailureCount pairs a tool name with its failure count.
type ToolFailureCount struct {
	ToolName string `json:"tool_name"`
	Failures int    `json:"failures"`
}
