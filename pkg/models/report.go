package models

import "time"

// Category is a closed failure class assigned by the classification cascade.
type Category string

const (
	CategoryToolSchemaMismatch Category = "tool_schema_mismatch"
	CategoryRateLimited        Category = "rate_limited"
	CategoryToolPermission     Category = "tool_permission"
	CategoryTimeout            Category = "timeout"
	CategoryPlannerLoop        Category = "planner_loop"
	CategoryRetrievalEmpty     Category = "retrieval_empty"
	// CategoryPromptRegression is defined for forward compatibility but no
	// current rule elects it.
	CategoryPromptRegression Category = "prompt_regression"
	CategoryUnknown          Category = "unknown"
)

// EvidenceKind identifies what a piece of evidence points at.
type EvidenceKind string

const (
	EvidenceKindStep      EvidenceKind = "step"
	EvidenceKindToolCall  EvidenceKind = "tool_call"
	EvidenceKindGuardrail EvidenceKind = "guardrail"
)

// EvidenceRef points at a step, tool call, or guardrail event, carrying a
// short human-readable snippet for the report.
type EvidenceRef struct {
	EvidenceID string                 `json:"evidence_id"`
	Kind       EvidenceKind           `json:"kind"`
	RefID      string                 `json:"ref_id"`
	Title      string                 `json:"title"`
	Snippet    string                 `json:"snippet"`
	Attributes map[string]interface{} `json:"attributes"`
}

// Hypothesis is a candidate root cause backed by evidence references.
type Hypothesis struct {
	HypothesisID      string   `json:"hypothesis_id"`
	Title             string   `json:"title"`
	Description       string   `json:"description"`
	EvidenceIDs       []string `json:"evidence_ids"`
	Confidence        string   `json:"confidence"`
	VerificationSteps []string `json:"verification_steps"`
	Mitigation        string   `json:"mitigation,omitempty"`
}

// ActionItem is a recommended follow-up produced for a report.
type ActionItem struct {
	ActionID    string `json:"action_id"`
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Owner       string `json:"owner,omitempty"`
	Priority    string `json:"priority"`
	DueInDays   *int   `json:"due_in_days,omitempty"`
}

// MetricsSnapshot aggregates run-level numbers for the report.
type MetricsSnapshot struct {
	TopFailingTool   *string  `json:"top_failing_tool"`
	MaxStepLatencyMs int      `json:"max_step_latency_ms"`
	TotalRetries     int      `json:"total_retries"`
	TotalCostUSD     *float64 `json:"total_cost_usd"`
}

// JiraFields holds ready-to-paste ticket content.
type JiraFields struct {
	JiraSummary       string `json:"jira_summary"`
	JiraDescriptionMD string `json:"jira_description_md"`
}

// Report is the full RCA report document persisted as JSON.
type Report struct {
	ReportID             string          `json:"report_id"`
	RCARunID             string          `json:"rca_run_id"`
	RunID                string          `json:"run_id"`
	GeneratedAt          time.Time       `json:"generated_at"`
	Category             Category        `json:"category"`
	InsufficientEvidence bool            `json:"insufficient_evidence"`
	InsufficientReason   *string         `json:"insufficient_reason,omitempty"`
	EvidenceIndex        []EvidenceRef   `json:"evidence_index"`
	Hypotheses           []Hypothesis    `json:"hypotheses"`
	ActionItems          []ActionItem    `json:"action_items"`
	MetricsSnapshot      MetricsSnapshot `json:"metrics_snapshot"`
	JiraFields           *JiraFields     `json:"jira_fields,omitempty"`
}

// RCARunView is the API representation of an RCA run. Report is embedded
// only once the run reached status "done".
type RCARunView struct {
	RCARunID     string     `json:"rca_run_id"`
	RunID        string     `json:"run_id"`
	Status       string     `json:"status"`
	Step         string     `json:"step"`
	Pct          int        `json:"pct"`
	Message      string     `json:"message"`
	CreatedAt    time.Time  `json:"created_at"`
	StartedAt    *time.Time `json:"started_at,omitempty"`
	EndedAt      *time.Time `json:"ended_at,omitempty"`
	ErrorMessage *string    `json:"error_message,omitempty"`
	Report       *Report    `json:"report,omitempty"`
}
