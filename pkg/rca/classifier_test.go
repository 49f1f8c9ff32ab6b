package rca

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agentops/agentops/ent"
	"github.com/agentops/agentops/ent/agentrun"
	"github.com/agentops/agentops/ent/agentstep"
	"github.com/agentops/agentops/ent/guardrailevent"
	"github.com/agentops/agentops/ent/toolcall"
	"github.com/agentops/agentops/pkg/models"
	"github.com/agentops/agentops/pkg/services"
)

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

func failedRun() *ent.AgentRun {
	return &ent.AgentRun{ID: "run-1", Status: agentrun.StatusFailure}
}

func failedCall(class, message *string, statusCode *int) *ent.ToolCall {
	return &ent.ToolCall{
		ID:           "call-1",
		ToolName:     "search_api",
		Status:       toolcall.StatusFailure,
		ErrorClass:   class,
		ErrorMessage: message,
		StatusCode:   statusCode,
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		bundle *services.EvidenceBundle
		want   models.Category
	}{
		{
			name: "status code 429 is rate limited",
			bundle: &services.EvidenceBundle{
				Run:       failedRun(),
				ToolCalls: []*ent.ToolCall{failedCall(nil, nil, intPtr(429))},
			},
			want: models.CategoryRateLimited,
		},
		{
			name: "rate limit wins over timeout error class",
			bundle: &services.EvidenceBundle{
				Run:       failedRun(),
				ToolCalls: []*ent.ToolCall{failedCall(strPtr("TimeoutError"), nil, intPtr(429))},
			},
			want: models.CategoryRateLimited,
		},
		{
			name: "rate limit keyword in error message",
			bundle: &services.EvidenceBundle{
				Run:       failedRun(),
				ToolCalls: []*ent.ToolCall{failedCall(nil, strPtr("Rate Limit exceeded, retry later"), nil)},
			},
			want: models.CategoryRateLimited,
		},
		{
			name: "schema in error class",
			bundle: &services.EvidenceBundle{
				Run:       failedRun(),
				ToolCalls: []*ent.ToolCall{failedCall(strPtr("SchemaError"), nil, nil)},
			},
			want: models.CategoryToolSchemaMismatch,
		},
		{
			name: "missing required keyword in error message",
			bundle: &services.EvidenceBundle{
				Run:       failedRun(),
				ToolCalls: []*ent.ToolCall{failedCall(nil, strPtr("Missing required field: user_id"), nil)},
			},
			want: models.CategoryToolSchemaMismatch,
		},
		{
			name: "schema keyword wins over permission keyword",
			bundle: &services.EvidenceBundle{
				Run:       failedRun(),
				ToolCalls: []*ent.ToolCall{failedCall(nil, strPtr("validation failed: access denied"), nil)},
			},
			want: models.CategoryToolSchemaMismatch,
		},
		{
			name: "status code 403 is permission",
			bundle: &services.EvidenceBundle{
				Run:       failedRun(),
				ToolCalls: []*ent.ToolCall{failedCall(nil, nil, intPtr(403))},
			},
			want: models.CategoryToolPermission,
		},
		{
			name: "unauthorized keyword is permission",
			bundle: &services.EvidenceBundle{
				Run:       failedRun(),
				ToolCalls: []*ent.ToolCall{failedCall(nil, strPtr("Unauthorized: token expired"), nil)},
			},
			want: models.CategoryToolPermission,
		},
		{
			name: "timeout in error class",
			bundle: &services.EvidenceBundle{
				Run:       failedRun(),
				ToolCalls: []*ent.ToolCall{failedCall(strPtr("TimeoutError"), nil, nil)},
			},
			want: models.CategoryTimeout,
		},
		{
			name: "timeout in error message",
			bundle: &services.EvidenceBundle{
				Run:       failedRun(),
				ToolCalls: []*ent.ToolCall{failedCall(nil, strPtr("request timeout after 30s"), nil)},
			},
			want: models.CategoryTimeout,
		},
		{
			name: "first failing tool call decides",
			bundle: &services.EvidenceBundle{
				Run: failedRun(),
				ToolCalls: []*ent.ToolCall{
					failedCall(strPtr("TimeoutError"), nil, nil),
					failedCall(nil, nil, intPtr(429)),
				},
			},
			want: models.CategoryTimeout,
		},
		{
			name: "successful tool calls are ignored",
			bundle: &services.EvidenceBundle{
				Run: failedRun(),
				ToolCalls: []*ent.ToolCall{
					{ID: "call-ok", ToolName: "search_api", Status: toolcall.StatusSuccess, StatusCode: intPtr(429)},
				},
			},
			want: models.CategoryUnknown,
		},
		{
			name: "schema validation guardrail",
			bundle: &services.EvidenceBundle{
				Run: failedRun(),
				Guardrails: []*ent.GuardrailEvent{
					{ID: "ev-1", Type: guardrailevent.TypeSchemaValidation, Message: "output failed schema check"},
				},
			},
			want: models.CategoryToolSchemaMismatch,
		},
		{
			name: "excessive step retries is planner loop",
			bundle: &services.EvidenceBundle{
				Run: failedRun(),
				Steps: []*ent.AgentStep{
					{ID: "step-1", Name: "plan", Status: agentstep.StatusFailure, Retries: 3},
				},
			},
			want: models.CategoryPlannerLoop,
		},
		{
			name: "two retries is not planner loop",
			bundle: &services.EvidenceBundle{
				Run: failedRun(),
				Steps: []*ent.AgentStep{
					{ID: "step-1", Name: "plan", Status: agentstep.StatusFailure, Retries: 2},
				},
			},
			want: models.CategoryUnknown,
		},
		{
			name: "short retrieval output is retrieval empty",
			bundle: &services.EvidenceBundle{
				Run: failedRun(),
				Steps: []*ent.AgentStep{
					{ID: "step-1", Name: "retrieve_documents", Status: agentstep.StatusSuccess, OutputSummary: "no results"},
				},
			},
			want: models.CategoryRetrievalEmpty,
		},
		{
			name: "search step with substantial output is not retrieval empty",
			bundle: &services.EvidenceBundle{
				Run: failedRun(),
				Steps: []*ent.AgentStep{
					{
						ID:            "step-1",
						Name:          "search_knowledge_base",
						Status:        agentstep.StatusSuccess,
						OutputSummary: "found 25 documents matching the query, top result has score 0.92",
					},
				},
			},
			want: models.CategoryUnknown,
		},
		{
			name: "retrieval heuristic disabled when run has error type",
			bundle: &services.EvidenceBundle{
				Run: &ent.AgentRun{ID: "run-1", Status: agentrun.StatusFailure, ErrorType: strPtr("AgentTimeoutError")},
				Steps: []*ent.AgentStep{
					{ID: "step-1", Name: "retrieve_documents", Status: agentstep.StatusSuccess, OutputSummary: "short"},
				},
			},
			want: models.CategoryTimeout,
		},
		{
			name: "run level timeout error type",
			bundle: &services.EvidenceBundle{
				Run: &ent.AgentRun{ID: "run-1", Status: agentrun.StatusFailure, ErrorType: strPtr("TimeoutError")},
			},
			want: models.CategoryTimeout,
		},
		{
			name: "nothing matches is unknown",
			bundle: &services.EvidenceBundle{
				Run: failedRun(),
			},
			want: models.CategoryUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.bundle))
		})
	}
}

func TestClassifyEmptyStringsNeverMatch(t *testing.T) {
	bundle := &services.EvidenceBundle{
		Run:       failedRun(),
		ToolCalls: []*ent.ToolCall{failedCall(strPtr(""), strPtr(""), nil)},
	}
	assert.Equal(t, models.CategoryUnknown, Classify(bundle))
}
