package services

import (
	"context"
	"fmt"

	"github.com/agentops/agentops/ent"
	"github.com/agentops/agentops/ent/agentstep"
	"github.com/agentops/agentops/ent/guardrailevent"
	"github.com/agentops/agentops/ent/toolcall"
)

// EvidenceBundle is the full telemetry of one run, loaded for analysis.
// Steps are ordered by started_at and guardrails by created_at; tool calls
// keep insertion order.
type EvidenceBundle struct {
	Run        *ent.AgentRun
	Steps      []*ent.AgentStep
	ToolCalls  []*ent.ToolCall
	Guardrails []*ent.GuardrailEvent
}

// EvidenceStore reads run telemetry for the RCA pipeline. Pure read, no
// caching.
type EvidenceStore struct {
	client *ent.Client
}

// NewEvidenceStore creates a new evidence store.
func NewEvidenceStore(client *ent.Client) *EvidenceStore {
	return &EvidenceStore{client: client}
}

// GetBundle loads a run with all its children, or ErrNotFound.
func (s *EvidenceStore) GetBundle(ctx context.Context, runID string) (*EvidenceBundle, error) {
	run, err := s.client.AgentRun.Get(ctx, runID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("agent run %s: %w", runID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get run: %w", err)
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

	return &EvidenceBundle{
		Run:        run,
		Steps:      steps,
		ToolCalls:  toolCalls,
		Guardrails: guardrails,
	}, nil
}
