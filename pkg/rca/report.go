package rca

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/agentops/agentops/ent/agentstep"
	"github.com/agentops/agentops/ent/toolcall"
	"github.com/agentops/agentops/pkg/models"
	"github.com/agentops/agentops/pkg/services"
)

const snippetLimit = 200

// InsufficientReason is recorded on reports that fail the sufficiency gate.
const InsufficientReason = "Limited telemetry: no tool failures or specific error details captured"

var verificationSteps = []string{
	"Review tool call logs for detailed error traces",
	"Check external service status and API documentation",
	"Reproduce failure in isolated test environment",
}

// CollectEvidence builds the evidence index for a run: every failed step,
// every failed tool call, and every guardrail event regardless of status.
func CollectEvidence(bundle *services.EvidenceBundle) []models.EvidenceRef {
	evidence := make([]models.EvidenceRef, 0)

	for _, step := range bundle.Steps {
		if step.Status != agentstep.StatusFailure {
			continue
		}
		evidence = append(evidence, models.EvidenceRef{
			EvidenceID: fmt.Sprintf("ev_step_%s", step.ID),
			Kind:       models.EvidenceKindStep,
			RefID:      step.ID,
			Title:      fmt.Sprintf("Failed step: %s", step.Name),
			Snippet:    truncate(step.OutputSummary, snippetLimit),
			Attributes: map[string]interface{}{
				"latency_ms": step.LatencyMs,
				"retries":    step.Retries,
			},
		})
	}

	for _, tc := range bundle.ToolCalls {
		if tc.Status != toolcall.StatusFailure {
			continue
		}
		attrs := map[string]interface{}{
			"latency_ms": tc.LatencyMs,
		}
		if tc.ErrorClass != nil {
			attrs["error_class"] = *tc.ErrorClass
		} else {
			attrs["error_class"] = nil
		}
		if tc.StatusCode != nil {
			attrs["status_code"] = *tc.StatusCode
		} else {
			attrs["status_code"] = nil
		}
		evidence = append(evidence, models.EvidenceRef{
			EvidenceID: fmt.Sprintf("ev_tool_%s", tc.ID),
			Kind:       models.EvidenceKindToolCall,
			RefID:      tc.ID,
			Title:      fmt.Sprintf("Failed tool call: %s", tc.ToolName),
			Snippet:    truncate(deref(tc.ErrorMessage), snippetLimit),
			Attributes: attrs,
		})
	}

	for _, ev := range bundle.Guardrails {
		evidence = append(evidence, models.EvidenceRef{
			EvidenceID: fmt.Sprintf("ev_guard_%s", ev.ID),
			Kind:       models.EvidenceKindGuardrail,
			RefID:      ev.ID,
			Title:      fmt.Sprintf("Guardrail: %s", ev.Type),
			Snippet:    truncate(ev.Message, snippetLimit),
			Attributes: map[string]interface{}{
				"type": string(ev.Type),
			},
		})
	}

	return evidence
}

// InsufficientEvidence implements the sufficiency gate. The telemetry is
// insufficient when there is nothing to reason about (no tool calls, no
// run-level error type, no guardrails), or when the run only carries a
// generic internal-server-error message with no tool-call evidence.
func InsufficientEvidence(bundle *services.EvidenceBundle, evidence []models.EvidenceRef) bool {
	if len(bundle.ToolCalls) == 0 && bundle.Run.ErrorType == nil && len(bundle.Guardrails) == 0 {
		return true
	}

	if bundle.Run.ErrorMessage != nil &&
		strings.Contains(strings.ToLower(*bundle.Run.ErrorMessage), "internal server error") {
		for _, ev := range evidence {
			if ev.Kind == models.EvidenceKindToolCall {
				return false
			}
		}
		return true
	}

	return false
}

// BuildHypothesis assembles the single hypothesis for a sufficient report.
func BuildHypothesis(engine *NarrativeEngine, category models.Category, evidence []models.EvidenceRef) models.Hypothesis {
	evidenceIDs := make([]string, 0, len(evidence))
	for _, ev := range evidence {
		evidenceIDs = append(evidenceIDs, ev.EvidenceID)
	}

	snippets := make([]string, 0, 3)
	for _, ev := range evidence {
		if len(snippets) == 3 {
			break
		}
		snippets = append(snippets, ev.Snippet)
	}

	confidence := "medium"
	if len(evidenceIDs) >= 2 {
		confidence = "high"
	}
	if len(evidenceIDs) > 5 {
		evidenceIDs = evidenceIDs[:5]
	}

	return models.Hypothesis{
		HypothesisID:      newHypothesisID(),
		Title:             fmt.Sprintf("%s Root Cause", titleCase(string(category))),
		Description:       engine.HypothesisDescription(category, snippets),
		EvidenceIDs:       evidenceIDs,
		Confidence:        confidence,
		VerificationSteps: verificationSteps,
		Mitigation:        "Apply recommended action items below",
	}
}

// CompileMetrics aggregates the metrics snapshot from telemetry.
func CompileMetrics(bundle *services.EvidenceBundle) models.MetricsSnapshot {
	snapshot := models.MetricsSnapshot{}

	// Arg-max of failure counts; ties broken by first-seen tool.
	failures := make(map[string]int)
	order := make([]string, 0)
	for _, tc := range bundle.ToolCalls {
		if tc.Status != toolcall.StatusFailure {
			continue
		}
		if _, seen := failures[tc.ToolName]; !seen {
			order = append(order, tc.ToolName)
		}
		failures[tc.ToolName]++
	}
	best := 0
	for _, name := range order {
		if failures[name] > best {
			best = failures[name]
			top := name
			snapshot.TopFailingTool = &top
		}
	}

	for _, step := range bundle.Steps {
		if step.LatencyMs > snapshot.MaxStepLatencyMs {
			snapshot.MaxStepLatencyMs = step.LatencyMs
		}
		snapshot.TotalRetries += step.Retries
	}
	for _, tc := range bundle.ToolCalls {
		snapshot.TotalRetries += tc.Retries
	}

	if raw, ok := bundle.Run.Cost["total_cost_usd"]; ok {
		if cost, ok := raw.(float64); ok {
			snapshot.TotalCostUSD = &cost
		}
	}

	return snapshot
}

// BuildJiraFields renders the ready-to-paste ticket summary and Markdown
// description.
func BuildJiraFields(runID string, category models.Category, hypotheses []models.Hypothesis, actionItems []models.ActionItem, insufficient bool) models.JiraFields {
	summary := fmt.Sprintf("[AgentOps RCA] %s - Run %s", titleCase(string(category)), shortID(runID))

	parts := []string{
		fmt.Sprintf("# RCA Report: %s", category),
		fmt.Sprintf("**Run ID:** %s", runID),
		fmt.Sprintf("**Insufficient Evidence:** %t", insufficient),
		"",
		"## Hypotheses",
	}

	if len(hypotheses) > 0 {
		for _, hyp := range hypotheses {
			parts = append(parts,
				fmt.Sprintf("### %s", hyp.Title),
				fmt.Sprintf("- **Confidence:** %s", hyp.Confidence),
				fmt.Sprintf("- **Description:** %s", hyp.Description),
				fmt.Sprintf("- **Evidence Count:** %d", len(hyp.EvidenceIDs)))
		}
	} else {
		parts = append(parts, "*Insufficient evidence to form hypotheses. Data collection required.*")
	}

	parts = append(parts, "", "## Action Items")
	for _, action := range actionItems {
		parts = append(parts,
			fmt.Sprintf("- [%s] **%s** (%s)", strings.ToUpper(action.Priority), action.Title, action.Type),
			fmt.Sprintf("  %s", action.Description))
	}

	return models.JiraFields{
		JiraSummary:       summary,
		JiraDescriptionMD: strings.Join(parts, "\n"),
	}
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit]
}

func shortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}

// titleCase upper-cases the first letter of each underscore-separated word:
// "tool_schema_mismatch" becomes "Tool Schema Mismatch".
func titleCase(s string) string {
	words := strings.Split(s, "_")
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}

func newHypothesisID() string {
	return fmt.Sprintf("hyp_%s", uuid.New().String())
}

func newActionID() string {
	return fmt.Sprintf("act_%s", uuid.New().String())
}
