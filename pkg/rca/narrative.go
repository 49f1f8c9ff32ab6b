package rca

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/agentops/agentops/pkg/models"
)

// hypothesisTemplates maps each category to its fixed description. These
// templates are the source of truth; LLM rewriting is cosmetic only.
var hypothesisTemplates = map[models.Category]string{
	models.CategoryToolSchemaMismatch: "Tool call failed due to schema validation error. The tool arguments did not match the expected schema, likely due to API changes or incorrect parameter formatting.",
	models.CategoryRateLimited:        "Tool call was rate limited (HTTP 429). The system exceeded the API rate limit, suggesting high request volume or insufficient rate limit configuration.",
	models.CategoryToolPermission:     "Tool call failed due to permission error. The agent lacks necessary credentials or permissions to execute the requested action.",
	models.CategoryTimeout:            "Operation timed out before completion. The tool or step exceeded configured timeout limits, possibly due to slow external service or large data processing.",
	models.CategoryPlannerLoop:        "Agent entered a retry loop with excessive retries. The planner may be stuck in a cycle, repeatedly attempting the same failed operation.",
	models.CategoryRetrievalEmpty:     "Retrieval operation returned empty or insufficient results. The search/query did not find relevant data, possibly due to incorrect query formulation or missing data.",
	models.CategoryPromptRegression:   "Prompt behavior changed unexpectedly. Model responses deviated from expected format, possibly due to prompt changes or model version update.",
	models.CategoryUnknown:            "Failure cause could not be determined from available telemetry. Additional instrumentation or logging may be needed.",
}

// insufficientActionItems is returned whenever the sufficiency gate fails,
// regardless of category.
var insufficientActionItems = []models.ActionItem{
	{
		Type:        "monitoring",
		Title:       "Enable detailed tracing",
		Description: "Add structured logging and tracing to capture more diagnostic information.",
		Priority:    "high",
	},
	{
		Type:        "code_change",
		Title:       "Add structured error codes",
		Description: "Implement error code taxonomy to enable better classification in future RCAs.",
		Priority:    "medium",
	},
}

var actionTemplates = map[models.Category][]models.ActionItem{
	models.CategoryToolSchemaMismatch: {
		{
			Type:        "code_change",
			Title:       "Update tool schema validation",
			Description: "Review and update tool argument schemas to match current API contract. Add unit tests for schema validation.",
			Priority:    "high",
		},
		{
			Type:        "test",
			Title:       "Add integration tests for tool calls",
			Description: "Create integration tests that validate tool schemas against live API endpoints.",
			Priority:    "medium",
		},
	},
	models.CategoryRateLimited: {
		{
			Type:        "change_config",
			Title:       "Implement rate limiting backoff",
			Description: "Add exponential backoff and retry logic for rate-limited requests.",
			Priority:    "high",
		},
		{
			Type:        "monitoring",
			Title:       "Add rate limit monitoring",
			Description: "Track API usage and alert before hitting rate limits.",
			Priority:    "high",
		},
	},
	models.CategoryToolPermission: {
		{
			Type:        "change_config",
			Title:       "Verify API credentials and permissions",
			Description: "Audit all API keys and service account permissions. Update with required scopes.",
			Priority:    "critical",
		},
	},
	models.CategoryTimeout: {
		{
			Type:        "change_config",
			Title:       "Increase timeout thresholds",
			Description: "Review and adjust timeout configuration based on P95 latency metrics.",
			Priority:    "high",
		},
		{
			Type:        "code_change",
			Title:       "Optimize slow operations",
			Description: "Profile and optimize operations that frequently approach timeout limits.",
			Priority:    "medium",
		},
	},
}

// NarrativeEngine produces hypothesis prose and action-item lists. It runs
// deterministic templates; when an OpenAI API key is configured it may
// additionally rewrite descriptions, falling back to the template on any
// failure.
type NarrativeEngine struct {
	llm    *openai.Client
	model  string
	logger *slog.Logger
}

// NewNarrativeEngine creates a narrative engine. An empty apiKey disables
// LLM rewriting.
func NewNarrativeEngine(apiKey string) *NarrativeEngine {
	e := &NarrativeEngine{
		model:  openai.GPT4oMini,
		logger: slog.Default().With("component", "narrative"),
	}
	if apiKey != "" {
		e.llm = openai.NewClient(apiKey)
		e.logger.Info("Narrative engine running with LLM rewriting enabled")
	} else {
		e.logger.Info("Narrative engine running in deterministic mode")
	}
	return e
}

// Enabled reports whether LLM rewriting is configured.
func (e *NarrativeEngine) Enabled() bool {
	return e.llm != nil
}

// HypothesisDescription returns the fixed per-category description,
// suffixed with up to the first two evidence snippets.
func (e *NarrativeEngine) HypothesisDescription(category models.Category, snippets []string) string {
	description, ok := hypothesisTemplates[category]
	if !ok {
		description = hypothesisTemplates[models.CategoryUnknown]
	}
	if len(snippets) > 0 {
		if len(snippets) > 2 {
			snippets = snippets[:2]
		}
		description += fmt.Sprintf(" Evidence shows: %s.", strings.Join(snippets, "; "))
	}
	return description
}

// ActionItems returns the action-item list for a category. When the
// evidence was insufficient, the data-collection list is returned instead;
// unmapped categories get a single generic investigation item.
func (e *NarrativeEngine) ActionItems(category models.Category, insufficient bool) []models.ActionItem {
	var templates []models.ActionItem
	if insufficient {
		templates = insufficientActionItems
	} else if mapped, ok := actionTemplates[category]; ok {
		templates = mapped
	} else {
		templates = []models.ActionItem{
			{
				Type:        "runbook",
				Title:       "Investigate root cause",
				Description: fmt.Sprintf("Manual investigation required for %s failure category.", category),
				Priority:    "high",
			},
		}
	}

	items := make([]models.ActionItem, len(templates))
	copy(items, templates)
	for i := range items {
		items[i].ActionID = newActionID()
	}
	return items
}

// Rewrite asks the LLM to rephrase a description for readability. The
// deterministic input is returned unchanged when the LLM is disabled or the
// call fails.
func (e *NarrativeEngine) Rewrite(ctx context.Context, description string) string {
	if e.llm == nil {
		return description
	}
	resp, err := e.llm.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: e.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: "Rewrite the following root-cause description to be clearer for an on-call engineer. Keep all facts, do not add new claims, answer with the rewritten text only.",
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: description,
			},
		},
	})
	if err != nil {
		e.logger.Warn("LLM rewrite failed, using deterministic description", "error", err)
		return description
	}
	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		return description
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content)
}
