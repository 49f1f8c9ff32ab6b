package rca

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentops/agentops/pkg/models"
)

func TestHypothesisDescriptionTemplates(t *testing.T) {
	engine := NewNarrativeEngine("")

	for category, template := range hypothesisTemplates {
		desc := engine.HypothesisDescription(category, nil)
		assert.Equal(t, template, desc, "category %s", category)
	}
}

func TestHypothesisDescriptionWithSnippets(t *testing.T) {
	engine := NewNarrativeEngine("")

	desc := engine.HypothesisDescription(models.CategoryRateLimited,
		[]string{"first snippet", "second snippet", "third snippet"})

	assert.True(t, strings.HasSuffix(desc, " Evidence shows: first snippet; second snippet."),
		"only the first two snippets are appended, got: %s", desc)
}

func TestHypothesisDescriptionUnknownCategoryFallsBack(t *testing.T) {
	engine := NewNarrativeEngine("")

	desc := engine.HypothesisDescription(models.Category("not_a_category"), nil)
	assert.Equal(t, hypothesisTemplates[models.CategoryUnknown], desc)
}

func TestActionItemsInsufficient(t *testing.T) {
	engine := NewNarrativeEngine("")

	// The insufficient list overrides the category entirely.
	items := engine.ActionItems(models.CategoryRateLimited, true)
	require.Len(t, items, 2)
	assert.Equal(t, "monitoring", items[0].Type)
	assert.Equal(t, "Enable detailed tracing", items[0].Title)
	assert.Equal(t, "high", items[0].Priority)
	assert.Equal(t, "code_change", items[1].Type)
	assert.Equal(t, "Add structured error codes", items[1].Title)
	assert.Equal(t, "medium", items[1].Priority)
}

func TestActionItemsByCategory(t *testing.T) {
	engine := NewNarrativeEngine("")

	tests := []struct {
		category   models.Category
		wantCount  int
		firstTitle string
	}{
		{models.CategoryToolSchemaMismatch, 2, "Update tool schema validation"},
		{models.CategoryRateLimited, 2, "Implement rate limiting backoff"},
		{models.CategoryToolPermission, 1, "Verify API credentials and permissions"},
		{models.CategoryTimeout, 2, "Increase timeout thresholds"},
	}
	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			items := engine.ActionItems(tt.category, false)
			require.Len(t, items, tt.wantCount)
			assert.Equal(t, tt.firstTitle, items[0].Title)
			for _, item := range items {
				assert.NotEmpty(t, item.ActionID)
				assert.NotEmpty(t, item.Description)
				assert.NotEmpty(t, item.Priority)
			}
		})
	}
}

func TestActionItemsUnmappedCategory(t *testing.T) {
	engine := NewNarrativeEngine("")

	items := engine.ActionItems(models.CategoryPlannerLoop, false)
	require.Len(t, items, 1)
	assert.Equal(t, "runbook", items[0].Type)
	assert.Equal(t, "Investigate root cause", items[0].Title)
	assert.Contains(t, items[0].Description, "planner_loop")
}

func TestActionItemsDoNotShareIDs(t *testing.T) {
	engine := NewNarrativeEngine("")

	first := engine.ActionItems(models.CategoryTimeout, false)
	second := engine.ActionItems(models.CategoryTimeout, false)
	assert.NotEqual(t, first[0].ActionID, second[0].ActionID)
}

func TestRewriteDisabledReturnsInput(t *testing.T) {
	engine := NewNarrativeEngine("")
	require.False(t, engine.Enabled())

	input := "Tool call failed due to schema validation error."
	assert.Equal(t, input, engine.Rewrite(context.Background(), input))
}
