package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentops/agentops/pkg/services"
	testdb "github.com/agentops/agentops/test/database"
)

func TestGetBundle(t *testing.T) {
	db := testdb.NewTestClient(t)
	ingest := services.NewIngestService(db.Client)
	store := services.NewEvidenceStore(db.Client)
	ctx := context.Background()

	_, err := ingest.UpsertAgentRun(ctx, telemetryPayload("run-bundle"))
	require.NoError(t, err)

	bundle, err := store.GetBundle(ctx, "run-bundle")
	require.NoError(t, err)

	assert.Equal(t, "run-bundle", bundle.Run.ID)
	require.Len(t, bundle.Steps, 2)
	// Ordered by started_at
	assert.Equal(t, "plan", bundle.Steps[0].Name)
	assert.Equal(t, "call_tool", bundle.Steps[1].Name)
	require.Len(t, bundle.ToolCalls, 1)
	assert.Equal(t, "search_api", bundle.ToolCalls[0].ToolName)
	require.Len(t, bundle.Guardrails, 1)
}

func TestGetBundleNotFound(t *testing.T) {
	db := testdb.NewTestClient(t)
	store := services.NewEvidenceStore(db.Client)

	_, err := store.GetBundle(context.Background(), "missing")
	assert.ErrorIs(t, err, services.ErrNotFound)
}
