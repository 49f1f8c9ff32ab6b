package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentops/agentops/ent/rcarun"
	"github.com/agentops/agentops/pkg/models"
	"github.com/agentops/agentops/pkg/services"
	testdb "github.com/agentops/agentops/test/database"
)

func TestCreateRCARunUnknownRun(t *testing.T) {
	db := testdb.NewTestClient(t)
	svc := services.NewRCAService(db.Client)

	_, err := svc.CreateRCARun(context.Background(), "missing")
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestCreateRCARunEnqueues(t *testing.T) {
	db := testdb.NewTestClient(t)
	ingest := services.NewIngestService(db.Client)
	svc := services.NewRCAService(db.Client)
	ctx := context.Background()

	_, err := ingest.UpsertAgentRun(ctx, telemetryPayload("run-rca"))
	require.NoError(t, err)

	rcaRunID, err := svc.CreateRCARun(ctx, "run-rca")
	require.NoError(t, err)

	row, err := db.Client.RCARun.Get(ctx, rcaRunID)
	require.NoError(t, err)
	assert.Equal(t, rcarun.StatusQueued, row.Status)
	assert.Equal(t, "RCA job queued", row.Message)
	assert.Equal(t, "run-rca", row.RunID)
	assert.Zero(t, row.Pct)
}

func TestCreateRCARunIsIdempotent(t *testing.T) {
	db := testdb.NewTestClient(t)
	ingest := services.NewIngestService(db.Client)
	svc := services.NewRCAService(db.Client)
	ctx := context.Background()

	_, err := ingest.UpsertAgentRun(ctx, telemetryPayload("run-idem"))
	require.NoError(t, err)

	first, err := svc.CreateRCARun(ctx, "run-idem")
	require.NoError(t, err)
	second, err := svc.CreateRCARun(ctx, "run-idem")
	require.NoError(t, err)
	assert.Equal(t, first, second, "requests within the window share one RCA run")

	count, err := db.Client.RCARun.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestCreateRCARunNewAfterTerminal(t *testing.T) {
	db := testdb.NewTestClient(t)
	ingest := services.NewIngestService(db.Client)
	svc := services.NewRCAService(db.Client)
	ctx := context.Background()

	_, err := ingest.UpsertAgentRun(ctx, telemetryPayload("run-term"))
	require.NoError(t, err)

	first, err := svc.CreateRCARun(ctx, "run-term")
	require.NoError(t, err)

	// Terminal rows do not absorb new requests.
	_, err = db.Client.RCARun.UpdateOneID(first).
		SetStatus(rcarun.StatusDone).
		SetEndedAt(time.Now()).
		Save(ctx)
	require.NoError(t, err)

	second, err := svc.CreateRCARun(ctx, "run-term")
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestCreateRCARunIgnoresStaleQueuedRows(t *testing.T) {
	db := testdb.NewTestClient(t)
	ingest := services.NewIngestService(db.Client)
	svc := services.NewRCAService(db.Client)
	ctx := context.Background()

	_, err := ingest.UpsertAgentRun(ctx, telemetryPayload("run-stale"))
	require.NoError(t, err)

	// A queued row created before the window does not absorb requests.
	_, err = db.Client.RCARun.Create().
		SetID("stale-rca").
		SetRunID("run-stale").
		SetCreatedAt(time.Now().Add(-services.IdempotencyWindow - time.Minute)).
		Save(ctx)
	require.NoError(t, err)

	fresh, err := svc.CreateRCARun(ctx, "run-stale")
	require.NoError(t, err)
	assert.NotEqual(t, "stale-rca", fresh)
}

func TestGetRCARunNotFound(t *testing.T) {
	db := testdb.NewTestClient(t)
	svc := services.NewRCAService(db.Client)

	_, err := svc.GetRCARun(context.Background(), "missing")
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestGetRCARunEmbedsReportWhenDone(t *testing.T) {
	db := testdb.NewTestClient(t)
	ingest := services.NewIngestService(db.Client)
	svc := services.NewRCAService(db.Client)
	ctx := context.Background()

	_, err := ingest.UpsertAgentRun(ctx, telemetryPayload("run-done"))
	require.NoError(t, err)
	rcaRunID, err := svc.CreateRCARun(ctx, "run-done")
	require.NoError(t, err)

	view, err := svc.GetRCARun(ctx, rcaRunID)
	require.NoError(t, err)
	assert.Equal(t, "queued", view.Status)
	assert.Nil(t, view.Report, "queued runs carry no report")

	report := &models.Report{
		ReportID:    "report-1",
		RCARunID:    rcaRunID,
		RunID:       "run-done",
		GeneratedAt: time.Now().UTC(),
		Category:    models.CategoryTimeout,
	}
	doc, err := services.EncodeReport(report)
	require.NoError(t, err)
	_, err = db.Client.RCAReport.Create().
		SetID(report.ReportID).
		SetRcaRunID(rcaRunID).
		SetRunID("run-done").
		SetReportJSON(doc).
		SetCategory(string(report.Category)).
		Save(ctx)
	require.NoError(t, err)
	_, err = db.Client.RCARun.UpdateOneID(rcaRunID).
		SetStatus(rcarun.StatusDone).
		SetPct(100).
		Save(ctx)
	require.NoError(t, err)

	view, err = svc.GetRCARun(ctx, rcaRunID)
	require.NoError(t, err)
	assert.Equal(t, "done", view.Status)
	require.NotNil(t, view.Report)
	assert.Equal(t, models.CategoryTimeout, view.Report.Category)
	assert.Equal(t, "report-1", view.Report.ReportID)
}
