package progress

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPublisher(t *testing.T) (*Publisher, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewPublisher(rdb), mr
}

func TestKeyNaming(t *testing.T) {
	assert.Equal(t, "rca:abc:status", StatusKey("abc"))
	assert.Equal(t, "rca:abc", Channel("abc"))
}

func TestPublishWritesSnapshot(t *testing.T) {
	publisher, mr := newTestPublisher(t)
	ctx := context.Background()

	publisher.Publish(ctx, "rca-1", "running", "Collecting evidence", 30, "Collecting evidence")

	assert.Equal(t, "running", mr.HGet("rca:rca-1:status", "status"))
	assert.Equal(t, "Collecting evidence", mr.HGet("rca:rca-1:status", "step"))
	assert.Equal(t, "30", mr.HGet("rca:rca-1:status", "pct"))

	updatedAt := mr.HGet("rca:rca-1:status", "updated_at")
	_, err := time.Parse(time.RFC3339, updatedAt)
	assert.NoError(t, err, "updated_at must be ISO-8601, got %q", updatedAt)
}

func TestPublishOverwritesSnapshot(t *testing.T) {
	publisher, mr := newTestPublisher(t)
	ctx := context.Background()

	publisher.Publish(ctx, "rca-1", "running", "starting", 5, "Starting RCA analysis")
	publisher.Publish(ctx, "rca-1", "done", "completed", 100, "RCA analysis completed")

	assert.Equal(t, "done", mr.HGet("rca:rca-1:status", "status"))
	assert.Equal(t, "100", mr.HGet("rca:rca-1:status", "pct"))
}

func TestPublishDeliversToSubscriber(t *testing.T) {
	publisher, _ := newTestPublisher(t)
	ctx := context.Background()

	sub := publisher.Subscribe(ctx, "rca-1")
	defer func() { _ = sub.Close() }()

	// Wait for the subscription to be established before publishing.
	_, err := sub.Receive(ctx)
	require.NoError(t, err)

	publisher.Publish(ctx, "rca-1", "running", "Classifying failure", 55, "Classifying failure")

	select {
	case msg := <-sub.Channel():
		var event Event
		require.NoError(t, json.Unmarshal([]byte(msg.Payload), &event))
		assert.Equal(t, "running", event.Status)
		assert.Equal(t, "Classifying failure", event.Step)
		assert.Equal(t, 55, event.Pct)
	case <-time.After(2 * time.Second):
		t.Fatal("no progress event received")
	}
}

func TestGetLatestStatus(t *testing.T) {
	publisher, _ := newTestPublisher(t)
	ctx := context.Background()

	assert.Nil(t, publisher.GetLatestStatus(ctx, "rca-missing"))

	publisher.Publish(ctx, "rca-1", "running", "Generating report", 85, "Generating report")

	event := publisher.GetLatestStatus(ctx, "rca-1")
	require.NotNil(t, event)
	assert.Equal(t, "running", event.Status)
	assert.Equal(t, "Generating report", event.Step)
	assert.Equal(t, 85, event.Pct)
}

func TestPublishSurvivesBrokerOutage(t *testing.T) {
	publisher, mr := newTestPublisher(t)
	mr.Close()

	// Must not panic or return an error to the caller.
	publisher.Publish(context.Background(), "rca-1", "running", "starting", 5, "Starting RCA analysis")
	assert.Nil(t, publisher.GetLatestStatus(context.Background(), "rca-1"))
}
