package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultQueueConfig(t *testing.T) {
	cfg := DefaultQueueConfig()

	assert.Equal(t, 2, cfg.WorkerCount)
	assert.Equal(t, 1*time.Second, cfg.PollInterval)
	assert.Equal(t, 250*time.Millisecond, cfg.PollIntervalJitter)
	assert.Equal(t, 30*time.Second, cfg.GracefulShutdownTimeout)
	assert.NoError(t, cfg.Validate())
}

func TestQueueConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*QueueConfig)
		wantErr string
	}{
		{"zero workers", func(c *QueueConfig) { c.WorkerCount = 0 }, "worker_count"},
		{"too many workers", func(c *QueueConfig) { c.WorkerCount = 51 }, "worker_count"},
		{"zero poll interval", func(c *QueueConfig) { c.PollInterval = 0 }, "poll_interval"},
		{"negative jitter", func(c *QueueConfig) { c.PollIntervalJitter = -time.Millisecond }, "poll_interval_jitter"},
		{"jitter at poll interval", func(c *QueueConfig) { c.PollIntervalJitter = c.PollInterval }, "poll_interval_jitter"},
		{"zero shutdown timeout", func(c *QueueConfig) { c.GracefulShutdownTimeout = 0 }, "graceful_shutdown_timeout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultQueueConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestQueueConfigValidateNil(t *testing.T) {
	var cfg *QueueConfig
	assert.Error(t, cfg.Validate())
}
