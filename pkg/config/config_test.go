package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	// t.Setenv isolates env mutation per test; clear the knobs we assert on.
	for _, key := range []string{
		"DATABASE_URL", "REDIS_URL", "APP_ENV", "APP_INGEST_SECRET",
		"LOG_LEVEL", "OPENAI_API_KEY", "RQ_QUEUE_NAME", "CORS_ORIGINS", "HTTP_PORT",
	} {
		t.Setenv(key, "")
	}

	s, err := Load()
	require.NoError(t, err)

	assert.Contains(t, s.DatabaseURL, "postgres://")
	assert.Equal(t, "redis://localhost:6379/0", s.RedisURL)
	assert.Equal(t, "development", s.AppEnv)
	assert.Empty(t, s.AppIngestSecret)
	assert.Equal(t, "info", s.LogLevel)
	assert.False(t, s.LLMEnabled())
	assert.Equal(t, "rca", s.QueueName)
	assert.Equal(t, []string{"*"}, s.CORSOrigins)
	assert.Equal(t, "8080", s.HTTPPort)
	require.NotNil(t, s.Queue)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("REDIS_URL", "redis://broker:6379/2")
	t.Setenv("APP_INGEST_SECRET", "sekret")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("RQ_QUEUE_NAME", "rca-staging")
	t.Setenv("CORS_ORIGINS", "https://a.example.com, https://b.example.com")
	t.Setenv("HTTP_PORT", "9090")

	s, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "redis://broker:6379/2", s.RedisURL)
	assert.Equal(t, "sekret", s.AppIngestSecret)
	assert.True(t, s.LLMEnabled())
	assert.Equal(t, "rca-staging", s.QueueName)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, s.CORSOrigins)
	assert.Equal(t, "9090", s.HTTPPort)
}

func TestSlogLevel(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"WARN", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"bogus", slog.LevelInfo},
	}
	for _, tt := range tests {
		s := &Settings{LogLevel: tt.level}
		assert.Equal(t, tt.want, s.SlogLevel(), "level %q", tt.level)
	}
}
