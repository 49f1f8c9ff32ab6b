// Command agentops runs the AgentOps RCA service: the telemetry ingest API
// and the RCA worker pool in a single process.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/agentops/agentops/pkg/api"
	"github.com/agentops/agentops/pkg/config"
	"github.com/agentops/agentops/pkg/database"
	"github.com/agentops/agentops/pkg/progress"
	"github.com/agentops/agentops/pkg/queue"
	"github.com/agentops/agentops/pkg/rca"
	"github.com/agentops/agentops/pkg/services"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Fatal error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// Best-effort: absent .env is fine, real deployments use the environment.
	_ = godotenv.Load()

	settings, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: settings.SlogLevel(),
	}))
	slog.SetDefault(logger)
	slog.Info("Starting agentops", "env", settings.AppEnv, "queue", settings.QueueName)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.NewClient(ctx, database.NewConfig(settings.DatabaseURL))
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			slog.Error("Failed to close database", "error", err)
		}
	}()

	redisOpts, err := redis.ParseURL(settings.RedisURL)
	if err != nil {
		return fmt.Errorf("parsing redis url: %w", err)
	}
	rdb := redis.NewClient(redisOpts)
	defer func() {
		if err := rdb.Close(); err != nil {
			slog.Error("Failed to close redis client", "error", err)
		}
	}()
	if err := rdb.Ping(ctx).Err(); err != nil {
		// The broker is best-effort: progress streaming degrades, the
		// pipeline itself keeps working off the database.
		slog.Warn("Redis unreachable at startup", "error", err)
	}

	publisher := progress.NewPublisher(rdb)
	narrative := rca.NewNarrativeEngine(settings.OpenAIAPIKey)
	evidence := services.NewEvidenceStore(db.Client)
	orchestrator := rca.NewOrchestrator(db.Client, evidence, publisher, narrative)

	podID, err := os.Hostname()
	if err != nil || podID == "" {
		podID = settings.QueueName
	}
	pool := queue.NewWorkerPool(podID, db.Client, settings.Queue, orchestrator)
	if err := pool.Start(ctx); err != nil {
		return fmt.Errorf("starting worker pool: %w", err)
	}

	ingest := services.NewIngestService(db.Client)
	rcaService := services.NewRCAService(db.Client)
	server := api.NewServer(settings, db, ingest, rcaService, publisher, pool)

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	select {
	case <-ctx.Done():
		slog.Info("Shutdown signal received")
	case err := <-serverErr:
		if err != nil {
			pool.Stop()
			return err
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), settings.Queue.GracefulShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP shutdown error", "error", err)
	}
	pool.Stop()

	slog.Info("Shutdown complete")
	return nil
}
