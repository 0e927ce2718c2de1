// Triggerflow server — provides HTTP API, runs the event dispatcher pool,
// and drives the polling and schedule loops.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/triggerflow/triggerflow/pkg/api"
	"github.com/triggerflow/triggerflow/pkg/config"
	"github.com/triggerflow/triggerflow/pkg/credentials"
	"github.com/triggerflow/triggerflow/pkg/database"
	"github.com/triggerflow/triggerflow/pkg/events"
	"github.com/triggerflow/triggerflow/pkg/executor"
	"github.com/triggerflow/triggerflow/pkg/notify"
	"github.com/triggerflow/triggerflow/pkg/poller"
	"github.com/triggerflow/triggerflow/pkg/queue"
	"github.com/triggerflow/triggerflow/pkg/scheduler"
	"github.com/triggerflow/triggerflow/pkg/services"
	"github.com/triggerflow/triggerflow/pkg/tools"
	"github.com/triggerflow/triggerflow/pkg/webhook"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// resolvePodID determines the pod identifier for multi-replica coordination.
// Priority: POD_ID env > HOSTNAME env > "local"
func resolvePodID() string {
	if id := os.Getenv("POD_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

func main() {
	// Parse command-line flags
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	// Load .env file from config directory
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	httpPort := getEnv("HTTP_PORT", "8080")
	podID := resolvePodID()

	slog.Info("Starting triggerflow",
		"http_port", httpPort,
		"pod_id", podID,
		"config_dir", *configDir)

	ctx := context.Background()

	// 1. Initialize configuration
	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	// 2. Initialize database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. Tool registry client
	// Note: grpc.NewClient uses lazy dialing; actual connection happens on first RPC call
	registryAddr := getEnv("TOOL_REGISTRY_ADDR", cfg.Registry.Addr)
	registry, err := tools.NewGRPCRegistry(registryAddr)
	if err != nil {
		slog.Error("Failed to initialize tool registry client", "addr", registryAddr, "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := registry.Close(); err != nil {
			slog.Error("Error closing tool registry client", "error", err)
		}
	}()
	tagCatalog := tools.NewTagCatalog(registry)
	slog.Info("Tool registry client initialized", "addr", registryAddr)

	// 4. Domain services
	eventPublisher := events.NewPublisher(dbClient.DB())
	credStore := credentials.NewStore(dbClient.Client, cfg.OAuth)
	userService := services.NewUserService(dbClient.Client)
	automationService := services.NewAutomationService(dbClient.Client)

	exec := executor.New(registry, notify.LogNotifier{},
		executor.WithActionTimeout(cfg.Executor.ActionTimeout))
	executionService := services.NewExecutionService(dbClient.Client, exec, userService, eventPublisher)
	slog.Info("Services initialized")

	// 5. Start dispatcher pool (before HTTP server)
	eventQueue := queue.New(dbClient.Client)
	pool := queue.NewDispatcherPool(podID, dbClient.Client, cfg.Dispatcher, executionService)
	if err := pool.Start(ctx); err != nil {
		slog.Error("Failed to start dispatcher pool", "error", err)
		os.Exit(1)
	}

	// 6. Poller, scheduler, and the cron driving them
	poll := poller.New(dbClient.Client, eventQueue, registry, tagCatalog, cfg.Poller)
	sched := scheduler.New(dbClient.Client, executionService, automationService, cfg.Scheduler)

	cronRunner, err := scheduler.NewRunner(sched, poll, cfg.Poller)
	if err != nil {
		slog.Error("Failed to build cron runner", "error", err)
		os.Exit(1)
	}
	cronRunner.Start()

	// 7. Webhook ingress + HTTP server
	webhookService := webhook.NewService(dbClient.Client, eventQueue, credStore, registry, eventPublisher, cfg.Webhooks)
	httpServer := api.NewServer(cfg, dbClient, automationService, executionService, webhookService, sched, poll, pool)

	errCh := make(chan error, 1)
	go func() {
		addr := ":" + httpPort
		slog.Info("HTTP server listening", "addr", addr)
		if err := httpServer.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("Triggerflow started successfully",
		"pod_id", podID,
		"dispatcher_workers", cfg.Dispatcher.WorkerCount)

	// 8. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 9. Graceful shutdown: cron first (no new sweeps), then the dispatcher
	// pool (finish in-flight events), then HTTP.
	cronRunner.Stop()

	done := make(chan struct{})
	go func() {
		pool.Stop()
		close(done)
	}()

	select {
	case <-done:
		slog.Info("Dispatcher pool stopped gracefully")
	case <-time.After(30 * time.Second):
		slog.Warn("Dispatcher pool shutdown timeout exceeded")
	}

	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
