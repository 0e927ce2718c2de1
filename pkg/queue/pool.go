package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/triggerflow/triggerflow/ent"
	"github.com/triggerflow/triggerflow/ent/event"
	"github.com/triggerflow/triggerflow/pkg/config"
)

// DispatcherPool manages a pool of dispatcher workers draining the event
// queue.
type DispatcherPool struct {
	podID   string
	client  *ent.Client
	config  *config.DispatcherConfig
	runner  AutomationRunner
	workers []*Worker
	mu      sync.Mutex
	started bool
}

// NewDispatcherPool creates a dispatcher pool.
func NewDispatcherPool(podID string, client *ent.Client, cfg *config.DispatcherConfig, runner AutomationRunner) *DispatcherPool {
	return &DispatcherPool{
		podID:   podID,
		client:  client,
		config:  cfg,
		runner:  runner,
		workers: make([]*Worker, 0, cfg.WorkerCount),
	}
}

// Start spawns the worker goroutines. It is safe to call multiple times;
// subsequent calls are no-ops.
func (p *DispatcherPool) Start(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.started {
		slog.Warn("Dispatcher pool already started, ignoring duplicate Start call", "pod_id", p.podID)
		return nil
	}
	p.started = true

	slog.Info("Starting dispatcher pool", "pod_id", p.podID, "worker_count", p.config.WorkerCount)

	for i := 0; i < p.config.WorkerCount; i++ {
		workerID := fmt.Sprintf("%s-dispatcher-%d", p.podID, i)
		worker := NewWorker(workerID, p.podID, p.client, p.config, p.runner)
		p.workers = append(p.workers, worker)
		worker.Start(ctx)
	}

	slog.Info("Dispatcher pool started")
	return nil
}

// Stop signals all workers to stop and waits for them to finish. Workers
// finish their current event before exiting.
func (p *DispatcherPool) Stop() {
	slog.Info("Stopping dispatcher pool gracefully")
	for _, worker := range p.workers {
		worker.Stop()
	}
	slog.Info("Dispatcher pool stopped gracefully")
}

// Health returns the current health status of the pool.
func (p *DispatcherPool) Health() *PoolHealth {
	ctx := context.Background()

	queueDepth, errQ := p.client.Event.Query().
		Where(event.ProcessedEQ(false)).
		Count(ctx)
	if errQ != nil {
		slog.Error("Failed to query queue depth for health check",
			"pod_id", p.podID, "error", errQ)
	}

	workerStats := make([]WorkerHealth, len(p.workers))
	activeWorkers := 0
	for i, worker := range p.workers {
		stats := worker.Health()
		workerStats[i] = stats
		if stats.Status == string(WorkerStatusWorking) {
			activeWorkers++
		}
	}

	dbHealthy := errQ == nil
	var dbError string
	if !dbHealthy {
		dbError = fmt.Sprintf("queue depth query failed: %v", errQ)
	}

	return &PoolHealth{
		IsHealthy:     len(p.workers) > 0 && dbHealthy,
		DBReachable:   dbHealthy,
		DBError:       dbError,
		PodID:         p.podID,
		ActiveWorkers: activeWorkers,
		TotalWorkers:  len(p.workers),
		QueueDepth:    queueDepth,
		WorkerStats:   workerStats,
	}
}
