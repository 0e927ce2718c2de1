package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"entgo.io/ent/dialect/sql"

	"github.com/triggerflow/triggerflow/ent"
	"github.com/triggerflow/triggerflow/ent/automation"
	"github.com/triggerflow/triggerflow/ent/event"
	"github.com/triggerflow/triggerflow/pkg/condition"
	"github.com/triggerflow/triggerflow/pkg/config"
	"github.com/triggerflow/triggerflow/pkg/models"
	"github.com/triggerflow/triggerflow/pkg/template"
)

// WorkerStatus represents the current state of a dispatcher worker.
type WorkerStatus string

// Worker status constants.
const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)

// Worker is a single dispatcher worker that claims and dispatches queued
// events.
type Worker struct {
	id       string
	podID    string
	client   *ent.Client
	config   *config.DispatcherConfig
	runner   AutomationRunner
	resolver *template.Resolver
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	// Health tracking
	mu              sync.RWMutex
	status          WorkerStatus
	currentEventID  string
	eventsProcessed int
	lastActivity    time.Time
}

// NewWorker creates a dispatcher worker.
func NewWorker(id, podID string, client *ent.Client, cfg *config.DispatcherConfig, runner AutomationRunner) *Worker {
	return &Worker{
		id:           id,
		podID:        podID,
		client:       client,
		config:       cfg,
		runner:       runner,
		resolver:     template.NewResolver(),
		stopCh:       make(chan struct{}),
		status:       WorkerStatusIdle,
		lastActivity: time.Now(),
	}
}

// Start begins the worker polling loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for it to finish.
// It is safe to call Stop multiple times.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// Health returns the current worker health status.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:              w.id,
		Status:          string(w.status),
		CurrentEventID:  w.currentEventID,
		EventsProcessed: w.eventsProcessed,
		LastActivity:    w.lastActivity,
	}
}

// run is the main worker loop.
func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id, "pod_id", w.podID)
	log.Info("Dispatcher worker started")

	for {
		select {
		case <-w.stopCh:
			log.Info("Dispatcher worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, dispatcher worker shutting down")
			return
		default:
			if err := w.pollAndDispatch(ctx); err != nil {
				if errors.Is(err, ErrNoEventsAvailable) {
					w.sleep(w.pollInterval())
					continue
				}
				log.Error("Error dispatching event", "error", err)
				w.sleep(time.Second) // Brief backoff on error
			}
		}
	}
}

// sleep waits for the given duration or until stop is signalled.
func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

// pollAndDispatch claims the next unprocessed event and dispatches it to the
// owner's matching webhook automations.
func (w *Worker) pollAndDispatch(ctx context.Context) error {
	ev, err := w.claimNextEvent(ctx)
	if err != nil {
		return err
	}

	log := slog.With("event_id", ev.EventID, "service", ev.Service, "worker_id", w.id)
	log.Info("Event claimed", "owner_id", ev.OwnerID, "event_type", ev.EventType)

	w.setStatus(WorkerStatusWorking, ev.EventID)
	defer w.setStatus(WorkerStatusIdle, "")

	if err := w.dispatch(ctx, ev); err != nil {
		// Infrastructure failure: release the event for another attempt,
		// up to the retry cap.
		if releaseErr := w.releaseForRetry(context.Background(), ev); releaseErr != nil {
			log.Error("Failed to release event for retry", "error", releaseErr)
		}
		return fmt.Errorf("dispatching event %s: %w", ev.EventID, err)
	}

	w.mu.Lock()
	w.eventsProcessed++
	w.mu.Unlock()

	return nil
}

// claimNextEvent atomically claims the oldest unprocessed event using
// FOR UPDATE SKIP LOCKED. The processed flag flips inside the claim
// transaction, so an event is dispatched at most once even across replicas.
func (w *Worker) claimNextEvent(ctx context.Context) (*ent.Event, error) {
	tx, err := w.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	ev, err := tx.Event.Query().
		Where(event.ProcessedEQ(false)).
		Order(ent.Asc(event.FieldCreatedAt)).
		Limit(1).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNoEventsAvailable
		}
		return nil, fmt.Errorf("failed to query unprocessed event: %w", err)
	}

	ev, err = ev.Update().
		SetProcessed(true).
		SetProcessedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim event: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}

	return ev, nil
}

// dispatch runs every matching webhook automation for the event. Runner
// failures are per-automation and do not fail the dispatch; only the
// inability to load candidates does.
func (w *Worker) dispatch(ctx context.Context, ev *ent.Event) error {
	candidates, err := w.client.Automation.Query().
		Where(
			automation.OwnerIDEQ(ev.OwnerID),
			automation.ActiveEQ(true),
			automation.TriggerTypeEQ(automation.TriggerTypeWebhook),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("loading webhook automations: %w", err)
	}

	log := slog.With("event_id", ev.EventID, "service", ev.Service)

	matched := 0
	for _, auto := range candidates {
		var cfg models.WebhookTriggerConfig
		if err := models.DecodeTriggerConfig(auto.TriggerConfig, &cfg); err != nil {
			log.Warn("Skipping automation with malformed trigger_config",
				"automation_id", auto.ID, "error", err)
			continue
		}
		if !strings.EqualFold(cfg.Service, ev.Service) || !cfg.MatchesEventType(ev.EventType) {
			continue
		}
		if f := cfg.FilterCondition(); f != nil {
			filterCtx := map[string]any{"trigger_data": ev.EventData}
			if !condition.EvaluateFilter(f, filterCtx, w.resolver) {
				log.Info("Automation filter rejected event", "automation_id", auto.ID)
				continue
			}
		}

		matched++
		if err := w.runner.RunForEvent(ctx, auto, ev); err != nil {
			log.Error("Automation run failed", "automation_id", auto.ID, "error", err)
		}
	}

	log.Info("Event dispatched", "candidates", len(candidates), "matched", matched)
	return nil
}

// releaseForRetry returns a claimed event to the queue after an
// infrastructure failure, bumping retry_count. Events past the retry cap
// stay processed and are logged as dropped.
func (w *Worker) releaseForRetry(ctx context.Context, ev *ent.Event) error {
	if ev.RetryCount >= w.config.MaxRetries {
		slog.Warn("Event exhausted retries, dropping",
			"event_id", ev.EventID, "service", ev.Service, "retry_count", ev.RetryCount)
		return nil
	}
	return w.client.Event.UpdateOneID(ev.ID).
		SetProcessed(false).
		ClearProcessedAt().
		SetRetryCount(ev.RetryCount + 1).
		Exec(ctx)
}

// pollInterval returns the poll duration with jitter.
func (w *Worker) pollInterval() time.Duration {
	base := w.config.PollInterval
	jitter := w.config.PollIntervalJitter
	if jitter <= 0 {
		return base
	}
	// Range: [base - jitter, base + jitter]
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}

// setStatus updates the worker's health tracking state.
func (w *Worker) setStatus(status WorkerStatus, eventID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.currentEventID = eventID
	w.lastActivity = time.Now()
}
