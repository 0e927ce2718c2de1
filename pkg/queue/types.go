// Package queue provides the durable event queue and the dispatcher worker
// pool that drains it. Webhook ingress and the poller insert events; the
// dispatcher claims unprocessed events, matches them against the owner's
// webhook automations, and hands each match to the automation runner.
package queue

import (
	"context"
	"errors"
	"time"

	"github.com/triggerflow/triggerflow/ent"
)

// Sentinel errors for queue operations.
var (
	// ErrNoEventsAvailable indicates no unprocessed events are in the queue.
	ErrNoEventsAvailable = errors.New("no events available")
)

// AutomationRunner executes one automation against an event payload.
//
// The runner owns the entire run lifecycle: loading the owner's profile,
// walking the action list, persisting the execution log, and publishing
// status events. The dispatcher only handles claiming, matching, and retry
// bookkeeping.
type AutomationRunner interface {
	RunForEvent(ctx context.Context, automation *ent.Automation, event *ent.Event) error
}

// PoolHealth contains health information for the dispatcher pool.
type PoolHealth struct {
	IsHealthy     bool           `json:"is_healthy"`
	DBReachable   bool           `json:"db_reachable"`
	DBError       string         `json:"db_error,omitempty"`
	PodID         string         `json:"pod_id"`
	ActiveWorkers int            `json:"active_workers"`
	TotalWorkers  int            `json:"total_workers"`
	QueueDepth    int            `json:"queue_depth"`
	WorkerStats   []WorkerHealth `json:"worker_stats"`
}

// WorkerHealth contains health information for a single dispatcher worker.
type WorkerHealth struct {
	ID              string    `json:"id"`
	Status          string    `json:"status"` // "idle" or "working"
	CurrentEventID  string    `json:"current_event_id,omitempty"`
	EventsProcessed int       `json:"events_processed"`
	LastActivity    time.Time `json:"last_activity"`
}
