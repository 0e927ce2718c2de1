package queue

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/triggerflow/triggerflow/ent"
	"github.com/triggerflow/triggerflow/pkg/models"
)

// Queue persists inbound events. Insert is idempotent against the
// (service, event_id, owner_id) uniqueness constraint: a duplicate is
// swallowed and reported as not-created success.
type Queue struct {
	client *ent.Client
}

// New creates a Queue over the given ent client.
func New(client *ent.Client) *Queue {
	return &Queue{client: client}
}

// Enqueue inserts one event. Returns created=false when the event already
// exists under its deduplication key.
func (q *Queue) Enqueue(ctx context.Context, ev models.InboundEvent) (created bool, err error) {
	builder := q.client.Event.Create().
		SetOwnerID(ev.OwnerID).
		SetService(ev.Service).
		SetEventType(ev.EventType).
		SetEventID(ev.EventID).
		SetEventData(ev.Data)
	if !ev.CreatedAt.IsZero() {
		builder = builder.SetCreatedAt(ev.CreatedAt)
	}

	if _, err := builder.Save(ctx); err != nil {
		if ent.IsConstraintError(err) {
			slog.Debug("Duplicate event dropped",
				"service", ev.Service, "event_id", ev.EventID, "owner_id", ev.OwnerID)
			return false, nil
		}
		return false, fmt.Errorf("inserting event: %w", err)
	}
	return true, nil
}

// EnqueueAll inserts a batch of events, counting how many were newly
// created. Individual duplicates do not fail the batch.
func (q *Queue) EnqueueAll(ctx context.Context, evs []models.InboundEvent) (created int, err error) {
	for _, ev := range evs {
		ok, err := q.Enqueue(ctx, ev)
		if err != nil {
			return created, err
		}
		if ok {
			created++
		}
	}
	return created, nil
}
