package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
)

// Publisher broadcasts execution lifecycle events via pg_notify. Events are
// transient: the execution log table is the durable record, NOTIFY exists
// only for live delivery.
//
// Each public method accepts a typed payload struct — see payloads.go.
type Publisher struct {
	db *sql.DB
}

// NewPublisher creates a Publisher. The db parameter should be the *sql.DB
// from database.Client.DB().
func NewPublisher(db *sql.DB) *Publisher {
	return &Publisher{db: db}
}

// PublishExecutionStarted broadcasts an execution.started event to the
// global and per-owner channels.
func (p *Publisher) PublishExecutionStarted(ctx context.Context, payload ExecutionStartedPayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal ExecutionStartedPayload: %w", err)
	}
	return p.broadcast(ctx, payload.OwnerID, payloadJSON)
}

// PublishExecutionCompleted broadcasts an execution.completed event to the
// global and per-owner channels.
func (p *Publisher) PublishExecutionCompleted(ctx context.Context, payload ExecutionCompletedPayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal ExecutionCompletedPayload: %w", err)
	}
	return p.broadcast(ctx, payload.OwnerID, payloadJSON)
}

// PublishEventEnqueued broadcasts an event.enqueued event to the global and
// per-owner channels.
func (p *Publisher) PublishEventEnqueued(ctx context.Context, payload EventEnqueuedPayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal EventEnqueuedPayload: %w", err)
	}
	return p.broadcast(ctx, payload.OwnerID, payloadJSON)
}

// broadcast sends a pre-marshaled payload to the global channel and the
// owner's channel. Both sends are best-effort: if the global one fails, the
// owner one is still attempted. Returns the first error encountered.
func (p *Publisher) broadcast(ctx context.Context, ownerID string, payloadJSON []byte) error {
	var firstErr error
	if err := p.notify(ctx, GlobalChannel, payloadJSON); err != nil {
		slog.Warn("Failed to publish to global channel", "error", err)
		firstErr = err
	}
	if ownerID != "" {
		if err := p.notify(ctx, OwnerChannel(ownerID), payloadJSON); err != nil {
			slog.Warn("Failed to publish to owner channel", "owner_id", ownerID, "error", err)
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}

// notify broadcasts one payload via NOTIFY.
func (p *Publisher) notify(ctx context.Context, channel string, payloadJSON []byte) error {
	notifyPayload, err := truncateIfNeeded(payloadJSON)
	if err != nil {
		return err
	}
	if _, err := p.db.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, notifyPayload); err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}
	return nil
}

// truncateIfNeeded returns the payload string as-is if it fits within
// PostgreSQL's 8000-byte NOTIFY limit, otherwise returns a minimal envelope
// with only routing fields so the client can fetch the execution log.
func truncateIfNeeded(payloadJSON []byte) (string, error) {
	if len(payloadJSON) <= 7900 {
		return string(payloadJSON), nil
	}

	var routing struct {
		Type         string `json:"type"`
		ExecutionID  string `json:"execution_id"`
		AutomationID string `json:"automation_id"`
		OwnerID      string `json:"owner_id"`
	}
	if err := json.Unmarshal(payloadJSON, &routing); err != nil {
		return "", fmt.Errorf("failed to extract routing fields for truncation: %w", err)
	}

	truncated := map[string]any{
		"type":          routing.Type,
		"execution_id":  routing.ExecutionID,
		"automation_id": routing.AutomationID,
		"owner_id":      routing.OwnerID,
		"truncated":     true,
	}
	truncBytes, err := json.Marshal(truncated)
	if err != nil {
		return "", fmt.Errorf("failed to marshal truncated payload: %w", err)
	}
	return string(truncBytes), nil
}
