// Package events publishes execution lifecycle events over PostgreSQL
// NOTIFY so dashboards can follow runs without polling the database.
package events

import "fmt"

// Event type constants carried in the payload "type" field.
const (
	EventTypeExecutionStarted   = "execution.started"
	EventTypeExecutionCompleted = "execution.completed"
	EventTypeEventEnqueued      = "event.enqueued"
)

// GlobalChannel is the NOTIFY channel carrying every execution lifecycle
// event.
const GlobalChannel = "automation_events"

// OwnerChannel returns the per-owner NOTIFY channel name.
func OwnerChannel(ownerID string) string {
	return fmt.Sprintf("automation_events_%s", ownerID)
}
