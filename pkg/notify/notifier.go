// Package notify defines the notification collaborator contract. Delivery
// itself (push, SMS, email) lives outside this repository; the engine only
// decides when a notification is owed.
package notify

import (
	"context"
	"log/slog"
)

// Notifier receives user-facing engine notifications.
type Notifier interface {
	// NotifyUsageLimitExceeded tells the owner an automation was halted by
	// a service usage limit.
	NotifyUsageLimitExceeded(ctx context.Context, ownerID, automationID, automationName string) error

	// NotifyAutomationFailed tells the owner a run ended with every
	// attempted action failing.
	NotifyAutomationFailed(ctx context.Context, ownerID, automationID, automationName, errorSummary string) error
}

// LogNotifier is the default Notifier: it records the notification in the
// structured log and delivers nothing.
type LogNotifier struct{}

// NotifyUsageLimitExceeded implements Notifier.
func (LogNotifier) NotifyUsageLimitExceeded(ctx context.Context, ownerID, automationID, automationName string) error {
	slog.Info("Usage limit notification",
		"owner_id", ownerID,
		"automation_id", automationID,
		"automation_name", automationName)
	return nil
}

// NotifyAutomationFailed implements Notifier.
func (LogNotifier) NotifyAutomationFailed(ctx context.Context, ownerID, automationID, automationName, errorSummary string) error {
	slog.Info("Automation failure notification",
		"owner_id", ownerID,
		"automation_id", automationID,
		"automation_name", automationName,
		"error_summary", errorSummary)
	return nil
}
