package webhook

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/triggerflow/triggerflow/pkg/models"
	"github.com/triggerflow/triggerflow/pkg/tools"
)

// gmailHistoryTool is the registry tool that returns the Gmail history
// delta since a given cursor.
const gmailHistoryTool = "gmail_get_history"

// expandGmailHistory performs the two-phase Gmail filter. A notification
// only says "something changed since history X"; the history delta decides
// whether new messages actually exist. No new messages: advance the cursor
// and return nothing. New messages: one event per message id (the message
// id is the dedup key). Delta failure: degrade to enqueue-through so a
// broken registry cannot drop mail.
func (s *Service) expandGmailHistory(ctx context.Context, ownerID string, parsed *parsedPayload) []models.InboundEvent {
	log := slog.With("owner_id", ownerID, "history_id", parsed.gmailHistoryID)

	passthrough := []models.InboundEvent{{
		Service:   "gmail",
		EventType: "new_email",
		EventID:   fmt.Sprintf("history_%s", parsed.gmailHistoryID),
		Data: map[string]any{
			"email_address": parsed.gmailEmailAddress,
			"history_id":    parsed.gmailHistoryID,
		},
	}}

	if s.registry == nil {
		return passthrough
	}

	startHistoryID, err := s.store.GmailHistoryCursor(ctx, ownerID)
	if err != nil {
		log.Warn("Failed to read gmail history cursor, enqueueing through", "error", err)
		return passthrough
	}
	if startHistoryID == "" {
		// First notification for this owner: no baseline to diff against.
		// Record the cursor and pass the notification through.
		s.advanceGmailCursor(ctx, ownerID, parsed.gmailHistoryID)
		return passthrough
	}

	// The delta call talks to the Gmail API, so it needs a live access
	// token; Get refreshes expired ones before handing them out.
	cred, err := s.store.Get(ctx, ownerID, "gmail")
	if err != nil {
		log.Warn("Failed to resolve gmail credential, enqueueing through", "error", err)
		return passthrough
	}

	output, err := s.registry.Execute(ctx, gmailHistoryTool, map[string]any{
		"start_history_id": startHistoryID,
		"access_token":     cred.AccessToken,
	}, ownerID, tools.ExecuteOptions{})
	if err != nil {
		log.Warn("Gmail history delta failed, enqueueing through", "error", err)
		return passthrough
	}

	messageIDs := extractMessageIDs(output)
	if len(messageIDs) == 0 {
		log.Info("Gmail notification carried no new messages")
		s.advanceGmailCursor(ctx, ownerID, parsed.gmailHistoryID)
		return nil
	}

	events := make([]models.InboundEvent, 0, len(messageIDs))
	for _, id := range messageIDs {
		events = append(events, models.InboundEvent{
			Service:   "gmail",
			EventType: "new_email",
			EventID:   id,
			Data: map[string]any{
				"message_id":    id,
				"email_address": parsed.gmailEmailAddress,
				"history_id":    parsed.gmailHistoryID,
			},
		})
	}
	s.advanceGmailCursor(ctx, ownerID, parsed.gmailHistoryID)
	return events
}

func (s *Service) advanceGmailCursor(ctx context.Context, ownerID, historyID string) {
	if historyID == "" {
		return
	}
	if err := s.store.SetGmailHistoryCursor(ctx, ownerID, historyID); err != nil {
		slog.Warn("Failed to advance gmail history cursor", "owner_id", ownerID, "error", err)
	}
}

// extractMessageIDs probes the history delta output for added message ids.
// Handles both the flat {messages: [{id}]} shape and the full history shape
// {history: [{messagesAdded: [{message: {id}}]}]}.
func extractMessageIDs(output any) []string {
	obj, ok := output.(map[string]any)
	if !ok {
		return nil
	}

	var ids []string
	seen := make(map[string]bool)
	add := func(id string) {
		if id != "" && !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}

	if messages, ok := obj["messages"].([]any); ok {
		for _, m := range messages {
			if msg, ok := m.(map[string]any); ok {
				add(stringField(msg, "id"))
			}
		}
	}

	if history, ok := obj["history"].([]any); ok {
		for _, h := range history {
			record, ok := h.(map[string]any)
			if !ok {
				continue
			}
			added, ok := record["messagesAdded"].([]any)
			if !ok {
				continue
			}
			for _, a := range added {
				wrapper, ok := a.(map[string]any)
				if !ok {
					continue
				}
				if msg, ok := wrapper["message"].(map[string]any); ok {
					add(stringField(msg, "id"))
				}
			}
		}
	}

	return ids
}
