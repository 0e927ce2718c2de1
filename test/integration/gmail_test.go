package integration

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/triggerflow/triggerflow/ent/event"
	"github.com/triggerflow/triggerflow/pkg/webhook"
)

// gmailPushBody builds the Pub/Sub push envelope Gmail delivers: message.data
// is base64-encoded JSON {emailAddress, historyId}.
func gmailPushBody(email string, historyID int) []byte {
	notification := fmt.Sprintf(`{"emailAddress":%q,"historyId":%d}`, email, historyID)
	data := base64.StdEncoding.EncodeToString([]byte(notification))
	return []byte(fmt.Sprintf(`{"message":{"data":%q,"messageId":"pubsub-1"},"subscription":"projects/test/subscriptions/gmail"}`, data))
}

func gmailRequest(body []byte) *webhook.Request {
	return &webhook.Request{
		Service: "gmail",
		Method:  http.MethodPost,
		Query:   url.Values{},
		Headers: http.Header{},
		Body:    body,
	}
}

func setupGmailOwner(t *testing.T, env *testEnv) {
	t.Helper()
	env.createUser(t, "user-1")
	env.createIntegration(t, "user-1", "gmail", "user@example.com")
	env.createWebhookAutomation(t, "user-1", "gmail", nil)
}

func TestGmailFirstNotificationRecordsBaseline(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	setupGmailOwner(t, env)
	env.registry.Register("gmail_get_history", nil, func(params map[string]any) (any, error) {
		return map[string]any{"history": []any{}}, nil
	})

	svc := newWebhookService(env, nil)
	result := svc.Process(ctx, gmailRequest(gmailPushBody("user@example.com", 100)))

	require.Equal(t, http.StatusOK, result.Status)
	assert.Equal(t, 1, result.JSON["enqueued"])

	// With no stored cursor there is nothing to diff against: the delta is
	// skipped, the notification passes through, and the cursor is recorded.
	assert.Empty(t, env.registry.CallsTo("gmail_get_history"))

	cursor, err := credStore(env).GmailHistoryCursor(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "100", cursor)

	row, err := env.client.Event.Query().Where(event.EventIDEQ("history_100")).Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, "new_email", row.EventType)
	assert.Equal(t, "100", row.EventData["history_id"])
}

func TestGmailNoNewMessagesAdvancesCursorOnly(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	setupGmailOwner(t, env)
	require.NoError(t, credStore(env).SetGmailHistoryCursor(ctx, "user-1", "100"))
	env.registry.Register("gmail_get_history", nil, func(params map[string]any) (any, error) {
		return map[string]any{"historyId": "200"}, nil
	})

	svc := newWebhookService(env, nil)
	result := svc.Process(ctx, gmailRequest(gmailPushBody("user@example.com", 200)))

	require.Equal(t, http.StatusOK, result.Status)
	assert.Equal(t, 0, result.JSON["enqueued"])
	assert.Equal(t, true, result.JSON["filtered"])

	calls := env.registry.CallsTo("gmail_get_history")
	require.Len(t, calls, 1)
	assert.Equal(t, "100", calls[0].Params["start_history_id"])
	assert.Equal(t, "token-user-1", calls[0].Params["access_token"])
	assert.Equal(t, "user-1", calls[0].OwnerID)

	cursor, err := credStore(env).GmailHistoryCursor(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "200", cursor)

	count, err := env.client.Event.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestGmailHistoryDeltaFansOutPerMessage(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	setupGmailOwner(t, env)
	require.NoError(t, credStore(env).SetGmailHistoryCursor(ctx, "user-1", "100"))
	env.registry.Register("gmail_get_history", nil, func(params map[string]any) (any, error) {
		return map[string]any{"history": []any{
			map[string]any{"messagesAdded": []any{
				map[string]any{"message": map[string]any{"id": "msg-1"}},
				map[string]any{"message": map[string]any{"id": "msg-2"}},
			}},
			// The same message can appear in several history records.
			map[string]any{"messagesAdded": []any{
				map[string]any{"message": map[string]any{"id": "msg-1"}},
			}},
		}}, nil
	})

	svc := newWebhookService(env, nil)
	result := svc.Process(ctx, gmailRequest(gmailPushBody("user@example.com", 300)))

	require.Equal(t, http.StatusOK, result.Status)
	assert.Equal(t, 2, result.JSON["received"])
	assert.Equal(t, 2, result.JSON["enqueued"])
	assert.NotContains(t, result.JSON, "filtered")

	row, err := env.client.Event.Query().Where(event.EventIDEQ("msg-1")).Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, "user-1", row.OwnerID)
	assert.Equal(t, "new_email", row.EventType)
	assert.Equal(t, "msg-1", row.EventData["message_id"])
	assert.Equal(t, "user@example.com", row.EventData["email_address"])

	cursor, err := credStore(env).GmailHistoryCursor(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "300", cursor)

	// Pub/Sub redelivers; the message id is the dedup key.
	result = svc.Process(ctx, gmailRequest(gmailPushBody("user@example.com", 300)))
	require.Equal(t, http.StatusOK, result.Status)
	assert.Equal(t, 0, result.JSON["enqueued"])
	assert.Equal(t, true, result.JSON["filtered"])

	count, err := env.client.Event.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestGmailHistoryDeltaFailureEnqueuesThrough(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	setupGmailOwner(t, env)
	require.NoError(t, credStore(env).SetGmailHistoryCursor(ctx, "user-1", "100"))
	env.registry.Register("gmail_get_history", nil, func(params map[string]any) (any, error) {
		return nil, fmt.Errorf("history delta unavailable")
	})

	svc := newWebhookService(env, nil)
	result := svc.Process(ctx, gmailRequest(gmailPushBody("user@example.com", 400)))

	// A broken delta must not drop mail: the raw notification goes through.
	require.Equal(t, http.StatusOK, result.Status)
	assert.Equal(t, 1, result.JSON["enqueued"])

	row, err := env.client.Event.Query().Where(event.EventIDEQ("history_400")).Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, "new_email", row.EventType)

	// The cursor stays put so the next successful delta covers this range.
	cursor, err := credStore(env).GmailHistoryCursor(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "100", cursor)
}
