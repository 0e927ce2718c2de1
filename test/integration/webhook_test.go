package integration

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/triggerflow/triggerflow/ent/event"
	"github.com/triggerflow/triggerflow/pkg/config"
	"github.com/triggerflow/triggerflow/pkg/webhook"
)

func newWebhookService(env *testEnv, cfg *config.WebhookConfig) *webhook.Service {
	if cfg == nil {
		cfg = &config.WebhookConfig{}
	}
	return webhook.NewService(env.client, env.queue, credStore(env), env.registry, nil, cfg)
}

func slackEventBody(teamID, eventID, text string) []byte {
	return []byte(fmt.Sprintf(
		`{"type":"event_callback","team_id":%q,"event_id":%q,"event":{"type":"message","ts":"1700000000.000100","text":%q}}`,
		teamID, eventID, text))
}

func TestSlackWebhookEnqueues(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.createUser(t, "user-1")
	env.createIntegration(t, "user-1", "slack", "T12345")
	env.createWebhookAutomation(t, "user-1", "slack", nil)

	svc := newWebhookService(env, nil)
	result := svc.Process(ctx, &webhook.Request{
		Service: "slack",
		Method:  http.MethodPost,
		Query:   url.Values{},
		Headers: http.Header{},
		Body:    slackEventBody("T12345", "Ev001", "hello"),
	})

	require.Equal(t, http.StatusOK, result.Status)
	assert.Equal(t, "accepted", result.JSON["status"])
	assert.Equal(t, 1, result.JSON["enqueued"])

	row, err := env.client.Event.Query().Where(event.EventIDEQ("Ev001")).Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, "user-1", row.OwnerID)
	assert.Equal(t, "slack", row.Service)
	assert.Equal(t, "message", row.EventType)
	assert.False(t, row.Processed)

	// Redelivery is idempotent.
	result = svc.Process(ctx, &webhook.Request{
		Service: "slack",
		Method:  http.MethodPost,
		Query:   url.Values{},
		Headers: http.Header{},
		Body:    slackEventBody("T12345", "Ev001", "hello"),
	})
	require.Equal(t, http.StatusOK, result.Status)
	assert.Equal(t, 0, result.JSON["enqueued"])
	assert.Equal(t, true, result.JSON["filtered"])
}

func TestWebhookUnknownWorkspaceIgnored(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	svc := newWebhookService(env, nil)
	result := svc.Process(ctx, &webhook.Request{
		Service: "slack",
		Method:  http.MethodPost,
		Query:   url.Values{},
		Headers: http.Header{},
		Body:    slackEventBody("T-unknown", "Ev002", "hello"),
	})

	// Unknown tenants are acknowledged, never retried by the sender.
	require.Equal(t, http.StatusOK, result.Status)
	assert.Equal(t, "ignored", result.JSON["status"])

	count, err := env.client.Event.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestSlackURLVerificationHandshake(t *testing.T) {
	env := newTestEnv(t)

	svc := newWebhookService(env, nil)
	result := svc.Process(context.Background(), &webhook.Request{
		Service: "slack",
		Method:  http.MethodPost,
		Query:   url.Values{},
		Headers: http.Header{},
		Body:    []byte(`{"type":"url_verification","challenge":"abc123"}`),
	})

	require.Equal(t, http.StatusOK, result.Status)
	assert.Equal(t, "abc123", result.Text)
}

func TestSlackSignatureVerification(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.createUser(t, "user-1")
	env.createIntegration(t, "user-1", "slack", "T12345")

	secret := "slack-signing-secret"
	svc := newWebhookService(env, &config.WebhookConfig{
		Secrets: map[string]string{"slack": secret},
	})

	body := slackEventBody("T12345", "Ev003", "signed")
	ts := strconv.FormatInt(time.Now().Unix(), 10)

	t.Run("valid signature accepted", func(t *testing.T) {
		headers := http.Header{}
		headers.Set("X-Slack-Request-Timestamp", ts)
		headers.Set("X-Slack-Signature", slackSign(secret, ts, body))

		result := svc.Process(ctx, &webhook.Request{
			Service: "slack",
			Method:  http.MethodPost,
			Query:   url.Values{},
			Headers: headers,
			Body:    body,
		})
		require.Equal(t, http.StatusOK, result.Status)
		assert.Equal(t, "accepted", result.JSON["status"])
	})

	t.Run("bad signature rejected", func(t *testing.T) {
		headers := http.Header{}
		headers.Set("X-Slack-Request-Timestamp", ts)
		headers.Set("X-Slack-Signature", "v0=deadbeef")

		result := svc.Process(ctx, &webhook.Request{
			Service: "slack",
			Method:  http.MethodPost,
			Query:   url.Values{},
			Headers: headers,
			Body:    body,
		})
		assert.Equal(t, http.StatusUnauthorized, result.Status)
	})

	t.Run("stale timestamp rejected", func(t *testing.T) {
		stale := strconv.FormatInt(time.Now().Add(-10*time.Minute).Unix(), 10)
		headers := http.Header{}
		headers.Set("X-Slack-Request-Timestamp", stale)
		headers.Set("X-Slack-Signature", slackSign(secret, stale, body))

		result := svc.Process(ctx, &webhook.Request{
			Service: "slack",
			Method:  http.MethodPost,
			Query:   url.Values{},
			Headers: headers,
			Body:    body,
		})
		assert.Equal(t, http.StatusUnauthorized, result.Status)
	})
}

func TestWebhookAutomationFilterDropsEvent(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.createUser(t, "user-1")
	env.createIntegration(t, "user-1", "slack", "T12345")
	env.createWebhookAutomation(t, "user-1", "slack", map[string]any{
		"filter": map[string]any{
			"path":  "trigger_data.text",
			"op":    "contains",
			"value": "urgent",
		},
	})

	svc := newWebhookService(env, nil)

	result := svc.Process(ctx, &webhook.Request{
		Service: "slack",
		Method:  http.MethodPost,
		Query:   url.Values{},
		Headers: http.Header{},
		Body:    slackEventBody("T12345", "Ev010", "routine update"),
	})
	require.Equal(t, http.StatusOK, result.Status)
	assert.Equal(t, 0, result.JSON["enqueued"])
	assert.Equal(t, true, result.JSON["filtered"])

	result = svc.Process(ctx, &webhook.Request{
		Service: "slack",
		Method:  http.MethodPost,
		Query:   url.Values{},
		Headers: http.Header{},
		Body:    slackEventBody("T12345", "Ev011", "urgent incident"),
	})
	require.Equal(t, http.StatusOK, result.Status)
	assert.Equal(t, 1, result.JSON["enqueued"])
}

func slackSign(secret, ts string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "v0:%s:", ts)
	mac.Write(body)
	return "v0=" + hex.EncodeToString(mac.Sum(nil))
}
