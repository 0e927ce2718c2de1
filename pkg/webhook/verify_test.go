package webhook

import (
	"crypto/hmac"
	"crypto/sha1"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/triggerflow/triggerflow/pkg/config"
)

func signingService(secrets map[string]string) *Service {
	return &Service{cfg: &config.WebhookConfig{Secrets: secrets}}
}

func hmacSHA256(secret string, data []byte) []byte {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(data)
	return mac.Sum(nil)
}

func slackSigned(secret string, body []byte) http.Header {
	ts := strconv.FormatInt(time.Now().Unix(), 10)
	base := fmt.Sprintf("v0:%s:%s", ts, body)
	h := http.Header{}
	h.Set("X-Slack-Request-Timestamp", ts)
	h.Set("X-Slack-Signature", "v0="+hex.EncodeToString(hmacSHA256(secret, []byte(base))))
	return h
}

func TestVerifySlack(t *testing.T) {
	s := signingService(map[string]string{"slack": "slack-secret"})
	body := []byte(`{"type":"event_callback"}`)

	t.Run("valid signature", func(t *testing.T) {
		req := &Request{Service: "slack", Headers: slackSigned("slack-secret", body), Body: body}
		assert.NoError(t, s.verifySignature(req))
	})

	t.Run("wrong secret", func(t *testing.T) {
		req := &Request{Service: "slack", Headers: slackSigned("other-secret", body), Body: body}
		assert.Error(t, s.verifySignature(req))
	})

	t.Run("missing headers", func(t *testing.T) {
		req := &Request{Service: "slack", Headers: http.Header{}, Body: body}
		assert.Error(t, s.verifySignature(req))
	})

	t.Run("stale timestamp rejected", func(t *testing.T) {
		ts := strconv.FormatInt(time.Now().Add(-10*time.Minute).Unix(), 10)
		base := fmt.Sprintf("v0:%s:%s", ts, body)
		h := http.Header{}
		h.Set("X-Slack-Request-Timestamp", ts)
		h.Set("X-Slack-Signature", "v0="+hex.EncodeToString(hmacSHA256("slack-secret", []byte(base))))
		req := &Request{Service: "slack", Headers: h, Body: body}
		assert.Error(t, s.verifySignature(req))
	})
}

func TestVerifyGitHub(t *testing.T) {
	s := signingService(map[string]string{"github": "gh-secret"})
	body := []byte(`{"action":"opened"}`)

	h := http.Header{}
	h.Set("X-Hub-Signature-256", "sha256="+hex.EncodeToString(hmacSHA256("gh-secret", body)))
	require.NoError(t, s.verifySignature(&Request{Service: "github", Headers: h, Body: body}))

	h.Set("X-Hub-Signature-256", "sha256=deadbeef")
	assert.Error(t, s.verifySignature(&Request{Service: "github", Headers: h, Body: body}))
}

func TestVerifyGoogleToken(t *testing.T) {
	s := signingService(map[string]string{"gmail": "push-token"})

	ok := url.Values{"token": []string{"push-token"}}
	assert.NoError(t, s.verifySignature(&Request{Service: "gmail", Query: ok}))

	bad := url.Values{"token": []string{"wrong"}}
	assert.Error(t, s.verifySignature(&Request{Service: "gmail", Query: bad}))
	assert.Error(t, s.verifySignature(&Request{Service: "gmail", Query: url.Values{}}))
}

func TestVerifyMicrosoft(t *testing.T) {
	s := signingService(map[string]string{"microsoft": "ms-secret"})
	body := []byte(`{"value":[]}`)

	h := http.Header{}
	h.Set("X-Microsoft-Signature", base64.StdEncoding.EncodeToString(hmacSHA256("ms-secret", body)))
	assert.NoError(t, s.verifySignature(&Request{Service: "microsoft", Headers: h, Body: body}))

	h.Set("X-Microsoft-Signature", base64.StdEncoding.EncodeToString(hmacSHA256("wrong", body)))
	assert.Error(t, s.verifySignature(&Request{Service: "microsoft", Headers: h, Body: body}))
}

func TestVerifyNotion(t *testing.T) {
	s := signingService(map[string]string{"notion": "notion-token"})
	body := []byte(`{"id":"evt"}`)

	h := http.Header{}
	h.Set("X-Notion-Signature", "sha256="+hex.EncodeToString(hmacSHA256("notion-token", body)))
	assert.NoError(t, s.verifySignature(&Request{Service: "notion", Headers: h, Body: body}))
}

func TestVerifyTodoist(t *testing.T) {
	s := signingService(map[string]string{"todoist": "td-secret"})
	body := []byte(`{"event_name":"item:added"}`)

	h := http.Header{}
	h.Set("X-Todoist-Hmac-SHA256", base64.StdEncoding.EncodeToString(hmacSHA256("td-secret", body)))
	assert.NoError(t, s.verifySignature(&Request{Service: "todoist", Headers: h, Body: body}))

	h.Set("X-Todoist-Hmac-SHA256", "bogus")
	assert.Error(t, s.verifySignature(&Request{Service: "todoist", Headers: h, Body: body}))
}

func TestVerifyFitbit(t *testing.T) {
	s := signingService(map[string]string{"fitbit": "fb-secret"})
	body := []byte(`[{"collectionType":"sleep"}]`)

	// Fitbit keys the HMAC-SHA1 with the client secret plus a trailing "&".
	mac := hmac.New(sha1.New, []byte("fb-secret&"))
	mac.Write(body)
	h := http.Header{}
	h.Set("X-Fitbit-Signature", base64.StdEncoding.EncodeToString(mac.Sum(nil)))
	assert.NoError(t, s.verifySignature(&Request{Service: "fitbit", Headers: h, Body: body}))
}

func TestVerifyNoSecretSkips(t *testing.T) {
	s := signingService(map[string]string{})
	req := &Request{Service: "slack", Headers: http.Header{}, Body: []byte("{}")}
	assert.NoError(t, s.verifySignature(req))
}

func TestVerifyUnknownServiceFallsBack(t *testing.T) {
	s := signingService(map[string]string{"customcrm": "crm-secret"})
	body := []byte(`{"ok":true}`)

	h := http.Header{}
	h.Set("X-Hub-Signature-256", "sha256="+hex.EncodeToString(hmacSHA256("crm-secret", body)))
	assert.NoError(t, s.verifySignature(&Request{Service: "customcrm", Headers: h, Body: body}))

	assert.Error(t, s.verifySignature(&Request{Service: "customcrm", Headers: http.Header{}, Body: body}))
}
