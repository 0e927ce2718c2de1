package webhook

import (
	"encoding/base64"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSlack(t *testing.T) {
	t.Run("event callback", func(t *testing.T) {
		body := []byte(`{"team_id":"T1","event_id":"Ev1","event":{"type":"message","ts":"1700000000.0001","text":"hi"}}`)
		parsed, err := parseSlack(body)
		require.NoError(t, err)
		assert.Equal(t, "T1", parsed.workspaceID)
		require.Len(t, parsed.events, 1)
		assert.Equal(t, "slack", parsed.events[0].Service)
		assert.Equal(t, "message", parsed.events[0].EventType)
		assert.Equal(t, "Ev1", parsed.events[0].EventID)
		assert.Equal(t, "hi", parsed.events[0].Data["text"])
	})

	t.Run("falls back to ts when event_id is absent", func(t *testing.T) {
		body := []byte(`{"team_id":"T1","event":{"type":"message","ts":"1700000000.0001"}}`)
		parsed, err := parseSlack(body)
		require.NoError(t, err)
		assert.Equal(t, "1700000000.0001", parsed.events[0].EventID)
	})

	t.Run("missing team_id", func(t *testing.T) {
		_, err := parseSlack([]byte(`{"event":{"type":"message"}}`))
		assert.Error(t, err)
	})

	t.Run("missing event", func(t *testing.T) {
		_, err := parseSlack([]byte(`{"team_id":"T1"}`))
		assert.Error(t, err)
	})
}

func TestParseGmail(t *testing.T) {
	notification := base64.StdEncoding.EncodeToString([]byte(`{"emailAddress":"a@example.com","historyId":12345}`))
	body := []byte(`{"message":{"data":"` + notification + `"}}`)

	parsed, err := parseGmail(body)
	require.NoError(t, err)
	assert.Equal(t, "a@example.com", parsed.workspaceID)
	assert.Equal(t, "a@example.com", parsed.gmailEmailAddress)
	// Numeric history ids normalize to their decimal string.
	assert.Equal(t, "12345", parsed.gmailHistoryID)
	// History expansion happens later; the parse itself yields no events.
	assert.Empty(t, parsed.events)

	t.Run("url-safe encoding", func(t *testing.T) {
		data := base64.URLEncoding.EncodeToString([]byte(`{"emailAddress":"b@example.com","historyId":"99"}`))
		parsed, err := parseGmail([]byte(`{"message":{"data":"` + data + `"}}`))
		require.NoError(t, err)
		assert.Equal(t, "99", parsed.gmailHistoryID)
	})

	t.Run("missing data", func(t *testing.T) {
		_, err := parseGmail([]byte(`{"message":{}}`))
		assert.Error(t, err)
	})
}

func TestParseMicrosoft(t *testing.T) {
	t.Run("created notification", func(t *testing.T) {
		body := []byte(`{"value":[{"changeType":"created","clientState":"user-1","resourceData":{"id":"msg-1"}}]}`)
		parsed, err := parseMicrosoft(body)
		require.NoError(t, err)
		assert.Equal(t, "user-1", parsed.ownerID)
		require.Len(t, parsed.events, 1)
		assert.Equal(t, "microsoft", parsed.events[0].Service)
		assert.Equal(t, "created", parsed.events[0].EventType)
		assert.Equal(t, "msg-1", parsed.events[0].EventID)
	})

	t.Run("updated notifications are dropped", func(t *testing.T) {
		body := []byte(`{"value":[{"changeType":"updated","clientState":"user-1"},{"changeType":"created","clientState":"user-1","resourceData":{"id":"msg-2"}}]}`)
		parsed, err := parseMicrosoft(body)
		require.NoError(t, err)
		require.Len(t, parsed.events, 1)
		assert.Equal(t, "msg-2", parsed.events[0].EventID)
	})

	t.Run("all updated is still a successful parse", func(t *testing.T) {
		body := []byte(`{"value":[{"changeType":"updated","clientState":"user-1"}]}`)
		parsed, err := parseMicrosoft(body)
		require.NoError(t, err)
		assert.Empty(t, parsed.events)
		assert.Equal(t, "user-1", parsed.ownerID)
	})

	t.Run("falls back to subscription id", func(t *testing.T) {
		body := []byte(`{"value":[{"changeType":"created","clientState":"user-1","subscriptionId":"sub-1","resource":"me/messages"}]}`)
		parsed, err := parseMicrosoft(body)
		require.NoError(t, err)
		assert.Equal(t, "sub-1_me/messages", parsed.events[0].EventID)
	})
}

func TestParseNotion(t *testing.T) {
	t.Run("top-level workspace_id", func(t *testing.T) {
		body := []byte(`{"id":"evt-1","type":"page.created","workspace_id":"ws-1","entity":{"id":"page-1"}}`)
		parsed, err := parseNotion(body)
		require.NoError(t, err)
		assert.Equal(t, "ws-1", parsed.workspaceID)
		assert.Equal(t, "page.created", parsed.events[0].EventType)
		assert.Equal(t, "evt-1", parsed.events[0].EventID)
	})

	t.Run("nested workspace object", func(t *testing.T) {
		body := []byte(`{"id":"evt-2","type":"page.updated","workspace":{"id":"ws-2"}}`)
		parsed, err := parseNotion(body)
		require.NoError(t, err)
		assert.Equal(t, "ws-2", parsed.workspaceID)
	})

	t.Run("missing workspace", func(t *testing.T) {
		_, err := parseNotion([]byte(`{"id":"evt-3","type":"page.created"}`))
		assert.Error(t, err)
	})
}

func TestParseTodoist(t *testing.T) {
	t.Run("numeric ids render without exponent", func(t *testing.T) {
		body := []byte(`{"event_name":"item:completed","user_id":2671355,"event_data":{"id":9007199254740993,"content":"buy milk"}}`)
		parsed, err := parseTodoist(body)
		require.NoError(t, err)
		assert.Equal(t, "2671355", parsed.workspaceID)
		require.Len(t, parsed.events, 1)
		assert.Equal(t, "item:completed", parsed.events[0].EventType)
		// Composite id keeps distinct events for the same entity distinct.
		assert.Contains(t, parsed.events[0].EventID, "_item:completed")
		assert.Equal(t, "buy milk", parsed.events[0].Data["content"])
	})

	t.Run("missing user_id", func(t *testing.T) {
		_, err := parseTodoist([]byte(`{"event_name":"item:added","event_data":{"id":"1"}}`))
		assert.Error(t, err)
	})
}

func TestParseFitbit(t *testing.T) {
	body := []byte(`[{"collectionType":"sleep","date":"2026-08-20","ownerId":"FB1","subscriptionId":"sub-1"},{"collectionType":"activities","date":"2026-08-20","ownerId":"FB1","subscriptionId":"sub-1"}]`)
	parsed, err := parseFitbit(body)
	require.NoError(t, err)
	assert.Equal(t, "FB1", parsed.workspaceID)
	require.Len(t, parsed.events, 2)
	assert.Equal(t, "sleep", parsed.events[0].EventType)
	assert.Equal(t, "sleep_2026-08-20_sub-1", parsed.events[0].EventID)
	assert.Equal(t, "activities_2026-08-20_sub-1", parsed.events[1].EventID)

	_, err = parseFitbit([]byte(`[]`))
	assert.Error(t, err)
}

func TestParseGitHub(t *testing.T) {
	headers := http.Header{}
	headers.Set("X-GitHub-Event", "issues")
	headers.Set("X-GitHub-Delivery", "delivery-uuid")
	body := []byte(`{"action":"opened","repository":{"full_name":"acme/widgets"}}`)

	parsed, err := parseGitHub(body, headers)
	require.NoError(t, err)
	assert.Equal(t, "acme/widgets", parsed.workspaceID)
	assert.Equal(t, "issues", parsed.events[0].EventType)
	assert.Equal(t, "delivery-uuid", parsed.events[0].EventID)

	t.Run("missing delivery header", func(t *testing.T) {
		_, err := parseGitHub(body, http.Header{})
		assert.Error(t, err)
	})
}

func TestParseUnsupportedService(t *testing.T) {
	_, err := parse("telegram", []byte(`{}`), http.Header{})
	assert.Error(t, err)
}

func TestStringField(t *testing.T) {
	m := map[string]any{
		"str":   "value",
		"num":   2671355.0,
		"float": 1700000000.25,
		"bool":  true,
	}
	assert.Equal(t, "value", stringField(m, "str"))
	assert.Equal(t, "2671355", stringField(m, "num"))
	assert.Equal(t, "1700000000.25", stringField(m, "float"))
	assert.Equal(t, "", stringField(m, "bool"))
	assert.Equal(t, "", stringField(m, "missing"))
}

func TestCanonicalService(t *testing.T) {
	assert.Equal(t, "gmail", canonicalService("google"))
	assert.Equal(t, "microsoft", canonicalService("outlook"))
	assert.Equal(t, "slack", canonicalService("slack"))
}
