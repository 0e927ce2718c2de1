package poller

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyCursor(t *testing.T) {
	tests := []struct {
		value string
		want  cursorKind
	}{
		{"", kindUnknown},
		{"2026-08-20", kindISO},
		{"2026-08-20T07:12:00Z", kindISO},
		{"1700000000.000100", kindNumeric},
		{"42", kindNumeric},
		{"Mon, 18 Aug 2026 09:30:00 +0000", kindRFC2822},
		{"presence:U123", kindSignature},
		{"status:away", kindSignature},
		{"task:42:true", kindSignature},
		{"state:open", kindSignature},
		{"not a date at all", kindUnknown},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, classifyCursor(tc.value), "classify(%q)", tc.value)
	}
}

func TestIsNewer(t *testing.T) {
	tests := []struct {
		name   string
		value  string
		cursor string
		want   bool
	}{
		{"empty cursor admits everything", "2026-08-20", "", true},
		{"iso newer", "2026-08-21", "2026-08-20", true},
		{"iso equal", "2026-08-20", "2026-08-20", false},
		{"iso older", "2026-08-19", "2026-08-20", false},
		{"numeric newer", "1700000001.5", "1700000000.25", true},
		{"numeric older", "1699999999", "1700000000.25", false},
		{"rfc2822 newer", "Tue, 19 Aug 2026 09:30:00 +0000", "Mon, 18 Aug 2026 09:30:00 +0000", true},
		{"rfc2822 older", "Sun, 17 Aug 2026 09:30:00 +0000", "Mon, 18 Aug 2026 09:30:00 +0000", false},
		{"signature changed", "status:away", "status:active", true},
		{"signature unchanged", "status:away", "status:away", false},
		// A cursor format migration must never silently drop items.
		{"shape mismatch admits", "2026-08-20", "1700000000.25", true},
		{"shape mismatch admits signature", "presence:U1", "2026-08-20", true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, isNewer(tc.value, tc.cursor))
		})
	}
}

func TestMaxCursor(t *testing.T) {
	assert.Equal(t, "2026-08-21", maxCursor("2026-08-20", "2026-08-21"))
	assert.Equal(t, "2026-08-21", maxCursor("2026-08-21", "2026-08-20"))
	assert.Equal(t, "x", maxCursor("", "x"))
	assert.Equal(t, "x", maxCursor("x", ""))
	// Mismatched shapes: the candidate reflects the current format.
	assert.Equal(t, "presence:U1", maxCursor("2026-08-20", "presence:U1"))
}

func TestItemDate(t *testing.T) {
	assert.Equal(t, "2026-08-20", itemDate(map[string]any{"date": "2026-08-20"}))
	assert.Equal(t, "1700000000.0001", itemDate(map[string]any{"ts": 1700000000.0001}))
	// ts is probed before created_at.
	assert.Equal(t, "a", itemDate(map[string]any{"ts": "a", "created_at": "b"}))
	assert.Equal(t, "", itemDate(map[string]any{"name": "no date"}))
}

func TestValueSignature(t *testing.T) {
	tests := []struct {
		name string
		item map[string]any
		want string
	}{
		{"slack status", map[string]any{"status_text": "lunch", "status_emoji": ":taco:"}, "status:lunch|:taco:"},
		{"slack status cleared", map[string]any{"status_text": "", "status_emoji": ""}, "status:|"},
		{"todoist task", map[string]any{"id": "42", "completed": true}, "task:42:true"},
		{"state field", map[string]any{"state": "open"}, "state:open"},
		{"status field", map[string]any{"status": "active"}, "status:active"},
		{"bare id", map[string]any{"id": "U123"}, "presence:U123"},
		{"nothing identifiable", map[string]any{"a": 1, "b": 2}, "presence:2"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, valueSignature(tc.item))
		})
	}
}
