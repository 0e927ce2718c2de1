package template

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedResolver() *Resolver {
	// Thursday 2026-08-20 22:30 UTC; in America/New_York this is still the
	// 20th, in Asia/Tokyo already the 21st.
	fixed := time.Date(2026, 8, 20, 22, 30, 0, 0, time.UTC)
	return NewResolverAt(func() time.Time { return fixed })
}

func TestResolve(t *testing.T) {
	r := fixedResolver()
	ctx := map[string]any{
		"trigger_data": map[string]any{
			"text":  "deploy finished",
			"user":  map[string]any{"name": "dana"},
			"items": []any{map[string]any{"id": "a"}, map[string]any{"id": "b"}},
			"count": 3.0,
		},
	}

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"simple path", "{{trigger_data.text}}", "deploy finished"},
		{"nested path", "hi {{trigger_data.user.name}}", "hi dana"},
		{"array index", "{{trigger_data.items.0.id}}", "a"},
		{"negative index is last", "{{trigger_data.items.-1.id}}", "b"},
		{"number renders bare", "count={{trigger_data.count}}", "count=3"},
		{"map serializes as json", "{{trigger_data.user}}", `{"name":"dana"}`},
		{"undefined renders empty", "x{{trigger_data.missing}}y", "xy"},
		{"multiple placeholders", "{{trigger_data.text}}/{{trigger_data.count}}", "deploy finished/3"},
		{"no placeholder passes through", "plain text", "plain text"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, r.Resolve(tc.in, ctx))
		})
	}
}

func TestResolveValueWholePlaceholder(t *testing.T) {
	r := fixedResolver()
	ctx := map[string]any{"trigger_data": map[string]any{"text": "hello"}}

	assert.Equal(t, "hello", r.ResolveValue("{{trigger_data.text}}", ctx))

	// A whole-value placeholder that misses resolves to nil, not "".
	assert.Nil(t, r.ResolveValue("{{trigger_data.missing}}", ctx))

	// Embedded placeholders always produce a string.
	assert.Equal(t, "got: ", r.ResolveValue("got: {{trigger_data.missing}}", ctx))
}

func TestResolveParameters(t *testing.T) {
	r := fixedResolver()
	ctx := map[string]any{"trigger_data": map[string]any{"id": "42", "score": 88.0}}

	params := map[string]any{
		"task_id": "{{trigger_data.id}}",
		"nested":  map[string]any{"note": "score {{trigger_data.score}}"},
		"list":    []any{"{{trigger_data.id}}", "literal"},
		"number":  7,
		"flag":    true,
	}

	resolved := r.ResolveParameters(params, ctx)
	assert.Equal(t, "42", resolved["task_id"])
	nested, ok := resolved["nested"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "score 88", nested["note"])
	list, ok := resolved["list"].([]any)
	require.True(t, ok)
	assert.Equal(t, "42", list[0])
	assert.Equal(t, "literal", list[1])
	assert.Equal(t, 7, resolved["number"])
	assert.Equal(t, true, resolved["flag"])
}

func TestBuiltinDateVariables(t *testing.T) {
	r := fixedResolver()
	ctx := map[string]any{}

	tests := []struct {
		path string
		want string
	}{
		{"now", "2026-08-20T22:30:00Z"},
		{"now_minus_1h", "2026-08-20T21:30:00Z"},
		{"now_minus_24h", "2026-08-19T22:30:00Z"},
		{"today_utc", "2026-08-20"},
		{"yesterday_utc", "2026-08-19"},
		{"tomorrow_utc", "2026-08-21"},
		{"today", "2026-08-20"},
		{"yesterday", "2026-08-19"},
		{"two_days_ago", "2026-08-18"},
		{"this_week_start", "2026-08-17"}, // Monday
		{"this_week_end", "2026-08-23"},   // Sunday
	}
	for _, tc := range tests {
		t.Run(tc.path, func(t *testing.T) {
			assert.Equal(t, tc.want, r.Resolve("{{"+tc.path+"}}", ctx))
		})
	}
}

func TestBuiltinDatesUseUserTimezone(t *testing.T) {
	r := fixedResolver()

	tokyo := map[string]any{"user": map[string]any{"timezone": "Asia/Tokyo"}}
	assert.Equal(t, "2026-08-21", r.Resolve("{{today}}", tokyo))

	newYork := map[string]any{"user": map[string]any{"timezone": "America/New_York"}}
	assert.Equal(t, "2026-08-20", r.Resolve("{{today}}", newYork))

	// Invalid timezones fall back to UTC instead of failing the resolve.
	invalid := map[string]any{"user": map[string]any{"timezone": "Mars/Olympus"}}
	assert.Equal(t, "2026-08-20", r.Resolve("{{today}}", invalid))

	// UTC timestamps ignore the user timezone.
	assert.Equal(t, "2026-08-20T22:30:00Z", r.Resolve("{{now}}", tokyo))
}

func TestContainsTemplate(t *testing.T) {
	assert.True(t, ContainsTemplate("{{a.b}}"))
	assert.True(t, ContainsTemplate("x {{a}} y"))
	assert.False(t, ContainsTemplate("plain"))
	assert.False(t, ContainsTemplate("{single}"))
}

func TestHasControlFlow(t *testing.T) {
	assert.True(t, HasControlFlow("{{#each items}}"))
	assert.True(t, HasControlFlow("{{ #if ok }}"))
	assert.False(t, HasControlFlow("{{trigger_data.text}}"))
}
