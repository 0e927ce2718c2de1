// Package template resolves {{...}} expressions in automation parameters.
//
// The grammar is intentionally tiny: a placeholder is a dotted path over the
// execution context, optionally with numeric array segments (-1 addresses the
// last element). No control flow, no filters — {{#if}}-style forms are
// rejected at validation time, never at execution time.
package template

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/triggerflow/triggerflow/pkg/models"
)

var (
	placeholder = regexp.MustCompile(`\{\{([^}]+)\}\}`)
	wholeValue  = regexp.MustCompile(`^\{\{([^}]+)\}\}$`)
	controlFlow = regexp.MustCompile(`\{\{\s*#`)
)

// Resolver resolves templates against a context. The clock is injectable so
// executions are reproducible under test.
type Resolver struct {
	now func() time.Time
}

// NewResolver creates a resolver using the wall clock.
func NewResolver() *Resolver {
	return &Resolver{now: time.Now}
}

// NewResolverAt creates a resolver with a fixed clock.
func NewResolverAt(now func() time.Time) *Resolver {
	return &Resolver{now: now}
}

// ContainsTemplate reports whether s holds at least one {{...}} placeholder.
func ContainsTemplate(s string) bool {
	return placeholder.MatchString(s)
}

// HasControlFlow reports whether s uses an unsupported {{#...}} block form.
func HasControlFlow(s string) bool {
	return controlFlow.MatchString(s)
}

// Resolve replaces every {{...}} placeholder in s. Unresolvable paths render
// as the empty string; non-scalar values are serialized as JSON.
func (r *Resolver) Resolve(s string, ctx map[string]any) string {
	return placeholder.ReplaceAllStringFunc(s, func(match string) string {
		path := strings.TrimSpace(match[2 : len(match)-2])
		value, ok := r.lookup(path, ctx)
		if !ok || value == nil {
			slog.Debug("Template variable not found", "path", path)
			return ""
		}
		return stringify(value)
	})
}

// ResolveValue resolves a string parameter value. When the string is exactly
// one placeholder that resolves to undefined, it returns nil so downstream
// tools see an absent parameter instead of an empty string.
func (r *Resolver) ResolveValue(s string, ctx map[string]any) any {
	if m := wholeValue.FindStringSubmatch(s); m != nil {
		path := strings.TrimSpace(m[1])
		value, ok := r.lookup(path, ctx)
		if !ok || value == nil {
			slog.Debug("Template variable not found", "path", path)
			return nil
		}
		return stringify(value)
	}
	return r.Resolve(s, ctx)
}

// ResolveParameters walks a parameter map recursively, templating every
// string it finds. Nested maps and arrays are resolved in place; other
// values pass through untouched.
func (r *Resolver) ResolveParameters(params map[string]any, ctx map[string]any) map[string]any {
	resolved := make(map[string]any, len(params))
	for key, value := range params {
		resolved[key] = r.resolveAny(value, ctx)
	}
	return resolved
}

func (r *Resolver) resolveAny(value any, ctx map[string]any) any {
	switch v := value.(type) {
	case string:
		return r.ResolveValue(v, ctx)
	case map[string]any:
		return r.ResolveParameters(v, ctx)
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = r.resolveAny(item, ctx)
		}
		return out
	default:
		return value
	}
}

// lookup resolves a path: built-in date/time variables first, then the
// context. The boolean is false when the path is undefined.
func (r *Resolver) lookup(path string, ctx map[string]any) (any, bool) {
	if value, ok := r.builtin(path, ctx); ok {
		return value, true
	}
	value := models.GetPath(ctx, path)
	if value == nil {
		return nil, false
	}
	return value, true
}

// builtin computes the date/time variables. Date values use the user's
// timezone (from user.timezone in context) with a UTC fallback; timestamps
// are always UTC.
func (r *Resolver) builtin(path string, ctx map[string]any) (string, bool) {
	utcNow := r.now().UTC()

	switch path {
	case "now":
		return utcNow.Format("2006-01-02T15:04:05Z"), true
	case "now_minus_1h":
		return utcNow.Add(-1 * time.Hour).Format("2006-01-02T15:04:05Z"), true
	case "now_minus_6h":
		return utcNow.Add(-6 * time.Hour).Format("2006-01-02T15:04:05Z"), true
	case "now_minus_12h":
		return utcNow.Add(-12 * time.Hour).Format("2006-01-02T15:04:05Z"), true
	case "now_minus_24h":
		return utcNow.Add(-24 * time.Hour).Format("2006-01-02T15:04:05Z"), true
	case "today_utc":
		return utcNow.Format("2006-01-02"), true
	case "yesterday_utc":
		return utcNow.AddDate(0, 0, -1).Format("2006-01-02"), true
	case "tomorrow_utc":
		return utcNow.AddDate(0, 0, 1).Format("2006-01-02"), true
	}

	userToday := r.userToday(ctx)
	switch path {
	case "today", "today_local":
		return userToday.Format("2006-01-02"), true
	case "yesterday", "yesterday_local":
		return userToday.AddDate(0, 0, -1).Format("2006-01-02"), true
	case "tomorrow", "tomorrow_local":
		return userToday.AddDate(0, 0, 1).Format("2006-01-02"), true
	case "two_days_ago":
		return userToday.AddDate(0, 0, -2).Format("2006-01-02"), true
	case "this_week_start":
		daysSinceMonday := (int(userToday.Weekday()) + 6) % 7
		return userToday.AddDate(0, 0, -daysSinceMonday).Format("2006-01-02"), true
	case "this_week_end":
		daysUntilSunday := 7 - ((int(userToday.Weekday()) + 6) % 7) - 1
		return userToday.AddDate(0, 0, daysUntilSunday).Format("2006-01-02"), true
	}

	return "", false
}

// userToday returns midnight of today in the user's timezone, or UTC when
// the timezone is unset or invalid.
func (r *Resolver) userToday(ctx map[string]any) time.Time {
	loc := time.UTC
	if tz, ok := models.GetPath(ctx, "user.timezone").(string); ok && tz != "" {
		parsed, err := time.LoadLocation(tz)
		if err != nil {
			slog.Warn("Invalid user timezone, falling back to UTC", "timezone", tz, "error", err)
		} else {
			loc = parsed
		}
	}
	now := r.now().In(loc)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
}

// stringify renders a resolved value for substitution into a string.
// Maps and arrays serialize as JSON so tools receive structured data intact.
func stringify(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case map[string]any, []any:
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(data)
	default:
		return fmt.Sprintf("%v", v)
	}
}
