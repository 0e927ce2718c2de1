package poller

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// The poll cursor is an opaque string with four interpretations: ISO date
// (lexicographic compare), numeric fractional timestamp (float compare),
// RFC 2822 date (parsed to epoch — lexicographic compare is wrong for
// weekday-prefixed dates), or a structured value signature (inequality
// compare). Comparison dispatches on the cursor's syntactic shape; items
// are admitted by default when the shapes disagree so a service migrating
// cursor formats never silently drops data.
type cursorKind int

const (
	kindUnknown cursorKind = iota
	kindISO
	kindNumeric
	kindRFC2822
	kindSignature
)

var (
	isoDatePattern    = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}`)
	signaturePrefixes = []string{"presence:", "status:", "task:", "state:"}
	rfc2822Layouts    = []string{
		"Mon, 02 Jan 2006 15:04:05 -0700",
		"Mon, 02 Jan 2006 15:04:05 MST",
		"Mon, 2 Jan 2006 15:04:05 -0700",
		"Mon, 2 Jan 2006 15:04:05 MST",
	}
	// Item fields probed (in order) for the date/timestamp used in cursor
	// comparison.
	itemDateKeys = []string{
		"ts", "date", "day", "timestamp", "created_at", "createdAt",
		"created", "start_time", "startTime", "time", "updated_at",
		"modified", "end_time",
	}
)

func classifyCursor(s string) cursorKind {
	if s == "" {
		return kindUnknown
	}
	for _, prefix := range signaturePrefixes {
		if len(s) >= len(prefix) && s[:len(prefix)] == prefix {
			return kindSignature
		}
	}
	if _, err := strconv.ParseFloat(s, 64); err == nil {
		return kindNumeric
	}
	if isoDatePattern.MatchString(s) {
		return kindISO
	}
	if _, ok := parseRFC2822(s); ok {
		return kindRFC2822
	}
	return kindUnknown
}

func parseRFC2822(s string) (time.Time, bool) {
	for _, layout := range rfc2822Layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// isNewer reports whether value sorts strictly after cursor under the
// cursor's comparator. Shape mismatches admit the item.
func isNewer(value, cursor string) bool {
	if cursor == "" {
		return true
	}
	cursorKind := classifyCursor(cursor)
	valueKind := classifyCursor(value)
	if valueKind != cursorKind {
		return true
	}

	switch cursorKind {
	case kindISO:
		return value > cursor
	case kindNumeric:
		v, errV := strconv.ParseFloat(value, 64)
		c, errC := strconv.ParseFloat(cursor, 64)
		if errV != nil || errC != nil {
			return true
		}
		return v > c
	case kindRFC2822:
		vt, okV := parseRFC2822(value)
		ct, okC := parseRFC2822(cursor)
		if !okV || !okC {
			return true
		}
		return vt.After(ct)
	case kindSignature:
		return value != cursor
	default:
		return value != cursor
	}
}

// maxCursor returns the later of two cursor values under their shared
// comparator; with mismatched shapes the candidate wins (it reflects the
// service's current format).
func maxCursor(current, candidate string) string {
	if current == "" {
		return candidate
	}
	if candidate == "" {
		return current
	}
	if isNewer(candidate, current) {
		return candidate
	}
	return current
}

// itemDate extracts the item's date/timestamp string, empty when the item
// carries none.
func itemDate(item map[string]any) string {
	for _, key := range itemDateKeys {
		switch v := item[key].(type) {
		case string:
			if v != "" {
				return v
			}
		case float64:
			return strconv.FormatFloat(v, 'f', -1, 64)
		}
	}
	return ""
}

// valueSignature derives a comparable identity for items without a date.
// The shapes mirror the stored cursor forms: Slack status objects, Todoist
// task completion, generic state/status fields, and bare presence.
func valueSignature(item map[string]any) string {
	_, hasText := item["status_text"]
	_, hasEmoji := item["status_emoji"]
	if hasText || hasEmoji {
		return fmt.Sprintf("status:%s|%s",
			stringValue(item["status_text"]), stringValue(item["status_emoji"]))
	}
	if id, ok := item["id"]; ok {
		if completed, ok := item["completed"]; ok {
			return fmt.Sprintf("task:%s:%s", stringValue(id), stringValue(completed))
		}
	}
	if state, ok := item["state"]; ok {
		return "state:" + stringValue(state)
	}
	if status, ok := item["status"]; ok {
		return "status:" + stringValue(status)
	}
	if id, ok := item["id"]; ok {
		return "presence:" + stringValue(id)
	}
	return fmt.Sprintf("presence:%d", len(item))
}

func stringValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", t)
	}
}
