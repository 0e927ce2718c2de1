// Package models defines the domain types shared across the engine:
// the dynamic payload value space, automation trigger/action shapes,
// and execution results.
package models

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
)

// bracketIndex rewrites data[0].score into data.0.score before traversal.
var bracketIndex = regexp.MustCompile(`\[(-?\d+)\]`)

// GetPath resolves a dotted path over a dynamic value (maps, slices,
// scalars). Array indices are numeric segments; negative indices count from
// the end (-1 is the last element). Returns nil when the path does not
// resolve — callers treat nil as "undefined".
//
// Two affordances carried over from production payloads:
//   - arrays spread into objects with string keys ("0", "1", ...) still
//     resolve through numeric segments;
//   - a leading "0" segment over a plain object is skipped, so per-item
//     payloads keep matching paths written against array-shaped output.
func GetPath(data any, path string) any {
	if data == nil || path == "" {
		return data
	}

	path = bracketIndex.ReplaceAllString(path, ".$1")
	parts := strings.Split(path, ".")
	current := data

	for i := 0; i < len(parts); i++ {
		part := parts[i]
		if current == nil {
			return nil
		}

		if idx, ok := parseIndex(part); ok {
			switch v := current.(type) {
			case []any:
				if idx < 0 {
					idx += len(v)
				}
				if idx < 0 || idx >= len(v) {
					return nil
				}
				current = v[idx]
			case map[string]any:
				if inner, ok := v[part]; ok {
					current = inner
				} else if idx == 0 {
					// Path expects an array but the payload is a single
					// object: skip the index segment and keep going.
					continue
				} else {
					return nil
				}
			default:
				return nil
			}
			continue
		}

		obj, ok := current.(map[string]any)
		if !ok {
			return nil
		}
		current = obj[part]
	}

	return current
}

func parseIndex(s string) (int, bool) {
	if s == "" || s == "-" {
		return 0, false
	}
	body := s
	if strings.HasPrefix(s, "-") {
		body = s[1:]
	}
	for _, r := range body {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

// AsFloat coerces a dynamic value to a float64 for numeric comparison.
func AsFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case bool:
		if n {
			return 1, true
		}
		return 0, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	default:
		return 0, false
	}
}
