package executor

import (
	"encoding/json"
	"regexp"
	"strings"
)

// Wrapper keys whose contents are spread to the root of a bound output so
// templates can use flattened paths ({{x.score}}) alongside the original
// nested ones ({{x.data.0.score}}).
var wrapperKeys = []string{"data", "summary", "result", "response", "output"}

// Nested object keys that are flattened but also kept under their own name.
var flattenAndKeepKeys = []string{"contributors", "user", "author", "goals"}

var codeBlock = regexp.MustCompile("```(?:json)?\\s*([\\s\\S]*?)```")

// extractJSON parses JSON out of a string tool output. Handles direct JSON,
// fenced code blocks, and embedded objects/arrays; returns the original
// string when nothing parses.
func extractJSON(text string) any {
	trimmed := strings.TrimSpace(text)

	var direct any
	if err := json.Unmarshal([]byte(trimmed), &direct); err == nil {
		return direct
	}

	for _, m := range codeBlock.FindAllStringSubmatch(trimmed, -1) {
		var parsed any
		if err := json.Unmarshal([]byte(strings.TrimSpace(m[1])), &parsed); err == nil {
			return parsed
		}
	}

	for _, pair := range [][2]string{{"{", "}"}, {"[", "]"}} {
		start := strings.Index(trimmed, pair[0])
		end := strings.LastIndex(trimmed, pair[1])
		if start >= 0 && end > start {
			var parsed any
			if err := json.Unmarshal([]byte(trimmed[start:end+1]), &parsed); err == nil {
				return parsed
			}
		}
	}

	return text
}

// normalizeForContext flattens a tool output object for consistent template
// access. Wrapper keys spread their contents to the root while the original
// stays in place, so both the documented nested paths and the convenient
// flat ones resolve.
func normalizeForContext(item any) map[string]any {
	obj, ok := item.(map[string]any)
	if !ok || len(obj) == 0 {
		if item == nil {
			return map[string]any{}
		}
		if ok {
			return obj
		}
		return map[string]any{"value": item}
	}

	normalized := make(map[string]any, len(obj)*2)

	flattenNested := func(key string, value map[string]any) {
		normalized[key] = value
		for nestedKey, nestedValue := range value {
			if _, taken := normalized[nestedKey]; !taken && !isContainer(nestedValue) {
				normalized[nestedKey] = nestedValue
			}
			if key == "user" && nestedKey == "profile" {
				if profile, ok := nestedValue.(map[string]any); ok {
					for pk, pv := range profile {
						if _, taken := normalized[pk]; !taken {
							normalized[pk] = pv
						}
					}
				}
			}
		}
	}

	for key, value := range obj {
		switch {
		case isWrapperKey(key):
			if inner, ok := value.(map[string]any); ok {
				normalized[key] = inner
				for innerKey, innerValue := range inner {
					if nested, ok := innerValue.(map[string]any); ok && isFlattenAndKeepKey(innerKey) {
						flattenNested(innerKey, nested)
					} else if _, taken := normalized[innerKey]; !taken {
						normalized[innerKey] = innerValue
					}
				}
				continue
			}
			if list, ok := value.([]any); ok && len(list) > 0 {
				normalized[key] = list
				if first, ok := list[0].(map[string]any); ok {
					for innerKey, innerValue := range first {
						if _, taken := normalized[innerKey]; !taken && !isContainer(innerValue) {
							normalized[innerKey] = innerValue
						}
					}
				}
				continue
			}
			normalized[key] = value

		case isFlattenAndKeepKey(key):
			if nested, ok := value.(map[string]any); ok {
				flattenNested(key, nested)
				continue
			}
			normalized[key] = value

		default:
			normalized[key] = value
		}
	}

	return normalized
}

func isWrapperKey(key string) bool {
	for _, k := range wrapperKeys {
		if k == key {
			return true
		}
	}
	return false
}

func isFlattenAndKeepKey(key string) bool {
	for _, k := range flattenAndKeepKeys {
		if k == key {
			return true
		}
	}
	return false
}

func isContainer(v any) bool {
	switch v.(type) {
	case map[string]any, []any:
		return true
	default:
		return false
	}
}
