package poller

// Well-known array shells a tool output may wrap its items in, probed in
// order.
var itemShells = []string{"data", "items", "files", "events", "tasks", "sleep"}

// extractItems normalizes a raw tool output into a list of item maps:
// known array shells are unwrapped, a summary object becomes a singleton,
// a bare array is taken as-is, and a primitive is wrapped as a message.
func extractItems(output any) []map[string]any {
	switch v := output.(type) {
	case map[string]any:
		for _, shell := range itemShells {
			if list, ok := v[shell].([]any); ok {
				return toItemMaps(list)
			}
		}
		if summary, ok := v["summary"].(map[string]any); ok {
			return []map[string]any{summary}
		}
		// An object with no recognizable shell is itself the single item.
		return []map[string]any{v}
	case []any:
		return toItemMaps(v)
	case nil:
		return nil
	default:
		return []map[string]any{{"message": v}}
	}
}

func toItemMaps(list []any) []map[string]any {
	items := make([]map[string]any, 0, len(list))
	for _, entry := range list {
		if m, ok := entry.(map[string]any); ok {
			items = append(items, m)
			continue
		}
		items = append(items, map[string]any{"message": entry})
	}
	return items
}
