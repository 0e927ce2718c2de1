package poller

import "strings"

// Default polling intervals in minutes per service, applied when neither
// the trigger config nor the automation record sets one.
var defaultIntervalMinutes = map[string]int{
	"oura":             60,
	"fitbit":           15,
	"todoist":          5,
	"google_calendar":  10,
	"outlook_calendar": 10,
	"excel":            10,
	"word":             15,
	"notion":           10,
}

// fallbackIntervalMinutes covers services without a specific default.
const fallbackIntervalMinutes = 15

// defaultInterval resolves the polling interval for a service, matching the
// source tool name when the service field is empty (tool names are
// service-prefixed: oura_get_sleep, todoist_list_tasks, ...).
func defaultInterval(service, sourceTool string) int {
	if service != "" {
		if minutes, ok := defaultIntervalMinutes[strings.ToLower(service)]; ok {
			return minutes
		}
	}
	lowerTool := strings.ToLower(sourceTool)
	for name, minutes := range defaultIntervalMinutes {
		if strings.HasPrefix(lowerTool, name) || strings.HasPrefix(lowerTool, strings.ReplaceAll(name, "_", "")) {
			return minutes
		}
	}
	return fallbackIntervalMinutes
}

// healthToolPrefixes mark tools whose names suggest health/fitness sources;
// their date-range parameters default from the cursor when absent.
var healthToolPrefixes = []string{"oura", "fitbit", "whoop", "garmin", "health", "sleep", "activity", "readiness"}

func looksLikeHealthTool(sourceTool string) bool {
	lower := strings.ToLower(sourceTool)
	for _, prefix := range healthToolPrefixes {
		if strings.Contains(lower, prefix) {
			return true
		}
	}
	return false
}
