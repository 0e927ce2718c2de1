package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/triggerflow/triggerflow/pkg/models"
)

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"09:00", 540, false},
		{"00:00", 0, false},
		{"23:59", 1439, false},
		{"7:30", 450, false},
		{"24:00", 0, true},
		{"09:60", 0, true},
		{"nine", 0, true},
		{"", 0, true},
	}
	for _, tc := range tests {
		got, err := parseTimeOfDay(tc.in)
		if tc.wantErr {
			assert.Error(t, err, "parseTimeOfDay(%q)", tc.in)
			continue
		}
		require.NoError(t, err, "parseTimeOfDay(%q)", tc.in)
		assert.Equal(t, tc.want, got)
	}
}

func TestInTimeOfDayWindow(t *testing.T) {
	window := 5 * time.Minute

	at := func(hour, minute int) time.Time {
		return time.Date(2026, 8, 20, hour, minute, 0, 0, time.UTC)
	}

	tests := []struct {
		name      string
		timeOfDay string
		now       time.Time
		want      bool
	}{
		{"exact slot start", "09:00", at(9, 0), true},
		{"inside slot", "09:03", at(9, 1), true},
		{"slot end is exclusive", "09:05", at(9, 1), false},
		{"next slot", "09:05", at(9, 5), true},
		{"earlier slot", "08:59", at(9, 0), false},
		{"sweep late in slot still fires", "09:00", at(9, 4), true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := inTimeOfDayWindow(tc.timeOfDay, tc.now, window)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestDayOfWeekMatches(t *testing.T) {
	// 2026-08-20 is a Thursday (weekday 4).
	thursday := time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		day     any
		want    bool
		wantErr bool
	}{
		{"numeric match", float64(4), true, false},
		{"numeric miss", float64(0), false, false},
		{"name match", "thursday", true, false},
		{"name match case-insensitive", "Thursday", true, false},
		{"name miss", "sunday", false, false},
		{"unknown name", "someday", false, true},
		{"unsupported type", []any{"thursday"}, false, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := dayOfWeekMatches(tc.day, thursday)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseRunAt(t *testing.T) {
	tests := []struct {
		in string
		ok bool
	}{
		{"2026-08-20T15:00:00Z", true},
		{"2026-08-20T15:00:00+02:00", true},
		{"2026-08-20 15:00:00", true},
		{"2026-08-20 15:00", true},
		{"not a time", false},
		{"", false},
	}
	for _, tc := range tests {
		_, ok := parseRunAt(tc.in)
		assert.Equal(t, tc.ok, ok, "parseRunAt(%q)", tc.in)
	}
}

func TestNextRecurringRun(t *testing.T) {
	now := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC) // Thursday

	t.Run("never run is due now", func(t *testing.T) {
		cfg := models.ScheduleTriggerConfig{Interval: "1hr"}
		next := nextRecurringRun(cfg, false, time.Time{}, now)
		assert.Equal(t, now, next)
	})

	t.Run("interval after last run", func(t *testing.T) {
		cfg := models.ScheduleTriggerConfig{Interval: "6hr"}
		last := now.Add(-2 * time.Hour)
		next := nextRecurringRun(cfg, true, last, now)
		assert.Equal(t, last.Add(6*time.Hour), next)
	})

	t.Run("daily time of day", func(t *testing.T) {
		cfg := models.ScheduleTriggerConfig{Interval: "daily", TimeOfDay: "09:00"}
		last := time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC)
		next := nextRecurringRun(cfg, true, last, now)
		assert.Equal(t, time.Date(2026, 8, 21, 9, 0, 0, 0, time.UTC), next)
	})

	t.Run("daily not yet run today", func(t *testing.T) {
		cfg := models.ScheduleTriggerConfig{Interval: "daily", TimeOfDay: "18:00"}
		last := time.Date(2026, 8, 19, 18, 0, 0, 0, time.UTC)
		next := nextRecurringRun(cfg, true, last, now)
		assert.Equal(t, time.Date(2026, 8, 20, 18, 0, 0, 0, time.UTC), next)
	})

	t.Run("weekly lands on configured day", func(t *testing.T) {
		cfg := models.ScheduleTriggerConfig{Interval: "weekly", TimeOfDay: "09:00", DayOfWeek: "monday"}
		next := nextRecurringRun(cfg, false, time.Time{}, now)
		assert.Equal(t, time.Weekday(1), next.Weekday())
		assert.True(t, next.After(now))
	})

	t.Run("unknown interval yields zero", func(t *testing.T) {
		cfg := models.ScheduleTriggerConfig{Interval: "fortnightly"}
		assert.True(t, nextRecurringRun(cfg, false, time.Time{}, now).IsZero())
	})
}

func TestIntervalDurations(t *testing.T) {
	// Every recurring bucket name must have a duration; "once" is handled
	// separately.
	for _, interval := range models.ScheduleIntervals {
		if interval == "once" {
			continue
		}
		_, ok := intervalDurations[interval]
		assert.True(t, ok, "missing duration for bucket %s", interval)
	}
}
