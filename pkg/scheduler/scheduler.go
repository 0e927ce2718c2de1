// Package scheduler runs schedule-triggered automations. Recurring
// automations are grouped into interval buckets; each bucket sweep loads
// its automations, applies recency and time-of-day dueness rules, and
// dispatches the due ones. One-time automations run once their run_at
// passes, then deactivate.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/triggerflow/triggerflow/ent"
	"github.com/triggerflow/triggerflow/ent/automation"
	"github.com/triggerflow/triggerflow/ent/executionlog"
	"github.com/triggerflow/triggerflow/pkg/config"
	"github.com/triggerflow/triggerflow/pkg/models"
	"github.com/triggerflow/triggerflow/pkg/services"
)

// Interval bucket durations.
var intervalDurations = map[string]time.Duration{
	"5min":   5 * time.Minute,
	"15min":  15 * time.Minute,
	"30min":  30 * time.Minute,
	"1hr":    time.Hour,
	"6hr":    6 * time.Hour,
	"daily":  24 * time.Hour,
	"weekly": 7 * 24 * time.Hour,
}

// Trigger types accepted when querying for the most recent scheduled run.
// The legacy value predates the once/recurring split and still appears in
// old logs.
var scheduledTriggerTypes = []string{
	models.TriggerScheduleLegacy,
	models.TriggerScheduleOnce,
	models.TriggerScheduleRecurring,
}

var dayNames = map[string]int{
	"sunday": 0, "monday": 1, "tuesday": 2, "wednesday": 3,
	"thursday": 4, "friday": 5, "saturday": 6,
}

// run_at layouts accepted on one-time schedules.
var runAtLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// Metrics summarize one bucket sweep.
type Metrics struct {
	Interval    string `json:"interval"`
	Considered  int    `json:"considered"`
	Dispatched  int    `json:"dispatched"`
	Deactivated int    `json:"deactivated"`
	Errors      int    `json:"errors"`
	DurationMs  int    `json:"duration_ms"`
}

// Scheduler sweeps interval buckets and dispatches due automations.
type Scheduler struct {
	client      *ent.Client
	executions  *services.ExecutionService
	automations *services.AutomationService
	cfg         *config.SchedulerConfig
	now         func() time.Time
}

// New creates a Scheduler.
func New(client *ent.Client, executions *services.ExecutionService, automations *services.AutomationService, cfg *config.SchedulerConfig) *Scheduler {
	return &Scheduler{
		client:      client,
		executions:  executions,
		automations: automations,
		cfg:         cfg,
		now:         time.Now,
	}
}

// RunBucket sweeps one interval bucket ("5min" ... "weekly", or "once").
func (s *Scheduler) RunBucket(ctx context.Context, interval string) (*Metrics, error) {
	if interval == "once" {
		return s.runOnce(ctx)
	}
	if _, ok := intervalDurations[interval]; !ok {
		return nil, fmt.Errorf("unknown schedule interval %q", interval)
	}
	return s.runRecurring(ctx, interval)
}

// RunAll sweeps every bucket in order. Used by the manual scheduler-run
// endpoint; the cron runner drives buckets individually at their cadence.
func (s *Scheduler) RunAll(ctx context.Context) ([]*Metrics, error) {
	var all []*Metrics
	for _, interval := range models.ScheduleIntervals {
		m, err := s.RunBucket(ctx, interval)
		if err != nil {
			return all, err
		}
		all = append(all, m)
	}
	return all, nil
}

func (s *Scheduler) runRecurring(ctx context.Context, interval string) (*Metrics, error) {
	start := s.now()
	metrics := &Metrics{Interval: interval}

	candidates, err := s.client.Automation.Query().
		Where(
			automation.ActiveEQ(true),
			automation.TriggerTypeEQ(automation.TriggerTypeScheduleRecurring),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("querying recurring automations: %w", err)
	}

	var due []*ent.Automation
	for _, auto := range candidates {
		var cfg models.ScheduleTriggerConfig
		if err := models.DecodeTriggerConfig(auto.TriggerConfig, &cfg); err != nil {
			slog.Warn("Malformed schedule trigger_config", "automation_id", auto.ID, "error", err)
			continue
		}
		if cfg.Interval != interval {
			continue
		}
		metrics.Considered++

		isDue, err := s.isDue(ctx, auto, cfg, start)
		if err != nil {
			slog.Error("Dueness check failed", "automation_id", auto.ID, "error", err)
			metrics.Errors++
			continue
		}
		if isDue {
			due = append(due, auto)
		}
	}

	s.dispatch(ctx, due, models.TriggerScheduleRecurring, interval, metrics)

	metrics.DurationMs = int(s.now().Sub(start).Milliseconds())
	if metrics.Considered > 0 || metrics.Dispatched > 0 {
		slog.Info("Schedule bucket swept",
			"interval", interval,
			"considered", metrics.Considered,
			"dispatched", metrics.Dispatched,
			"errors", metrics.Errors)
	}
	return metrics, nil
}

func (s *Scheduler) runOnce(ctx context.Context) (*Metrics, error) {
	start := s.now()
	metrics := &Metrics{Interval: "once"}

	candidates, err := s.client.Automation.Query().
		Where(
			automation.ActiveEQ(true),
			automation.TriggerTypeEQ(automation.TriggerTypeScheduleOnce),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("querying one-time automations: %w", err)
	}

	var due []*ent.Automation
	for _, auto := range candidates {
		var cfg models.ScheduleTriggerConfig
		if err := models.DecodeTriggerConfig(auto.TriggerConfig, &cfg); err != nil {
			slog.Warn("Malformed schedule trigger_config", "automation_id", auto.ID, "error", err)
			continue
		}
		metrics.Considered++

		runAt, ok := parseRunAt(cfg.RunAt)
		if !ok {
			slog.Warn("Unparseable run_at on one-time schedule", "automation_id", auto.ID, "run_at", cfg.RunAt)
			metrics.Errors++
			continue
		}
		if !runAt.After(start) {
			due = append(due, auto)
		}
	}

	s.dispatch(ctx, due, models.TriggerScheduleOnce, "once", metrics)

	metrics.DurationMs = int(s.now().Sub(start).Milliseconds())
	return metrics, nil
}

// dispatch runs the due automations in batches, pausing between batches.
// One-time automations deactivate after a successful dispatch so they can
// never fire twice.
func (s *Scheduler) dispatch(ctx context.Context, due []*ent.Automation, triggerType, interval string, metrics *Metrics) {
	for batchStart := 0; batchStart < len(due); batchStart += s.cfg.BatchSize {
		if batchStart > 0 {
			select {
			case <-ctx.Done():
				return
			case <-time.After(s.cfg.InterBatchDelay):
			}
		}

		batchEnd := batchStart + s.cfg.BatchSize
		if batchEnd > len(due) {
			batchEnd = len(due)
		}

		for _, auto := range due[batchStart:batchEnd] {
			triggerData := map[string]any{
				"type":           "scheduled",
				"interval":       interval,
				"scheduled_time": s.now().UTC().Format(time.RFC3339),
			}
			if _, _, err := s.executions.Run(ctx, auto, triggerType, triggerData); err != nil {
				slog.Error("Scheduled run failed to start", "automation_id", auto.ID, "error", err)
				metrics.Errors++
				continue
			}
			metrics.Dispatched++

			if triggerType == models.TriggerScheduleOnce {
				if err := s.automations.Deactivate(ctx, auto.ID); err != nil {
					slog.Error("Failed to deactivate one-time schedule", "automation_id", auto.ID, "error", err)
					metrics.Errors++
					continue
				}
				metrics.Deactivated++
			}
		}
	}
}

// isDue applies the recency guard and, for daily/weekly schedules, the
// time-of-day window and day-of-week match.
func (s *Scheduler) isDue(ctx context.Context, auto *ent.Automation, cfg models.ScheduleTriggerConfig, now time.Time) (bool, error) {
	if cfg.TimeOfDay != "" {
		inWindow, err := inTimeOfDayWindow(cfg.TimeOfDay, now.UTC(), s.cfg.TimeOfDayWindow)
		if err != nil {
			return false, err
		}
		if !inWindow {
			return false, nil
		}
	}
	if cfg.Interval == "weekly" && cfg.DayOfWeek != nil {
		matches, err := dayOfWeekMatches(cfg.DayOfWeek, now.UTC())
		if err != nil {
			return false, err
		}
		if !matches {
			return false, nil
		}
	}

	lastRun, err := s.lastScheduledRun(ctx, auto.ID)
	if err != nil {
		return false, err
	}
	if lastRun == nil {
		return true, nil
	}

	// The safety buffer absorbs sweep jitter so a run landing slightly
	// early never pushes the next one a whole interval out. Clamped to half
	// the interval for buckets shorter than the buffer.
	interval := intervalDurations[cfg.Interval]
	threshold := interval - s.cfg.SafetyBuffer
	if threshold <= 0 {
		threshold = interval / 2
	}
	return lastRun.StartedAt.Before(now.Add(-threshold)), nil
}

// lastScheduledRun returns the most recent scheduled execution log for the
// automation, nil when it has never run on a schedule.
func (s *Scheduler) lastScheduledRun(ctx context.Context, automationID string) (*ent.ExecutionLog, error) {
	log, err := s.client.ExecutionLog.Query().
		Where(
			executionlog.AutomationIDEQ(automationID),
			executionlog.TriggerTypeIn(scheduledTriggerTypes...),
		).
		Order(ent.Desc(executionlog.FieldStartedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return log, nil
}

// inTimeOfDayWindow reports whether the configured HH:MM (UTC) falls in the
// window-aligned slot containing now. Sweeps run at the window cadence, so
// each configured time fires exactly once per day.
func inTimeOfDayWindow(timeOfDay string, now time.Time, window time.Duration) (bool, error) {
	target, err := parseTimeOfDay(timeOfDay)
	if err != nil {
		return false, err
	}
	windowMinutes := int(window.Minutes())
	if windowMinutes <= 0 {
		windowMinutes = 5
	}
	nowMinutes := now.Hour()*60 + now.Minute()
	slotStart := (nowMinutes / windowMinutes) * windowMinutes
	return target >= slotStart && target < slotStart+windowMinutes, nil
}

// parseTimeOfDay parses "HH:MM" into minutes since midnight.
func parseTimeOfDay(s string) (int, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time_of_day %q: want HH:MM", s)
	}
	var hour, minute int
	if _, err := fmt.Sscanf(s, "%d:%d", &hour, &minute); err != nil {
		return 0, fmt.Errorf("invalid time_of_day %q: %w", s, err)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("invalid time_of_day %q: out of range", s)
	}
	return hour*60 + minute, nil
}

// dayOfWeekMatches accepts a numeric day (Sunday=0) or a case-insensitive
// English day name.
func dayOfWeekMatches(dayOfWeek any, now time.Time) (bool, error) {
	today := int(now.Weekday())
	switch v := dayOfWeek.(type) {
	case float64:
		return int(v) == today, nil
	case int:
		return v == today, nil
	case string:
		day, ok := dayNames[strings.ToLower(strings.TrimSpace(v))]
		if !ok {
			return false, fmt.Errorf("unknown day_of_week %q", v)
		}
		return day == today, nil
	default:
		return false, fmt.Errorf("unsupported day_of_week type %T", dayOfWeek)
	}
}

func parseRunAt(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range runAtLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
