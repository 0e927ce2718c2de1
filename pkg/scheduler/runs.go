package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/triggerflow/triggerflow/ent"
	"github.com/triggerflow/triggerflow/ent/automation"
	"github.com/triggerflow/triggerflow/pkg/models"
)

// ScheduledRun describes one active scheduled automation and when it is
// expected to fire next.
type ScheduledRun struct {
	AutomationID string     `json:"automation_id"`
	Name         string     `json:"name"`
	OwnerID      string     `json:"owner_id"`
	TriggerType  string     `json:"trigger_type"`
	Interval     string     `json:"interval,omitempty"`
	TimeOfDay    string     `json:"time_of_day,omitempty"`
	RunAt        string     `json:"run_at,omitempty"`
	LastRunAt    *time.Time `json:"last_run_at,omitempty"`
	NextRunAt    *time.Time `json:"next_run_at,omitempty"`
	IsOverdue    bool       `json:"is_overdue"`
}

// ScheduledRuns lists every active scheduled automation with its expected
// next run, optionally restricted to one owner.
func (s *Scheduler) ScheduledRuns(ctx context.Context, ownerID string) ([]ScheduledRun, error) {
	now := s.now()

	query := s.client.Automation.Query().
		Where(
			automation.ActiveEQ(true),
			automation.TriggerTypeIn(
				automation.TriggerTypeScheduleOnce,
				automation.TriggerTypeScheduleRecurring,
			),
		).
		Order(ent.Asc(automation.FieldCreatedAt))
	if ownerID != "" {
		query = query.Where(automation.OwnerIDEQ(ownerID))
	}

	autos, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("querying scheduled automations: %w", err)
	}

	runs := make([]ScheduledRun, 0, len(autos))
	for _, auto := range autos {
		var cfg models.ScheduleTriggerConfig
		if err := models.DecodeTriggerConfig(auto.TriggerConfig, &cfg); err != nil {
			continue
		}

		run := ScheduledRun{
			AutomationID: auto.ID,
			Name:         auto.Name,
			OwnerID:      auto.OwnerID,
			TriggerType:  string(auto.TriggerType),
			Interval:     cfg.Interval,
			TimeOfDay:    cfg.TimeOfDay,
			RunAt:        cfg.RunAt,
		}

		if auto.TriggerType == automation.TriggerTypeScheduleOnce {
			if runAt, ok := parseRunAt(cfg.RunAt); ok {
				run.NextRunAt = &runAt
				run.IsOverdue = runAt.Before(now)
			}
			runs = append(runs, run)
			continue
		}

		lastRun, err := s.lastScheduledRun(ctx, auto.ID)
		if err != nil {
			return nil, err
		}
		if lastRun != nil {
			started := lastRun.StartedAt
			run.LastRunAt = &started
		}

		next := nextRecurringRun(cfg, lastRun != nil, lastRunTime(run.LastRunAt), now.UTC())
		if !next.IsZero() {
			run.NextRunAt = &next
			run.IsOverdue = next.Before(now)
		}
		runs = append(runs, run)
	}
	return runs, nil
}

// nextRecurringRun projects the next fire time: interval after the last run,
// or the next occurrence of the configured time of day (and weekday) for
// daily/weekly schedules. Never-run automations are due now.
func nextRecurringRun(cfg models.ScheduleTriggerConfig, hasRun bool, lastRun, now time.Time) time.Time {
	interval, ok := intervalDurations[cfg.Interval]
	if !ok {
		return time.Time{}
	}

	if cfg.TimeOfDay != "" {
		target, err := parseTimeOfDay(cfg.TimeOfDay)
		if err != nil {
			return time.Time{}
		}
		next := time.Date(now.Year(), now.Month(), now.Day(), target/60, target%60, 0, 0, time.UTC)
		if hasRun && !next.After(lastRun) {
			next = next.AddDate(0, 0, 1)
		}
		if cfg.Interval == "weekly" && cfg.DayOfWeek != nil {
			for i := 0; i < 7; i++ {
				if matches, err := dayOfWeekMatches(cfg.DayOfWeek, next); err == nil && matches {
					break
				}
				next = next.AddDate(0, 0, 1)
			}
		}
		return next
	}

	if !hasRun {
		return now
	}
	return lastRun.Add(interval)
}

func lastRunTime(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}
