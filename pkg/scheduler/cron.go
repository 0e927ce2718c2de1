package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/triggerflow/triggerflow/pkg/config"
	"github.com/triggerflow/triggerflow/pkg/poller"
)

// Bucket sweep cadences. Daily/weekly/once buckets are swept every five
// minutes: their dueness rules (time-of-day window, run_at) decide whether
// anything actually fires, and the five-minute cadence matches the
// time-of-day window width so each slot is visited exactly once.
var bucketCadences = map[string]string{
	"5min":   "@every 5m",
	"15min":  "@every 15m",
	"30min":  "@every 30m",
	"1hr":    "@every 1h",
	"6hr":    "@every 6h",
	"daily":  "@every 5m",
	"weekly": "@every 5m",
	"once":   "@every 5m",
}

// Runner drives the scheduler buckets and the poller tick on a cron.
type Runner struct {
	cron      *cron.Cron
	scheduler *Scheduler
	poller    *poller.Poller
	tick      time.Duration
}

// NewRunner wires the bucket sweeps and the poller tick into a cron
// instance. Jobs for the same bucket never overlap.
func NewRunner(s *Scheduler, p *poller.Poller, pollerCfg *config.PollerConfig) (*Runner, error) {
	r := &Runner{
		cron:      cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger))),
		scheduler: s,
		poller:    p,
		tick:      pollerCfg.Tick,
	}

	for bucket, cadence := range bucketCadences {
		bucket := bucket
		if _, err := r.cron.AddFunc(cadence, func() {
			ctx := context.Background()
			if _, err := r.scheduler.RunBucket(ctx, bucket); err != nil {
				slog.Error("Schedule bucket sweep failed", "interval", bucket, "error", err)
			}
		}); err != nil {
			return nil, err
		}
	}

	if p != nil {
		if _, err := r.cron.AddFunc("@every "+r.tick.String(), func() {
			if _, err := r.poller.RunDue(context.Background(), ""); err != nil {
				slog.Error("Polling run failed", "error", err)
			}
		}); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// Start begins the cron loop.
func (r *Runner) Start() {
	r.cron.Start()
	slog.Info("Scheduler cron started", "buckets", len(bucketCadences), "poller_tick", r.tick)
}

// Stop halts the cron and waits for in-flight jobs to finish.
func (r *Runner) Stop() {
	ctx := r.cron.Stop()
	<-ctx.Done()
	slog.Info("Scheduler cron stopped")
}
