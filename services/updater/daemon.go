package updater

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"inz-data-scraper/lib/timezone"

	"github.com/robfig/cron/v3"
)

type Daemon struct {
	cycle    func(ctx context.Context) error
	schedule cron.Schedule
	now      func() time.Time
	tick     time.Duration
}

type DaemonOptions struct {
	Cycle func(ctx context.Context) error
	// standard 5 field cron expression
	Schedule string
	// reference timezone the schedule is evaluated in, defaults to
	// timezone.Location()
	Location *time.Location
	// defaults to timezone.Now
	Now func() time.Time
	// how often the schedule is checked, defaults to 1 second
	Tick time.Duration
}

func NewDaemon(opts DaemonOptions) (Daemon, error) {
	if opts.Cycle == nil {
		return Daemon{}, fmt.Errorf("cycle must not be nil")
	}
	location := opts.Location
	if location == nil {
		location = timezone.Location()
	}
	schedule, err := cron.ParseStandard(fmt.Sprintf("CRON_TZ=%s %s", location.String(), opts.Schedule))
	if err != nil {
		return Daemon{}, fmt.Errorf("parse schedule '%s': %w", opts.Schedule, err)
	}
	now := opts.Now
	if now == nil {
		now = timezone.Now
	}
	tick := opts.Tick
	if tick <= 0 {
		tick = time.Second
	}
	return Daemon{
		cycle:    opts.Cycle,
		schedule: schedule,
		now:      now,
		tick:     tick,
	}, nil
}

// Next returns the first scheduled run strictly after `t`.
func (d Daemon) Next(t time.Time) time.Time {
	return d.schedule.Next(t)
}

// Run performs one cycle immediately and returns if `oneOff` is set.
// Otherwise it keeps running cycles on schedule until ctx is cancelled.
// Cycles run serially on the calling goroutine and the first failed
// cycle stops the daemon.
func (d Daemon) Run(ctx context.Context, oneOff bool) error {
	err := d.runCycle(ctx)
	if err != nil {
		return err
	}
	if oneOff {
		return nil
	}

	next := d.schedule.Next(d.now())
	slog.InfoContext(ctx, "scheduled next update", "at", next)

	ticker := time.NewTicker(d.tick)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			slog.InfoContext(ctx, "daemon stopped")
			return nil
		case <-ticker.C:
			now := d.now()
			if now.Before(next) {
				continue
			}
			err := d.runCycle(ctx)
			if err != nil {
				return err
			}
			next = d.schedule.Next(d.now())
			slog.InfoContext(ctx, "scheduled next update", "at", next)
		}
	}
}

func (d Daemon) runCycle(ctx context.Context) error {
	start := time.Now()
	err := d.cycle(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "update cycle", "err", err)
		return err
	}
	slog.InfoContext(ctx, "update cycle finished", "seconds", time.Since(start).Seconds())
	return nil
}
