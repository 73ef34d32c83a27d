// Package scheduler fires the daily failure scan at fixed wall-clock times
// in the operator's time zone.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/sevigo/job-warden/internal/core"
)

// Enqueuer accepts tick events for the dispatch loop.
type Enqueuer interface {
	Enqueue(ctx context.Context, ev core.Event) error
}

// Scheduler wraps a cron runner with one entry per configured time of day.
// A firing enqueues a tick; it never runs the scan itself, so scan latency
// cannot delay the clock. Ticks that find the queue full are dropped with a
// log line: missed firings are not backfilled.
type Scheduler struct {
	cron   *cron.Cron
	times  []string
	logger *slog.Logger
}

// New builds a scheduler for the given "HH:MM" local times. The clock runs
// in loc, so the times track the operator's wall clock across DST changes.
func New(times []string, loc *time.Location, emitter Enqueuer, logger *slog.Logger) (*Scheduler, error) {
	c := cron.New(cron.WithLocation(loc))

	for _, t := range times {
		spec, err := cronSpec(t)
		if err != nil {
			return nil, err
		}
		if _, err := c.AddFunc(spec, func() {
			ev := core.NewTickEvent(time.Now().In(loc))
			if err := emitter.Enqueue(context.Background(), ev); err != nil {
				logger.Error("dropping scheduled tick", "event_id", ev.ID, "error", err)
			}
		}); err != nil {
			return nil, fmt.Errorf("register notify time %q: %w", t, err)
		}
	}

	return &Scheduler{cron: c, times: times, logger: logger}, nil
}

// Start begins firing ticks. Safe to call once.
func (s *Scheduler) Start() {
	s.logger.Info("starting notification scheduler", "times", s.times)
	s.cron.Start()
}

// Stop halts future firings. Ticks already enqueued still get processed.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping notification scheduler")
	s.cron.Stop()
}

// cronSpec converts an "HH:MM" time of day into a five-field cron spec.
func cronSpec(timeOfDay string) (string, error) {
	t, err := time.Parse("15:04", timeOfDay)
	if err != nil {
		return "", fmt.Errorf("invalid notify time %q, want HH:MM: %w", timeOfDay, err)
	}
	return fmt.Sprintf("%d %d * * *", t.Minute(), t.Hour()), nil
}
