// Package bot implements the operator-facing behavior: the slash-command
// router, the button-callback dispatcher and the daily failure scan. All
// remote state lives in the workspace; every operation re-fetches, and every
// handler is its own failure boundary that reports to the operator chat
// instead of propagating.
package bot

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/sevigo/job-warden/internal/core"
	"github.com/sevigo/job-warden/internal/metrics"
)

// Warden routes chat traffic to workspace operations.
type Warden struct {
	jobs    core.JobsClient
	msgr    core.Messenger
	loc     *time.Location
	logger  *slog.Logger
	metrics metrics.Sink
	clock   func() time.Time
}

// NewWarden creates a Warden operating in the given time zone.
func NewWarden(jobs core.JobsClient, msgr core.Messenger, loc *time.Location, logger *slog.Logger, sink metrics.Sink) *Warden {
	if sink == nil {
		sink = metrics.NewNoopSink()
	}
	return &Warden{
		jobs:    jobs,
		msgr:    msgr,
		loc:     loc,
		logger:  logger,
		metrics: sink,
		clock:   time.Now,
	}
}

// HandleCommand executes one slash command. Errors are already reported to
// the operator by the time they are returned; callers only log them.
func (w *Warden) HandleCommand(ctx context.Context, ev core.CommandEvent) error {
	command := strings.ToLower(strings.TrimPrefix(ev.Command, "/"))
	w.logger.Info("handling command", "event_id", ev.ID, "command", command)

	var err error
	switch command {
	case "help":
		err = w.msgr.Send(ctx, core.Message{Text: msgHelp})
	case "jobs":
		err = w.sendJobList(ctx)
	case "pause":
		err = w.sendPauseList(ctx)
	case "failed":
		err = w.NotifyFailures(ctx)
	default:
		w.logger.Warn("ignoring unknown command", "command", command)
	}

	w.metrics.CommandHandled(command, err)
	return err
}

// HandleTick runs the scheduled failure scan.
func (w *Warden) HandleTick(ctx context.Context, ev core.TickEvent) error {
	w.logger.Info("handling scheduled scan", "event_id", ev.ID, "fired_at", ev.FiredAt)
	return w.NotifyFailures(ctx)
}

// sendJobList answers /jobs: one summary message, then one card per owned
// job with a check-status button.
func (w *Warden) sendJobList(ctx context.Context) error {
	jobs, err := w.jobs.ListJobs(ctx)
	if err != nil {
		return w.reportError(ctx, err)
	}
	if len(jobs) == 0 {
		return w.msgr.Send(ctx, core.Message{Text: msgNoJobs})
	}

	if err := w.msgr.Send(ctx, core.Message{Text: jobListHeader(len(jobs))}); err != nil {
		return err
	}
	for _, j := range jobs {
		msg := core.Message{
			Text:     jobCard(j),
			Markdown: true,
			Buttons: []core.Button{
				{Label: "📊 Check Status", Action: core.CheckStatusAction(j.ID)},
			},
		}
		if err := w.msgr.Send(ctx, msg); err != nil {
			return err
		}
	}
	return nil
}

// sendPauseList answers /pause: one card per owned job with a pause or
// resume button matching the schedule's current state. A job without a
// schedule renders a resume button; tapping it reports "no schedule".
func (w *Warden) sendPauseList(ctx context.Context) error {
	jobs, err := w.jobs.ListJobs(ctx)
	if err != nil {
		return w.reportError(ctx, err)
	}
	if len(jobs) == 0 {
		return w.msgr.Send(ctx, core.Message{Text: msgNoJobs})
	}

	if err := w.msgr.Send(ctx, core.Message{Text: pauseListHeader(len(jobs))}); err != nil {
		return err
	}
	for _, j := range jobs {
		button := core.Button{Label: "▶️ Resume", Action: core.ResumeAction(j.ID)}
		if j.Schedule != nil && !j.Schedule.Paused() {
			button = core.Button{Label: "⏸ Pause", Action: core.PauseAction(j.ID)}
		}
		msg := core.Message{
			Text:     jobCard(j),
			Markdown: true,
			Buttons:  []core.Button{button},
		}
		if err := w.msgr.Send(ctx, msg); err != nil {
			return err
		}
	}
	return nil
}

// reportError surfaces a remote failure to the operator and hands the
// original error back for logging.
func (w *Warden) reportError(ctx context.Context, err error) error {
	if sendErr := w.msgr.Send(ctx, core.Message{Text: fmt.Sprintf("❌ Error: %v", err)}); sendErr != nil {
		w.logger.Error("failed to report error to chat", "error", sendErr, "original", err)
	}
	return err
}
