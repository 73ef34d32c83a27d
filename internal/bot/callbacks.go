package bot

import (
	"context"
	"fmt"

	"github.com/sevigo/job-warden/internal/core"
	"github.com/sevigo/job-warden/internal/status"
)

// HandleCallback consumes one button tap. The pending callback is always
// acknowledged exactly once, before the underlying workspace call, so the
// chat UI affordance clears even when the call fails afterwards.
func (w *Warden) HandleCallback(ctx context.Context, ev core.CallbackEvent) error {
	action, err := core.DecodeAction(ev.Data)
	if err != nil {
		w.logger.Warn("malformed callback payload", "event_id", ev.ID, "data", ev.Data, "error", err)
		w.acknowledge(ctx, ev.CallbackID, toastBadData)
		w.metrics.CallbackHandled("malformed", err)
		return err
	}

	w.logger.Info("handling callback",
		"event_id", ev.ID,
		"action", action.Kind,
		"job_id", action.JobID,
		"run_id", action.RunID,
	)

	switch action.Kind {
	case core.ActionCheckStatus:
		w.acknowledge(ctx, ev.CallbackID, toastChecking)
		err = w.checkJobStatus(ctx, action.JobID)
	case core.ActionRepair:
		w.acknowledge(ctx, ev.CallbackID, toastRepairing)
		err = w.repairRun(ctx, action.RunID)
	case core.ActionPause:
		w.acknowledge(ctx, ev.CallbackID, toastPausing)
		err = w.toggleSchedule(ctx, action.JobID, core.PauseStatusPaused)
	case core.ActionResume:
		w.acknowledge(ctx, ev.CallbackID, toastResuming)
		err = w.toggleSchedule(ctx, action.JobID, core.PauseStatusUnpaused)
	}

	w.metrics.CallbackHandled(string(action.Kind), err)
	return err
}

// acknowledge answers the pending callback. A failed acknowledgment is
// logged and must not stop the action itself: the tap already expressed the
// operator's intent.
func (w *Warden) acknowledge(ctx context.Context, callbackID, toast string) {
	if err := w.msgr.Respond(ctx, callbackID, toast); err != nil {
		w.logger.Error("failed to answer callback", "callback_id", callbackID, "error", err)
	}
}

// checkJobStatus classifies today's runs of one job and renders the result.
// Only a failed run gets a repair button.
func (w *Warden) checkJobStatus(ctx context.Context, jobID int64) error {
	job, err := w.jobs.GetJob(ctx, jobID)
	if err != nil {
		return w.reportError(ctx, err)
	}
	runs, err := w.jobs.ListRuns(ctx, jobID)
	if err != nil {
		return w.reportError(ctx, err)
	}

	c := status.Classify(runs, w.clock(), w.loc)
	msg := core.Message{
		Text:     statusCard(job.Name, c, w.loc),
		Markdown: true,
	}
	if c.Kind == status.Failed {
		msg.Buttons = []core.Button{
			{Label: "🔧 Repair", Action: core.RepairAction(c.Run.ID)},
		}
	}
	return w.msgr.Send(ctx, msg)
}

// repairRun asks the workspace to rerun all failed tasks of a run. The
// remote error text is reported verbatim; there is no retry.
func (w *Warden) repairRun(ctx context.Context, runID int64) error {
	repairID, err := w.jobs.RepairRun(ctx, runID)
	if err != nil {
		if sendErr := w.msgr.Send(ctx, core.Message{Text: fmt.Sprintf("❌ Repair failed: %v", err)}); sendErr != nil {
			w.logger.Error("failed to report repair error", "error", sendErr)
		}
		return err
	}
	return w.msgr.Send(ctx, core.Message{Text: repairStarted(runID, repairID), Markdown: true})
}

// toggleSchedule sets the pause state of a job's schedule. A job without a
// schedule gets a "no schedule" reply and no mutation.
func (w *Warden) toggleSchedule(ctx context.Context, jobID int64, st core.PauseStatus) error {
	job, err := w.jobs.GetJob(ctx, jobID)
	if err != nil {
		return w.reportToggleError(ctx, err)
	}
	if job.Schedule == nil {
		return w.msgr.Send(ctx, core.Message{Text: noSchedule(jobID), Markdown: true})
	}

	if err := w.jobs.SetSchedulePause(ctx, jobID, st); err != nil {
		return w.reportToggleError(ctx, err)
	}
	return w.msgr.Send(ctx, core.Message{Text: scheduleToggled(job.Name, st), Markdown: true})
}

func (w *Warden) reportToggleError(ctx context.Context, err error) error {
	if sendErr := w.msgr.Send(ctx, core.Message{Text: fmt.Sprintf("❌ Could not toggle schedule: %v", err)}); sendErr != nil {
		w.logger.Error("failed to report toggle error", "error", sendErr)
	}
	return err
}
