package bot

import (
	"context"

	"github.com/sevigo/job-warden/internal/core"
	"github.com/sevigo/job-warden/internal/status"
)

type failure struct {
	jobName string
	run     core.Run
}

// NotifyFailures scans every owned job for runs that ended today with a
// failure and reports them: one count summary, then one card per failing run
// with a repair button. With nothing failing it sends a single positive
// message. Shared by the scheduled ticks, the startup scan and /failed.
func (w *Warden) NotifyFailures(ctx context.Context) error {
	started := w.clock()
	w.metrics.ScanStarted()

	failures, err := w.collectFailures(ctx)
	w.metrics.ScanCompleted(w.clock().Sub(started), len(failures), err)
	if err != nil {
		return w.reportError(ctx, err)
	}

	if len(failures) == 0 {
		return w.msgr.Send(ctx, core.Message{Text: msgNoFailures})
	}

	if err := w.msgr.Send(ctx, core.Message{Text: failureHeader(len(failures))}); err != nil {
		return err
	}
	for _, f := range failures {
		msg := core.Message{
			Text:     failureCard(f.jobName, f.run, w.loc),
			Markdown: true,
			Buttons: []core.Button{
				{Label: repairButtonLabel(f.jobName), Action: core.RepairAction(f.run.ID)},
			},
		}
		if err := w.msgr.Send(ctx, msg); err != nil {
			return err
		}
	}
	return nil
}

func (w *Warden) collectFailures(ctx context.Context) ([]failure, error) {
	jobs, err := w.jobs.ListJobs(ctx)
	if err != nil {
		return nil, err
	}

	now := w.clock()
	var failures []failure
	for _, j := range jobs {
		runs, err := w.jobs.ListRuns(ctx, j.ID)
		if err != nil {
			return nil, err
		}
		for _, r := range runs {
			if status.FailedToday(r, now, w.loc) {
				failures = append(failures, failure{jobName: j.Name, run: r})
			}
		}
	}
	return failures, nil
}
