// Package status maps raw run records onto the small set of states the bot
// reports for "today" in the operator's time zone.
package status

import (
	"time"

	"github.com/sevigo/job-warden/internal/core"
)

// Kind is the classification outcome for a job's runs on a given day.
type Kind int

const (
	// NoRunsToday means no run started within today's local window.
	NoRunsToday Kind = iota
	// Success means the most recently started run today finished successfully.
	Success
	// Failed means the most recently started run today terminated with a failure.
	Failed
	// Running means the most recently started run today has not reported a
	// terminal success or failure.
	Running
)

// Classification is the result of classifying a job's runs for one day.
// Run is meaningful for every kind except NoRunsToday.
type Classification struct {
	Kind Kind
	Run  core.Run
}

// SameLocalDay reports whether a and b fall on the same calendar date in loc.
func SameLocalDay(a, b time.Time, loc *time.Location) bool {
	ay, am, ad := a.In(loc).Date()
	by, bm, bd := b.In(loc).Date()
	return ay == by && am == bm && ad == bd
}

// Classify inspects runs and returns today's state for their job. "Today" is
// derived from now in loc at call time, never cached, so long-lived processes
// stay correct across midnight.
//
// When several runs started today the one with the latest start time wins;
// on an exact tie the earlier entry in runs is kept, which matches the
// stable ordering of the workspace listing.
func Classify(runs []core.Run, now time.Time, loc *time.Location) Classification {
	var latest *core.Run
	for i := range runs {
		r := &runs[i]
		if r.StartTime.IsZero() || !SameLocalDay(r.StartTime, now, loc) {
			continue
		}
		if latest == nil || r.StartTime.After(latest.StartTime) {
			latest = r
		}
	}
	if latest == nil {
		return Classification{Kind: NoRunsToday}
	}

	switch latest.Result {
	case core.RunResultSuccess:
		return Classification{Kind: Success, Run: *latest}
	case core.RunResultFailed:
		return Classification{Kind: Failed, Run: *latest}
	default:
		// No terminal result yet (or a non-success, non-failed terminal
		// state such as a cancellation): reported as still running.
		return Classification{Kind: Running, Run: *latest}
	}
}

// FailedToday reports whether the run ended today in loc with a failure.
// Used by the scheduled failure scan, which keys off end time rather than
// start time.
func FailedToday(r core.Run, now time.Time, loc *time.Location) bool {
	return r.Result == core.RunResultFailed && r.Finished() && SameLocalDay(r.EndTime, now, loc)
}
