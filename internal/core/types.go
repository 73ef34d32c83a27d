// Package core defines the essential interfaces and data structures that form the
// backbone of the application. These components are designed to be abstract,
// allowing for flexible and decoupled implementations of the application's logic.
package core

import (
	"context"
	"time"
)

// PauseStatus is the pause state of a job's schedule trigger.
type PauseStatus string

const (
	PauseStatusPaused   PauseStatus = "PAUSED"
	PauseStatusUnpaused PauseStatus = "UNPAUSED"
)

// RunResult is the terminal result state of a run as reported by the workspace.
// Runs still in flight carry an empty result.
type RunResult string

const (
	RunResultSuccess RunResult = "SUCCESS"
	RunResultFailed  RunResult = "FAILED"
)

// Schedule is the recurring-trigger configuration attached to a job.
type Schedule struct {
	CronExpression string
	TimezoneID     string
	PauseStatus    PauseStatus
}

// Paused reports whether the schedule trigger is currently paused.
func (s *Schedule) Paused() bool {
	return s != nil && s.PauseStatus == PauseStatusPaused
}

// Job is a defined unit of scheduled work in the orchestration workspace.
// Job data is owned by the remote service; instances here are point-in-time
// snapshots and are never written back directly.
type Job struct {
	ID           int64
	Name         string
	CreatorEmail string
	Schedule     *Schedule
}

// Run is one execution instance of a job. Timestamps are already converted
// from the workspace's epoch-millisecond form; EndTime is zero while the run
// is still in flight.
type Run struct {
	ID           int64
	JobID        int64
	StartTime    time.Time
	EndTime      time.Time
	Result       RunResult
	StateMessage string
}

// Finished reports whether the run has a terminal end time.
func (r Run) Finished() bool {
	return !r.EndTime.IsZero()
}

// JobsClient defines the operations this application needs from the
// job-orchestration workspace. All listing operations are already scoped to
// the configured operator: jobs owned by other accounts are never returned.
//
//go:generate mockgen -destination=../../mocks/mock_jobs_client.go -package=mocks . JobsClient
type JobsClient interface {
	// ListJobs returns all jobs owned by the operator.
	ListJobs(ctx context.Context) ([]Job, error)
	// ListRuns returns all recorded runs of the given job, most recent first.
	ListRuns(ctx context.Context, jobID int64) ([]Run, error)
	// GetJob fetches a single job with its current schedule settings.
	GetJob(ctx context.Context, jobID int64) (*Job, error)
	// RepairRun reruns all failed tasks of the given run and returns the
	// identifier of the repair run. The original run record is not mutated.
	RepairRun(ctx context.Context, runID int64) (int64, error)
	// SetSchedulePause pushes a new pause state for the job's schedule.
	SetSchedulePause(ctx context.Context, jobID int64, status PauseStatus) error
}

// Button is a single inline action affordance attached to an outbound message.
type Button struct {
	Label  string
	Action Action
}

// Message is one outbound chat message, optionally carrying one row of
// inline buttons.
type Message struct {
	Text     string
	Markdown bool
	Buttons  []Button
}

// Messenger defines the outbound side of the chat transport.
type Messenger interface {
	// Send delivers a message to the operator chat.
	Send(ctx context.Context, msg Message) error
	// Respond acknowledges a pending callback so the chat UI affordance
	// clears. Text, when non-empty, is shown as a short toast.
	Respond(ctx context.Context, callbackID, text string) error
}
