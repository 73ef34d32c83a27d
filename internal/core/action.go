package core

import (
	"encoding/json"
	"fmt"
)

// ActionKind enumerates the callback actions a message button can carry.
type ActionKind string

const (
	ActionCheckStatus ActionKind = "check_status"
	ActionRepair      ActionKind = "repair"
	ActionPause       ActionKind = "pause"
	ActionResume      ActionKind = "resume"
)

// Action is the payload attached to an inline button. It identifies what to
// do and on which target when tapped. Actions are minted when a message is
// rendered, travel inside the callback data, and are discarded after one
// dispatch; nothing is stored server-side.
//
// Repair targets a run, every other kind targets a job.
type Action struct {
	Kind  ActionKind
	JobID int64
	RunID int64
}

// wireAction is the compact JSON form carried in callback data. Telegram
// limits callback data to 64 bytes, so field names stay short and zero
// targets are omitted.
type wireAction struct {
	Action string `json:"action"`
	JobID  int64  `json:"job_id,omitempty"`
	RunID  int64  `json:"run_id,omitempty"`
}

// CheckStatusAction builds a check_status action for the given job.
func CheckStatusAction(jobID int64) Action {
	return Action{Kind: ActionCheckStatus, JobID: jobID}
}

// RepairAction builds a repair action for the given run.
func RepairAction(runID int64) Action {
	return Action{Kind: ActionRepair, RunID: runID}
}

// PauseAction builds a pause action for the given job.
func PauseAction(jobID int64) Action {
	return Action{Kind: ActionPause, JobID: jobID}
}

// ResumeAction builds a resume action for the given job.
func ResumeAction(jobID int64) Action {
	return Action{Kind: ActionResume, JobID: jobID}
}

// Validate checks that the action kind is known and that the identifier
// matching the kind is present.
func (a Action) Validate() error {
	switch a.Kind {
	case ActionRepair:
		if a.RunID == 0 {
			return fmt.Errorf("action %q requires a run id", a.Kind)
		}
	case ActionCheckStatus, ActionPause, ActionResume:
		if a.JobID == 0 {
			return fmt.Errorf("action %q requires a job id", a.Kind)
		}
	default:
		return fmt.Errorf("unknown action %q", a.Kind)
	}
	return nil
}

// Encode serializes the action into its callback-data wire form.
func (a Action) Encode() (string, error) {
	if err := a.Validate(); err != nil {
		return "", err
	}
	data, err := json.Marshal(wireAction{
		Action: string(a.Kind),
		JobID:  a.JobID,
		RunID:  a.RunID,
	})
	if err != nil {
		return "", fmt.Errorf("encode action: %w", err)
	}
	return string(data), nil
}

// DecodeAction parses callback data back into an Action. A failure here is a
// handled malformed-input condition, not a fault: callers acknowledge the tap
// with a generic error and move on.
func DecodeAction(data string) (Action, error) {
	var w wireAction
	if err := json.Unmarshal([]byte(data), &w); err != nil {
		return Action{}, fmt.Errorf("decode action: %w", err)
	}
	a := Action{Kind: ActionKind(w.Action), JobID: w.JobID, RunID: w.RunID}
	if err := a.Validate(); err != nil {
		return Action{}, err
	}
	return a, nil
}
