package core

import (
	"time"

	"github.com/google/uuid"
)

// Event is one unit of work for the dispatch loop. Timer ticks and inbound
// chat events implement it; the loop serializes their handling in arrival
// order. The ID exists purely for log correlation.
type Event interface {
	EventID() uuid.UUID
}

// CommandEvent is an inbound slash command from the operator chat.
type CommandEvent struct {
	ID      uuid.UUID
	Command string // normalized, no leading slash, lower case
}

// CallbackEvent is an inbound button tap. Data holds the raw callback
// payload; it is decoded at dispatch time, and CallbackID is what the
// dispatcher acknowledges.
type CallbackEvent struct {
	ID         uuid.UUID
	CallbackID string
	Data       string
}

// TickEvent is a scheduled firing of the daily failure scan.
type TickEvent struct {
	ID      uuid.UUID
	FiredAt time.Time
}

func (e CommandEvent) EventID() uuid.UUID  { return e.ID }
func (e CallbackEvent) EventID() uuid.UUID { return e.ID }
func (e TickEvent) EventID() uuid.UUID     { return e.ID }

// NewCommandEvent builds a CommandEvent with a fresh correlation id.
func NewCommandEvent(command string) CommandEvent {
	return CommandEvent{ID: uuid.New(), Command: command}
}

// NewCallbackEvent builds a CallbackEvent with a fresh correlation id.
func NewCallbackEvent(callbackID, data string) CallbackEvent {
	return CallbackEvent{ID: uuid.New(), CallbackID: callbackID, Data: data}
}

// NewTickEvent builds a TickEvent with a fresh correlation id.
func NewTickEvent(firedAt time.Time) TickEvent {
	return TickEvent{ID: uuid.New(), FiredAt: firedAt}
}
