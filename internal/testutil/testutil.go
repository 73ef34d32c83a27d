// Package testutil provides shared test helpers for job-warden.
package testutil

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/sevigo/job-warden/internal/core"
)

// FakeClock provides deterministic time for testing.
type FakeClock struct {
	mu      sync.Mutex
	current time.Time
}

// NewFakeClock creates a FakeClock set to the given time.
func NewFakeClock(t time.Time) *FakeClock {
	return &FakeClock{current: t}
}

// Now returns the current fake time.
func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// Advance moves the clock forward by d.
func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = c.current.Add(d)
}

// RecordingMessenger is a core.Messenger that captures everything sent
// through it.
type RecordingMessenger struct {
	mu        sync.Mutex
	messages  []core.Message
	responses []Response
	sendErr   error
}

// Response is one recorded callback acknowledgment.
type Response struct {
	CallbackID string
	Text       string
}

// NewRecordingMessenger creates an empty recorder.
func NewRecordingMessenger() *RecordingMessenger {
	return &RecordingMessenger{}
}

// FailSends makes every subsequent Send return the given error.
func (m *RecordingMessenger) FailSends(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sendErr = err
}

func (m *RecordingMessenger) Send(_ context.Context, msg core.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.sendErr != nil {
		return m.sendErr
	}
	m.messages = append(m.messages, msg)
	return nil
}

func (m *RecordingMessenger) Respond(_ context.Context, callbackID, text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses = append(m.responses, Response{CallbackID: callbackID, Text: text})
	return nil
}

// Messages returns a copy of everything sent so far.
func (m *RecordingMessenger) Messages() []core.Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]core.Message(nil), m.messages...)
}

// Responses returns a copy of all recorded acknowledgments.
func (m *RecordingMessenger) Responses() []Response {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Response(nil), m.responses...)
}

// ErrRemote is a stand-in remote failure for tests.
var ErrRemote = errors.New("remote service unavailable")
