package dispatch

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sevigo/job-warden/internal/core"
)

type recordingHandler struct {
	mu      sync.Mutex
	handled []string
	fail    map[string]error
	panics  map[string]bool
	slow    time.Duration
}

func newRecordingHandler() *recordingHandler {
	return &recordingHandler{fail: map[string]error{}, panics: map[string]bool{}}
}

func (h *recordingHandler) record(kind string) error {
	if h.slow > 0 {
		time.Sleep(h.slow)
	}
	h.mu.Lock()
	h.handled = append(h.handled, kind)
	h.mu.Unlock()
	if h.panics[kind] {
		panic("handler exploded")
	}
	return h.fail[kind]
}

func (h *recordingHandler) HandleCommand(_ context.Context, ev core.CommandEvent) error {
	return h.record("command:" + ev.Command)
}

func (h *recordingHandler) HandleCallback(_ context.Context, _ core.CallbackEvent) error {
	return h.record("callback")
}

func (h *recordingHandler) HandleTick(_ context.Context, _ core.TickEvent) error {
	return h.record("tick")
}

func (h *recordingHandler) snapshot() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]string(nil), h.handled...)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}

func TestLoopPreservesArrivalOrder(t *testing.T) {
	h := newRecordingHandler()
	l := NewLoop(h, 16, testLogger(), nil)

	ctx := context.Background()
	require.NoError(t, l.Enqueue(ctx, core.NewCommandEvent("jobs")))
	require.NoError(t, l.Enqueue(ctx, core.NewTickEvent(time.Now())))
	require.NoError(t, l.Enqueue(ctx, core.NewCallbackEvent("cb", "{}")))
	require.NoError(t, l.Enqueue(ctx, core.NewCommandEvent("failed")))

	l.Stop()

	assert.Equal(t, []string{"command:jobs", "tick", "callback", "command:failed"}, h.snapshot())
}

func TestLoopSurvivesHandlerErrors(t *testing.T) {
	h := newRecordingHandler()
	h.fail["tick"] = errors.New("scan blew up")
	l := NewLoop(h, 16, testLogger(), nil)

	ctx := context.Background()
	require.NoError(t, l.Enqueue(ctx, core.NewTickEvent(time.Now())))
	require.NoError(t, l.Enqueue(ctx, core.NewCommandEvent("jobs")))

	l.Stop()

	assert.Equal(t, []string{"tick", "command:jobs"}, h.snapshot())
}

func TestLoopSurvivesHandlerPanic(t *testing.T) {
	h := newRecordingHandler()
	h.panics["callback"] = true
	l := NewLoop(h, 16, testLogger(), nil)

	ctx := context.Background()
	require.NoError(t, l.Enqueue(ctx, core.NewCallbackEvent("cb", "{}")))
	require.NoError(t, l.Enqueue(ctx, core.NewCommandEvent("help")))

	l.Stop()

	assert.Equal(t, []string{"callback", "command:help"}, h.snapshot())
}

func TestLoopRejectsWhenQueueFull(t *testing.T) {
	h := newRecordingHandler()
	h.slow = 50 * time.Millisecond
	l := NewLoop(h, 1, testLogger(), nil)
	defer l.Stop()

	ctx := context.Background()

	// Saturate the worker plus the single queue slot, then expect
	// backpressure. Enqueue retries paper over scheduling races.
	var sawFull bool
	for i := 0; i < 20; i++ {
		if err := l.Enqueue(ctx, core.NewCommandEvent("jobs")); err != nil {
			sawFull = true
			break
		}
	}
	assert.True(t, sawFull, "expected a queue-full rejection")
}

func TestStopIsIdempotent(t *testing.T) {
	l := NewLoop(newRecordingHandler(), 4, testLogger(), nil)
	l.Stop()
	l.Stop()
}
