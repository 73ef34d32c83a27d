// Package dispatch merges timer ticks and inbound chat events into one
// ordered queue and hands them to the bot strictly one at a time.
package dispatch

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/sevigo/job-warden/internal/core"
	"github.com/sevigo/job-warden/internal/metrics"
)

// Handler consumes events pulled off the loop. All reporting to the operator
// happens inside the handler; returned errors are for logging only.
type Handler interface {
	HandleCommand(ctx context.Context, ev core.CommandEvent) error
	HandleCallback(ctx context.Context, ev core.CallbackEvent) error
	HandleTick(ctx context.Context, ev core.TickEvent) error
}

// Loop is the single-worker event loop. Exactly one handler invocation runs
// at a time, so no two workspace calls ever interleave. There is no local
// state to protect; serialization exists to keep chat output ordered and the
// load profile trivial.
type Loop struct {
	handler Handler
	queue   chan core.Event
	wg      sync.WaitGroup
	logger  *slog.Logger
	metrics metrics.Sink

	stopOnce sync.Once
}

// NewLoop creates the loop and starts its worker. If queueSize is 0 or
// negative, a default of 64 is used.
func NewLoop(handler Handler, queueSize int, logger *slog.Logger, sink metrics.Sink) *Loop {
	if queueSize <= 0 {
		queueSize = 64
	}
	if sink == nil {
		sink = metrics.NewNoopSink()
	}
	l := &Loop{
		handler: handler,
		queue:   make(chan core.Event, queueSize),
		logger:  logger,
		metrics: sink,
	}
	l.wg.Add(1)
	go l.run()
	return l
}

// Enqueue queues an event for processing in arrival order. It never blocks:
// a full queue is reported as backpressure to the caller.
func (l *Loop) Enqueue(_ context.Context, ev core.Event) error {
	select {
	case l.queue <- ev:
		l.metrics.EventEnqueued()
		l.metrics.QueueDepthUpdate(len(l.queue))
		return nil
	default:
		l.metrics.EventDropped()
		return fmt.Errorf("event queue is full, cannot accept new event")
	}
}

// run processes events until the queue is closed.
func (l *Loop) run() {
	defer l.wg.Done()
	l.logger.Info("starting event loop")

	for ev := range l.queue {
		l.metrics.QueueDepthUpdate(len(l.queue))
		l.processEvent(ev)
	}

	l.logger.Info("shutting down event loop")
}

// processEvent handles one event inside its own failure boundary. A failing
// handler, or even a panicking one, must not take down the loop: the next
// tick or command still gets served.
func (l *Loop) processEvent(ev core.Event) {
	defer func() {
		if r := recover(); r != nil {
			l.logger.Error("event handler panicked", "event_id", ev.EventID(), "panic", r)
		}
	}()

	ctx := context.Background()

	var err error
	switch e := ev.(type) {
	case core.CommandEvent:
		err = l.handler.HandleCommand(ctx, e)
	case core.CallbackEvent:
		err = l.handler.HandleCallback(ctx, e)
	case core.TickEvent:
		err = l.handler.HandleTick(ctx, e)
	default:
		l.logger.Warn("dropping event of unknown type", "event_id", ev.EventID())
		return
	}
	if err != nil {
		l.logger.Error("event handling failed", "event_id", ev.EventID(), "error", err)
	}
}

// Stop shuts the loop down, draining events already queued.
func (l *Loop) Stop() {
	l.stopOnce.Do(func() {
		l.logger.Info("stopping event loop, draining queue")
		close(l.queue)
	})
	l.wg.Wait()
}
