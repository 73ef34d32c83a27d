// Package metrics records operational counters for the bot.
package metrics

import "time"

// Sink defines the interface for recording metrics.
// All methods are fire-and-forget: implementations MUST NOT block or
// propagate errors. If the metrics backend is unavailable, implementations
// log warnings and continue.
type Sink interface {
	// Failure-scan metrics
	ScanStarted()
	ScanCompleted(duration time.Duration, failures int, err error)

	// Chat handling metrics
	CommandHandled(command string, err error)
	CallbackHandled(action string, err error)

	// Event loop metrics
	EventEnqueued()
	EventDropped()
	QueueDepthUpdate(depth int)
}

// Outcome label values shared by the Prometheus sink.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

// OutcomeOf maps an error to its outcome label.
func OutcomeOf(err error) string {
	if err != nil {
		return OutcomeError
	}
	return OutcomeOK
}
