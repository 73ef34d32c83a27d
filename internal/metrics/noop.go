package metrics

import "time"

// NoopSink is a no-op implementation of Sink.
// Used when metrics are disabled to avoid nil checks.
type NoopSink struct{}

// NewNoopSink returns a no-op metrics sink.
func NewNoopSink() *NoopSink {
	return &NoopSink{}
}

func (n *NoopSink) ScanStarted()                                             {}
func (n *NoopSink) ScanCompleted(duration time.Duration, failures int, err error) {}
func (n *NoopSink) CommandHandled(command string, err error)                 {}
func (n *NoopSink) CallbackHandled(action string, err error)                 {}
func (n *NoopSink) EventEnqueued()                                           {}
func (n *NoopSink) EventDropped()                                            {}
func (n *NoopSink) QueueDepthUpdate(depth int)                               {}
