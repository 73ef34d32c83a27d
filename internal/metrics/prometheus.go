package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// PrometheusSink records metrics into a Prometheus registry. The collectors
// are registered once at construction; recording never blocks.
type PrometheusSink struct {
	scansTotal       *prometheus.CounterVec
	scanDuration     prometheus.Histogram
	scanFailures     prometheus.Gauge
	commandsTotal    *prometheus.CounterVec
	callbacksTotal   *prometheus.CounterVec
	eventsEnqueued   prometheus.Counter
	eventsDropped    prometheus.Counter
	queueDepth       prometheus.Gauge
}

// NewPrometheusSink creates a sink registered against reg. Pass
// prometheus.DefaultRegisterer for the process-wide registry.
func NewPrometheusSink(reg prometheus.Registerer) *PrometheusSink {
	factory := promauto.With(reg)

	return &PrometheusSink{
		scansTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "warden_scans_total",
			Help: "Failure scans performed, by outcome.",
		}, []string{"outcome"}),
		scanDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "warden_scan_duration_seconds",
			Help:    "Wall time of a full failure scan.",
			Buckets: prometheus.DefBuckets,
		}),
		scanFailures: factory.NewGauge(prometheus.GaugeOpts{
			Name: "warden_scan_failures",
			Help: "Failing runs found by the most recent scan.",
		}),
		commandsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "warden_commands_total",
			Help: "Chat commands handled, by command and outcome.",
		}, []string{"command", "outcome"}),
		callbacksTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "warden_callbacks_total",
			Help: "Button callbacks handled, by action and outcome.",
		}, []string{"action", "outcome"}),
		eventsEnqueued: factory.NewCounter(prometheus.CounterOpts{
			Name: "warden_events_enqueued_total",
			Help: "Events accepted into the dispatch queue.",
		}),
		eventsDropped: factory.NewCounter(prometheus.CounterOpts{
			Name: "warden_events_dropped_total",
			Help: "Events rejected because the dispatch queue was full.",
		}),
		queueDepth: factory.NewGauge(prometheus.GaugeOpts{
			Name: "warden_queue_depth",
			Help: "Events currently waiting in the dispatch queue.",
		}),
	}
}

func (s *PrometheusSink) ScanStarted() {}

func (s *PrometheusSink) ScanCompleted(duration time.Duration, failures int, err error) {
	s.scansTotal.WithLabelValues(OutcomeOf(err)).Inc()
	s.scanDuration.Observe(duration.Seconds())
	if err == nil {
		s.scanFailures.Set(float64(failures))
	}
}

func (s *PrometheusSink) CommandHandled(command string, err error) {
	s.commandsTotal.WithLabelValues(command, OutcomeOf(err)).Inc()
}

func (s *PrometheusSink) CallbackHandled(action string, err error) {
	s.callbacksTotal.WithLabelValues(action, OutcomeOf(err)).Inc()
}

func (s *PrometheusSink) EventEnqueued() {
	s.eventsEnqueued.Inc()
}

func (s *PrometheusSink) EventDropped() {
	s.eventsDropped.Inc()
}

func (s *PrometheusSink) QueueDepthUpdate(depth int) {
	s.queueDepth.Set(float64(depth))
}
