package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	coremetrics "github.com/openathletics/flextime/core/metrics"
)

// PromSink records detection and routing results in Prometheus metrics.
type PromSink struct {
	conflicts *prometheus.CounterVec
	steps     *prometheus.CounterVec
	latency   *prometheus.HistogramVec
}

// NewPromSink registers metrics on the default Prometheus registerer.
// The Prometheus server should be started separately via StartPromServer.
func NewPromSink() (coremetrics.Sink, error) {
	return NewPromSinkWithRegistry(prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer.
func NewPromSinkWithRegistry(reg prometheus.Registerer) (coremetrics.Sink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	conflicts := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "venue_conflicts_total",
		Help: "Total number of detected venue conflicts",
	}, []string{"school", "venue", "type", "severity"})
	steps := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "router_steps_total",
		Help: "Total number of executed router steps",
	}, []string{"resolver", "composite", "failed"})
	latency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "router_step_latency_seconds",
		Help:    "Resolver invocation duration",
		Buckets: prometheus.DefBuckets,
	}, []string{"resolver"})

	if err := reg.Register(conflicts); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			conflicts = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(steps); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			steps = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(latency); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			latency = are.ExistingCollector.(*prometheus.HistogramVec)
		} else {
			return nil, err
		}
	}

	return &PromSink{conflicts: conflicts, steps: steps, latency: latency}, nil
}

// RecordConflicts increments the conflict counter per detected conflict.
func (s *PromSink) RecordConflicts(recs []coremetrics.ConflictRecord) error {
	for _, r := range recs {
		s.conflicts.WithLabelValues(r.School, r.Venue, string(r.Type), string(r.Severity)).Inc()
	}
	return nil
}

// RecordRouteSteps increments the step counter and observes latencies.
func (s *PromSink) RecordRouteSteps(recs []coremetrics.RouteRecord) error {
	for _, r := range recs {
		failed := strconv.FormatBool(r.Err != "")
		s.steps.WithLabelValues(r.Resolver, strconv.FormatBool(r.Composite), failed).Inc()
		s.latency.WithLabelValues(r.Resolver).Observe(r.Latency.Seconds())
	}
	return nil
}
