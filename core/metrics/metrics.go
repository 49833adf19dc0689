package metrics

import (
	"time"

	"github.com/openathletics/flextime/core/model"
)

// ConflictRecord represents one detected conflict to be recorded.
type ConflictRecord struct {
	School   string
	Venue    string
	Date     string
	Type     model.ConflictType
	Severity model.Severity
	Time     time.Time
}

// RouteRecord represents one executed router step.
type RouteRecord struct {
	Resolver   string
	Step       int
	Composite  bool
	Confidence float64
	Latency    time.Duration
	Err        string
	Time       time.Time
}

// Sink records detection and routing results for observability purposes.
type Sink interface {
	RecordConflicts(recs []ConflictRecord) error
	RecordRouteSteps(recs []RouteRecord) error
}

// NopSink implements Sink with no-op methods.
type NopSink struct{}

func (NopSink) RecordConflicts([]ConflictRecord) error { return nil }
func (NopSink) RecordRouteSteps([]RouteRecord) error   { return nil }
