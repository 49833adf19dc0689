package metrics

import "errors"

// MultiSink fans records out to multiple sinks.
type MultiSink struct {
	sinks []Sink
}

// NewMultiSink creates a MultiSink with the provided sinks.
func NewMultiSink(sinks ...Sink) *MultiSink {
	return &MultiSink{sinks: sinks}
}

// RecordConflicts forwards the records to every sink, joining errors.
func (m *MultiSink) RecordConflicts(recs []ConflictRecord) error {
	var errs []error
	for _, s := range m.sinks {
		if err := s.RecordConflicts(recs); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// RecordRouteSteps forwards the records to every sink, joining errors.
func (m *MultiSink) RecordRouteSteps(recs []RouteRecord) error {
	var errs []error
	for _, s := range m.sinks {
		if err := s.RecordRouteSteps(recs); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
