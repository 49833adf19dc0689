// Package reportlog persists conflict detection reports so scheduling staff
// can review past passes and compare cycles.
package reportlog

import (
	"context"
	"time"

	"github.com/openathletics/flextime/core/model"
)

// Report captures one detection pass and its recommended resolutions.
type Report struct {
	Timestamp   time.Time          `json:"timestamp"`
	Cycle       string             `json:"cycle,omitempty"`
	Conflicts   []model.Conflict   `json:"conflicts"`
	Resolutions []model.Resolution `json:"resolutions,omitempty"`
}

// Query defines filters for retrieving reports. Zero values match anything.
type Query struct {
	Start  time.Time
	End    time.Time
	School string
	Venue  string
	Type   model.ConflictType
}

// matches reports whether the record satisfies the query filters. A record
// matches school/venue/type filters when any of its conflicts does.
func (q Query) matches(r Report) bool {
	if !q.Start.IsZero() && r.Timestamp.Before(q.Start) {
		return false
	}
	if !q.End.IsZero() && r.Timestamp.After(q.End) {
		return false
	}
	if q.School == "" && q.Venue == "" && q.Type == "" {
		return true
	}
	for _, c := range r.Conflicts {
		if q.School != "" && c.School != q.School {
			continue
		}
		if q.Venue != "" && c.Venue != q.Venue {
			continue
		}
		if q.Type != "" && c.Type != q.Type {
			continue
		}
		return true
	}
	return false
}

// Store persists detection reports and supports querying.
type Store interface {
	Append(ctx context.Context, r Report) error
	Query(ctx context.Context, q Query) ([]Report, error)
	Close() error
}
