// Package registry holds venue definitions for every school: which sports a
// facility hosts, the venue's sport priority order and transition-time
// overrides. Lookups never fail hard; unknown schools or venues degrade to
// built-in fallback tables because venue data is best-effort external input.
package registry

import (
	"sort"
	"sync/atomic"
	"time"

	"github.com/openathletics/flextime/core/logger"
	"github.com/openathletics/flextime/core/model"
)

// Location describes where a venue sits. Consumed by travel and weather
// resolvers, not by conflict detection.
type Location struct {
	Latitude  float64 `json:"latitude,omitempty"`
	Longitude float64 `json:"longitude,omitempty"`
	City      string  `json:"city,omitempty"`
	State     string  `json:"state,omitempty"`
}

// Venue is one shared facility.
type Venue struct {
	Name   string        `json:"name"`
	Sports []model.Sport `json:"sports"`
	// PriorityOrder ranks sports for tie-breaking; lower index wins.
	PriorityOrder []model.Sport `json:"priority_order"`
	// TransitionTimes overrides the global pair table, keyed "from_to_to"
	// with values in hours.
	TransitionTimes map[string]float64 `json:"transition_times,omitempty"`
	Notes           string             `json:"notes,omitempty"`
	Location        *Location          `json:"location,omitempty"`
}

// School groups the venues of one institution.
type School struct {
	Name   string  `json:"name"`
	Venues []Venue `json:"venues"`
}

// Document is the on-disk venue data shape.
type Document struct {
	Schools map[string]School `json:"schools"`
}

// Unranked is the priority index assigned to sports absent from a venue's
// priority order. It sorts after every ranked sport.
const Unranked = 1 << 20

// DefaultTransition applies when neither a venue override nor the global
// pair table defines the transition.
const DefaultTransition = 2 * time.Hour

// snapshot is one immutable view of the registry. Reload swaps the whole
// snapshot so concurrent detection passes never see a partial update.
type snapshot struct {
	schools   map[string]School
	pairHours map[string]float64
}

// Registry resolves venues, priority orders and transition times.
type Registry struct {
	log  logger.Logger
	snap atomic.Pointer[snapshot]
}

// New returns a Registry seeded with the built-in fallback tables.
func New(log logger.Logger) *Registry {
	r := &Registry{log: log}
	r.snap.Store(&snapshot{
		schools:   fallbackSchools(),
		pairHours: fallbackPairHours(),
	})
	return r
}

// VenueFor returns the first venue at school hosting the sport. Gendered
// basketball is matched as either code, since both programs share the floor.
func (r *Registry) VenueFor(school string, sport model.Sport) (Venue, bool) {
	s := r.snap.Load()
	sc, ok := s.schools[school]
	if !ok {
		return Venue{}, false
	}
	for _, v := range sc.Venues {
		for _, vs := range v.Sports {
			if vs == sport {
				return v, true
			}
			// Both basketball programs share the floor, so a venue
			// listing either code hosts both.
			if vs.TransitionKey() == "basketball" && sport.TransitionKey() == "basketball" {
				return v, true
			}
		}
	}
	return Venue{}, false
}

// Venue returns the named venue at the school.
func (r *Registry) Venue(school, name string) (Venue, bool) {
	s := r.snap.Load()
	sc, ok := s.schools[school]
	if !ok {
		return Venue{}, false
	}
	for _, v := range sc.Venues {
		if v.Name == name {
			return v, true
		}
	}
	return Venue{}, false
}

// School returns the school entry for the given code.
func (r *Registry) School(code string) (School, bool) {
	s := r.snap.Load()
	sc, ok := s.schools[code]
	return sc, ok
}

// Schools returns the known school codes, sorted.
func (r *Registry) Schools() []string {
	s := r.snap.Load()
	out := make([]string, 0, len(s.schools))
	for code := range s.schools {
		out = append(out, code)
	}
	sort.Strings(out)
	return out
}

// PriorityOrder returns the venue's sport ranking, empty when unknown.
func (r *Registry) PriorityOrder(school, venue string) []model.Sport {
	v, ok := r.Venue(school, venue)
	if !ok {
		return nil
	}
	return v.PriorityOrder
}

// PriorityIndex returns the sport's rank at the venue, Unranked when the
// sport is absent from the priority order or the venue is unknown.
func (r *Registry) PriorityIndex(school, venue string, sport model.Sport) int {
	for i, s := range r.PriorityOrder(school, venue) {
		if s == sport {
			return i
		}
	}
	return Unranked
}

// TransitionTime returns the buffer required between two back-to-back events.
// Precedence: venue-specific override, global pair table, DefaultTransition.
// Gendered basketball collapses to a single basketball key before lookup.
func (r *Registry) TransitionTime(from, to model.Sport, school, venue string) time.Duration {
	key := transitionKey(from, to)
	if school != "" && venue != "" {
		if v, ok := r.Venue(school, venue); ok {
			if hours, ok := v.TransitionTimes[key]; ok {
				return hoursToDuration(hours)
			}
		}
	}
	s := r.snap.Load()
	if hours, ok := s.pairHours[key]; ok {
		return hoursToDuration(hours)
	}
	return DefaultTransition
}

func transitionKey(from, to model.Sport) string {
	return from.TransitionKey() + "_to_" + to.TransitionKey()
}

func hoursToDuration(h float64) time.Duration {
	return time.Duration(h * float64(time.Hour))
}
