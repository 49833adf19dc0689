// Package conflict implements venue conflict detection and resolution for
// shared athletic facilities. The detector scans proposed schedules for
// overlapping or under-buffered events at the same venue and day; the
// resolver turns each finding into ranked remediation options.
package conflict

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/openathletics/flextime/core/logger"
	"github.com/openathletics/flextime/core/model"
	"github.com/openathletics/flextime/core/registry"
)

// Detector finds venue conflicts across sport schedules. It is a pure
// computation over an immutable snapshot: safe to call concurrently as long
// as each call owns its schedule map.
type Detector struct {
	reg *registry.Registry
	log logger.Logger
}

// NewDetector creates a Detector backed by the given registry.
func NewDetector(reg *registry.Registry, log logger.Logger) *Detector {
	return &Detector{reg: reg, log: log}
}

// venueDay identifies one facility on one date.
type venueDay struct {
	School string
	Venue  string
	Date   string
}

const endOfDayMin = 24*60 - 1

// indexedEvent carries an event with its clock times resolved to minutes
// since midnight. Unparsable times become end-of-day sentinels so one
// malformed event never aborts a pass.
type indexedEvent struct {
	ev       model.ScheduledEvent
	startMin int
	endMin   int
}

func clockMinutes(s string) (int, bool) {
	t, err := time.Parse(model.ClockLayout, s)
	if err != nil {
		return endOfDayMin, false
	}
	return t.Hour()*60 + t.Minute(), true
}

// Detect scans all schedules and returns the flat conflict list. Events
// without a resolvable home venue or missing school, date or start time are
// skipped; they are away games or incomplete feed rows, not errors.
func (d *Detector) Detect(schedules map[model.Sport][]model.ScheduledEvent) []model.Conflict {
	index := make(map[venueDay][]indexedEvent)
	for sport, events := range schedules {
		for _, ev := range events {
			ev.Sport = sport
			if ev.HomeSchool == "" || ev.Date == "" || ev.StartTime == "" {
				continue
			}
			venue, ok := d.reg.VenueFor(ev.HomeSchool, sport)
			if !ok {
				continue
			}
			start, parsed := clockMinutes(ev.StartTime)
			if !parsed {
				d.log.Debugw("unparsable start time", map[string]any{
					"event": ev.ID, "start": ev.StartTime,
				})
			}
			end, _ := clockMinutes(ev.EffectiveEnd())
			key := venueDay{School: ev.HomeSchool, Venue: venue.Name, Date: ev.Date}
			index[key] = append(index[key], indexedEvent{ev: ev, startMin: start, endMin: end})
		}
	}

	keys := make([]venueDay, 0, len(index))
	for k := range index {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, b := keys[i], keys[j]
		if a.School != b.School {
			return a.School < b.School
		}
		if a.Venue != b.Venue {
			return a.Venue < b.Venue
		}
		return a.Date < b.Date
	})

	var conflicts []model.Conflict
	for _, key := range keys {
		day := index[key]
		sort.SliceStable(day, func(i, j int) bool { return day[i].startMin < day[j].startMin })
		if len(day) < 2 {
			continue
		}
		for i := 0; i < len(day); i++ {
			for j := i + 1; j < len(day); j++ {
				conflicts = append(conflicts, d.checkPair(key, day[i], day[j])...)
			}
		}
	}
	return conflicts
}

// checkPair applies the conflict rules to one ordered event pair. first
// starts no later than second.
func (d *Detector) checkPair(key venueDay, first, second indexedEvent) []model.Conflict {
	s1, s2 := first.ev.Sport, second.ev.Sport

	// Tennis policy takes precedence over the timing rules: the gendered
	// pair on the same day is always a soft conflict, never a hard one.
	if model.IsTennisPair(s1, s2) {
		return []model.Conflict{d.newConflict(key, first, second,
			model.SoftConflict, model.SeverityMedium,
			"Men's and Women's Tennis preferably scheduled on different days")}
	}

	if first.endMin > second.startMin {
		return []model.Conflict{d.newConflict(key, first, second,
			model.HardConflict, model.SeverityHigh,
			"Events have overlapping times")}
	}

	var out []model.Conflict
	gap := float64(second.startMin-first.endMin) / 60
	required := d.reg.TransitionTime(s1, s2, key.School, key.Venue)
	requiredHours := required.Hours()
	switch {
	case gap < requiredHours:
		out = append(out, d.newConflict(key, first, second,
			model.HardConflict, model.SeverityHigh,
			fmt.Sprintf("Insufficient transition time (%.1f hours, need %.1f hours)", gap, requiredHours)))
	case gap < requiredHours+1:
		out = append(out, d.newConflict(key, first, second,
			model.SoftConflict, model.SeverityMedium,
			fmt.Sprintf("Tight transition time (%.1f hours)", gap)))
	}

	// Basketball doubleheaders are a desired outcome, flagged alongside any
	// transition finding for the same pair.
	if model.IsBasketballPair(s1, s2) {
		out = append(out, d.newConflict(key, first, second,
			model.DoubleheaderOpportunity, model.SeverityOpportunity,
			"Potential basketball doubleheader"))
	}
	return out
}

func (d *Detector) newConflict(key venueDay, first, second indexedEvent, typ model.ConflictType, sev model.Severity, reason string) model.Conflict {
	return model.Conflict{
		ID:     uuid.NewString(),
		Type:   typ,
		School: key.School,
		Venue:  key.Venue,
		Date:   key.Date,
		First: model.ConflictEvent{
			EventID:   first.ev.ID,
			Sport:     first.ev.Sport,
			StartTime: first.ev.StartTime,
			EndTime:   first.ev.EffectiveEnd(),
		},
		Second: model.ConflictEvent{
			EventID:   second.ev.ID,
			Sport:     second.ev.Sport,
			StartTime: second.ev.StartTime,
			EndTime:   second.ev.EffectiveEnd(),
		},
		Reason:   reason,
		Severity: sev,
	}
}
