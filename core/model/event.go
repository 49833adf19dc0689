package model

import (
	"encoding/json"
	"time"
)

// Clock layouts used across schedule feeds.
const (
	ClockLayout = "15:04"
	DateLayout  = "2006-01-02"
)

// SentinelEnd is the end time assigned to events whose start time cannot be
// parsed. The event still occupies its venue for the rest of the day rather
// than aborting the detection pass.
const SentinelEnd = "23:59"

// ScheduledEvent is one proposed game or meet. Events are produced by
// external schedule ingestion and treated as immutable once handed to the
// detector.
type ScheduledEvent struct {
	ID          string `json:"id,omitempty"`
	Sport       Sport  `json:"sport,omitempty"`
	HomeSchool  string `json:"home_school"`
	Date        string `json:"date"`       // YYYY-MM-DD
	StartTime   string `json:"start_time"` // HH:MM, 24h
	EndTime     string `json:"end_time,omitempty"`
	Description string `json:"description,omitempty"`
}

// scheduledEventAlias mirrors ScheduledEvent and additionally accepts the
// home_team key some feeds use instead of home_school.
type scheduledEventAlias struct {
	ID          string `json:"id"`
	Sport       Sport  `json:"sport"`
	HomeSchool  string `json:"home_school"`
	HomeTeam    string `json:"home_team"`
	Date        string `json:"date"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	Description string `json:"description"`
}

// UnmarshalJSON accepts both home_school and home_team for the home side.
func (e *ScheduledEvent) UnmarshalJSON(data []byte) error {
	var a scheduledEventAlias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	e.ID = a.ID
	e.Sport = a.Sport
	e.HomeSchool = a.HomeSchool
	if e.HomeSchool == "" {
		e.HomeSchool = a.HomeTeam
	}
	e.Date = a.Date
	e.StartTime = a.StartTime
	e.EndTime = a.EndTime
	e.Description = a.Description
	return nil
}

// EffectiveEnd returns the event end time, deriving one from the sport's
// default duration when the feed omitted it: three hours for football, two
// for everything else. An unparsable start time yields SentinelEnd.
func (e ScheduledEvent) EffectiveEnd() string {
	if e.EndTime != "" {
		return e.EndTime
	}
	start, err := time.Parse(ClockLayout, e.StartTime)
	if err != nil {
		return SentinelEnd
	}
	dur := 2 * time.Hour
	if e.Sport == SportFootball {
		dur = 3 * time.Hour
	}
	return start.Add(dur).Format(ClockLayout)
}
