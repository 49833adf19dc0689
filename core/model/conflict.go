package model

// ConflictType classifies a detected venue conflict. The string values are a
// stable contract consumed by downstream formatting layers.
type ConflictType string

const (
	HardConflict            ConflictType = "hard_conflict"
	SoftConflict            ConflictType = "soft_conflict"
	DoubleheaderOpportunity ConflictType = "doubleheader_opportunity"
)

// Severity grades a conflict. Opportunity marks desirable same-day pairings
// rather than problems.
type Severity string

const (
	SeverityLow         Severity = "Low"
	SeverityMedium      Severity = "Medium"
	SeverityHigh        Severity = "High"
	SeverityOpportunity Severity = "Opportunity"
)

// ConflictEvent is the slice of a ScheduledEvent a conflict record carries.
type ConflictEvent struct {
	EventID   string `json:"event_id,omitempty"`
	Sport     Sport  `json:"sport"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// Conflict records one detected issue between two events sharing a venue and
// date. A single event pair may produce more than one record, e.g. a tight
// transition soft conflict alongside a doubleheader opportunity.
type Conflict struct {
	ID       string        `json:"id"`
	Type     ConflictType  `json:"type"`
	School   string        `json:"school"`
	Venue    string        `json:"venue"`
	Date     string        `json:"date"`
	First    ConflictEvent `json:"event1"`
	Second   ConflictEvent `json:"event2"`
	Reason   string        `json:"reason"`
	Severity Severity      `json:"severity"`
}

// Option is one remediation choice for a conflict. Priority 1 is the most
// preferred.
type Option struct {
	Recommendation string `json:"recommendation"`
	Rationale      string `json:"rationale"`
	Priority       int    `json:"priority"`
}

// Resolution holds the ranked remediation options for one conflict.
type Resolution struct {
	ConflictID string   `json:"conflict_id"`
	Options    []Option `json:"options"`
}
