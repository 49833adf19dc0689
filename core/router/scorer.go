package router

import "strings"

// Confidence levels assigned by the scorer. A capability whose keywords miss
// entirely still scores baseConfidence so the best-match selection always has
// a winner.
const (
	baseConfidence  = 0.1
	matchConfidence = 0.8
	boostConfidence = 0.9
)

// Boost raises a capability's confidence when a more specific secondary term
// also appears in the request.
type Boost struct {
	Terms      []string
	Confidence float64
}

// Capability describes one registered resolver for scoring purposes. The
// routing table is data, not code: adding a capability is a table entry.
type Capability struct {
	Name        string
	Description string
	Keywords    []string
	Boosts      []Boost
}

// Score is the confidence computed for one capability.
type Score struct {
	Capability string
	Confidence float64
}

// Scorer ranks capabilities against a request using case-insensitive
// substring matching. Registration order is the tie-break, so results are
// reproducible for the same input.
type Scorer struct {
	caps []Capability
}

// NewScorer builds a scorer over the given ordered capability table.
func NewScorer(caps []Capability) *Scorer {
	return &Scorer{caps: caps}
}

// Capabilities returns the registered capability table in order.
func (s *Scorer) Capabilities() []Capability { return s.caps }

// Score computes a confidence for every capability, in registration order.
func (s *Scorer) Score(request string) []Score {
	lower := strings.ToLower(request)
	scores := make([]Score, 0, len(s.caps))
	for _, c := range s.caps {
		conf := baseConfidence
		if containsAny(lower, c.Keywords) {
			conf = matchConfidence
			for _, b := range c.Boosts {
				if containsAny(lower, b.Terms) {
					conf = b.Confidence
					break
				}
			}
		}
		scores = append(scores, Score{Capability: c.Name, Confidence: conf})
	}
	return scores
}

// Best returns the highest-confidence capability. On a tie the
// first-registered capability wins.
func (s *Scorer) Best(request string) Score {
	var best Score
	for _, sc := range s.Score(request) {
		if sc.Confidence > best.Confidence {
			best = sc
		}
	}
	return best
}

func containsAny(lower string, terms []string) bool {
	for _, t := range terms {
		if strings.Contains(lower, t) {
			return true
		}
	}
	return false
}
