package conflict

import (
	"fmt"

	"github.com/openathletics/flextime/core/model"
	"github.com/openathletics/flextime/core/registry"
)

// Resolver produces ranked remediation options for detected conflicts.
type Resolver struct {
	reg *registry.Registry
}

// NewResolver creates a Resolver using the registry's venue priority orders.
func NewResolver(reg *registry.Registry) *Resolver {
	return &Resolver{reg: reg}
}

// Resolve returns the remediation options for one conflict, most preferred
// first. Doubleheader opportunities outside the basketball pair yield no
// options: the flag stands on its own and the policy table has nothing
// canned for them.
func (r *Resolver) Resolve(c model.Conflict) model.Resolution {
	res := model.Resolution{ConflictID: c.ID}
	switch c.Type {
	case model.HardConflict:
		res.Options = r.hardOptions(c)
	case model.SoftConflict:
		res.Options = softOptions(c)
	case model.DoubleheaderOpportunity:
		res.Options = doubleheaderOptions(c)
	}
	return res
}

// hardOptions keeps the higher-priority sport in place and recommends moving
// the other. Priority reassignment is not always feasible, so two fallback
// strategies always follow at priorities 2 and 3.
func (r *Resolver) hardOptions(c model.Conflict) []model.Option {
	s1, s2 := c.First.Sport, c.Second.Sport
	p1 := r.reg.PriorityIndex(c.School, c.Venue, s1)
	p2 := r.reg.PriorityIndex(c.School, c.Venue, s2)

	kept, moved := s2, s1
	if p1 < p2 {
		kept, moved = s1, s2
	}
	return []model.Option{
		{
			Recommendation: fmt.Sprintf("Move %s to a different date (higher priority given to %s)", moved, kept),
			Rationale:      fmt.Sprintf("%s has higher venue priority at %s", kept, c.Venue),
			Priority:       1,
		},
		{
			Recommendation: "Adjust start times to ensure adequate transition time",
			Rationale:      "May be feasible if transition time is the main issue",
			Priority:       2,
		},
		{
			Recommendation: fmt.Sprintf("Check if alternate venue is available for %s", moved),
			Rationale:      "Some schools have secondary facilities that could be used",
			Priority:       3,
		},
	}
}

func softOptions(c model.Conflict) []model.Option {
	if model.IsTennisPair(c.First.Sport, c.Second.Sport) {
		return []model.Option{
			{
				Recommendation: "Schedule men's and women's tennis on separate days when possible",
				Rationale:      "Separate days are preferred but not mandatory for tennis events",
				Priority:       1,
			},
			{
				Recommendation: "If same-day scheduling is necessary, ensure at least 3 hours between events",
				Rationale:      "Provides adequate transition time for court preparation and staff changes",
				Priority:       2,
			},
			{
				Recommendation: "Consider men's matches in mornings and women's in afternoons if same-day scheduling is required",
				Rationale:      "Creates a natural flow for spectators and reduces operational complexity",
				Priority:       3,
			},
		}
	}
	return []model.Option{
		{
			Recommendation: fmt.Sprintf("Add more buffer time between %s and %s events", c.First.Sport, c.Second.Sport),
			Rationale:      "Extra buffer provides flexibility for event overruns",
			Priority:       1,
		},
		{
			Recommendation: "Schedule on separate days if the schedule allows",
			Rationale:      "Eliminates transition pressure and staffing concerns",
			Priority:       2,
		},
	}
}

func doubleheaderOptions(c model.Conflict) []model.Option {
	if !model.IsBasketballPair(c.First.Sport, c.Second.Sport) {
		return nil
	}
	return []model.Option{
		{
			Recommendation: "Officially designate as Basketball Doubleheader with special marketing",
			Rationale:      "Increases attendance and creates better atmosphere for both teams",
			Priority:       1,
		},
		{
			Recommendation: "Schedule women's game first (2PM), followed by men's game (6PM)",
			Rationale:      "Optimal timing for maximum attendance at both games",
			Priority:       2,
		},
		{
			Recommendation: "Offer special ticket packages for attending both games",
			Rationale:      "Incentivizes fans to attend both games",
			Priority:       3,
		},
	}
}
