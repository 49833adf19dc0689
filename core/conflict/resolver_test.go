package conflict

import (
	"strings"
	"testing"

	"github.com/openathletics/flextime/core/model"
	"github.com/openathletics/flextime/core/registry"
	"github.com/openathletics/flextime/infra/logger"
)

func newTestResolver() *Resolver {
	return NewResolver(registry.New(logger.NopLogger{}))
}

func TestResolveHardConflictUsesPriorityOrder(t *testing.T) {
	r := newTestResolver()
	// Hilton priority: mbasketball, wbasketball, wrestling, gymnastics,
	// volleyball. Wrestling outranks gymnastics, so gymnastics moves.
	c := model.Conflict{
		ID:     "c1",
		Type:   model.HardConflict,
		School: "iowa_state",
		Venue:  "Hilton Coliseum",
		First:  model.ConflictEvent{Sport: model.SportWrestling},
		Second: model.ConflictEvent{Sport: model.SportGymnastics},
	}
	res := r.Resolve(c)
	if res.ConflictID != "c1" {
		t.Errorf("resolution should reference the conflict: %+v", res)
	}
	if len(res.Options) != 3 {
		t.Fatalf("hard conflicts carry three options, got %+v", res.Options)
	}
	top := res.Options[0]
	if top.Priority != 1 || !strings.Contains(top.Recommendation, "Move gymnastics") {
		t.Errorf("top option should move the lower-priority sport: %+v", top)
	}
	if !strings.Contains(top.Rationale, "wrestling has higher venue priority") {
		t.Errorf("rationale should name the kept sport: %+v", top)
	}
	if res.Options[1].Priority != 2 || res.Options[2].Priority != 3 {
		t.Errorf("fallback options must rank 2 and 3: %+v", res.Options)
	}
	if !strings.Contains(res.Options[2].Recommendation, "alternate venue is available for gymnastics") {
		t.Errorf("alternate-venue option should target the moved sport: %+v", res.Options[2])
	}
}

func TestResolveHardConflictUnrankedSportMoves(t *testing.T) {
	r := newTestResolver()
	// Lacrosse is absent from every priority order: it is unranked and
	// always the one to move.
	c := model.Conflict{
		Type:   model.HardConflict,
		School: "iowa_state",
		Venue:  "Hilton Coliseum",
		First:  model.ConflictEvent{Sport: model.SportLacrosse},
		Second: model.ConflictEvent{Sport: model.SportVolleyball},
	}
	res := r.Resolve(c)
	if !strings.Contains(res.Options[0].Recommendation, "Move lacrosse") {
		t.Errorf("unranked sport should move: %+v", res.Options[0])
	}
}

func TestResolveSoftTennisPlaybook(t *testing.T) {
	r := newTestResolver()
	c := model.Conflict{
		Type:   model.SoftConflict,
		School: "arizona_state",
		Venue:  "Whiteman Tennis Center",
		First:  model.ConflictEvent{Sport: model.SportMensTennis},
		Second: model.ConflictEvent{Sport: model.SportWomensTennis},
	}
	res := r.Resolve(c)
	if len(res.Options) != 3 {
		t.Fatalf("tennis playbook has three options, got %+v", res.Options)
	}
	if !strings.Contains(res.Options[0].Recommendation, "separate days") {
		t.Errorf("first tennis option should prefer separate days: %+v", res.Options[0])
	}
	if !strings.Contains(res.Options[1].Recommendation, "3 hours") {
		t.Errorf("second tennis option should require a 3 hour gap: %+v", res.Options[1])
	}
	if !strings.Contains(res.Options[2].Recommendation, "mornings") {
		t.Errorf("third tennis option should order men's mornings: %+v", res.Options[2])
	}
}

func TestResolveSoftGenericPlaybook(t *testing.T) {
	r := newTestResolver()
	c := model.Conflict{
		Type:   model.SoftConflict,
		School: "kansas",
		Venue:  "Allen Fieldhouse",
		First:  model.ConflictEvent{Sport: model.SportWomensBasketball},
		Second: model.ConflictEvent{Sport: model.SportVolleyball},
	}
	res := r.Resolve(c)
	if len(res.Options) != 2 {
		t.Fatalf("generic soft playbook has two options, got %+v", res.Options)
	}
	if !strings.Contains(res.Options[0].Recommendation, "buffer time") {
		t.Errorf("first generic option adds buffer: %+v", res.Options[0])
	}
}

func TestResolveDoubleheaderOptions(t *testing.T) {
	r := newTestResolver()
	c := model.Conflict{
		Type:   model.DoubleheaderOpportunity,
		School: "iowa_state",
		Venue:  "Hilton Coliseum",
		First:  model.ConflictEvent{Sport: model.SportWomensBasketball},
		Second: model.ConflictEvent{Sport: model.SportMensBasketball},
	}
	res := r.Resolve(c)
	if len(res.Options) != 3 {
		t.Fatalf("basketball doubleheader has three options, got %+v", res.Options)
	}
	if !strings.Contains(res.Options[1].Recommendation, "women's game first") {
		t.Errorf("ordering option missing: %+v", res.Options[1])
	}

	// Opportunities outside the policy table are flagged but inert.
	c.First.Sport = model.SportVolleyball
	c.Second.Sport = model.SportGymnastics
	if res := r.Resolve(c); len(res.Options) != 0 {
		t.Errorf("non-basketball opportunity should yield no options: %+v", res.Options)
	}
}
