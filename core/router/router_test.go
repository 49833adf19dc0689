package router

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/openathletics/flextime/core/metrics"
	"github.com/openathletics/flextime/infra/logger"
)

type stubCall struct {
	Input string
	Prior string
}

type stubResolver struct {
	name  string
	out   string
	err   error
	calls []stubCall
}

func (s *stubResolver) Name() string { return s.name }

func (s *stubResolver) Invoke(_ context.Context, input, prior string) (string, error) {
	s.calls = append(s.calls, stubCall{Input: input, Prior: prior})
	if s.err != nil {
		return "", s.err
	}
	return s.out, nil
}

type captureSink struct {
	mu   sync.Mutex
	recs []metrics.RouteRecord
}

func (c *captureSink) RecordConflicts([]metrics.ConflictRecord) error { return nil }

func (c *captureSink) RecordRouteSteps(recs []metrics.RouteRecord) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.recs = append(c.recs, recs...)
	return nil
}

func newTestRouter(opts ...Option) *Router {
	return New(DefaultCapabilities(), logger.NopLogger{}, opts...)
}

func TestScorerConfidenceLevels(t *testing.T) {
	s := NewScorer(DefaultCapabilities())

	find := func(req, cap string) float64 {
		for _, sc := range s.Score(req) {
			if sc.Capability == cap {
				return sc.Confidence
			}
		}
		t.Fatalf("capability %s not scored", cap)
		return 0
	}

	require.InDelta(t, 0.1, find("hello world", ResolverCampus), 1e-9)
	require.InDelta(t, 0.8, find("check venue availability", ResolverCampus), 1e-9)
	require.InDelta(t, 0.9, find("venue conflicts at iowa_state", ResolverCampus), 1e-9)
	require.InDelta(t, 0.9, find("what is the arena capacity", ResolverVenueData), 1e-9)
	require.InDelta(t, 0.9, find("staffing and weather for saturday", ResolverGameManager), 1e-9)
}

func TestScorerTiePrefersRegistrationOrder(t *testing.T) {
	s := NewScorer([]Capability{
		{Name: "first", Keywords: []string{"shared"}},
		{Name: "second", Keywords: []string{"shared"}},
	})
	best := s.Best("a shared request")
	require.Equal(t, "first", best.Capability)
	require.InDelta(t, 0.8, best.Confidence, 1e-9)
}

func TestDecomposeFallbackNeverEmpty(t *testing.T) {
	r := newTestRouter()
	tasks := r.Decompose("tell me something nice")
	require.Len(t, tasks, 1)
	require.Equal(t, ResolverHistorical, tasks[0].Resolver)
	require.Equal(t, "tell me something nice", tasks[0].Input)
}

func TestDecomposePrioritySortIsStable(t *testing.T) {
	r := newTestRouter()
	req := "comprehensive venue conflict and weather operations review at iowa state for football"
	tasks := r.Decompose(req)
	require.GreaterOrEqual(t, len(tasks), 5)

	for i := 1; i < len(tasks); i++ {
		require.LessOrEqual(t, tasks[i-1].Priority, tasks[i].Priority,
			"tasks must be sorted by non-decreasing priority")
	}

	// The school-specific venue check outranks everything else.
	require.Equal(t, ResolverCampus, tasks[0].Resolver)
	require.Equal(t, 1, tasks[0].Priority)
	require.Contains(t, tasks[0].Input, "shared facilities")

	// Priority-2 ties keep rule discovery order.
	var tier2 []string
	for _, task := range tasks {
		if task.Priority == 2 {
			tier2 = append(tier2, task.Resolver)
		}
	}
	require.Equal(t, []string{ResolverCampus, ResolverVenueData, ResolverGameManager}, tier2)
}

func TestRouteSimpleReturnsOutputVerbatim(t *testing.T) {
	r := newTestRouter()
	campus := &stubResolver{name: ResolverCampus, out: "no conflicts found"}
	r.Register(campus)

	out, err := r.Route(context.Background(), "check venue conflicts for Saturday", "be brief")
	require.NoError(t, err)
	require.Equal(t, "no conflicts found", out)
	require.Len(t, campus.calls, 1)
	require.Equal(t, "check venue conflicts for Saturday", campus.calls[0].Input)
	require.Equal(t, "be brief", campus.calls[0].Prior)
}

func TestRouteCompositeThreadsPriorResults(t *testing.T) {
	r := newTestRouter()
	campus := &stubResolver{name: ResolverCampus, out: "two conflicts at Hilton"}
	venue := &stubResolver{name: ResolverVenueData, out: "capacity 14384"}
	r.Register(campus)
	r.Register(venue)

	out, err := r.Route(context.Background(), "comprehensive venue conflict review", "system ctx")
	require.NoError(t, err)

	require.Len(t, campus.calls, 1)
	require.Equal(t, "system ctx", campus.calls[0].Prior)

	require.Len(t, venue.calls, 1)
	require.Contains(t, venue.calls[0].Prior, "Previous steps results:")
	require.Contains(t, venue.calls[0].Prior, "two conflicts at Hilton")

	require.Contains(t, out, fmt.Sprintf("Step 1 (%s): two conflicts at Hilton", ResolverCampus))
	require.Contains(t, out, fmt.Sprintf("Step 2 (%s): capacity 14384", ResolverVenueData))
}

func TestRouteCompositeContinuesAfterStepError(t *testing.T) {
	r := newTestRouter()
	campus := &stubResolver{name: ResolverCampus, err: errors.New("schedule feed unavailable")}
	venue := &stubResolver{name: ResolverVenueData, out: "venue data ok"}
	r.Register(campus)
	r.Register(venue)

	out, err := r.Route(context.Background(), "comprehensive venue conflict review", "")
	require.NoError(t, err)
	require.Contains(t, out, "schedule feed unavailable")
	require.Contains(t, out, "venue data ok")
	require.Len(t, venue.calls, 1, "later steps must still run")
}

func TestRouteMissingResolverDegradesToOverview(t *testing.T) {
	r := newTestRouter()

	out, err := r.Route(context.Background(), "check venue conflicts", "")
	require.NoError(t, err)
	require.Contains(t, out, "Known capabilities:")
	for _, c := range DefaultCapabilities() {
		require.Contains(t, out, c.Name)
	}
}

func TestRouteRecordsStepMetrics(t *testing.T) {
	sink := &captureSink{}
	r := newTestRouter(WithSink(sink))
	r.Register(&stubResolver{name: ResolverCampus, out: "ok"})
	r.Register(&stubResolver{name: ResolverVenueData, out: "ok"})

	_, err := r.Route(context.Background(), "comprehensive venue conflict review", "")
	require.NoError(t, err)

	require.Len(t, sink.recs, 2)
	require.True(t, sink.recs[0].Composite)
	require.Equal(t, 1, sink.recs[0].Step)
	require.Equal(t, ResolverCampus, sink.recs[0].Resolver)
	require.InDelta(t, 0.8, sink.recs[0].Confidence, 1e-9)
}

func TestRouteComprehensiveAnalysisRequest(t *testing.T) {
	r := newTestRouter()
	stubs := map[string]*stubResolver{}
	for _, name := range []string{ResolverHistorical, ResolverCampus, ResolverTravel, ResolverVenueData, ResolverGameManager} {
		s := &stubResolver{name: name, out: name + " report"}
		stubs[name] = s
		r.Register(s)
	}

	req := "Create a comprehensive venue conflict and weather analysis for Arizona State football"
	require.True(t, r.IsComposite(req))

	tasks := r.Decompose(req)
	resolvers := make(map[string]bool)
	for _, task := range tasks {
		resolvers[task.Resolver] = true
	}
	require.True(t, resolvers[ResolverCampus], "expected a venue conflict task")
	require.True(t, resolvers[ResolverGameManager], "expected a weather/operations task")
	require.GreaterOrEqual(t, len(tasks), 2)

	out, err := r.Route(context.Background(), req, "")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "I've broken down your request into specialized steps:"))
	require.Contains(t, out, "Step 1 (")
	require.Contains(t, out, ResolverCampus+" report")
	require.Contains(t, out, ResolverGameManager+" report")
}
