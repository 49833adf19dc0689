// Package router scores incoming requests against resolver capabilities,
// classifies them as simple or composite, and executes the matching resolver
// invocations in priority order. Composite requests are decomposed into
// sub-tasks whose outputs are threaded into later steps as context.
package router

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/openathletics/flextime/core/logger"
	"github.com/openathletics/flextime/core/metrics"
	"github.com/openathletics/flextime/core/model"
	"github.com/openathletics/flextime/internal/eventbus"
)

// DefaultStepTimeout bounds a single resolver invocation.
const DefaultStepTimeout = 30 * time.Second

// compositeIndicators mark a request as multi-step.
var compositeIndicators = []string{
	"and then", "followed by", "multiple", "complex", "comprehensive",
	"complete", "end-to-end", "analyze and create", "optimize and generate",
}

// ErrEmptyRequest is returned when the request is blank after trimming.
var ErrEmptyRequest = errors.New("router: empty request")

// Resolver executes one routed task. Implementations may run in process,
// shell out or call a remote endpoint; the router does not care. prior holds
// the system prompt plus accumulated results from earlier steps.
type Resolver interface {
	Name() string
	Invoke(ctx context.Context, input, prior string) (string, error)
}

// StepEvent is published on the event bus after each executed step.
type StepEvent struct {
	Step     int
	Resolver string
	Err      string
}

// Router routes requests to resolvers.
type Router struct {
	scorer      *Scorer
	resolvers   map[string]Resolver
	stepTimeout time.Duration
	log         logger.Logger
	sink        metrics.Sink
	bus         eventbus.EventBus
}

// Option configures optional router collaborators.
type Option func(*Router)

// WithStepTimeout overrides the per-invocation timeout.
func WithStepTimeout(d time.Duration) Option {
	return func(r *Router) {
		if d > 0 {
			r.stepTimeout = d
		}
	}
}

// WithSink attaches a metrics sink recording executed steps.
func WithSink(s metrics.Sink) Option {
	return func(r *Router) {
		if s != nil {
			r.sink = s
		}
	}
}

// WithBus attaches an event bus receiving StepEvents.
func WithBus(b eventbus.EventBus) Option {
	return func(r *Router) { r.bus = b }
}

// New creates a router over the given capability table.
func New(caps []Capability, log logger.Logger, opts ...Option) *Router {
	r := &Router{
		scorer:      NewScorer(caps),
		resolvers:   make(map[string]Resolver),
		stepTimeout: DefaultStepTimeout,
		log:         log,
		sink:        metrics.NopSink{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register makes a resolver available for routing. A resolver registered
// twice replaces the earlier instance.
func (r *Router) Register(res Resolver) {
	r.resolvers[res.Name()] = res
}

// IsComposite reports whether the request contains a multi-step indicator.
func (r *Router) IsComposite(request string) bool {
	return containsAny(strings.ToLower(request), compositeIndicators)
}

// Decompose breaks a composite request into prioritized tasks. It never
// returns an empty plan: when no rule matches, a single baseline task is
// routed to the historical patterns resolver. The sort is stable so tasks at
// the same priority keep their discovery order.
func (r *Router) Decompose(request string) []model.Task {
	lower := strings.ToLower(request)
	var tasks []model.Task
	for _, rule := range decomposeRules {
		if !containsAny(lower, rule.match) {
			continue
		}
		if len(rule.also) > 0 && !containsAny(lower, rule.also) {
			continue
		}
		tasks = append(tasks, model.Task{
			Description: rule.description,
			Resolver:    rule.resolver,
			Priority:    rule.priority,
			Input:       rule.inputPrefix + request,
		})
	}
	if len(tasks) == 0 {
		tasks = append(tasks, model.Task{
			Description: "General scheduling analysis",
			Resolver:    ResolverHistorical,
			Priority:    1,
			Input:       request,
		})
	}
	sort.SliceStable(tasks, func(i, j int) bool { return tasks[i].Priority < tasks[j].Priority })
	return tasks
}

// Route processes a request. Composite requests are decomposed and executed
// sequentially with prior step results threaded as context; simple requests
// go to the single best-scoring resolver and its output is returned verbatim.
// Resolver failures become step text, never an error return: partial
// completion beats total failure because a human reviews the combined output.
func (r *Router) Route(ctx context.Context, request, systemPrompt string) (string, error) {
	if strings.TrimSpace(request) == "" {
		return "", ErrEmptyRequest
	}

	confidence := make(map[string]float64)
	for _, sc := range r.scorer.Score(request) {
		confidence[sc.Capability] = sc.Confidence
	}

	if !r.IsComposite(request) {
		best := r.scorer.Best(request)
		r.log.Debugw("routing simple request", map[string]any{
			"resolver":   best.Capability,
			"confidence": best.Confidence,
		})
		start := time.Now()
		out, errText := r.invoke(ctx, best.Capability, request, systemPrompt)
		r.record([]metrics.RouteRecord{{
			Resolver:   best.Capability,
			Step:       1,
			Confidence: best.Confidence,
			Latency:    time.Since(start),
			Err:        errText,
			Time:       time.Now(),
		}})
		r.publish(1, best.Capability, errText)
		return out, nil
	}

	tasks := r.Decompose(request)
	r.log.Infof("decomposed composite request into %d tasks", len(tasks))

	results := make([]string, 0, len(tasks))
	records := make([]metrics.RouteRecord, 0, len(tasks))
	for i, task := range tasks {
		prior := systemPrompt
		if len(results) > 0 {
			prior += "\n\nPrevious steps results:\n" + strings.Join(results, "\n")
		}
		start := time.Now()
		out, errText := r.invoke(ctx, task.Resolver, task.Input, prior)
		records = append(records, metrics.RouteRecord{
			Resolver:   task.Resolver,
			Step:       i + 1,
			Composite:  true,
			Confidence: confidence[task.Resolver],
			Latency:    time.Since(start),
			Err:        errText,
			Time:       time.Now(),
		})
		r.publish(i+1, task.Resolver, errText)
		results = append(results, fmt.Sprintf("Step %d (%s): %s", i+1, task.Resolver, out))
	}
	r.record(records)

	return "I've broken down your request into specialized steps:\n\n" +
		strings.Join(results, "\n\n"), nil
}

// invoke runs one resolver under the step timeout. Missing resolvers and
// invocation errors are folded into the returned text so callers can keep
// going; errText carries the failure for metrics.
func (r *Router) invoke(ctx context.Context, name, input, prior string) (out, errText string) {
	res, ok := r.resolvers[name]
	if !ok {
		r.log.Warnf("resolver %q not registered", name)
		return fmt.Sprintf("Resolver %q is not available.\n%s", name, r.capabilityOverview()), "not registered"
	}
	stepCtx, cancel := context.WithTimeout(ctx, r.stepTimeout)
	defer cancel()
	result, err := res.Invoke(stepCtx, input, prior)
	if err != nil {
		r.log.Errorf("resolver %s failed: %v", name, err)
		return fmt.Sprintf("Error executing resolver %s: %v", name, err), err.Error()
	}
	return result, ""
}

func (r *Router) capabilityOverview() string {
	var b strings.Builder
	b.WriteString("Known capabilities:\n")
	for _, c := range r.scorer.Capabilities() {
		fmt.Fprintf(&b, "  - %s: %s\n", c.Name, c.Description)
	}
	return b.String()
}

func (r *Router) record(recs []metrics.RouteRecord) {
	if err := r.sink.RecordRouteSteps(recs); err != nil {
		r.log.Warnf("recording route steps: %v", err)
	}
}

func (r *Router) publish(step int, resolver, errText string) {
	if r.bus == nil {
		return
	}
	r.bus.Publish(StepEvent{Step: step, Resolver: resolver, Err: errText})
}
