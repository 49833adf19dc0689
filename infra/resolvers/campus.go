package resolvers

import (
	"context"
	"fmt"
	"strings"

	"github.com/openathletics/flextime/core/conflict"
	"github.com/openathletics/flextime/core/model"
	"github.com/openathletics/flextime/core/router"
	"github.com/openathletics/flextime/infra/logger"
)

// CampusResolver runs a full venue conflict detection pass over the current
// schedules and renders the findings with their resolution options.
type CampusResolver struct {
	src ScheduleSource
	det *conflict.Detector
	res *conflict.Resolver
	log logger.Logger
}

func NewCampusResolver(src ScheduleSource, det *conflict.Detector, res *conflict.Resolver, log logger.Logger) *CampusResolver {
	return &CampusResolver{src: src, det: det, res: res, log: log}
}

func (r *CampusResolver) Name() string { return router.ResolverCampus }

func (r *CampusResolver) Invoke(ctx context.Context, input, _ string) (string, error) {
	schedules, err := r.src.Schedules(ctx)
	if err != nil {
		return "", err
	}
	conflicts := r.det.Detect(schedules)
	conflicts = filterBySchool(conflicts, input)
	if len(conflicts) == 0 {
		return "No venue conflicts detected in the current schedules.", nil
	}

	counts := map[model.ConflictType]int{}
	for _, c := range conflicts {
		counts[c.Type]++
	}
	r.log.Infof("campus resolver found %d conflicts", len(conflicts))

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d venue conflicts (%d hard, %d soft, %d doubleheader opportunities):\n",
		len(conflicts), counts[model.HardConflict], counts[model.SoftConflict],
		counts[model.DoubleheaderOpportunity])
	for _, c := range conflicts {
		fmt.Fprintf(&b, "\n- [%s/%s] %s at %s on %s: %s (%s vs %s)\n",
			c.Type, c.Severity, c.School, c.Venue, c.Date, c.Reason,
			c.First.Sport, c.Second.Sport)
		res := r.res.Resolve(c)
		for _, opt := range res.Options {
			fmt.Fprintf(&b, "    %d. %s\n", opt.Priority, opt.Recommendation)
		}
	}
	return b.String(), nil
}

// filterBySchool narrows conflicts to schools named in the request. A request
// naming no known school keeps everything.
func filterBySchool(conflicts []model.Conflict, input string) []model.Conflict {
	lower := strings.ToLower(input)
	mentioned := map[string]bool{}
	for _, c := range conflicts {
		code := strings.ToLower(c.School)
		if strings.Contains(lower, code) ||
			strings.Contains(lower, strings.ReplaceAll(code, "_", " ")) {
			mentioned[c.School] = true
		}
	}
	if len(mentioned) == 0 {
		return conflicts
	}
	var out []model.Conflict
	for _, c := range conflicts {
		if mentioned[c.School] {
			out = append(out, c)
		}
	}
	return out
}
