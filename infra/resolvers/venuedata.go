package resolvers

import (
	"context"
	"fmt"
	"strings"

	"github.com/openathletics/flextime/core/model"
	"github.com/openathletics/flextime/core/registry"
	"github.com/openathletics/flextime/core/router"
)

// VenueDataResolver answers facility lookups from the venue registry. A
// request naming specific schools narrows the answer to those schools.
type VenueDataResolver struct {
	reg *registry.Registry
}

func NewVenueDataResolver(reg *registry.Registry) *VenueDataResolver {
	return &VenueDataResolver{reg: reg}
}

func (r *VenueDataResolver) Name() string { return router.ResolverVenueData }

func (r *VenueDataResolver) Invoke(_ context.Context, input, _ string) (string, error) {
	codes := matchRegistrySchools(r.reg, strings.ToLower(input))
	if len(codes) == 0 {
		codes = r.reg.Schools()
	}

	var b strings.Builder
	b.WriteString("Venue data:\n")
	for _, code := range codes {
		school, ok := r.reg.School(code)
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "\n%s (%s):\n", school.Name, code)
		for _, v := range school.Venues {
			fmt.Fprintf(&b, "  - %s hosts %s\n", v.Name, joinSports(v.Sports))
			if len(v.PriorityOrder) > 0 {
				fmt.Fprintf(&b, "    priority order: %s\n", joinSports(v.PriorityOrder))
			}
			if v.Location != nil && v.Location.City != "" {
				fmt.Fprintf(&b, "    location: %s, %s\n", v.Location.City, v.Location.State)
			}
			if v.Notes != "" {
				fmt.Fprintf(&b, "    notes: %s\n", v.Notes)
			}
		}
	}
	return b.String(), nil
}

func joinSports(sports []model.Sport) string {
	parts := make([]string, len(sports))
	for i, s := range sports {
		parts[i] = string(s)
	}
	return strings.Join(parts, ", ")
}
