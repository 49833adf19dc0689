package resolvers

import (
	"context"
	"fmt"
	"strings"

	"github.com/openathletics/flextime/core/providers"
	"github.com/openathletics/flextime/core/registry"
	"github.com/openathletics/flextime/core/router"
)

// flightThresholdKm is the distance beyond which a charter flight beats a
// bus trip.
const flightThresholdKm = 650

// TravelResolver estimates travel burden between the schools named in the
// request.
type TravelResolver struct {
	reg *registry.Registry
	geo providers.GeoProvider
}

func NewTravelResolver(reg *registry.Registry, geo providers.GeoProvider) *TravelResolver {
	return &TravelResolver{reg: reg, geo: geo}
}

func (r *TravelResolver) Name() string { return router.ResolverTravel }

func (r *TravelResolver) Invoke(_ context.Context, input, _ string) (string, error) {
	schools := matchRegistrySchools(r.reg, strings.ToLower(input))
	if len(schools) < 2 {
		return "Travel analysis needs at least two schools; name the programs involved to get distance and mode recommendations.", nil
	}

	var b strings.Builder
	b.WriteString("Travel analysis:\n")
	for i := 0; i < len(schools); i++ {
		for j := i + 1; j < len(schools); j++ {
			dist, err := r.geo.DistanceKm(schools[i], schools[j])
			if err != nil {
				fmt.Fprintf(&b, "- %s to %s: distance unknown\n", schools[i], schools[j])
				continue
			}
			mode := "bus"
			if dist > flightThresholdKm {
				mode = "charter flight"
			}
			fmt.Fprintf(&b, "- %s to %s: %.0f km, recommend %s\n", schools[i], schools[j], dist, mode)
		}
	}
	b.WriteString("Pair distant road trips into a single swing to cut missed class time.\n")
	return b.String(), nil
}
