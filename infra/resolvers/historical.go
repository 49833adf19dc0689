package resolvers

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"gonum.org/v1/gonum/stat"

	"github.com/openathletics/flextime/core/model"
	"github.com/openathletics/flextime/core/router"
)

// HistoricalResolver summarizes past scheduling patterns per sport. It is
// also the router's baseline fallback, so it must answer every request with
// something useful even when no sport is named.
type HistoricalResolver struct {
	// homeDates holds home dates per season for past seasons, newest last.
	homeDates map[model.Sport][]float64
}

// defaultHomeDates are conference home-date counts over the last five
// seasons.
var defaultHomeDates = map[model.Sport][]float64{
	model.SportMensBasketball:   {16, 17, 16, 18, 17},
	model.SportWomensBasketball: {15, 16, 16, 17, 16},
	model.SportFootball:         {6, 7, 6, 7, 7},
	model.SportVolleyball:       {14, 15, 13, 15, 14},
	model.SportWrestling:        {7, 8, 7, 8, 8},
	model.SportGymnastics:       {6, 6, 7, 6, 7},
	model.SportBaseball:         {27, 28, 26, 28, 27},
	model.SportSoftball:         {24, 25, 24, 26, 25},
}

func NewHistoricalResolver(homeDates map[model.Sport][]float64) *HistoricalResolver {
	if homeDates == nil {
		homeDates = defaultHomeDates
	}
	return &HistoricalResolver{homeDates: homeDates}
}

func (r *HistoricalResolver) Name() string { return router.ResolverHistorical }

func (r *HistoricalResolver) Invoke(_ context.Context, input, _ string) (string, error) {
	lower := strings.ToLower(input)

	sports := make([]model.Sport, 0, len(r.homeDates))
	for s := range r.homeDates {
		if strings.Contains(lower, string(s)) || strings.Contains(lower, s.TransitionKey()) {
			sports = append(sports, s)
		}
	}
	if len(sports) == 0 {
		for s := range r.homeDates {
			sports = append(sports, s)
		}
	}
	sort.Slice(sports, func(i, j int) bool { return sports[i] < sports[j] })

	var b strings.Builder
	b.WriteString("Historical scheduling patterns (home dates per season):\n")
	for _, s := range sports {
		samples := r.homeDates[s]
		mean := stat.Mean(samples, nil)
		stddev := stat.StdDev(samples, nil)
		fmt.Fprintf(&b, "- %s: mean %.1f, stddev %.1f over %d seasons\n",
			s, mean, stddev, len(samples))
	}
	b.WriteString("Traditional rivalry dates and season-ending matchups should be preserved where possible.\n")
	return b.String(), nil
}
