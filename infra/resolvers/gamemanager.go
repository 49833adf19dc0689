package resolvers

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/openathletics/flextime/core/model"
	"github.com/openathletics/flextime/core/providers"
	"github.com/openathletics/flextime/core/registry"
	"github.com/openathletics/flextime/core/router"
	"github.com/openathletics/flextime/infra/logger"
)

var datePattern = regexp.MustCompile(`\d{4}-\d{2}-\d{2}`)

// GameManagerResolver plans game operations and assesses weather risk for the
// schools and date named in the request.
type GameManagerResolver struct {
	reg     *registry.Registry
	weather providers.WeatherProvider
	log     logger.Logger
}

func NewGameManagerResolver(reg *registry.Registry, weather providers.WeatherProvider, log logger.Logger) *GameManagerResolver {
	return &GameManagerResolver{reg: reg, weather: weather, log: log}
}

func (r *GameManagerResolver) Name() string { return router.ResolverGameManager }

func (r *GameManagerResolver) Invoke(_ context.Context, input, _ string) (string, error) {
	lower := strings.ToLower(input)
	schools := matchRegistrySchools(r.reg, lower)
	date := datePattern.FindString(input)

	var b strings.Builder
	b.WriteString("Game operations assessment:\n")
	if len(schools) == 0 {
		b.WriteString("- No specific school named; apply standard staffing and setup windows.\n")
	}
	for _, code := range schools {
		outlook, err := r.weather.Forecast(code, date)
		if err != nil {
			r.log.Warnf("weather lookup for %s: %v", code, err)
			fmt.Fprintf(&b, "- %s: weather data unavailable, plan for standard conditions\n", code)
			continue
		}
		fmt.Fprintf(&b, "- %s: %s (risk %s, high %.0fC, precip %.0f%%)\n",
			code, outlook.Summary, outlook.RiskLevel, outlook.TempHighC, outlook.PrecipProb*100)
	}
	if sport, ok := mentionedOutdoorSport(lower); ok {
		fmt.Fprintf(&b, "- %s is outdoor: prepare a weather contingency window and covered warm-up space\n", sport)
	}
	b.WriteString("- Confirm staffing, setup crews and venue availability 72h before game day\n")
	return b.String(), nil
}

func mentionedOutdoorSport(lower string) (model.Sport, bool) {
	for _, s := range model.Sports {
		if s.Outdoor() && strings.Contains(lower, string(s)) {
			return s, true
		}
	}
	return "", false
}

func matchRegistrySchools(reg *registry.Registry, lower string) []string {
	var out []string
	for _, code := range reg.Schools() {
		if strings.Contains(lower, code) ||
			strings.Contains(lower, strings.ReplaceAll(code, "_", " ")) {
			out = append(out, code)
		}
	}
	return out
}
