// Package providers defines the external data interfaces the resolvers
// depend on. The core never fabricates distances or forecasts itself;
// deterministic behavior in tests comes from injecting the static
// implementations below.
package providers

import "fmt"

// GeoProvider answers travel distance queries between schools.
type GeoProvider interface {
	// DistanceKm returns the road distance between two school codes.
	DistanceKm(from, to string) (float64, error)
}

// Outlook is a coarse weather risk assessment for one school and date.
type Outlook struct {
	School     string  `json:"school"`
	Date       string  `json:"date"`
	Summary    string  `json:"summary"`
	RiskLevel  string  `json:"risk_level"` // low, moderate, high
	TempHighC  float64 `json:"temp_high_c"`
	PrecipProb float64 `json:"precip_prob"`
}

// WeatherProvider answers weather outlook queries.
type WeatherProvider interface {
	Forecast(school, date string) (Outlook, error)
}

// ErrUnknownSchool is returned when a provider has no data for a school.
type ErrUnknownSchool struct {
	School string
}

func (e ErrUnknownSchool) Error() string {
	return fmt.Sprintf("no provider data for school %q", e.School)
}
