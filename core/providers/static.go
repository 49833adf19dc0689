package providers

// StaticGeo is a GeoProvider backed by a fixed distance table. Lookups are
// symmetric: only one direction needs to be present.
type StaticGeo struct {
	distances map[[2]string]float64
}

// NewStaticGeo builds a provider from pair distances keyed by school codes.
func NewStaticGeo(pairs map[[2]string]float64) *StaticGeo {
	return &StaticGeo{distances: pairs}
}

func (g *StaticGeo) DistanceKm(from, to string) (float64, error) {
	if from == to {
		return 0, nil
	}
	if d, ok := g.distances[[2]string{from, to}]; ok {
		return d, nil
	}
	if d, ok := g.distances[[2]string{to, from}]; ok {
		return d, nil
	}
	return 0, ErrUnknownSchool{School: from + "/" + to}
}

// StaticWeather is a WeatherProvider backed by fixed outlooks keyed by
// school. The date is echoed into the result.
type StaticWeather struct {
	outlooks map[string]Outlook
}

// NewStaticWeather builds a provider from per-school outlooks.
func NewStaticWeather(outlooks map[string]Outlook) *StaticWeather {
	return &StaticWeather{outlooks: outlooks}
}

func (w *StaticWeather) Forecast(school, date string) (Outlook, error) {
	o, ok := w.outlooks[school]
	if !ok {
		return Outlook{}, ErrUnknownSchool{School: school}
	}
	o.School = school
	o.Date = date
	return o, nil
}
