package domain

import "time"

// Observation is one live reading from the weather API collaborator,
// already in metric units. It carries the full column set the collect
// command writes; the normalizer only ever reads back the canonical subset
// and ignores the rest.
type Observation struct {
	City    string
	Country string

	TemperatureC float64
	FeelsLikeC   float64
	HumidityPct  float64
	PressureHpa  float64
	WindSpeedMS  float64
	WindDirDeg   float64
	CloudsPct    float64
	VisibilityKm float64

	WeatherMain string
	WeatherDesc string

	Sunrise time.Time
	Sunset  time.Time

	ObservedAt time.Time
}

// RecordFromObservation builds a canonical record from a live observation.
// The normalizer is agnostic to whether a record came from disk or from the
// API collaborator; this is the API-side entry point. The timestamp comes
// from the package clock when the observation carries none.
func RecordFromObservation(obs Observation, member string) Record {
	ts := obs.ObservedAt
	if ts.IsZero() {
		ts = Now()
	}

	country := obs.Country
	if country == "" {
		country = UnknownLabel
	}
	if member == "" {
		member = UnknownLabel
	}

	temp := obs.TemperatureC
	humidity := obs.HumidityPct
	wind := obs.WindSpeedMS

	main := obs.WeatherMain
	if main == "" && obs.WeatherDesc != "" {
		main = DeriveCondition(obs.WeatherDesc)
	}

	return Record{
		MemberName:   member,
		Timestamp:    ts.UTC().Format(time.RFC3339),
		City:         obs.City,
		Country:      country,
		TemperatureC: &temp,
		HumidityPct:  &humidity,
		WindSpeed:    &wind,
		WeatherMain:  main,
		WeatherDesc:  obs.WeatherDesc,
	}
}
