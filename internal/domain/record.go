package domain

import "strings"

// Canonical field names, used as keys into the synonym table and as export
// column headers.
const (
	FieldMember      = "member_name"
	FieldTimestamp   = "timestamp"
	FieldCity        = "city"
	FieldCountry     = "country"
	FieldTemperature = "temperature_celsius"
	FieldHumidity    = "humidity_percent"
	FieldWindSpeed   = "wind_speed"
	FieldWeatherMain = "weather_main"
	FieldWeatherDesc = "weather_description"
)

// CanonicalColumns is the fixed column order of normalized CSV exports.
var CanonicalColumns = []string{
	FieldMember,
	FieldTimestamp,
	FieldCity,
	FieldCountry,
	FieldTemperature,
	FieldHumidity,
	FieldWindSpeed,
	FieldWeatherMain,
	FieldWeatherDesc,
}

// fieldSynonyms maps each canonical field to its accepted raw header names
// in priority order. Matching is case-insensitive and exact; the first
// synonym present in a row wins and later synonyms are ignored. This table
// is the single source of truth for header reconciliation: adding a
// contributor format means adding a row here.
var fieldSynonyms = map[string][]string{
	FieldMember:      {"member_name", "member", "name", "contributor"},
	FieldTimestamp:   {"timestamp", "time", "date", "datetime", "observed_at"},
	FieldCity:        {"city", "location", "place", "town"},
	FieldCountry:     {"country", "country_code"},
	FieldTemperature: {"temperature", "temperature_celsius", "temp", "temperature (f)", "temperature (c)", "temp_c", "temp_f", "temperature_c", "temperature_f", "temperature_fahrenheit"},
	FieldHumidity:    {"humidity", "humidity_percent", "humid", "humidity (%)", "humidity_pct"},
	FieldWindSpeed:   {"wind_speed", "wind speed", "windspeed", "wind"},
	FieldWeatherMain: {"weather_main", "condition", "conditions", "weather"},
	FieldWeatherDesc: {"weather_description", "description", "weather_desc", "details"},
}

// RawRow is one parsed CSV line: the file's headers in original order plus
// the string value under each header. Header names are uncontrolled.
type RawRow struct {
	Headers []string
	Values  map[string]string
}

// Get returns the value under the first header equal to name, ignoring case.
func (r RawRow) Get(name string) (string, bool) {
	for _, h := range r.Headers {
		if strings.EqualFold(h, name) {
			return r.Values[h], true
		}
	}
	return "", false
}

// matchField resolves a canonical field against the row's headers using the
// synonym table. It returns the raw header that matched (needed for unit
// markers) and the trimmed value.
func matchField(row RawRow, field string) (header, value string, ok bool) {
	for _, syn := range fieldSynonyms[field] {
		for _, h := range row.Headers {
			if strings.EqualFold(h, syn) {
				return h, strings.TrimSpace(row.Values[h]), true
			}
		}
	}
	return "", "", false
}

// Record is the canonical, unit-consistent form of one weather observation,
// independent of its source file's column layout. Records are immutable
// once produced: each raw row yields exactly one Record.
//
// String fields use "" for absent (except MemberName, which is always
// populated, and Country, which defaults to "Unknown"). Numeric fields use
// nil for absent — never a sentinel zero.
type Record struct {
	MemberName   string   `json:"member_name"`
	Timestamp    string   `json:"timestamp,omitempty"`
	City         string   `json:"city,omitempty"`
	Country      string   `json:"country"`
	TemperatureC *float64 `json:"temperature_celsius,omitempty"`
	HumidityPct  *float64 `json:"humidity_percent,omitempty"`
	WindSpeed    *float64 `json:"wind_speed,omitempty"`
	WeatherMain  string   `json:"weather_main,omitempty"`
	WeatherDesc  string   `json:"weather_description,omitempty"`

	// SourceFile is provenance for diagnostics only; it carries no
	// aggregation semantics and is excluded from exports.
	SourceFile string `json:"-"`
}

// HasObservation reports whether the record carries any usable observation
// (a city or at least one numeric reading). The normalizer emits records
// either way; callers use this to decide whether to drop them.
func (r Record) HasObservation() bool {
	return r.City != "" || r.TemperatureC != nil || r.HumidityPct != nil
}
