// Package aggregate computes team-level and per-city summaries over a run's
// canonical records. Statistics are computed only over present values; a
// field with no present values reports no data rather than a numeric zero.
package aggregate

import (
	"sort"
	"strings"

	"github.com/couchcryptid/team-weather/internal/domain"
)

// FieldStats holds present-value-only statistics for one numeric field.
// Min, Max and Mean are nil when Count is zero so that JSON consumers see
// absent values instead of misleading zeros.
type FieldStats struct {
	Count int      `json:"count"`
	Min   *float64 `json:"min,omitempty"`
	Max   *float64 `json:"max,omitempty"`
	Mean  *float64 `json:"average,omitempty"`
}

// HasData reports whether at least one present value contributed.
func (s FieldStats) HasData() bool { return s.Count > 0 }

// TemperatureStats extends FieldStats with the city attribution used by the
// report (first record reaching the extreme wins; records without a city
// leave the attribution empty).
type TemperatureStats struct {
	FieldStats
	HottestCity string `json:"hottest_city,omitempty"`
	ColdestCity string `json:"coldest_city,omitempty"`
}

// Summary is the team-wide aggregation result.
type Summary struct {
	TotalMembers int      `json:"total_members"`
	Members      []string `json:"members"`
	TotalCities  int      `json:"total_cities"`
	Cities       []string `json:"cities"`
	TotalRecords int      `json:"total_records"`

	Temperature TemperatureStats `json:"temperature_stats"`
	Humidity    FieldStats       `json:"humidity_stats"`
	WindSpeed   FieldStats       `json:"wind_stats"`

	Conditions []string `json:"weather_conditions"`
	Countries  []string `json:"countries"`
}

// CitySummary is the Compare Cities view: the same present-value-only
// statistics restricted to one city's records.
type CitySummary struct {
	Records     int        `json:"records"`
	Members     []string   `json:"members"`
	Temperature FieldStats `json:"temperature_stats"`
	Humidity    FieldStats `json:"humidity_stats"`
	WindSpeed   FieldStats `json:"wind_stats"`
	Conditions  []string   `json:"weather_conditions"`
}

// accumulator tracks running min/max/sum for one field.
type accumulator struct {
	count    int
	min, max float64
	sum      float64
}

func (a *accumulator) add(v float64) {
	if a.count == 0 || v < a.min {
		a.min = v
	}
	if a.count == 0 || v > a.max {
		a.max = v
	}
	a.sum += v
	a.count++
}

func (a *accumulator) stats() FieldStats {
	if a.count == 0 {
		return FieldStats{}
	}
	mean := a.sum / float64(a.count)
	minV, maxV := a.min, a.max
	return FieldStats{Count: a.count, Min: &minV, Max: &maxV, Mean: &mean}
}

// Summarize computes the team summary over the full ordered record
// sequence. Empty input degrades to zero counts and no-data statistics; it
// never fails.
func Summarize(records []domain.Record) Summary {
	members := map[string]bool{}
	cities := map[string]bool{}
	conditions := map[string]bool{}
	countries := map[string]bool{}

	var temp, humidity, wind accumulator
	var hottestCity, coldestCity string

	for _, rec := range records {
		members[rec.MemberName] = true
		if rec.City != "" {
			cities[rec.City] = true
		}
		if rec.WeatherMain != "" {
			conditions[normalizeCondition(rec.WeatherMain)] = true
		}
		if rec.Country != "" {
			countries[rec.Country] = true
		}

		if rec.TemperatureC != nil {
			v := *rec.TemperatureC
			if temp.count == 0 || v > temp.max {
				hottestCity = rec.City
			}
			if temp.count == 0 || v < temp.min {
				coldestCity = rec.City
			}
			temp.add(v)
		}
		if rec.HumidityPct != nil {
			humidity.add(*rec.HumidityPct)
		}
		if rec.WindSpeed != nil {
			wind.add(*rec.WindSpeed)
		}
	}

	memberList := sortedKeys(members)
	cityList := sortedKeys(cities)

	return Summary{
		TotalMembers: len(memberList),
		Members:      memberList,
		TotalCities:  len(cityList),
		Cities:       cityList,
		TotalRecords: len(records),
		Temperature: TemperatureStats{
			FieldStats:  temp.stats(),
			HottestCity: hottestCity,
			ColdestCity: coldestCity,
		},
		Humidity:   humidity.stats(),
		WindSpeed:  wind.stats(),
		Conditions: sortedKeys(conditions),
		Countries:  sortedKeys(countries),
	}
}

// ByCity computes one CitySummary per distinct city, excluding records with
// no city. The present-value rule is identical to the global summary.
func ByCity(records []domain.Record) map[string]CitySummary {
	type cityAcc struct {
		records    int
		members    map[string]bool
		conditions map[string]bool
		temp       accumulator
		humidity   accumulator
		wind       accumulator
	}

	accs := map[string]*cityAcc{}
	for _, rec := range records {
		if rec.City == "" {
			continue
		}
		a := accs[rec.City]
		if a == nil {
			a = &cityAcc{members: map[string]bool{}, conditions: map[string]bool{}}
			accs[rec.City] = a
		}
		a.records++
		a.members[rec.MemberName] = true
		if rec.WeatherMain != "" {
			a.conditions[normalizeCondition(rec.WeatherMain)] = true
		}
		if rec.TemperatureC != nil {
			a.temp.add(*rec.TemperatureC)
		}
		if rec.HumidityPct != nil {
			a.humidity.add(*rec.HumidityPct)
		}
		if rec.WindSpeed != nil {
			a.wind.add(*rec.WindSpeed)
		}
	}

	out := make(map[string]CitySummary, len(accs))
	for city, a := range accs {
		out[city] = CitySummary{
			Records:     a.records,
			Members:     sortedKeys(a.members),
			Temperature: a.temp.stats(),
			Humidity:    a.humidity.stats(),
			WindSpeed:   a.wind.stats(),
			Conditions:  sortedKeys(a.conditions),
		}
	}
	return out
}

// normalizeCondition case-normalizes a condition label so "rain", "Rain"
// and "RAIN" collapse to one set entry.
func normalizeCondition(s string) string {
	return domain.TitleWord(strings.TrimSpace(s))
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
