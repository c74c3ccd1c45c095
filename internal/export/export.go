// Package export writes the run's artifacts: the normalized record CSV, the
// Compare Cities analysis JSON, the saved report text, and the member
// observation files produced by the collect flow. Every artifact gets a
// fresh timestamp-suffixed name, so concurrent runs can never clobber each
// other's output. Export failures are returned to the caller and never
// affect the in-memory summary.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/couchcryptid/team-weather/internal/aggregate"
	"github.com/couchcryptid/team-weather/internal/domain"
)

// fileTimeLayout matches the collector's historical file naming scheme.
const fileTimeLayout = "20060102_150405"

func timestampSuffix() string {
	return domain.Now().Format(fileTimeLayout)
}

// WriteRecordsCSV writes one row per canonical record in the fixed
// canonical column order and returns the created path. Absent numerics
// become empty cells, so re-ingesting the export reproduces the same
// summary as the original source files.
func WriteRecordsCSV(dir string, records []domain.Record) (string, error) {
	path := filepath.Join(dir, "team_weather_"+timestampSuffix()+".csv")

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create export csv: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(domain.CanonicalColumns); err != nil {
		return "", fmt.Errorf("write header: %w", err)
	}
	for i := range records {
		if err := w.Write(recordRow(&records[i])); err != nil {
			return "", fmt.Errorf("write record: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("flush export csv: %w", err)
	}
	return path, nil
}

func recordRow(rec *domain.Record) []string {
	return []string{
		rec.MemberName,
		rec.Timestamp,
		rec.City,
		rec.Country,
		formatOptional(rec.TemperatureC),
		formatOptional(rec.HumidityPct),
		formatOptional(rec.WindSpeed),
		rec.WeatherMain,
		rec.WeatherDesc,
	}
}

func formatOptional(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

// Analysis is the JSON document consumed by downstream Compare Cities
// tooling.
type Analysis struct {
	TeamSummary    aggregate.Summary                `json:"team_summary"`
	CitiesAnalysis map[string]aggregate.CitySummary `json:"cities_analysis"`
}

// WriteAnalysisJSON writes the team summary plus per-city sub-summaries and
// returns the created path.
func WriteAnalysisJSON(dir string, summary aggregate.Summary, cities map[string]aggregate.CitySummary) (string, error) {
	path := filepath.Join(dir, "team_analysis_"+timestampSuffix()+".json")

	data, err := json.MarshalIndent(Analysis{TeamSummary: summary, CitiesAnalysis: cities}, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal analysis: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write analysis json: %w", err)
	}
	return path, nil
}

// WriteReportText saves the rendered comparison report alongside the other
// artifacts and returns the created path.
func WriteReportText(dir, report string) (string, error) {
	path := filepath.Join(dir, "team_comparison_"+timestampSuffix()+".txt")
	if err := os.WriteFile(path, []byte(report), 0o644); err != nil {
		return "", fmt.Errorf("write report text: %w", err)
	}
	return path, nil
}

// observationColumns is the full column set the collect flow has always
// written. Readers rely only on the canonical subset; the extra columns are
// carried for human inspection and ignored by the normalizer.
var observationColumns = []string{
	"timestamp",
	"member_name",
	"city",
	"country",
	"temperature",
	"feels_like",
	"humidity",
	"pressure",
	"weather_main",
	"weather_description",
	"wind_speed",
	"wind_direction",
	"cloudiness",
	"visibility",
}

// WriteMemberObservation writes one live observation as a new member CSV
// named weather_<member-slug>_<timestamp>.csv and returns the created path.
// The timestamped name guarantees a fresh file per collection run.
func WriteMemberObservation(dir, member string, obs domain.Observation) (string, error) {
	ts := obs.ObservedAt
	if ts.IsZero() {
		ts = domain.Now()
	}

	slug := domain.MemberFileSlug(member)
	if slug == "" {
		slug = domain.MemberFileSlug(domain.UnknownLabel)
	}
	path := filepath.Join(dir, "weather_"+slug+"_"+timestampSuffix()+".csv")

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create member csv: %w", err)
	}
	defer f.Close()

	num := func(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
	row := []string{
		ts.UTC().Format(time.RFC3339),
		member,
		obs.City,
		obs.Country,
		num(obs.TemperatureC),
		num(obs.FeelsLikeC),
		num(obs.HumidityPct),
		num(obs.PressureHpa),
		obs.WeatherMain,
		obs.WeatherDesc,
		num(obs.WindSpeedMS),
		num(obs.WindDirDeg),
		num(obs.CloudsPct),
		num(obs.VisibilityKm),
	}

	w := csv.NewWriter(f)
	if err := w.Write(observationColumns); err != nil {
		return "", fmt.Errorf("write header: %w", err)
	}
	if err := w.Write(row); err != nil {
		return "", fmt.Errorf("write observation: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("flush member csv: %w", err)
	}
	return path, nil
}
