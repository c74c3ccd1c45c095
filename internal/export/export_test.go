package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/couchcryptid/team-weather/internal/aggregate"
	"github.com/couchcryptid/team-weather/internal/domain"
	"github.com/couchcryptid/team-weather/internal/ingest"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fp(v float64) *float64 { return &v }

func freezeClock(t *testing.T) time.Time {
	t.Helper()
	fixed := time.Date(2024, 4, 27, 6, 0, 0, 0, time.UTC)
	domain.SetClock(clockwork.NewFakeClockAt(fixed))
	t.Cleanup(func() { domain.SetClock(nil) })
	return fixed
}

func TestWriteRecordsCSV_RoundTrip(t *testing.T) {
	freezeClock(t)
	dir := t.TempDir()

	records := []domain.Record{
		{
			MemberName: "Eric", Timestamp: "2024-04-26T15:00:00Z",
			City: "Austin", Country: "US",
			TemperatureC: fp(30), HumidityPct: fp(50), WindSpeed: fp(4.2),
			WeatherMain: "Clear", WeatherDesc: "clear sky",
		},
		{MemberName: "Alice", City: "Berlin", Country: "DE", TemperatureC: fp(12.4)},
		{MemberName: "Ghost", Country: "Unknown"}, // no readings at all
	}

	path, err := WriteRecordsCSV(dir, records)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "team_weather_20240427_060000.csv"), path)

	// Aggregating the export must reproduce the original summary:
	// normalization is idempotent under re-ingestion of canonical data.
	rows, err := ingest.NewDirSource(dir).ReadRows(path)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	reloaded := make([]domain.Record, 0, len(rows))
	for _, row := range rows {
		reloaded = append(reloaded, domain.Normalize(row, path))
	}

	assert.Equal(t, aggregate.Summarize(records), aggregate.Summarize(reloaded))
	assert.Equal(t, aggregate.ByCity(records), aggregate.ByCity(reloaded))

	// Absent numerics survive as absent, not zero.
	assert.Nil(t, reloaded[2].TemperatureC)
	assert.Nil(t, reloaded[2].HumidityPct)
}

func TestWriteRecordsCSV_BadDir(t *testing.T) {
	freezeClock(t)
	_, err := WriteRecordsCSV(filepath.Join(t.TempDir(), "missing"), nil)
	require.Error(t, err)
}

func TestWriteAnalysisJSON(t *testing.T) {
	freezeClock(t)
	dir := t.TempDir()

	records := []domain.Record{
		{MemberName: "Eric", City: "Austin", Country: "US", TemperatureC: fp(30)},
		{MemberName: "Alice", City: "Berlin", Country: "DE", TemperatureC: fp(12.4)},
	}
	summary := aggregate.Summarize(records)
	cities := aggregate.ByCity(records)

	path, err := WriteAnalysisJSON(dir, summary, cities)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "team_analysis_20240427_060000.json"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc Analysis
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, 2, doc.TeamSummary.TotalRecords)
	assert.Equal(t, []string{"Austin", "Berlin"}, doc.TeamSummary.Cities)
	require.Contains(t, doc.CitiesAnalysis, "Austin")
	assert.Equal(t, 1, doc.CitiesAnalysis["Austin"].Records)
}

func TestWriteAnalysisJSON_NoDataStatsOmitted(t *testing.T) {
	freezeClock(t)
	dir := t.TempDir()

	path, err := WriteAnalysisJSON(dir, aggregate.Summarize(nil), aggregate.ByCity(nil))
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &doc))

	var summary map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(doc["team_summary"], &summary))

	var tempStats map[string]any
	require.NoError(t, json.Unmarshal(summary["temperature_stats"], &tempStats))
	assert.EqualValues(t, 0, tempStats["count"])
	assert.NotContains(t, tempStats, "average")
	assert.NotContains(t, tempStats, "min")
}

func TestWriteReportText(t *testing.T) {
	freezeClock(t)
	dir := t.TempDir()

	path, err := WriteReportText(dir, "report body\n")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "team_comparison_20240427_060000.txt"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "report body\n", string(data))
}

func TestWriteMemberObservation(t *testing.T) {
	freezeClock(t)
	dir := t.TempDir()

	obs := domain.Observation{
		City: "Austin", Country: "US",
		TemperatureC: 30.2, FeelsLikeC: 31.0, HumidityPct: 55,
		PressureHpa: 1015, WindSpeedMS: 4.1, WindDirDeg: 180,
		CloudsPct: 20, VisibilityKm: 10,
		WeatherMain: "Clear", WeatherDesc: "clear sky",
		ObservedAt: time.Date(2024, 4, 26, 15, 30, 0, 0, time.UTC),
	}

	path, err := WriteMemberObservation(dir, "Eric Smith", obs)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "weather_eric_smith_20240427_060000.csv"), path)

	// The member file must round-trip through the normal ingestion path.
	rows, err := ingest.NewDirSource(dir).ReadRows(path)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	rec := domain.Normalize(rows[0], path)
	assert.Equal(t, "Eric Smith", rec.MemberName)
	assert.Equal(t, "Austin", rec.City)
	assert.Equal(t, "US", rec.Country)
	require.NotNil(t, rec.TemperatureC)
	assert.Equal(t, 30.2, *rec.TemperatureC)
	require.NotNil(t, rec.HumidityPct)
	assert.Equal(t, 55.0, *rec.HumidityPct)
	require.NotNil(t, rec.WindSpeed)
	assert.Equal(t, 4.1, *rec.WindSpeed)
	assert.Equal(t, "Clear", rec.WeatherMain)
	assert.Equal(t, "2024-04-26T15:30:00Z", rec.Timestamp)
}
