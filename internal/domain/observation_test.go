package domain

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordFromObservation(t *testing.T) {
	obs := Observation{
		City:         "Austin",
		Country:      "US",
		TemperatureC: 30.2,
		HumidityPct:  55,
		WindSpeedMS:  4.1,
		WeatherMain:  "Clear",
		WeatherDesc:  "clear sky",
		ObservedAt:   time.Date(2024, 4, 26, 15, 30, 0, 0, time.UTC),
	}

	rec := RecordFromObservation(obs, "Eric")

	assert.Equal(t, "Eric", rec.MemberName)
	assert.Equal(t, "2024-04-26T15:30:00Z", rec.Timestamp)
	assert.Equal(t, "Austin", rec.City)
	assert.Equal(t, "US", rec.Country)
	require.NotNil(t, rec.TemperatureC)
	assert.Equal(t, 30.2, *rec.TemperatureC)
	require.NotNil(t, rec.HumidityPct)
	assert.Equal(t, 55.0, *rec.HumidityPct)
	require.NotNil(t, rec.WindSpeed)
	assert.Equal(t, 4.1, *rec.WindSpeed)
	assert.Equal(t, "Clear", rec.WeatherMain)
	assert.True(t, rec.HasObservation())
}

func TestRecordFromObservation_Defaults(t *testing.T) {
	fixed := time.Date(2024, 4, 27, 6, 0, 0, 0, time.UTC)
	SetClock(clockwork.NewFakeClockAt(fixed))
	defer SetClock(nil)

	rec := RecordFromObservation(Observation{City: "Austin", WeatherDesc: "light rain"}, "")

	assert.Equal(t, UnknownLabel, rec.MemberName)
	assert.Equal(t, UnknownLabel, rec.Country)
	assert.Equal(t, fixed.Format(time.RFC3339), rec.Timestamp)
	assert.Equal(t, "Light", rec.WeatherMain)
}
