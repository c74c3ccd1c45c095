package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemberFromFilename(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		expected string
		ok       bool
	}{
		{"data prefix", "weather_data_Eric.csv", "Eric", true},
		{"data prefix with path", "data/weather_data_Eric.csv", "Eric", true},
		{"collector naming", "weather_eric_20240426_153000.csv", "Eric", true},
		{"two-word name", "weather_eric_smith_20240426_153000.csv", "Eric Smith", true},
		{"no timestamp", "weather_alice.csv", "Alice", true},
		{"data prefix two-word", "weather_data_mary_jane.csv", "Mary Jane", true},
		{"case-insensitive prefix", "Weather_Data_Bob.csv", "Bob", true},
		{"only timestamp", "weather_20240426_153000.csv", "", false},
		{"data prefix only digits", "weather_data_20240426.csv", "", false},
		{"unrelated file", "observations.csv", "", false},
		{"wrong prefix", "climate_data_Eric.csv", "", false},
		{"bare prefix", "weather.csv", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, ok := MemberFromFilename(tt.filename)
			require.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, name)
		})
	}
}

func TestMemberFileSlug(t *testing.T) {
	assert.Equal(t, "eric_smith", MemberFileSlug("Eric Smith"))
	assert.Equal(t, "alice", MemberFileSlug(" Alice "))
}

func TestMemberFilenameRoundTrip(t *testing.T) {
	// A file named with MemberFileSlug must resolve back to the same
	// display name via MemberFromFilename.
	filename := "weather_" + MemberFileSlug("Eric Smith") + "_20240426_153000.csv"
	name, ok := MemberFromFilename(filename)
	require.True(t, ok)
	assert.Equal(t, "Eric Smith", name)
}
