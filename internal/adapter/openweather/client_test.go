package openweather

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAPIKey = "test-key"

func testClient(baseURL string) *Client {
	return &Client{
		apiKey:     testAPIKey,
		httpClient: &http.Client{Timeout: 5 * time.Second},
		baseURL:    baseURL,
		breaker:    gobreaker.NewCircuitBreaker(gobreaker.Settings{Name: "test"}),
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

const currentWeatherBody = `{
	"name": "Austin",
	"dt": 1714145400,
	"sys": {"country": "US", "sunrise": 1714130000, "sunset": 1714178000},
	"main": {"temp": 30.2, "feels_like": 31.0, "humidity": 55, "pressure": 1015},
	"wind": {"speed": 4.1, "deg": 180},
	"clouds": {"all": 20},
	"visibility": 10000,
	"weather": [{"main": "Clear", "description": "clear sky"}]
}`

func TestClient_Current_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/weather", r.URL.Path)
		assert.Equal(t, "Austin,US", r.URL.Query().Get("q"))
		assert.Equal(t, testAPIKey, r.URL.Query().Get("appid"))
		assert.Equal(t, "metric", r.URL.Query().Get("units"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(currentWeatherBody))
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	obs, err := c.Current(context.Background(), "Austin", "US")
	require.NoError(t, err)

	assert.Equal(t, "Austin", obs.City)
	assert.Equal(t, "US", obs.Country)
	assert.Equal(t, 30.2, obs.TemperatureC)
	assert.Equal(t, 31.0, obs.FeelsLikeC)
	assert.Equal(t, 55.0, obs.HumidityPct)
	assert.Equal(t, 1015.0, obs.PressureHpa)
	assert.Equal(t, 4.1, obs.WindSpeedMS)
	assert.Equal(t, 180.0, obs.WindDirDeg)
	assert.Equal(t, 20.0, obs.CloudsPct)
	assert.Equal(t, 10.0, obs.VisibilityKm)
	assert.Equal(t, "Clear", obs.WeatherMain)
	assert.Equal(t, "clear sky", obs.WeatherDesc)
	assert.Equal(t, time.Unix(1714145400, 0).UTC(), obs.ObservedAt)
}

func TestClient_Current_NoAPIKey(t *testing.T) {
	c := testClient("http://unused")
	c.apiKey = ""

	_, err := c.Current(context.Background(), "Austin", "US")
	require.ErrorIs(t, err, errNoAPIKey)
}

func TestClient_Current_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"cod":"404","message":"city not found"}`))
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	_, err := c.Current(context.Background(), "Nowheresville", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestClient_Current_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(currentWeatherBody))
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	obs, err := c.Current(context.Background(), "Austin", "US")
	require.NoError(t, err)
	assert.Equal(t, "Austin", obs.City)
	assert.Equal(t, int32(2), calls.Load())
}

func TestClient_Current_GivesUpAfterRetries(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	_, err := c.Current(context.Background(), "Austin", "US")
	require.ErrorIs(t, err, errRateLimited)
	assert.Equal(t, int32(maxRetries+1), calls.Load())
}

func TestClient_Current_ContextCancelledDuringBackoff(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	c := testClient(srv.URL)
	_, err := c.Current(ctx, "Austin", "US")
	require.Error(t, err)
}
