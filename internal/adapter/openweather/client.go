// Package openweather implements the live-data collaborator: a client for
// the OpenWeather current-conditions API that produces one canonical-format
// observation per call.
package openweather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/couchcryptid/team-weather/internal/domain"
	"github.com/sony/gobreaker"
)

const maxRetries = 2

var (
	errNoAPIKey    = errors.New("openweather api key is not configured")
	errRateLimited = errors.New("rate limited")
	errServerError = errors.New("server error")
)

// Client fetches current conditions from the OpenWeather API.
type Client struct {
	apiKey     string
	httpClient *http.Client
	baseURL    string
	breaker    *gobreaker.CircuitBreaker
	logger     *slog.Logger
}

// NewClient creates an OpenWeather client with a circuit breaker around the
// API endpoint.
func NewClient(apiKey string, timeout time.Duration, logger *slog.Logger) *Client {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "openweather",
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})

	return &Client{
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    "https://api.openweathermap.org/data/2.5",
		breaker:    cb,
		logger:     logger,
	}
}

// Current fetches the current conditions for a city in metric units.
// Rate-limit and server errors are retried with exponential backoff up to
// maxRetries; an open circuit fails fast.
func (c *Client) Current(ctx context.Context, city, country string) (domain.Observation, error) {
	if c.apiKey == "" {
		return domain.Observation{}, errNoAPIKey
	}

	q := city
	if country != "" {
		q = fmt.Sprintf("%s,%s", city, country)
	}
	params := url.Values{
		"q":     {q},
		"appid": {c.apiKey},
		"units": {"metric"},
	}
	fullURL := c.baseURL + "/weather?" + params.Encode()

	resp, err := c.doWithRetry(ctx, fullURL)
	if err != nil {
		return domain.Observation{}, err
	}
	defer resp.Body.Close()

	var payload response
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return domain.Observation{}, fmt.Errorf("decode response: %w", err)
	}
	return payload.observation(), nil
}

func (c *Client) doWithRetry(ctx context.Context, fullURL string) (*http.Response, error) {
	backoff := 500 * time.Millisecond

	for attempt := 0; ; attempt++ {
		resp, err := c.doOnce(ctx, fullURL)
		if err == nil {
			return resp, nil
		}
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, fmt.Errorf("circuit breaker open: %w", err)
		}
		if attempt >= maxRetries || !retryable(err) {
			return nil, err
		}

		c.logger.Warn("openweather request failed, retrying",
			"attempt", attempt+1, "backoff", backoff, "error", err)

		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
		backoff *= 2
	}
}

func (c *Client) doOnce(ctx context.Context, fullURL string) (*http.Response, error) {
	result, err := c.breaker.Execute(func() (interface{}, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if err != nil {
			return nil, fmt.Errorf("create request: %w", err)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("openweather request: %w", err)
		}

		if resp.StatusCode == http.StatusTooManyRequests {
			resp.Body.Close()
			return nil, errRateLimited
		}
		if resp.StatusCode >= 500 {
			resp.Body.Close()
			return nil, errServerError
		}
		if resp.StatusCode != http.StatusOK {
			body, _ := io.ReadAll(resp.Body)
			resp.Body.Close()
			return nil, fmt.Errorf("openweather API error: status %d: %s", resp.StatusCode, body)
		}
		return resp, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*http.Response), nil
}

func retryable(err error) bool {
	return errors.Is(err, errRateLimited) || errors.Is(err, errServerError)
}

// OpenWeather API response types (current weather endpoint).

type response struct {
	Name string `json:"name"`
	Dt   int64  `json:"dt"`
	Sys  struct {
		Country string `json:"country"`
		Sunrise int64  `json:"sunrise"`
		Sunset  int64  `json:"sunset"`
	} `json:"sys"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  float64 `json:"humidity"`
		Pressure  float64 `json:"pressure"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
		Deg   float64 `json:"deg"`
	} `json:"wind"`
	Clouds struct {
		All float64 `json:"all"`
	} `json:"clouds"`
	Visibility float64 `json:"visibility"` // meters
	Weather    []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
	} `json:"weather"`
}

func (r response) observation() domain.Observation {
	obs := domain.Observation{
		City:         r.Name,
		Country:      r.Sys.Country,
		TemperatureC: r.Main.Temp,
		FeelsLikeC:   r.Main.FeelsLike,
		HumidityPct:  r.Main.Humidity,
		PressureHpa:  r.Main.Pressure,
		WindSpeedMS:  r.Wind.Speed,
		WindDirDeg:   r.Wind.Deg,
		CloudsPct:    r.Clouds.All,
		VisibilityKm: r.Visibility / 1000,
	}
	if len(r.Weather) > 0 {
		obs.WeatherMain = r.Weather[0].Main
		obs.WeatherDesc = r.Weather[0].Description
	}
	if r.Dt > 0 {
		obs.ObservedAt = time.Unix(r.Dt, 0).UTC()
	}
	if r.Sys.Sunrise > 0 {
		obs.Sunrise = time.Unix(r.Sys.Sunrise, 0).UTC()
	}
	if r.Sys.Sunset > 0 {
		obs.Sunset = time.Unix(r.Sys.Sunset, 0).UTC()
	}
	return obs
}
