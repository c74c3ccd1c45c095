// Command collect fetches the current conditions for one team member's
// city from the OpenWeather API and writes them as a new member CSV file
// in the shared data directory.
//
// Usage:
//
//	go run ./cmd/collect -name "Eric Smith" -city Austin [-country US]
//
// Requires OPENWEATHER_API_KEY (or OPENWEATHER_API_KEY_BACKUP) in the
// environment or a .env file.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/couchcryptid/team-weather/internal/adapter/openweather"
	"github.com/couchcryptid/team-weather/internal/config"
	"github.com/couchcryptid/team-weather/internal/export"
	"github.com/couchcryptid/team-weather/internal/observability"
)

func main() {
	os.Exit(run())
}

func run() int {
	name := flag.String("name", "", "team member name")
	city := flag.String("city", "", "city to collect weather for (required)")
	country := flag.String("country", "", "ISO country code, e.g. US")
	dataDir := flag.String("data-dir", "", "directory for member CSV files (default from WEATHER_DATA_DIR)")
	flag.Parse()

	if *city == "" {
		flag.Usage()
		fmt.Fprintln(os.Stderr, "city is required")
		return 1
	}
	if *name == "" {
		*name = "Team Member"
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		return 1
	}
	logger := observability.NewLogger(cfg)

	if *dataDir == "" {
		*dataDir = cfg.DataDir
	}
	if cfg.OpenWeatherAPIKey != "" {
		logger.Debug("api key loaded", "key", config.MaskKey(cfg.OpenWeatherAPIKey))
	}

	client := openweather.NewClient(cfg.OpenWeatherAPIKey, cfg.OpenWeatherTimeout, logger)

	obs, err := client.Current(context.Background(), *city, *country)
	if err != nil {
		logger.Error("failed to fetch weather", "city", *city, "error", err)
		return 1
	}

	fmt.Printf("Current weather in %s, %s:\n", obs.City, obs.Country)
	fmt.Printf("  Temperature: %.1f C (feels like %.1f C)\n", obs.TemperatureC, obs.FeelsLikeC)
	fmt.Printf("  Condition:   %s\n", obs.WeatherDesc)
	fmt.Printf("  Humidity:    %.0f%%\n", obs.HumidityPct)
	fmt.Printf("  Wind:        %.1f m/s\n", obs.WindSpeedMS)
	if !obs.Sunrise.IsZero() && !obs.Sunset.IsZero() {
		fmt.Printf("  Sunrise:     %s | Sunset: %s\n",
			obs.Sunrise.Format("15:04"), obs.Sunset.Format("15:04"))
	}

	if err := os.MkdirAll(*dataDir, 0o755); err != nil {
		logger.Error("failed to create data directory", "dir", *dataDir, "error", err)
		return 1
	}

	path, err := export.WriteMemberObservation(*dataDir, *name, obs)
	if err != nil {
		logger.Error("failed to save observation", "error", err)
		return 1
	}

	fmt.Printf("\nData saved to: %s\n", path)
	fmt.Println("Share this file with your team, then run the report command.")
	return 0
}
