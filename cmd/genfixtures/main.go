// Command genfixtures writes sample member CSV files covering the header
// dialects the normalizer supports: canonical columns, Fahrenheit-marked
// headers, and loose synonym headers with the member name only in the file
// name. It uses a fixed clock so generated timestamps are reproducible.
//
// Usage:
//
//	go run ./cmd/genfixtures -out data
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/couchcryptid/team-weather/internal/domain"
	"github.com/jonboulle/clockwork"
)

var baseTime = time.Date(2024, time.April, 26, 15, 0, 0, 0, time.UTC)

type fixture struct {
	file   string
	header []string
	rows   [][]string
}

func fixtures() []fixture {
	ts := domain.Now().Format(time.RFC3339)
	return []fixture{
		{
			// Canonical columns, as written by the collect command.
			file:   "weather_data_Alice.csv",
			header: []string{"member_name", "timestamp", "city", "country", "temperature_celsius", "humidity_percent", "wind_speed", "weather_main", "weather_description"},
			rows: [][]string{
				{"Alice", ts, "Berlin", "DE", "12.4", "88", "6.1", "Rain", "light rain"},
				{"Alice", ts, "Berlin", "DE", "13.0", "85", "5.4", "Rain", "moderate rain"},
			},
		},
		{
			// Fahrenheit-marked headers, member name in the data.
			file:   "weather_data_Eric.csv",
			header: []string{"Name", "City", "Country", "Temperature (F)", "Humidity", "Wind Speed"},
			rows: [][]string{
				{"Eric", "Austin", "US", "86.0", "40", "4.5"},
				{"Eric", "Austin", "US", "75.97", "46", "2.0"},
			},
		},
		{
			// Loose synonyms, no member column: the name comes from the
			// file name grammar.
			file:   "weather_carol_20240426_150000.csv",
			header: []string{"date", "place", "temp", "humid", "wind", "conditions"},
			rows: [][]string{
				{"2024-04-26", "Cali", "31.0", "70", "1.2", "clear"},
			},
		},
	}
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	out := flag.String("out", "data", "output directory for sample CSV files")
	flag.Parse()

	domain.SetClock(clockwork.NewFakeClockAt(baseTime))
	defer domain.SetClock(nil)

	if err := os.MkdirAll(*out, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	for _, fx := range fixtures() {
		path := filepath.Join(*out, fx.file)
		if err := writeFixture(path, fx); err != nil {
			return fmt.Errorf("writing %s: %w", fx.file, err)
		}
		log.Printf("wrote %s: %d rows", path, len(fx.rows))
	}
	return nil
}

func writeFixture(path string, fx fixture) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(fx.header); err != nil {
		return err
	}
	for _, row := range fx.rows {
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
