// Command report runs the one-shot batch pass over the team's CSV files:
// discover, normalize, aggregate, print the comparison report, and
// optionally write the normalized CSV / analysis JSON / report text
// artifacts for downstream Compare Cities use.
//
// Usage:
//
//	go run ./cmd/report [-data-dir data] [-export] [-export-dir data]
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/couchcryptid/team-weather/internal/aggregate"
	"github.com/couchcryptid/team-weather/internal/config"
	"github.com/couchcryptid/team-weather/internal/export"
	"github.com/couchcryptid/team-weather/internal/ingest"
	"github.com/couchcryptid/team-weather/internal/observability"
	"github.com/couchcryptid/team-weather/internal/pipeline"
	"github.com/couchcryptid/team-weather/internal/report"
)

func main() {
	os.Exit(run())
}

func run() int {
	dataDir := flag.String("data-dir", "", "directory of member CSV files (default from WEATHER_DATA_DIR)")
	doExport := flag.Bool("export", false, "write normalized CSV, analysis JSON, and report text artifacts")
	exportDir := flag.String("export-dir", "", "directory for export artifacts (default from WEATHER_EXPORT_DIR)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		return 1
	}
	logger := observability.NewLogger(cfg)

	if *dataDir == "" {
		*dataDir = cfg.DataDir
	}
	if *exportDir == "" {
		*exportDir = cfg.ExportDir
	}

	source := ingest.NewDirSource(*dataDir)
	p := pipeline.New(source, logger)

	res, err := p.Run(context.Background())
	if err != nil {
		logger.Error("batch run failed", "error", err)
		return 1
	}

	summary := aggregate.Summarize(res.Records)
	rendered := report.Render(summary)
	fmt.Print(rendered)

	for _, skip := range res.Skipped {
		fmt.Fprintf(os.Stderr, "warning: skipped %s: %v\n", skip.Path, skip.Err)
	}

	if *doExport {
		// Export is best-effort: failures are reported but the printed
		// summary above already succeeded.
		writeExports(*exportDir, res, summary, rendered, logger)
	}

	return 0
}

func writeExports(dir string, res pipeline.Result, summary aggregate.Summary, rendered string, logger *slog.Logger) {
	if path, err := export.WriteRecordsCSV(dir, res.Records); err != nil {
		logger.Error("csv export failed", "error", err)
	} else {
		fmt.Printf("Normalized data exported to: %s\n", path)
	}

	cities := aggregate.ByCity(res.Records)
	if path, err := export.WriteAnalysisJSON(dir, summary, cities); err != nil {
		logger.Error("json export failed", "error", err)
	} else {
		fmt.Printf("City analysis exported to: %s\n", path)
	}

	if path, err := export.WriteReportText(dir, rendered); err != nil {
		logger.Error("report export failed", "error", err)
	} else {
		fmt.Printf("Report saved to: %s\n", path)
	}
}
