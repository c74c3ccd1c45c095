// Package pipeline runs the one-shot batch pass: discover files, normalize
// every row, and collect the canonical records in order.
package pipeline

import (
	"context"
	"log/slog"

	"github.com/couchcryptid/team-weather/internal/domain"
)

// Source supplies the files to aggregate: discovery plus per-file reading.
type Source interface {
	List() ([]string, error)
	ReadRows(path string) ([]domain.RawRow, error)
}

// SkippedFile records a file that could not be read. Skips are surfaced to
// the caller as warnings; they never abort the run.
type SkippedFile struct {
	Path string
	Err  error
}

// Result is the output of one batch run. Records preserve source order:
// files in discovery order, rows in file order.
type Result struct {
	Records []domain.Record
	Skipped []SkippedFile
}

// Pipeline orchestrates the source → normalizer pass.
type Pipeline struct {
	source Source
	logger *slog.Logger
}

// New creates a Pipeline over the given source.
func New(source Source, logger *slog.Logger) *Pipeline {
	return &Pipeline{source: source, logger: logger}
}

// Run reads and normalizes every discovered file sequentially. Unreadable
// files are logged, recorded in Result.Skipped, and skipped; only a failure
// to list the input set propagates as an error.
func (p *Pipeline) Run(ctx context.Context) (Result, error) {
	files, err := p.source.List()
	if err != nil {
		return Result{}, err
	}

	var res Result
	for _, path := range files {
		if ctx.Err() != nil {
			return res, ctx.Err()
		}

		rows, err := p.source.ReadRows(path)
		if err != nil {
			p.logger.Warn("skipping unreadable file", "file", path, "error", err)
			res.Skipped = append(res.Skipped, SkippedFile{Path: path, Err: err})
			continue
		}
		for _, row := range rows {
			res.Records = append(res.Records, domain.Normalize(row, path))
		}
		p.logger.Debug("loaded file", "file", path, "rows", len(rows))
	}

	p.logger.Info("batch complete",
		"files", len(files),
		"records", len(res.Records),
		"skipped", len(res.Skipped),
	)
	return res, nil
}
