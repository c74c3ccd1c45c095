// Package ingest discovers and reads member CSV files. It is the
// file-discovery collaborator: callers get a sorted file list and per-file
// raw rows, and never walk the directory themselves.
package ingest

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/couchcryptid/team-weather/internal/domain"
)

// DirSource reads member CSV files from a single directory.
type DirSource struct {
	dir string
}

// NewDirSource creates a source over the given data directory.
func NewDirSource(dir string) *DirSource {
	return &DirSource{dir: dir}
}

// List returns the paths of all CSV files in the directory, sorted by name
// so that discovery order is stable across runs. A missing directory is an
// error; an empty one is not.
func (s *DirSource) List() ([]string, error) {
	if _, err := os.Stat(s.dir); err != nil {
		return nil, fmt.Errorf("data directory: %w", err)
	}
	paths, err := filepath.Glob(filepath.Join(s.dir, "*.csv"))
	if err != nil {
		return nil, fmt.Errorf("list csv files: %w", err)
	}
	sort.Strings(paths)
	return paths, nil
}

// ReadRows reads one CSV file into ordered raw rows keyed by the file's own
// header names. Files with a header but no data rows yield zero rows
// without error. Rows shorter than the header leave the missing columns
// unset; rows longer than the header drop the extras.
func (s *DirSource) ReadRows(path string) ([]domain.RawRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // contributor files are not strictly rectangular
	all, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(all) < 2 {
		return nil, nil
	}

	header := make([]string, len(all[0]))
	for i, h := range all[0] {
		header[i] = strings.TrimSpace(h)
	}

	rows := make([]domain.RawRow, 0, len(all)-1)
	for _, raw := range all[1:] {
		values := make(map[string]string, len(header))
		for j, h := range header {
			if j < len(raw) {
				values[h] = strings.TrimSpace(raw[j])
			}
		}
		rows = append(rows, domain.RawRow{Headers: header, Values: values})
	}
	return rows, nil
}
