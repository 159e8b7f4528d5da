// Package repository persists the exchange-rate series. The storage format
// is a two-column delimited file keyed by unique date; callers receive the
// series sorted ascending by date.
package repository

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/ratescope/ratescope/internal/analytics"
	"github.com/ratescope/ratescope/internal/logging"
)

// DateLayout is the on-disk date format.
const DateLayout = "2006/01/02"

// SeriesRepository loads and saves the ordered observation series.
type SeriesRepository interface {
	Load() (analytics.Series, error)
	Save(analytics.Series) error
}

// CSVRepository reads and writes the series as a two-column CSV file with a
// header row and dates in YYYY/MM/DD form.
type CSVRepository struct {
	path   string
	logger *logging.Logger
}

// NewCSVRepository creates a repository backed by the file at path.
func NewCSVRepository(path string, logger *logging.Logger) *CSVRepository {
	return &CSVRepository{path: path, logger: logger}
}

// Load reads the whole series from disk, sorted ascending by date.
// Malformed rows are skipped with a warning rather than failing the load.
func (r *CSVRepository) Load() (analytics.Series, error) {
	f, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open series file %s: %w", r.path, err)
	}
	defer func() { _ = f.Close() }()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read series file %s: %w", r.path, err)
	}

	series := make(analytics.Series, 0, len(records))
	for i, rec := range records {
		if i == 0 {
			// Header row
			continue
		}
		if len(rec) != 2 {
			r.logger.Warn("Skipping row with wrong field count",
				"row", i+1, "fields", len(rec))
			continue
		}
		date, err := time.Parse(DateLayout, rec[0])
		if err != nil {
			r.logger.Warn("Skipping row with malformed date",
				"row", i+1, "date", rec[0], "error", err)
			continue
		}
		value, err := strconv.ParseFloat(rec[1], 64)
		if err != nil {
			r.logger.Warn("Skipping row with malformed value",
				"row", i+1, "value", rec[1], "error", err)
			continue
		}
		series = append(series, analytics.Observation{Date: date, Value: value})
	}

	sort.SliceStable(series, func(i, j int) bool {
		return series[i].Date.Before(series[j].Date)
	})

	r.logger.Debug("Series loaded", "path", r.path, "rows", len(series))
	return series, nil
}

// Save merges the given observations with any existing data and rewrites the
// file sorted by date. Dates are unique; on conflict the existing row wins.
func (r *CSVRepository) Save(series analytics.Series) error {
	existing, err := r.Load()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	merged := make(map[string]analytics.Observation, len(existing)+len(series))
	for _, o := range existing {
		merged[o.Date.Format(DateLayout)] = o
	}
	for _, o := range series {
		key := o.Date.Format(DateLayout)
		if _, ok := merged[key]; !ok {
			merged[key] = o
		}
	}

	out := make(analytics.Series, 0, len(merged))
	for _, o := range merged {
		out = append(out, o)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})

	if err := os.MkdirAll(filepath.Dir(r.path), 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	f, err := os.Create(r.path)
	if err != nil {
		return fmt.Errorf("failed to create series file %s: %w", r.path, err)
	}
	defer func() { _ = f.Close() }()

	writer := csv.NewWriter(f)
	if err := writer.Write([]string{"date", "value"}); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, o := range out {
		rec := []string{
			o.Date.Format(DateLayout),
			strconv.FormatFloat(o.Value, 'f', -1, 64),
		}
		if err := writer.Write(rec); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush series file: %w", err)
	}

	r.logger.Info("Series saved", "path", r.path, "rows", len(out))
	return nil
}
