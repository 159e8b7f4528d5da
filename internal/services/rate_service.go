package services

import (
	"time"

	"github.com/ratescope/ratescope/internal/analytics"
	"github.com/ratescope/ratescope/internal/logging"
	"github.com/ratescope/ratescope/internal/repository"
)

// DateLayout is the bound format accepted from callers (CLI flags, query
// parameters).
const DateLayout = "2006-01-02"

// RateService coordinates the repository and the analytics core for all
// presentation surfaces. Each call loads a fresh series, filters it by the
// requested range and discards it; no series state is shared between calls.
type RateService struct {
	logger *logging.Logger
	repo   repository.SeriesRepository
}

// NewRateService creates a new RateService
func NewRateService(logger *logging.Logger, repo repository.SeriesRepository) *RateService {
	return &RateService{logger: logger, repo: repo}
}

// parseBound parses an optional YYYY-MM-DD bound. An unparseable bound is
// ignored and treated as unset rather than failing the whole request.
func (s *RateService) parseBound(name, value string) *time.Time {
	if value == "" {
		return nil
	}
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		s.logger.Warn("Ignoring malformed date bound",
			"bound", name, "value", value, "error", err)
		return nil
	}
	return &t
}

// loadFiltered loads the full series and applies the optional date range.
func (s *RateService) loadFiltered(start, end string) (analytics.Series, error) {
	series, err := s.repo.Load()
	if err != nil {
		s.logger.Error("Failed to load series", "error", err)
		return nil, NewServiceErrorWithDetails(CodeLoadFailed,
			"Failed to load exchange-rate series",
			map[string]interface{}{"error": err.Error()})
	}

	return analytics.Filter(series, s.parseBound("start", start), s.parseBound("end", end)), nil
}

// GetSeries returns the observations within the optional date range.
func (s *RateService) GetSeries(start, end string) (analytics.Series, error) {
	filtered, err := s.loadFiltered(start, end)
	if err != nil {
		return nil, err
	}
	if len(filtered) == 0 {
		return nil, NewServiceError(CodeNoData, "No observations in the requested range")
	}
	return filtered, nil
}

// GetStatistics computes descriptive statistics over the optional date range.
func (s *RateService) GetStatistics(start, end string) (*analytics.Statistics, error) {
	filtered, err := s.loadFiltered(start, end)
	if err != nil {
		return nil, err
	}

	stats := analytics.ComputeStatistics(filtered)
	if stats == nil {
		return nil, NewServiceError(CodeNoData, "No observations in the requested range")
	}
	return stats, nil
}

// GetMovingAverage computes the trailing moving average over the optional
// date range. An empty range is a NO_DATA condition; a window the caller set
// to zero or below simply yields undefined averages at every row.
func (s *RateService) GetMovingAverage(window int, start, end string) ([]analytics.MovingAveragePoint, error) {
	filtered, err := s.loadFiltered(start, end)
	if err != nil {
		return nil, err
	}
	if len(filtered) == 0 {
		return nil, NewServiceError(CodeNoData, "No observations in the requested range")
	}
	return analytics.MovingAverage(filtered, window), nil
}

// GetVariations finds day-over-day changes above the threshold within the
// optional date range. A non-empty range with no exceedances returns an
// empty list, not an error.
func (s *RateService) GetVariations(thresholdPct float64, start, end string) ([]analytics.Variation, error) {
	filtered, err := s.loadFiltered(start, end)
	if err != nil {
		return nil, err
	}
	if len(filtered) == 0 {
		return nil, NewServiceError(CodeNoData, "No observations in the requested range")
	}
	return analytics.ExtremeVariations(filtered, thresholdPct), nil
}

// GetChartData returns the annotated series for chart rendering.
func (s *RateService) GetChartData(start, end string) (*analytics.AnnotatedSeries, error) {
	filtered, err := s.loadFiltered(start, end)
	if err != nil {
		return nil, err
	}

	annotated := analytics.Annotate(filtered)
	if annotated == nil {
		return nil, NewServiceError(CodeNoData, "No observations in the requested range")
	}
	return annotated, nil
}

// GetDateRange returns the earliest and latest available dates.
func (s *RateService) GetDateRange() (time.Time, time.Time, error) {
	series, err := s.repo.Load()
	if err != nil {
		s.logger.Error("Failed to load series", "error", err)
		return time.Time{}, time.Time{}, NewServiceErrorWithDetails(CodeLoadFailed,
			"Failed to load exchange-rate series",
			map[string]interface{}{"error": err.Error()})
	}
	if len(series) == 0 {
		return time.Time{}, time.Time{}, NewServiceError(CodeNoData, "No observations available")
	}

	// Repository returns ascending date order.
	return series[0].Date, series[len(series)-1].Date, nil
}

// UpdateData merges new observations into the stored series.
func (s *RateService) UpdateData(series analytics.Series) error {
	if err := s.repo.Save(series); err != nil {
		s.logger.Error("Failed to save series", "error", err)
		return NewServiceErrorWithDetails(CodeSaveFailed,
			"Failed to save exchange-rate series",
			map[string]interface{}{"error": err.Error()})
	}

	s.logger.Info("Series updated", "rows", len(series))
	return nil
}
