// Package models defines the request and response shapes of the REST API.
package models

import (
	"math"
	"time"

	"github.com/ratescope/ratescope/internal/analytics"
)

// DateLayout is the wire format for dates.
const DateLayout = "2006-01-02"

// HealthResponse represents health check response
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Version   string `json:"version"`
}

// ErrorResponse represents error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail represents error details
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Path    string                 `json:"path,omitempty"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// RatePoint is one dated value on the wire.
type RatePoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

// SeriesResponse represents a filtered series
type SeriesResponse struct {
	Points []RatePoint `json:"points"`
	Count  int         `json:"count"`
}

// StatisticsResponse represents descriptive statistics over a range.
// StdDev and ChangePct are null when the underlying value is NaN or
// infinite (single-point series, zero start value): JSON has no encoding
// for IEEE non-finite values.
type StatisticsResponse struct {
	Min        float64  `json:"min"`
	Max        float64  `json:"max"`
	Mean       float64  `json:"mean"`
	Median     float64  `json:"median"`
	StdDev     *float64 `json:"std_dev"`
	Count      int      `json:"count"`
	StartDate  string   `json:"start_date"`
	EndDate    string   `json:"end_date"`
	StartValue float64  `json:"start_value"`
	EndValue   float64  `json:"end_value"`
	Change     float64  `json:"change"`
	ChangePct  *float64 `json:"change_pct"`
}

// MovingAveragePointView is one row of a moving-average response;
// MovingAverage is null where no full window exists.
type MovingAveragePointView struct {
	Date          string   `json:"date"`
	Value         float64  `json:"value"`
	MovingAverage *float64 `json:"moving_average"`
}

// MovingAverageResponse represents a moving-average series
type MovingAverageResponse struct {
	Window int                      `json:"window"`
	Points []MovingAveragePointView `json:"points"`
	Count  int                      `json:"count"`
}

// VariationView is one flagged day-over-day change
type VariationView struct {
	Date      string  `json:"date"`
	Value     float64 `json:"value"`
	ChangePct float64 `json:"change_pct"`
}

// VariationsResponse represents the flagged variations over a range
type VariationsResponse struct {
	Threshold  float64         `json:"threshold"`
	Variations []VariationView `json:"variations"`
	Count      int             `json:"count"`
}

// ChartResponse carries the points plus min/max annotations for rendering
type ChartResponse struct {
	Points []RatePoint `json:"points"`
	Min    RatePoint   `json:"min"`
	Max    RatePoint   `json:"max"`
}

// DateRangeResponse represents the available date range
type DateRangeResponse struct {
	MinDate string `json:"min_date"`
	MaxDate string `json:"max_date"`
}

// UpdateResponse represents the result of an observation upsert
type UpdateResponse struct {
	Accepted int `json:"accepted"`
}

// NewRatePoint converts a domain observation to its wire form.
func NewRatePoint(o analytics.Observation) RatePoint {
	return RatePoint{Date: o.Date.Format(DateLayout), Value: o.Value}
}

// NewSeriesResponse converts a domain series to its wire form.
func NewSeriesResponse(s analytics.Series) SeriesResponse {
	points := make([]RatePoint, len(s))
	for i, o := range s {
		points[i] = NewRatePoint(o)
	}
	return SeriesResponse{Points: points, Count: len(points)}
}

// NewStatisticsResponse converts domain statistics to their wire form.
func NewStatisticsResponse(stats *analytics.Statistics) StatisticsResponse {
	return StatisticsResponse{
		Min:        stats.Min,
		Max:        stats.Max,
		Mean:       stats.Mean,
		Median:     stats.Median,
		StdDev:     finiteOrNull(stats.StdDev),
		Count:      stats.Count,
		StartDate:  stats.StartDate.Format(DateLayout),
		EndDate:    stats.EndDate.Format(DateLayout),
		StartValue: stats.StartValue,
		EndValue:   stats.EndValue,
		Change:     stats.Change,
		ChangePct:  finiteOrNull(stats.ChangePct),
	}
}

// NewMovingAverageResponse converts moving-average points to their wire form.
func NewMovingAverageResponse(points []analytics.MovingAveragePoint, window int) MovingAverageResponse {
	views := make([]MovingAveragePointView, len(points))
	for i, p := range points {
		views[i] = MovingAveragePointView{
			Date:          p.Date.Format(DateLayout),
			Value:         p.Value,
			MovingAverage: p.MovingAverage,
		}
	}
	return MovingAverageResponse{Window: window, Points: views, Count: len(views)}
}

// NewVariationsResponse converts flagged variations to their wire form.
// Non-finite percent changes (a zero previous value) are capped to the
// largest float rather than dropped, so the flagged row stays visible.
func NewVariationsResponse(variations []analytics.Variation, threshold float64) VariationsResponse {
	views := make([]VariationView, len(variations))
	for i, v := range variations {
		pct := v.ChangePct
		if math.IsInf(pct, 1) {
			pct = math.MaxFloat64
		} else if math.IsInf(pct, -1) {
			pct = -math.MaxFloat64
		}
		views[i] = VariationView{
			Date:      v.Date.Format(DateLayout),
			Value:     v.Value,
			ChangePct: pct,
		}
	}
	return VariationsResponse{Threshold: threshold, Variations: views, Count: len(views)}
}

// NewChartResponse converts an annotated series to its wire form.
func NewChartResponse(a *analytics.AnnotatedSeries) ChartResponse {
	points := make([]RatePoint, len(a.Points))
	for i, o := range a.Points {
		points[i] = NewRatePoint(o)
	}
	return ChartResponse{
		Points: points,
		Min:    NewRatePoint(a.Min),
		Max:    NewRatePoint(a.Max),
	}
}

// NewDateRangeResponse converts the available range to its wire form.
func NewDateRangeResponse(min, max time.Time) DateRangeResponse {
	return DateRangeResponse{
		MinDate: min.Format(DateLayout),
		MaxDate: max.Format(DateLayout),
	}
}

func finiteOrNull(f float64) *float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}
