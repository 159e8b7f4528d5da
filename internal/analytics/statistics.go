package analytics

import (
	"math"
	"sort"
	"time"
)

// Statistics holds descriptive statistics over a date range of observations.
// StartValue and EndValue are positional (first and last row after sorting by
// date), not min/max of the values.
type Statistics struct {
	Min        float64   `json:"min"`
	Max        float64   `json:"max"`
	Mean       float64   `json:"mean"`
	Median     float64   `json:"median"`
	StdDev     float64   `json:"std_dev"`
	Count      int       `json:"count"`
	StartDate  time.Time `json:"start_date"`
	EndDate    time.Time `json:"end_date"`
	StartValue float64   `json:"start_value"`
	EndValue   float64   `json:"end_value"`
	Change     float64   `json:"change"`
	ChangePct  float64   `json:"change_pct"`
}

// ComputeStatistics calculates descriptive statistics for the series.
// Returns nil when the series is empty; callers surface that as a
// "no data" condition rather than an error.
//
// StdDev is the sample standard deviation (denominator n-1) and is NaN for a
// single-point series. ChangePct divides by the first value; a zero first
// value yields IEEE +-Inf or NaN, never an error.
func ComputeStatistics(s Series) *Statistics {
	if len(s) == 0 {
		return nil
	}

	sorted := sortedCopy(s)
	first := sorted[0]
	last := sorted[len(sorted)-1]

	min := sorted[0].Value
	max := sorted[0].Value
	sum := 0.0
	for _, o := range sorted {
		if o.Value < min {
			min = o.Value
		}
		if o.Value > max {
			max = o.Value
		}
		sum += o.Value
	}
	mean := sum / float64(len(sorted))

	return &Statistics{
		Min:        min,
		Max:        max,
		Mean:       mean,
		Median:     median(sorted.Values()),
		StdDev:     sampleStdDev(sorted, mean),
		Count:      len(sorted),
		StartDate:  first.Date,
		EndDate:    last.Date,
		StartValue: first.Value,
		EndValue:   last.Value,
		Change:     last.Value - first.Value,
		ChangePct:  (last.Value/first.Value - 1) * 100,
	}
}

func median(values []float64) float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

// sampleStdDev is the n-1 denominator standard deviation. Undefined (NaN)
// for fewer than two points, never reported as 0.
func sampleStdDev(s Series, mean float64) float64 {
	if len(s) < 2 {
		return math.NaN()
	}
	sumSq := 0.0
	for _, o := range s {
		diff := o.Value - mean
		sumSq += diff * diff
	}
	return math.Sqrt(sumSq / float64(len(s)-1))
}
