// Package analytics implements the time-series analytics core: range
// filtering, descriptive statistics, trailing moving averages and
// threshold-based variation detection over an ordered sequence of daily
// exchange-rate observations.
//
// Every operation is a pure function of its inputs. Input series are never
// mutated; derived sequences are fresh allocations. Callers own the series
// lifecycle (typically one freshly filtered slice per request).
package analytics

import (
	"sort"
	"time"
)

// Observation is a single daily exchange-rate reading. Date carries day
// precision; dates within one series are unique.
type Observation struct {
	Date  time.Time `json:"date"`
	Value float64   `json:"value"`
}

// Series is an ordered sequence of observations, ascending by date.
type Series []Observation

// Values extracts just the values from the series.
func (s Series) Values() []float64 {
	values := make([]float64, len(s))
	for i, o := range s {
		values[i] = o.Value
	}
	return values
}

// Dates extracts just the dates from the series.
func (s Series) Dates() []time.Time {
	dates := make([]time.Time, len(s))
	for i, o := range s {
		dates[i] = o.Date
	}
	return dates
}

// Len returns the number of observations.
func (s Series) Len() int {
	return len(s)
}

// sortedCopy returns a copy of the series sorted ascending by date.
// Analytics run on the copy so callers' slices stay untouched.
func sortedCopy(s Series) Series {
	out := make(Series, len(s))
	copy(out, s)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out
}

// Filter returns the subsequence of s with date >= start (if non-nil) and
// date <= end (inclusive, if non-nil), preserving order. An empty input
// yields an empty result; callers treat empty as "no data".
func Filter(s Series, start, end *time.Time) Series {
	out := make(Series, 0, len(s))
	for _, o := range s {
		if start != nil && o.Date.Before(*start) {
			continue
		}
		if end != nil && o.Date.After(*end) {
			continue
		}
		out = append(out, o)
	}
	return out
}
