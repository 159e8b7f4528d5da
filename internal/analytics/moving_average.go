package analytics

import "time"

// MovingAveragePoint pairs an observation with its trailing moving average.
// MovingAverage is nil for rows where a full window does not yet exist.
type MovingAveragePoint struct {
	Date          time.Time `json:"date"`
	Value         float64   `json:"value"`
	MovingAverage *float64  `json:"moving_average"`
}

// MovingAverage computes a simple trailing rolling mean over the series.
// For 0-based row i in the date-sorted series, the moving average is the
// arithmetic mean of rows i-window+1..i when that full window exists
// (i >= window-1) and nil otherwise. The window counts rows, not calendar
// days; gaps in irregular series are not interpolated.
//
// window <= 0 is a caller error and yields nil at every row, matching a
// no-op rolling window.
func MovingAverage(s Series, window int) []MovingAveragePoint {
	sorted := sortedCopy(s)
	points := make([]MovingAveragePoint, len(sorted))

	sum := 0.0
	for i, o := range sorted {
		points[i] = MovingAveragePoint{Date: o.Date, Value: o.Value}
		if window <= 0 {
			continue
		}
		sum += o.Value
		if i >= window {
			sum -= sorted[i-window].Value
		}
		if i >= window-1 {
			avg := sum / float64(window)
			points[i].MovingAverage = &avg
		}
	}

	return points
}
