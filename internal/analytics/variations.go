package analytics

import (
	"math"
	"time"
)

// Variation is one day-over-day change whose magnitude exceeded the caller's
// threshold.
type Variation struct {
	Date      time.Time `json:"date"`
	Value     float64   `json:"value"`
	ChangePct float64   `json:"change_pct"`
}

// ExtremeVariations finds rows whose day-over-day percent change strictly
// exceeds thresholdPct in absolute value. The first row of a series has no
// prior value and is never reported. Results keep the chronological order of
// the series; any re-sort by magnitude is a presentation concern.
//
// A zero previous value yields an infinite percent change, which qualifies;
// a 0/0 change is NaN and does not.
func ExtremeVariations(s Series, thresholdPct float64) []Variation {
	sorted := sortedCopy(s)

	var out []Variation
	for i := 1; i < len(sorted); i++ {
		pct := (sorted[i].Value/sorted[i-1].Value - 1) * 100
		if math.Abs(pct) > thresholdPct {
			out = append(out, Variation{
				Date:      sorted[i].Date,
				Value:     sorted[i].Value,
				ChangePct: pct,
			})
		}
	}
	return out
}
