package analytics

// AnnotatedSeries is the data a chart needs: the sorted points plus the
// first occurrence of the minimum and maximum value for annotation.
// Rendering itself belongs to the presentation layer.
type AnnotatedSeries struct {
	Points Series      `json:"points"`
	Min    Observation `json:"min"`
	Max    Observation `json:"max"`
}

// Annotate locates the extreme observations of the series. Ties are broken
// by earliest date. Returns nil when the series is empty.
func Annotate(s Series) *AnnotatedSeries {
	if len(s) == 0 {
		return nil
	}

	sorted := sortedCopy(s)
	min := sorted[0]
	max := sorted[0]
	for _, o := range sorted[1:] {
		if o.Value < min.Value {
			min = o
		}
		if o.Value > max.Value {
			max = o
		}
	}

	return &AnnotatedSeries{Points: sorted, Min: min, Max: max}
}
