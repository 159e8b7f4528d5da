package models

import (
	"fmt"
	"time"

	"github.com/ratescope/ratescope/internal/analytics"
)

// UpdateRequest carries observations to merge into the stored series.
type UpdateRequest struct {
	Points []RatePointInput `json:"points"`
}

// RatePointInput is one observation in an update request.
type RatePointInput struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

// Validate checks the request and converts it to a domain series.
func (r *UpdateRequest) Validate() (analytics.Series, error) {
	if len(r.Points) == 0 {
		return nil, fmt.Errorf("points must not be empty")
	}

	seen := make(map[string]struct{}, len(r.Points))
	series := make(analytics.Series, 0, len(r.Points))
	for i, p := range r.Points {
		date, err := time.Parse(DateLayout, p.Date)
		if err != nil {
			return nil, fmt.Errorf("point %d: invalid date %q, expected YYYY-MM-DD", i, p.Date)
		}
		key := date.Format(DateLayout)
		if _, dup := seen[key]; dup {
			return nil, fmt.Errorf("point %d: duplicate date %q", i, p.Date)
		}
		seen[key] = struct{}{}
		series = append(series, analytics.Observation{Date: date, Value: p.Value})
	}

	return series, nil
}
