// Package fetcher acquires fresh exchange-rate observations from an upstream
// source. Acquisition is a swappable collaborator: the rest of the system
// only sees the Fetcher interface and an ordered series.
package fetcher

import (
	"context"

	"github.com/ratescope/ratescope/internal/analytics"
)

// Fetcher retrieves the most recent observations from an upstream source.
type Fetcher interface {
	// Fetch returns one observation per day covering the last `days` days,
	// ending today, sorted ascending by date.
	Fetch(ctx context.Context, days int) (analytics.Series, error)
}
