package fetcher

import (
	"context"
	"time"

	"github.com/ratescope/ratescope/internal/analytics"
	"github.com/ratescope/ratescope/internal/logging"
)

// SimulatedFetcher fabricates linearly increasing values instead of calling
// a real upstream source. It stands in for the central-bank API until a real
// client replaces it behind the same interface.
type SimulatedFetcher struct {
	logger *logging.Logger
	now    func() time.Time
}

// NewSimulatedFetcher creates a fetcher producing synthetic data.
func NewSimulatedFetcher(logger *logging.Logger) *SimulatedFetcher {
	return &SimulatedFetcher{logger: logger, now: time.Now}
}

// Fetch returns `days` consecutive daily observations ending today, with
// values starting at 4000 and rising 10 per day.
func (f *SimulatedFetcher) Fetch(ctx context.Context, days int) (analytics.Series, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if days <= 0 {
		return analytics.Series{}, nil
	}

	today := f.now().UTC().Truncate(24 * time.Hour)
	series := make(analytics.Series, days)
	for i := 0; i < days; i++ {
		series[i] = analytics.Observation{
			Date:  today.AddDate(0, 0, i-days+1),
			Value: 4000 + float64(i)*10,
		}
	}

	f.logger.Info("Fetched simulated observations", "rows", len(series))
	return series, nil
}
