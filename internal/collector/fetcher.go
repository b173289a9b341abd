package collector

import (
	"context"

	"MetalTracker/internal/model"
)

// Fetcher defines the interface for fetching historical daily closes.
type Fetcher interface {
	FetchDailyCloses(ctx context.Context, ticker, period string) (model.HistoricalSeries, error)
	Name() string
}
