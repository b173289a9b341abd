package collector

import (
	"context"
	"fmt"
	"log"

	"MetalTracker/internal/model"
)

// ValidPeriods lists the lookback descriptors accepted by FetchHistory.
var ValidPeriods = map[string]bool{
	"1mo": true,
	"3mo": true,
	"6mo": true,
	"1y":  true,
	"2y":  true,
	"5y":  true,
}

// HistoryResult is either a non-empty series or an empty one with a reason.
type HistoryResult struct {
	Series model.HistoricalSeries
	Reason string
}

// OK reports whether the result carries data.
func (r HistoryResult) OK() bool { return !r.Series.Empty() }

// Collector wraps a Fetcher so that provider failures never escape as errors.
type Collector struct {
	Fetcher Fetcher
}

// NewCollector creates a new Collector.
func NewCollector(fetcher Fetcher) *Collector {
	return &Collector{Fetcher: fetcher}
}

// FetchHistory requests daily closes for ticker over period ("1y" when empty).
// Failures and empty payloads become an empty result with a reason.
func (c *Collector) FetchHistory(ctx context.Context, ticker, period string) HistoryResult {
	if period == "" {
		period = model.DefaultPeriod
	}
	empty := model.HistoricalSeries{Ticker: ticker, Period: period}
	if !ValidPeriods[period] {
		return HistoryResult{Series: empty, Reason: fmt.Sprintf("unsupported period %q", period)}
	}

	series, err := c.Fetcher.FetchDailyCloses(ctx, ticker, period)
	if err != nil {
		log.Printf("[WARN] error fetching historical data for %s from %s: %v", ticker, c.Fetcher.Name(), err)
		return HistoryResult{Series: empty, Reason: err.Error()}
	}
	if series.Empty() {
		return HistoryResult{Series: empty, Reason: "no data returned"}
	}
	return HistoryResult{Series: series}
}
