package collector

import (
	"context"
	"sync"
	"time"

	"MetalTracker/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	// Series keyed by ticker. Tickers without an entry get generated bars
	// around Price, or nothing when Price is zero.
	Series map[string]model.HistoricalSeries
	Errors map[string]error
	Price  float64

	mu    sync.Mutex
	calls map[string]int
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchDailyCloses(_ context.Context, ticker, period string) (model.HistoricalSeries, error) {
	m.mu.Lock()
	if m.calls == nil {
		m.calls = make(map[string]int)
	}
	m.calls[ticker]++
	m.mu.Unlock()

	if err, ok := m.Errors[ticker]; ok {
		return model.HistoricalSeries{}, err
	}
	if s, ok := m.Series[ticker]; ok {
		return s, nil
	}
	if m.Price == 0 {
		return model.HistoricalSeries{Ticker: ticker, Period: period}, nil
	}
	return model.HistoricalSeries{
		Ticker:    ticker,
		Period:    period,
		Bars:      generateMockBars(m.Price, 250),
		FetchedAt: time.Now(),
	}, nil
}

// Calls returns how many times ticker was requested.
func (m *MockFetcher) Calls(ticker string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[ticker]
}

func generateMockBars(basePrice float64, count int) []model.Bar {
	bars := make([]model.Bar, count)
	for i := 0; i < count; i++ {
		bars[i] = model.Bar{
			Date:  time.Now().AddDate(0, 0, -(count - i)),
			Close: basePrice * (1 + float64(i-count/2)*0.001),
		}
	}
	return bars
}
