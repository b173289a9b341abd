package model

import "time"

// Bar is a single daily close from the market-data provider.
type Bar struct {
	Date  time.Time
	Close float64
}

// HistoricalSeries holds daily closes for one ticker, ascending by date.
// Trading-day gaps are expected.
type HistoricalSeries struct {
	Ticker    string
	Period    string
	Bars      []Bar
	FetchedAt time.Time
}

// Empty reports whether the series has no bars.
func (s HistoricalSeries) Empty() bool { return len(s.Bars) == 0 }

// Last returns the chronologically last bar. ok is false for an empty series.
func (s HistoricalSeries) Last() (bar Bar, ok bool) {
	if len(s.Bars) == 0 {
		return Bar{}, false
	}
	last := s.Bars[0]
	for _, b := range s.Bars[1:] {
		if !b.Date.Before(last.Date) {
			last = b
		}
	}
	return last, true
}

// Closes returns the closing prices in series order.
func (s HistoricalSeries) Closes() []float64 {
	closes := make([]float64, len(s.Bars))
	for i, b := range s.Bars {
		closes[i] = b.Close
	}
	return closes
}
