package model

import (
	"testing"
	"time"
)

func TestLast_TradingDayGaps(t *testing.T) {
	var s HistoricalSeries
	for d := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC); d.Year() == 2023; d = d.AddDate(0, 0, 1) {
		if d.Weekday() == time.Saturday || d.Weekday() == time.Sunday {
			continue
		}
		s.Bars = append(s.Bars, Bar{Date: d, Close: float64(d.YearDay())})
	}
	// 2023-12-29 is the last weekday of the year.
	last, ok := s.Last()
	if !ok {
		t.Fatal("expected a bar")
	}
	if want := time.Date(2023, 12, 29, 0, 0, 0, 0, time.UTC); !last.Date.Equal(want) {
		t.Errorf("last = %s, want %s", last.Date.Format("2006-01-02"), want.Format("2006-01-02"))
	}
}

func TestLast_Empty(t *testing.T) {
	if _, ok := (HistoricalSeries{}).Last(); ok {
		t.Error("expected ok=false for empty series")
	}
}

func TestPerGram(t *testing.T) {
	if got := PerGram(2800); got != 100 {
		t.Errorf("PerGram(2800) = %v, want 100", got)
	}
}

func TestLookupMetal(t *testing.T) {
	m, ok := LookupMetal("platinum")
	if !ok || m.Ticker != "PL=F" {
		t.Errorf("got %+v, %v", m, ok)
	}
	if _, ok := LookupMetal("Rhodium"); ok {
		t.Error("rhodium is not a known metal")
	}
}
