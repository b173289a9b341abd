package calculator

import (
	"math"
	"testing"
	"time"

	"MetalTracker/internal/model"
)

func series(closes ...float64) model.HistoricalSeries {
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	s := model.HistoricalSeries{}
	for i, c := range closes {
		s.Bars = append(s.Bars, model.Bar{Date: start.AddDate(0, 0, i), Close: c})
	}
	return s
}

func TestSMASeries(t *testing.T) {
	out, err := SMASeries(series(2, 4, 6, 8), 3)
	if err != nil {
		t.Fatal(err)
	}
	if !math.IsNaN(out[0]) || !math.IsNaN(out[1]) {
		t.Errorf("expected NaN before first window, got %v", out[:2])
	}
	if out[2] != 4 || out[3] != 6 {
		t.Errorf("got %v, want [.. .. 4 6]", out)
	}
	if _, err := SMASeries(series(1), 0); err == nil {
		t.Error("expected error for zero period")
	}
}

func TestCloseRange(t *testing.T) {
	high, low, err := CloseRange(series(25.1, 23.4, 29.8, 24.0))
	if err != nil {
		t.Fatal(err)
	}
	if high != 29.8 || low != 23.4 {
		t.Errorf("got high=%v low=%v", high, low)
	}
	if _, _, err := CloseRange(model.HistoricalSeries{}); err == nil {
		t.Error("expected error for empty series")
	}
}

func TestRangePosition(t *testing.T) {
	tests := []struct {
		current, high, low, want float64
	}{
		{15, 20, 10, 0.5},
		{25, 20, 10, 1},
		{5, 20, 10, 0},
		{10, 10, 10, 0.5},
	}
	for _, tt := range tests {
		got, err := RangePosition(tt.current, tt.high, tt.low)
		if err != nil {
			t.Fatal(err)
		}
		if got != tt.want {
			t.Errorf("RangePosition(%v, %v, %v) = %v, want %v", tt.current, tt.high, tt.low, got, tt.want)
		}
	}
}
