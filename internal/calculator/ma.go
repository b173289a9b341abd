package calculator

import (
	"errors"
	"math"

	"MetalTracker/internal/model"
)

// SMASeries returns a rolling simple moving average aligned with the bars of
// series. Positions before the first full window are NaN.
func SMASeries(series model.HistoricalSeries, period int) ([]float64, error) {
	if period <= 0 {
		return nil, errors.New("period must be positive")
	}
	closes := series.Closes()
	out := make([]float64, len(closes))
	sum := 0.0
	for i, c := range closes {
		sum += c
		if i >= period {
			sum -= closes[i-period]
		}
		if i < period-1 {
			out[i] = math.NaN()
			continue
		}
		out[i] = sum / float64(period)
	}
	return out, nil
}
