// Package chart renders one-year price charts as standalone HTML pages.
package chart

import (
	"errors"
	"fmt"
	"io"
	"math"

	"MetalTracker/internal/calculator"
	"MetalTracker/internal/model"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

const maWindow = 20

// ErrNoData is returned when the series has no bars to plot.
var ErrNoData = errors.New("no historical data")

// NewLine builds the close-price chart for metal, with a moving-average overlay.
func NewLine(metal string, series model.HistoricalSeries) (*charts.Line, error) {
	if series.Empty() {
		return nil, ErrNoData
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: metal + " Price",
			Width:     "100%",
			Height:    "520px",
		}),
		charts.WithTitleOpts(opts.Title{Title: fmt.Sprintf("%s Price - Last Year", metal)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Date"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Price (USD/oz)"}),
		charts.WithTooltipOpts(opts.Tooltip{Trigger: "axis"}),
	)

	dates := make([]string, len(series.Bars))
	closes := make([]opts.LineData, len(series.Bars))
	for i, b := range series.Bars {
		dates[i] = b.Date.Format("2006-01-02")
		closes[i] = opts.LineData{Value: b.Close}
	}
	line.SetXAxis(dates).AddSeries("Close", closes)

	if ma, err := calculator.SMASeries(series, maWindow); err == nil && len(series.Bars) >= maWindow {
		points := make([]opts.LineData, len(ma))
		for i, v := range ma {
			if math.IsNaN(v) {
				points[i] = opts.LineData{Value: nil}
				continue
			}
			points[i] = opts.LineData{Value: v}
		}
		line.AddSeries(fmt.Sprintf("%d-day MA", maWindow), points)
	}
	return line, nil
}

// Render writes the chart page for metal to w.
func Render(w io.Writer, metal string, series model.HistoricalSeries) error {
	line, err := NewLine(metal, series)
	if err != nil {
		return err
	}
	return line.Render(w)
}
