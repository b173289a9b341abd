// Package web serves the price dashboard and its JSON API.
package web

import (
	"context"
	"embed"
	"errors"
	"html/template"
	"log"
	"net/http"

	"MetalTracker/internal/calculator"
	"MetalTracker/internal/chart"
	"MetalTracker/internal/collector"
	"MetalTracker/internal/model"

	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html
var templateFS embed.FS

// PriceBuilder runs the acquisition pipeline.
type PriceBuilder interface {
	BuildPriceMapping(ctx context.Context) model.Snapshot
}

// HistorySource provides daily closes by ticker.
type HistorySource interface {
	FetchHistory(ctx context.Context, ticker, period string) collector.HistoryResult
}

// Server is the dashboard HTTP server.
type Server struct {
	Prices  PriceBuilder
	History HistorySource
	Period  string

	r *gin.Engine
}

// NewServer wires routes. Every page and API request reruns the pipeline.
func NewServer(prices PriceBuilder, history HistorySource, period string) *Server {
	if period == "" {
		period = model.DefaultPeriod
	}
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger())
	r.SetHTMLTemplate(template.Must(template.ParseFS(templateFS, "templates/*.html")))

	s := &Server{Prices: prices, History: history, Period: period, r: r}
	r.GET("/", s.dashboard)
	r.GET("/chart/:metal", s.chart)
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"success": true}) })

	api := r.Group("/api")
	api.GET("/prices", s.prices)
	api.GET("/history/:metal", s.history)
	return s
}

// Handler exposes the router for http.Server and tests.
func (s *Server) Handler() http.Handler { return s.r }

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		log.Printf("[INFO] %s %s -> %d", c.Request.Method, c.Request.URL.Path, c.Writer.Status())
	}
}

func (s *Server) dashboard(c *gin.Context) {
	snap := s.Prices.BuildPriceMapping(c.Request.Context())
	c.HTML(http.StatusOK, "dashboard.html", gin.H{
		"Snapshot": snap,
		"Metals":   model.Metals,
	})
}

func (s *Server) prices(c *gin.Context) {
	c.JSON(http.StatusOK, s.Prices.BuildPriceMapping(c.Request.Context()))
}

func (s *Server) chart(c *gin.Context) {
	m, ok := model.LookupMetal(c.Param("metal"))
	if !ok {
		c.String(http.StatusNotFound, "unknown metal")
		return
	}
	res := s.History.FetchHistory(c.Request.Context(), m.Ticker, s.Period)

	c.Header("Content-Type", "text/html; charset=utf-8")
	err := chart.Render(c.Writer, m.Name, res.Series)
	if errors.Is(err, chart.ErrNoData) {
		c.HTML(http.StatusOK, "unavailable.html", gin.H{"Metal": m.Name})
		return
	}
	if err != nil {
		log.Printf("[ERROR] render %s chart: %v", m.Name, err)
	}
}

type barJSON struct {
	Date  string  `json:"date"`
	Close float64 `json:"close"`
}

func (s *Server) history(c *gin.Context) {
	m, ok := model.LookupMetal(c.Param("metal"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "reason": "unknown metal"})
		return
	}
	res := s.History.FetchHistory(c.Request.Context(), m.Ticker, s.Period)

	bars := make([]barJSON, len(res.Series.Bars))
	for i, b := range res.Series.Bars {
		bars[i] = barJSON{Date: b.Date.Format("2006-01-02"), Close: b.Close}
	}
	body := gin.H{
		"success": res.OK(),
		"metal":   m.Name,
		"ticker":  m.Ticker,
		"period":  s.Period,
		"bars":    bars,
	}
	if res.Reason != "" {
		body["reason"] = res.Reason
	}
	if high, low, err := calculator.CloseRange(res.Series); err == nil {
		body["high"] = high
		body["low"] = low
		last, _ := res.Series.Last()
		if pos, err := calculator.RangePosition(last.Close, high, low); err == nil {
			body["range_position"] = pos
		}
	}
	c.JSON(http.StatusOK, body)
}
