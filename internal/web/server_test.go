package web

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"MetalTracker/internal/collector"
	"MetalTracker/internal/model"

	"github.com/gin-gonic/gin"
)

type fakePrices struct{ calls int }

func (f *fakePrices) BuildPriceMapping(context.Context) model.Snapshot {
	f.calls++
	snap := model.Snapshot{RefreshID: "r-1", Prices: model.PriceMapping{}, BuiltAt: time.Now()}
	for _, m := range model.Metals {
		snap.Prices[m.Name] = 0
		snap.Quotes = append(snap.Quotes, model.Quote{Metal: m.Name, Source: model.SourceNone})
	}
	snap.Prices["Gold"] = 87.5
	snap.Quotes[0] = model.Quote{Metal: "Gold", PerGram: 87.5, Source: model.SourceLive}
	return snap
}

type fakeHistory struct{}

func (fakeHistory) FetchHistory(_ context.Context, ticker, period string) collector.HistoryResult {
	if ticker != "GC=F" {
		return collector.HistoryResult{Reason: "no data returned"}
	}
	start := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	s := model.HistoricalSeries{Ticker: ticker, Period: period}
	for i, c := range []float64{2000, 2100, 2050} {
		s.Bars = append(s.Bars, model.Bar{Date: start.AddDate(0, 0, i), Close: c})
	}
	return collector.HistoryResult{Series: s}
}

func newTestServer() (*Server, *fakePrices) {
	gin.SetMode(gin.TestMode)
	p := &fakePrices{}
	return NewServer(p, fakeHistory{}, ""), p
}

func get(t *testing.T, s *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	resp := httptest.NewRecorder()
	s.Handler().ServeHTTP(resp, req)
	return resp
}

func TestDashboard(t *testing.T) {
	s, p := newTestServer()

	resp := get(t, s, "/")
	if resp.Code != http.StatusOK {
		t.Fatalf("status %d", resp.Code)
	}
	body := resp.Body.String()
	for _, want := range []string{"Current Prices (USD per gram)", "$87.50", "Palladium", "/chart/Gold"} {
		if !strings.Contains(body, want) {
			t.Errorf("dashboard missing %q", want)
		}
	}

	get(t, s, "/")
	if p.calls != 2 {
		t.Errorf("pipeline should rerun on every refresh, ran %d times", p.calls)
	}
}

func TestAPIPrices(t *testing.T) {
	s, _ := newTestServer()

	resp := get(t, s, "/api/prices")
	var snap model.Snapshot
	if err := json.Unmarshal(resp.Body.Bytes(), &snap); err != nil {
		t.Fatal(err)
	}
	if len(snap.Prices) != 4 || snap.Prices["Gold"] != 87.5 {
		t.Errorf("prices = %v", snap.Prices)
	}
}

func TestAPIHistory(t *testing.T) {
	s, _ := newTestServer()

	resp := get(t, s, "/api/history/gold")
	if resp.Code != http.StatusOK {
		t.Fatalf("status %d", resp.Code)
	}
	var body struct {
		Success bool    `json:"success"`
		Metal   string  `json:"metal"`
		High    float64 `json:"high"`
		Low     float64 `json:"low"`
		Bars    []struct {
			Date string `json:"date"`
		} `json:"bars"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if !body.Success || body.Metal != "Gold" || len(body.Bars) != 3 {
		t.Errorf("unexpected body %+v", body)
	}
	if body.High != 2100 || body.Low != 2000 {
		t.Errorf("range = %v..%v", body.Low, body.High)
	}

	if resp := get(t, s, "/api/history/rhodium"); resp.Code != http.StatusNotFound {
		t.Errorf("unknown metal status %d", resp.Code)
	}
}

func TestChart(t *testing.T) {
	s, _ := newTestServer()

	resp := get(t, s, "/chart/Gold")
	if resp.Code != http.StatusOK || !strings.Contains(resp.Body.String(), "Gold Price - Last Year") {
		t.Errorf("gold chart: %d", resp.Code)
	}

	resp = get(t, s, "/chart/Silver")
	if !strings.Contains(resp.Body.String(), "Silver historical data not available") {
		t.Errorf("expected placeholder, got %s", resp.Body.String())
	}
}
