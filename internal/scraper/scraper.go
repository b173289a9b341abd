package scraper

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"MetalTracker/internal/model"
)

const (
	// DefaultURL is the live prices page.
	DefaultURL = "https://www.metalsdaily.com/live-prices/pgms/"
	// DefaultWaitTimeout bounds the wait for the price table.
	DefaultWaitTimeout = 10 * time.Second

	labelMarker = "USD/OZ"
)

// LiveResult holds whatever the scrape produced. Reason is set when the
// session failed; Prices is empty in that case.
type LiveResult struct {
	Prices model.PriceMapping
	Reason string
}

// Scraper reads ask prices from the prices page.
type Scraper struct {
	Browser     Browser
	URL         string
	WaitTimeout time.Duration
}

// NewScraper creates a Scraper, filling in DefaultURL and DefaultWaitTimeout.
func NewScraper(browser Browser, url string, waitTimeout time.Duration) *Scraper {
	if url == "" {
		url = DefaultURL
	}
	if waitTimeout <= 0 {
		waitTimeout = DefaultWaitTimeout
	}
	return &Scraper{Browser: browser, URL: url, WaitTimeout: waitTimeout}
}

// FetchLivePrices loads the page and parses every recognized row. It never
// returns an error; failures give an empty mapping with a reason.
func (s *Scraper) FetchLivePrices(ctx context.Context) LiveResult {
	prices, err := s.scrape(ctx)
	if err != nil {
		log.Printf("[WARN] couldn't fetch live prices: %v", err)
		return LiveResult{Prices: model.PriceMapping{}, Reason: err.Error()}
	}
	return LiveResult{Prices: prices}
}

func (s *Scraper) scrape(ctx context.Context) (model.PriceMapping, error) {
	sess, err := s.Browser.NewSession(ctx)
	if err != nil {
		return nil, fmt.Errorf("open session: %w", err)
	}
	defer func() {
		if err := sess.Close(); err != nil {
			log.Printf("[WARN] close browser session: %v", err)
		}
	}()

	if err := sess.Navigate(s.URL); err != nil {
		return nil, err
	}
	if err := sess.WaitFor("table", s.WaitTimeout); err != nil {
		return nil, err
	}
	rows, err := sess.Rows()
	if err != nil {
		return nil, fmt.Errorf("read rows: %w", err)
	}
	return ParseRows(rows), nil
}

// ParseRows extracts prices from table rows. Rows that do not parse are
// skipped; a repeated metal keeps the value of its last row.
func ParseRows(rows [][]string) model.PriceMapping {
	prices := model.PriceMapping{}
	for _, cells := range rows {
		if name, price, ok := ParseRow(cells); ok {
			prices[name] = price
		}
	}
	return prices
}

// ParseRow reads a label/blank/ask row. The label must carry the USD/OZ
// marker; the ask price is converted to a per-gram figure.
func ParseRow(cells []string) (name string, perGram float64, ok bool) {
	if len(cells) <= 2 {
		return "", 0, false
	}
	label := strings.TrimSpace(cells[0])
	if !strings.Contains(label, labelMarker) {
		return "", 0, false
	}
	name = strings.TrimSpace(strings.ReplaceAll(label, labelMarker, ""))

	ask := strings.ReplaceAll(strings.TrimSpace(cells[2]), ",", "")
	perOunce, err := strconv.ParseFloat(ask, 64)
	if err != nil {
		return "", 0, false
	}
	return name, model.PerGram(perOunce), true
}
