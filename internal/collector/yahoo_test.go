package collector

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

const chartFixture = `{"chart":{"result":[{"timestamp":[1704153600,1704067200,1704240000,1704326400],
"indicators":{"quote":[{"close":[2073.4,2062.4,null,2050.1]}]}}],"error":null}}`

func newTestYahoo(t *testing.T, status int, body string) (*YahooFetcher, *string) {
	t.Helper()
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.String()
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	f := NewYahooFetcher("")
	f.BaseURL = srv.URL
	return f, &gotPath
}

func TestYahooFetchDailyCloses(t *testing.T) {
	f, path := newTestYahoo(t, http.StatusOK, chartFixture)

	series, err := f.FetchDailyCloses(context.Background(), "GC=F", "1y")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(*path, "/v8/finance/chart/GC=F") || !strings.Contains(*path, "range=1y") {
		t.Errorf("unexpected request path: %s", *path)
	}
	if len(series.Bars) != 3 {
		t.Fatalf("expected 3 bars (null skipped), got %d", len(series.Bars))
	}
	for i := 1; i < len(series.Bars); i++ {
		if series.Bars[i].Date.Before(series.Bars[i-1].Date) {
			t.Fatalf("bars not ascending at %d", i)
		}
	}
	last, _ := series.Last()
	if last.Close != 2050.1 {
		t.Errorf("expected last close 2050.1, got %v", last.Close)
	}
}

func TestYahooFetchDailyCloses_Empty(t *testing.T) {
	f, _ := newTestYahoo(t, http.StatusOK, `{"chart":{"result":[],"error":null}}`)

	series, err := f.FetchDailyCloses(context.Background(), "PA=F", "1y")
	if err != nil {
		t.Fatalf("empty payload should not be an error: %v", err)
	}
	if !series.Empty() {
		t.Errorf("expected empty series, got %d bars", len(series.Bars))
	}
}

func TestYahooFetchDailyCloses_Errors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"http status", http.StatusTooManyRequests, "slow down"},
		{"bad json", http.StatusOK, "{"},
		{"api error", http.StatusOK, `{"chart":{"result":null,"error":{"code":"Not Found","description":"No data found"}}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, _ := newTestYahoo(t, tt.status, tt.body)
			if _, err := f.FetchDailyCloses(context.Background(), "SI=F", "1y"); err == nil {
				t.Error("expected error")
			}
		})
	}
}
