// Package pricing merges live scraped prices with the history fallback.
package pricing

import (
	"context"
	"log"
	"time"

	"MetalTracker/internal/collector"
	"MetalTracker/internal/model"
	"MetalTracker/internal/scraper"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// LiveSource provides scraped prices.
type LiveSource interface {
	FetchLivePrices(ctx context.Context) scraper.LiveResult
}

// HistorySource provides daily closes by ticker.
type HistorySource interface {
	FetchHistory(ctx context.Context, ticker, period string) collector.HistoryResult
}

// Orchestrator builds the per-gram price mapping for every known metal.
type Orchestrator struct {
	Live    LiveSource
	History HistorySource
	Metals  []model.Metal
	// MaxParallel caps concurrent fallback fetches; <= 0 means one per metal.
	MaxParallel int
}

// NewOrchestrator creates an Orchestrator over model.Metals.
func NewOrchestrator(live LiveSource, history HistorySource) *Orchestrator {
	return &Orchestrator{Live: live, History: history, Metals: model.Metals}
}

// BuildPriceMapping scrapes once, then fills every metal with a missing or
// zero live price from its latest daily close. Metals that still have
// nothing are reported as 0 with SourceNone.
func (o *Orchestrator) BuildPriceMapping(ctx context.Context) model.Snapshot {
	snap := model.Snapshot{
		RefreshID: uuid.NewString(),
		Prices:    make(model.PriceMapping, len(o.Metals)),
		Quotes:    make([]model.Quote, len(o.Metals)),
		BuiltAt:   time.Now(),
	}

	live := o.Live.FetchLivePrices(ctx)
	snap.LiveReason = live.Reason

	g := new(errgroup.Group)
	if o.MaxParallel > 0 {
		g.SetLimit(o.MaxParallel)
	}
	for i, m := range o.Metals {
		if p := live.Prices[m.Name]; p != 0 {
			snap.Quotes[i] = model.Quote{Metal: m.Name, PerGram: p, Source: model.SourceLive}
			continue
		}
		i, m := i, m
		g.Go(func() error {
			snap.Quotes[i] = o.fallback(ctx, m, live.Reason)
			return nil
		})
	}
	g.Wait()

	for _, q := range snap.Quotes {
		snap.Prices[q.Metal] = q.PerGram
	}
	log.Printf("[INFO] refresh %s: %s", snap.RefreshID, summarize(snap.Quotes))
	return snap
}

func (o *Orchestrator) fallback(ctx context.Context, m model.Metal, liveReason string) model.Quote {
	res := o.History.FetchHistory(ctx, m.Ticker, model.DefaultPeriod)
	if last, ok := res.Series.Last(); ok {
		return model.Quote{Metal: m.Name, PerGram: model.PerGram(last.Close), Source: model.SourceHistory}
	}
	reason := res.Reason
	if liveReason != "" {
		reason = "live: " + liveReason + "; history: " + res.Reason
	}
	return model.Quote{Metal: m.Name, PerGram: 0, Source: model.SourceNone, Reason: reason}
}

func summarize(quotes []model.Quote) string {
	var s string
	for i, q := range quotes {
		if i > 0 {
			s += ", "
		}
		s += q.Metal + "=" + string(q.Source)
	}
	return s
}
