package scheduler

import (
	"context"
	"strings"
	"testing"
	"time"

	"MetalTracker/internal/model"
)

type fakeBuilder struct{ calls int }

func (f *fakeBuilder) BuildPriceMapping(context.Context) model.Snapshot {
	f.calls++
	return model.Snapshot{
		BuiltAt: time.Now(),
		Prices:  model.PriceMapping{"Gold": 90},
		Quotes:  []model.Quote{{Metal: "Gold", PerGram: 90, Source: model.SourceLive}},
	}
}

type fakeSender struct{ texts []string }

func (f *fakeSender) SendWithRetry(_ context.Context, text string, _ int) error {
	f.texts = append(f.texts, text)
	return nil
}

func TestRunReportNow(t *testing.T) {
	b, snd := &fakeBuilder{}, &fakeSender{}
	s := NewScheduler(context.Background(), b, snd)

	s.RunReportNow()
	if b.calls != 1 {
		t.Errorf("pipeline ran %d times", b.calls)
	}
	if len(snd.texts) != 1 || !strings.Contains(snd.texts[0], "Gold: $90.00") {
		t.Errorf("sent = %v", snd.texts)
	}
}

func TestRegisterReport(t *testing.T) {
	s := NewScheduler(context.Background(), &fakeBuilder{}, &fakeSender{})
	if err := s.RegisterReport("0 0 9 * * *"); err != nil {
		t.Fatal(err)
	}
	if err := s.RegisterReport("bogus"); err == nil {
		t.Error("expected error for invalid spec")
	}
	if len(s.Cron.Entries()) != 1 {
		t.Errorf("expected 1 entry, got %d", len(s.Cron.Entries()))
	}

	noNotifier := NewScheduler(context.Background(), &fakeBuilder{}, nil)
	if err := noNotifier.RegisterReport("0 0 9 * * *"); err == nil {
		t.Error("expected error without notifier")
	}
}

func TestHandleCommand(t *testing.T) {
	b := &fakeBuilder{}
	s := NewScheduler(context.Background(), b, &fakeSender{})

	if reply := s.HandleCommand(context.Background(), "/prices"); !strings.Contains(reply, "Gold") {
		t.Errorf("unexpected reply %q", reply)
	}
	if reply := s.HandleCommand(context.Background(), "hi"); !strings.Contains(reply, "/prices") {
		t.Errorf("expected help text, got %q", reply)
	}
	if b.calls != 1 {
		t.Errorf("pipeline ran %d times, want 1", b.calls)
	}
}
