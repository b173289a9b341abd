package scheduler

import (
	"context"
	"fmt"
	"log"

	"MetalTracker/internal/model"
	"MetalTracker/internal/notifier"

	"github.com/robfig/cron/v3"
)

// PriceBuilder runs the acquisition pipeline.
type PriceBuilder interface {
	BuildPriceMapping(ctx context.Context) model.Snapshot
}

// Sender delivers a formatted report.
type Sender interface {
	SendWithRetry(ctx context.Context, text string, maxRetries int) error
}

// Scheduler manages the cron tasks.
type Scheduler struct {
	Cron     *cron.Cron
	Prices   PriceBuilder
	Notifier Sender
	Ctx      context.Context
}

// NewScheduler creates a new Scheduler. Notifier may be nil, in which case
// only housekeeping jobs are registered.
func NewScheduler(ctx context.Context, prices PriceBuilder, n Sender) *Scheduler {
	return &Scheduler{
		Cron:     cron.New(cron.WithSeconds()),
		Prices:   prices,
		Notifier: n,
		Ctx:      ctx,
	}
}

// RegisterReport schedules the price report.
func (s *Scheduler) RegisterReport(spec string) error {
	if s.Notifier == nil {
		return fmt.Errorf("register report task: no notifier configured")
	}
	if _, err := s.Cron.AddFunc(spec, s.reportTask); err != nil {
		return fmt.Errorf("register report task: %w", err)
	}
	return nil
}

// RegisterDaily schedules fn once per day at midnight.
func (s *Scheduler) RegisterDaily(name string, fn func()) error {
	if _, err := s.Cron.AddFunc("@daily", fn); err != nil {
		return fmt.Errorf("register %s task: %w", name, err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler and waits for running jobs.
func (s *Scheduler) Stop() {
	<-s.Cron.Stop().Done()
	log.Println("[INFO] scheduler stopped")
}

// RunReportNow executes the report task immediately.
func (s *Scheduler) RunReportNow() {
	s.reportTask()
}

func (s *Scheduler) reportTask() {
	log.Println("[INFO] running price report")
	snap := s.Prices.BuildPriceMapping(s.Ctx)
	if err := s.Notifier.SendWithRetry(s.Ctx, notifier.FormatPriceReport(snap), 3); err != nil {
		log.Printf("[ERROR] send price report: %v", err)
	}
}

// HandleCommand processes a chat command and returns a reply.
func (s *Scheduler) HandleCommand(ctx context.Context, command string) string {
	switch command {
	case "/prices", "/start":
		return notifier.FormatPriceReport(s.Prices.BuildPriceMapping(ctx))
	default:
		return "Available commands:\n• /prices - current prices per gram"
	}
}
