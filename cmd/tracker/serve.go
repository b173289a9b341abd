package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"MetalTracker/internal/notifier"
	"MetalTracker/internal/scheduler"
	"MetalTracker/internal/web"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the dashboard and run scheduled price reports",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.serve(cmd.Context())
		},
	}
}

func (a *app) serve(parent context.Context) error {
	log.Println("[INFO] MetalTracker starting...")
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	var sender scheduler.Sender
	var tn *notifier.TelegramNotifier
	if a.cfg.TelegramEnabled() {
		tn = notifier.NewTelegramNotifier(a.cfg.Telegram.BotToken, a.cfg.Telegram.ChatID, a.cfg.Proxy)
		sender = tn
	}

	sched := scheduler.NewScheduler(ctx, a.orchestrator, sender)
	if a.logFile != nil {
		if err := sched.RegisterDaily("log rotation", func() {
			if err := a.logFile.Rotate(); err != nil {
				log.Printf("[ERROR] rotate log: %v", err)
			}
		}); err != nil {
			return err
		}
	}
	if tn != nil {
		if err := sched.RegisterReport(a.cfg.Schedule.ReportCron); err != nil {
			return err
		}
		go tn.StartPolling(ctx, sched.HandleCommand)
		log.Println("[INFO] Telegram polling started")
		if os.Getenv("REPORT_ON_START") == "true" {
			log.Println("[INFO] REPORT_ON_START enabled, sending report now")
			go sched.RunReportNow()
		}
	}
	sched.Start()
	defer sched.Stop()

	gin.SetMode(gin.ReleaseMode)
	srv := &http.Server{
		Addr:              a.cfg.Server.Listen,
		Handler:           web.NewServer(a.orchestrator, a.collector, a.cfg.History.Period).Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		log.Printf("[INFO] dashboard listening on %s", a.cfg.Server.Listen)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-sigCh:
		log.Println("[INFO] shutdown signal received, stopping...")
	case err := <-errCh:
		return err
	}

	cancel()
	shutdownCtx, done := context.WithTimeout(context.Background(), 5*time.Second)
	defer done()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("[WARN] http shutdown: %v", err)
	}
	log.Println("[INFO] MetalTracker stopped")
	return nil
}
