package main

import (
	"fmt"
	"log"
	"os"

	"MetalTracker/internal/collector"
	"MetalTracker/internal/config"
	"MetalTracker/internal/logging"
	"MetalTracker/internal/pricing"
	"MetalTracker/internal/scraper"

	"github.com/spf13/cobra"
	"gopkg.in/natefinch/lumberjack.v2"
)

// offlinePrice seeds the mock fetcher in offline mode (USD/oz).
const offlinePrice = 2000

type app struct {
	cfg          *config.Config
	logFile      *lumberjack.Logger
	collector    *collector.Collector
	orchestrator *pricing.Orchestrator
}

func newRootCmd() *cobra.Command {
	var (
		cfgPath string
		offline bool
		a       = &app{}
	)

	root := &cobra.Command{
		Use:           "tracker",
		Short:         "Precious metal price dashboard",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cfgPath == "" {
				cfgPath = "configs/config.yaml"
				if v := os.Getenv("CONFIG_PATH"); v != "" {
					cfgPath = v
				}
			}
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("config validation: %w", err)
			}
			a.cfg = cfg
			a.logFile = logging.Setup(logging.Options{
				File:       cfg.Log.File,
				MaxSizeMB:  cfg.Log.MaxSizeMB,
				MaxBackups: cfg.Log.MaxBackups,
				MaxAgeDays: cfg.Log.MaxAgeDays,
			})
			a.wire(offline)
			return nil
		},
	}
	root.PersistentFlags().StringVar(&cfgPath, "config", "", "config file (default configs/config.yaml or $CONFIG_PATH)")
	root.PersistentFlags().BoolVar(&offline, "offline", false, "use a static page and mock history instead of the network")

	root.AddCommand(newServeCmd(a), newPricesCmd(a))
	return root
}

func (a *app) wire(offline bool) {
	var (
		browser scraper.Browser
		fetcher collector.Fetcher
	)
	if offline {
		browser = &scraper.StaticBrowser{}
		fetcher = &collector.MockFetcher{Price: offlinePrice}
	} else {
		chrome := scraper.NewChromeBrowser(a.cfg.Scraper.ChromePath)
		if chrome.ExecPath == "" {
			log.Println("[INFO] no chrome binary found in known locations, using driver default")
		}
		browser = chrome
		fetcher = collector.NewYahooFetcher(a.cfg.Proxy)
	}
	log.Printf("[INFO] history source: %s", fetcher.Name())

	a.collector = collector.NewCollector(fetcher)
	live := scraper.NewScraper(browser, a.cfg.Scraper.URL, a.cfg.Scraper.WaitTimeout)
	a.orchestrator = pricing.NewOrchestrator(live, a.collector)
	a.orchestrator.MaxParallel = a.cfg.History.MaxParallel
}
