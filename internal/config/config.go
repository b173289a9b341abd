package config

import (
	"fmt"
	"os"
	"time"

	"MetalTracker/internal/collector"
	"MetalTracker/internal/model"

	"github.com/robfig/cron/v3"
	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Scraper struct {
		URL         string        `yaml:"url"`
		ChromePath  string        `yaml:"chrome_path"`
		WaitTimeout time.Duration `yaml:"wait_timeout"`
	} `yaml:"scraper"`
	History struct {
		Period      string `yaml:"period"`
		MaxParallel int    `yaml:"max_parallel"`
	} `yaml:"history"`
	Server struct {
		Listen string `yaml:"listen"`
	} `yaml:"server"`
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
	} `yaml:"telegram"`
	Schedule struct {
		ReportCron string `yaml:"report_cron"`
	} `yaml:"schedule"`
	Log struct {
		File       string `yaml:"file"`
		MaxSizeMB  int    `yaml:"max_size_mb"`
		MaxBackups int    `yaml:"max_backups"`
		MaxAgeDays int    `yaml:"max_age_days"`
	} `yaml:"log"`
	Proxy string `yaml:"proxy"`
}

// TelegramEnabled reports whether price reports should be pushed.
func (c *Config) TelegramEnabled() bool {
	return c.Telegram.BotToken != "" && c.Telegram.ChatID != ""
}

// Load reads config from a YAML file, then applies environment variable overrides.
// A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("SCRAPE_URL"); v != "" {
		cfg.Scraper.URL = v
	}
	if v := os.Getenv("CHROME_PATH"); v != "" {
		cfg.Scraper.ChromePath = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("LISTEN_ADDR"); v != "" {
		cfg.Server.Listen = v
	}
	if v := os.Getenv("LOG_FILE"); v != "" {
		cfg.Log.File = v
	}
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		cfg.Telegram.ChatID = v
	}
	if v := os.Getenv("REPORT_CRON"); v != "" {
		cfg.Schedule.ReportCron = v
	}

	// Defaults
	if cfg.Scraper.URL == "" {
		cfg.Scraper.URL = "https://www.metalsdaily.com/live-prices/pgms/"
	}
	if cfg.Scraper.WaitTimeout == 0 {
		cfg.Scraper.WaitTimeout = 10 * time.Second
	}
	if cfg.History.Period == "" {
		cfg.History.Period = model.DefaultPeriod
	}
	if cfg.Server.Listen == "" {
		cfg.Server.Listen = ":8501"
	}
	if cfg.Schedule.ReportCron == "" {
		cfg.Schedule.ReportCron = "0 0 9 * * *"
	}
	if cfg.Log.MaxSizeMB == 0 {
		cfg.Log.MaxSizeMB = 50
	}

	return cfg, nil
}

// Validate checks that all fields hold usable values.
func (c *Config) Validate() error {
	if c.Server.Listen == "" {
		return fmt.Errorf("server.listen is required")
	}
	if c.Scraper.WaitTimeout <= 0 {
		return fmt.Errorf("scraper.wait_timeout must be positive")
	}
	if !collector.ValidPeriods[c.History.Period] {
		return fmt.Errorf("history.period %q is not supported", c.History.Period)
	}
	if c.History.MaxParallel < 0 {
		return fmt.Errorf("history.max_parallel must not be negative")
	}
	if c.TelegramEnabled() {
		parser := cron.NewParser(cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
		if _, err := parser.Parse(c.Schedule.ReportCron); err != nil {
			return fmt.Errorf("schedule.report_cron: %w", err)
		}
	}
	return nil
}
