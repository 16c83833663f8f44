package config

import (
	"log"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	configPathEnv     = "DEALER_SCANNER_CONFIG"
	databaseDSNEnv    = "DATABASE_DSN"
	telegramTokenEnv  = "TELEGRAM_BOT_TOKEN"
	telegramChatIDEnv = "TELEGRAM_CHAT_ID"

	defaultDealerPause = 2 * time.Second
	defaultHTTPTimeout = 20 * time.Second
)

// Config holds high-level settings required across the application.
type Config struct {
	Logging       LoggingConfig      `yaml:"logging"`
	Database      DatabaseConfig     `yaml:"database"`
	Scrape        ScrapeConfig       `yaml:"scrape"`
	Export        ExportConfig       `yaml:"export"`
	Notifications NotificationConfig `yaml:"notifications"`
	Dealers       []DealerConfig     `yaml:"dealers"`
}

// LoggingConfig controls log verbosity.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// DatabaseConfig describes Postgres connection details. An empty DSN runs
// the scraper without persisted history.
type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

// ScrapeConfig tunes pacing, fetch timeouts, and the freshness window used
// for staleness classification.
type ScrapeConfig struct {
	FreshnessWindowDays float64 `yaml:"freshnessWindowDays"`
	DealerPause         string  `yaml:"dealerPause"`
	HTTPTimeout         string  `yaml:"httpTimeout"`
}

// Pause resolves the pause between dealer iterations.
func (s ScrapeConfig) Pause() time.Duration {
	return parseDuration(s.DealerPause, defaultDealerPause)
}

// Timeout resolves the per-request HTTP client timeout.
func (s ScrapeConfig) Timeout() time.Duration {
	return parseDuration(s.HTTPTimeout, defaultHTTPTimeout)
}

// ExportConfig names the run sinks; an empty value disables that sink.
type ExportConfig struct {
	CSVDir   string `yaml:"csvDir"`
	XLSXPath string `yaml:"xlsxPath"`
}

// NotificationConfig encapsulates outbound channels.
type NotificationConfig struct {
	Telegram TelegramConfig `yaml:"telegram"`
}

// TelegramConfig wires all data required to send messages.
type TelegramConfig struct {
	BotToken string `yaml:"botToken"`
	ChatID   string `yaml:"chatId"`
}

// DealerConfig describes one tracked dealer and its source URLs.
type DealerConfig struct {
	Code string   `yaml:"code"`
	Name string   `yaml:"name"`
	URLs []string `yaml:"urls"`
}

// Load reads YAML configuration (if present) and applies environment
// overrides.
func Load() Config {
	cfg := defaultConfig()

	if path := os.Getenv(configPathEnv); path != "" {
		if raw, err := os.ReadFile(path); err != nil {
			log.Printf("config: cannot read %s: %v (falling back to defaults)", path, err)
		} else {
			var fileCfg Config
			if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
				log.Printf("config: cannot parse %s: %v (falling back to defaults)", path, err)
			} else {
				cfg = mergeConfig(cfg, fileCfg)
			}
		}
	}

	cfg.applyEnvOverrides()

	return cfg
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(databaseDSNEnv); v != "" {
		c.Database.DSN = v
	}

	if v := os.Getenv(telegramTokenEnv); v != "" {
		c.Notifications.Telegram.BotToken = v
	}

	if v := os.Getenv(telegramChatIDEnv); v != "" {
		c.Notifications.Telegram.ChatID = v
	}
}

func mergeConfig(base, override Config) Config {
	if override.Logging.Level != "" {
		base.Logging.Level = override.Logging.Level
	}

	if override.Database.DSN != "" {
		base.Database = override.Database
	}

	if override.Scrape.FreshnessWindowDays > 0 {
		base.Scrape.FreshnessWindowDays = override.Scrape.FreshnessWindowDays
	}
	if override.Scrape.DealerPause != "" {
		base.Scrape.DealerPause = override.Scrape.DealerPause
	}
	if override.Scrape.HTTPTimeout != "" {
		base.Scrape.HTTPTimeout = override.Scrape.HTTPTimeout
	}

	if override.Export.CSVDir != "" {
		base.Export.CSVDir = override.Export.CSVDir
	}
	if override.Export.XLSXPath != "" {
		base.Export.XLSXPath = override.Export.XLSXPath
	}

	if override.Notifications.Telegram.BotToken != "" {
		base.Notifications.Telegram.BotToken = override.Notifications.Telegram.BotToken
	}
	if override.Notifications.Telegram.ChatID != "" {
		base.Notifications.Telegram.ChatID = override.Notifications.Telegram.ChatID
	}

	if len(override.Dealers) > 0 {
		base.Dealers = override.Dealers
	}

	return base
}

func defaultConfig() Config {
	return Config{
		Logging:  LoggingConfig{Level: "info"},
		Database: DatabaseConfig{DSN: ""},
		Scrape: ScrapeConfig{
			FreshnessWindowDays: 3,
			DealerPause:         "2s",
			HTTPTimeout:         "20s",
		},
		Export: ExportConfig{
			CSVDir:   "exports",
			XLSXPath: "exports/listings.xlsx",
		},
	}
}

func parseDuration(value string, fallback time.Duration) time.Duration {
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		log.Printf("config: invalid duration %q, using %s", value, fallback)
		return fallback
	}
	return d
}
