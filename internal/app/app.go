package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"

	_ "github.com/lib/pq"

	"DealerScanner/internal/config"
	"DealerScanner/internal/domain"
	"DealerScanner/internal/infrastructure/export"
	"DealerScanner/internal/infrastructure/sites"
	"DealerScanner/internal/infrastructure/storage"
	"DealerScanner/internal/infrastructure/telegram"
	"DealerScanner/internal/logging"
	"DealerScanner/internal/ports"
	"DealerScanner/internal/scraper"
	"DealerScanner/internal/usecase"
)

// Application wires configuration into the scrape pipeline.
type Application struct {
	cfg      config.Config
	pipeline *usecase.Pipeline
	db       *sql.DB
}

// New builds a runnable application instance.
func New(cfg config.Config, baseLogger *slog.Logger) (*Application, error) {
	if baseLogger == nil {
		baseLogger = logging.New(cfg.Logging.Level)
	}

	httpClient := &http.Client{Timeout: cfg.Scrape.Timeout()}

	registry := scraper.NewRegistry()
	registry.Register(sites.NewDubizzle(httpClient, baseLogger.With("component", "scraper.dubizzle")))
	registry.Register(sites.NewHatla2ee(httpClient, baseLogger.With("component", "scraper.hatla2ee")))

	var (
		db      *sql.DB
		history ports.ListingHistory
	)
	if cfg.Database.DSN != "" {
		var err error
		db, err = sql.Open("postgres", cfg.Database.DSN)
		if err != nil {
			return nil, fmt.Errorf("open database: %w", err)
		}
		history = storage.NewPostgresHistory(db)
	}

	var sinks []ports.RunSink
	if cfg.Export.CSVDir != "" {
		sinks = append(sinks, export.NewCSVSink(cfg.Export.CSVDir))
	}
	if cfg.Export.XLSXPath != "" {
		sinks = append(sinks, export.NewXLSXSink(cfg.Export.XLSXPath))
	}

	var notifier ports.Notifier
	if cfg.Notifications.Telegram.BotToken != "" {
		notifier = telegram.NewNotifier(cfg.Notifications.Telegram.BotToken, cfg.Notifications.Telegram.ChatID)
	}

	pipeline := usecase.NewPipeline(usecase.PipelineDeps{
		Registry:            registry,
		History:             history,
		Sinks:               sinks,
		Notifier:            notifier,
		Logger:              baseLogger.With("component", "pipeline"),
		Dealers:             toDealers(cfg.Dealers),
		FreshnessWindowDays: cfg.Scrape.FreshnessWindowDays,
		DealerPause:         cfg.Scrape.Pause(),
	})

	return &Application{cfg: cfg, pipeline: pipeline, db: db}, nil
}

// Run performs a single scrape across all configured dealers.
func (a *Application) Run(ctx context.Context) error {
	defer a.close()
	return a.pipeline.Run(ctx)
}

func (a *Application) close() {
	if a.db != nil {
		_ = a.db.Close()
	}
}

func toDealers(cfg []config.DealerConfig) []domain.Dealer {
	dealers := make([]domain.Dealer, 0, len(cfg))
	for _, d := range cfg {
		dealers = append(dealers, domain.Dealer{Code: d.Code, Name: d.Name, URLs: d.URLs})
	}
	return dealers
}
