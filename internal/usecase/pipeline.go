package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/time/rate"

	"DealerScanner/internal/domain"
	"DealerScanner/internal/ports"
	"DealerScanner/internal/scraper"
)

const (
	defaultDealerPause     = 2 * time.Second
	defaultFreshnessWindow = 3
)

// PipelineDeps wires all driven adapters into the scrape pipeline.
type PipelineDeps struct {
	Registry            *scraper.Registry
	History             ports.ListingHistory
	Sinks               []ports.RunSink
	Notifier            ports.Notifier
	Logger              *slog.Logger
	Dealers             []domain.Dealer
	FreshnessWindowDays float64
	DealerPause         time.Duration
}

// Pipeline implements one full scrape-merge-reconcile-export run.
type Pipeline struct {
	registry   *scraper.Registry
	history    ports.ListingHistory
	sinks      []ports.RunSink
	notifier   ports.Notifier
	logger     *slog.Logger
	dealers    []domain.Dealer
	windowDays float64
	limiter    *rate.Limiter
}

// NewPipeline constructs the orchestration component. The limiter paces
// dealer iterations to bound request rate against the remote platforms.
func NewPipeline(deps PipelineDeps) *Pipeline {
	pause := deps.DealerPause
	if pause <= 0 {
		pause = defaultDealerPause
	}

	window := deps.FreshnessWindowDays
	if window <= 0 {
		window = defaultFreshnessWindow
	}

	return &Pipeline{
		registry:   deps.Registry,
		history:    deps.History,
		sinks:      deps.Sinks,
		notifier:   deps.Notifier,
		logger:     deps.Logger,
		dealers:    deps.Dealers,
		windowDays: window,
		limiter:    rate.NewLimiter(rate.Every(pause), 1),
	}
}

// Run scrapes every configured dealer once, classifies the results against
// persisted history, and exports them. A failed URL or unrecognized host
// never aborts other dealers; only history and sink failures are fatal.
func (p *Pipeline) Run(ctx context.Context) error {
	lastSeen := map[string]time.Time{}
	if p.history != nil {
		var err error
		lastSeen, err = p.history.LastSeen(ctx)
		if err != nil {
			return fmt.Errorf("load history: %w", err)
		}
	}

	var classified []domain.Listing
	newCount := 0

	for _, dealer := range p.dealers {
		if err := p.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("dealer pacing: %w", err)
		}

		p.info("process dealer", "dealer", dealer.Name, "code", dealer.Code)

		var scraped []domain.Listing
		for _, pageURL := range dealer.URLs {
			site, err := p.registry.Resolve(pageURL)
			if err != nil {
				p.warn("skip source", "url", pageURL, "error", err)
				continue
			}

			listings, err := site.Fetch(ctx, pageURL, dealer.Code)
			if err != nil {
				p.warn("fetch failed", "site", site.Name(), "url", pageURL, "error", err)
				continue
			}
			scraped = append(scraped, listings...)
		}

		if len(scraped) == 0 {
			p.info("no listings found", "dealer", dealer.Name)
			continue
		}

		merged := ClassifyStatus(MergeSources(scraped), lastSeen)
		for _, listing := range merged {
			if listing.Status == domain.StatusNew {
				newCount++
			}
		}

		if p.history != nil {
			if err := p.history.Append(ctx, merged); err != nil {
				return fmt.Errorf("append history for dealer %s: %w", dealer.Code, err)
			}
		}
		for _, listing := range merged {
			if previous, ok := lastSeen[listing.ID]; !ok || listing.ObservedAt.After(previous) {
				lastSeen[listing.ID] = listing.ObservedAt
			}
		}

		p.info("dealer done", "dealer", dealer.Name, "listings", len(merged))
		classified = append(classified, merged...)
	}

	stale := StaleIdentifiers(lastSeen, p.windowDays)
	for i := range classified {
		classified[i].Stale = stale[classified[i].ID]
	}

	for _, sink := range p.sinks {
		if err := sink.Export(ctx, classified); err != nil {
			return fmt.Errorf("export run: %w", err)
		}
	}

	p.info("run complete", "listings", len(classified), "new", newCount, "stale_identifiers", len(stale))

	if p.notifier != nil && len(classified) > 0 {
		summary := buildRunSummary(len(classified), newCount, len(stale))
		if err := p.notifier.PublishSummary(ctx, summary); err != nil {
			p.warn("publish summary", "error", err)
		}
	}

	return nil
}

func buildRunSummary(total, newCount, staleCount int) string {
	return fmt.Sprintf("Scrape finished: %d listings (%d new, %d existing), %d stale identifiers in history",
		total, newCount, total-newCount, staleCount)
}

func (p *Pipeline) info(msg string, args ...any) {
	if p.logger != nil {
		p.logger.Info(msg, args...)
	}
}

func (p *Pipeline) warn(msg string, args ...any) {
	if p.logger != nil {
		p.logger.Warn(msg, args...)
	}
}
