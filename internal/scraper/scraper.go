package scraper

import (
	"context"
	"fmt"
	"strings"

	"DealerScanner/internal/domain"
)

// Scraper captures a single platform implementation (dubizzle, hatla2ee,
// etc.). Fetch retrieves one dealer page and extracts every listing card on
// it; per-card extraction misses never fail the fetch.
type Scraper interface {
	Name() string
	Hosts() []string
	Fetch(ctx context.Context, pageURL, dealerCode string) ([]domain.Listing, error)
}

// Registry dispatches a source URL to the scraper whose host it mentions.
type Registry struct {
	scrapers []Scraper
}

// NewRegistry builds an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register appends a scraper; registration order decides dispatch priority.
func (r *Registry) Register(s Scraper) {
	r.scrapers = append(r.scrapers, s)
}

// Resolve returns the scraper matching the URL's host, or an error when no
// registered scraper recognizes it.
func (r *Registry) Resolve(pageURL string) (Scraper, error) {
	for _, s := range r.scrapers {
		for _, host := range s.Hosts() {
			if strings.Contains(pageURL, host) {
				return s, nil
			}
		}
	}
	return nil, fmt.Errorf("no scraper registered for %s", pageURL)
}
