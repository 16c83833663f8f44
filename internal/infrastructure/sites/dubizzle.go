package sites

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/PuerkitoBio/goquery"

	"DealerScanner/internal/domain"
	"DealerScanner/internal/scraper"
	"DealerScanner/internal/timetext"
)

const dubizzleBaseURL = "https://www.dubizzle.com.eg"

// Dubizzle extracts listings from dubizzle.com.eg dealer profile pages.
// Prices arrive pre-formatted and are taken verbatim; posting times are
// relative ("2 days ago").
type Dubizzle struct {
	client *http.Client
	logger *slog.Logger
	now    func() time.Time
}

var _ scraper.Scraper = (*Dubizzle)(nil)

// NewDubizzle wires an HTTP client; a nil client gets the default bounded
// timeout.
func NewDubizzle(client *http.Client, logger *slog.Logger) *Dubizzle {
	if client == nil {
		client = &http.Client{Timeout: defaultTimeout}
	}
	return &Dubizzle{client: client, logger: logger, now: time.Now}
}

// Name identifies the platform inside merged source lists.
func (d *Dubizzle) Name() string {
	return "dubizzle"
}

// Hosts lists the substrings the registry dispatches on.
func (d *Dubizzle) Hosts() []string {
	return []string{"dubizzle.com"}
}

// Fetch retrieves one dealer page and extracts every listing card.
func (d *Dubizzle) Fetch(ctx context.Context, pageURL, dealerCode string) ([]domain.Listing, error) {
	doc, ok, err := fetchDocument(ctx, d.client, d.logger, pageURL)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	observed := d.now()
	var listings []domain.Listing
	doc.Find(`li[aria-label="Listing"]`).Each(func(_ int, card *goquery.Selection) {
		listings = append(listings, d.extractCard(card, dealerCode, observed))
	})

	return listings, nil
}

func (d *Dubizzle) extractCard(card *goquery.Selection, dealerCode string, observed time.Time) domain.Listing {
	title := selectText(card, "p._21aa22f1")
	mileage := selectText(card, "span._3e1113f0:not(._600acaba)")
	year := selectText(card, "span._3e1113f0._600acaba")
	listed := selectText(card, `span[aria-label="Creation date"]`)

	var age domain.Age
	if listed.Known {
		age = timetext.RelativeDays(listed.Value)
	}

	return domain.Listing{
		ID:         domain.Fingerprint(dealerCode, title, year, mileage),
		DealerCode: dealerCode,
		ObservedAt: observed,
		Brand:      domain.ClassifyBrand(title),
		Title:      title,
		Price:      selectText(card, "span.bb146142"),
		Mileage:    mileage,
		Year:       year,
		Location:   selectText(card, "span._61e1298c"),
		ListedText: listed,
		Age:        age,
		URL:        selectHref(card, "a", dubizzleBaseURL),
		Source:     d.Name(),
	}
}
