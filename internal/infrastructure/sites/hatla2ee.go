package sites

import (
	"context"
	"log/slog"
	"net/http"
	"regexp"
	"strconv"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"DealerScanner/internal/domain"
	"DealerScanner/internal/scraper"
	"DealerScanner/internal/timetext"
)

const hatla2eeBaseURL = "https://eg.hatla2ee.com"

var (
	nonDigitExpr  = regexp.MustCompile(`\D`)
	modelYearExpr = regexp.MustCompile(`\b20\d{2}\b`)

	// Groups thousands the way the dubizzle price column already does, so
	// both platforms export comparable "EGP 1,234,567" strings.
	pricePrinter = message.NewPrinter(language.English)
)

// Hatla2ee extracts listings from eg.hatla2ee.com dealer pages. Unlike
// dubizzle, price text arrives as an unformatted blob, the model year has
// no dedicated element and is read out of the title, and posting dates are
// absolute YYYY-MM-DD.
type Hatla2ee struct {
	client *http.Client
	logger *slog.Logger
	now    func() time.Time
}

var _ scraper.Scraper = (*Hatla2ee)(nil)

// NewHatla2ee wires an HTTP client; a nil client gets the default bounded
// timeout.
func NewHatla2ee(client *http.Client, logger *slog.Logger) *Hatla2ee {
	if client == nil {
		client = &http.Client{Timeout: defaultTimeout}
	}
	return &Hatla2ee{client: client, logger: logger, now: time.Now}
}

// Name identifies the platform inside merged source lists.
func (h *Hatla2ee) Name() string {
	return "hatla2ee"
}

// Hosts lists the substrings the registry dispatches on.
func (h *Hatla2ee) Hosts() []string {
	return []string{"hatla2ee.com"}
}

// Fetch retrieves one dealer page and extracts every listing card.
func (h *Hatla2ee) Fetch(ctx context.Context, pageURL, dealerCode string) ([]domain.Listing, error) {
	doc, ok, err := fetchDocument(ctx, h.client, h.logger, pageURL)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	observed := h.now()
	var listings []domain.Listing
	doc.Find("div.newCarListUnit_contain").Each(func(_ int, card *goquery.Selection) {
		listings = append(listings, h.extractCard(card, dealerCode, observed))
	})

	return listings, nil
}

func (h *Hatla2ee) extractCard(card *goquery.Selection, dealerCode string, observed time.Time) domain.Listing {
	title := selectText(card, ".newCarListUnit_header a")
	mileage := selectText(card, "span.otherData_Km")
	year := yearFromTitle(title)
	listed := selectText(card, "span.otherData_Date")

	var age domain.Age
	if listed.Known {
		age = timetext.AbsoluteDays(listed.Value, h.now())
		if !age.Known && h.logger != nil {
			h.logger.Warn("unparseable listing date", "text", listed.Value)
		}
	}

	return domain.Listing{
		ID:         domain.Fingerprint(dealerCode, title, year, mileage),
		DealerCode: dealerCode,
		ObservedAt: observed,
		Brand:      domain.ClassifyBrand(title),
		Title:      title,
		Price:      reformatPrice(selectText(card, ".main_price")),
		Mileage:    mileage,
		Year:       year,
		Location:   selectText(card, "span.otherData_Location"),
		ListedText: listed,
		Age:        age,
		URL:        selectHref(card, ".newCarListUnit_header a", hatla2eeBaseURL),
		Source:     h.Name(),
	}
}

// reformatPrice strips everything but digits from the raw price blob and
// re-renders it as "EGP <thousands-separated integer>". A blob with no
// digits means the page showed no usable price.
func reformatPrice(raw domain.Field) domain.Field {
	if !raw.Known {
		return raw
	}

	digits := nonDigitExpr.ReplaceAllString(raw.Value, "")
	if digits == "" {
		return domain.NoField()
	}

	amount, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return domain.NoField()
	}
	return domain.Text(pricePrinter.Sprintf("EGP %d", amount))
}

// yearFromTitle picks the first 4-digit token starting with "20" out of the
// title, the only place this platform shows the model year.
func yearFromTitle(title domain.Field) domain.Field {
	if !title.Known {
		return domain.NoField()
	}
	if match := modelYearExpr.FindString(title.Value); match != "" {
		return domain.Text(match)
	}
	return domain.NoField()
}
