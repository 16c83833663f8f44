// Package sites holds one scraper per classifieds platform. Each platform
// has an independent, unstable DOM, so selectors and price rules live here
// and nowhere else; downstream components only ever see domain.Listing.
package sites

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"DealerScanner/internal/domain"
)

// userAgent mimics a desktop browser; both platforms serve the plain HTML
// variant of their pages to it.
const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

const defaultTimeout = 20 * time.Second

// fetchDocument issues the single GET a scraper is allowed per page. A
// non-200 response is not an error: it is logged and reported as ok=false
// so the caller yields zero records and the run moves on.
func fetchDocument(ctx context.Context, client *http.Client, logger *slog.Logger, pageURL string) (doc *goquery.Document, ok bool, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, false, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := client.Do(req)
	if err != nil {
		return nil, false, fmt.Errorf("request page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		if logger != nil {
			logger.Warn("page fetch returned non-200", "url", pageURL, "status", resp.StatusCode)
		}
		return nil, false, nil
	}

	doc, err = goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, false, fmt.Errorf("parse page: %w", err)
	}

	return doc, true, nil
}

// selectText extracts the trimmed text of the first node matching the
// selector inside a card. A missing or empty node yields the unknown value
// for that field only.
func selectText(card *goquery.Selection, selector string) domain.Field {
	node := card.Find(selector).First()
	if node.Length() == 0 {
		return domain.NoField()
	}

	text := strings.TrimSpace(node.Text())
	if text == "" {
		return domain.NoField()
	}
	return domain.Text(text)
}

// selectHref resolves the first matching link inside a card against the
// platform's base URL.
func selectHref(card *goquery.Selection, selector, base string) domain.Field {
	href, exists := card.Find(selector).First().Attr("href")
	if !exists || href == "" {
		return domain.NoField()
	}
	if strings.HasPrefix(href, "http") {
		return domain.Text(href)
	}
	return domain.Text(strings.TrimSuffix(base, "/") + href)
}
