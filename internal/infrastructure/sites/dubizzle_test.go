package sites

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"DealerScanner/internal/domain"
)

const dubizzlePageHTML = `
<ul>
  <li aria-label="Listing">
    <a href="/ad/corolla-123"></a>
    <p class="_21aa22f1">Toyota Corolla 1.6</p>
    <span class="bb146142">EGP 900,000</span>
    <span class="_3e1113f0">45,000 km</span>
    <span class="_3e1113f0 _600acaba">2020</span>
    <span aria-label="Creation date">2 days ago</span>
    <span class="_61e1298c">Nasr City, Cairo</span>
  </li>
  <li aria-label="Listing">
    <p class="_21aa22f1">Fiat Tipo</p>
  </li>
</ul>`

func TestDubizzleFetchExtractsCards(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("User-Agent"); got != userAgent {
			t.Errorf("unexpected user agent: %q", got)
		}
		_, _ = w.Write([]byte(dubizzlePageHTML))
	}))
	defer server.Close()

	d := NewDubizzle(server.Client(), nil)

	listings, err := d.Fetch(context.Background(), server.URL, "D001")
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(listings) != 2 {
		t.Fatalf("expected 2 listings, got %d", len(listings))
	}

	full := listings[0]
	if full.Title.String() != "Toyota Corolla 1.6" {
		t.Fatalf("unexpected title: %q", full.Title.String())
	}
	if full.Brand != "Toyota" {
		t.Fatalf("unexpected brand: %q", full.Brand)
	}
	// Dubizzle price text is taken verbatim.
	if full.Price.String() != "EGP 900,000" {
		t.Fatalf("unexpected price: %q", full.Price.String())
	}
	if full.Mileage.String() != "45,000 km" {
		t.Fatalf("unexpected mileage: %q", full.Mileage.String())
	}
	if full.Year.String() != "2020" {
		t.Fatalf("unexpected year: %q", full.Year.String())
	}
	if !full.Age.Known || full.Age.Days != 2 {
		t.Fatalf("unexpected age: %+v", full.Age)
	}
	if full.URL.String() != dubizzleBaseURL+"/ad/corolla-123" {
		t.Fatalf("unexpected url: %q", full.URL.String())
	}
	if full.Source != "dubizzle" {
		t.Fatalf("unexpected source: %q", full.Source)
	}
	if full.ID == "" {
		t.Fatalf("listing has no identifier")
	}

	// The sparse second card yields unknowns, never an error.
	sparse := listings[1]
	if sparse.Price.Known || sparse.Year.Known || sparse.URL.Known || sparse.Age.Known {
		t.Fatalf("missing elements must yield unknown fields: %+v", sparse)
	}
	if sparse.Brand != "Fiat" {
		t.Fatalf("unexpected brand on sparse card: %q", sparse.Brand)
	}

	if !listings[0].ObservedAt.Equal(listings[1].ObservedAt) {
		t.Fatalf("cards from one fetch must share an observation time")
	}
}

func TestDubizzleFetchNon200YieldsNothing(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	d := NewDubizzle(server.Client(), nil)

	listings, err := d.Fetch(context.Background(), server.URL, "D001")
	if err != nil {
		t.Fatalf("non-200 must not be an error: %v", err)
	}
	if len(listings) != 0 {
		t.Fatalf("non-200 must yield zero listings, got %d", len(listings))
	}
}

func TestDubizzleFetchNetworkError(t *testing.T) {
	t.Parallel()

	d := NewDubizzle(nil, nil)

	if _, err := d.Fetch(context.Background(), "http://127.0.0.1:1/unreachable", "D001"); err == nil {
		t.Fatalf("expected a network error")
	}
}

func TestDubizzleUnknownTitleStaysUnknown(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<li aria-label="Listing"><span class="bb146142">EGP 1</span></li>`))
	}))
	defer server.Close()

	d := NewDubizzle(server.Client(), nil)

	listings, err := d.Fetch(context.Background(), server.URL, "D001")
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(listings) != 1 {
		t.Fatalf("expected 1 listing, got %d", len(listings))
	}
	if listings[0].Brand != domain.Unknown {
		t.Fatalf("titleless card must classify as unknown brand, got %q", listings[0].Brand)
	}
}
