package domain

import (
	"strconv"
	"time"
)

// Unknown is the sheet-facing rendering of a field the source page did not
// provide.
const Unknown = "N/A"

// Field is an optional text value extracted from a listing card. Source
// pages routinely omit or rearrange elements, so an absent value is normal
// comparable data for downstream components, not an error.
type Field struct {
	Value string
	Known bool
}

// Text wraps a value the source page did provide.
func Text(v string) Field {
	return Field{Value: v, Known: true}
}

// NoField marks a value missing from the source page.
func NoField() Field {
	return Field{}
}

// Or returns the value, or fallback when the value is unknown.
func (f Field) Or(fallback string) string {
	if !f.Known {
		return fallback
	}
	return f.Value
}

// String renders the export form, Unknown when absent.
func (f Field) String() string {
	return f.Or(Unknown)
}

// Age is an optional days-on-site measurement. Sub-day ages carry two
// decimal places; everything else is a whole number of days.
type Age struct {
	Days  float64
	Known bool
}

// KnownAge wraps a parsed days value.
func KnownAge(days float64) Age {
	return Age{Days: days, Known: true}
}

// String renders the export form, Unknown when the time text was
// unparseable.
func (a Age) String() string {
	if !a.Known {
		return Unknown
	}
	return strconv.FormatFloat(a.Days, 'f', -1, 64)
}

// Status classifies a listing against the identifiers seen in prior runs.
type Status string

const (
	StatusNew      Status = "new"
	StatusExisting Status = "existing"
)

// Listing is one normalized observation of a vehicle listing at scrape
// time, shared by every site scraper.
type Listing struct {
	ID         string
	DealerCode string
	ObservedAt time.Time
	Brand      string
	Title      Field
	Price      Field
	Mileage    Field
	Year       Field
	Location   Field
	ListedText Field
	Age        Age
	URL        Field
	Source     string
	Status     Status
	Stale      bool
}

// Dealer is one tracked seller. Dealers are configured externally and may
// post the same vehicles on several platforms.
type Dealer struct {
	Code string
	Name string
	URLs []string
}
