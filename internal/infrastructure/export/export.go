// Package export holds the run sinks. Both mirror the column layout of the
// spreadsheet "database" tab the dashboard reads, plus the stale flag.
package export

import (
	"strconv"

	"DealerScanner/internal/domain"
)

var columns = []string{
	"car_id", "dealer_code", "created at", "Car Brand", "Car Name", "Price",
	"Kilometrage", "Year", "Location", "Listed", "Days on Website",
	"Listing URL", "status", "platform", "stale",
}

func listingRow(l domain.Listing) []string {
	return []string{
		l.ID,
		l.DealerCode,
		l.ObservedAt.Format("2006-01-02 15:04:05"),
		l.Brand,
		l.Title.String(),
		l.Price.String(),
		l.Mileage.String(),
		l.Year.String(),
		l.Location.String(),
		l.ListedText.String(),
		l.Age.String(),
		l.URL.String(),
		string(l.Status),
		l.Source,
		strconv.FormatBool(l.Stale),
	}
}
