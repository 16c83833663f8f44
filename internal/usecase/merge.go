package usecase

import (
	"strings"

	"DealerScanner/internal/domain"
)

// mergeKey identifies the same physical vehicle across platforms. Price and
// source site are excluded on purpose: the same car posted on two platforms
// merges even when the postings disagree on price.
type mergeKey struct {
	title   string
	year    string
	mileage string
}

// MergeSources collapses one dealer's records observed on more than one
// platform into a single logical listing per vehicle. The first record seen
// for a key keeps all its scalar fields; only Source accumulates, as a
// comma-joined list of every platform that produced a match, in encounter
// order without duplicates. Output preserves first-seen order.
func MergeSources(listings []domain.Listing) []domain.Listing {
	index := make(map[mergeKey]int, len(listings))
	merged := make([]domain.Listing, 0, len(listings))

	for _, listing := range listings {
		key := mergeKey{
			title:   listing.Title.String(),
			year:    listing.Year.String(),
			mileage: listing.Mileage.String(),
		}

		at, seen := index[key]
		if !seen {
			index[key] = len(merged)
			merged = append(merged, listing)
			continue
		}

		if !hasSource(merged[at].Source, listing.Source) {
			merged[at].Source += "," + listing.Source
		}
	}

	return merged
}

func hasSource(joined, name string) bool {
	for _, source := range strings.Split(joined, ",") {
		if source == name {
			return true
		}
	}
	return false
}
