package usecase

import (
	"time"

	"DealerScanner/internal/domain"
)

// ClassifyStatus marks each record of the current run new or existing
// against the identifiers observed in prior runs. Status and staleness are
// orthogonal: classification never touches the Stale flag.
func ClassifyStatus(run []domain.Listing, lastSeen map[string]time.Time) []domain.Listing {
	for i := range run {
		if _, ok := lastSeen[run[i].ID]; ok {
			run[i].Status = domain.StatusExisting
		} else {
			run[i].Status = domain.StatusNew
		}
	}
	return run
}

// StaleIdentifiers reports every identifier whose latest observation is
// older than the freshness window, measured back from the newest
// observation anywhere in history. The current run plays no special role:
// an identifier re-observed before the cutoff is still stale.
func StaleIdentifiers(lastSeen map[string]time.Time, windowDays float64) map[string]bool {
	var newest time.Time
	for _, observed := range lastSeen {
		if observed.After(newest) {
			newest = observed
		}
	}

	stale := make(map[string]bool)
	if newest.IsZero() {
		return stale
	}

	cutoff := newest.Add(-time.Duration(windowDays * 24 * float64(time.Hour)))
	for id, observed := range lastSeen {
		if observed.Before(cutoff) {
			stale[id] = true
		}
	}
	return stale
}
