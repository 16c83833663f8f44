package ports

import (
	"context"
	"time"

	"DealerScanner/internal/domain"
)

// ListingHistory is the persisted record of every observation across runs,
// keyed by listing identifier. The core reads the latest observation per
// identifier and appends new ones; it never deletes or rewrites rows.
type ListingHistory interface {
	LastSeen(ctx context.Context) (map[string]time.Time, error)
	Append(ctx context.Context, listings []domain.Listing) error
}

// RunSink receives the classified, deduplicated output of one run.
type RunSink interface {
	Export(ctx context.Context, listings []domain.Listing) error
}

// Notifier publishes the run summary to an external channel.
type Notifier interface {
	PublishSummary(ctx context.Context, summary string) error
}
