package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"DealerScanner/internal/domain"
	"DealerScanner/internal/ports"
)

const observationsTable = "listing_observations"

// PostgresHistory persists listing observations into Postgres. The table is
// append-only: every run inserts one row per observed listing and existing
// rows are never updated or deleted.
type PostgresHistory struct {
	db      *sql.DB
	builder sq.StatementBuilderType
}

var _ ports.ListingHistory = (*PostgresHistory)(nil)

// NewPostgresHistory wires a sql.DB implementation.
func NewPostgresHistory(db *sql.DB) *PostgresHistory {
	return &PostgresHistory{
		db:      db,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// LastSeen returns every previously observed identifier with its most
// recent observation time.
func (h *PostgresHistory) LastSeen(ctx context.Context) (map[string]time.Time, error) {
	if h.db == nil {
		return map[string]time.Time{}, nil
	}

	query, args, err := h.builder.
		Select("listing_id", "MAX(observed_at) AS last_seen").
		From(observationsTable).
		GroupBy("listing_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build last-seen query: %w", err)
	}

	rows, err := h.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query last seen: %w", err)
	}

	result := make(map[string]time.Time)
	for rows.Next() {
		var (
			id       string
			observed time.Time
		)
		if err := rows.Scan(&id, &observed); err != nil {
			_ = rows.Close()
			return nil, fmt.Errorf("scan observation: %w", err)
		}
		result[id] = observed
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		_ = rows.Close()
		return nil, fmt.Errorf("rows iteration: %w", rowsErr)
	}

	if closeErr := rows.Close(); closeErr != nil {
		return nil, fmt.Errorf("close rows: %w", closeErr)
	}

	return result, nil
}

// Append inserts the current run's observations.
func (h *PostgresHistory) Append(ctx context.Context, listings []domain.Listing) error {
	if h.db == nil || len(listings) == 0 {
		return nil
	}

	insert := h.builder.
		Insert(observationsTable).
		Columns("listing_id", "dealer_code", "observed_at", "brand", "title", "price",
			"mileage", "model_year", "location", "listed_text", "age_days",
			"listing_url", "source", "status")

	for _, l := range listings {
		insert = insert.Values(l.ID, l.DealerCode, l.ObservedAt, l.Brand, l.Title.String(),
			l.Price.String(), l.Mileage.String(), l.Year.String(), l.Location.String(),
			l.ListedText.String(), l.Age.String(), l.URL.String(), l.Source, string(l.Status))
	}

	query, args, err := insert.ToSql()
	if err != nil {
		return fmt.Errorf("build append query: %w", err)
	}

	if _, err := h.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("append observations: %w", err)
	}

	return nil
}
