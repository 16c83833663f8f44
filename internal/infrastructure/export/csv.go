package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"DealerScanner/internal/domain"
	"DealerScanner/internal/ports"
)

// CSVSink writes one timestamped CSV file per run into a directory,
// matching the backup files the original tooling produced. Intermediate
// directories are created automatically.
type CSVSink struct {
	dir string
	now func() time.Time
}

var _ ports.RunSink = (*CSVSink)(nil)

// NewCSVSink targets the given output directory.
func NewCSVSink(dir string) *CSVSink {
	return &CSVSink{dir: dir, now: time.Now}
}

// Export writes the classified run. An empty run produces no file.
func (s *CSVSink) Export(_ context.Context, listings []domain.Listing) error {
	if len(listings) == 0 {
		return nil
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("csv: create output dir: %w", err)
	}

	path := filepath.Join(s.dir, fmt.Sprintf("listings_%s.csv", s.now().Format("20060102_150405")))
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("csv: create file %q: %w", path, err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(columns); err != nil {
		_ = f.Close()
		return fmt.Errorf("csv: write header: %w", err)
	}

	for _, listing := range listings {
		if err := w.Write(listingRow(listing)); err != nil {
			_ = f.Close()
			return fmt.Errorf("csv: write row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		_ = f.Close()
		return fmt.Errorf("csv: flush: %w", err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("csv: close file: %w", err)
	}

	return nil
}
