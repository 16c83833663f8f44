package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"DealerScanner/internal/domain"
	"DealerScanner/internal/ports"
)

const xlsxSheet = "database"

// XLSXSink rewrites one workbook per run with a single "database" sheet,
// the layout the dashboard consumes.
type XLSXSink struct {
	path string
}

var _ ports.RunSink = (*XLSXSink)(nil)

// NewXLSXSink targets the given workbook path.
func NewXLSXSink(path string) *XLSXSink {
	return &XLSXSink{path: path}
}

// Export writes the classified run. An empty run leaves any previous
// workbook untouched.
func (s *XLSXSink) Export(_ context.Context, listings []domain.Listing) error {
	if len(listings) == 0 {
		return nil
	}

	f := excelize.NewFile()
	defer func() {
		_ = f.Close()
	}()

	if err := f.SetSheetName("Sheet1", xlsxSheet); err != nil {
		return fmt.Errorf("xlsx: rename sheet: %w", err)
	}

	if err := writeRow(f, 1, columns); err != nil {
		return err
	}
	for i, listing := range listings {
		if err := writeRow(f, i+2, listingRow(listing)); err != nil {
			return err
		}
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("xlsx: create output dir: %w", err)
		}
	}

	if err := f.SaveAs(s.path); err != nil {
		return fmt.Errorf("xlsx: save %q: %w", s.path, err)
	}

	return nil
}

func writeRow(f *excelize.File, row int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("xlsx: row %d: %w", row, err)
	}

	cells := make([]any, len(values))
	for i, v := range values {
		cells[i] = v
	}

	if err := f.SetSheetRow(xlsxSheet, cell, &cells); err != nil {
		return fmt.Errorf("xlsx: write row %d: %w", row, err)
	}

	return nil
}
