package source

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

// Workbook reads tabs from a local xlsx export of the spreadsheet.
type Workbook struct {
	file *excelize.File
}

var _ Source = (*Workbook)(nil)

// OpenWorkbook opens an xlsx file for reading.
func OpenWorkbook(path string) (*Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open workbook %s", path)
	}
	return &Workbook{file: f}, nil
}

// NewWorkbook wraps an already opened excelize file.
func NewWorkbook(f *excelize.File) *Workbook {
	return &Workbook{file: f}
}

// Close releases the underlying workbook.
func (w *Workbook) Close() error {
	return w.file.Close()
}

// SheetTitles returns the worksheet names in workbook order.
func (w *Workbook) SheetTitles(ctx context.Context) ([]string, error) {
	return w.file.GetSheetList(), nil
}

// ReadRange returns the cells of the given column span for every row of
// the sheet. Trailing empty cells are trimmed as excelize does.
func (w *Workbook) ReadRange(ctx context.Context, title, columns string) ([][]string, error) {
	first, last, err := ColumnSpan(columns)
	if err != nil {
		return nil, err
	}

	rows, err := w.file.GetRows(title)
	if err != nil {
		return nil, errors.Wrapf(err, "read sheet %q", title)
	}

	result := make([][]string, 0, len(rows))
	for _, row := range rows {
		result = append(result, sliceColumns(row, first, last))
	}
	return result, nil
}

// ColumnSpan parses a column-only range like A:C into 1-based column
// numbers. A single column like B is accepted as B:B.
func ColumnSpan(columns string) (first, last int, err error) {
	parts := strings.Split(strings.ReplaceAll(columns, "$", ""), ":")
	if len(parts) > 2 {
		return 0, 0, fmt.Errorf("invalid column range %q", columns)
	}

	first, err = excelize.ColumnNameToNumber(parts[0])
	if err != nil {
		return 0, 0, errors.Wrapf(err, "invalid column range %q", columns)
	}
	last = first
	if len(parts) == 2 {
		last, err = excelize.ColumnNameToNumber(parts[1])
		if err != nil {
			return 0, 0, errors.Wrapf(err, "invalid column range %q", columns)
		}
	}
	if last < first {
		first, last = last, first
	}
	return first, last, nil
}

// sliceColumns returns the cells of row between the 1-based columns first
// and last, inclusive.
func sliceColumns(row []string, first, last int) []string {
	if first > len(row) {
		return []string{}
	}
	if last > len(row) {
		last = len(row)
	}
	out := make([]string, last-first+1)
	copy(out, row[first-1:last])
	return out
}
