// Package source provides readers for the spreadsheet that backs the
// resources listing.
package source

import (
	"context"
	"strings"
)

// ColumnRange is the column span read from every tab: name, url, category.
const ColumnRange = "A:C"

// Source lists the tabs of a spreadsheet and reads cell ranges from them.
type Source interface {
	// SheetTitles returns the tab titles in spreadsheet order.
	SheetTitles(ctx context.Context) ([]string, error)
	// ReadRange returns the rows of the given column span of one tab.
	// Missing trailing cells may be absent from a row.
	ReadRange(ctx context.Context, title, columns string) ([][]string, error)
}

// A1Range builds an A1 notation range for a tab, quoting the title.
// For example A1Range("Birthland Tours", "A:C") is 'Birthland Tours'!A:C.
func A1Range(title, columns string) string {
	return "'" + strings.ReplaceAll(title, "'", "''") + "'!" + columns
}
