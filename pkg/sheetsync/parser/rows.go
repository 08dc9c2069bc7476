// Package parser converts raw spreadsheet rows into resource entries.
package parser

import (
	"strings"

	"github.com/ukaji3/sheetsync-go/pkg/sheetsync/models"
)

// Column positions within a row.
const (
	ColumnName = iota
	ColumnURL
	ColumnCategory
)

// Options configures row normalization.
type Options struct {
	// CleanURLs enables scheme completion of the url column.
	CleanURLs bool
}

// NormalizeRows converts the raw rows of one sheet into entries.
// The first row is the header and is always discarded. Rows without
// both a name and a URL are dropped; row order is preserved.
func NormalizeRows(rows [][]string, opts Options) []models.Entry {
	if len(rows) < 2 {
		return nil
	}

	var result []models.Entry
	for _, row := range rows[1:] {
		entry := models.Entry{
			Name:     cell(row, ColumnName),
			URL:      cell(row, ColumnURL),
			Category: cell(row, ColumnCategory),
		}
		if entry.IsEmpty() {
			continue
		}
		if opts.CleanURLs {
			entry.URL = CleanURL(entry.URL)
		}
		result = append(result, entry)
	}

	return result
}

// cell returns the trimmed value at idx, or "" when the row is too short.
func cell(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
