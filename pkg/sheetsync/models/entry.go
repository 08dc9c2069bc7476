// Package models defines data structures for resource synchronization.
package models

// Entry represents one resource listing taken from a spreadsheet row.
type Entry struct {
	// Name is the display name of the resource (column A).
	Name string `json:"name" yaml:"name"`
	// URL is the link to the resource (column B).
	URL string `json:"url" yaml:"url"`
	// Category is the optional grouping label (column C).
	Category string `json:"category" yaml:"category"`
}

// IsEmpty reports whether the entry carries neither a name nor a URL.
// Such entries never reach the output.
func (e Entry) IsEmpty() bool {
	return e.Name == "" && e.URL == ""
}
