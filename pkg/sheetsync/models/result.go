package models

import "time"

// Section is the ordered list of entries produced from one sheet.
type Section struct {
	// Name is the sheet title the section was built from.
	Name string
	// Entries holds the normalized entries in row order.
	Entries []Entry
}

// Sections is an ordered mapping from sheet name to entries.
// Order follows sheet enumeration order.
type Sections []Section

// Get returns the entries stored under name.
func (s Sections) Get(name string) ([]Entry, bool) {
	for _, section := range s {
		if section.Name == name {
			return section.Entries, true
		}
	}
	return nil, false
}

// Names returns the section names in order.
func (s Sections) Names() []string {
	names := make([]string, 0, len(s))
	for _, section := range s {
		names = append(names, section.Name)
	}
	return names
}

// EntryCount returns the number of entries across all sections.
func (s Sections) EntryCount() int {
	n := 0
	for _, section := range s {
		n += len(section.Entries)
	}
	return n
}

// SyncResult is the generated artifact consumed by the site templates.
type SyncResult struct {
	// LastUpdated is the generation time, not the time the data changed.
	LastUpdated time.Time
	// SpreadsheetID identifies the source spreadsheet.
	SpreadsheetID string
	// Sections maps sheet names to their entries.
	Sections Sections
}
