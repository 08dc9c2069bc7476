package models

// SubHeading is a named group of entries sharing one category.
type SubHeading struct {
	// Name is the category value shared by the entries.
	Name string
	// Entries holds the entries in row order.
	Entries []Entry
}

// GroupedSection splits a section's entries by category.
type GroupedSection struct {
	// SubHeadings lists categorized entries in first-appearance order.
	SubHeadings []SubHeading
	// DirectLinks holds entries without a category.
	DirectLinks []Entry
}
