package parser

import "github.com/ukaji3/sheetsync-go/pkg/sheetsync/models"

// GroupEntries splits entries into sub-headings keyed by category and
// direct links for entries without one. Sub-headings appear in the order
// their category is first seen.
func GroupEntries(entries []models.Entry) models.GroupedSection {
	var grouped models.GroupedSection
	index := make(map[string]int)

	for _, entry := range entries {
		if entry.Category == "" {
			grouped.DirectLinks = append(grouped.DirectLinks, entry)
			continue
		}
		i, ok := index[entry.Category]
		if !ok {
			i = len(grouped.SubHeadings)
			index[entry.Category] = i
			grouped.SubHeadings = append(grouped.SubHeadings, models.SubHeading{Name: entry.Category})
		}
		grouped.SubHeadings[i].Entries = append(grouped.SubHeadings[i].Entries, entry)
	}

	return grouped
}
