// Package output provides serialization of sync results for the site
// data directory.
package output

import (
	"fmt"
	"time"

	"github.com/ukaji3/sheetsync-go/pkg/sheetsync/models"
	"github.com/ukaji3/sheetsync-go/pkg/sheetsync/parser"
	"gopkg.in/yaml.v2"
)

// Layout selects how each section is shaped in the data file.
type Layout string

const (
	// LayoutFlat writes each section as a list of entries.
	LayoutFlat Layout = "flat"
	// LayoutGrouped writes each section as sub_headings keyed by category
	// plus direct_links for uncategorized entries.
	LayoutGrouped Layout = "grouped"
)

// ParseLayout validates a layout name. An empty name selects LayoutFlat.
func ParseLayout(s string) (Layout, error) {
	switch Layout(s) {
	case "", LayoutFlat:
		return LayoutFlat, nil
	case LayoutGrouped:
		return LayoutGrouped, nil
	default:
		return "", fmt.Errorf("invalid layout: %s (must be flat or grouped)", s)
	}
}

// TimestampFormat is the layout of last_updated.
const TimestampFormat = time.RFC3339

// Document builds the ordered document tree for result. Sections without
// entries are omitted.
func Document(result *models.SyncResult, layout Layout) yaml.MapSlice {
	sections := yaml.MapSlice{}
	for _, section := range result.Sections {
		if len(section.Entries) == 0 {
			continue
		}
		var value interface{} = section.Entries
		if layout == LayoutGrouped {
			value = groupedSection(parser.GroupEntries(section.Entries))
		}
		sections = append(sections, yaml.MapItem{Key: section.Name, Value: value})
	}

	return yaml.MapSlice{
		{Key: "last_updated", Value: result.LastUpdated.UTC().Format(TimestampFormat)},
		{Key: "spreadsheet_id", Value: result.SpreadsheetID},
		{Key: "sections", Value: sections},
	}
}

func groupedSection(grouped models.GroupedSection) yaml.MapSlice {
	out := yaml.MapSlice{}
	if len(grouped.SubHeadings) > 0 {
		subHeadings := yaml.MapSlice{}
		for _, sub := range grouped.SubHeadings {
			subHeadings = append(subHeadings, yaml.MapItem{Key: sub.Name, Value: sub.Entries})
		}
		out = append(out, yaml.MapItem{Key: "sub_headings", Value: subHeadings})
	}
	if len(grouped.DirectLinks) > 0 {
		out = append(out, yaml.MapItem{Key: "direct_links", Value: grouped.DirectLinks})
	}
	return out
}
