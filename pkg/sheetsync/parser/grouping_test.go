package parser

import (
	"reflect"
	"testing"

	"github.com/ukaji3/sheetsync-go/pkg/sheetsync/models"
)

func TestGroupEntries(t *testing.T) {
	entries := []models.Entry{
		{Name: "a", Category: "Camps"},
		{Name: "b"},
		{Name: "c", Category: "Tours"},
		{Name: "d", Category: "Camps"},
		{Name: "e"},
	}

	got := GroupEntries(entries)

	expected := models.GroupedSection{
		SubHeadings: []models.SubHeading{
			{Name: "Camps", Entries: []models.Entry{
				{Name: "a", Category: "Camps"},
				{Name: "d", Category: "Camps"},
			}},
			{Name: "Tours", Entries: []models.Entry{
				{Name: "c", Category: "Tours"},
			}},
		},
		DirectLinks: []models.Entry{{Name: "b"}, {Name: "e"}},
	}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("GroupEntries() = %+v, expected %+v", got, expected)
	}
}

func TestGroupEntriesEmpty(t *testing.T) {
	got := GroupEntries(nil)
	if len(got.SubHeadings) != 0 || len(got.DirectLinks) != 0 {
		t.Errorf("Expected empty grouping, got %+v", got)
	}
}
