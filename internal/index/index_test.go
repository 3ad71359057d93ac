package index

import (
	"reflect"
	"testing"

	"github.com/paperdeck/paperdeck/internal/catalog"
)

func paper(title string, authors ...catalog.Author) catalog.Paper {
	return catalog.Paper{Title: title, Authors: authors}
}

func TestBuildAuthorIndex_GroupsByID(t *testing.T) {
	// Two distinct authors sharing a display name must not be merged.
	papers := []catalog.Paper{
		paper("P1", catalog.Author{Name: "Wei Chen", ID: "~Wei_Chen1"}),
		paper("P2", catalog.Author{Name: "Wei Chen", ID: "~Wei_Chen2"}),
		paper("P3", catalog.Author{Name: "Wei Chen", ID: "~Wei_Chen1"}),
	}

	idx := BuildAuthorIndex(papers)
	if len(idx) != 2 {
		t.Fatalf("len(idx) = %d, want 2 distinct authors", len(idx))
	}
	if got := len(idx["~Wei_Chen1"].Papers); got != 2 {
		t.Errorf("~Wei_Chen1 has %d papers, want 2", got)
	}
	if got := len(idx["~Wei_Chen2"].Papers); got != 1 {
		t.Errorf("~Wei_Chen2 has %d papers, want 1", got)
	}
}

func TestBuildAuthorIndex_CatalogOrderAndFirstName(t *testing.T) {
	papers := []catalog.Paper{
		paper("First", catalog.Author{Name: "J. Smith", ID: "~S1"}),
		paper("Second", catalog.Author{Name: "Jane Smith", ID: "~S1"}),
	}

	idx := BuildAuthorIndex(papers)
	g := idx["~S1"]
	if g.Name != "J. Smith" {
		t.Errorf("Name = %q, want display name from first occurrence", g.Name)
	}
	if g.Papers[0].Title != "First" || g.Papers[1].Title != "Second" {
		t.Errorf("papers out of catalog order: %v", g.Papers)
	}
}

func TestSortedIDs(t *testing.T) {
	idx := map[string]*AuthorGroup{
		"~B1": {Name: "Beth"},
		"~A2": {Name: "Ada"},
		"~A1": {Name: "Ada"},
	}
	got := SortedIDs(idx)
	want := []string{"~A1", "~A2", "~B1"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SortedIDs() = %v, want %v", got, want)
	}
}

func TestKeywordSet(t *testing.T) {
	papers := []catalog.Paper{
		{Title: "P1", Keywords: []string{"rl", "robotics"}},
		{Title: "P2", Keywords: []string{"rl", ""}},
		{Title: "P3"},
	}
	got := KeywordSet(papers)
	want := []string{"rl", "robotics"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("KeywordSet() = %v, want %v", got, want)
	}
}

func TestAreaSet(t *testing.T) {
	papers := []catalog.Paper{
		{Title: "P1", PrimaryArea: "optimization"},
		{Title: "P2", PrimaryArea: ""},
		{Title: "P3", PrimaryArea: "alignment"},
		{Title: "P4", PrimaryArea: "optimization"},
	}
	got := AreaSet(papers)
	want := []string{"alignment", "optimization"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("AreaSet() = %v, want %v", got, want)
	}
}
