package overlay

import (
	"bytes"
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestExportImport_RoundTrip(t *testing.T) {
	timeNow = func() time.Time { return time.UnixMilli(5) }
	defer func() { timeNow = time.Now }()

	o := Empty()
	o.TogglePaper("X")
	status := StatusDone
	comment := "solid"
	o.SetPaperNote("X", PaperPatch{Status: &status, Comments: &comment})
	o.ToggleAuthor("~A1")
	o.SetAuthorComment("~A1", "follow")

	var buf bytes.Buffer
	if err := o.Export(&buf); err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	got, err := Import(&buf)
	if err != nil {
		t.Fatalf("Import() error = %v", err)
	}
	if !reflect.DeepEqual(got, o) {
		t.Errorf("round trip = %+v, want %+v", got, o)
	}
}

func TestExport_PrettyPrinted(t *testing.T) {
	var buf bytes.Buffer
	if err := Empty().Export(&buf); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "\n  ") {
		t.Errorf("Export() should be indented, got %q", buf.String())
	}
}

func TestImport_MissingFieldDefaulted(t *testing.T) {
	// authorComments absent entirely: defaulted, not an error.
	in := `{"favoritePapers": {}, "favoriteAuthors": ["a1"]}`

	o, err := Import(strings.NewReader(in))
	if err != nil {
		t.Fatalf("Import() error = %v", err)
	}
	if o.AuthorComments == nil || len(o.AuthorComments) != 0 {
		t.Errorf("AuthorComments = %v, want empty map", o.AuthorComments)
	}
	if !o.IsFavoriteAuthor("a1") {
		t.Error("favoriteAuthors should survive")
	}
}

func TestImport_Invalid(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"not json", `{{{`},
		{"array document", `[1, 2]`},
		{"bad status", `{"favoritePapers": {"X": {"status": "WIP"}}}`},
		{"rating too high", `{"favoritePapers": {"X": {"rating": 6}}}`},
		{"negative rating", `{"favoritePapers": {"X": {"rating": -1}}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Import(strings.NewReader(tt.in))
			if !errors.Is(err, ErrImportFormat) {
				t.Errorf("Import() error = %v, want ErrImportFormat", err)
			}
		})
	}
}

func TestImport_NullFieldsTolerated(t *testing.T) {
	// The original browser exports null for unset status/rating.
	in := `{"favoritePapers": {"X": {"status": null, "rating": null, "comments": "c", "timestamp": 1}}}`

	o, err := Import(strings.NewReader(in))
	if err != nil {
		t.Fatalf("Import() error = %v", err)
	}
	note := o.FavoritePapers["X"]
	if note.Status != StatusNone || note.Rating != 0 || note.Comments != "c" {
		t.Errorf("note = %+v", note)
	}
}
