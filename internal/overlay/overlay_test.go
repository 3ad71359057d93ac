package overlay

import (
	"testing"
	"time"
)

// fixNow pins the overlay clock for a test.
func fixNow(t *testing.T, ms int64) {
	t.Helper()
	orig := timeNow
	timeNow = func() time.Time { return time.UnixMilli(ms) }
	t.Cleanup(func() { timeNow = orig })
}

func TestTogglePaper_Involution(t *testing.T) {
	fixNow(t, 1000)
	o := Empty()

	if fav := o.TogglePaper("X"); !fav {
		t.Error("first toggle should favorite")
	}
	if !o.IsFavoritePaper("X") {
		t.Error("X should be favorited")
	}
	note := o.FavoritePapers["X"]
	if note.Status != StatusNone || note.Rating != 0 || note.Comments != "" {
		t.Errorf("fresh note = %+v, want zero note", note)
	}
	if note.Timestamp != 1000 {
		t.Errorf("Timestamp = %d, want 1000", note.Timestamp)
	}

	if fav := o.TogglePaper("X"); fav {
		t.Error("second toggle should un-favorite")
	}
	if o.IsFavoritePaper("X") {
		t.Error("X should no longer be favorited")
	}
}

func TestTogglePaper_DiscardsNote(t *testing.T) {
	fixNow(t, 1000)
	o := Empty()
	o.TogglePaper("X")
	comment := "read this"
	o.SetPaperNote("X", PaperPatch{Comments: &comment})

	o.TogglePaper("X") // un-favorite
	o.TogglePaper("X") // re-favorite

	if got := o.FavoritePapers["X"].Comments; got != "" {
		t.Errorf("Comments = %q, want empty (note discarded on un-favorite)", got)
	}
}

func TestToggleAuthor_RemovesComment(t *testing.T) {
	fixNow(t, 1000)
	o := Empty()

	o.ToggleAuthor("~A1")
	o.ToggleAuthor("~B1")
	o.SetAuthorComment("~A1", "great talks")

	if fav := o.ToggleAuthor("~A1"); fav {
		t.Error("toggle of favorited author should un-favorite")
	}
	if o.IsFavoriteAuthor("~A1") {
		t.Error("~A1 should be removed")
	}
	if _, ok := o.AuthorComments["~A1"]; ok {
		t.Error("un-favoriting should discard the author comment")
	}
	if !o.IsFavoriteAuthor("~B1") {
		t.Error("~B1 should be untouched")
	}
}

func TestToggleAuthor_PreservesOrder(t *testing.T) {
	o := Empty()
	for _, id := range []string{"~C1", "~A1", "~B1"} {
		o.ToggleAuthor(id)
	}
	want := []string{"~C1", "~A1", "~B1"}
	for i, id := range want {
		if o.FavoriteAuthors[i] != id {
			t.Fatalf("FavoriteAuthors = %v, want %v", o.FavoriteAuthors, want)
		}
	}
}

func TestSetPaperNote_PartialMerge(t *testing.T) {
	fixNow(t, 1000)
	o := Empty()
	o.TogglePaper("X")

	fixNow(t, 2000)
	rating := 4
	note := o.SetPaperNote("X", PaperPatch{Rating: &rating})

	if note.Status != StatusNone {
		t.Errorf("Status = %q, want unset", note.Status)
	}
	if note.Rating != 4 {
		t.Errorf("Rating = %d, want 4", note.Rating)
	}
	if note.Comments != "" {
		t.Errorf("Comments = %q, want empty", note.Comments)
	}
	if note.Timestamp != 2000 {
		t.Errorf("Timestamp = %d, want 2000 (updated)", note.Timestamp)
	}

	// Later patch of another field keeps the rating.
	status := StatusDone
	note = o.SetPaperNote("X", PaperPatch{Status: &status})
	if note.Rating != 4 || note.Status != StatusDone {
		t.Errorf("merged note = %+v", note)
	}
}

func TestSetPaperNote_ImplicitEntry(t *testing.T) {
	fixNow(t, 1000)
	o := Empty()

	// Annotating a non-favorited paper creates the entry.
	status := StatusTodo
	o.SetPaperNote("Y", PaperPatch{Status: &status})
	if !o.IsFavoritePaper("Y") {
		t.Error("SetPaperNote should create the entry for a non-favorited paper")
	}
}

func TestSetAuthorComment_Replaces(t *testing.T) {
	fixNow(t, 1000)
	o := Empty()
	o.SetAuthorComment("~A1", "first")

	fixNow(t, 2000)
	note := o.SetAuthorComment("~A1", "second")
	if note.Comments != "second" || note.Timestamp != 2000 {
		t.Errorf("note = %+v", note)
	}
}

func TestSetAuthorComment_DoesNotFavorite(t *testing.T) {
	fixNow(t, 1000)
	o := Empty()

	o.SetAuthorComment("~A1", "great talks")
	if o.IsFavoriteAuthor("~A1") {
		t.Error("commenting must not implicitly favorite the author")
	}
	if o.AuthorComments["~A1"].Comments != "great talks" {
		t.Error("comment should be stored regardless of favorite state")
	}
}

func TestNormalize_DefaultsIndependently(t *testing.T) {
	o := Overlay{FavoriteAuthors: []string{"~A1"}}
	o.normalize()
	if o.FavoritePapers == nil || o.AuthorComments == nil {
		t.Error("normalize should default missing fields")
	}
	if len(o.FavoriteAuthors) != 1 {
		t.Error("normalize must not touch populated fields")
	}
}
