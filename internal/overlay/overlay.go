// Package overlay manages the user's personal data layered over the
// catalog: favorite papers and authors, notes, and export/import.
//
// The overlay is keyed by paper title and author ID. It is the only
// mutable state in the system; the catalog itself is never written.
package overlay

import "time"

// Paper note status values. The zero value means unset.
const (
	StatusNone = ""
	StatusTodo = "TODO"
	StatusDone = "Done"
)

// timeNow is swapped out in tests.
var timeNow = time.Now

// PaperNote holds the user's annotation for a favorited paper.
// Rating 0 means unset; valid ratings are 1 through 5.
type PaperNote struct {
	Status    string `json:"status"`
	Rating    int    `json:"rating"`
	Comments  string `json:"comments"`
	Timestamp int64  `json:"timestamp"`
}

// AuthorNote holds the user's comment on a favorited author.
type AuthorNote struct {
	Comments  string `json:"comments"`
	Timestamp int64  `json:"timestamp"`
}

// Overlay is the user's personal data. The key set of FavoritePapers
// defines the favorite-papers set; FavoriteAuthors preserves the order
// in which authors were favorited.
type Overlay struct {
	FavoritePapers  map[string]PaperNote  `json:"favoritePapers"`
	FavoriteAuthors []string              `json:"favoriteAuthors"`
	AuthorComments  map[string]AuthorNote `json:"authorComments"`
}

// Empty returns a fresh overlay with all fields initialized.
func Empty() Overlay {
	return Overlay{
		FavoritePapers:  map[string]PaperNote{},
		FavoriteAuthors: []string{},
		AuthorComments:  map[string]AuthorNote{},
	}
}

// normalize defaults any missing top-level field independently so
// partially-populated data (old exports, hand-edited files) round-trips
// without discarding the rest of the record.
func (o *Overlay) normalize() {
	if o.FavoritePapers == nil {
		o.FavoritePapers = map[string]PaperNote{}
	}
	if o.FavoriteAuthors == nil {
		o.FavoriteAuthors = []string{}
	}
	if o.AuthorComments == nil {
		o.AuthorComments = map[string]AuthorNote{}
	}
}

// IsFavoritePaper reports whether the title is favorited.
func (o Overlay) IsFavoritePaper(title string) bool {
	_, ok := o.FavoritePapers[title]
	return ok
}

// IsFavoriteAuthor reports whether the author ID is favorited.
func (o Overlay) IsFavoriteAuthor(id string) bool {
	for _, a := range o.FavoriteAuthors {
		if a == id {
			return true
		}
	}
	return false
}

// TogglePaper flips favorite membership for a title and reports the new
// state. Favoriting creates a fresh note; un-favoriting discards the
// note along with the entry.
func (o *Overlay) TogglePaper(title string) bool {
	o.normalize()
	if _, ok := o.FavoritePapers[title]; ok {
		delete(o.FavoritePapers, title)
		return false
	}
	o.FavoritePapers[title] = PaperNote{Timestamp: timeNow().UnixMilli()}
	return true
}

// ToggleAuthor flips favorite membership for an author ID and reports
// the new state. Un-favoriting also discards the author's comment.
func (o *Overlay) ToggleAuthor(id string) bool {
	o.normalize()
	for i, a := range o.FavoriteAuthors {
		if a == id {
			o.FavoriteAuthors = append(o.FavoriteAuthors[:i], o.FavoriteAuthors[i+1:]...)
			delete(o.AuthorComments, id)
			return false
		}
	}
	o.FavoriteAuthors = append(o.FavoriteAuthors, id)
	return true
}

// PaperPatch carries a partial note update; nil fields are left as-is.
type PaperPatch struct {
	Status   *string
	Rating   *int
	Comments *string
}

// SetPaperNote merges the patch into the paper's note, creating the
// entry if the paper was not yet favorited, and stamps the result with
// the current time.
func (o *Overlay) SetPaperNote(title string, patch PaperPatch) PaperNote {
	o.normalize()
	note := o.FavoritePapers[title]
	if patch.Status != nil {
		note.Status = *patch.Status
	}
	if patch.Rating != nil {
		note.Rating = *patch.Rating
	}
	if patch.Comments != nil {
		note.Comments = *patch.Comments
	}
	note.Timestamp = timeNow().UnixMilli()
	o.FavoritePapers[title] = note
	return note
}

// SetAuthorComment replaces the author's comment text and stamps it
// with the current time. The store does not require the author to be
// favorited; the UI flow does.
func (o *Overlay) SetAuthorComment(id, comments string) AuthorNote {
	o.normalize()
	note := AuthorNote{Comments: comments, Timestamp: timeNow().UnixMilli()}
	o.AuthorComments[id] = note
	return note
}
