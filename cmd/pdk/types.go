package main

import (
	"github.com/paperdeck/paperdeck/internal/catalog"
	"github.com/paperdeck/paperdeck/internal/overlay"
)

// PaperView is a paper with derived and overlay fields attached, as
// emitted by the papers, get, and favorites commands.
type PaperView struct {
	Title         string             `json:"title"`
	Authors       []catalog.Author   `json:"authors"`
	Abstract      string             `json:"abstract,omitempty"`
	Keywords      []string           `json:"keywords,omitempty"`
	Venue         string             `json:"venue"`
	Tier          string             `json:"tier"`
	PrimaryArea   string             `json:"primary_area,omitempty"`
	AverageRating float64            `json:"average_rating"`
	ForumURL      string             `json:"forum_url,omitempty"`
	Favorite      bool               `json:"favorite"`
	Note          *overlay.PaperNote `json:"note,omitempty"`
}

// AuthorView is an author group row for the authors command.
type AuthorView struct {
	ID         string              `json:"id"`
	Name       string              `json:"name"`
	PaperCount int                 `json:"paper_count"`
	Favorite   bool                `json:"favorite"`
	Note       *overlay.AuthorNote `json:"note,omitempty"`
}

// PageResponse is the envelope for paginated list commands.
type PageResponse[T any] struct {
	Items      []T `json:"items"`
	TotalCount int `json:"total_count"`
	PageCount  int `json:"page_count"`
	Page       int `json:"page"`
}

// newPaperView builds a PaperView. Set includeAbstract for detail
// views; list views omit the abstract to keep output scannable.
func newPaperView(p catalog.Paper, o overlay.Overlay, includeAbstract bool) PaperView {
	v := PaperView{
		Title:         p.Title,
		Authors:       p.Authors,
		Keywords:      p.Keywords,
		Venue:         p.Venue,
		Tier:          p.Tier(),
		PrimaryArea:   p.PrimaryArea,
		AverageRating: p.AverageRating,
		ForumURL:      p.ForumURL(),
		Favorite:      o.IsFavoritePaper(p.Title),
	}
	if includeAbstract {
		v.Abstract = p.Abstract
	}
	if note, ok := o.FavoritePapers[p.Title]; ok {
		v.Note = &note
	}
	return v
}

func newPaperViews(papers []catalog.Paper, o overlay.Overlay) []PaperView {
	views := make([]PaperView, 0, len(papers))
	for _, p := range papers {
		views = append(views, newPaperView(p, o, false))
	}
	return views
}
