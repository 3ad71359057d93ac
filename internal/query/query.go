// Package query filters, sorts, and paginates catalog papers.
package query

import (
	"sort"
	"strings"

	"github.com/paperdeck/paperdeck/internal/catalog"
	"github.com/paperdeck/paperdeck/internal/index"
	"github.com/paperdeck/paperdeck/internal/overlay"
)

// Filters holds the independently-optional predicates. Empty fields
// are inactive; all active predicates are ANDed.
type Filters struct {
	Keyword string // exact keyword match
	Area    string // exact primary-area match
	Author  string // case-insensitive author-name substring
}

// Active reports whether any predicate is set.
func (f Filters) Active() bool {
	return f.Keyword != "" || f.Area != "" || f.Author != ""
}

// Match reports whether a paper satisfies every active predicate.
func (f Filters) Match(p catalog.Paper) bool {
	if f.Keyword != "" && !hasKeyword(p, f.Keyword) {
		return false
	}
	if f.Area != "" && p.PrimaryArea != f.Area {
		return false
	}
	if f.Author != "" && !hasAuthorSubstring(p, f.Author) {
		return false
	}
	return true
}

func hasKeyword(p catalog.Paper, kw string) bool {
	for _, k := range p.Keywords {
		if k == kw {
			return true
		}
	}
	return false
}

func hasAuthorSubstring(p catalog.Paper, term string) bool {
	term = strings.ToLower(term)
	for _, a := range p.Authors {
		if strings.Contains(strings.ToLower(a.Name), term) {
			return true
		}
	}
	return false
}

// Apply filters the papers and sorts the result by average rating
// descending. The sort is stable and unconditional: ties keep the
// input's relative order, and it runs even with no filters active.
func Apply(papers []catalog.Paper, f Filters) []catalog.Paper {
	out := make([]catalog.Paper, 0, len(papers))
	for _, p := range papers {
		if f.Match(p) {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].AverageRating > out[j].AverageRating
	})
	return out
}

// Page is one slice of a paginated result.
type Page[T any] struct {
	Items      []T `json:"items"`
	TotalCount int `json:"total_count"`
	PageCount  int `json:"page_count"`
	Number     int `json:"page"`
}

// Paginate slices items into the 1-based page of the given size.
// PageCount is ceil(total/size); an empty input yields PageCount 0 and
// an empty slice, which callers treat as "no pagination controls", not
// an error. Page numbers past the end yield an empty slice; they are
// not clamped, and callers reset to page 1 whenever a filter changes.
func Paginate[T any](items []T, pageSize, page int) Page[T] {
	total := len(items)
	if pageSize <= 0 {
		pageSize = 1
	}
	if page < 1 {
		page = 1
	}

	pageCount := (total + pageSize - 1) / pageSize

	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	return Page[T]{
		Items:      items[start:end],
		TotalCount: total,
		PageCount:  pageCount,
		Number:     page,
	}
}

// FavoritePapers restricts papers to those whose title is favorited in
// the overlay, preserving input order.
func FavoritePapers(papers []catalog.Paper, o overlay.Overlay) []catalog.Paper {
	out := make([]catalog.Paper, 0, len(o.FavoritePapers))
	for _, p := range papers {
		if o.IsFavoritePaper(p.Title) {
			out = append(out, p)
		}
	}
	return out
}

// FavoriteAuthor is one favorited author with their papers.
type FavoriteAuthor struct {
	ID     string
	Name   string
	Papers []catalog.Paper
}

// FavoriteAuthorGroups returns the favorited authors in the order they
// were favorited, each with their papers deduplicated by title. Author
// IDs no longer present in the catalog are skipped.
func FavoriteAuthorGroups(papers []catalog.Paper, o overlay.Overlay) []FavoriteAuthor {
	idx := index.BuildAuthorIndex(papers)

	out := make([]FavoriteAuthor, 0, len(o.FavoriteAuthors))
	for _, id := range o.FavoriteAuthors {
		g, ok := idx[id]
		if !ok {
			continue
		}
		seen := make(map[string]struct{}, len(g.Papers))
		var deduped []catalog.Paper
		for _, p := range g.Papers {
			if _, dup := seen[p.Title]; dup {
				continue
			}
			seen[p.Title] = struct{}{}
			deduped = append(deduped, p)
		}
		out = append(out, FavoriteAuthor{ID: id, Name: g.Name, Papers: deduped})
	}
	return out
}
