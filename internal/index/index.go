// Package index builds derived views over the catalog: the author to
// papers grouping and the unique keyword and primary-area sets.
//
// Indices are recomputed on demand from the immutable catalog rather
// than cached, so a reloaded catalog can never leave them stale.
package index

import (
	"sort"

	"github.com/paperdeck/paperdeck/internal/catalog"
)

// AuthorGroup collects one author's papers in catalog order. Name is
// the display name from the author's first occurrence.
type AuthorGroup struct {
	Name   string
	Papers []catalog.Paper
}

// BuildAuthorIndex groups papers strictly by author ID. Two authors
// sharing a display name but holding different IDs stay distinct.
func BuildAuthorIndex(papers []catalog.Paper) map[string]*AuthorGroup {
	idx := make(map[string]*AuthorGroup)
	for _, p := range papers {
		for _, a := range p.Authors {
			g, ok := idx[a.ID]
			if !ok {
				g = &AuthorGroup{Name: a.Name}
				idx[a.ID] = g
			}
			g.Papers = append(g.Papers, p)
		}
	}
	return idx
}

// SortedIDs returns the index keys ordered by display name, breaking
// ties by ID, for stable listing.
func SortedIDs(idx map[string]*AuthorGroup) []string {
	ids := make([]string, 0, len(idx))
	for id := range idx {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		a, b := idx[ids[i]], idx[ids[j]]
		if a.Name != b.Name {
			return a.Name < b.Name
		}
		return ids[i] < ids[j]
	})
	return ids
}

// KeywordSet returns the sorted union of keywords across all papers,
// with empty strings excluded.
func KeywordSet(papers []catalog.Paper) []string {
	set := make(map[string]struct{})
	for _, p := range papers {
		for _, kw := range p.Keywords {
			if kw != "" {
				set[kw] = struct{}{}
			}
		}
	}
	return sortedKeys(set)
}

// AreaSet returns the sorted union of primary areas across all papers,
// with papers lacking an area excluded.
func AreaSet(papers []catalog.Paper) []string {
	set := make(map[string]struct{})
	for _, p := range papers {
		if p.PrimaryArea != "" {
			set[p.PrimaryArea] = struct{}{}
		}
	}
	return sortedKeys(set)
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
