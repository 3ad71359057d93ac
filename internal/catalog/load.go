package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// ErrCatalogUnavailable indicates the catalog file is missing or
// malformed. Callers are expected to degrade to an empty catalog
// rather than abort.
var ErrCatalogUnavailable = errors.New("catalog unavailable")

// rawPaper matches the on-disk catalog shape, which carries authors
// and author IDs as parallel lists (the OpenReview export format).
type rawPaper struct {
	Title         string   `json:"title"`
	Authors       []string `json:"authors"`
	AuthorIDs     []string `json:"authorids"`
	Abstract      string   `json:"abstract"`
	Keywords      []string `json:"keywords"`
	Venue         string   `json:"venue"`
	AverageRating float64  `json:"average_rating"`
	Forum         string   `json:"forum"`
	PrimaryArea   string   `json:"primary_area"`
	PDF           string   `json:"pdf"`
}

// Load reads the whole catalog from a JSON file.
//
// A missing file, a non-array document, or an entry without the
// required fields all yield an error wrapping ErrCatalogUnavailable.
func Load(path string) ([]Paper, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", ErrCatalogUnavailable, path, err)
	}
	return Parse(data)
}

// Parse decodes and validates a catalog JSON document.
func Parse(data []byte) ([]Paper, error) {
	var raw []rawPaper
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: parsing catalog: %v", ErrCatalogUnavailable, err)
	}

	papers := make([]Paper, 0, len(raw))
	for i, rp := range raw {
		if rp.Title == "" {
			return nil, fmt.Errorf("%w: entry %d missing title", ErrCatalogUnavailable, i)
		}
		if len(rp.Authors) == 0 {
			return nil, fmt.Errorf("%w: entry %d (%q) has no authors", ErrCatalogUnavailable, i, rp.Title)
		}
		papers = append(papers, rp.toPaper())
	}
	return papers, nil
}

// toPaper zips the parallel author name and ID lists into Author
// values. Mismatched list lengths are a data-quality problem in the
// source catalog: the extra entries are skipped with a warning rather
// than rejecting the paper.
func (rp rawPaper) toPaper() Paper {
	n := len(rp.Authors)
	if len(rp.AuthorIDs) != n {
		fmt.Fprintf(os.Stderr, "warning: paper %q has %d authors but %d author ids; extra entries skipped\n",
			rp.Title, len(rp.Authors), len(rp.AuthorIDs))
		if len(rp.AuthorIDs) < n {
			n = len(rp.AuthorIDs)
		}
	}

	authors := make([]Author, 0, n)
	for i := 0; i < n; i++ {
		authors = append(authors, Author{Name: rp.Authors[i], ID: rp.AuthorIDs[i]})
	}

	return Paper{
		Title:         rp.Title,
		Authors:       authors,
		Abstract:      rp.Abstract,
		Keywords:      rp.Keywords,
		Venue:         rp.Venue,
		AverageRating: rp.AverageRating,
		Forum:         rp.Forum,
		PrimaryArea:   rp.PrimaryArea,
		PDF:           rp.PDF,
	}
}
