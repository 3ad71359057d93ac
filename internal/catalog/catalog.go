// Package catalog defines the immutable conference paper catalog.
package catalog

import "strings"

// Author represents a paper author as a display name paired with a
// stable OpenReview profile identifier.
type Author struct {
	Name string `json:"name"`
	ID   string `json:"id"`
}

// Paper represents one accepted submission from the catalog file.
//
// Title is the identity key for favorites and notes: two papers sharing
// a title are indistinguishable to the overlay. Forum is carried as an
// external cross-reference but is deliberately not used as the key.
type Paper struct {
	Title         string   `json:"title"`
	Authors       []Author `json:"authors"`
	Abstract      string   `json:"abstract"`
	Keywords      []string `json:"keywords"`
	Venue         string   `json:"venue"`
	AverageRating float64  `json:"average_rating"`
	Forum         string   `json:"forum"`
	PrimaryArea   string   `json:"primary_area,omitempty"`
	PDF           string   `json:"pdf,omitempty"`
}

// Presentation tiers inferred from the venue label.
const (
	TierOral      = "oral"
	TierSpotlight = "spotlight"
	TierPoster    = "poster"
)

// Tier classifies a venue label into a presentation tier by
// case-insensitive substring match. Labels matching no tier default to
// poster.
func Tier(venue string) string {
	v := strings.ToLower(venue)
	switch {
	case strings.Contains(v, TierOral):
		return TierOral
	case strings.Contains(v, TierSpotlight):
		return TierSpotlight
	default:
		return TierPoster
	}
}

// Tier returns the paper's presentation tier.
func (p Paper) Tier() string {
	return Tier(p.Venue)
}

// ForumURL returns the OpenReview forum link for the paper, or "" if
// the paper has no forum identifier.
func (p Paper) ForumURL() string {
	if p.Forum == "" {
		return ""
	}
	return "https://openreview.net/forum?id=" + p.Forum
}

// ProfileURL returns the OpenReview profile link for the author.
func (a Author) ProfileURL() string {
	if a.ID == "" {
		return ""
	}
	return "https://openreview.net/profile?id=" + a.ID
}

// FindByTitle returns the first paper with the given title, or nil.
func FindByTitle(papers []Paper, title string) *Paper {
	for i := range papers {
		if papers[i].Title == title {
			return &papers[i]
		}
	}
	return nil
}
