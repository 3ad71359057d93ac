package openreview

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"
)

// CatalogEntry matches the catalog file shape consumed by the catalog
// loader: parallel author name/ID lists plus review statistics.
type CatalogEntry struct {
	Title         string    `json:"title"`
	Authors       []string  `json:"authors"`
	AuthorIDs     []string  `json:"authorids"`
	TLDR          string    `json:"TLDR,omitempty"`
	Abstract      string    `json:"abstract"`
	Keywords      []string  `json:"keywords"`
	Venue         string    `json:"venue"`
	PrimaryArea   string    `json:"primary_area,omitempty"`
	PDF           string    `json:"pdf,omitempty"`
	Forum         string    `json:"forum"`
	Ratings       []float64 `json:"ratings,omitempty"`
	Confidence    []float64 `json:"confidence,omitempty"`
	AverageRating float64   `json:"average_rating"`
}

// DefaultVenueID is the venue harvested when none is specified.
const DefaultVenueID = "ICLR.cc/2025/Conference"

// HarvestAccepted builds catalog entries for a venue's accepted
// submissions, with AverageRating computed from official review
// replies. A submission counts as accepted when its venue label names
// a presentation tier (Oral, Spotlight, or Poster), which is how
// OpenReview labels decisions for ICLR-style venues.
func (c *Client) HarvestAccepted(ctx context.Context, venueID string) ([]CatalogEntry, error) {
	group, err := c.GetGroup(ctx, venueID)
	if err != nil {
		return nil, fmt.Errorf("loading venue group: %w", err)
	}

	submissionName := group.Content.String("submission_name")
	if submissionName == "" {
		return nil, fmt.Errorf("venue %q has no submission_name", venueID)
	}
	reviewName := group.Content.String("review_name")

	notes, err := c.GetAllNotes(ctx, venueID+"/-/"+submissionName, "replies")
	if err != nil {
		return nil, fmt.Errorf("listing submissions: %w", err)
	}

	var entries []CatalogEntry
	for _, note := range notes {
		venue := note.Content.String("venue")
		if !isAcceptedVenue(venue) {
			continue
		}

		entry := entryFromNote(note)
		reviewInvitation := fmt.Sprintf("%s/%s%d/-/%s", venueID, submissionName, note.Number, reviewName)
		for _, reply := range note.Details.Replies {
			if reviewName == "" || !slices.Contains(reply.Invitations, reviewInvitation) {
				continue
			}
			if rating, ok := reply.Content.Number("rating"); ok {
				entry.Ratings = append(entry.Ratings, rating)
			}
			if conf, ok := reply.Content.Number("confidence"); ok {
				entry.Confidence = append(entry.Confidence, conf)
			}
		}
		entry.AverageRating = mean(entry.Ratings)

		entries = append(entries, entry)
	}

	return entries, nil
}

// HarvestSubmissions builds catalog entries for all of a venue's
// submissions without review statistics. Used for workshop venues,
// which typically have no numeric reviews.
func (c *Client) HarvestSubmissions(ctx context.Context, venueID string) ([]CatalogEntry, error) {
	group, err := c.GetGroup(ctx, venueID)
	if err != nil {
		return nil, fmt.Errorf("loading venue group: %w", err)
	}

	submissionName := group.Content.String("submission_name")
	if submissionName == "" {
		return nil, fmt.Errorf("venue %q has no submission_name", venueID)
	}

	notes, err := c.GetAllNotes(ctx, venueID+"/-/"+submissionName, "")
	if err != nil {
		return nil, fmt.Errorf("listing submissions: %w", err)
	}

	entries := make([]CatalogEntry, 0, len(notes))
	for _, note := range notes {
		entries = append(entries, entryFromNote(note))
	}
	return entries, nil
}

// HarvestWorkshops harvests several workshop venues with a bounded
// number of in-flight venues. Venues that fail abort the whole
// harvest; partial output would silently truncate the catalog.
func (c *Client) HarvestWorkshops(ctx context.Context, venueIDs []string, concurrency int) (map[string][]CatalogEntry, error) {
	if concurrency < 1 {
		concurrency = 1
	}

	var mu sync.Mutex
	results := make(map[string][]CatalogEntry, len(venueIDs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for _, venueID := range venueIDs {
		g.Go(func() error {
			entries, err := c.HarvestSubmissions(ctx, venueID)
			if err != nil {
				return fmt.Errorf("harvesting %s: %w", venueID, err)
			}
			mu.Lock()
			results[venueID] = entries
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// ListWorkshops returns the venue IDs under a conference's Workshop
// prefix, e.g. "ICLR.cc/2025/Workshop/". The trailing slash in the
// prefix matters: without it the conference itself and groups like
// Workshop_Proposals would match.
func (c *Client) ListWorkshops(ctx context.Context, workshopPrefix string) ([]string, error) {
	members, err := c.VenueMembers(ctx)
	if err != nil {
		return nil, err
	}

	var workshops []string
	for _, m := range members {
		if strings.Contains(m, workshopPrefix) {
			workshops = append(workshops, m)
		}
	}
	return workshops, nil
}

func isAcceptedVenue(venue string) bool {
	v := strings.ToLower(venue)
	return strings.Contains(v, "oral") || strings.Contains(v, "spotlight") || strings.Contains(v, "poster")
}

func entryFromNote(note Note) CatalogEntry {
	return CatalogEntry{
		Title:       note.Content.String("title"),
		Authors:     note.Content.StringList("authors"),
		AuthorIDs:   note.Content.StringList("authorids"),
		TLDR:        note.Content.String("TLDR"),
		Abstract:    note.Content.String("abstract"),
		Keywords:    note.Content.StringList("keywords"),
		Venue:       note.Content.String("venue"),
		PrimaryArea: note.Content.String("primary_area"),
		PDF:         note.Content.String("pdf"),
		Forum:       note.Forum,
	}
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
