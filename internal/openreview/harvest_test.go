package openreview

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

// fakeVenue serves just enough of the OpenReview API for harvest tests:
// a venue group, a paged notes listing, and a login endpoint.
func fakeVenue(t *testing.T, notes []map[string]any) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()

	mux.HandleFunc("/login", func(w http.ResponseWriter, r *http.Request) {
		var creds struct {
			ID       string `json:"id"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&creds); err != nil || creds.Password != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		json.NewEncoder(w).Encode(map[string]string{"token": "tok123"})
	})

	mux.HandleFunc("/groups", func(w http.ResponseWriter, r *http.Request) {
		id := r.URL.Query().Get("id")
		group := map[string]any{
			"id": id,
			"content": map[string]any{
				"submission_name": map[string]any{"value": "Submission"},
				"review_name":     map[string]any{"value": "Official_Review"},
			},
		}
		if id == "venues" {
			group["members"] = []string{
				"ICLR.cc/2025/Conference",
				"ICLR.cc/2025/Workshop/AgenticAI",
				"ICLR.cc/2025/Workshop_Proposals",
				"ICLR.cc/2025/BlogPosts",
				"NeurIPS.cc/2024/Conference",
			}
		}
		json.NewEncoder(w).Encode(map[string]any{"groups": []any{group}})
	})

	mux.HandleFunc("/notes", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"notes": notes, "count": len(notes)})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func noteFixture(number int, title, venue string, ratings ...int) map[string]any {
	var replies []map[string]any
	for _, r := range ratings {
		replies = append(replies, map[string]any{
			"invitations": []string{fmt.Sprintf("ICLR.cc/2025/Conference/Submission%d/-/Official_Review", number)},
			"content": map[string]any{
				"rating":     map[string]any{"value": r},
				"confidence": map[string]any{"value": 4},
			},
		})
	}
	return map[string]any{
		"forum":  fmt.Sprintf("forum%d", number),
		"number": number,
		"content": map[string]any{
			"title":        map[string]any{"value": title},
			"authors":      map[string]any{"value": []string{"Ada Lovelace"}},
			"authorids":    map[string]any{"value": []string{"~Ada_Lovelace1"}},
			"abstract":     map[string]any{"value": "An abstract."},
			"keywords":     map[string]any{"value": []string{"k1"}},
			"venue":        map[string]any{"value": venue},
			"primary_area": map[string]any{"value": "systems"},
			"pdf":          map[string]any{"value": fmt.Sprintf("/pdf/forum%d.pdf", number)},
		},
		"details": map[string]any{"replies": replies},
	}
}

func TestHarvestAccepted(t *testing.T) {
	srv := fakeVenue(t, []map[string]any{
		noteFixture(1, "Kept Oral", "ICLR 2025 Oral", 8, 6),
		noteFixture(2, "Rejected", "Submitted to ICLR 2025"),
		noteFixture(3, "Kept Poster", "ICLR 2025 Poster", 5),
	})
	c := NewClient(WithBaseURL(srv.URL))

	entries, err := c.HarvestAccepted(context.Background(), "ICLR.cc/2025/Conference")
	if err != nil {
		t.Fatalf("HarvestAccepted() error = %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("len(entries) = %d, want 2 (rejected submission excluded)", len(entries))
	}

	oral := entries[0]
	if oral.Title != "Kept Oral" || oral.Forum != "forum1" {
		t.Errorf("entry = %+v", oral)
	}
	if oral.AverageRating != 7 {
		t.Errorf("AverageRating = %v, want 7", oral.AverageRating)
	}
	if len(oral.Ratings) != 2 || len(oral.Confidence) != 2 {
		t.Errorf("Ratings = %v, Confidence = %v", oral.Ratings, oral.Confidence)
	}
	if oral.Authors[0] != "Ada Lovelace" || oral.AuthorIDs[0] != "~Ada_Lovelace1" {
		t.Errorf("authors = %v / %v", oral.Authors, oral.AuthorIDs)
	}

	if entries[1].AverageRating != 5 {
		t.Errorf("poster AverageRating = %v, want 5", entries[1].AverageRating)
	}
}

func TestHarvestWorkshops(t *testing.T) {
	srv := fakeVenue(t, []map[string]any{
		noteFixture(1, "Workshop Paper", "ICLR 2025 Workshop AgenticAI"),
	})
	c := NewClient(WithBaseURL(srv.URL))

	venues := []string{"ICLR.cc/2025/Workshop/A", "ICLR.cc/2025/Workshop/B"}
	results, err := c.HarvestWorkshops(context.Background(), venues, 2)
	if err != nil {
		t.Fatalf("HarvestWorkshops() error = %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("len(results) = %d, want 2", len(results))
	}
	for _, v := range venues {
		if len(results[v]) != 1 || results[v][0].Title != "Workshop Paper" {
			t.Errorf("results[%s] = %+v", v, results[v])
		}
	}
}

func TestListWorkshops(t *testing.T) {
	srv := fakeVenue(t, nil)
	c := NewClient(WithBaseURL(srv.URL))

	workshops, err := c.ListWorkshops(context.Background(), "ICLR.cc/2025/Workshop/")
	if err != nil {
		t.Fatalf("ListWorkshops() error = %v", err)
	}
	if len(workshops) != 1 || workshops[0] != "ICLR.cc/2025/Workshop/AgenticAI" {
		t.Errorf("ListWorkshops() = %v", workshops)
	}
	// The main conference and sibling groups like Workshop_Proposals
	// must never be swept into a workshop harvest.
	for _, w := range workshops {
		if w == "ICLR.cc/2025/Conference" || w == "ICLR.cc/2025/Workshop_Proposals" || w == "ICLR.cc/2025/BlogPosts" {
			t.Errorf("non-workshop venue listed: %s", w)
		}
	}
}

func TestLogin(t *testing.T) {
	srv := fakeVenue(t, nil)

	c := NewClient(WithBaseURL(srv.URL))
	if err := c.Login(context.Background(), "user", "secret"); err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if c.token != "tok123" {
		t.Errorf("token = %q, want tok123", c.token)
	}

	c = NewClient(WithBaseURL(srv.URL))
	err := c.Login(context.Background(), "user", "wrong")
	if !errors.Is(err, ErrAuthError) {
		t.Errorf("Login() with bad password = %v, want ErrAuthError", err)
	}
}

func TestIsAcceptedVenue(t *testing.T) {
	tests := []struct {
		venue string
		want  bool
	}{
		{"ICLR 2025 Oral", true},
		{"ICLR 2025 Spotlight", true},
		{"ICLR 2025 Poster", true},
		{"Submitted to ICLR 2025", false},
		{"ICLR 2025 Conference Withdrawn Submission", false},
	}
	for _, tt := range tests {
		if got := isAcceptedVenue(tt.venue); got != tt.want {
			t.Errorf("isAcceptedVenue(%q) = %v, want %v", tt.venue, got, tt.want)
		}
	}
}
