package main

import (
	"testing"

	"github.com/paperdeck/paperdeck/internal/catalog"
)

func TestTruncateString(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		maxLen int
		want   string
	}{
		{"shorter than max", "short", 10, "short"},
		{"exactly max", "exactlyten", 10, "exactlyten"},
		{"longer than max", "this is a long title", 10, "this is..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := truncateString(tt.input, tt.maxLen); got != tt.want {
				t.Errorf("truncateString(%q, %d) = %q, want %q", tt.input, tt.maxLen, got, tt.want)
			}
		})
	}
}

func TestFormatAuthorsShort(t *testing.T) {
	authors := []catalog.Author{
		{Name: "Ada Lovelace", ID: "~A1"},
		{Name: "Alan Turing", ID: "~A2"},
		{Name: "Grace Hopper", ID: "~G1"},
		{Name: "Barbara Liskov", ID: "~B1"},
	}

	tests := []struct {
		name     string
		authors  []catalog.Author
		maxCount int
		want     string
	}{
		{"empty", nil, 3, ""},
		{"under limit", authors[:2], 3, "Ada Lovelace, Alan Turing"},
		{"at limit", authors[:3], 3, "Ada Lovelace, Alan Turing, Grace Hopper"},
		{"over limit", authors, 3, "Ada Lovelace, Alan Turing, Grace Hopper, et al."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatAuthorsShort(tt.authors, tt.maxCount); got != tt.want {
				t.Errorf("formatAuthorsShort() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWrapText(t *testing.T) {
	got := wrapText("one two three four five", 9, "  ")
	want := "one two\n  three\n  four five"
	if got != want {
		t.Errorf("wrapText() = %q, want %q", got, want)
	}

	if got := wrapText("short", 60, "  "); got != "short" {
		t.Errorf("wrapText() should leave short text alone, got %q", got)
	}
}
