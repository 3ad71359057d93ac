package main

import "testing"

func TestWorkshopPrefix(t *testing.T) {
	tests := []struct {
		name    string
		venueID string
		want    string
	}{
		{"default venue", "ICLR.cc/2025/Conference", "ICLR.cc/2025/Workshop/"},
		{"other conference", "NeurIPS.cc/2024/Conference", "NeurIPS.cc/2024/Workshop/"},
		{"no conference suffix", "ICLR.cc/2025", "ICLR.cc/2025/Workshop/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := workshopPrefix(tt.venueID)
			if got != tt.want {
				t.Errorf("workshopPrefix(%q) = %q, want %q", tt.venueID, got, tt.want)
			}
		})
	}
}
