package openreview

import (
	"encoding/json"
	"reflect"
	"testing"
)

func contentFromJSON(t *testing.T, data string) Content {
	t.Helper()
	var c Content
	if err := json.Unmarshal([]byte(data), &c); err != nil {
		t.Fatalf("parsing content fixture: %v", err)
	}
	return c
}

func TestContent_String(t *testing.T) {
	c := contentFromJSON(t, `{"title": {"value": "A Paper"}, "count": {"value": 3}}`)

	if got := c.String("title"); got != "A Paper" {
		t.Errorf("String(title) = %q", got)
	}
	if got := c.String("missing"); got != "" {
		t.Errorf("String(missing) = %q, want empty", got)
	}
	if got := c.String("count"); got != "" {
		t.Errorf("String(count) = %q, want empty for non-string", got)
	}
}

func TestContent_StringList(t *testing.T) {
	c := contentFromJSON(t, `{"keywords": {"value": ["a", "b"]}}`)

	if got := c.StringList("keywords"); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Errorf("StringList(keywords) = %v", got)
	}
	if got := c.StringList("missing"); got != nil {
		t.Errorf("StringList(missing) = %v, want nil", got)
	}
}

func TestContent_Number(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		key    string
		want   float64
		wantOK bool
	}{
		{"integer", `{"rating": {"value": 8}}`, "rating", 8, true},
		{"float", `{"rating": {"value": 6.5}}`, "rating", 6.5, true},
		{"string with score prefix", `{"rating": {"value": "8: accept, good paper"}}`, "rating", 8, true},
		{"missing", `{}`, "rating", 0, false},
		{"non-numeric string", `{"rating": {"value": "strong accept"}}`, "rating", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := contentFromJSON(t, tt.data)
			got, ok := c.Number(tt.key)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("Number(%s) = %v, %v; want %v, %v", tt.key, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestLeadingInt(t *testing.T) {
	tests := []struct {
		in     string
		want   int
		wantOK bool
	}{
		{"8: accept", 8, true},
		{"10", 10, true},
		{"  4 ", 4, true},
		{"accept", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		got, ok := leadingInt(tt.in)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("leadingInt(%q) = %d, %v; want %d, %v", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}
