package openreview

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Field is an OpenReview v2 content field, which wraps every value in
// a {"value": ...} object.
type Field struct {
	Value json.RawMessage `json:"value"`
}

// Content maps field names to their wrapped values.
type Content map[string]Field

// String returns the field decoded as a string, or "".
func (c Content) String(key string) string {
	var s string
	if f, ok := c[key]; ok {
		_ = json.Unmarshal(f.Value, &s)
	}
	return s
}

// StringList returns the field decoded as a list of strings, or nil.
func (c Content) StringList(key string) []string {
	var list []string
	if f, ok := c[key]; ok {
		_ = json.Unmarshal(f.Value, &list)
	}
	return list
}

// Number returns the field decoded as a number. Some venues encode
// scores as strings like "8: accept"; the leading integer is used in
// that case.
func (c Content) Number(key string) (float64, bool) {
	f, ok := c[key]
	if !ok {
		return 0, false
	}

	var n float64
	if err := json.Unmarshal(f.Value, &n); err == nil {
		return n, true
	}

	var s string
	if err := json.Unmarshal(f.Value, &s); err == nil {
		if v, ok := leadingInt(s); ok {
			return float64(v), true
		}
	}
	return 0, false
}

// leadingInt parses the integer prefix of a string like "8: accept".
func leadingInt(s string) (int, bool) {
	s = strings.TrimSpace(s)
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, false
	}
	v, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return v, true
}

// Group is an OpenReview group, such as a venue.
type Group struct {
	ID      string   `json:"id"`
	Content Content  `json:"content"`
	Members []string `json:"members"`
}

// Note is an OpenReview note: a submission, review, or other reply.
// Details.Replies is populated only when the notes query requested
// reply details.
type Note struct {
	ID          string   `json:"id"`
	Forum       string   `json:"forum"`
	Number      int      `json:"number"`
	Invitations []string `json:"invitations"`
	Content     Content  `json:"content"`
	Details     struct {
		Replies []Note `json:"replies"`
	} `json:"details"`
}
