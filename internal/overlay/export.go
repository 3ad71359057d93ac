package overlay

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// ErrImportFormat indicates an uploaded file is not a valid overlay
// document. The stored overlay is left untouched when import fails.
var ErrImportFormat = errors.New("invalid user data file")

// DefaultExportFilename is the suggested name for exported overlays.
const DefaultExportFilename = "iclr_user_data.json"

// Export writes the full overlay as pretty-printed JSON.
func (o Overlay) Export(w io.Writer) error {
	o.normalize()
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(o); err != nil {
		return fmt.Errorf("encoding user data: %w", err)
	}
	return nil
}

// Import parses an exported overlay document. Missing top-level fields
// are defaulted independently, matching Store.Load. A parse or
// validation failure wraps ErrImportFormat and leaves nothing changed;
// callers replace the stored overlay wholesale only on success.
func Import(r io.Reader) (Overlay, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Overlay{}, fmt.Errorf("reading user data: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates an overlay document.
func Parse(data []byte) (Overlay, error) {
	var o Overlay
	if err := json.Unmarshal(data, &o); err != nil {
		return Overlay{}, fmt.Errorf("%w: %v", ErrImportFormat, err)
	}
	o.normalize()

	for title, note := range o.FavoritePapers {
		if err := ValidateStatus(note.Status); err != nil {
			return Overlay{}, fmt.Errorf("%w: paper %q: %v", ErrImportFormat, title, err)
		}
		if err := ValidateRating(note.Rating); err != nil {
			return Overlay{}, fmt.Errorf("%w: paper %q: %v", ErrImportFormat, title, err)
		}
	}
	return o, nil
}

// ValidateStatus checks a paper note status value.
func ValidateStatus(status string) error {
	switch status {
	case StatusNone, StatusTodo, StatusDone:
		return nil
	}
	return fmt.Errorf("unknown status %q (valid: %q, %q, or empty)", status, StatusTodo, StatusDone)
}

// ValidateRating checks a paper note rating; 0 means unset.
func ValidateRating(rating int) error {
	if rating < 0 || rating > 5 {
		return fmt.Errorf("rating %d out of range (valid: 1-5, or 0 to clear)", rating)
	}
	return nil
}
