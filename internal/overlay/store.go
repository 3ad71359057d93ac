package overlay

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	_ "modernc.org/sqlite"
)

// overlayKey is the single key under which the overlay is stored,
// mirroring the browser localStorage entry the data model came from.
const overlayKey = "userData"

// Store persists the overlay as one JSON value in a single-row
// key/value table in SQLite. Every mutation is one synchronous
// load-mutate-save round trip; the last writer wins.
type Store struct {
	db *sql.DB
}

// OpenStore opens or creates the overlay database at the given path.
func OpenStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening overlay database: %w", err)
	}

	// SQLite doesn't support concurrent writes
	db.SetMaxOpenConns(1)

	schema := `
		CREATE TABLE IF NOT EXISTS user_data (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating overlay schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Load returns the persisted overlay. It never fails: an absent row
// yields the empty overlay, and unparseable data is logged and
// self-healed to the empty overlay. Missing top-level fields are
// defaulted independently.
func (s *Store) Load() Overlay {
	var raw string
	err := s.db.QueryRow(`SELECT value FROM user_data WHERE key = ?`, overlayKey).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return Empty()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: reading overlay: %v; starting empty\n", err)
		return Empty()
	}

	var o Overlay
	if err := json.Unmarshal([]byte(raw), &o); err != nil {
		fmt.Fprintf(os.Stderr, "warning: stored overlay is corrupt (%v); starting empty\n", err)
		return Empty()
	}
	o.normalize()
	return o
}

// Save serializes the overlay and writes it synchronously.
func (s *Store) Save(o Overlay) error {
	o.normalize()
	data, err := json.Marshal(o)
	if err != nil {
		return fmt.Errorf("encoding overlay: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO user_data (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		overlayKey, string(data))
	if err != nil {
		return fmt.Errorf("writing overlay: %w", err)
	}
	return nil
}

// ToggleFavoritePaper toggles a paper favorite and persists the result.
// It returns the updated overlay and whether the paper is now favorited.
func (s *Store) ToggleFavoritePaper(title string) (Overlay, bool, error) {
	o := s.Load()
	fav := o.TogglePaper(title)
	if err := s.Save(o); err != nil {
		return o, fav, err
	}
	return o, fav, nil
}

// ToggleFavoriteAuthor toggles an author favorite and persists the
// result.
func (s *Store) ToggleFavoriteAuthor(id string) (Overlay, bool, error) {
	o := s.Load()
	fav := o.ToggleAuthor(id)
	if err := s.Save(o); err != nil {
		return o, fav, err
	}
	return o, fav, nil
}

// SetPaperNote merges a note patch for a paper and persists the result.
func (s *Store) SetPaperNote(title string, patch PaperPatch) (PaperNote, error) {
	o := s.Load()
	note := o.SetPaperNote(title, patch)
	if err := s.Save(o); err != nil {
		return note, err
	}
	return note, nil
}

// SetAuthorComment replaces an author comment and persists the result.
func (s *Store) SetAuthorComment(id, comments string) (AuthorNote, error) {
	o := s.Load()
	note := o.SetAuthorComment(id, comments)
	if err := s.Save(o); err != nil {
		return note, err
	}
	return note, nil
}

// Replace persists the given overlay wholesale, discarding whatever was
// stored before. Used by import.
func (s *Store) Replace(o Overlay) error {
	return s.Save(o)
}
