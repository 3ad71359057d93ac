// Package config handles repository and global configuration.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents repository configuration stored in
// .paperdeck/config.json.
type Config struct {
	CatalogPath string `json:"catalog_path,omitempty"` // Catalog JSON path; relative paths resolve against the repo root
	PageSize    int    `json:"page_size,omitempty"`    // Papers/authors per page
	ServeAddr   string `json:"serve_addr,omitempty"`   // Listen address for the serve command
}

const (
	PaperdeckDir  = ".paperdeck"
	ConfigFile    = "config.json"
	CatalogFile   = "papers.json"
	OverlayDBFile = "overlay.db"
)

// Defaults applied when the corresponding config field is empty.
const (
	DefaultPageSize  = 20
	DefaultServeAddr = "127.0.0.1:8970"
)

// PaperdeckPath returns the path to the .paperdeck directory from a
// root path.
func PaperdeckPath(root string) string {
	return filepath.Join(root, PaperdeckDir)
}

// ConfigPath returns the path to config.json from a root path.
func ConfigPath(root string) string {
	return filepath.Join(root, PaperdeckDir, ConfigFile)
}

// OverlayDBPath returns the path to the overlay database from a root
// path.
func OverlayDBPath(root string) string {
	return filepath.Join(root, PaperdeckDir, OverlayDBFile)
}

// CatalogPath resolves the catalog file location for a repository.
func CatalogPath(root string, cfg *Config) string {
	path := cfg.CatalogPath
	if path == "" {
		return filepath.Join(root, PaperdeckDir, CatalogFile)
	}
	path = ExpandPath(path)
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(root, path)
}

// EffectivePageSize returns the configured page size or the default.
func (c *Config) EffectivePageSize() int {
	if c.PageSize > 0 {
		return c.PageSize
	}
	return DefaultPageSize
}

// EffectiveServeAddr returns the configured listen address or the
// default.
func (c *Config) EffectiveServeAddr() string {
	if c.ServeAddr != "" {
		return c.ServeAddr
	}
	return DefaultServeAddr
}

// IsRepository checks if the given path contains a paperdeck
// repository.
func IsRepository(root string) bool {
	info, err := os.Stat(PaperdeckPath(root))
	return err == nil && info.IsDir()
}

// FindRepository walks up from the given path to find a paperdeck
// repository. Returns the repository root path or an error if not
// found.
func FindRepository(start string) (string, error) {
	abs, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("resolving path: %w", err)
	}

	for {
		if IsRepository(abs) {
			return abs, nil
		}

		parent := filepath.Dir(abs)
		if parent == abs {
			return "", fmt.Errorf("not in a paperdeck repository (no .paperdeck directory found)")
		}
		abs = parent
	}
}

// Init creates the .paperdeck directory with a default config. It
// fails if the repository already exists.
func Init(root string) error {
	dir := PaperdeckPath(root)
	if _, err := os.Stat(dir); err == nil {
		return fmt.Errorf("already a paperdeck repository: %s", dir)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}

	cfg := &Config{}
	return cfg.Save(root)
}

// Load reads configuration from the repository at the given root.
// A missing config file yields the zero config, not an error.
func Load(root string) (*Config, error) {
	data, err := os.ReadFile(ConfigPath(root))
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return &cfg, nil
}

// Save writes configuration to the repository at the given root.
func (c *Config) Save(root string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(ConfigPath(root), data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// ValidatePageSize checks that a page size is usable.
func ValidatePageSize(size int) error {
	if size < 1 {
		return fmt.Errorf("page size must be at least 1, got %d", size)
	}
	return nil
}

// ExpandPath expands ~ to the user's home directory.
// Returns the original path unchanged if it doesn't start with ~.
func ExpandPath(path string) string {
	if len(path) == 0 || path[0] != '~' {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path // Return original if we can't get home directory
	}

	return filepath.Join(home, path[1:])
}
