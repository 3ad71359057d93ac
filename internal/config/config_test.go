package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestInitAndLoad(t *testing.T) {
	root := t.TempDir()

	if err := Init(root); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	if !IsRepository(root) {
		t.Error("IsRepository() = false after Init")
	}
	if err := Init(root); err == nil {
		t.Error("Init() on existing repository should fail")
	}

	cfg, err := Load(root)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.EffectivePageSize() != DefaultPageSize {
		t.Errorf("EffectivePageSize() = %d, want %d", cfg.EffectivePageSize(), DefaultPageSize)
	}
	if cfg.EffectiveServeAddr() != DefaultServeAddr {
		t.Errorf("EffectiveServeAddr() = %q, want %q", cfg.EffectiveServeAddr(), DefaultServeAddr)
	}
}

func TestLoad_MissingConfigIsZero(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(PaperdeckPath(root), 0755); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(root)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.CatalogPath != "" || cfg.PageSize != 0 {
		t.Errorf("Load() = %+v, want zero config", cfg)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	root := t.TempDir()
	if err := Init(root); err != nil {
		t.Fatal(err)
	}

	cfg := &Config{CatalogPath: "data/papers.json", PageSize: 10, ServeAddr: "127.0.0.1:9000"}
	if err := cfg.Save(root); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := Load(root)
	if err != nil {
		t.Fatal(err)
	}
	if *got != *cfg {
		t.Errorf("Load() = %+v, want %+v", got, cfg)
	}
}

func TestFindRepository(t *testing.T) {
	root := t.TempDir()
	if err := Init(root); err != nil {
		t.Fatal(err)
	}
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatal(err)
	}

	found, err := FindRepository(nested)
	if err != nil {
		t.Fatalf("FindRepository() error = %v", err)
	}
	// Resolve symlinks for comparison (macOS TempDir is symlinked)
	wantRoot, _ := filepath.EvalSymlinks(root)
	gotRoot, _ := filepath.EvalSymlinks(found)
	if gotRoot != wantRoot {
		t.Errorf("FindRepository() = %q, want %q", found, root)
	}
}

func TestFindRepository_NotFound(t *testing.T) {
	if _, err := FindRepository(t.TempDir()); err == nil {
		t.Error("FindRepository() in a bare directory should fail")
	}
}

func TestCatalogPath(t *testing.T) {
	root := string(filepath.Separator) + filepath.Join("repo")

	tests := []struct {
		name string
		cfg  Config
		want string
	}{
		{"default", Config{}, filepath.Join(root, PaperdeckDir, CatalogFile)},
		{"relative", Config{CatalogPath: "data/papers.json"}, filepath.Join(root, "data", "papers.json")},
		{"absolute", Config{CatalogPath: filepath.Join(root, "x.json")}, filepath.Join(root, "x.json")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CatalogPath(root, &tt.cfg); got != tt.want {
				t.Errorf("CatalogPath() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidatePageSize(t *testing.T) {
	if err := ValidatePageSize(20); err != nil {
		t.Errorf("ValidatePageSize(20) = %v", err)
	}
	if err := ValidatePageSize(0); err == nil {
		t.Error("ValidatePageSize(0) should fail")
	}
}

func TestGlobalConfig(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	ResetGlobalConfigCache()
	t.Cleanup(ResetGlobalConfigCache)

	// Missing file: empty config, no error.
	cfg, err := LoadGlobalConfig()
	if err != nil {
		t.Fatalf("LoadGlobalConfig() error = %v", err)
	}
	if cfg.NexusPath != "" {
		t.Errorf("NexusPath = %q, want empty", cfg.NexusPath)
	}
	ResetGlobalConfigCache()

	path := filepath.Join(dir, GlobalConfigDir, GlobalConfigFile)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	data := "nexus_path: /papers\nopenreview_username: user@example.com\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err = LoadGlobalConfig()
	if err != nil {
		t.Fatalf("LoadGlobalConfig() error = %v", err)
	}
	if cfg.NexusPath != "/papers" || cfg.OpenReviewUsername != "user@example.com" {
		t.Errorf("LoadGlobalConfig() = %+v", cfg)
	}
}
