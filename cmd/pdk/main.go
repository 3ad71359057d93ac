// Package main provides the pdk CLI entry point.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/paperdeck/paperdeck/internal/catalog"
	"github.com/paperdeck/paperdeck/internal/config"
	"github.com/paperdeck/paperdeck/internal/overlay"
)

// Version is set at build time via ldflags
var Version = "dev"

// humanOutput controls whether to use human-readable output
var humanOutput bool

func main() {
	if err := rootCmd.Execute(); err != nil {
		// Print the error since we have SilenceErrors: true
		// This ensures Cobra errors (like missing required flags) are visible
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pdk",
	Short: "Conference paper browsing CLI",
	Long: `pdk is a CLI for browsing conference paper catalogs.

Core features:
  - Immutable paper catalog with tier, author, keyword, and area views
  - Personal overlay: favorite papers and authors, reading notes, ratings
  - Overlay export/import for moving your data between machines
  - Catalog harvesting from the OpenReview API
  - Local HTTP API serving the same views to a frontend

The catalog is read-only reference data; everything personal lives in a
local SQLite overlay under .paperdeck/. All commands output JSON by
default for scripting.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&humanOutput, "human", false, "Use human-readable output instead of JSON")
	rootCmd.Version = Version
}

// getStartingDirectory returns the directory to start searching for a repository.
// Checks global config nexus_path first, then current working directory.
func getStartingDirectory() (string, int) {
	if root := config.GetNexusPath(); root != "" {
		return root, 0
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", outputError(ExitError, "getting current directory: %v", err)
	}
	return cwd, 0
}

// mustFindRepository finds and validates the repository, exits on error.
// Returns the repository root path.
func mustFindRepository() string {
	start, exitCode := getStartingDirectory()
	if exitCode != 0 {
		os.Exit(exitCode)
	}

	repoRoot, err := config.FindRepository(start)
	if err != nil {
		// Show helpful message if no global config exists
		fmt.Fprintln(os.Stderr, config.HelpfulConfigMessage())
		os.Exit(ExitConfigError)
	}
	return repoRoot
}

// mustLoadConfig loads configuration, exits on error.
func mustLoadConfig(repoRoot string) *config.Config {
	cfg, err := config.Load(repoRoot)
	if err != nil {
		exitWithError(ExitConfigError, "loading config: %v", err)
	}
	return cfg
}

// mustOpenStore opens the overlay database, exits on error.
// The caller is responsible for calling Close() on the returned store.
func mustOpenStore(repoRoot string) *overlay.Store {
	store, err := overlay.OpenStore(config.OverlayDBPath(repoRoot))
	if err != nil {
		exitWithError(ExitError, "opening overlay store: %v", err)
	}
	return store
}

// mustLoadCatalog loads the catalog file, exits on error.
func mustLoadCatalog(repoRoot string, cfg *config.Config) []catalog.Paper {
	path := config.CatalogPath(repoRoot, cfg)
	papers, err := catalog.Load(path)
	if err != nil {
		if errors.Is(err, catalog.ErrCatalogUnavailable) {
			exitWithError(ExitDataError, "catalog unavailable at %s\n\nRun 'pdk fetch' to download it, or point catalog-path at an existing file with 'pdk config'.", path)
		}
		exitWithError(ExitDataError, "loading catalog: %v", err)
	}
	return papers
}
