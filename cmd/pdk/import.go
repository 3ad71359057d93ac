package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/paperdeck/paperdeck/internal/overlay"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(importCmd)
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import an overlay from a JSON file",
	Long: `Import favorites, notes, and author comments from a previously
exported JSON file.

WARNING: importing replaces your entire overlay with the file's
contents. Current favorites and notes not present in the file are
lost. A malformed file leaves the overlay unchanged.

Example:
  pdk import ` + overlay.DefaultExportFilename,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

// ImportResponse summarizes what an import brought in.
type ImportResponse struct {
	Status          string `json:"status"`
	FavoritePapers  int    `json:"favorite_papers"`
	FavoriteAuthors int    `json:"favorite_authors"`
	AuthorComments  int    `json:"author_comments"`
}

func runImport(cmd *cobra.Command, args []string) error {
	repoRoot := mustFindRepository()

	data, err := os.ReadFile(args[0])
	if err != nil {
		exitWithError(ExitError, "reading %s: %v", args[0], err)
	}

	o, err := overlay.Parse(data)
	if err != nil {
		if errors.Is(err, overlay.ErrImportFormat) {
			exitWithError(ExitDataError, "%v", err)
		}
		exitWithError(ExitError, "%v", err)
	}

	store := mustOpenStore(repoRoot)
	defer store.Close()

	if err := store.Replace(o); err != nil {
		exitWithError(ExitError, "saving overlay: %v", err)
	}

	if humanOutput {
		fmt.Printf("Imported %d favorite papers, %d favorite authors, %d author comments\n",
			len(o.FavoritePapers), len(o.FavoriteAuthors), len(o.AuthorComments))
	} else {
		outputJSON(ImportResponse{
			Status:          "imported",
			FavoritePapers:  len(o.FavoritePapers),
			FavoriteAuthors: len(o.FavoriteAuthors),
			AuthorComments:  len(o.AuthorComments),
		})
	}

	return nil
}
