package main

import (
	"fmt"

	"github.com/paperdeck/paperdeck/internal/catalog"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(favCmd)
	favCmd.AddCommand(favPaperCmd)
	favCmd.AddCommand(favAuthorCmd)
}

var favCmd = &cobra.Command{
	Use:   "fav",
	Short: "Toggle favorite papers and authors",
}

var favPaperCmd = &cobra.Command{
	Use:   "paper <title>",
	Short: "Toggle a paper as favorite",
	Long: `Toggle a paper's favorite state by its exact title.

Favoriting creates an empty note entry; un-favoriting discards the note
along with any status, rating, or comments on it.

Example:
  pdk fav paper "Scaling Laws for Neural Language Models"`,
	Args: cobra.ExactArgs(1),
	RunE: runFavPaper,
}

var favAuthorCmd = &cobra.Command{
	Use:   "author <id>",
	Short: "Toggle an author as favorite",
	Long: `Toggle an author's favorite state by their OpenReview profile ID.

Un-favoriting an author also discards any comment you left on them.

Example:
  pdk fav author "~Geoffrey_Hinton1"`,
	Args: cobra.ExactArgs(1),
	RunE: runFavAuthor,
}

// FavResponse reports the favorite state after a toggle.
type FavResponse struct {
	Title    string `json:"title,omitempty"`
	ID       string `json:"id,omitempty"`
	Favorite bool   `json:"favorite"`
}

func runFavPaper(cmd *cobra.Command, args []string) error {
	repoRoot := mustFindRepository()
	cfg := mustLoadConfig(repoRoot)
	papers := mustLoadCatalog(repoRoot, cfg)

	title := args[0]
	if catalog.FindByTitle(papers, title) == nil {
		exitWithError(ExitError, "paper not found: %s", title)
	}

	store := mustOpenStore(repoRoot)
	defer store.Close()

	_, fav, err := store.ToggleFavoritePaper(title)
	if err != nil {
		exitWithError(ExitError, "saving overlay: %v", err)
	}

	if humanOutput {
		if fav {
			fmt.Printf("Favorited: %s\n", title)
		} else {
			fmt.Printf("Un-favorited: %s\n", title)
		}
	} else {
		outputJSON(FavResponse{Title: title, Favorite: fav})
	}

	return nil
}

func runFavAuthor(cmd *cobra.Command, args []string) error {
	repoRoot := mustFindRepository()

	store := mustOpenStore(repoRoot)
	defer store.Close()

	id := args[0]
	_, fav, err := store.ToggleFavoriteAuthor(id)
	if err != nil {
		exitWithError(ExitError, "saving overlay: %v", err)
	}

	if humanOutput {
		if fav {
			fmt.Printf("Favorited: %s\n", id)
		} else {
			fmt.Printf("Un-favorited: %s\n", id)
		}
	} else {
		outputJSON(FavResponse{ID: id, Favorite: fav})
	}

	return nil
}
