package main

import (
	"fmt"

	"github.com/paperdeck/paperdeck/internal/overlay"
	"github.com/paperdeck/paperdeck/internal/query"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(favoritesCmd)
	favoritesCmd.AddCommand(favoritePapersCmd)
	favoritesCmd.AddCommand(favoriteAuthorsCmd)
}

var favoritesCmd = &cobra.Command{
	Use:   "favorites",
	Short: "List favorite papers and authors",
}

var favoritePapersCmd = &cobra.Command{
	Use:   "papers",
	Short: "List favorite papers, best-rated first",
	Long: `List your favorite papers with their notes, sorted by average
review rating. Favorites whose title no longer appears in the catalog
are kept in the overlay but not shown here.`,
	Args: cobra.NoArgs,
	RunE: runFavoritePapers,
}

var favoriteAuthorsCmd = &cobra.Command{
	Use:   "authors",
	Short: "List favorite authors with their papers",
	Long: `List your favorite authors in the order you favorited them, each
with their catalog papers and any comment you left.`,
	Args: cobra.NoArgs,
	RunE: runFavoriteAuthors,
}

func runFavoritePapers(cmd *cobra.Command, args []string) error {
	repoRoot := mustFindRepository()
	cfg := mustLoadConfig(repoRoot)
	papers := mustLoadCatalog(repoRoot, cfg)

	store := mustOpenStore(repoRoot)
	defer store.Close()
	o := store.Load()

	favs := query.Apply(query.FavoritePapers(papers, o), query.Filters{})
	views := newPaperViews(favs, o)

	if humanOutput {
		printPaperListHuman(views, 1, 1, len(views))
	} else {
		outputJSON(map[string][]PaperView{"papers": views})
	}

	return nil
}

// FavoriteAuthorView is one favorite author with their catalog papers.
type FavoriteAuthorView struct {
	ID     string              `json:"id"`
	Name   string              `json:"name"`
	Papers []PaperView         `json:"papers"`
	Note   *overlay.AuthorNote `json:"note,omitempty"`
}

func runFavoriteAuthors(cmd *cobra.Command, args []string) error {
	repoRoot := mustFindRepository()
	cfg := mustLoadConfig(repoRoot)
	papers := mustLoadCatalog(repoRoot, cfg)

	store := mustOpenStore(repoRoot)
	defer store.Close()
	o := store.Load()

	groups := query.FavoriteAuthorGroups(papers, o)
	views := make([]FavoriteAuthorView, 0, len(groups))
	for _, g := range groups {
		v := FavoriteAuthorView{ID: g.ID, Name: g.Name, Papers: newPaperViews(g.Papers, o)}
		if note, ok := o.AuthorComments[g.ID]; ok {
			v.Note = &note
		}
		views = append(views, v)
	}

	if humanOutput {
		for _, v := range views {
			fmt.Printf("%s (%s)\n", v.Name, v.ID)
			if v.Note != nil && v.Note.Comments != "" {
				fmt.Printf("  Note: %s\n", wrapText(v.Note.Comments, TextWrapWidth, "        "))
			}
			for _, p := range v.Papers {
				fmt.Printf("  [%.1f] %s\n", p.AverageRating, truncateString(p.Title, ListTitleMaxLen))
			}
			fmt.Println()
		}
		fmt.Printf("%d favorite authors\n", len(views))
	} else {
		outputJSON(map[string][]FavoriteAuthorView{"authors": views})
	}

	return nil
}
