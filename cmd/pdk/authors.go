package main

import (
	"fmt"
	"strings"

	"github.com/paperdeck/paperdeck/internal/index"
	"github.com/paperdeck/paperdeck/internal/query"
	"github.com/spf13/cobra"
)

var (
	authorsSearch   string
	authorsPage     int
	authorsPageSize int
)

func init() {
	rootCmd.AddCommand(authorsCmd)
	authorsCmd.Flags().StringVar(&authorsSearch, "search", "", "Only authors whose name contains this text")
	authorsCmd.Flags().IntVar(&authorsPage, "page", 1, "Page number (1-based)")
	authorsCmd.Flags().IntVar(&authorsPageSize, "page-size", 0, "Authors per page (0 uses the configured page size)")
}

var authorsCmd = &cobra.Command{
	Use:   "authors",
	Short: "List catalog authors with paper counts",
	Long: `List all authors appearing in the catalog, grouped by profile ID,
with the number of papers each one has.

Authors are sorted by display name. The search filter is a
case-insensitive substring match.

Examples:
  pdk authors
  pdk authors --search hinton`,
	Args: cobra.NoArgs,
	RunE: runAuthors,
}

func runAuthors(cmd *cobra.Command, args []string) error {
	repoRoot := mustFindRepository()
	cfg := mustLoadConfig(repoRoot)
	papers := mustLoadCatalog(repoRoot, cfg)

	store := mustOpenStore(repoRoot)
	defer store.Close()
	o := store.Load()

	idx := index.BuildAuthorIndex(papers)

	var views []AuthorView
	for _, id := range index.SortedIDs(idx) {
		g := idx[id]
		if authorsSearch != "" && !strings.Contains(strings.ToLower(g.Name), strings.ToLower(authorsSearch)) {
			continue
		}
		v := AuthorView{ID: id, Name: g.Name, PaperCount: len(g.Papers), Favorite: o.IsFavoriteAuthor(id)}
		if note, ok := o.AuthorComments[id]; ok {
			v.Note = &note
		}
		views = append(views, v)
	}

	pageSize := authorsPageSize
	if pageSize < 1 {
		pageSize = cfg.EffectivePageSize()
	}
	pg := query.Paginate(views, pageSize, authorsPage)

	if humanOutput {
		for _, v := range pg.Items {
			marker := " "
			if v.Favorite {
				marker = "*"
			}
			fmt.Printf("%s %s (%s): %d papers\n", marker, v.Name, v.ID, v.PaperCount)
		}
		fmt.Printf("\nPage %d of %d (%d authors)\n", pg.Number, pg.PageCount, pg.TotalCount)
	} else {
		outputJSON(PageResponse[AuthorView]{
			Items:      pg.Items,
			TotalCount: pg.TotalCount,
			PageCount:  pg.PageCount,
			Page:       pg.Number,
		})
	}

	return nil
}
