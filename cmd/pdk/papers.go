package main

import (
	"fmt"

	"github.com/paperdeck/paperdeck/internal/query"
	"github.com/spf13/cobra"
)

var (
	papersKeyword  string
	papersArea     string
	papersAuthor   string
	papersPage     int
	papersPageSize int
)

func init() {
	rootCmd.AddCommand(papersCmd)
	papersCmd.Flags().StringVar(&papersKeyword, "keyword", "", "Only papers tagged with this keyword (exact match)")
	papersCmd.Flags().StringVar(&papersArea, "area", "", "Only papers in this primary area (exact match)")
	papersCmd.Flags().StringVar(&papersAuthor, "author", "", "Only papers with an author name containing this text")
	papersCmd.Flags().IntVar(&papersPage, "page", 1, "Page number (1-based)")
	papersCmd.Flags().IntVar(&papersPageSize, "page-size", 0, "Papers per page (0 uses the configured page size)")
}

var papersCmd = &cobra.Command{
	Use:   "papers",
	Short: "List catalog papers, best-rated first",
	Long: `List catalog papers sorted by average review rating, best first.

Filters combine with AND. Keyword and area filters match exactly; the
author filter is a case-insensitive substring match on author names.

Examples:
  pdk papers
  pdk papers --keyword "reinforcement learning" --page 2
  pdk papers --author bengio --area "optimization"`,
	Args: cobra.NoArgs,
	RunE: runPapers,
}

func runPapers(cmd *cobra.Command, args []string) error {
	repoRoot := mustFindRepository()
	cfg := mustLoadConfig(repoRoot)
	papers := mustLoadCatalog(repoRoot, cfg)

	store := mustOpenStore(repoRoot)
	defer store.Close()
	o := store.Load()

	filters := query.Filters{
		Keyword: papersKeyword,
		Area:    papersArea,
		Author:  papersAuthor,
	}
	pageSize := papersPageSize
	if pageSize < 1 {
		pageSize = cfg.EffectivePageSize()
	}

	filtered := query.Apply(papers, filters)
	pg := query.Paginate(newPaperViews(filtered, o), pageSize, papersPage)

	if humanOutput {
		printPaperListHuman(pg.Items, pg.Number, pg.PageCount, pg.TotalCount)
	} else {
		outputJSON(PageResponse[PaperView]{
			Items:      pg.Items,
			TotalCount: pg.TotalCount,
			PageCount:  pg.PageCount,
			Page:       pg.Number,
		})
	}

	return nil
}

// printPaperListHuman prints a page of papers in human-readable format.
// Shared by the papers and favorites commands.
func printPaperListHuman(views []PaperView, page, pageCount, total int) {
	for _, v := range views {
		marker := " "
		if v.Favorite {
			marker = "*"
		}
		fmt.Printf("%s [%.1f] (%s) %s\n", marker, v.AverageRating, v.Tier, truncateString(v.Title, ListTitleMaxLen))
		fmt.Printf("      %s\n", formatAuthorsShort(v.Authors, 3))
	}
	if pageCount > 1 {
		fmt.Printf("\nPage %d of %d (%d papers)\n", page, pageCount, total)
	} else {
		fmt.Printf("\n%d papers\n", total)
	}
}
