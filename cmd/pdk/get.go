package main

import (
	"fmt"
	"strings"

	"github.com/paperdeck/paperdeck/internal/catalog"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(getCmd)
}

var getCmd = &cobra.Command{
	Use:   "get <title>",
	Short: "Get a single paper by title",
	Long: `Get a single paper by its exact title, including the abstract,
forum link, and your favorite/note state.

Example:
  pdk get "Scaling Laws for Neural Language Models"`,
	Args: cobra.ExactArgs(1),
	RunE: runGet,
}

func runGet(cmd *cobra.Command, args []string) error {
	repoRoot := mustFindRepository()
	cfg := mustLoadConfig(repoRoot)
	papers := mustLoadCatalog(repoRoot, cfg)

	title := args[0]
	p := catalog.FindByTitle(papers, title)
	if p == nil {
		exitWithError(ExitError, "paper not found: %s", title)
	}

	store := mustOpenStore(repoRoot)
	defer store.Close()

	view := newPaperView(*p, store.Load(), true)
	if humanOutput {
		printPaperDetail(*p, view)
	} else {
		outputJSON(view)
	}

	return nil
}

func printPaperDetail(p catalog.Paper, v PaperView) {
	fmt.Println(truncateString(p.Title, DetailTextWrapWidth))
	fmt.Println(strings.Repeat("═", DetailTextWrapWidth))
	fmt.Println()

	fmt.Printf("Authors:  %s\n", wrapText(formatAuthorsFull(p.Authors), TextWrapWidth, "          "))
	fmt.Printf("Venue:    %s (%s)\n", p.Venue, v.Tier)
	fmt.Printf("Rating:   %.2f\n", p.AverageRating)

	if p.PrimaryArea != "" {
		fmt.Printf("Area:     %s\n", p.PrimaryArea)
	}
	if len(p.Keywords) > 0 {
		fmt.Printf("Keywords: %s\n", wrapText(strings.Join(p.Keywords, ", "), TextWrapWidth, "          "))
	}
	if url := p.ForumURL(); url != "" {
		fmt.Printf("Forum:    %s\n", url)
	}

	if p.Abstract != "" {
		fmt.Println()
		fmt.Println("Abstract:")
		fmt.Printf("  %s\n", wrapText(p.Abstract, DetailTextWrapWidth, "  "))
	}

	if v.Favorite {
		fmt.Println()
		fmt.Println("Favorite: yes")
		if v.Note != nil {
			if v.Note.Status != "" {
				fmt.Printf("Status:   %s\n", v.Note.Status)
			}
			if v.Note.Rating > 0 {
				fmt.Printf("My rate:  %d/5\n", v.Note.Rating)
			}
			if v.Note.Comments != "" {
				fmt.Printf("Notes:    %s\n", wrapText(v.Note.Comments, TextWrapWidth, "          "))
			}
		}
	}
}
