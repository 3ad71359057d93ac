package main

import (
	"fmt"

	"github.com/paperdeck/paperdeck/internal/index"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(keywordsCmd)
	rootCmd.AddCommand(areasCmd)
}

var keywordsCmd = &cobra.Command{
	Use:   "keywords",
	Short: "List all keywords in the catalog",
	Long: `List the distinct keywords across all catalog papers, sorted
alphabetically. Useful for finding values to pass to 'pdk papers --keyword'.`,
	Args: cobra.NoArgs,
	RunE: runKeywords,
}

var areasCmd = &cobra.Command{
	Use:   "areas",
	Short: "List all primary areas in the catalog",
	Long: `List the distinct primary areas across all catalog papers, sorted
alphabetically. Useful for finding values to pass to 'pdk papers --area'.`,
	Args: cobra.NoArgs,
	RunE: runAreas,
}

func runKeywords(cmd *cobra.Command, args []string) error {
	repoRoot := mustFindRepository()
	cfg := mustLoadConfig(repoRoot)
	papers := mustLoadCatalog(repoRoot, cfg)

	keywords := index.KeywordSet(papers)
	if humanOutput {
		for _, kw := range keywords {
			fmt.Println(kw)
		}
	} else {
		outputJSON(map[string][]string{"keywords": keywords})
	}

	return nil
}

func runAreas(cmd *cobra.Command, args []string) error {
	repoRoot := mustFindRepository()
	cfg := mustLoadConfig(repoRoot)
	papers := mustLoadCatalog(repoRoot, cfg)

	areas := index.AreaSet(papers)
	if humanOutput {
		for _, a := range areas {
			fmt.Println(a)
		}
	} else {
		outputJSON(map[string][]string{"areas": areas})
	}

	return nil
}
