package main

import (
	"fmt"
	"os"

	"github.com/paperdeck/paperdeck/internal/overlay"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export your overlay to a JSON file",
	Long: `Export favorites, notes, and author comments to a JSON file for
backup or for moving to another machine. Pass "-" to write to stdout.

The default file name is ` + overlay.DefaultExportFilename + `.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	repoRoot := mustFindRepository()

	store := mustOpenStore(repoRoot)
	defer store.Close()
	o := store.Load()

	dest := overlay.DefaultExportFilename
	if len(args) == 1 {
		dest = args[0]
	}

	if dest == "-" {
		if err := o.Export(os.Stdout); err != nil {
			exitWithError(ExitError, "%v", err)
		}
		return nil
	}

	f, err := os.Create(dest)
	if err != nil {
		exitWithError(ExitError, "creating %s: %v", dest, err)
	}
	defer f.Close()

	if err := o.Export(f); err != nil {
		exitWithError(ExitError, "%v", err)
	}

	if humanOutput {
		fmt.Printf("Exported %d favorite papers and %d favorite authors to %s\n",
			len(o.FavoritePapers), len(o.FavoriteAuthors), dest)
	} else {
		outputJSON(StatusResponse{Status: "exported", Path: dest})
	}

	return nil
}
