package main

import (
	"fmt"
	"os"

	"github.com/paperdeck/paperdeck/internal/config"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a paperdeck repository",
	Long: `Initialize a paperdeck repository in the current directory.

Creates a .paperdeck directory holding the config file, the overlay
database, and (after 'pdk fetch') the paper catalog.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		exitWithError(ExitError, "getting current directory: %v", err)
	}

	if err := config.Init(cwd); err != nil {
		exitWithError(ExitConfigError, "%v", err)
	}

	if humanOutput {
		fmt.Printf("Initialized paperdeck repository in %s\n", config.PaperdeckPath(cwd))
	} else {
		outputJSON(StatusResponse{Status: "initialized", Path: config.PaperdeckPath(cwd)})
	}

	return nil
}
