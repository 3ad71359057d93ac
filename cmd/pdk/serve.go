package main

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/paperdeck/paperdeck/internal/server"
	"github.com/spf13/cobra"
)

var serveAddr string

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (default from config, "+
		"falling back to 127.0.0.1:8970)")
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the catalog and overlay over a local HTTP API",
	Long: `Serve the catalog and overlay over a local HTTP API for frontends.

The API mirrors the CLI views: paper listing with filters and
pagination, author groups, favorites, notes, and overlay
export/import. The catalog is loaded once at startup; re-run serve
after fetching a new catalog.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	repoRoot := mustFindRepository()
	cfg := mustLoadConfig(repoRoot)
	papers := mustLoadCatalog(repoRoot, cfg)

	store := mustOpenStore(repoRoot)
	defer store.Close()

	addr := serveAddr
	if addr == "" {
		addr = cfg.EffectiveServeAddr()
	}

	gin.SetMode(gin.ReleaseMode)
	srv := server.New(papers, store, cfg.EffectivePageSize())

	fmt.Fprintf(os.Stderr, "Serving %d papers on http://%s\n", len(papers), addr)
	if err := srv.Router().Run(addr); err != nil {
		exitWithError(ExitError, "serving: %v", err)
	}

	return nil
}
