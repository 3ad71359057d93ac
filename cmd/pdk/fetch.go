package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/paperdeck/paperdeck/internal/config"
	"github.com/paperdeck/paperdeck/internal/openreview"
	"github.com/spf13/cobra"
)

var (
	fetchVenue       string
	fetchSubmissions bool
	fetchWorkshops   bool
	fetchConcurrency int
	fetchOutput      string
)

func init() {
	rootCmd.AddCommand(fetchCmd)
	fetchCmd.Flags().StringVar(&fetchVenue, "venue", openreview.DefaultVenueID, "OpenReview venue ID to harvest")
	fetchCmd.Flags().BoolVar(&fetchSubmissions, "submissions", false, "Include all submissions, not just accepted papers")
	fetchCmd.Flags().BoolVar(&fetchWorkshops, "workshops", false, "Also harvest the conference's workshop venues")
	fetchCmd.Flags().IntVar(&fetchConcurrency, "concurrency", 4, "Concurrent workshop harvests")
	fetchCmd.Flags().StringVar(&fetchOutput, "output", "", "Write the catalog here instead of the configured path")
}

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Download the paper catalog from OpenReview",
	Long: `Download accepted papers for a venue from the OpenReview API and
write them as the repository's catalog file.

Credentials are optional for public venues. When needed, set
OPENREVIEW_USERNAME and OPENREVIEW_PASSWORD in the environment (or a
.env file), or openreview_username/openreview_password in the global
config.

Examples:
  pdk fetch
  pdk fetch --venue ICLR.cc/2024/Conference
  pdk fetch --workshops --concurrency 8`,
	Args: cobra.NoArgs,
	RunE: runFetch,
}

func runFetch(cmd *cobra.Command, args []string) error {
	// Load .env file if it exists (for OPENREVIEW_* credentials)
	_ = godotenv.Load()

	repoRoot := mustFindRepository()
	cfg := mustLoadConfig(repoRoot)
	ctx := cmd.Context()

	client := openreview.NewClient()
	username, password := openreviewCredentials()
	if username != "" {
		if err := client.Login(ctx, username, password); err != nil {
			if errors.Is(err, openreview.ErrAuthError) {
				exitWithError(ExitConfigError, "OpenReview login failed: check your credentials")
			}
			exitWithError(ExitError, "logging in: %v", err)
		}
	}

	var entries []openreview.CatalogEntry
	var err error
	if fetchSubmissions {
		entries, err = client.HarvestSubmissions(ctx, fetchVenue)
	} else {
		entries, err = client.HarvestAccepted(ctx, fetchVenue)
	}
	if err != nil {
		exitWithError(ExitError, "harvesting %s: %v", fetchVenue, err)
	}

	if fetchWorkshops {
		prefix := workshopPrefix(fetchVenue)
		ids, err := client.ListWorkshops(ctx, prefix)
		if err != nil {
			exitWithError(ExitError, "listing workshops under %s: %v", prefix, err)
		}

		fmt.Fprintf(os.Stderr, "Harvesting %d workshop venues...\n", len(ids))
		byVenue, err := client.HarvestWorkshops(ctx, ids, fetchConcurrency)
		if err != nil {
			exitWithError(ExitError, "harvesting workshops: %v", err)
		}
		for _, ws := range byVenue {
			entries = append(entries, ws...)
		}
	}

	dest := fetchOutput
	if dest == "" {
		dest = config.CatalogPath(repoRoot, cfg)
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		exitWithError(ExitError, "encoding catalog: %v", err)
	}
	if err := os.WriteFile(dest, data, 0644); err != nil {
		exitWithError(ExitError, "writing %s: %v", dest, err)
	}

	if humanOutput {
		fmt.Printf("Fetched %d papers from %s to %s\n", len(entries), fetchVenue, dest)
	} else {
		outputJSON(map[string]interface{}{
			"status": "fetched",
			"venue":  fetchVenue,
			"papers": len(entries),
			"path":   dest,
		})
	}

	return nil
}

// openreviewCredentials resolves credentials from the environment
// first, then the global config. Both may be empty; public venues
// don't require a login.
func openreviewCredentials() (username, password string) {
	username = os.Getenv("OPENREVIEW_USERNAME")
	password = os.Getenv("OPENREVIEW_PASSWORD")
	if username != "" {
		return username, password
	}

	gc, err := config.LoadGlobalConfig()
	if err != nil {
		return "", ""
	}
	return gc.OpenReviewUsername, gc.OpenReviewPassword
}

// workshopPrefix derives the workshop group prefix from a conference
// venue ID, e.g. "ICLR.cc/2025/Conference" -> "ICLR.cc/2025/Workshop/".
// The trailing "Workshop/" keeps the conference itself and sibling
// groups like Workshop_Proposals out of the workshop harvest.
func workshopPrefix(venueID string) string {
	return strings.TrimSuffix(venueID, "/Conference") + "/Workshop/"
}
