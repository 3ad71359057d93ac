package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/paperdeck/paperdeck/internal/config"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config [key] [value]",
	Short: "Get or set configuration values",
	Long: `Get or set configuration values.

Usage:
  pdk config                             # Show all config
  pdk config page-size                   # Get specific value
  pdk config page-size 50                # Set value
  pdk config catalog-path ~/papers.json  # Use an existing catalog file
  pdk config serve-addr 127.0.0.1:9000   # Set serve listen address

Keys:
  catalog-path  Catalog JSON file (relative paths resolve against the repo root)
  page-size     Papers/authors per page for list commands
  serve-addr    Listen address for 'pdk serve'`,
	Args: cobra.MaximumNArgs(2),
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	repoRoot := mustFindRepository()
	cfg := mustLoadConfig(repoRoot)

	// No args: show all config
	if len(args) == 0 {
		if humanOutput {
			fmt.Printf("catalog-path: %s\n", cfg.CatalogPath)
			fmt.Printf("page-size:    %d\n", cfg.EffectivePageSize())
			fmt.Printf("serve-addr:   %s\n", cfg.EffectiveServeAddr())
		} else {
			outputJSON(ConfigResponse{
				CatalogPath: cfg.CatalogPath,
				PageSize:    cfg.EffectivePageSize(),
				ServeAddr:   cfg.EffectiveServeAddr(),
			})
		}
		return nil
	}

	// Convert key format (catalog_path -> catalog-path)
	key := args[0]
	normalizedKey := normalizeKey(key)

	// One arg: get specific value
	if len(args) == 1 {
		switch normalizedKey {
		case "catalog-path":
			if humanOutput {
				fmt.Println(cfg.CatalogPath)
			} else {
				outputJSON(map[string]string{"catalog_path": cfg.CatalogPath})
			}
		case "page-size":
			if humanOutput {
				fmt.Println(cfg.EffectivePageSize())
			} else {
				outputJSON(map[string]int{"page_size": cfg.EffectivePageSize()})
			}
		case "serve-addr":
			if humanOutput {
				fmt.Println(cfg.EffectiveServeAddr())
			} else {
				outputJSON(map[string]string{"serve_addr": cfg.EffectiveServeAddr()})
			}
		default:
			exitWithError(ExitError, "unknown configuration key: %s", key)
		}
		return nil
	}

	// Two args: set value
	value := args[1]

	switch normalizedKey {
	case "catalog-path":
		cfg.CatalogPath = config.ExpandPath(value)

	case "page-size":
		size, err := strconv.Atoi(value)
		if err != nil {
			exitWithError(ExitError, "page size must be a number, got %q", value)
		}
		if err := config.ValidatePageSize(size); err != nil {
			exitWithError(ExitError, "%v", err)
		}
		cfg.PageSize = size

	case "serve-addr":
		cfg.ServeAddr = value

	default:
		exitWithError(ExitError, "unknown configuration key: %s", key)
	}

	// Save config
	if err := cfg.Save(repoRoot); err != nil {
		exitWithError(ExitError, "saving config: %v", err)
	}

	// Output success
	if humanOutput {
		fmt.Printf("Updated %s to %s\n", key, value)
	} else {
		outputJSON(UpdateResponse{
			Status: "updated",
			Key:    normalizedKey,
			Value:  value,
		})
	}

	return nil
}

// normalizeKey converts key formats (page-size, page_size, PageSize) to consistent format
func normalizeKey(key string) string {
	key = strings.ToLower(key)
	key = strings.ReplaceAll(key, "_", "-")
	return key
}
