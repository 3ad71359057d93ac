package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/paperdeck/paperdeck/internal/catalog"
	"github.com/paperdeck/paperdeck/internal/config"
	"github.com/paperdeck/paperdeck/internal/pdf"
	"github.com/spf13/cobra"
)

var (
	pdfPages int
	pdfDir   string
)

func init() {
	rootCmd.AddCommand(pdfCmd)
	pdfCmd.Flags().IntVar(&pdfPages, "pages", pdf.DefaultPreviewPages, "Pages to include in the text preview")
	pdfCmd.Flags().StringVar(&pdfDir, "dir", "", "Download directory (default .paperdeck/pdfs)")
}

var pdfCmd = &cobra.Command{
	Use:   "pdf <title>",
	Short: "Download a paper's PDF and print a text preview",
	Long: `Download a paper's PDF by its exact title and print a plain-text
preview of the first pages. Already-downloaded PDFs are re-used.

Example:
  pdk pdf "Scaling Laws for Neural Language Models" --pages 2`,
	Args: cobra.ExactArgs(1),
	RunE: runPDF,
}

// PDFResponse reports where a PDF landed and its text preview.
type PDFResponse struct {
	Title   string `json:"title"`
	Path    string `json:"path"`
	Preview string `json:"preview,omitempty"`
}

func runPDF(cmd *cobra.Command, args []string) error {
	repoRoot := mustFindRepository()
	cfg := mustLoadConfig(repoRoot)
	papers := mustLoadCatalog(repoRoot, cfg)

	title := args[0]
	p := catalog.FindByTitle(papers, title)
	if p == nil {
		exitWithError(ExitError, "paper not found: %s", title)
	}

	url := pdfURL(*p)
	if url == "" {
		exitWithError(ExitDataError, "no PDF recorded for: %s", title)
	}

	dir := pdfDir
	if dir == "" {
		dir = filepath.Join(config.PaperdeckPath(repoRoot), "pdfs")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		exitWithError(ExitError, "creating %s: %v", dir, err)
	}

	dest := filepath.Join(dir, pdfFilename(*p))
	if _, err := os.Stat(dest); err != nil {
		if err := pdf.Download(cmd.Context(), url, dest); err != nil {
			exitWithError(ExitError, "%v", err)
		}
	}

	preview, err := pdf.ExtractPreview(dest, pdfPages)
	if err != nil {
		exitWithError(ExitDataError, "%v", err)
	}

	if humanOutput {
		fmt.Printf("PDF: %s\n\n", dest)
		if preview != "" {
			fmt.Println(wrapText(preview, DetailTextWrapWidth, ""))
		}
	} else {
		outputJSON(PDFResponse{Title: title, Path: dest, Preview: preview})
	}

	return nil
}

// pdfURL resolves a paper's PDF location to an absolute URL. Catalog
// entries harvested from OpenReview carry site-relative paths like
// "/pdf/abc123.pdf".
func pdfURL(p catalog.Paper) string {
	if p.PDF == "" {
		return ""
	}
	if strings.HasPrefix(p.PDF, "http://") || strings.HasPrefix(p.PDF, "https://") {
		return p.PDF
	}
	return "https://openreview.net" + p.PDF
}

// pdfFilename picks a stable local file name for a paper's PDF,
// preferring the forum ID over the title.
func pdfFilename(p catalog.Paper) string {
	if p.Forum != "" {
		return p.Forum + ".pdf"
	}

	name := strings.ToLower(p.Title)
	name = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		default:
			return '-'
		}
	}, name)
	return strings.Trim(name, "-") + ".pdf"
}
