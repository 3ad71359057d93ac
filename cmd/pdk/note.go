package main

import (
	"fmt"

	"github.com/paperdeck/paperdeck/internal/catalog"
	"github.com/paperdeck/paperdeck/internal/overlay"
	"github.com/spf13/cobra"
)

var (
	noteStatus   string
	noteRating   int
	noteComments string

	authorComments string
)

func init() {
	rootCmd.AddCommand(noteCmd)
	noteCmd.AddCommand(notePaperCmd)
	noteCmd.AddCommand(noteAuthorCmd)

	notePaperCmd.Flags().StringVar(&noteStatus, "status", "", `Reading status ("TODO", "Done", or "" to clear)`)
	notePaperCmd.Flags().IntVar(&noteRating, "rating", 0, "Personal rating 1-5 (0 to clear)")
	notePaperCmd.Flags().StringVar(&noteComments, "comments", "", "Free-form comments")

	noteAuthorCmd.Flags().StringVar(&authorComments, "comments", "", "Free-form comments")
	noteAuthorCmd.MarkFlagRequired("comments")
}

var noteCmd = &cobra.Command{
	Use:   "note",
	Short: "Annotate papers and authors",
}

var notePaperCmd = &cobra.Command{
	Use:   "paper <title>",
	Short: "Set reading status, rating, or comments on a paper",
	Long: `Set reading status, rating, or comments on a paper by its exact
title. Only the flags you pass are changed; the rest of the note is
kept. Annotating a paper that is not yet a favorite makes it one.

Examples:
  pdk note paper "Scaling Laws for Neural Language Models" --status TODO
  pdk note paper "Scaling Laws for Neural Language Models" --rating 4 --comments "solid ablations"`,
	Args: cobra.ExactArgs(1),
	RunE: runNotePaper,
}

var noteAuthorCmd = &cobra.Command{
	Use:   "author <id>",
	Short: "Set a comment on an author",
	Long: `Set a comment on an author by their OpenReview profile ID.

The comment is stored whether or not the author is a favorite, but it
only shows up in 'pdk favorites authors' once you favorite them with
'pdk fav author'.

Example:
  pdk note author "~Geoffrey_Hinton1" --comments "great talks"`,
	Args: cobra.ExactArgs(1),
	RunE: runNoteAuthor,
}

// NoteResponse reports the note state after an update.
type NoteResponse struct {
	Title string            `json:"title"`
	Note  overlay.PaperNote `json:"note"`
}

func runNotePaper(cmd *cobra.Command, args []string) error {
	repoRoot := mustFindRepository()
	cfg := mustLoadConfig(repoRoot)
	papers := mustLoadCatalog(repoRoot, cfg)

	title := args[0]
	if catalog.FindByTitle(papers, title) == nil {
		exitWithError(ExitError, "paper not found: %s", title)
	}

	var patch overlay.PaperPatch
	if cmd.Flags().Changed("status") {
		if err := overlay.ValidateStatus(noteStatus); err != nil {
			exitWithError(ExitError, "%v", err)
		}
		patch.Status = &noteStatus
	}
	if cmd.Flags().Changed("rating") {
		if err := overlay.ValidateRating(noteRating); err != nil {
			exitWithError(ExitError, "%v", err)
		}
		patch.Rating = &noteRating
	}
	if cmd.Flags().Changed("comments") {
		patch.Comments = &noteComments
	}
	if patch.Status == nil && patch.Rating == nil && patch.Comments == nil {
		exitWithError(ExitError, "nothing to change: pass --status, --rating, or --comments")
	}

	store := mustOpenStore(repoRoot)
	defer store.Close()

	note, err := store.SetPaperNote(title, patch)
	if err != nil {
		exitWithError(ExitError, "saving overlay: %v", err)
	}

	if humanOutput {
		fmt.Printf("Updated note on %s\n", truncateString(title, ListTitleMaxLen))
		if note.Status != "" {
			fmt.Printf("  Status:   %s\n", note.Status)
		}
		if note.Rating > 0 {
			fmt.Printf("  Rating:   %d/5\n", note.Rating)
		}
		if note.Comments != "" {
			fmt.Printf("  Comments: %s\n", note.Comments)
		}
	} else {
		outputJSON(NoteResponse{Title: title, Note: note})
	}

	return nil
}

func runNoteAuthor(cmd *cobra.Command, args []string) error {
	repoRoot := mustFindRepository()

	store := mustOpenStore(repoRoot)
	defer store.Close()

	id := args[0]
	note, err := store.SetAuthorComment(id, authorComments)
	if err != nil {
		exitWithError(ExitError, "saving overlay: %v", err)
	}

	if humanOutput {
		fmt.Printf("Updated comment on %s: %s\n", id, note.Comments)
	} else {
		outputJSON(map[string]interface{}{"id": id, "note": note})
	}

	return nil
}
