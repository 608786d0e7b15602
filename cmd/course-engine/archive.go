// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/course-engine/internal/archive"
	"github.com/pdiddy/course-engine/internal/pipeline"
)

var archiveCmd = &cobra.Command{
	Use:   "archive",
	Short: "Manage the transcript archive (ingest, search)",
	Long: `Archive manages a local SQLite archive of generated transcripts with
full-text search. Ingest reads a completed run's output directory; search
queries archived transcript text.`,
}

// --- ingest subcommand ---

var archiveIngestCmd = &cobra.Command{
	Use:   "ingest [output-dir]",
	Short: "Archive the transcripts from a completed pipeline run",
	Long: `Ingest reads run.yaml and the transcripts it lists from the output
directory (default output/transcripts) and stores them in the archive with
FTS5 indexing. Re-ingesting a module replaces its archived copy.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runArchiveIngest,
}

func runArchiveIngest(cmd *cobra.Command, args []string) error {
	cfg := pipelineConfig(cmd)

	outputDir := cfg.Generation.OutputDir
	if len(args) == 1 {
		outputDir = args[0]
	}

	result, err := pipeline.LoadOutputs(outputDir)
	if err != nil {
		return err
	}

	store, err := archive.NewStore(cfg.Archive)
	if err != nil {
		return err
	}
	defer store.Close()

	summary, err := store.Ingest(context.Background(), result.Agenda, result.Transcripts, os.Stdout)
	if err != nil {
		return err
	}
	if summary.HasFailures() {
		return fmt.Errorf("%d transcript(s) failed archiving", summary.Failed)
	}
	return nil
}

// --- search subcommand ---

var archiveSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Full-text search over archived transcripts",
	Args:  cobra.ExactArgs(1),
	RunE:  runArchiveSearch,
}

func runArchiveSearch(cmd *cobra.Command, args []string) error {
	cfg := pipelineConfig(cmd)

	maxResults, _ := cmd.Flags().GetInt("max-results")

	store, err := archive.NewStore(cfg.Archive)
	if err != nil {
		return err
	}
	defer store.Close()

	results, err := store.Search(context.Background(), args[0], maxResults)
	if err != nil {
		return err
	}

	for _, r := range results {
		fmt.Printf("%s (%s, archived %s)\n    %s\n", r.Module, r.Slug, r.ArchivedAt, r.Snippet)
	}
	fmt.Printf("\n%d result(s)\n", len(results))
	return nil
}

func init() {
	archiveSearchCmd.Flags().Int("max-results", 0, "maximum number of results (default from config)")

	archiveCmd.AddCommand(archiveIngestCmd)
	archiveCmd.AddCommand(archiveSearchCmd)
	rootCmd.AddCommand(archiveCmd)
}
