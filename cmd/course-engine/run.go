// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/course-engine/internal/pipeline"
	"github.com/pdiddy/course-engine/pkg/types"
)

var runCmd = &cobra.Command{
	Use:   "run <syllabus.md>",
	Short: "Run the full syllabus-to-transcript pipeline",
	Long: `Run parses module headings from the syllabus, plans the agenda, loads
raw transcripts, aggregates research notes, edits chapter drafts, and writes
one generated transcript per module plus a run.yaml manifest to the output
directory. The run is fail-fast: the first stage error aborts it and nothing
is written.`,
	Args: cobra.ExactArgs(1),
	RunE: runPipeline,
}

func runPipeline(cmd *cobra.Command, args []string) error {
	cfg := pipelineConfig(cmd)
	if err := cfg.Validate(); err != nil {
		return err
	}

	result, err := pipeline.Run(context.Background(), args[0], cfg, nil, os.Stdout)
	if err != nil {
		return err
	}

	manifest, err := pipeline.WriteOutputs(result, args[0], cfg.Generation.OutputDir)
	if err != nil {
		return err
	}

	fmt.Printf("\nwrote %d transcript(s) to %s\n", len(manifest.Modules), cfg.Generation.OutputDir)
	return nil
}

// pipelineConfig builds the run configuration from defaults, the config
// file, and command-line flags, in increasing precedence.
func pipelineConfig(cmd *cobra.Command) types.PipelineConfig {
	cfg := types.DefaultConfig()

	if v := viper.GetString("transcripts.dir"); v != "" {
		cfg.Transcripts.Dir = v
	}
	if v := viper.GetString("generation.output_dir"); v != "" {
		cfg.Generation.OutputDir = v
	}
	if v := viper.GetString("generation.model"); v != "" {
		cfg.Generation.Model = v
	}
	if v := viper.GetString("archive.dir"); v != "" {
		cfg.Archive.Dir = v
	}
	if v := viper.GetInt("archive.max_results"); v != 0 {
		cfg.Archive.MaxResults = v
	}

	if v, _ := cmd.Flags().GetString("transcripts-dir"); v != "" {
		cfg.Transcripts.Dir = v
	}
	if v, _ := cmd.Flags().GetString("output-dir"); v != "" {
		cfg.Generation.OutputDir = v
	}
	if v, _ := cmd.Flags().GetString("model"); v != "" {
		cfg.Generation.Model = v
	}

	cfg.Generation.APIKey = secretDefault("anthropic-api-key", cfg.Generation.APIKey)
	return cfg
}

func init() {
	runCmd.Flags().String("transcripts-dir", "", "directory of per-module raw transcripts (<slug>.md)")
	runCmd.Flags().String("output-dir", "", "directory for generated transcripts (default output/transcripts)")
	runCmd.Flags().String("model", "", "AI model identifier for the LLM-backed stages")

	rootCmd.AddCommand(runCmd)
}
