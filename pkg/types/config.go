package types

import (
	"errors"
	"fmt"
)

// ErrConfiguration is the class for invalid pipeline configuration.
// Reserved for schema validation; Validate wraps it for every violation.
var ErrConfiguration = errors.New("invalid configuration")

// AIConfig holds shared settings for stages that call a Generative AI API.
// No stage calls the API yet; the fields are threaded through so the
// LLM-backed stage bodies can be dropped in without a config change.
type AIConfig struct {
	// Model is the AI model identifier (e.g. "claude-sonnet-4-5-20250929").
	Model string `json:"model" yaml:"model"`

	// APIKey is the authentication key for the AI API.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// MaxRetries is the number of retry attempts for failed API calls (default 3).
	MaxRetries int `json:"max_retries" yaml:"max_retries"`
}

// TranscriptsConfig holds settings for the raw transcript loading stage.
type TranscriptsConfig struct {
	// Modules lists the module titles to load transcripts for. The driver
	// sets this to the refined agenda; absent means an empty list.
	Modules []Module `json:"modules" yaml:"modules"`

	// Dir is the directory of per-module raw transcripts, one
	// <slug>.md file per module. Empty means no raw transcripts are
	// available and every module loads as empty text.
	Dir string `json:"dir" yaml:"dir"`
}

// GenerationConfig holds settings for the transcript generation stage.
type GenerationConfig struct {
	AIConfig `yaml:",inline"`

	// OutputDir is the directory for generated transcripts
	// (default "output/transcripts").
	OutputDir string `json:"output_dir" yaml:"output_dir"`
}

// ArchiveConfig holds settings for the transcript archive.
type ArchiveConfig struct {
	// Dir is the base directory for the archive (contains index/),
	// default "archive".
	Dir string `json:"dir" yaml:"dir"`

	// MaxResults is the default maximum number of search results (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// PipelineConfig groups all stage configurations for one pipeline run.
// It is passed by value to every stage and never mutated mid-run.
type PipelineConfig struct {
	Transcripts TranscriptsConfig `json:"transcripts" yaml:"transcripts"`
	Generation  GenerationConfig  `json:"generation" yaml:"generation"`
	Archive     ArchiveConfig     `json:"archive" yaml:"archive"`
}

// DefaultConfig returns a PipelineConfig with every documented default
// filled in.
func DefaultConfig() PipelineConfig {
	return PipelineConfig{
		Generation: GenerationConfig{
			AIConfig:  AIConfig{MaxRetries: 3},
			OutputDir: "output/transcripts",
		},
		Archive: ArchiveConfig{
			Dir:        "archive",
			MaxResults: 20,
		},
	}
}

// Validate checks the configuration for schema violations. Unknown keys
// are tolerated upstream; only value-level violations are reported here.
func (c PipelineConfig) Validate() error {
	if c.Generation.MaxRetries < 0 {
		return fmt.Errorf("%w: generation.max_retries must not be negative", ErrConfiguration)
	}
	if c.Generation.OutputDir == "" {
		return fmt.Errorf("%w: generation.output_dir must not be empty", ErrConfiguration)
	}
	if c.Archive.MaxResults < 0 {
		return fmt.Errorf("%w: archive.max_results must not be negative", ErrConfiguration)
	}
	return nil
}
