// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/course-engine/pkg/types"
)

const manifestFile = "run.yaml"

// WriteOutputs writes every generated transcript from a completed run
// to outputDir as <slug>.md, plus a run.yaml manifest recording the
// agenda order. It is called only after the whole run has succeeded, so
// a failed run leaves nothing on disk.
func WriteOutputs(result *Result, syllabusPath, outputDir string) (*types.RunManifest, error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	manifest := &types.RunManifest{
		Syllabus:    syllabusPath,
		GeneratedAt: time.Now().UTC(),
	}

	seen := make(map[types.Module]bool, len(result.Agenda))
	for _, m := range result.Agenda {
		if seen[m] {
			continue
		}
		seen[m] = true

		name := m.Slug() + ".md"
		path := filepath.Join(outputDir, name)
		if err := os.WriteFile(path, []byte(result.Transcripts[m]+"\n"), 0o644); err != nil {
			return nil, fmt.Errorf("writing transcript %s: %w", path, err)
		}
		manifest.Modules = append(manifest.Modules, types.ManifestEntry{
			Title: string(m),
			Slug:  m.Slug(),
			File:  name,
		})
	}

	data, err := yaml.Marshal(manifest)
	if err != nil {
		return nil, fmt.Errorf("marshaling manifest: %w", err)
	}
	if err := os.WriteFile(filepath.Join(outputDir, manifestFile), data, 0o644); err != nil {
		return nil, fmt.Errorf("writing manifest: %w", err)
	}
	return manifest, nil
}

// LoadOutputs reads a run.yaml manifest and the transcripts it lists
// back from outputDir, reconstructing the run result in agenda order.
func LoadOutputs(outputDir string) (*Result, error) {
	data, err := os.ReadFile(filepath.Join(outputDir, manifestFile))
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	var manifest types.RunManifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}

	result := &Result{
		Transcripts: make(map[types.Module]types.GeneratedTranscript, len(manifest.Modules)),
	}
	for _, entry := range manifest.Modules {
		m := types.Module(entry.Title)
		result.Agenda = append(result.Agenda, m)

		content, err := os.ReadFile(filepath.Join(outputDir, entry.File))
		if err != nil {
			return nil, fmt.Errorf("reading transcript %s: %w", entry.File, err)
		}
		if _, ok := result.Transcripts[m]; !ok {
			text := string(content)
			if len(text) > 0 && text[len(text)-1] == '\n' {
				text = text[:len(text)-1]
			}
			result.Transcripts[m] = types.GeneratedTranscript(text)
		}
	}
	return result, nil
}
