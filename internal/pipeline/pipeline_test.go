// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pdiddy/course-engine/pkg/types"
)

// writeSyllabus is a test helper that creates a syllabus file with the given content.
func writeSyllabus(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "syllabus.md")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunEndToEnd(t *testing.T) {
	path := writeSyllabus(t, `# Widgets 101

### Module: Intro to Widgets

Prose about the intro.

### Module: Advanced Widgets
`)

	result, err := Run(context.Background(), path, types.DefaultConfig(), nil, io.Discard)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.Transcripts) != 2 {
		t.Fatalf("len(Transcripts) = %d, want 2", len(result.Transcripts))
	}
	if len(result.Agenda) != 2 || result.Agenda[0] != "Intro to Widgets" || result.Agenda[1] != "Advanced Widgets" {
		t.Fatalf("agenda = %v", result.Agenda)
	}

	for _, m := range result.Agenda {
		got := string(result.Transcripts[m])
		want := fmt.Sprintf("# %s\n\nThis is a generated script for module: %s.", m, m)
		if got != want {
			t.Errorf("transcript for %q = %q, want %q", m, got, want)
		}
	}
}

func TestRunMissingSyllabus(t *testing.T) {
	_, err := Run(context.Background(), filepath.Join(t.TempDir(), "nope.md"), types.DefaultConfig(), nil, io.Discard)
	if err == nil {
		t.Fatal("expected error for missing syllabus")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("error %v does not match fs.ErrNotExist", err)
	}
}

func TestRunDuplicateModulesKeepFirst(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "repeat.md"), []byte("raw"), 0o644); err != nil {
		t.Fatal(err)
	}
	path := writeSyllabus(t, "### Module: Repeat\n### Module: Repeat\n")

	cfg := types.DefaultConfig()
	cfg.Transcripts.Dir = dir

	result, err := Run(context.Background(), path, cfg, nil, io.Discard)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Agenda) != 2 {
		t.Errorf("agenda kept %d entries, want 2", len(result.Agenda))
	}
	if len(result.Transcripts) != 1 {
		t.Errorf("transcripts kept %d entries, want 1", len(result.Transcripts))
	}
}

func TestRunTranscriptsDirFlowsToNotes(t *testing.T) {
	// The loader feeds the aggregator; a bad transcripts directory must
	// fail the run, not fall back to empty text.
	path := writeSyllabus(t, "### Module: Intro\n")
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "intro.md"), 0o755); err != nil {
		t.Fatal(err)
	}

	cfg := types.DefaultConfig()
	cfg.Transcripts.Dir = dir

	if _, err := Run(context.Background(), path, cfg, nil, io.Discard); err == nil {
		t.Fatal("expected load failure to abort the run")
	}
}

func TestRunProgressOutput(t *testing.T) {
	path := writeSyllabus(t, "### Module: Intro\n")

	var buf strings.Builder
	if _, err := Run(context.Background(), path, types.DefaultConfig(), nil, &buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "parsed 1 module(s)") {
		t.Errorf("progress output missing parse line:\n%s", buf.String())
	}
	if !strings.Contains(buf.String(), "generated Intro") {
		t.Errorf("progress output missing generate line:\n%s", buf.String())
	}
}

func TestWriteAndLoadOutputs(t *testing.T) {
	path := writeSyllabus(t, "### Module: Intro to Widgets\n### Module: Basics\n")

	result, err := Run(context.Background(), path, types.DefaultConfig(), nil, io.Discard)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	outDir := filepath.Join(t.TempDir(), "out")
	manifest, err := WriteOutputs(result, path, outDir)
	if err != nil {
		t.Fatalf("WriteOutputs: %v", err)
	}
	if len(manifest.Modules) != 2 {
		t.Fatalf("manifest has %d modules, want 2", len(manifest.Modules))
	}
	if manifest.Modules[0].File != "intro-to-widgets.md" {
		t.Errorf("manifest file = %q", manifest.Modules[0].File)
	}

	loaded, err := LoadOutputs(outDir)
	if err != nil {
		t.Fatalf("LoadOutputs: %v", err)
	}
	if len(loaded.Agenda) != 2 {
		t.Fatalf("loaded agenda %v", loaded.Agenda)
	}
	for m, content := range result.Transcripts {
		if loaded.Transcripts[m] != content {
			t.Errorf("roundtrip for %q = %q, want %q", m, loaded.Transcripts[m], content)
		}
	}
}
