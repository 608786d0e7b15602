// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package generate

import (
	"strings"
	"testing"

	"github.com/pdiddy/course-engine/pkg/types"
)

func TestGenerateExactShape(t *testing.T) {
	got := Generate("Intro", "", types.GenerationConfig{})

	want := types.GeneratedTranscript("# Intro\n\nThis is a generated script for module: Intro.")
	if got != want {
		t.Errorf("Generate() = %q, want %q", got, want)
	}
}

func TestGenerateHeadingFirst(t *testing.T) {
	got := Generate("Advanced Widgets", "draft body", types.GenerationConfig{})

	lines := strings.Split(string(got), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	if lines[0] != "# Advanced Widgets" {
		t.Errorf("first line = %q, want heading with module title", lines[0])
	}
	if lines[1] != "" {
		t.Errorf("second line = %q, want blank", lines[1])
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a := Generate("Intro", "one draft", types.GenerationConfig{})
	b := Generate("Intro", "another draft", types.GenerationConfig{})
	if a != b {
		t.Error("generation is not deterministic for identical modules")
	}
}
