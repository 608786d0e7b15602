// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline composes the course stages into one sequential run:
// parse, plan, load, aggregate, edit, generate. Each stage consumes the
// prior stage's output; the shared configuration is passed by value to
// every stage and never mutated mid-run.
package pipeline

import (
	"context"
	"fmt"
	"io"

	"github.com/pdiddy/course-engine/internal/agent"
	"github.com/pdiddy/course-engine/internal/editor"
	"github.com/pdiddy/course-engine/internal/generate"
	"github.com/pdiddy/course-engine/internal/research"
	"github.com/pdiddy/course-engine/internal/syllabus"
	"github.com/pdiddy/course-engine/internal/transcripts"
	"github.com/pdiddy/course-engine/pkg/types"
)

// Result holds the outcome of a completed pipeline run. Agenda is the
// order authority; Transcripts is keyed by module with the first
// occurrence's content kept for duplicate agenda entries.
type Result struct {
	Agenda      types.Agenda
	Transcripts map[types.Module]types.GeneratedTranscript
}

// Run executes the whole pipeline for the syllabus at syllabusPath,
// streaming one progress line per step to w. The run is fail-fast: the
// first stage error aborts it and is returned to the caller unchanged,
// with no partial result. backend may be nil, in which case the
// planning and editing stages use their built-in passthrough behavior.
func Run(ctx context.Context, syllabusPath string, cfg types.PipelineConfig, backend agent.Backend, w io.Writer) (*Result, error) {
	modules, err := syllabus.Parse(syllabusPath)
	if err != nil {
		return nil, err
	}
	fmt.Fprintf(w, "parsed %d module(s) from %s\n", len(modules), syllabusPath)

	agenda, err := syllabus.Refine(ctx, modules, cfg, backend)
	if err != nil {
		return nil, err
	}
	fmt.Fprintf(w, "planned agenda with %d module(s)\n", len(agenda))

	loadCfg := cfg.Transcripts
	loadCfg.Modules = agenda
	raw, err := transcripts.Load(loadCfg)
	if err != nil {
		return nil, err
	}
	fmt.Fprintf(w, "loaded %d raw transcript(s)\n", len(raw))

	notes, err := research.Aggregate(agenda, raw, cfg)
	if err != nil {
		return nil, err
	}

	drafts, err := editor.Edit(ctx, notes, cfg, backend)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Agenda:      agenda,
		Transcripts: make(map[types.Module]types.GeneratedTranscript, len(agenda)),
	}
	for _, m := range agenda {
		if _, ok := result.Transcripts[m]; ok {
			continue
		}
		result.Transcripts[m] = generate.Generate(m, drafts[m], cfg.Generation)
		fmt.Fprintf(w, "generated %s\n", m)
	}
	return result, nil
}
