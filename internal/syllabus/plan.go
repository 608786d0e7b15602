// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package syllabus

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/pdiddy/course-engine/internal/agent"
	"github.com/pdiddy/course-engine/pkg/types"
)

// Refine turns the parsed module list into the finalized agenda. With a
// nil backend this is an identity transform returning a fresh copy;
// callers must not assume any reordering, deduplication, or
// normalization happens. With a backend, the model proposes the refined
// agenda as a JSON list of titles.
func Refine(ctx context.Context, modules []types.Module, cfg types.PipelineConfig, backend agent.Backend) (types.Agenda, error) {
	if backend == nil {
		return types.Agenda(slices.Clone(modules)), nil
	}

	var titles []string
	if err := backend.Complete(ctx, refinePrompt(modules), &titles); err != nil {
		return nil, fmt.Errorf("refining agenda: %w", err)
	}
	agenda := make(types.Agenda, 0, len(titles))
	for _, t := range titles {
		agenda = append(agenda, types.Module(t))
	}
	return agenda, nil
}

func refinePrompt(modules []types.Module) string {
	var b strings.Builder
	b.WriteString("Refine this course module list into a final agenda. " +
		"Respond with a JSON array of module titles.\n")
	for _, m := range modules {
		fmt.Fprintf(&b, "- %s\n", m)
	}
	return b.String()
}
