// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package editor turns research notes into edited chapter drafts.
package editor

import (
	"context"
	"fmt"

	"github.com/pdiddy/course-engine/internal/agent"
	"github.com/pdiddy/course-engine/pkg/types"
)

// Edit produces the draft for every module in notes. With a nil backend
// this is an identity transform. With a backend, each module's notes
// are rewritten by the model, which responds with the edited chapter as
// a JSON string.
func Edit(ctx context.Context, notes types.ResearchNotes, cfg types.PipelineConfig, backend agent.Backend) (types.Draft, error) {
	draft := make(types.Draft, len(notes))
	for m, text := range notes {
		if backend == nil {
			draft[m] = text
			continue
		}
		var edited string
		if err := backend.Complete(ctx, editPrompt(m, text), &edited); err != nil {
			return nil, fmt.Errorf("editing chapter %q: %w", m, err)
		}
		draft[m] = edited
	}
	return draft, nil
}

func editPrompt(module types.Module, notes string) string {
	return fmt.Sprintf("Edit the research notes for course module %q into a "+
		"polished chapter draft. Respond with the draft as a JSON string.\n\n%s",
		module, notes)
}
