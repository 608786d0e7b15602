// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package research aggregates raw transcripts into per-module research notes.
package research

import (
	"github.com/pdiddy/course-engine/pkg/types"
)

// Aggregate builds research notes for every agenda module from the
// loaded transcripts. A module absent from transcripts defaults to
// empty text. The output's membership matches the agenda exactly; no
// module is added or dropped, and duplicate agenda entries keep the
// first occurrence. Aggregation is a passthrough today; a real
// implementation condenses the transcript through the research agents.
func Aggregate(agenda types.Agenda, transcripts types.TranscriptMap, cfg types.PipelineConfig) (types.ResearchNotes, error) {
	notes := make(types.ResearchNotes, len(agenda))
	for _, m := range agenda {
		if _, ok := notes[m]; ok {
			continue
		}
		notes[m] = transcripts[m]
	}
	return notes, nil
}
