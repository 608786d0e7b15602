// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the shared data model for the course pipeline.
package types

import (
	"strings"
	"time"
)

// Module identifies one unit of course content by the title extracted
// from a syllabus heading. Titles are not required to be unique; when a
// syllabus repeats a title, mappings keyed by Module keep the first
// occurrence's content.
type Module string

// Slug returns a filesystem-safe identifier for the module: lowercased,
// with runs of non-alphanumeric characters collapsed to single hyphens.
// An empty or fully non-alphanumeric title yields "untitled".
func (m Module) Slug() string {
	var b strings.Builder
	pending := false
	for _, r := range strings.ToLower(string(m)) {
		alnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if !alnum {
			pending = b.Len() > 0
			continue
		}
		if pending {
			b.WriteByte('-')
			pending = false
		}
		b.WriteRune(r)
	}
	if b.Len() == 0 {
		return "untitled"
	}
	return b.String()
}

// Agenda is the finalized, ordered list of modules for one pipeline run.
// Agenda order is the order authority for everything downstream.
type Agenda []Module

// TranscriptMap maps each configured module to its raw transcript text.
type TranscriptMap map[Module]string

// ResearchNotes maps each agenda module to its aggregated research text.
type ResearchNotes map[Module]string

// Draft maps each agenda module to its edited chapter text.
type Draft map[Module]string

// GeneratedTranscript is the final script text for one module. The first
// line is always a heading containing the module title.
type GeneratedTranscript string

// ManifestEntry records one generated transcript in a run manifest.
type ManifestEntry struct {
	// Title is the module title from the agenda.
	Title string `json:"title" yaml:"title"`

	// Slug is the module's filesystem identifier.
	Slug string `json:"slug" yaml:"slug"`

	// File is the transcript filename relative to the output directory.
	File string `json:"file" yaml:"file"`
}

// RunManifest is written as run.yaml next to the generated transcripts
// and records what a pipeline run produced, in agenda order.
type RunManifest struct {
	// Syllabus is the path of the syllabus the run was driven by.
	Syllabus string `json:"syllabus" yaml:"syllabus"`

	// GeneratedAt is the completion time of the run.
	GeneratedAt time.Time `json:"generated_at" yaml:"generated_at"`

	// Modules lists the generated transcripts in agenda order.
	Modules []ManifestEntry `json:"modules" yaml:"modules"`
}
