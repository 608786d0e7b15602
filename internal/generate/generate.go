// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package generate synthesizes final transcript text per module.
package generate

import (
	"fmt"

	"github.com/pdiddy/course-engine/pkg/types"
)

// Generate synthesizes the final transcript for one module. The output
// shape is the wire-level contract consumed by downstream tooling:
// a "# <module>" heading, a blank line, then the script body. The body
// is a templated placeholder until generation is model-backed; draft is
// accepted now so the driver does not change when it is.
// Deterministic and pure given identical inputs.
func Generate(module types.Module, draft string, cfg types.GenerationConfig) types.GeneratedTranscript {
	return types.GeneratedTranscript(fmt.Sprintf(
		"# %s\n\nThis is a generated script for module: %s.", module, module))
}
