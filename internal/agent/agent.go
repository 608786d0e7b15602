// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package agent defines the call boundary to a generative-AI runtime.
// The pipeline stages that will eventually be LLM-backed (planning,
// editing) depend only on the Backend interface; the runtime itself,
// prompt templates, and retry policy live behind it and are supplied by
// the caller.
package agent

import (
	"context"
	"encoding/json"
	"fmt"
)

// Backend performs one structured completion: it sends prompt to the
// model and decodes the model's JSON response into out, which must be a
// pointer matching the schema the prompt asked for.
type Backend interface {
	Complete(ctx context.Context, prompt string, out any) error
}

// Static is a deterministic Backend for tests and dry runs. Every call
// decodes Response, a fixed JSON document, into out.
type Static struct {
	Response string
}

// Complete decodes the fixed response into out, ignoring the prompt.
func (s Static) Complete(_ context.Context, _ string, out any) error {
	if err := json.Unmarshal([]byte(s.Response), out); err != nil {
		return fmt.Errorf("decoding static response: %w", err)
	}
	return nil
}
