// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package transcripts loads per-module raw transcript text.
package transcripts

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pdiddy/course-engine/pkg/types"
)

// Load returns the raw transcript for every module in cfg.Modules, keys
// equal to the configured module list. Without a configured directory
// every module loads as empty text. With cfg.Dir set, each module's
// transcript is read from <dir>/<slug>.md; a missing file is expected
// and yields empty text, any other read failure aborts the load.
// Duplicate modules keep the first occurrence.
func Load(cfg types.TranscriptsConfig) (types.TranscriptMap, error) {
	transcripts := make(types.TranscriptMap, len(cfg.Modules))
	for _, m := range cfg.Modules {
		if _, ok := transcripts[m]; ok {
			continue
		}
		if cfg.Dir == "" {
			transcripts[m] = ""
			continue
		}
		path := filepath.Join(cfg.Dir, m.Slug()+".md")
		data, err := os.ReadFile(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				transcripts[m] = ""
				continue
			}
			return nil, fmt.Errorf("reading transcript %s: %w", path, err)
		}
		transcripts[m] = string(data)
	}
	return transcripts, nil
}
