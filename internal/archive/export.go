// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package archive

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"
)

// ExportEntry holds one archived transcript for export.
type ExportEntry struct {
	Module     string `json:"module" yaml:"module"`
	Slug       string `json:"slug" yaml:"slug"`
	Content    string `json:"content" yaml:"content"`
	ArchivedAt string `json:"archived_at" yaml:"archived_at"`
}

// ExportYAML writes every archived transcript to archive/index/export.yaml
// in module order, so the archive stays inspectable without SQLite tooling.
func (s *Store) ExportYAML(ctx context.Context) error {
	rows, err := s.db.QueryContext(ctx,
		`SELECT module, slug, content, archived_at FROM transcripts ORDER BY module, slug`)
	if err != nil {
		return fmt.Errorf("querying transcripts: %w", err)
	}
	defer rows.Close()

	var entries []ExportEntry
	for rows.Next() {
		var e ExportEntry
		if err := rows.Scan(&e.Module, &e.Slug, &e.Content, &e.ArchivedAt); err != nil {
			return fmt.Errorf("scanning transcript: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	data, err := yaml.Marshal(entries)
	if err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	path := filepath.Join(s.archiveDir, indexDir, "export.yaml")
	return os.WriteFile(path, data, 0o644)
}
