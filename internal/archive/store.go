// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package archive persists generated transcripts in a local SQLite
// database with a full-text index. The pipeline itself keeps no state;
// archiving is an optional step after a completed run.
package archive

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/course-engine/pkg/types"
)

const (
	indexDir = "index"
	dbFile   = "course.db"
)

// Store manages the transcript archive SQLite database.
type Store struct {
	db         *sql.DB
	archiveDir string
	maxResults int
}

// NewStore opens or creates the archive database at cfg.Dir/index/course.db,
// creating the schema if it does not exist.
func NewStore(cfg types.ArchiveConfig) (*Store, error) {
	dbDir := filepath.Join(cfg.Dir, indexDir)
	if err := os.MkdirAll(dbDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating index directory: %w", err)
	}

	dbPath := filepath.Join(dbDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 20
	}

	s := &Store{
		db:         db,
		archiveDir: cfg.Dir,
		maxResults: maxResults,
	}

	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS transcripts (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			slug TEXT NOT NULL UNIQUE,
			module TEXT NOT NULL,
			content TEXT NOT NULL,
			archived_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_transcripts_module ON transcripts(module)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}

	// FTS5 virtual table with triggers for sync.
	var ftsExists int
	if err := s.db.QueryRow(
		`SELECT count(*) FROM sqlite_master WHERE type='table' AND name='transcripts_fts'`,
	).Scan(&ftsExists); err != nil {
		return fmt.Errorf("checking FTS table: %w", err)
	}

	if ftsExists == 0 {
		ftsStatements := []string{
			`CREATE VIRTUAL TABLE transcripts_fts USING fts5(module, content, content=transcripts, content_rowid=rowid)`,
			`CREATE TRIGGER transcripts_ai AFTER INSERT ON transcripts BEGIN
				INSERT INTO transcripts_fts(rowid, module, content) VALUES (new.rowid, new.module, new.content);
			END`,
			`CREATE TRIGGER transcripts_ad AFTER DELETE ON transcripts BEGIN
				INSERT INTO transcripts_fts(transcripts_fts, rowid, module, content) VALUES('delete', old.rowid, old.module, old.content);
			END`,
			`CREATE TRIGGER transcripts_au AFTER UPDATE ON transcripts BEGIN
				INSERT INTO transcripts_fts(transcripts_fts, rowid, module, content) VALUES('delete', old.rowid, old.module, old.content);
				INSERT INTO transcripts_fts(rowid, module, content) VALUES (new.rowid, new.module, new.content);
			END`,
		}
		for _, stmt := range ftsStatements {
			if _, err := s.db.Exec(stmt); err != nil {
				return fmt.Errorf("creating FTS infrastructure: %w", err)
			}
		}
	}

	return nil
}

// IngestSummary holds counts from an archive ingestion run.
type IngestSummary struct {
	Archived int
	Updated  int
	Failed   int
}

// Total returns the number of transcripts processed.
func (s IngestSummary) Total() int {
	return s.Archived + s.Updated + s.Failed
}

// HasFailures reports whether any transcripts failed to archive.
func (s IngestSummary) HasFailures() bool {
	return s.Failed > 0
}

// Ingest stores the given transcripts, visiting agenda in order so
// duplicate titles keep the first occurrence. Re-archiving a module
// replaces its previous row. On success the YAML export is rewritten.
func (s *Store) Ingest(ctx context.Context, agenda types.Agenda, transcripts map[types.Module]types.GeneratedTranscript, w io.Writer) (IngestSummary, error) {
	var summary IngestSummary
	seen := make(map[types.Module]bool, len(agenda))

	for _, m := range agenda {
		if seen[m] {
			continue
		}
		seen[m] = true

		select {
		case <-ctx.Done():
			return summary, ctx.Err()
		default:
		}

		updated, err := s.ingestTranscript(ctx, m, transcripts[m])
		if err != nil {
			fmt.Fprintf(w, "failed   %s: %v\n", m, err)
			summary.Failed++
			continue
		}
		if updated {
			fmt.Fprintf(w, "updated  %s\n", m)
			summary.Updated++
		} else {
			fmt.Fprintf(w, "archived %s\n", m)
			summary.Archived++
		}
	}

	fmt.Fprintf(w, "\narchived: %d, updated: %d, failed: %d\n",
		summary.Archived, summary.Updated, summary.Failed)

	if summary.Archived > 0 || summary.Updated > 0 {
		if err := s.ExportYAML(ctx); err != nil {
			fmt.Fprintf(w, "warning: export.yaml write failed: %v\n", err)
		}
	}

	return summary, nil
}

func (s *Store) ingestTranscript(ctx context.Context, module types.Module, content types.GeneratedTranscript) (updated bool, err error) {
	slug := module.Slug()

	var existing int
	err = s.db.QueryRowContext(ctx,
		`SELECT count(*) FROM transcripts WHERE slug = ?`, slug,
	).Scan(&existing)
	if err != nil {
		return false, fmt.Errorf("checking existing transcript: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO transcripts (slug, module, content, archived_at)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT(slug) DO UPDATE SET
			module=excluded.module, content=excluded.content,
			archived_at=excluded.archived_at`,
		slug, string(module), string(content),
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return false, fmt.Errorf("upserting transcript: %w", err)
	}

	return existing > 0, nil
}

// SearchResult is one full-text match over archived transcripts.
type SearchResult struct {
	Module     types.Module `json:"module" yaml:"module"`
	Slug       string       `json:"slug" yaml:"slug"`
	Snippet    string       `json:"snippet" yaml:"snippet"`
	ArchivedAt string       `json:"archived_at" yaml:"archived_at"`
}

// Search runs an FTS5 full-text query over archived transcripts and
// returns matches ranked by relevance. maxResults zero uses the store
// default.
func (s *Store) Search(ctx context.Context, query string, maxResults int) ([]SearchResult, error) {
	if query == "" {
		return nil, fmt.Errorf("query is empty: provide one or more search terms")
	}
	if maxResults <= 0 {
		maxResults = s.maxResults
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT t.module, t.slug,
			snippet(transcripts_fts, 1, '[', ']', '…', 16),
			t.archived_at
		FROM transcripts_fts
		JOIN transcripts t ON t.rowid = transcripts_fts.rowid
		WHERE transcripts_fts MATCH ?
		ORDER BY transcripts_fts.rank
		LIMIT ?`,
		query, maxResults,
	)
	if err != nil {
		return nil, fmt.Errorf("querying archive: %w", err)
	}
	defer rows.Close()

	var results []SearchResult
	for rows.Next() {
		var r SearchResult
		var module string
		if err := rows.Scan(&module, &r.Slug, &r.Snippet, &r.ArchivedAt); err != nil {
			return nil, fmt.Errorf("scanning result: %w", err)
		}
		r.Module = types.Module(module)
		results = append(results, r)
	}
	return results, rows.Err()
}
