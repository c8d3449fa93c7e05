// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history persists a log of completed conversions in a local SQLite
// database. Recording is best-effort; the converter never fails because the
// history could not be written.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Entry is one recorded conversion.
type Entry struct {
	// Input is the original input path or declared upload name.
	Input string `json:"input"`

	// Type is the detected input type (ppt, pptx, pdf).
	Type string `json:"type"`

	// Pages is the number of page images produced.
	Pages int `json:"pages"`

	// Format is the output mode used.
	Format string `json:"format"`

	// DPI is the rasterization resolution.
	DPI int `json:"dpi"`

	// Duration is how long the conversion took.
	Duration time.Duration `json:"duration"`

	// When is the completion time, UTC.
	When time.Time `json:"when"`
}

// Store manages the history database.
type Store struct {
	db *sql.DB
}

// DefaultPath returns the per-user history database location, or "" when no
// home directory is available.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".local", "state", "ppt-to-images", "history.db")
}

// Open opens or creates the history database at path, creating parent
// directories and the schema as needed.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating history directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening history database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	const schema = `CREATE TABLE IF NOT EXISTS conversions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		input TEXT NOT NULL,
		type TEXT NOT NULL,
		pages INTEGER NOT NULL,
		format TEXT NOT NULL,
		dpi INTEGER NOT NULL,
		duration_ms INTEGER NOT NULL,
		finished_at TEXT NOT NULL
	)`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("creating history schema: %w", err)
	}
	return nil
}

// Record inserts one completed conversion.
func (s *Store) Record(ctx context.Context, e Entry) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO conversions (input, type, pages, format, dpi, duration_ms, finished_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.Input, e.Type, e.Pages, e.Format, e.DPI,
		e.Duration.Milliseconds(), e.When.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("recording conversion: %w", err)
	}
	return nil
}

// List returns the most recent conversions, newest first. A non-positive
// limit defaults to 20.
func (s *Store) List(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT input, type, pages, format, dpi, duration_ms, finished_at
		 FROM conversions ORDER BY rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying history: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var durationMS int64
		var finishedAt string
		if err := rows.Scan(&e.Input, &e.Type, &e.Pages, &e.Format, &e.DPI, &durationMS, &finishedAt); err != nil {
			return nil, fmt.Errorf("scanning history row: %w", err)
		}
		e.Duration = time.Duration(durationMS) * time.Millisecond
		if t, err := time.Parse(time.RFC3339, finishedAt); err == nil {
			e.When = t
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
