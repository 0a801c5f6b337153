// Package store keeps a SQLite history of phonemizations and exports it as
// a dictionary tier.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// Record is one stored phonemization
type Record struct {
	ID        string
	Text      string
	Phonemes  string
	Options   string
	CreatedAt time.Time
}

// Store wraps the history database
type Store struct {
	db   *sql.DB
	path string
}

// Open opens or creates the history database at path
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create store directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// The sqlite driver does not allow concurrent writers.
	db.SetMaxOpenConns(1)

	s := &Store{db: db, path: path}
	if err := s.createTables(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) createTables() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS history (
			id TEXT PRIMARY KEY,
			text TEXT NOT NULL,
			phonemes TEXT NOT NULL,
			options TEXT NOT NULL DEFAULT '',
			created_at INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS ix_history_text ON history (text)`,
		`CREATE INDEX IF NOT EXISTS ix_history_created ON history (created_at)`,
	}

	for _, query := range queries {
		if _, err := s.db.Exec(query); err != nil {
			return fmt.Errorf("failed to create tables: %w", err)
		}
	}
	return nil
}

// Path returns the database file path
func (s *Store) Path() string {
	return s.path
}

// Close closes the database
func (s *Store) Close() error {
	return s.db.Close()
}

// Save stores a phonemization and returns the new record
func (s *Store) Save(ctx context.Context, text, phonemes, options string) (Record, error) {
	rec := Record{
		ID:        uuid.New().String(),
		Text:      text,
		Phonemes:  phonemes,
		Options:   options,
		CreatedAt: time.Now(),
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO history (id, text, phonemes, options, created_at) VALUES (?, ?, ?, ?, ?)`,
		rec.ID, rec.Text, rec.Phonemes, rec.Options, rec.CreatedAt.UnixNano())
	if err != nil {
		return Record{}, fmt.Errorf("failed to save record: %w", err)
	}
	return rec, nil
}

// Recent returns up to limit records, newest first
func (s *Store) Recent(ctx context.Context, limit int) ([]Record, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.query(ctx,
		`SELECT id, text, phonemes, options, created_at FROM history
		ORDER BY created_at DESC, rowid DESC LIMIT ?`, limit)
}

// Latest returns the newest record for text
func (s *Store) Latest(ctx context.Context, text string) (Record, bool, error) {
	records, err := s.query(ctx,
		`SELECT id, text, phonemes, options, created_at FROM history
		WHERE text = ? ORDER BY created_at DESC, rowid DESC LIMIT 1`, text)
	if err != nil || len(records) == 0 {
		return Record{}, false, err
	}
	return records[0], true, nil
}

// Count returns the number of stored records
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM history`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count records: %w", err)
	}
	return n, nil
}

func (s *Store) query(ctx context.Context, query string, args ...interface{}) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var rec Record
		var created int64
		if err := rows.Scan(&rec.ID, &rec.Text, &rec.Phonemes, &rec.Options, &created); err != nil {
			return nil, fmt.Errorf("failed to read record: %w", err)
		}
		rec.CreatedAt = time.Unix(0, created)
		records = append(records, rec)
	}
	return records, rows.Err()
}

// ExportTier writes the newest phonemes of every single word record as a
// dictionary tier. Each value is an inline override so the stored phonemes
// are reused verbatim. It returns the number of exported entries.
func (s *Store) ExportTier(ctx context.Context, w io.Writer) (int, error) {
	records, err := s.query(ctx,
		`SELECT id, text, phonemes, options, created_at FROM history
		ORDER BY created_at ASC, rowid ASC`)
	if err != nil {
		return 0, err
	}

	entries := make(map[string]string)
	for _, rec := range records {
		text := strings.TrimSpace(rec.Text)
		if text == "" || rec.Phonemes == "" || strings.ContainsAny(text, " \t\n[]()") {
			continue
		}
		entries[text] = fmt.Sprintf("[%s](/%s/)", text, rec.Phonemes)
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return 0, fmt.Errorf("failed to encode tier: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return 0, fmt.Errorf("failed to write tier: %w", err)
	}
	return len(entries), nil
}
