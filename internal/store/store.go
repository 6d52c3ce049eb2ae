// Package store persists contact form attempts in SQLite.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"gansputra.dev/internal/models"
)

// Store manages the submissions database.
type Store struct {
	db     *sql.DB
	dbPath string
	mu     sync.Mutex
}

// Open creates or opens the database at path. ":memory:" opens a private
// in-memory database.
func Open(path string) (*Store, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// One connection keeps ":memory:" databases shared and serializes writes.
	db.SetMaxOpenConns(1)

	s := &Store{db: db, dbPath: path}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.dbPath
}

func (s *Store) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS submissions (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		message TEXT NOT NULL,
		subject TEXT NOT NULL,
		status TEXT NOT NULL,
		fallback_url TEXT,
		error TEXT,
		created_at TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_submissions_created ON submissions(created_at);
	CREATE INDEX IF NOT EXISTS idx_submissions_status ON submissions(status);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Record stores a contact attempt.
func (s *Store) Record(ctx context.Context, sub models.Submission) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO submissions (id, name, email, message, subject, status, fallback_url, error, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		sub.ID, sub.Name, sub.Email, sub.Message, sub.Subject, string(sub.Status),
		sub.FallbackURL, sub.Error, sub.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert submission %s: %w", sub.ID, err)
	}
	return nil
}

// Recent returns up to limit submissions, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]models.Submission, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, email, message, subject, status,
		       COALESCE(fallback_url, ''), COALESCE(error, ''), created_at
		FROM submissions
		ORDER BY created_at DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query submissions: %w", err)
	}
	defer rows.Close()

	var out []models.Submission
	for rows.Next() {
		var sub models.Submission
		var status, created string
		if err := rows.Scan(&sub.ID, &sub.Name, &sub.Email, &sub.Message, &sub.Subject,
			&status, &sub.FallbackURL, &sub.Error, &created); err != nil {
			return nil, fmt.Errorf("scan submission: %w", err)
		}
		sub.Status = models.SubmissionStatus(status)
		if sub.CreatedAt, err = time.Parse(time.RFC3339Nano, created); err != nil {
			return nil, fmt.Errorf("parse created_at of %s: %w", sub.ID, err)
		}
		out = append(out, sub)
	}
	return out, rows.Err()
}

// CountByStatus returns how many attempts ended in each status.
func (s *Store) CountByStatus(ctx context.Context) (map[models.SubmissionStatus]int, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT status, COUNT(*) FROM submissions GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("count submissions: %w", err)
	}
	defer rows.Close()

	counts := make(map[models.SubmissionStatus]int)
	for rows.Next() {
		var status string
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, fmt.Errorf("scan count: %w", err)
		}
		counts[models.SubmissionStatus(status)] = n
	}
	return counts, rows.Err()
}
