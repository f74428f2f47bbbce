package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"cardreveal/internal/crypto"
	"cardreveal/internal/domain"
)

const artifactSchema = `
CREATE TABLE IF NOT EXISTS artifacts (
    name         TEXT PRIMARY KEY,
    content_type TEXT NOT NULL,
    size         INTEGER NOT NULL,
    created_at   INTEGER NOT NULL,
    data         BLOB NOT NULL
)`

// SQLiteStore keeps captures as blobs in a SQLite database.
type SQLiteStore struct {
	db  *sql.DB
	now func() time.Time
}

// OpenSQLite opens (and creates if needed) the database at path.
func OpenSQLite(path string) (*SQLiteStore, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	// modernc applies _pragma values in order on every new connection.
	// busy_timeout goes first so switching to WAL waits out other writers.
	dsn := filepath.Clean(path) +
		"?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := db.Exec(artifactSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &SQLiteStore{db: db, now: time.Now}, nil
}

// Put inserts data unless an artifact with the same digest already exists.
func (s *SQLiteStore) Put(ctx context.Context, data []byte, contentType string) (domain.Artifact, error) {
	if len(data) == 0 {
		return domain.Artifact{}, fmt.Errorf("artifact data is required")
	}
	name := crypto.ArtifactName(data)
	created := s.now().UTC()

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO artifacts (name, content_type, size, created_at, data)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(name) DO NOTHING`,
		name, contentType, len(data), created.UnixMilli(), data,
	)
	if err != nil {
		return domain.Artifact{}, fmt.Errorf("put artifact: %w", err)
	}
	return s.Get(ctx, name)
}

// Get returns the artifact stored under name.
func (s *SQLiteStore) Get(ctx context.Context, name string) (domain.Artifact, error) {
	if !crypto.ValidArtifactName(name) {
		return domain.Artifact{}, fmt.Errorf("%w: %q", domain.ErrArtifactNotFound, name)
	}

	row := s.db.QueryRowContext(ctx,
		`SELECT name, content_type, size, created_at, data FROM artifacts WHERE name = ?`,
		name,
	)
	var (
		a       domain.Artifact
		created int64
	)
	if err := row.Scan(&a.Name, &a.ContentType, &a.Size, &created, &a.Data); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Artifact{}, fmt.Errorf("%w: %q", domain.ErrArtifactNotFound, name)
		}
		return domain.Artifact{}, fmt.Errorf("get artifact: %w", err)
	}
	a.CreatedAt = time.UnixMilli(created).UTC()
	return a, nil
}

// Close releases the database handle.
func (s *SQLiteStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

var _ Store = (*SQLiteStore)(nil)
