// Package storage keeps the upload ledger: which local files the upload
// utility has published and the public URL each one resolved to.
package storage

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var migrations embed.FS

// ErrNotFound is returned when a ledger entry does not exist.
var ErrNotFound = errors.New("not found")

// Store wraps the sqlite database.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the sqlite database at path and applies
// pending migrations.
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, "PRAGMA busy_timeout = 5000"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("configure sqlite: %w", err)
	}
	if err := applyMigrations(ctx, db, migrations, "migrations"); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error { return s.db.Close() }

// Upload is one ledger entry.
type Upload struct {
	LocalPath  string    `json:"-"`
	RemotePath string    `json:"remote_path"`
	PublicURL  string    `json:"public_url"`
	SizeBytes  int64     `json:"size_bytes"`
	UploadedAt time.Time `json:"uploaded_at"`
}

// RecordUpload inserts or replaces the entry for u.LocalPath.
func (s *Store) RecordUpload(ctx context.Context, u Upload) error {
	if u.UploadedAt.IsZero() {
		u.UploadedAt = time.Now()
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO uploads (local_path, remote_path, public_url, size_bytes, uploaded_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(local_path) DO UPDATE SET
			remote_path = excluded.remote_path,
			public_url  = excluded.public_url,
			size_bytes  = excluded.size_bytes,
			uploaded_at = excluded.uploaded_at
	`, u.LocalPath, u.RemotePath, u.PublicURL, u.SizeBytes, u.UploadedAt.UTC().UnixMilli())
	if err != nil {
		return fmt.Errorf("record upload %s: %w", u.LocalPath, err)
	}
	return nil
}

// GetUpload returns the entry for localPath.
func (s *Store) GetUpload(ctx context.Context, localPath string) (Upload, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT local_path, remote_path, public_url, size_bytes, uploaded_at
		FROM uploads WHERE local_path = ?
	`, localPath)
	u, err := scanUpload(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Upload{}, ErrNotFound
	}
	return u, err
}

// ListUploads returns entries newest first. limit <= 0 returns all.
func (s *Store) ListUploads(ctx context.Context, limit int) ([]Upload, error) {
	query := `
		SELECT local_path, remote_path, public_url, size_bytes, uploaded_at
		FROM uploads ORDER BY uploaded_at DESC, local_path`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list uploads: %w", err)
	}
	defer rows.Close()

	var uploads []Upload
	for rows.Next() {
		u, err := scanUpload(rows)
		if err != nil {
			return nil, fmt.Errorf("scan upload: %w", err)
		}
		uploads = append(uploads, u)
	}
	return uploads, rows.Err()
}

// CountUploads returns the number of ledger entries.
func (s *Store) CountUploads(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM uploads").Scan(&n); err != nil {
		return 0, fmt.Errorf("count uploads: %w", err)
	}
	return n, nil
}

// Overrides maps asset paths relative to root onto their public URLs, for
// every uploaded file that lives below root.
func (s *Store) Overrides(ctx context.Context, root string) (map[string]string, error) {
	uploads, err := s.ListUploads(ctx, 0)
	if err != nil {
		return nil, err
	}
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", root, err)
	}

	overrides := make(map[string]string)
	for _, u := range uploads {
		absLocal, err := filepath.Abs(u.LocalPath)
		if err != nil {
			continue
		}
		rel, err := filepath.Rel(absRoot, absLocal)
		if err != nil || rel == "." || strings.HasPrefix(rel, "..") {
			continue
		}
		overrides[filepath.ToSlash(rel)] = u.PublicURL
	}
	return overrides, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanUpload(row scanner) (Upload, error) {
	var (
		u  Upload
		ms int64
	)
	if err := row.Scan(&u.LocalPath, &u.RemotePath, &u.PublicURL, &u.SizeBytes, &ms); err != nil {
		return Upload{}, err
	}
	u.UploadedAt = time.UnixMilli(ms).UTC()
	return u, nil
}
