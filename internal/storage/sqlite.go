package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// SQLite implements Storage on a single local_storage table.
type SQLite struct {
	db    *sql.DB
	path  string
	quota int64
}

// NewSQLite opens or creates a SQLite database at the given path. A quota
// of zero or less means DefaultQuota.
func NewSQLite(dbPath string, quota int64) (*SQLite, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	if quota <= 0 {
		quota = DefaultQuota
	}
	s := &SQLite{db: db, path: dbPath, quota: quota}

	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return s, nil
}

func (s *SQLite) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS local_storage (
		key        TEXT PRIMARY KEY,
		value      TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Path is the database file location.
func (s *SQLite) Path() string { return s.path }

func (s *SQLite) GetItem(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM local_storage WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get %q: %w", key, err)
	}
	return value, true, nil
}

func (s *SQLite) SetItem(ctx context.Context, key, value string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// Bytes held by every other key.
	var others int64
	err = tx.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(LENGTH(CAST(key AS BLOB)) + LENGTH(CAST(value AS BLOB))), 0)
		 FROM local_storage WHERE key != ?`, key).Scan(&others)
	if err != nil {
		return fmt.Errorf("measure usage: %w", err)
	}
	if need := others + itemSize(key, value); need > s.quota {
		return quotaErr(key, need, s.quota)
	}

	now := time.Now().UTC().Format(time.RFC3339)
	_, err = tx.ExecContext(ctx,
		`INSERT INTO local_storage (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, now)
	if err != nil {
		return fmt.Errorf("set %q: %w", key, err)
	}

	return tx.Commit()
}

func (s *SQLite) RemoveItem(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM local_storage WHERE key = ?`, key)
	return err
}

func (s *SQLite) Usage(ctx context.Context) (int64, error) {
	var n int64
	err := s.db.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(LENGTH(CAST(key AS BLOB)) + LENGTH(CAST(value AS BLOB))), 0) FROM local_storage`).Scan(&n)
	return n, err
}

func (s *SQLite) Close() error {
	return s.db.Close()
}
