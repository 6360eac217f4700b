// Package sqlitestore — персистентная реализация cache.Store поверх SQLite.
// Переживает рестарты API-бинаря; включается через cache.driver: sqlite.
//
// Драйвер подключает вызывающий:
//
//	import _ "modernc.org/sqlite"
package sqlitestore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"vitrina/internal/cache"
)

const schema = `
CREATE TABLE IF NOT EXISTS kv (
	key TEXT PRIMARY KEY,
	val BLOB NOT NULL
);
`

type Store struct {
	db *sql.DB
}

var _ cache.Store = (*Store)(nil)

// Open открывает (и при необходимости создаёт) файл кэша
// с продакшен-прагмами: WAL, busy_timeout, synchronous NORMAL.
func Open(path string) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("sqlitestore: empty path")
	}
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("sqlitestore: mkdir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("sqlitestore: open: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 10000",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("sqlitestore: %s: %w", p, err)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlitestore: schema: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var val []byte
	err := s.db.QueryRowContext(ctx, "SELECT val FROM kv WHERE key = ?", key).Scan(&val)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return val, true, nil
}

func (s *Store) Set(ctx context.Context, key string, val []byte) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO kv (key, val) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET val = excluded.val",
		key, val,
	)
	return err
}

func (s *Store) Delete(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM kv WHERE key = ?", key)
	return err
}

func (s *Store) Close() error {
	return s.db.Close()
}
