package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// Open opens (or creates) a sqlite database at the given path and ensures directories exist.
func Open(path string) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	// single writer keeps sqlite happy
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	// LIKE is case-insensitive for ASCII by default; substring search over
	// area and donor must be case-sensitive.
	if _, err := db.Exec(`PRAGMA case_sensitive_like = ON;`); err != nil {
		return nil, fmt.Errorf("enable case sensitive like: %w", err)
	}

	return db, nil
}
