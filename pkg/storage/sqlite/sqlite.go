// Package sqlite opens a local SQLite database file as history storage.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"passgen/pkg/storage/sqlstore"
)

// Options defines how the SQLite database is opened.
type Options struct {
	// Path is the database file. Parent directories are created on demand.
	Path string
	// InMemory opens a private in-memory database named Path instead of a
	// file. Intended for tests.
	InMemory bool
}

func dsn(options Options) string {
	if options.InMemory {
		// WAL is not applicable to in-memory databases
		return fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=busy_timeout(5000)", options.Path)
	}

	return fmt.Sprintf(
		"file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)",
		options.Path,
	)
}

// New opens the database described by options. A single connection is used
// so writers never contend for the file lock.
func New(ctx context.Context, options Options) (*sqlstore.Store, error) {
	if !options.InMemory {
		if dir := filepath.Dir(options.Path); dir != "" {
			if err := os.MkdirAll(dir, 0o700); err != nil {
				return nil, fmt.Errorf("could not create database directory: %w", err)
			}
		}
	}

	db, err := sql.Open("sqlite", dsn(options))
	if err != nil {
		return nil, fmt.Errorf("could not open sqlite database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()

		return nil, fmt.Errorf("could not ping sqlite database: %w", err)
	}

	return sqlstore.New(db, sqlstore.DialectSQLite, nil), nil
}
