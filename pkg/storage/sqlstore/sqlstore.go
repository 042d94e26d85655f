// Package sqlstore implements storage.Storage on top of database/sql and goqu.
// It is dialect agnostic; the postgres and sqlite packages open the
// connections and hand them to New.
package sqlstore

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	_ "github.com/doug-martin/goqu/v9/dialect/sqlite3"

	"passgen/pkg/storage"
)

// Dialects understood by goqu and goose.
const (
	DialectPostgres = "postgres"
	DialectSQLite   = "sqlite3"
)

// DB defines the subset of database/sql methods used by this package. Both
// *sql.DB and *sql.Tx satisfy this interface, allowing the same code paths to be
// used within and outside transactions.
type DB interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	PrepareContext(ctx context.Context, query string) (*sql.Stmt, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// Builder abstracts the minimal subset of goqu methods used by this package to
// construct queries. Both a goqu database handle and a transaction handle
// implement this interface.
type Builder interface {
	From(table ...interface{}) *goqu.SelectDataset
	Insert(table interface{}) *goqu.InsertDataset
	Update(table interface{}) *goqu.UpdateDataset
	Delete(table interface{}) *goqu.DeleteDataset
}

// Store implements storage.Storage and storage.TxStorage.
type Store struct {
	// DB is the underlying executor. It is either a *sql.DB (when not in a
	// transaction) or a *sql.Tx (when inside a transaction).
	DB DB
	// Builder is the goqu handle used to construct SQL queries bound to DB.
	Builder Builder

	dialect string
	onClose func()
}

var (
	_ storage.Storage   = (*Store)(nil)
	_ storage.TxStorage = (*Store)(nil)
)

// New wraps db using the given goqu dialect. onClose, if not nil, runs after
// db is closed and releases resources owned by the caller (e.g. a pgx pool).
func New(db *sql.DB, dialect string, onClose func()) *Store {
	return &Store{
		DB:      db,
		Builder: goqu.Dialect(dialect).DB(db),
		dialect: dialect,
		onClose: onClose,
	}
}

// Dialect returns the goqu dialect name of the store.
func (s *Store) Dialect() string { return s.dialect }

// Close closes the underlying database handle.
func (s *Store) Close() error {
	var err error
	if db, ok := s.DB.(*sql.DB); ok {
		err = db.Close()
	}
	if s.onClose != nil {
		s.onClose()
	}
	if err != nil {
		return fmt.Errorf("could not close db: %w", err)
	}

	return nil
}

// Commit commits the current transaction. It returns storage.ErrNotInTx if
// called when the Store is not in a transactional context.
func (s *Store) Commit() error {
	tx, ok := s.DB.(*sql.Tx)
	if !ok {
		return storage.ErrNotInTx
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("could not commit tx: %w", err)
	}

	return nil
}

// Rollback aborts the current transaction. It returns storage.ErrNotInTx if
// called when the Store is not in a transactional context.
func (s *Store) Rollback() error {
	tx, ok := s.DB.(*sql.Tx)
	if !ok {
		return storage.ErrNotInTx
	}

	if err := tx.Rollback(); err != nil {
		return fmt.Errorf("could not rollback tx: %w", err)
	}

	return nil
}

// Begin starts a new database transaction and returns a transactional Store.
// If called while already inside a transaction, ErrAlreadyInTx is returned.
func (s *Store) Begin(ctx context.Context) (storage.TxStorage, error) {
	db, ok := s.DB.(*sql.DB)
	if !ok {
		return nil, storage.ErrAlreadyInTx
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("could not begin tx: %w", err)
	}

	return &Store{
		DB:      tx,
		Builder: goqu.NewTx(s.dialect, tx),
		dialect: s.dialect,
	}, nil
}

// WithTx starts a transaction, executes cb with a transactional storage
// handle, and commits if cb returns nil. Otherwise the transaction is rolled
// back and cb's error is returned.
func (s *Store) WithTx(ctx context.Context, cb func(storage storage.AllStorage) error) error {
	tx, err := s.Begin(ctx)
	if err != nil {
		return err
	}

	if err := cb(tx); err != nil {
		_ = tx.Rollback()

		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("could not commit tx: %w", err)
	}

	return nil
}
