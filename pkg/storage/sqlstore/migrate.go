package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"path"

	"github.com/pressly/goose/v3"
	"go.uber.org/zap"

	"passgen/pkg/logger"
	"passgen/pkg/storage"
)

// MigrationsDir returns the directory holding the migrations of dialect inside
// the embedded migrations filesystem.
func MigrationsDir(dialect string) string {
	if dialect == DialectSQLite {
		return path.Join("migrations", "sqlite")
	}

	return path.Join("migrations", "postgres")
}

// gooseLogger routes goose output through the context logger.
type gooseLogger struct {
	ctx context.Context //nolint: containedctx
}

func (l gooseLogger) Printf(format string, v ...interface{}) {
	logger.Debug(l.ctx, "goose", zap.String("message", fmt.Sprintf(format, v...)))
}

func (l gooseLogger) Fatalf(format string, v ...interface{}) {
	logger.Fatal(l.ctx, "goose", zap.String("message", fmt.Sprintf(format, v...)))
}

// Migrate applies all pending migrations for dialect found in fsys.
func Migrate(ctx context.Context, db *sql.DB, dialect string, fsys fs.FS) error {
	goose.SetBaseFS(fsys)
	goose.SetLogger(gooseLogger{ctx: ctx})

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("could not set goose dialect to %s: %w", dialect, err)
	}
	if err := goose.UpContext(ctx, db, MigrationsDir(dialect)); err != nil {
		return fmt.Errorf("could not migrate %s database: %w", dialect, err)
	}

	return nil
}

// Migrate applies pending migrations to the store's database. It fails when
// called on a transactional handle.
func (s *Store) Migrate(ctx context.Context, fsys fs.FS) error {
	db, ok := s.DB.(*sql.DB)
	if !ok {
		return fmt.Errorf("could not migrate: %w", storage.ErrAlreadyInTx)
	}

	return Migrate(ctx, db, s.dialect, fsys)
}
