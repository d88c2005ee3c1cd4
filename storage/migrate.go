package storage

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
	"go.uber.org/zap"
)

//go:embed migrations/*.sql
var migrationFS embed.FS

// migrate brings the schema up to target. Opening an older version than the
// one already stored is refused.
func (s *DB) migrate(ctx context.Context, target int64) error {
	fsys, err := fs.Sub(migrationFS, "migrations")
	if err != nil {
		return err
	}
	provider, err := goose.NewProvider(goose.DialectSQLite3, s.db, fsys)
	if err != nil {
		return fmt.Errorf("init migrations: %w", err)
	}

	var latest int64
	for _, src := range provider.ListSources() {
		if src.Version > latest {
			latest = src.Version
		}
	}
	if target < 1 || target > latest {
		return fmt.Errorf("unknown schema version %d (latest is %d)", target, latest)
	}

	current, err := provider.GetDBVersion(ctx)
	if err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	if current > target {
		return fmt.Errorf("stored schema version %d is newer than requested %d", current, target)
	}

	results, err := provider.UpTo(ctx, target)
	if err != nil {
		return fmt.Errorf("migrate to %d: %w", target, err)
	}
	for _, r := range results {
		s.log.Info("schema upgraded",
			zap.Int64("version", r.Source.Version),
			zap.Duration("took", r.Duration))
	}
	s.version = target
	return nil
}

// withTx runs fn inside a transaction, committing on success and rolling
// back on error or panic.
func withTx(ctx context.Context, db *sql.DB, fn func(ctx context.Context, tx *sql.Tx) error) (err error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
			return
		}
		err = tx.Commit()
	}()
	return fn(ctx, tx)
}
