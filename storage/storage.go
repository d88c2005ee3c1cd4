// Package storage is the local persistence engine behind the portfolio: a
// versioned SQLite database holding one table per collection. Keyed
// collections hold singleton records addressed by a fixed key; list
// collections assign monotonically increasing ids and are always replaced
// wholesale.
package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

const (
	// DefaultName is the database file created inside the data directory.
	DefaultName = "personalWebsite.db"
	// SchemaVersion is the version Open migrates to by default.
	SchemaVersion int64 = 2
)

// Options configures Open.
type Options struct {
	Dir     string // data directory (default "data")
	Version int64  // schema version (default SchemaVersion)
	Logger  *zap.Logger
}

func (o *Options) setDefaults() {
	if o.Dir == "" {
		o.Dir = "data"
	}
	if o.Version == 0 {
		o.Version = SchemaVersion
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
}

// DB is an open database handle. It is safe for concurrent use.
type DB struct {
	db      *sql.DB
	path    string
	version int64
	log     *zap.Logger
}

// Open opens (creating if absent) the database in opts.Dir and migrates it
// to opts.Version. Existing collections and their records are never touched
// by a migration.
func Open(ctx context.Context, opts Options) (*DB, error) {
	opts.setDefaults()
	if err := ensureWritable(opts.Dir); err != nil {
		return nil, opError(ErrUnsupportedEnvironment, "open", "", err)
	}
	path := filepath.Join(opts.Dir, DefaultName)

	// Pragmas go in the DSN so that every pooled connection gets them:
	// WAL for concurrent readers, a busy timeout so writers wait instead of
	// failing with SQLITE_BUSY, and immediate transactions so a replace-all
	// takes the write lock up front.
	dsn := "file:" + path +
		"?_pragma=journal_mode(WAL)" +
		"&_pragma=busy_timeout(5000)" +
		"&_pragma=synchronous(NORMAL)" +
		"&_txlock=immediate"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, opError(ErrOpenFailed, "open", "", err)
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, opError(ErrOpenFailed, "open", "", err)
	}

	s := &DB{db: db, path: path, log: opts.Logger}
	if err := s.migrate(ctx, opts.Version); err != nil {
		db.Close()
		return nil, opError(ErrOpenFailed, "open", "", err)
	}
	s.log.Info("database opened", zap.String("path", path), zap.Int64("version", s.version))
	return s, nil
}

// ensureWritable creates dir and proves a file can be written inside it.
func ensureWritable(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(dir, ".probe-*")
	if err != nil {
		return err
	}
	name := f.Name()
	f.Close()
	return os.Remove(name)
}

// Close closes the underlying database.
func (s *DB) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *DB) Path() string {
	return s.path
}

// Version returns the schema version the handle was opened at.
func (s *DB) Version() int64 {
	return s.version
}

// Get fetches one record from a keyed collection. A missing record is
// reported with ok == false, not an error.
func (s *DB) Get(ctx context.Context, c Collection, key string) (rec Record, ok bool, err error) {
	info, err := lookup(c, keyedAccess)
	if err != nil {
		return Record{}, false, opError(ErrReadFailed, "get", c, err)
	}
	var data string
	err = s.db.QueryRowContext(ctx, `SELECT data FROM `+info.table+` WHERE key = ?`, key).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, false, nil
	}
	if err != nil {
		return Record{}, false, opError(ErrReadFailed, "get", c, err)
	}
	return Record{Key: key, Data: json.RawMessage(data)}, true, nil
}

// Put upserts value under key in a keyed collection.
func (s *DB) Put(ctx context.Context, c Collection, key string, value any) error {
	info, err := lookup(c, keyedAccess)
	if err != nil {
		return opError(ErrWriteFailed, "put", c, err)
	}
	data, err := json.Marshal(value)
	if err != nil {
		return opError(ErrWriteFailed, "put", c, fmt.Errorf("encode: %w", err))
	}
	_, err = s.db.ExecContext(ctx, `INSERT INTO `+info.table+` (key, data) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET data = excluded.data`, key, string(data))
	if err != nil {
		return opError(ErrWriteFailed, "put", c, err)
	}
	return nil
}

// beforeInsert is a seam for tests to fail a replace-all partway through.
var beforeInsert func(c Collection, i int) error

// ReplaceAll deletes every record in a list collection and inserts items in
// order, all inside one transaction: on any failure the collection keeps its
// previous contents. It returns the ids assigned to items, in order. An
// empty items clears the collection.
func (s *DB) ReplaceAll(ctx context.Context, c Collection, items []any) ([]int64, error) {
	info, err := lookup(c, autoAccess)
	if err != nil {
		return nil, opError(ErrWriteFailed, "replace", c, err)
	}
	encoded := make([]string, len(items))
	for i, item := range items {
		data, err := json.Marshal(item)
		if err != nil {
			return nil, opError(ErrWriteFailed, "replace", c, fmt.Errorf("encode item %d: %w", i, err))
		}
		encoded[i] = string(data)
	}

	ids := make([]int64, 0, len(items))
	err = withTx(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM `+info.table); err != nil {
			return fmt.Errorf("clear: %w", err)
		}
		for i, data := range encoded {
			if beforeInsert != nil {
				if err := beforeInsert(c, i); err != nil {
					return err
				}
			}
			res, err := tx.ExecContext(ctx, `INSERT INTO `+info.table+` (data) VALUES (?)`, data)
			if err != nil {
				return fmt.Errorf("insert item %d: %w", i, err)
			}
			id, err := res.LastInsertId()
			if err != nil {
				return fmt.Errorf("insert item %d: %w", i, err)
			}
			ids = append(ids, id)
		}
		return nil
	})
	if err != nil {
		s.log.Warn("replace-all rolled back", zap.String("collection", string(c)), zap.Error(err))
		return nil, opError(ErrWriteFailed, "replace", c, err)
	}
	return ids, nil
}

// GetAll returns every record in c in storage order: ascending id for list
// collections, ascending key for keyed ones.
func (s *DB) GetAll(ctx context.Context, c Collection) ([]Record, error) {
	info, err := lookup(c, anyAccess)
	if err != nil {
		return nil, opError(ErrReadFailed, "get-all", c, err)
	}
	query := `SELECT key, data FROM ` + info.table + ` ORDER BY key`
	if info.auto {
		query = `SELECT id, data FROM ` + info.table + ` ORDER BY id`
	}
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, opError(ErrReadFailed, "get-all", c, err)
	}
	defer rows.Close()

	records := []Record{}
	for rows.Next() {
		var rec Record
		var data string
		if info.auto {
			err = rows.Scan(&rec.ID, &data)
		} else {
			err = rows.Scan(&rec.Key, &data)
		}
		if err != nil {
			return nil, opError(ErrReadFailed, "get-all", c, err)
		}
		rec.Data = json.RawMessage(data)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, opError(ErrReadFailed, "get-all", c, err)
	}
	return records, nil
}
