// Package sqlstore opens the relational store shared by the record
// repositories and owns its schema.
package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gocraft/dbr/v2"
	"github.com/gocraft/dbr/v2/dialect"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Options struct {
	Driver string
	Path   string
	DSN    string
	Logger *zap.Logger
}

// Store holds the connection and a session bound to the query logger.
type Store struct {
	conn   *dbr.Connection
	sess   *dbr.Session
	logger *zap.Logger
}

func Open(ctx context.Context, opts Options) (*Store, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	var (
		conn *dbr.Connection
		err  error
	)
	switch opts.Driver {
	case "", DriverSQLite:
		conn, err = openSQLite(opts.Path)
	case DriverPostgres:
		conn, err = openPostgres(opts.DSN)
	default:
		return nil, fmt.Errorf("unsupported storage driver %q", opts.Driver)
	}
	if err != nil {
		return nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := conn.PingContext(pingCtx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	store := &Store{
		conn:   conn,
		sess:   conn.NewSession(NewReceiver(logger)),
		logger: logger,
	}
	if err := store.ensureSchema(ctx); err != nil {
		_ = conn.Close()
		return nil, err
	}
	logger.Debug("storage ready", zap.String("driver", store.Driver()))
	return store, nil
}

func openSQLite(path string) (*dbr.Connection, error) {
	if path == "" {
		return nil, fmt.Errorf("sqlite path is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", path+"?_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// one connection keeps every write on the same SQLite handle
	db.SetMaxOpenConns(1)
	return &dbr.Connection{DB: db, Dialect: dialect.SQLite3, EventReceiver: &dbr.NullEventReceiver{}}, nil
}

func openPostgres(dsn string) (*dbr.Connection, error) {
	if dsn == "" {
		return nil, fmt.Errorf("postgres dsn is required")
	}
	conn, err := dbr.Open("postgres", dsn, nil)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	conn.SetMaxOpenConns(5)
	conn.SetMaxIdleConns(2)
	conn.SetConnMaxLifetime(5 * time.Minute)
	return conn, nil
}

func (s *Store) Session() *dbr.Session {
	return s.sess
}

func (s *Store) Driver() string {
	if s.conn.Dialect == dialect.PostgreSQL {
		return DriverPostgres
	}
	return DriverSQLite
}

func (s *Store) Ping(ctx context.Context) error {
	return s.conn.PingContext(ctx)
}

func (s *Store) Close() error {
	return s.conn.Close()
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS job_applications (
  id TEXT PRIMARY KEY,
  company TEXT NOT NULL,
  role TEXT NOT NULL,
  status TEXT NOT NULL,
  applied_date TEXT NOT NULL,
  resume_ref TEXT NOT NULL DEFAULT '',
  cover_letter_ref TEXT NOT NULL DEFAULT '',
  notes TEXT NOT NULL DEFAULT '',
  last_updated TEXT NOT NULL
)`,
	`CREATE INDEX IF NOT EXISTS job_applications_applied_date ON job_applications (applied_date, id)`,
	`CREATE INDEX IF NOT EXISTS job_applications_status ON job_applications (status)`,
	`CREATE TABLE IF NOT EXISTS study_logs (
  id TEXT PRIMARY KEY,
  date TEXT NOT NULL,
  minutes_studied INTEGER NOT NULL CHECK (minutes_studied >= 0),
  topic_notes TEXT NOT NULL DEFAULT '',
  last_updated TEXT NOT NULL
)`,
	`CREATE INDEX IF NOT EXISTS study_logs_date ON study_logs (date, id)`,
	`CREATE TABLE IF NOT EXISTS achievement_unlocks (
  id TEXT PRIMARY KEY,
  unlocked_at TEXT NOT NULL
)`,
}

func (s *Store) ensureSchema(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := s.conn.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

// InTx runs fn inside one database transaction. The transaction is rolled
// back unless fn returns nil and the commit succeeds.
func InTx(ctx context.Context, sess *dbr.Session, fn func(tx *dbr.Tx) error) error {
	tx, err := sess.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.RollbackUnlessCommitted()
	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}
