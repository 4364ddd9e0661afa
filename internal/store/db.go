// Package store persists canonical goalie records in an append-only table.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/lib/pq"
	_ "github.com/snowflakedb/gosnowflake"
	_ "github.com/tursodatabase/libsql-client-go/libsql"
	_ "modernc.org/sqlite"
)

const (
	defaultTable = "goalies"
	pingTimeout  = 10 * time.Second
)

type Store struct {
	db      *sql.DB
	dialect Dialect
	table   string
}

type Option func(*Store)

// WithTable overrides the target table name. The name is interpolated into
// SQL, so callers pass validated identifiers only.
func WithTable(name string) Option {
	return func(s *Store) {
		if name != "" {
			s.table = name
		}
	}
}

// NewStore opens the database named by connStr; see ParseDSN for the
// recognized forms.
func NewStore(connStr string, opts ...Option) (*Store, error) {
	dialect, dsn, err := ParseDSN(connStr)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open(dialect.Driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open db: %w", err)
	}

	if dialect == SQLite {
		// One connection, so writers never contend for the file lock.
		db.SetMaxOpenConns(1)
		if !strings.Contains(dsn, ":memory:") {
			if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
				db.Close()
				return nil, fmt.Errorf("failed to enable wal: %w", err)
			}
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping db: %w", err)
	}

	return NewWithDB(db, dialect, opts...), nil
}

// NewWithDB wraps an already opened handle.
func NewWithDB(db *sql.DB, dialect Dialect, opts ...Option) *Store {
	s := &Store{db: db, dialect: dialect, table: defaultTable}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) Dialect() Dialect {
	return s.dialect
}

func (s *Store) Table() string {
	return s.table
}

func (s *Store) Close() error {
	return s.db.Close()
}

func clampLimit(limit int, defaultLimit, maxLimit int) int {
	if limit <= 0 {
		return defaultLimit
	}
	if limit > maxLimit {
		return maxLimit
	}
	return limit
}
