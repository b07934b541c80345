package database

import (
	"context"
	"database/sql"
)

// DB is the narrow query surface repositories depend on, so tests can stand
// in for the pgx pool without a server.
type DB interface {
	Ping(ctx context.Context) error
	Close() error

	Exec(ctx context.Context, query string, args ...any) (int64, error)
	Query(ctx context.Context, query string, args ...any) (Rows, error)
	QueryRow(ctx context.Context, query string, args ...any) Row

	// SQLDB exposes the database/sql view of the pool for the migration
	// runner.
	SQLDB() *sql.DB
}

type Rows interface {
	Close()
	Next() bool
	Scan(dest ...any) error
	Err() error
}

type Row interface {
	Scan(dest ...any) error
}
