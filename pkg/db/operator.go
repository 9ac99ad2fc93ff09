package db

import (
	"context"

	"github.com/gnames/squadcheck/pkg/config"
)

// Operator defines the connection lifecycle of a check run.
// It holds exactly one database connection between Connect and Close and
// hands out short-lived cursors over that connection.
//
// The connection is opened read-only where the driver allows it. Components
// never receive the connection itself, only a Cursor scoped to their work.
type Operator interface {
	// Connect establishes the connection and verifies it with a ping.
	Connect(context.Context, *config.DatabaseConfig) error

	// Close releases the connection. It is safe to call more than once.
	Close() error

	// Dialect returns the SQL dialect of the connected database.
	Dialect() Dialect

	// WithCursor runs fn with a cursor that is released as soon as fn
	// returns or panics. Result sets left open by fn are closed on release,
	// and the cursor refuses further queries afterwards.
	WithCursor(
		ctx context.Context,
		fn func(context.Context, Cursor) error,
	) error
}

// Cursor is a read-only query handle scoped to a single unit of work.
type Cursor interface {
	// QueryRow runs a query that is expected to return at most one row.
	// Errors are deferred until Scan.
	QueryRow(ctx context.Context, query string, args ...any) Row

	// Query runs a query returning any number of rows.
	Query(ctx context.Context, query string, args ...any) (Rows, error)

	// Dialect returns the SQL dialect of the underlying connection.
	Dialect() Dialect
}

// Row is the result of QueryRow.
type Row interface {
	Scan(dest ...any) error
}

// Rows is an iterator over a result set.
type Rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close() error
}
