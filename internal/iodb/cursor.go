package iodb

import (
	"context"
	"database/sql"
	"errors"
	"sync"

	"github.com/gnames/squadcheck/pkg/db"
)

// cursor implements db.Cursor. It remembers every result set it opened
// and closes them on release.
type cursor struct {
	mu       sync.Mutex
	conn     *sql.Conn
	dialect  db.Dialect
	rows     []*sql.Rows
	released bool
}

func newCursor(conn *sql.Conn, dialect db.Dialect) *cursor {
	return &cursor{conn: conn, dialect: dialect}
}

// Dialect returns the dialect of the underlying connection.
func (c *cursor) Dialect() db.Dialect {
	return c.dialect
}

// Query runs a query and registers its result set with the cursor.
func (c *cursor) Query(
	ctx context.Context,
	query string,
	args ...any,
) (db.Rows, error) {
	rows, err := c.query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// QueryRow runs a query and defers its error until Scan.
// Unlike sql.Row, the result set is closed on release even if Scan is
// never called.
func (c *cursor) QueryRow(
	ctx context.Context,
	query string,
	args ...any,
) db.Row {
	rows, err := c.query(ctx, query, args...)
	return &row{rows: rows, err: err}
}

func (c *cursor) query(
	ctx context.Context,
	query string,
	args ...any,
) (*sql.Rows, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.released {
		return nil, CursorReleasedError()
	}

	rows, err := c.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	c.rows = append(c.rows, rows)
	return rows, nil
}

// release closes all result sets of the cursor and makes it refuse
// further queries. It is safe to call more than once.
func (c *cursor) release() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.released {
		return nil
	}
	c.released = true

	var errs []error
	for _, rows := range c.rows {
		errs = append(errs, rows.Close())
	}
	c.rows = nil

	if err := errors.Join(errs...); err != nil {
		return CursorReleaseError(err)
	}
	return nil
}

// row implements db.Row on top of a result set owned by a cursor.
type row struct {
	rows *sql.Rows
	err  error
}

// Scan copies the first row into dest and closes the result set.
// It returns sql.ErrNoRows if the query returned nothing.
func (r *row) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	defer r.rows.Close()

	if !r.rows.Next() {
		if err := r.rows.Err(); err != nil {
			return err
		}
		return sql.ErrNoRows
	}
	if err := r.rows.Scan(dest...); err != nil {
		return err
	}
	return r.rows.Close()
}
