package iocheck

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/gnames/squadcheck/pkg/db"
	"github.com/gnames/squadcheck/pkg/integrity"
	"github.com/jackc/pgx/v5/pgconn"
)

// maxListed limits the number of offending values shown in a diagnostic.
const maxListed = 20

// count runs a query that returns a single integer.
func count(
	ctx context.Context,
	cur db.Cursor,
	query string,
	args ...any,
) (int64, error) {
	var res int64
	err := cur.QueryRow(ctx, query, args...).Scan(&res)
	return res, err
}

// queryFailed converts a query error to an outcome of a check that could
// not be evaluated. The diagnostic carries the database message.
func queryFailed(check string, err error) integrity.Outcome {
	return integrity.Errored(describeDBError(err), QueryError(check, err))
}

// describeDBError returns the database message of err, with SQLSTATE for
// PostgreSQL errors.
func describeDBError(err error) string {
	var pgErr *pgconn.PgError
	switch {
	case errors.As(err, &pgErr):
		return fmt.Sprintf("query failed: %s (SQLSTATE %s)",
			pgErr.Message, pgErr.Code)
	case errors.Is(err, context.DeadlineExceeded):
		return "query failed: statement timeout exceeded"
	case errors.Is(err, context.Canceled):
		return "query failed: run was cancelled"
	default:
		return "query failed: " + err.Error()
	}
}

// listItems joins items for a diagnostic, showing at most maxListed.
func listItems(items []string) string {
	if len(items) <= maxListed {
		return strings.Join(items, ", ")
	}
	rest := int64(len(items) - maxListed)
	return strings.Join(items[:maxListed], ", ") +
		", ... and " + humanize.Comma(rest) + " more"
}

// nullID formats a nullable identifier.
func nullID(id sql.NullInt64) string {
	if !id.Valid {
		return "NULL"
	}
	return strconv.FormatInt(id.Int64, 10)
}

// plural returns word with "s" appended unless n is 1.
func plural(n int64, word string) string {
	if n == 1 {
		return "1 " + word
	}
	return humanize.Comma(n) + " " + word + "s"
}
