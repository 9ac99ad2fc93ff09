package db

import (
	"fmt"
	"strconv"
)

// Dialect distinguishes SQL flavors where queries cannot be shared.
type Dialect int

const (
	UnknownDialect Dialect = iota
	Postgres
	SQLite
)

// NewDialect converts a driver name from configuration to Dialect.
func NewDialect(driver string) (Dialect, error) {
	switch driver {
	case "postgres", "pgx":
		return Postgres, nil
	case "sqlite":
		return SQLite, nil
	default:
		return UnknownDialect, fmt.Errorf("unknown database driver %q", driver)
	}
}

// String returns the driver name of the dialect.
func (d Dialect) String() string {
	switch d {
	case Postgres:
		return "postgres"
	case SQLite:
		return "sqlite"
	default:
		return "unknown"
	}
}

// Placeholder returns the n-th (1-based) positional query parameter.
func (d Dialect) Placeholder(n int) string {
	if d == Postgres {
		return "$" + strconv.Itoa(n)
	}
	return "?"
}
