// Package iodb implements the connection provider and cursor scopes on
// top of database/sql. PostgreSQL is reached through the pgx stdlib
// adapter, SQLite through the pure Go modernc driver.
// This is an impure I/O package that implements contracts
// defined in pkg/.
package iodb

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"log/slog"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/gnames/squadcheck/pkg/config"
	"github.com/gnames/squadcheck/pkg/db"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// appName is reported to PostgreSQL as application_name.
const appName = "squadcheck"

// serverTimeoutGrace is added to the client-side deadline of a cursor
// scope when the server enforces statement_timeout itself, so that the
// server error arrives before the client gives up on the connection.
const serverTimeoutGrace = 2 * time.Second

// repinTimeout limits an attempt to replace a broken connection.
const repinTimeout = 5 * time.Second

// sqlOperator implements db.Operator interface with a single
// pinned database/sql connection.
type sqlOperator struct {
	mu      sync.Mutex
	cfg     config.DatabaseConfig
	dialect db.Dialect
	pool    *sql.DB
	conn    *sql.Conn
}

// NewOperator creates a new database operator
// (without connecting).
func NewOperator() db.Operator {
	return &sqlOperator{}
}

// Connect opens the database and pins one connection for the
// lifetime of the operator. Connection is verified with a ping.
func (p *sqlOperator) Connect(
	ctx context.Context,
	cfg *config.DatabaseConfig,
) error {
	dialect, err := db.NewDialect(cfg.Driver)
	if err != nil {
		return UnknownDriverError(cfg.Driver)
	}

	var pool *sql.DB
	switch dialect {
	case db.Postgres:
		pool, err = openPostgres(cfg)
	case db.SQLite:
		pool, err = openSQLite(cfg)
	}
	if err != nil {
		return ConnectionError(cfg.Target(), err)
	}

	// one connection is all a run needs; checks never share it
	// concurrently
	pool.SetMaxOpenConns(1)
	pool.SetMaxIdleConns(1)
	pool.SetConnMaxLifetime(0)

	conn, err := pool.Conn(ctx)
	if err != nil {
		pool.Close()
		return ConnectionError(cfg.Target(), err)
	}

	if err = conn.PingContext(ctx); err != nil {
		conn.Close()
		pool.Close()
		return ConnectionError(cfg.Target(), err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.cfg = *cfg
	p.dialect = dialect
	p.pool = pool
	p.conn = conn

	slog.Info("Connected to database",
		"target", cfg.Target(),
		"dialect", dialect.String(),
	)
	return nil
}

// Close releases the pinned connection and the underlying pool.
func (p *sqlOperator) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	var errs []error
	if p.conn != nil {
		errs = append(errs, p.conn.Close())
		p.conn = nil
	}
	if p.pool != nil {
		errs = append(errs, p.pool.Close())
		p.pool = nil
	}
	if err := errors.Join(errs...); err != nil {
		return CloseError(err)
	}
	return nil
}

// Dialect returns the dialect of the connected database.
func (p *sqlOperator) Dialect() db.Dialect {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.dialect
}

// WithCursor runs fn with a cursor over the pinned connection.
// Result sets opened through the cursor are closed when fn returns,
// even if it panics. If the scope ended with an error, the connection
// is checked and replaced when it is no longer usable.
func (p *sqlOperator) WithCursor(
	ctx context.Context,
	fn func(context.Context, db.Cursor) error,
) (err error) {
	p.mu.Lock()
	conn, dialect, timeout := p.conn, p.dialect, p.scopeTimeout()
	p.mu.Unlock()

	if conn == nil {
		return NotConnectedError()
	}

	scopeCtx := ctx
	if timeout > 0 {
		var cancel context.CancelFunc
		scopeCtx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	cur := newCursor(conn, dialect)
	defer func() {
		relErr := cur.release()
		if err == nil && relErr != nil {
			err = relErr
		}
		if err != nil {
			p.ensureHealthy(ctx, conn, err)
		}
	}()

	return fn(scopeCtx, cur)
}

// scopeTimeout returns the client-side deadline of a cursor scope.
// Caller holds the lock.
func (p *sqlOperator) scopeTimeout() time.Duration {
	if p.cfg.StatementTimeout <= 0 {
		return 0
	}
	if p.dialect == db.Postgres {
		return p.cfg.StatementTimeout + serverTimeoutGrace
	}
	return p.cfg.StatementTimeout
}

// ensureHealthy replaces the pinned connection if a failed scope left
// it broken. It never returns an error, a failure to recover is
// reported by the next scope.
func (p *sqlOperator) ensureHealthy(
	ctx context.Context,
	conn *sql.Conn,
	cause error,
) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), repinTimeout)
	defer cancel()

	broken := errors.Is(cause, driver.ErrBadConn) ||
		errors.Is(cause, sql.ErrConnDone)
	if !broken && conn.PingContext(ctx) == nil {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.conn != conn || p.pool == nil {
		return
	}

	_ = conn.Close()
	newConn, err := p.pool.Conn(ctx)
	if err == nil {
		err = newConn.PingContext(ctx)
	}
	if err != nil {
		slog.Error("Cannot restore database connection",
			"target", p.cfg.Target(),
			"error", err,
		)
		if newConn != nil {
			_ = newConn.Close()
		}
		p.conn = nil
		return
	}

	slog.Warn("Database connection was restored",
		"target", p.cfg.Target(),
		"cause", cause,
	)
	p.conn = newConn
}

func openPostgres(cfg *config.DatabaseConfig) (*sql.DB, error) {
	connCfg, err := pgx.ParseConfig(postgresURL(cfg))
	if err != nil {
		return nil, err
	}

	connCfg.RuntimeParams["application_name"] = appName
	// checks never write
	connCfg.RuntimeParams["default_transaction_read_only"] = "on"
	if cfg.StatementTimeout > 0 {
		ms := cfg.StatementTimeout.Milliseconds()
		connCfg.RuntimeParams["statement_timeout"] = strconv.FormatInt(ms, 10)
	}

	return stdlib.OpenDB(*connCfg), nil
}

func openSQLite(cfg *config.DatabaseConfig) (*sql.DB, error) {
	// the driver would create a missing file
	if _, err := os.Stat(cfg.Database); err != nil {
		return nil, err
	}
	return sql.Open("sqlite", sqliteDSN(cfg.Database))
}
