package iodb

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/squadcheck/pkg/errcode"
)

// ConnectionError is returned when the database cannot be opened or
// does not answer a ping.
func ConnectionError(target string, err error) error {
	msg := `Cannot connect to <em>%s</em>

<em>Possible causes:</em>
  - the database server is not running
  - DB_HOST, DB_PORT, DB_NAME, DB_USER or DB_PASS are incorrect
  - the SQLite file does not exist`
	vars := []any{target}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.DBConnectionError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot connect to %s: %w",
			fn.Name(), target, err),
	}
}

func NotConnectedError() error {
	msg := "Database is not connected"
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  msg,
		Err:  fmt.Errorf("from %s: database is not connected", fn.Name()),
	}
}

func UnknownDriverError(driver string) error {
	msg := "Unknown database driver <em>%s</em>, use postgres or sqlite"
	vars := []any{driver}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.DBUnknownDriverError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: unknown driver %q", fn.Name(), driver),
	}
}

func CloseError(err error) error {
	msg := "Cannot close database connection"
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.DBCloseError,
		Msg:  msg,
		Err:  fmt.Errorf("from %s: cannot close connection: %w", fn.Name(), err),
	}
}

// CursorReleasedError is returned when a cursor is used after its
// scope ended.
func CursorReleasedError() error {
	msg := "Database cursor is already released"
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.DBCursorReleasedError,
		Msg:  msg,
		Err:  fmt.Errorf("from %s: cursor is already released", fn.Name()),
	}
}

func CursorReleaseError(err error) error {
	msg := "Cannot release database cursor"
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.DBCursorReleaseError,
		Msg:  msg,
		Err:  fmt.Errorf("from %s: cannot close result sets: %w", fn.Name(), err),
	}
}
