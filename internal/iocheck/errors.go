package iocheck

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/squadcheck/pkg/errcode"
)

// QueryError is returned when a check query cannot be executed, for
// example because a table is missing.
func QueryError(check string, err error) error {
	msg := "Check <em>%s</em> cannot query the database"
	vars := []any{check}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.CheckQueryError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: query of %s failed: %w",
			fn.Name(), check, err),
	}
}

func PanicError(check string, rec any) error {
	msg := "Check <em>%s</em> panicked"
	vars := []any{check}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.CheckPanicError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: check %s panicked: %v",
			fn.Name(), check, rec),
	}
}

// CancelledError marks checks that did not run because the run was
// cancelled.
func CancelledError(check string, cause error) error {
	msg := "Check <em>%s</em> was not run"
	vars := []any{check}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.CheckCancelledError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: check %s was not run: %w",
			fn.Name(), check, cause),
	}
}
