package integrity

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/squadcheck/pkg/errcode"
)

// UnknownCheckError is returned when a selected check name is not in the
// catalog.
func UnknownCheckError(name string) error {
	msg := "Unknown check <em>%s</em>, see <em>squadcheck list</em>"
	vars := []any{name}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.CheckUnknownNameError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: unknown check %q",
			fn.Name(), name),
	}
}

// UnknownKindError is returned when a kind name cannot be parsed.
func UnknownKindError(kind string) error {
	msg := "Unknown check kind <em>%s</em>"
	vars := []any{kind}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.CheckUnknownKindError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: unknown check kind %q",
			fn.Name(), kind),
	}
}

// ChecksFailedError is returned when a run finished with failed or
// errored checks.
func ChecksFailedError(failed, errored int) error {
	msg := "Integrity checks did not pass: %d failed, %d errored"
	vars := []any{failed, errored}
	return &gn.Error{
		Code: errcode.CheckFailedError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("integrity checks did not pass: %d failed, %d errored",
			failed, errored),
	}
}
