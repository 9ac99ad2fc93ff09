package ioreport

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/squadcheck/pkg/errcode"
)

func FormatError(format string) error {
	msg := "Unknown output format <em>%s</em>, use one of %s"
	vars := []any{format, strings.Join(Formats(), ", ")}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ReportFormatError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: unknown format %q", fn.Name(), format),
	}
}

func EncodeError(format string, err error) error {
	msg := "Cannot write %s output"
	vars := []any{format}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ReportEncodeError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot write %s: %w", fn.Name(), format, err),
	}
}
