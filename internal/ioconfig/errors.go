package ioconfig

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/squadcheck/pkg/errcode"
)

func EnvFileError(path string, err error) error {
	msg := "Cannot load environment file <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ConfigEnvFileError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot load %s: %w",
			fn.Name(), path, err),
	}
}

func ReadConfigError(path string, err error) error {
	msg := "Cannot read configuration from <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ConfigReadError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot read config %s: %w",
			fn.Name(), path, err),
	}
}
