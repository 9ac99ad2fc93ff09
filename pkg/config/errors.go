package config

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/squadcheck/pkg/errcode"
)

// MissingSettingsError is returned by Validate when required settings
// have no value.
func MissingSettingsError(envVars []string) error {
	msg := "Required settings are missing, set <em>%s</em>"
	names := strings.Join(envVars, ", ")
	vars := []any{names}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ConfigMissingSettingsError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: missing required settings: %s",
			fn.Name(), names),
	}
}
