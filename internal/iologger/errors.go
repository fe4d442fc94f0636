package iologger

import (
	"fmt"
	"runtime"

	"github.com/gnames/bggmech/pkg/errcode"
	"github.com/gnames/gn"
)

// CreateLogFileError is returned when the "file" destination is selected
// but the log file cannot be created.
func CreateLogFileError(path string, err error) error {
	msg := "Cannot create log file <em>%s</em>, " +
		"set BGGMECH_LOG_DESTINATION to stderr or stdout to log elsewhere"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.CreateLogFileError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: create %s: %w", fn.Name(), path, err),
	}
}
