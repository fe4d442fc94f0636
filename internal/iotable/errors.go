package iotable

import (
	"fmt"
	"runtime"

	"github.com/gnames/bggmech/pkg/errcode"
	"github.com/gnames/gn"
)

// FormatError creates an error for an unsupported output format.
func FormatError(format string) error {
	msg := "Output format <em>%s</em> is not supported, use csv or sqlite"
	vars := []any{format}
	return &gn.Error{
		Code: errcode.OutputFormatError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("unsupported output format %q", format),
	}
}

// CreateError creates an error for when the output cannot be created.
func CreateError(path string, err error) error {
	msg := "Cannot create output <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.OutputCreateError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot create %s: %w",
			fn.Name(), path, err),
	}
}

// WriteError creates an error for a failure while writing the table.
// The output may be left incomplete.
func WriteError(path string, err error) error {
	msg := "Cannot write output <em>%s</em>, the file may be incomplete"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.OutputWriteError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot write %s: %w",
			fn.Name(), path, err),
	}
}
