package iorecord

import (
	"fmt"
	"runtime"

	"github.com/gnames/bggmech/pkg/errcode"
	"github.com/gnames/gn"
)

// StatError creates an error for when the existence of a record file
// cannot be determined.
func StatError(path string, err error) error {
	msg := "Cannot access <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.RecordStatError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot stat %s: %w", fn.Name(), path, err),
	}
}

// ReadError creates an error for when an existing record file cannot be
// opened or read.
func ReadError(path string, err error) error {
	msg := "Cannot read <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.RecordReadError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot read %s: %w", fn.Name(), path, err),
	}
}

// MalformedError creates an error for a record file that exists, is not
// marked as errored, but does not have the expected structure.
func MalformedError(id int, path string, err error) error {
	msg := `Game record is malformed

<em>Game ID:</em> %d
<em>File:</em> %s

<em>How to fix:</em>
  1. Remove or re-download the file
  2. Run the conversion again`

	vars := []any{id, path}

	return &gn.Error{
		Code: errcode.RecordMalformedError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("malformed game %d in %s: %w", id, path, err),
	}
}
