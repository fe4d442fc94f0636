package iofs

import (
	"fmt"
	"runtime"

	"github.com/gnames/bggmech/pkg/errcode"
	"github.com/gnames/gn"
)

// CreateDirError is returned when the config or log directory of bggmech
// cannot be created under the home directory.
func CreateDirError(dir string, err error) error {
	msg := "Cannot create bggmech directory <em>%s</em>, " +
		"make sure the home directory is writable"
	vars := []any{dir}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.CreateDirError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: mkdir %s: %w", fn.Name(), dir, err),
	}
}

// WriteConfigError is returned when the default config.yaml cannot be
// written on the first run.
func WriteConfigError(path string, err error) error {
	msg := "Cannot write default config to <em>%s</em>, " +
		"check permissions of the bggmech config directory"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.WriteConfigError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: write default config: %w", fn.Name(), err),
	}
}

// ReadConfigError is returned when config.yaml exists but cannot be read
// or does not unmarshal into the config.
func ReadConfigError(path string, err error) error {
	msg := "Cannot read config <em>%s</em>, " +
		"fix the YAML or remove the file to regenerate defaults"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ReadConfigError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: read config %s: %w", fn.Name(), path, err),
	}
}
