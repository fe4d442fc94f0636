// Package iotable implements the Writer interface for the finalized
// one-hot table. CSV and SQLite outputs are supported.
package iotable

import (
	bggmech "github.com/gnames/bggmech/pkg"
	"github.com/gnames/bggmech/pkg/config"
)

// New returns a Writer for cfg.Output.Format.
func New(cfg *config.Config) (bggmech.Writer, error) {
	switch cfg.Output.Format {
	case "csv":
		return NewCSV(cfg.Output.Path), nil
	case "sqlite":
		return NewSQLite(cfg.Output.Path, cfg.Output.Table), nil
	default:
		return nil, FormatError(cfg.Output.Format)
	}
}
