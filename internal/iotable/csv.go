package iotable

import (
	"context"
	"encoding/csv"
	"os"

	bggmech "github.com/gnames/bggmech/pkg"
	"github.com/gnames/bggmech/pkg/table"
)

type csvWriter struct {
	path string
}

// NewCSV returns a Writer that stores the table as comma-separated text,
// one line per record, header first.
func NewCSV(path string) bggmech.Writer {
	return &csvWriter{path: path}
}

func (w *csvWriter) Write(_ context.Context, tbl *table.Table) error {
	f, err := os.Create(w.path)
	if err != nil {
		return CreateError(w.path, err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if err = cw.WriteAll(tbl.Records()); err != nil {
		return WriteError(w.path, err)
	}

	if err = f.Close(); err != nil {
		return WriteError(w.path, err)
	}
	return nil
}
