// Package bggmech defines the components of the board-game mechanics
// converter: a Loader that reads one game record, a Writer that stores the
// finished table, and a Converter that drives a single pass over all game
// IDs.
package bggmech

import (
	"context"
	"time"

	"github.com/gnames/bggmech/pkg/record"
	"github.com/gnames/bggmech/pkg/table"
)

// Loader reads and classifies a game record by its ID.
type Loader interface {
	// Load returns the outcome for the game with the given ID.
	// Absent, errored and zero-signal records are reported through
	// Outcome.Status, not as errors. An error means the record exists
	// but cannot be read or parsed, and the run has to stop.
	Load(id int) (record.Outcome, error)
}

// Writer persists a finalized table.
type Writer interface {
	// Write creates or overwrites the output with the table content.
	Write(ctx context.Context, tbl *table.Table) error
}

// Converter runs the whole conversion once.
type Converter interface {
	// Convert scans all configured game IDs, builds the one-hot table
	// and writes it. It returns statistics of the run.
	Convert(ctx context.Context) (*Summary, error)
}

// Summary describes a finished conversion.
type Summary struct {
	// Scanned is the number of game IDs visited.
	Scanned int
	// Counts holds the number of records per outcome status.
	Counts map[record.Status]int
	// Rows is the number of data rows written.
	Rows int
	// Columns is the number of mechanic columns in the header.
	Columns int
	// Duration is the wall time of the run.
	Duration time.Duration
}
