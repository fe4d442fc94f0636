package table

import (
	"errors"
	"fmt"

	"github.com/gnames/bggmech/pkg/record"
)

// ErrNotValid is returned when a skipped record is given to Accept.
var ErrNotValid = errors.New("record is not valid")

// Accumulator owns the growing vocabulary and the buffered rows.
type Accumulator struct {
	vocab *Vocabulary
	rows  []Row
}

// NewAccumulator returns an empty Accumulator.
func NewAccumulator() *Accumulator {
	return &Accumulator{vocab: NewVocabulary()}
}

// Accept folds a valid record into a new row.
//
// The row starts with a zero flag for every mechanic known so far. Each
// known tag sets its flag to 1; each new tag is added to the vocabulary
// and a 1 is appended to the row, so the row width always matches the
// vocabulary size when the row is buffered.
func (a *Accumulator) Accept(o record.Outcome) error {
	if o.Status != record.Valid {
		return fmt.Errorf("game %d is %s: %w", o.ID, o.Status, ErrNotValid)
	}

	flags := make([]uint8, a.vocab.Len())
	for _, tag := range o.Tags {
		i, added := a.vocab.Add(tag)
		if added {
			flags = append(flags, 1)
			continue
		}
		flags[i] = 1
	}

	a.rows = append(a.rows, Row{
		Rating:      o.Rating,
		BayesRating: o.BayesRating,
		Flags:       flags,
	})
	return nil
}

// Vocabulary returns the vocabulary discovered so far.
func (a *Accumulator) Vocabulary() *Vocabulary {
	return a.vocab
}

// Rows returns buffered rows. Rows created before the latest vocabulary
// additions are narrower than the vocabulary.
func (a *Accumulator) Rows() []Row {
	return a.rows
}

// Finalize builds the table from the current vocabulary and rows.
func (a *Accumulator) Finalize() *Table {
	return Finalize(a.vocab, a.rows)
}
