// Package table builds a one-hot encoded table of game mechanics.
//
// Rows are accumulated in a single pass while the mechanics vocabulary is
// still growing. A row only has flags for mechanics known at the moment it
// was created. Finalize pads every row with zero flags up to the final
// vocabulary size once all records are processed.
package table

import (
	"strconv"
)

// Fixed leading columns of every table.
const (
	RatingColumn      = "rating"
	BayesRatingColumn = "bayes_rating"
)

// Row is one game in the table.
type Row struct {
	Rating      float64
	BayesRating float64
	// Flags has one 0/1 value per vocabulary entry, in vocabulary order.
	// While buffered, its length equals the vocabulary size at the time
	// the row was created.
	Flags []uint8
}

// Width returns the number of mechanic flags in the row.
func (r Row) Width() int {
	return len(r.Flags)
}

// Fields returns the row as text fields: rating, bayes rating, then flags.
func (r Row) Fields() []string {
	res := make([]string, 0, len(r.Flags)+2)
	res = append(res, FormatFloat(r.Rating), FormatFloat(r.BayesRating))
	for _, f := range r.Flags {
		res = append(res, strconv.Itoa(int(f)))
	}
	return res
}

// Table is the finalized result: a header and rows of equal width.
type Table struct {
	// Header is rating, bayes_rating, then mechanics in first-seen order.
	Header []string
	// Rows are in the order records were processed.
	Rows []Row
}

// Tags returns the mechanic labels of the header.
func (t *Table) Tags() []string {
	return t.Header[2:]
}

// Records returns the header and all rows as text records.
func (t *Table) Records() [][]string {
	res := make([][]string, 0, len(t.Rows)+1)
	res = append(res, t.Header)
	for _, r := range t.Rows {
		res = append(res, r.Fields())
	}
	return res
}

// Finalize pads every row with trailing zero flags up to the size of the
// vocabulary and prepends the header. Rows keep their original order and
// their flags at existing positions. The input rows are not modified.
func Finalize(vocab *Vocabulary, rows []Row) *Table {
	tags := vocab.Labels()
	header := make([]string, 0, len(tags)+2)
	header = append(header, RatingColumn, BayesRatingColumn)
	header = append(header, tags...)

	res := &Table{Header: header, Rows: make([]Row, len(rows))}
	for i, r := range rows {
		flags := make([]uint8, max(len(tags), len(r.Flags)))
		copy(flags, r.Flags)
		res.Rows[i] = Row{
			Rating:      r.Rating,
			BayesRating: r.BayesRating,
			Flags:       flags,
		}
	}
	return res
}

// FormatFloat renders a rating with the shortest representation that
// parses back to the same value: 7 -> "7", 7.5 -> "7.5".
func FormatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
