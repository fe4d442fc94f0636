// Package record describes the result of loading one game record.
package record

// Status classifies a loaded record.
type Status int

const (
	// Absent means there is no file for the game ID.
	Absent Status = iota
	// Errored means the file carries an explicit error element, for
	// example for a deleted or private game.
	Errored
	// ZeroSignal means the Bayes-adjusted rating is exactly 0, so the game
	// does not have enough votes for a meaningful rating.
	ZeroSignal
	// Valid means the record contributes a row to the table.
	Valid
)

var statusNames = map[Status]string{
	Absent:     "absent",
	Errored:    "errored",
	ZeroSignal: "zero_signal",
	Valid:      "valid",
}

// String returns a lowercase name of the status suitable for logs.
func (s Status) String() string {
	if res, ok := statusNames[s]; ok {
		return res
	}
	return "unknown"
}

// Outcome is the classified content of one game record.
// Rating, BayesRating and Tags are meaningful only for Valid outcomes.
type Outcome struct {
	// ID of the game.
	ID int
	// Status of the record.
	Status Status
	// Rating is the average user rating.
	Rating float64
	// BayesRating is the Bayes-adjusted average rating.
	BayesRating float64
	// Tags are mechanic labels in source order, duplicates kept.
	Tags []string
}

// Skip reports whether the outcome contributes nothing to the table.
func (o Outcome) Skip() bool {
	return o.Status != Valid
}
