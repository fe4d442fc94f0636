package table

// Vocabulary is an insertion-ordered set of mechanic labels.
// The index of a label is its flag position in every row.
// Labels are compared by exact string equality.
type Vocabulary struct {
	labels []string
	index  map[string]int
}

// NewVocabulary returns an empty vocabulary.
func NewVocabulary() *Vocabulary {
	return &Vocabulary{index: make(map[string]int)}
}

// Len returns the number of distinct labels.
func (v *Vocabulary) Len() int {
	return len(v.labels)
}

// Index returns the position of a label and true, or -1 and false if the
// label is unknown.
func (v *Vocabulary) Index(label string) (int, bool) {
	if i, ok := v.index[label]; ok {
		return i, true
	}
	return -1, false
}

// Add appends the label if it is new. It returns the label's index and
// true if the label was added.
func (v *Vocabulary) Add(label string) (int, bool) {
	if i, ok := v.index[label]; ok {
		return i, false
	}
	i := len(v.labels)
	v.labels = append(v.labels, label)
	v.index[label] = i
	return i, true
}

// Labels returns a copy of labels in first-seen order.
func (v *Vocabulary) Labels() []string {
	res := make([]string, len(v.labels))
	copy(res, v.labels)
	return res
}
