package scan

// Totals accumulates line counts per category. Counters only ever grow;
// callers start from the zero value for each root and merge upward.
type Totals struct {
	Source int
	Header int
}

// Add credits lines to exactly one category counter.
func (t *Totals) Add(c Category, lines int) {
	if c == CategoryHeader {
		t.Header += lines
		return
	}
	t.Source += lines
}

// Merge folds another set of totals into this one.
func (t *Totals) Merge(other Totals) {
	t.Source += other.Source
	t.Header += other.Header
}

// Sum returns the combined count across both categories.
func (t Totals) Sum() int {
	return t.Source + t.Header
}
