package roster

import "strings"

// Index answers type-ahead queries over a normalized roster. Folded
// search keys are computed once at construction so that re-running a
// query on every keystroke does not re-normalize the whole roster. The
// index is immutable; a reload builds a fresh one and swaps it in.
type Index struct {
	records     []Record
	foldedIDs   []string
	foldedNames []string
}

// NewIndex builds an index over records. The slice is retained, not
// copied; callers must not mutate it afterwards.
func NewIndex(records []Record) *Index {
	idx := &Index{
		records:     records,
		foldedIDs:   make([]string, len(records)),
		foldedNames: make([]string, len(records)),
	}
	for i, rec := range records {
		idx.foldedIDs[i] = Fold(rec.EmployeeID)
		idx.foldedNames[i] = Fold(rec.FullName())
	}
	return idx
}

// Len returns the number of indexed records.
func (idx *Index) Len() int {
	return len(idx.records)
}

// Records returns the indexed roster in source order.
func (idx *Index) Records() []Record {
	return idx.records
}

// FindByEmployeeID returns, in roster order, every record whose employee
// ID contains query (case- and accent-insensitive). An empty query means
// "nothing to search" and yields no results rather than the whole roster.
func (idx *Index) FindByEmployeeID(query string) []Record {
	return idx.find(query, idx.foldedIDs)
}

// FindByName matches query against the folded "lastName firstName"
// concatenation, with the same substring and empty-query semantics as
// FindByEmployeeID.
func (idx *Index) FindByName(query string) []Record {
	return idx.find(query, idx.foldedNames)
}

func (idx *Index) find(query string, keys []string) []Record {
	q := Fold(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	var matches []Record
	for i, key := range keys {
		if strings.Contains(key, q) {
			matches = append(matches, idx.records[i])
		}
	}
	return matches
}
