package buffer

// ShiftTable is a reusable Quick-Search bad-character table. The dispatcher
// keeps the last one built, so repeated searches for the same pattern are
// allocation-free.
type ShiftTable struct {
	pattern []byte
	shift   [256]int
}

// NewShiftTable precomputes the bad-character shift table for pattern.
// Fails if pattern is empty.
func NewShiftTable(pattern []byte) (*ShiftTable, error) {
	if len(pattern) == 0 {
		return nil, errOp("quick_search", KindEmptyPattern)
	}
	st := &ShiftTable{pattern: append([]byte(nil), pattern...)}
	m := len(pattern)
	for i := range st.shift {
		st.shift[i] = m + 1
	}
	for i := 0; i < m; i++ {
		st.shift[pattern[i]] = m - i
	}
	return st, nil
}

// Pattern returns the pattern this table was built for.
func (st *ShiftTable) Pattern() []byte {
	return st.pattern
}

// Find runs the Quick-Search scan over text[lo:hi], returning
// the offset (relative to the start of text) of the first match at or
// after lo, or -1 if none exists before hi.
func Find(text []byte, lo, hi int, st *ShiftTable) int {
	m := len(st.pattern)
	if m == 1 {
		for i := lo; i < hi; i++ {
			if text[i] == st.pattern[0] {
				return i
			}
		}
		return -1
	}
	q := lo
	for q+m <= hi {
		if matchesAt(text, q, st.pattern) {
			return q
		}
		if q+m >= hi {
			break
		}
		q += st.shift[text[q+m]]
	}
	return -1
}

func matchesAt(text []byte, at int, pattern []byte) bool {
	for i, ch := range pattern {
		if text[at+i] != ch {
			return false
		}
	}
	return true
}

// Search scans forward from the cursor (inclusive) to the sentinel for
// pattern st, moving the cursor to the match start on success. Fails with
// NotFound, leaving the cursor unmoved, if no match exists. Scans via
// ByteAt rather than a materialized copy, so a search over a
// multi-megabyte buffer allocates nothing.
func (b *Buffer) Search(st *ShiftTable) error {
	return b.searchFrom(b.g, st)
}

// RepeatSearch scans forward starting just past the cursor, so repeating a
// search that landed on a match doesn't simply refind the same occurrence.
func (b *Buffer) RepeatSearch(st *ShiftTable) error {
	return b.searchFrom(b.g+1, st)
}

func (b *Buffer) searchFrom(start int, st *ShiftTable) error {
	m := len(st.pattern)
	total := b.Len()
	q := start
	for q+m <= total {
		if b.matchesAtLogical(q, st.pattern) {
			if q == b.g {
				return nil // match starts at the cursor: no move
			}
			return b.MoveRight(q - b.g)
		}
		if q+m >= total {
			break
		}
		q += st.shift[b.ByteAt(q+m)]
	}
	return errOp("search", KindNotFound)
}

func (b *Buffer) matchesAtLogical(at int, pattern []byte) bool {
	for i, ch := range pattern {
		if b.ByteAt(at+i) != ch {
			return false
		}
	}
	return true
}
