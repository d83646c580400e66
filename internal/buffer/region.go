package buffer

import "bytes"

// region returns the canonical [lo, hi) logical bounds of the mark/cursor
// region. Fails with NoRegion if no mark is set.
func (b *Buffer) region() (lo, hi int, err error) {
	if !b.markSet {
		return 0, 0, errOp("region", KindNoRegion)
	}
	m := b.markIndex
	cursor := b.g
	if m <= cursor {
		return m, cursor, nil
	}
	return cursor, m, nil
}

// regionBytes copies the logical bytes in [lo, hi).
func (b *Buffer) regionBytes(lo, hi int) []byte {
	out := make([]byte, hi-lo)
	for i := lo; i < hi; i++ {
		out[i-lo] = b.ByteAt(i)
	}
	return out
}

// CopyRegion returns a copy of the marked region's bytes without modifying
// the buffer. Fails with NoRegion if no mark is set.
func (b *Buffer) CopyRegion() ([]byte, error) {
	lo, hi, err := b.region()
	if err != nil {
		return nil, err
	}
	return b.regionBytes(lo, hi), nil
}

// CutRegion copies the marked region, deletes it, and leaves the cursor at
// the region's start. Fails with NoRegion if no mark is set.
func (b *Buffer) CutRegion() ([]byte, error) {
	lo, hi, err := b.region()
	if err != nil {
		return nil, err
	}
	out := b.regionBytes(lo, hi)
	if hi == lo {
		return out, nil
	}
	if err := b.moveToLogical(lo); err != nil {
		return nil, err
	}
	if err := b.DeleteChar(hi - lo); err != nil {
		return nil, err
	}
	return out, nil
}

// moveToLogical moves the cursor to logical offset target, in whichever
// direction is shorter.
func (b *Buffer) moveToLogical(target int) error {
	if target < b.g {
		return b.MoveLeft(b.g - target)
	}
	if target > b.g {
		return b.MoveRight(target - b.g)
	}
	return nil
}

// Paste inserts payload at the cursor n times.
func (b *Buffer) Paste(payload []byte, n int) error {
	n = normMult(n)
	if len(payload) == 0 {
		return nil
	}
	total := len(payload) * n
	if mulOverflows(len(payload), n) {
		return errOp("paste", KindOverflow)
	}
	if err := b.growFor(total); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		if err := b.InsertBytes(payload); err != nil {
			return err
		}
	}
	return nil
}

// CutToEndOfLine deletes from the cursor to just before the line's '\n' (or
// the sentinel). CutToStartOfLine deletes from the line start to the
// cursor; the dispatch loop picks between the two based on whether a zero
// multiplier was given.
func (b *Buffer) CutToEndOfLine() ([]byte, error) {
	start := b.g
	total := b.Len()
	end := start
	for end < total && b.ByteAt(end) != '\n' {
		end++
	}
	out := b.regionBytes(start, end)
	if end == start {
		return out, nil
	}
	if err := b.DeleteChar(end - start); err != nil {
		return nil, err
	}
	return out, nil
}

func (b *Buffer) CutToStartOfLine() ([]byte, error) {
	end := b.g
	start := end
	for start > 0 && b.ByteAt(start-1) != '\n' {
		start--
	}
	out := b.regionBytes(start, end)
	if end == start {
		return out, nil
	}
	if err := b.moveToLogical(start); err != nil {
		return nil, err
	}
	if err := b.DeleteChar(end - start); err != nil {
		return nil, err
	}
	return out, nil
}

// ReplaceRegion implements find-and-replace within [mark, cursor) (spec
// §4.4). req is the raw command-line payload `/find/replace/`, where the
// first byte is the field separator and the closing separator after
// replace is optional. Fails with Malformed if there's no
// separator after find or find is empty, with NoRegion if no mark is set.
// Either all matches are substituted, or none are and the buffer is left
// untouched — achieved by counting and reserving space before mutating.
func (b *Buffer) ReplaceRegion(req []byte) (count int, err error) {
	find, replace, err := parseFindReplace(req)
	if err != nil {
		return 0, err
	}
	lo, hi, err := b.region()
	if err != nil {
		return 0, err
	}
	if lo == hi {
		return 0, nil // empty region: success no-op
	}

	st, err := NewShiftTable(find)
	if err != nil {
		return 0, err
	}

	count = b.countMatches(lo, hi, st)
	if count == 0 {
		return 0, nil
	}

	growth := len(replace) - len(find)
	if growth > 0 {
		if mulOverflows(count, growth) {
			return 0, errOp("replace_region", KindOverflow)
		}
		if err := b.growFor(count * growth); err != nil {
			return 0, err
		}
	}

	newlinesIn := func(p []byte) int {
		n := 0
		for _, c := range p {
			if c == '\n' {
				n++
			}
		}
		return n
	}
	deltaNL := count * (newlinesIn(replace) - newlinesIn(find))

	if err := b.moveToLogical(lo); err != nil {
		return 0, err
	}
	end := hi
	m := len(find)
	for i := 0; i < count; i++ {
		at := b.findLogical(b.g, end, st)
		if at < 0 {
			break // defensive; countMatches guarantees this doesn't happen
		}
		if err := b.moveToLogical(at); err != nil {
			return 0, err
		}
		if err := b.DeleteChar(m); err != nil {
			return 0, err
		}
		if err := b.InsertBytes(replace); err != nil {
			return 0, err
		}
		end += len(replace) - m
	}

	b.Row += deltaNL
	b.recomputeCol()
	return count, nil
}

// countMatches counts non-overlapping Quick-Search matches in [lo, hi)
// without mutating the buffer, advancing past each match by the pattern
// length (a single forward pass, no overlap).
func (b *Buffer) countMatches(lo, hi int, st *ShiftTable) int {
	m := len(st.pattern)
	count := 0
	pos := lo
	for {
		at := b.findLogical(pos, hi, st)
		if at < 0 {
			return count
		}
		count++
		pos = at + m
	}
}

// findLogical is Find expressed over logical buffer offsets via
// ByteAt, so it works uniformly whether lo/hi straddle the gap or not.
func (b *Buffer) findLogical(lo, hi int, st *ShiftTable) int {
	m := len(st.pattern)
	if m == 1 {
		for i := lo; i < hi; i++ {
			if b.ByteAt(i) == st.pattern[0] {
				return i
			}
		}
		return -1
	}
	q := lo
	for q+m <= hi {
		if b.matchesAtLogical(q, st.pattern) {
			return q
		}
		if q+m >= hi {
			break
		}
		q += st.shift[b.ByteAt(q+m)]
	}
	return -1
}

func parseFindReplace(req []byte) (find, replace []byte, err error) {
	if len(req) == 0 {
		return nil, nil, errOp("replace_region", KindMalformed)
	}
	sep := req[0]
	rest := req[1:]
	idx := bytes.IndexByte(rest, sep)
	if idx < 0 {
		return nil, nil, errOp("replace_region", KindMalformed)
	}
	find = rest[:idx]
	replace = rest[idx+1:]
	if n := len(replace); n > 0 && replace[n-1] == sep {
		replace = replace[:n-1]
	}
	if len(find) == 0 {
		return nil, nil, errOp("replace_region", KindMalformed)
	}
	return find, replace, nil
}
