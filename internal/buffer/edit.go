package buffer

// InsertChar writes n copies of the given byte at the cursor, growing the
// gap first if needed. Clears the mark and sets Modified.
func (b *Buffer) InsertChar(ch byte, n int) error {
	n = normMult(n)
	if err := b.growFor(n); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		b.data[b.g] = ch
		b.g++
	}
	if ch == '\n' {
		b.Row += n
		b.Col = 0
	} else {
		b.Col += n
	}
	b.markSet = false
	b.Modified = true
	return nil
}

// InsertBytes writes p at the cursor, advancing the cursor past it. Used by
// paste, region-replace and replace-region-from-file splicing; unlike InsertChar, the
// inserted text's own newlines are counted individually.
func (b *Buffer) InsertBytes(p []byte) error {
	if err := b.growFor(len(p)); err != nil {
		return err
	}
	for _, ch := range p {
		b.data[b.g] = ch
		b.g++
		if ch == '\n' {
			b.Row++
			b.Col = 0
		} else {
			b.Col++
		}
	}
	b.markSet = false
	b.Modified = true
	return nil
}

// DeleteChar deletes n bytes to the right of the cursor. The
// cursor does not move. Fails, leaving the buffer untouched, if fewer than
// n bytes remain before the sentinel.
func (b *Buffer) DeleteChar(n int) error {
	n = normMult(n)
	if len(b.data)-1-b.c < n {
		return errOp("delete_char", KindOutOfBounds)
	}
	b.c += n
	b.markSet = false
	b.Modified = true
	return nil
}

// Backspace deletes n bytes to the left of the cursor. Fails,
// leaving the buffer untouched, if fewer than n bytes precede the cursor.
func (b *Buffer) Backspace(n int) error {
	n = normMult(n)
	if b.g < n {
		return errOp("backspace", KindOutOfBounds)
	}
	for i := 0; i < n; i++ {
		b.g--
		if b.data[b.g] == '\n' {
			b.Row--
		}
	}
	b.recomputeCol()
	b.markSet = false
	b.Modified = true
	return nil
}

// DeleteBuffer performs a soft reset: the gap swallows the whole buffer.
func (b *Buffer) DeleteBuffer() {
	b.g = 0
	b.c = len(b.data) - 1
	b.markSet = false
	b.Modified = true
	b.Row = 1
	b.Col = 0
	b.DrawStart = 0
}

var openers = map[byte]byte{'(': ')', '<': '>', '[': ']', '{': '}'}
var closers = map[byte]byte{')': '(', '>': '<', ']': '[', '}': '{'}

// MatchBrace inspects the byte at the cursor: for an opener it walks
// forward to the matching closer at nesting depth zero and lands the
// cursor there; for a closer it walks backward to the matching opener. Any
// other byte, including the sentinel, is a no-op success.
func (b *Buffer) MatchBrace() error {
	if b.c >= len(b.data)-1 {
		return nil // sentinel: no-op success
	}
	at := b.data[b.c]
	if closeCh, ok := openers[at]; ok {
		return b.matchForward(at, closeCh)
	}
	if openCh, ok := closers[at]; ok {
		return b.matchBackward(openCh, at)
	}
	return nil
}

func (b *Buffer) matchForward(open, close byte) error {
	depth := 0
	total := b.Len()
	for i := b.g; i < total; i++ {
		ch := b.ByteAt(i)
		switch ch {
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				return b.MoveRight(i - b.g)
			}
		}
	}
	return errOp("match_brace", KindNotFound)
}

func (b *Buffer) matchBackward(open, close byte) error {
	depth := 0
	for i := b.g; i >= 0; i-- {
		ch := b.ByteAt(i)
		switch ch {
		case close:
			depth++
		case open:
			depth--
			if depth == 0 {
				return b.MoveLeft(b.g - i)
			}
		}
	}
	return errOp("match_brace", KindNotFound)
}

func isGraph(ch byte) bool {
	return ch > 0x20 && ch < 0x7f
}

// TrimClean trims trailing whitespace from every line and strips bytes
// that are not ASCII graph, space, tab or newline, scanning backward from
// the sentinel. Every byte after the buffer's last '\n' is dropped as well,
// so a buffer with no '\n' is emptied. A no-op on an empty buffer.
func (b *Buffer) TrimClean() {
	if b.Len() == 0 {
		return
	}
	b.EndOfBuffer()

	// Drop every trailing byte until (and preserving) the last '\n' in the
	// buffer, so the result ends in that newline. Blank lines before it are
	// kept.
	for b.g > 0 && b.data[b.g-1] != '\n' {
		b.g--
	}

	// Walk the remaining text backward, dropping trailing spaces/tabs at
	// end-of-line and any byte that isn't graph/space/tab/newline. Kept
	// bytes are collected into a scratch slice in forward order, since a
	// backward scan fills it from the back, then copied down to
	// data[0:kept) so the content window [0, b.g) reflects the compacted
	// text rather than the stale original prefix.
	oldG := b.g
	scratch := make([]byte, oldG)
	write := oldG
	atLineEnd := true
	for read := oldG - 1; read >= 0; read-- {
		ch := b.data[read]
		keep := true
		switch {
		case ch == '\n':
			atLineEnd = true
		case (ch == ' ' || ch == '\t') && atLineEnd:
			keep = false
		case !isGraph(ch) && ch != ' ' && ch != '\t':
			keep = false
		default:
			atLineEnd = false
		}
		if keep {
			write--
			scratch[write] = ch
		}
	}
	kept := oldG - write
	copy(b.data[:kept], scratch[write:])
	b.g = kept
	b.markSet = false
	b.recomputeRowCol()
	b.Modified = true
}
