package buffer

// recomputeRowCol derives Row/Col from scratch by scanning the left region.
// Used by TrimClean, which rewrites the left region wholesale, where
// incremental tracking would be more error-prone than just recomputing.
func (b *Buffer) recomputeRowCol() {
	row := 1
	lineStart := 0
	for i := 0; i < b.g; i++ {
		if b.data[i] == '\n' {
			row++
			lineStart = i + 1
		}
	}
	b.Row = row
	b.Col = b.g - lineStart
}

// MoveLeft shifts the cursor n bytes left. Fails without
// mutating state if fewer than n bytes precede the cursor.
//
// The mark, if set, needs no adjustment here: it is stored as a logical
// content offset, and moving the cursor
// changes which physical slots hold the gap, never what logical position
// any byte occupies.
func (b *Buffer) MoveLeft(n int) error {
	n = normMult(n)
	if b.g < n {
		return errOp("move_left", KindOutOfBounds)
	}
	for i := 0; i < n; i++ {
		b.g--
		b.c--
		moved := b.data[b.g]
		b.data[b.c] = moved
		if moved == '\n' {
			b.Row--
		}
	}
	b.recomputeCol()
	return nil
}

// MoveRight shifts the cursor n bytes right. Fails without
// mutating state if fewer than n bytes follow the cursor (sentinel
// excluded).
func (b *Buffer) MoveRight(n int) error {
	n = normMult(n)
	if len(b.data)-1-b.c < n {
		return errOp("move_right", KindOutOfBounds)
	}
	crossedNL := false
	for i := 0; i < n; i++ {
		moved := b.data[b.c]
		b.data[b.g] = moved
		b.g++
		b.c++
		if moved == '\n' {
			b.Row++
			crossedNL = true
		}
	}
	if crossedNL {
		b.recomputeCol()
	} else {
		b.Col += n
	}
	return nil
}

// recomputeCol walks back from g to the nearest '\n' or buffer start.
func (b *Buffer) recomputeCol() {
	col := 0
	for i := b.g - 1; i >= 0; i-- {
		if b.data[i] == '\n' {
			break
		}
		col++
	}
	b.Col = col
}

// StartOfLine moves left until the byte just left of the gap is '\n' or the
// buffer start.
func (b *Buffer) StartOfLine() error {
	for b.g > 0 && b.data[b.g-1] != '\n' {
		if err := b.MoveLeft(1); err != nil {
			return err
		}
	}
	return nil
}

// EndOfLine moves right until the byte at c is '\n' or the sentinel.
func (b *Buffer) EndOfLine() error {
	for b.c < len(b.data)-1 && b.data[b.c] != '\n' {
		if err := b.MoveRight(1); err != nil {
			return err
		}
	}
	return nil
}

// StartOfBuffer jumps the cursor to offset 0.
func (b *Buffer) StartOfBuffer() {
	for b.g > 0 {
		b.g--
		b.c--
		b.data[b.c] = b.data[b.g]
	}
	b.Row = 1
	b.Col = 0
}

// EndOfBuffer jumps the cursor to just before the sentinel.
func (b *Buffer) EndOfBuffer() {
	for b.c < len(b.data)-1 {
		moved := b.data[b.c]
		b.data[b.g] = moved
		b.g++
		b.c++
		if moved == '\n' {
			b.Row++
		}
	}
	b.recomputeCol()
}

// lineLengthAfter returns the byte length of the logical line starting at
// logical offset logicalStart, not including its terminating '\n' (or end of
// buffer).
func (b *Buffer) lineLengthAfter(logicalStart int) int {
	n := 0
	total := b.Len()
	for i := logicalStart; i < total && b.ByteAt(i) != '\n'; i++ {
		n++
	}
	return n
}

// UpLine moves the cursor up n lines, preserving column where the target
// line is long enough. Fails without moving if the buffer has
// fewer than n line breaks above the cursor.
func (b *Buffer) UpLine(n int) error {
	n = normMult(n)
	wantCol := b.Col
	// Count newlines available above the cursor.
	avail := 0
	for i := b.g - 1; i >= 0; i-- {
		if b.data[i] == '\n' {
			avail++
		}
	}
	if avail < n {
		return errOp("up_line", KindOutOfBounds)
	}
	for i := 0; i < n; i++ {
		if err := b.StartOfLine(); err != nil {
			return err
		}
		if err := b.MoveLeft(1); err != nil { // cross the '\n' onto the previous line
			return err
		}
		if err := b.StartOfLine(); err != nil {
			return err
		}
	}
	newLineLen := b.lineLengthAfter(b.g)
	target := wantCol
	if target > newLineLen {
		target = newLineLen
	}
	if target == 0 {
		return nil
	}
	return b.MoveRight(target)
}

// DownLine moves the cursor down n lines, preserving column where possible.
func (b *Buffer) DownLine(n int) error {
	n = normMult(n)
	wantCol := b.Col
	avail := 0
	for i := b.c; i < len(b.data)-1; i++ {
		if b.data[i] == '\n' {
			avail++
		}
	}
	if avail < n {
		return errOp("down_line", KindOutOfBounds)
	}
	for i := 0; i < n; i++ {
		if err := b.EndOfLine(); err != nil {
			return err
		}
		if err := b.MoveRight(1); err != nil { // cross the '\n' onto the next line
			return err
		}
	}
	newLineLen := b.lineLengthAfter(b.g)
	target := wantCol
	if target > newLineLen {
		target = newLineLen
	}
	if target == 0 {
		return nil
	}
	return b.MoveRight(target)
}
