package buffer

// growFor ensures the gap can hold at least reserve more bytes,
// reallocating if necessary. The mark, stored as a logical content offset,
// needs no adjustment: growth changes the array's size, never any byte's
// logical position.
func (b *Buffer) growFor(reserve int) error {
	if reserve <= b.c-b.g {
		return nil
	}
	oldSize := len(b.data)
	grow := oldSize
	if reserve+GAP > grow {
		grow = reserve + GAP
	}
	if addOverflows(oldSize, grow) {
		return errOp("grow", KindOverflow)
	}
	newSize := oldSize + grow
	delta := newSize - oldSize
	newData := make([]byte, newSize)
	copy(newData[:b.g], b.data[:b.g])
	copy(newData[b.c+delta:], b.data[b.c:])

	b.data = newData
	b.c += delta
	return nil
}
