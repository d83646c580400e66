package buffer

// Set is an ordered collection of buffers with an active index. It grows
// on demand and never shrinks within a session.
type Set struct {
	buffers []*Buffer
	active  int
}

// NewSet returns a set containing a single empty unnamed buffer.
func NewSet() *Set {
	return &Set{buffers: []*Buffer{New()}}
}

// Active returns the currently active buffer.
func (s *Set) Active() *Buffer {
	return s.buffers[s.active]
}

// Len reports the number of buffers in the set.
func (s *Set) Len() int {
	return len(s.buffers)
}

// At returns the buffer at index i.
func (s *Set) At(i int) *Buffer {
	return s.buffers[i]
}

// ActiveIndex returns the active buffer's index.
func (s *Set) ActiveIndex() int {
	return s.active
}

// Add appends a new buffer and makes it active, returning its index.
func (s *Set) Add(b *Buffer) int {
	s.buffers = append(s.buffers, b)
	s.active = len(s.buffers) - 1
	return s.active
}

// Next makes the next buffer (wrapping) active.
func (s *Set) Next() {
	s.active = (s.active + 1) % len(s.buffers)
}

// Prev makes the previous buffer (wrapping) active.
func (s *Set) Prev() {
	s.active = (s.active - 1 + len(s.buffers)) % len(s.buffers)
}

// NewSetFromPaths builds a set with one buffer per path, in order, the
// first one active. With no paths it behaves like NewSet.
func NewSetFromPaths(paths []string) *Set {
	if len(paths) == 0 {
		return NewSet()
	}
	bufs := make([]*Buffer, len(paths))
	for i, p := range paths {
		bufs[i] = Open(p)
	}
	return &Set{buffers: bufs, active: 0}
}

// Open opens path as a new buffer: if it exists and is a regular file, its
// content is read in; otherwise an empty buffer is created carrying that
// filename. Open does not add the buffer to any set.
func Open(path string) *Buffer {
	b := New()
	b.Filename = path
	b.HasFilename = true
	if err := b.InsertFile(path); err == nil {
		b.StartOfBuffer()
		b.Modified = false
	}
	return b
}
