package screen

import (
	"bufio"
	"io"
	"strconv"
)

// Renderer owns the grid pair and the buffered writer that emits the
// minimal-diff ANSI stream to the terminal.
type Renderer struct {
	out    *bufio.Writer
	Pair   *Pair
	posBuf []byte
}

// NewRenderer wraps w in a large buffered writer and allocates a grid pair
// sized width x height.
func NewRenderer(w io.Writer, width, height int) *Renderer {
	return &Renderer{
		out:    bufio.NewWriterSize(w, 64*1024),
		Pair:   NewPair(width, height),
		posBuf: make([]byte, 0, 32),
	}
}

// Resize grows or shrinks the grid pair and blanks Current, so the next
// Paint re-emits every cell.
func (r *Renderer) Resize(width, height int) {
	r.Pair.Resize(width, height)
}

// Paint diffs Next against Current, writing only the cells that changed,
// then positions the physical cursor at (cx, cy) (0-based) and flushes.
func (r *Renderer) Paint(cx, cy int) error {
	w := r.Pair.Next.Width
	h := r.Pair.Next.Height
	next := r.Pair.Next.Cells
	cur := r.Pair.Current.Cells

	curX, curY := -1, -1
	for y := 0; y < h; y++ {
		rowOff := y * w
		for x := 0; x < w; x++ {
			idx := rowOff + x
			if next[idx] == cur[idx] {
				continue
			}
			if curX != x || curY != y {
				r.writeCursorPos(y+1, x+1)
				curX, curY = x, y
			}
			r.out.WriteByte(byte(next[idx]))
			curX++
			cur[idx] = next[idx]
		}
	}
	r.writeCursorPos(cy+1, cx+1)
	return r.out.Flush()
}

// HardClear blanks Current so the next Paint call re-emits every cell, and
// issues a physical clear-screen escape. Used on resize or explicit redraw.
func (r *Renderer) HardClear() error {
	r.Pair.Current.Clear()
	r.out.WriteString("\x1b[2J")
	return r.out.Flush()
}

func (r *Renderer) writeCursorPos(row, col int) {
	r.posBuf = r.posBuf[:0]
	r.posBuf = append(r.posBuf, '\x1b', '[')
	r.posBuf = strconv.AppendInt(r.posBuf, int64(row), 10)
	r.posBuf = append(r.posBuf, ';')
	r.posBuf = strconv.AppendInt(r.posBuf, int64(col), 10)
	r.posBuf = append(r.posBuf, 'H')
	r.out.Write(r.posBuf)
}
