package screen

import "spot/internal/buffer"

// TabSize is the number of columns a '\t' expands to in the text area.
const TabSize = 8

const hexDigits = "0123456789ABCDEF"

// Painter paints bytes into a rectangular sub-region of a grid, wrapping at
// the region's width and refusing to write past its height.
type Painter struct {
	grid       *Grid
	x0, y0     int
	w, h       int
	x, y       int
	Overflowed bool
}

// NewPainter returns a painter bounded to the w*h rectangle whose top-left
// corner is (x0, y0) in grid coordinates.
func NewPainter(grid *Grid, x0, y0, w, h int) *Painter {
	return &Painter{grid: grid, x0: x0, y0: y0, w: w, h: h}
}

// Cursor returns the painter's current position in grid coordinates.
func (p *Painter) Cursor() (x, y int) {
	return p.x0 + p.x, p.y0 + p.y
}

// AtEnd reports whether the painter has filled its whole region.
func (p *Painter) AtEnd() bool {
	return p.y >= p.h
}

func (p *Painter) put(ch Cell) {
	if p.y >= p.h {
		p.Overflowed = true
		return
	}
	p.grid.Set(p.x0+p.x, p.y0+p.y, ch)
	p.x++
	if p.x >= p.w {
		p.x = 0
		p.y++
	}
}

// PaintByte converts one source byte to cells (printable ASCII passes
// through; '\n' pads to the next row; '\t' expands to TabSize spaces; NUL
// becomes "\0"; other control bytes 1-26 become "^" plus the offset letter;
// everything else becomes two uppercase hex digits). Returns false once
// the region is full and no further bytes should be painted.
func (p *Painter) PaintByte(ch byte) bool {
	if p.AtEnd() {
		return false
	}
	switch {
	case ch == '\n':
		pad := p.w - p.x
		for i := 0; i < pad; i++ {
			if p.AtEnd() {
				return false
			}
			p.put(' ')
		}
	case ch == '\t':
		for i := 0; i < TabSize; i++ {
			if p.AtEnd() {
				return false
			}
			p.put(' ')
		}
	case ch == 0:
		p.put('\\')
		if p.AtEnd() {
			return false
		}
		p.put('0')
	case ch >= 1 && ch <= 26:
		p.put('^')
		if p.AtEnd() {
			return false
		}
		p.put(Cell('@' + ch))
	case ch >= 0x20 && ch < 0x7f:
		p.put(Cell(ch))
	default:
		p.put(Cell(hexDigits[ch>>4]))
		if p.AtEnd() {
			return false
		}
		p.put(Cell(hexDigits[ch&0xf]))
	}
	return !p.AtEnd()
}

// Composer renders a buffer and a command line into a grid pair's next
// frame: a text area, a status bar, and a command-line row.
type Composer struct {
	LastFailure bool
	CmdActive   bool
}

// Compose clears pair (the grid pair's Next grid) and paints one full frame
// into it, returning the physical
// cursor coordinates the terminal should be positioned at afterward.
func (c *Composer) Compose(pair *Grid, b *buffer.Buffer, cmdline *buffer.Buffer) (cx, cy int) {
	w, h := pair.Width, pair.Height
	th := h - 2
	if th < 1 {
		th = 1
	}
	pair.Clear()

	textCX, textCY := c.paintText(pair, b, w, th)
	c.paintStatus(pair, b, w, th)
	cmdCX, cmdCY := c.paintCmdline(pair, cmdline, w, th+1)

	if c.CmdActive {
		return cmdCX, cmdCY
	}
	return textCX, textCY
}

func (c *Composer) paintText(grid *Grid, b *buffer.Buffer, w, th int) (cx, cy int) {
	p := NewPainter(grid, 0, 0, w, th)
	total := b.Len()
	point := b.Point()
	cx, cy = p.Cursor()
	for i := b.DrawStart; i < total; i++ {
		if i == point {
			cx, cy = p.Cursor()
		}
		if !p.PaintByte(b.ByteAt(i)) {
			break
		}
	}
	if point >= total {
		cx, cy = p.Cursor()
	}
	return cx, cy
}

func (c *Composer) paintStatus(grid *Grid, b *buffer.Buffer, w, row int) {
	bang := byte(' ')
	if c.LastFailure {
		bang = '!'
	}
	star := byte(' ')
	if b.Modified {
		star = '*'
	}
	_, markSet := b.Mark()
	mch := byte(' ')
	if markSet {
		mch = 'm'
	}
	name := b.Filename
	if !b.HasFilename {
		name = "(no name)"
	}
	status := formatStatus(bang, star, name, b.Row, b.Col, mch)
	for x := 0; x < w; x++ {
		ch := byte(' ')
		if x < len(status) {
			ch = status[x]
		}
		grid.Set(x, row, Cell(ch))
	}
}

func formatStatus(bang, star byte, name string, row, col int, mark byte) string {
	buf := make([]byte, 0, len(name)+24)
	buf = append(buf, bang, ' ', star, ' ')
	buf = append(buf, name...)
	buf = append(buf, " ("...)
	buf = appendInt(buf, row)
	buf = append(buf, ", "...)
	buf = appendInt(buf, col)
	buf = append(buf, ')', mark)
	return string(buf)
}

func appendInt(buf []byte, v int) []byte {
	if v == 0 {
		return append(buf, '0')
	}
	neg := v < 0
	if neg {
		v = -v
	}
	start := len(buf)
	for v > 0 {
		buf = append(buf, byte('0'+v%10))
		v /= 10
	}
	if neg {
		buf = append(buf, '-')
	}
	// reverse the digits just appended
	end := len(buf) - 1
	for i, j := start, end; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return buf
}

func (c *Composer) paintCmdline(grid *Grid, cmdline *buffer.Buffer, w, row int) (cx, cy int) {
	p := NewPainter(grid, 0, row, w, 1)
	if cmdline == nil {
		return p.Cursor()
	}
	total := cmdline.Len()
	point := cmdline.Point()
	cx, cy = p.Cursor()
	for i := 0; i < total; i++ {
		if i == point {
			cx, cy = p.Cursor()
		}
		if !p.PaintByte(cmdline.ByteAt(i)) {
			break
		}
	}
	if point >= total {
		cx, cy = p.Cursor()
	}
	return cx, cy
}
