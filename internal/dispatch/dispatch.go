// Package dispatch implements the command-dispatch state machine that
// binds the gap buffer and the screen renderer together: a numeric
// multiplier prefix, a root key table, Ctrl-X and ESC prefixes, hex-byte
// insertion, and the command-line mini-buffer mode.
package dispatch

import (
	"spot/internal/buffer"
	"spot/internal/diag"
	"spot/internal/keys"
	"spot/internal/sedproc"
)

type state int

const (
	stRoot state = iota
	stMultiplier
	stCtrlX
	stEsc
	stHexDigit1
	stHexDigit2
	stCommandLine
)

type cmdOp int

const (
	opNone cmdOp = iota
	opSearch
	opRename
	opInsertFile
	opNewBuffer
	opRegexRegion
)

// Dispatch owns the prefix/multiplier/command-line state machine and the
// registers shared across buffers.
type Dispatch struct {
	Set *buffer.Set

	SearchReg buffer.Register
	PasteReg  buffer.Register

	Sub *sedproc.Substitutor
	Log *diag.Log

	Cmdline *buffer.Buffer

	// LastFailure surfaces as the status bar's "!" for the frame just
	// composed; WantCentre and WantHardRedraw are one-shot requests the
	// render loop consumes and clears.
	LastFailure    bool
	WantCentre     bool
	WantHardRedraw bool
	Quit           bool
	ExitCode       int

	state       state
	mult        int
	multSet     bool
	pendingMult int
	hexDigit1   byte
	op          cmdOp

	searchTable *buffer.ShiftTable

	lastRegexInputPath string
	lastRegexOK        bool
}

// New returns a dispatcher over set, using sub for regex-region
// substitution and log for diagnostics (log may be nil).
func New(set *buffer.Set, sub *sedproc.Substitutor, log *diag.Log) *Dispatch {
	return &Dispatch{
		Set:     set,
		Sub:     sub,
		Log:     log,
		Cmdline: buffer.New(),
		state:   stRoot,
	}
}

// CommandLineActive reports whether the command line is the key target.
func (d *Dispatch) CommandLineActive() bool {
	return d.state == stCommandLine
}

// HandleKey routes one logical key event through the current state.
func (d *Dispatch) HandleKey(ev keys.KeyEvent) {
	d.LastFailure = false
	switch d.state {
	case stMultiplier:
		d.continueMultiplier(ev)
	case stCtrlX:
		d.state = stRoot
		d.dispatchCtrlX(ev)
	case stEsc:
		d.state = stRoot
		d.dispatchEsc(ev)
	case stHexDigit1:
		d.continueHexDigit1(ev)
	case stHexDigit2:
		d.continueHexDigit2(ev)
	case stCommandLine:
		d.handleCommandLineKey(ev)
	default:
		d.dispatchRoot(ev, 1)
	}
}

func (d *Dispatch) fail(err error) bool {
	if err != nil {
		d.LastFailure = true
		if d.Log != nil {
			d.Log.Printf("%v", err)
		}
		return false
	}
	return true
}

func (d *Dispatch) continueMultiplier(ev keys.KeyEvent) {
	if ev.Key == keys.Char && !ev.Ctrl && ev.Byte >= '0' && ev.Byte <= '9' {
		digit := int(ev.Byte - '0')
		next := d.mult*10 + digit
		if next < d.mult { // crude overflow guard
			d.LastFailure = true
			return
		}
		d.mult = next
		d.multSet = true
		return
	}
	mult := 1
	if d.multSet {
		mult = d.mult
	}
	d.state = stRoot
	d.mult = 0
	d.multSet = false
	d.dispatchRoot(ev, mult)
}

func (d *Dispatch) dispatchRoot(ev keys.KeyEvent, mult int) {
	if isCtrl(ev, 'u') {
		d.state = stMultiplier
		d.mult = 0
		d.multSet = false
		return
	}
	if isCtrl(ev, 'x') {
		d.state = stCtrlX
		d.pendingMult = mult
		return
	}
	if ev.Key == keys.Esc {
		// Bare ESC with nothing following inside the terminal's escape
		// timeout: wait for the suffix key on its own Next() call.
		d.state = stEsc
		d.pendingMult = mult
		return
	}
	if ev.EscPrefixed {
		// The suffix arrived bundled with ESC in a single read; route it
		// through the same table without a state transition.
		d.pendingMult = mult
		d.dispatchEsc(ev)
		return
	}

	b := d.Set.Active()
	switch {
	case ev.Key == keys.ArrowLeft || isCtrl(ev, 'b'):
		d.fail(b.MoveLeft(mult))
	case ev.Key == keys.ArrowRight || isCtrl(ev, 'f'):
		d.fail(b.MoveRight(mult))
	case ev.Key == keys.ArrowUp || isCtrl(ev, 'p'):
		d.fail(b.UpLine(mult))
	case ev.Key == keys.ArrowDown || isCtrl(ev, 'n'):
		d.fail(b.DownLine(mult))
	case ev.Key == keys.Home || isCtrl(ev, 'a'):
		d.fail(b.StartOfLine())
	case ev.Key == keys.End || isCtrl(ev, 'e'):
		d.fail(b.EndOfLine())
	case ev.Key == keys.Delete || isCtrl(ev, 'd'):
		d.fail(b.DeleteChar(mult))
	case ev.Key == keys.Backspace || isCtrl(ev, 'h'):
		d.fail(b.Backspace(mult))
	case isCtrlSpace(ev):
		b.SetMark()
	case isCtrl(ev, 'w'):
		if cut, err := b.CutRegion(); d.fail(err) {
			d.PasteReg.Set(cut)
		}
	case isCtrl(ev, 'y'):
		d.fail(b.Paste(d.PasteReg.Bytes(), mult))
	case isCtrl(ev, 'k'):
		var cut []byte
		var err error
		if mult == 0 {
			cut, err = b.CutToStartOfLine()
		} else {
			cut, err = b.CutToEndOfLine()
		}
		if d.fail(err) {
			d.PasteReg.Set(cut)
		}
	case isCtrl(ev, 'l'):
		d.WantCentre = true
	case isCtrl(ev, 's'):
		d.enterCommandLine(opSearch)
	case isCtrl(ev, 'g'):
		b.UnsetMark()
	case isCtrl(ev, 't'):
		b.TrimClean()
	case isCtrl(ev, 'q'):
		d.pendingMult = mult
		d.state = stHexDigit1
	case ev.Key == keys.Enter:
		d.fail(b.InsertChar('\n', mult))
	case ev.Key == keys.Char && !ev.Ctrl:
		d.fail(b.InsertChar(ev.Byte, mult))
	default:
		// Unrecognised control code: ignored, not a failure.
	}
}

func (d *Dispatch) dispatchCtrlX(ev keys.KeyEvent) {
	b := d.Set.Active()
	switch {
	case isCtrl(ev, 's'):
		d.fail(b.WriteBuffer(b.Filename, true))
	case isCtrl(ev, 'w'):
		d.enterCommandLine(opRename)
	case ev.Key == keys.Char && !ev.Ctrl && ev.Byte == 'i':
		d.enterCommandLine(opInsertFile)
	case isCtrl(ev, 'f'):
		d.enterCommandLine(opNewBuffer)
	case isCtrl(ev, 'c'):
		d.Quit = true
	case ev.Key == keys.ArrowLeft:
		d.Set.Prev()
	case ev.Key == keys.ArrowRight:
		d.Set.Next()
	default:
		d.LastFailure = true
	}
}

func (d *Dispatch) dispatchEsc(ev keys.KeyEvent) {
	b := d.Set.Active()
	if ev.Key != keys.Char {
		d.LastFailure = true
		return
	}
	switch ev.Byte {
	case '<':
		b.StartOfBuffer()
	case '>':
		b.EndOfBuffer()
	case '/':
		if d.searchTable == nil {
			d.LastFailure = true
			return
		}
		d.fail(b.RepeatSearch(d.searchTable))
	case 'w':
		if region, err := b.CopyRegion(); d.fail(err) {
			d.PasteReg.Set(region)
		}
	case '=':
		d.fail(b.MatchBrace())
	case '-':
		d.WantHardRedraw = true
	case 'x':
		d.enterCommandLine(opRegexRegion)
	case 'X':
		d.undoRegexRegion()
	default:
		d.LastFailure = true
	}
}

func (d *Dispatch) continueHexDigit1(ev keys.KeyEvent) {
	v, ok := hexVal(ev)
	if !ok {
		d.state = stRoot
		d.LastFailure = true
		return
	}
	d.hexDigit1 = v
	d.state = stHexDigit2
}

func (d *Dispatch) continueHexDigit2(ev keys.KeyEvent) {
	d.state = stRoot
	v, ok := hexVal(ev)
	if !ok {
		d.LastFailure = true
		return
	}
	byteVal := d.hexDigit1<<4 | v
	b := d.Set.Active()
	d.fail(b.InsertChar(byteVal, d.pendingMult))
}
