// Package editor is the top-level run loop: it owns the terminal, the
// buffer set, the renderer, and the dispatcher, and drives the
// single-threaded read-dispatch-render cycle.
package editor

import (
	"fmt"
	"os"

	"spot/internal/buffer"
	"spot/internal/diag"
	"spot/internal/dispatch"
	"spot/internal/keys"
	"spot/internal/screen"
	"spot/internal/sedproc"
	"spot/internal/term"
)

// Editor ties the buffer set, renderer, key reader, and dispatcher
// together into the blocking edit loop: read one key, apply it,
// repaint, repeat. No goroutines or channels anywhere in the cycle.
type Editor struct {
	set      *buffer.Set
	dispatch *dispatch.Dispatch
	renderer *screen.Renderer
	reader   *keys.Reader
	composer *screen.Composer
	termst   *term.State
	log      *diag.Log

	width, height int
}

// New opens the terminal in raw mode and builds an Editor over one buffer
// per path in paths.
func New(paths []string) (*Editor, error) {
	ts, err := term.Open()
	if err != nil {
		return nil, err
	}

	w, h, err := term.Size()
	if err != nil {
		ts.Close()
		return nil, err
	}

	set := buffer.NewSetFromPaths(paths)

	sub := sedproc.New(sedSubstitutorName())
	logger, err := diag.Open()
	if err != nil {
		logger = nil
	}

	e := &Editor{
		set:      set,
		dispatch: dispatch.New(set, sub, logger),
		renderer: screen.NewRenderer(os.Stdout, w, h),
		reader:   keys.NewReader(os.Stdin),
		composer: &screen.Composer{},
		termst:   ts,
		log:      logger,
		width:    w,
		height:   h,
	}
	return e, nil
}

func sedSubstitutorName() string {
	if v := os.Getenv("SPOT_SED"); v != "" {
		return v
	}
	return "sed"
}

// Close restores the terminal and closes the diagnostic log.
func (e *Editor) Close() error {
	err := e.termst.Close()
	e.log.Close()
	return err
}

// Run drives the edit loop until the user quits or stdin closes, and
// returns the process exit code.
func (e *Editor) Run() int {
	if err := e.renderer.HardClear(); err != nil {
		fmt.Fprintf(os.Stderr, "spot: %v\n", err)
		return 1
	}
	if err := e.repaint(); err != nil {
		fmt.Fprintf(os.Stderr, "spot: %v\n", err)
		return 1
	}

	for {
		ev, err := e.reader.Next()
		if err != nil {
			if err == keys.ErrEOF {
				return 0
			}
			fmt.Fprintf(os.Stderr, "spot: %v\n", err)
			return 1
		}

		e.dispatch.HandleKey(ev)
		if e.dispatch.Quit {
			return 0
		}

		if err := e.maybeResize(); err != nil {
			fmt.Fprintf(os.Stderr, "spot: %v\n", err)
			return 1
		}
		if e.dispatch.WantHardRedraw {
			e.dispatch.WantHardRedraw = false
			if err := e.renderer.HardClear(); err != nil {
				fmt.Fprintf(os.Stderr, "spot: %v\n", err)
				return 1
			}
		}
		if err := e.repaint(); err != nil {
			fmt.Fprintf(os.Stderr, "spot: %v\n", err)
			return 1
		}
	}
}

func (e *Editor) maybeResize() error {
	w, h, err := term.Size()
	if err != nil {
		return err
	}
	if w != e.width || h != e.height {
		e.width, e.height = w, h
		e.renderer.Resize(w, h)
	}
	return nil
}

func (e *Editor) repaint() error {
	b := e.set.Active()
	th := e.height - 2
	centre := e.dispatch.WantCentre
	e.dispatch.WantCentre = false
	b.DrawStart = screen.ResolveViewport(b, th, e.width, centre)

	e.composer.LastFailure = e.dispatch.LastFailure
	e.composer.CmdActive = e.dispatch.CommandLineActive()

	cx, cy := e.composer.Compose(e.renderer.Pair.Next, b, e.dispatch.Cmdline)
	return e.renderer.Paint(cx, cy)
}
