// Package term owns the process-wide terminal resource: raw/no-echo mode
// on entry, restoration on exit, and frame size queries.
package term

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// State is the saved terminal mode, restored on Close.
type State struct {
	state *term.State
}

// Open puts stdin into raw, no-echo mode and requests virtual-terminal
// processing on stdout where the platform needs it (see term_windows.go).
// It fails if stdin is not a TTY.
func Open() (*State, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return nil, fmt.Errorf("term: stdin is not a tty")
	}
	old, err := term.MakeRaw(int(os.Stdin.Fd()))
	if err != nil {
		return nil, fmt.Errorf("term: enable raw mode: %w", err)
	}
	if err := enableVirtualTerminal(os.Stdout); err != nil {
		// Non-fatal: older Windows consoles and every POSIX terminal don't
		// need this, and failing here would otherwise take down an
		// otherwise-working terminal.
		fmt.Fprintf(os.Stderr, "spot: warning: %v\n", err)
	}
	return &State{state: old}, nil
}

// Close restores the terminal mode saved by Open. Safe to call with a nil
// receiver or a nil state.
func (s *State) Close() error {
	if s == nil || s.state == nil {
		return nil
	}
	return term.Restore(int(os.Stdin.Fd()), s.state)
}

// Size returns the current terminal width and height, re-queried every
// frame per spec — the editor never caches this across calls.
func Size() (width, height int, err error) {
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 0, 0, fmt.Errorf("term: get size: %w", err)
	}
	return w, h, nil
}
