//go:build windows

package term

import (
	"os"

	"golang.org/x/sys/windows"
)

// enableVirtualTerminal requests ENABLE_VIRTUAL_TERMINAL_PROCESSING on the
// output handle so ANSI escapes (§6: clear-screen, cursor-position) render
// on consoles that don't default to it (cmd.exe, older conhost).
func enableVirtualTerminal(f *os.File) error {
	h := windows.Handle(f.Fd())
	var mode uint32
	if err := windows.GetConsoleMode(h, &mode); err != nil {
		return err
	}
	mode |= windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING
	return windows.SetConsoleMode(h, mode)
}
