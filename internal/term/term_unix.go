//go:build !windows

package term

import "os"

// enableVirtualTerminal is a no-op outside Windows: every POSIX terminal
// this editor targets already understands the ANSI escapes it emits.
func enableVirtualTerminal(f *os.File) error {
	return nil
}
