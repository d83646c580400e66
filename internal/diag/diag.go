// Package diag is the editor's optional diagnostic log: a plain
// stdlib *log.Logger* over a scratch file, reported on stderr only if
// anything was actually logged.
package diag

import (
	"fmt"
	"log"
	"os"
)

// Log wraps a temporary file used for diagnostic detail that never reaches
// the status bar.
type Log struct {
	file   *os.File
	logger *log.Logger
	wrote  bool
}

// Open creates the backing temp file. The file is removed on Close unless
// at least one record was written to it.
func Open() (*Log, error) {
	f, err := os.CreateTemp("", "spot-log-*.txt")
	if err != nil {
		return nil, err
	}
	return &Log{file: f, logger: log.New(f, "", log.LstdFlags)}, nil
}

// Printf records one diagnostic line. Safe to call on a nil *Log.
func (l *Log) Printf(format string, args ...any) {
	if l == nil {
		return
	}
	l.logger.Printf(format, args...)
	l.wrote = true
}

// Close closes the backing file, removing it if nothing was logged, and
// otherwise reporting its path on stderr.
func (l *Log) Close() error {
	if l == nil {
		return nil
	}
	path := l.file.Name()
	err := l.file.Close()
	if !l.wrote {
		os.Remove(path)
		return err
	}
	fmt.Fprintf(os.Stderr, "spot: diagnostic log written to %s\n", path)
	return err
}
