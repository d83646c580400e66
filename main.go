package main

import (
	"fmt"
	"os"

	"spot/internal/editor"
)

func main() {
	if len(os.Args) > 1 && (os.Args[1] == "-h" || os.Args[1] == "--help") {
		usage()
		return
	}

	e, err := editor.New(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "spot: %v\n", err)
		os.Exit(1)
	}
	code := e.Run()
	e.Close()
	os.Exit(code)
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: spot [file...]")
	fmt.Fprintln(os.Stderr, "  Ctrl-X Ctrl-C  quit")
	fmt.Fprintln(os.Stderr, "  Ctrl-X Ctrl-S  save active buffer")
	fmt.Fprintln(os.Stderr, "  Ctrl-Space     set mark")
	fmt.Fprintln(os.Stderr, "  Ctrl-W / Esc-W cut / copy region")
	fmt.Fprintln(os.Stderr, "  Ctrl-S         search")
	fmt.Fprintln(os.Stderr, "  Esc /          repeat search")
}
