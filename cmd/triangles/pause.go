package main

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// waitForKey blocks until a single key is pressed so a diagnostic stays readable when the
// program was started from a window that closes on exit. It returns at once when in is
// not a terminal.
func waitForKey(in *os.File, out io.Writer) {
	fd := int(in.Fd())
	if !term.IsTerminal(fd) {
		return
	}
	fmt.Fprint(out, "Press any key to exit...")
	defer fmt.Fprintln(out)

	state, err := term.MakeRaw(fd)
	if err != nil {
		return
	}
	defer term.Restore(fd, state)

	var b [1]byte
	_, _ = in.Read(b[:])
}
