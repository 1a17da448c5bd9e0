//go:build unix

package main

import (
	"os"

	"golang.org/x/sys/unix"
)

// terminalCols returns the terminal width in columns, or 80 when
// stdout is not a terminal.
func terminalCols() int {
	ws, err := unix.IoctlGetWinsize(int(os.Stdout.Fd()), unix.TIOCGWINSZ)
	if err != nil || ws.Col == 0 {
		return 80
	}
	return int(ws.Col)
}
