//go:build windows

package main

// terminalCols returns a conservative default width. Size detection is
// not wired up on Windows.
func terminalCols() int {
	return 80
}
