//go:build windows

package cwriter

import "golang.org/x/sys/windows"

// GetSize returns the visible dimensions of the given terminal.
func GetSize(fd int) (width, height int, err error) {
	var info windows.ConsoleScreenBufferInfo
	if err := windows.GetConsoleScreenBufferInfo(windows.Handle(fd), &info); err != nil {
		return -1, -1, err
	}
	// terminal wraps if last column is written
	return int(info.Window.Right - info.Window.Left), int(info.Window.Bottom-info.Window.Top) + 1, nil
}

// IsTerminal returns whether the given file descriptor is a terminal.
func IsTerminal(fd int) bool {
	var st uint32
	err := windows.GetConsoleMode(windows.Handle(fd), &st)
	if err != nil {
		return false
	}
	// enable ANSI processing, clearEOL depends on it
	_ = windows.SetConsoleMode(windows.Handle(fd), st|windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING)
	return true
}
