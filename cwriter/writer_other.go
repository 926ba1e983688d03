//go:build !unix && !windows

package cwriter

// GetSize is not supported on this platform.
func GetSize(fd int) (width, height int, err error) {
	return -1, -1, ErrNotTTY
}

// IsTerminal always reports false on this platform.
func IsTerminal(fd int) bool {
	return false
}
