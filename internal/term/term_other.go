//go:build !linux && !darwin && !dragonfly && !freebsd && !netbsd && !openbsd

// Package term reports whether a file descriptor refers to a terminal.
package term

// IsTerminal always returns false on platforms without termios.
func IsTerminal(_ int) bool {
	return false
}
