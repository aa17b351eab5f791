//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

// Package term reports whether a file descriptor refers to a terminal.
package term

import "golang.org/x/sys/unix"

// IsTerminal returns true if fd refers to a terminal.
func IsTerminal(fd int) bool {
	_, err := unix.IoctlGetTermios(fd, ioctlReadTermios)
	return err == nil
}
