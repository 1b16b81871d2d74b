package internal

import "runtime"

// DefaultTTYDevice is the controlling terminal of the platform.
func DefaultTTYDevice() string {
	switch runtime.GOOS {
	case `windows`:
		return `CON`
	case `darwin`:
		return `/dev/stdin`
	default:
		return `/dev/tty`
	}
}

// IsDefaultTTY reports whether ttyName refers to the controlling terminal.
func IsDefaultTTY(ttyName string) bool {
	switch ttyName {
	case ``, `/dev/tty`, `/dev/stdin`, `CON`:
		return true
	}
	return false
}
