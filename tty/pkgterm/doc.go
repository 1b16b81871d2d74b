// Package pkgterm reads keys from a tty in cbreak mode via github.com/pkg/term.
package pkgterm
