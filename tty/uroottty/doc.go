// Package uroottty switches a tty to raw mode via github.com/u-root/u-root/pkg/termios.
package uroottty
