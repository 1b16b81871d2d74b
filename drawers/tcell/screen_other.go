//go:build !(aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris || zos)

package tcell

import (
	"github.com/gdamore/tcell/v2"

	"github.com/srlehn/dghost/internal"
	"github.com/srlehn/dghost/internal/errors"
)

func newScreen(ttyName string) (tcell.Screen, error) {
	if !internal.IsDefaultTTY(ttyName) {
		return nil, errors.Errorf(`tty %q: only the controlling terminal is supported here`, ttyName)
	}
	scr, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.New(err)
	}
	return scr, nil
}
