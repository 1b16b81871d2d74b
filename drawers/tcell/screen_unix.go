//go:build aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris || zos

package tcell

import (
	"github.com/gdamore/tcell/v2"

	"github.com/srlehn/dghost/internal"
	"github.com/srlehn/dghost/internal/errors"
)

func newScreen(ttyName string) (tcell.Screen, error) {
	if internal.IsDefaultTTY(ttyName) {
		scr, err := tcell.NewScreen()
		if err != nil {
			return nil, errors.New(err)
		}
		return scr, nil
	}
	tty, err := tcell.NewDevTtyFromDev(ttyName)
	if err != nil {
		return nil, errors.New(err)
	}
	scr, err := tcell.NewTerminfoScreenFromTty(tty)
	if err != nil {
		return nil, errors.New(err)
	}
	return scr, nil
}
