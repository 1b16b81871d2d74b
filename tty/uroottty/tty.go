//go:build !windows && !plan9

package uroottty

import (
	"github.com/u-root/u-root/pkg/termios"

	"github.com/srlehn/dghost/internal"
	"github.com/srlehn/dghost/internal/errors"
	"github.com/srlehn/dghost/sys"
)

const Name = `uroot`

func init() {
	sys.RegisterTTY(Name, func(ttyFile string) (sys.TTY, error) { return New(ttyFile) })
}

type TTYURoot struct {
	*termios.TTYIO
	// terminal settings before Raw
	saved    *termios.Termios
	fileName string
}

var (
	_ sys.TTY      = (*TTYURoot)(nil)
	_ sys.TTYSizer = (*TTYURoot)(nil)
)

func New(ttyFile string) (*TTYURoot, error) {
	t, err := termios.NewWithDev(ttyFile)
	if err != nil {
		return nil, errors.New(err)
	}
	saved, err := t.Raw()
	if err != nil {
		return nil, errors.New(err)
	}
	return &TTYURoot{
		TTYIO:    t,
		saved:    saved,
		fileName: ttyFile,
	}, nil
}

func (t *TTYURoot) Write(b []byte) (n int, err error) {
	if t == nil {
		return 0, errors.NilReceiver()
	}
	if t.TTYIO == nil {
		return 0, errors.New(`nil tty`)
	}
	return t.TTYIO.Write(b)
}

func (t *TTYURoot) Read(p []byte) (n int, err error) {
	if t == nil || t.TTYIO == nil {
		return 0, errors.NilReceiver()
	}
	return t.TTYIO.Read(p)
}

func (t *TTYURoot) TTYDevName() string {
	if t == nil {
		return internal.DefaultTTYDevice()
	}
	return t.fileName
}

func (t *TTYURoot) SizePixel() (cols, rows, xpixels, ypixels int, err error) {
	if t == nil || t.TTYIO == nil {
		return 0, 0, 0, 0, errors.NilReceiver()
	}
	sz, err := t.GetWinSize()
	if err != nil {
		return 0, 0, 0, 0, errors.New(err)
	}
	return int(sz.Col), int(sz.Row), int(sz.Xpixel), int(sz.Ypixel), nil
}

// Close restores the settings found by New.
func (t *TTYURoot) Close() error {
	if t == nil || t.TTYIO == nil {
		return nil
	}
	var err error
	if t.saved != nil {
		err = t.Set(t.saved)
	}
	t.saved = nil
	t.TTYIO = nil
	if err != nil {
		return errors.New(err)
	}
	return nil
}
