// <Copyright> 2018,2019 Simon Robin Lehn. All rights reserved.
// Use of this source code is governed by a MIT license that can
// be found in the LICENSE file.

// Package gotty provides an implementation of sys.TTY via [github.com/mattn/go-tty].
//
// [github.com/mattn/go-tty]: https://pkg.go.dev/github.com/mattn/go-tty
package gotty

import (
	ttymattn "github.com/mattn/go-tty"

	"github.com/srlehn/dghost/internal"
	"github.com/srlehn/dghost/internal/consts"
	"github.com/srlehn/dghost/internal/errors"
	"github.com/srlehn/dghost/sys"
)

const Name = `gotty`

func init() { sys.RegisterTTY(Name, TTYProv) }

type ttyMattN struct {
	*ttymattn.TTY
	fileName string
}

var (
	_ sys.TTY      = (*ttyMattN)(nil)
	_ sys.TTYSizer = (*ttyMattN)(nil)
)

func New(ttyFile string) (sys.TTY, error) {
	t, err := ttymattn.OpenDevice(ttyFile)
	if err != nil {
		return nil, errors.New(err)
	}
	if t == nil {
		return nil, errors.New(`nil tty`)
	}
	return &ttyMattN{TTY: t, fileName: ttyFile}, nil
}

var TTYProv sys.TTYProvider = func(ttyFile string) (sys.TTY, error) { return New(ttyFile) }

func (t *ttyMattN) Write(b []byte) (n int, err error) {
	if t == nil {
		return 0, errors.New(consts.ErrNilReceiver)
	}
	if t.TTY == nil {
		return 0, errors.New(`nil tty`)
	}
	f := t.Output()
	if f == nil {
		return 0, errors.New(`nil file`)
	}
	return f.Write(b)
}

// Read serves single bytes, go-tty decodes input rune by rune.
func (t *ttyMattN) Read(p []byte) (n int, err error) {
	if t == nil || t.TTY == nil {
		return 0, errors.NilReceiver()
	}
	if len(p) == 0 {
		return 0, nil
	}
	return t.Input().Read(p[:1])
}

func (t *ttyMattN) ReadRune() (r rune, size int, err error) {
	r = '\uFFFD'
	if t == nil {
		return r, len(string(r)), errors.New(consts.ErrNilReceiver)
	}
	if t.TTY == nil {
		return r, len(string(r)), errors.New(`nil tty`)
	}
	r, err = t.TTY.ReadRune()
	if err != nil {
		r = '\uFFFD'
	}
	return r, len(string(r)), err
}

func (t *ttyMattN) SizePixel() (cols, rows, xpixels, ypixels int, err error) {
	if t == nil || t.TTY == nil {
		return 0, 0, 0, 0, errors.NilReceiver()
	}
	cols, rows, xpixels, ypixels, err = t.TTY.SizePixel()
	if err != nil {
		return 0, 0, 0, 0, errors.New(err)
	}
	return cols, rows, xpixels, ypixels, nil
}

func (t *ttyMattN) TTYDevName() string {
	if t == nil {
		return internal.DefaultTTYDevice()
	}
	return t.fileName
}

func (t *ttyMattN) Close() error {
	if t == nil || t.TTY == nil {
		return nil
	}
	defer func() { t.TTY = nil }()
	return t.TTY.Close()
}
