// Package contdtty puts a console into raw mode via github.com/containerd/console.
package contdtty

import (
	"os"

	"github.com/containerd/console"

	"github.com/srlehn/dghost/internal"
	"github.com/srlehn/dghost/internal/errors"
	"github.com/srlehn/dghost/sys"
)

const Name = `containerd`

func init() {
	sys.RegisterTTY(Name, func(ttyFile string) (sys.TTY, error) { return New(ttyFile) })
}

type TTYContD struct {
	console.Console
	fileName string
}

var (
	_ sys.TTY      = (*TTYContD)(nil)
	_ sys.TTYSizer = (*TTYContD)(nil)
)

func New(ttyFile string) (_ *TTYContD, err error) {
	defer func() {
		if r := recover(); r != nil {
			// ConsoleFromFile panics on some platforms
			err = errors.New(r)
		}
	}()
	f, err := os.OpenFile(ttyFile, os.O_RDWR, 0)
	if err != nil {
		return nil, errors.New(err)
	}
	c, err := console.ConsoleFromFile(f)
	if err != nil {
		f.Close()
		return nil, errors.New(err)
	}
	if err := c.SetRaw(); err != nil {
		f.Close()
		return nil, errors.New(err)
	}
	return &TTYContD{
		Console:  c,
		fileName: ttyFile,
	}, nil
}

func (t *TTYContD) Write(b []byte) (n int, err error) {
	if t == nil {
		return 0, errors.NilReceiver()
	}
	if t.Console == nil {
		return 0, errors.New(`nil tty`)
	}
	return t.Console.Write(b)
}

func (t *TTYContD) Read(p []byte) (n int, err error) {
	if t == nil || t.Console == nil {
		return 0, errors.NilReceiver()
	}
	return t.Console.Read(p)
}

func (t *TTYContD) TTYDevName() string {
	if t == nil {
		return internal.DefaultTTYDevice()
	}
	return t.fileName
}

func (t *TTYContD) SizePixel() (cols, rows, xpixels, ypixels int, err error) {
	if t == nil || t.Console == nil {
		return 0, 0, 0, 0, errors.NilReceiver()
	}
	sz, err := t.Console.Size()
	if err != nil {
		return 0, 0, 0, 0, errors.New(err)
	}
	return int(sz.Width), int(sz.Height), 0, 0, nil
}

// Close resets the console mode.
func (t *TTYContD) Close() error {
	if t == nil || t.Console == nil {
		return nil
	}
	defer func() { t.Console = nil }()
	errReset := t.Console.Reset()
	errClose := t.Console.Close()
	if err := errors.Join(errReset, errClose); err != nil {
		return errors.New(err)
	}
	return nil
}
