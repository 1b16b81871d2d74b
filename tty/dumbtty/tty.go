// Package dumbtty reads a tty device as is, without changing its mode.
package dumbtty

import (
	"os"

	"github.com/srlehn/dghost/internal"
	"github.com/srlehn/dghost/internal/errors"
	"github.com/srlehn/dghost/sys"
)

const Name = `dumb`

func init() {
	sys.RegisterTTY(Name, func(ttyFile string) (sys.TTY, error) { return New(ttyFile) })
}

type TTYDumb struct {
	f        *os.File
	fileName string
}

var _ sys.TTY = (*TTYDumb)(nil)

// New opens ttyFile. "-" reads from stdin, e.g. for piped key scripts.
func New(ttyFile string) (*TTYDumb, error) {
	if ttyFile == `-` {
		return &TTYDumb{f: os.Stdin, fileName: ttyFile}, nil
	}
	f, err := os.OpenFile(ttyFile, os.O_RDWR, 0)
	if err != nil {
		return nil, errors.New(err)
	}
	return &TTYDumb{
		f:        f,
		fileName: ttyFile,
	}, nil
}

func (t *TTYDumb) Write(b []byte) (n int, err error) {
	if t == nil {
		return 0, errors.NilReceiver()
	}
	if t.f == nil {
		return 0, errors.New(`nil tty`)
	}
	return t.f.Write(b)
}

func (t *TTYDumb) Read(p []byte) (n int, err error) {
	if t == nil || t.f == nil {
		return 0, errors.NilReceiver()
	}
	return t.f.Read(p)
}

func (t *TTYDumb) TTYDevName() string {
	if t == nil {
		return internal.DefaultTTYDevice()
	}
	return t.fileName
}

// Fd is used for size queries.
func (t *TTYDumb) Fd() uintptr {
	if t == nil || t.f == nil {
		return ^uintptr(0)
	}
	return t.f.Fd()
}

func (t *TTYDumb) Close() error {
	if t == nil || t.f == nil {
		return nil
	}
	f := t.f
	t.f = nil
	if f == os.Stdin {
		return nil
	}
	return f.Close()
}
