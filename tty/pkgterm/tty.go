//go:build !windows

package pkgterm

import (
	pkgTerm "github.com/pkg/term"

	"github.com/srlehn/dghost/internal"
	"github.com/srlehn/dghost/internal/errors"
	"github.com/srlehn/dghost/sys"
)

const Name = `pkgterm`

func init() {
	sys.RegisterTTY(Name, func(ttyFile string) (sys.TTY, error) { return New(ttyFile) })
}

type TTYPkgTerm struct {
	*pkgTerm.Term
	fileName string
}

var _ sys.TTY = (*TTYPkgTerm)(nil)

func New(ttyFile string) (*TTYPkgTerm, error) {
	t, err := pkgTerm.Open(ttyFile, pkgTerm.CBreakMode)
	if err != nil {
		return nil, errors.New(err)
	}
	if t == nil {
		return nil, errors.New(`nil tty`)
	}
	return &TTYPkgTerm{Term: t, fileName: ttyFile}, nil
}

func (t *TTYPkgTerm) Write(b []byte) (n int, err error) {
	if t == nil || t.Term == nil {
		return 0, errors.NilReceiver()
	}
	return t.Term.Write(b)
}

func (t *TTYPkgTerm) Read(p []byte) (n int, err error) {
	if t == nil || t.Term == nil {
		return 0, errors.NilReceiver()
	}
	return t.Term.Read(p)
}

func (t *TTYPkgTerm) TTYDevName() string {
	if t == nil {
		return internal.DefaultTTYDevice()
	}
	return t.fileName
}

// Close restores the terminal mode and closes the device.
func (t *TTYPkgTerm) Close() error {
	if t == nil || t.Term == nil {
		return nil
	}
	defer func() { t.Term = nil }()
	errRestore := t.Term.Restore()
	errClose := t.Term.Close()
	if err := errors.Join(errRestore, errClose); err != nil {
		return errors.New(err)
	}
	return nil
}
