//go:build linux

package creacktty

import (
	"os"

	"github.com/creack/pty/v2"
	"golang.org/x/sys/unix"

	"github.com/srlehn/dghost/internal"
	"github.com/srlehn/dghost/internal/errors"
	"github.com/srlehn/dghost/sys"
)

const Name = `creack`

func init() {
	sys.RegisterTTY(Name, func(ttyFile string) (sys.TTY, error) { return New(ttyFile) })
}

type TTYCreack struct {
	master   *os.File
	slave    *os.File
	fileName string
}

var (
	_ sys.TTY      = (*TTYCreack)(nil)
	_ sys.TTYSizer = (*TTYCreack)(nil)
)

// New opens a new pseudo-terminal pair. Only the default tty name is accepted.
func New(ttyFile string) (*TTYCreack, error) {
	if !internal.IsDefaultTTY(ttyFile) {
		return nil, errors.New(`only default tty supported`)
	}
	p, t, err := pty.Open()
	if err != nil {
		return nil, errors.New(err)
	}
	if err := makeRaw(t); err != nil {
		p.Close()
		t.Close()
		return nil, err
	}
	return &TTYCreack{
		master:   p,
		slave:    t,
		fileName: t.Name(),
	}, nil
}

// makeRaw disables line buffering and echo so single key presses pass through.
func makeRaw(f *os.File) error {
	fd := int(f.Fd())
	tio, err := unix.IoctlGetTermios(fd, unix.TCGETS)
	if err != nil {
		return errors.New(err)
	}
	tio.Lflag &^= unix.ICANON | unix.ECHO | unix.ISIG | unix.IEXTEN
	tio.Iflag &^= unix.ICRNL | unix.IXON
	tio.Cc[unix.VMIN] = 1
	tio.Cc[unix.VTIME] = 0
	if err := unix.IoctlSetTermios(fd, unix.TCSETS, tio); err != nil {
		return errors.New(err)
	}
	return nil
}

// Inject feeds b to the terminal side as if typed.
func (t *TTYCreack) Inject(b []byte) (n int, err error) {
	if t == nil || t.master == nil {
		return 0, errors.NilReceiver()
	}
	return t.master.Write(b)
}

// Write sends output to the terminal side.
func (t *TTYCreack) Write(b []byte) (n int, err error) {
	if t == nil || t.slave == nil {
		return 0, errors.NilReceiver()
	}
	return t.slave.Write(b)
}

func (t *TTYCreack) Read(p []byte) (n int, err error) {
	if t == nil || t.slave == nil {
		return 0, errors.NilReceiver()
	}
	return t.slave.Read(p)
}

func (t *TTYCreack) TTYDevName() string {
	if t == nil {
		return internal.DefaultTTYDevice()
	}
	return t.fileName
}

func (t *TTYCreack) SizePixel() (cols, rows, xpixels, ypixels int, err error) {
	if t == nil || t.master == nil {
		return 0, 0, 0, 0, errors.NilReceiver()
	}
	sz, err := pty.GetsizeFull(t.master)
	if err != nil {
		return 0, 0, 0, 0, errors.New(err)
	}
	return int(sz.Cols), int(sz.Rows), int(sz.X), int(sz.Y), nil
}

// Setsize changes the window size of the pseudo-terminal.
func (t *TTYCreack) Setsize(cols, rows, xpixels, ypixels int) error {
	if t == nil || t.master == nil {
		return errors.NilReceiver()
	}
	err := pty.Setsize(t.master, &pty.Winsize{
		Cols: uint16(cols), Rows: uint16(rows), X: uint16(xpixels), Y: uint16(ypixels),
	})
	if err != nil {
		return errors.New(err)
	}
	return nil
}

func (t *TTYCreack) Close() error {
	if t == nil {
		return nil
	}
	var errM, errS error
	if t.master != nil {
		errM = t.master.Close()
		t.master = nil
	}
	if t.slave != nil {
		errS = t.slave.Close()
		t.slave = nil
	}
	return errors.Join(errM, errS)
}
