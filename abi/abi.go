// Package abi exposes the kernel boundary with the integer conventions of the
// C side of a game port: every call returns an int32 where negative values are
// failure codes, 0 means success (or "nothing": no key, end of data) and
// positive values carry a result.
package abi

import (
	"context"
	"errors"
	"io"
	"math"

	"github.com/srlehn/dghost/sys"
)

// Result codes. The values are stable.
const (
	OK               int32 = 0
	ErrCodeContract  int32 = -1
	ErrCodeNotFound  int32 = -2
	ErrCodeNamespace int32 = -3
	ErrCodeExhausted int32 = -4
	ErrCodeBadHandle int32 = -5
	ErrCodeIO        int32 = -6
	ErrCodeDisplay   int32 = -7
	ErrCodeInput     int32 = -8
	ErrCodeUnknown   int32 = -9
	ErrCodeNoSys     int32 = -38 // ENOSYS
)

var codes = []struct {
	err  error
	code int32
}{
	{sys.ErrContract, ErrCodeContract},
	{sys.ErrNotFound, ErrCodeNotFound},
	{sys.ErrNamespace, ErrCodeNamespace},
	{sys.ErrExhausted, ErrCodeExhausted},
	{sys.ErrBadHandle, ErrCodeBadHandle},
	{sys.ErrIO, ErrCodeIO},
	{sys.ErrDisplayUnavailable, ErrCodeDisplay},
	{sys.ErrDisplayBusy, ErrCodeDisplay},
	{sys.ErrInputClosed, ErrCodeInput},
}

// CodeOf maps an error of the sys package onto its result code.
func CodeOf(err error) int32 {
	if err == nil {
		return OK
	}
	for _, c := range codes {
		if errors.Is(err, c.err) {
			return c.code
		}
	}
	return ErrCodeUnknown
}

// Err maps a result code back onto the sys error it stands for. It returns nil
// for non-negative codes.
func Err(code int32) error {
	if code >= 0 {
		return nil
	}
	for _, c := range codes {
		if c.code == code {
			return c.err
		}
	}
	if code == ErrCodeNoSys {
		return errors.ErrUnsupported
	}
	return errUnknown
}

var errUnknown = errors.New(`unknown kernel error`)

// Table adapts a sys.Syscalls to the integer calls.
type Table struct {
	sys sys.Syscalls
	ctx context.Context
}

// NewTable wraps s. Blocking key reads are bounded by ctx.
func NewTable(ctx context.Context, s sys.Syscalls) *Table {
	if ctx == nil {
		ctx = context.Background()
	}
	return &Table{sys: s, ctx: ctx}
}

// Framebuffer presents the w x h frame in pix.
func (t *Table) Framebuffer(pix []uint32, w, h int32) int32 {
	return CodeOf(t.sys.Present(pix, int(w), int(h)))
}

// ReadKey returns the pending key or 0 if there is none.
func (t *Table) ReadKey() int32 {
	k, ok, err := t.sys.ReadKey(t.ctx)
	switch {
	case err != nil:
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return int32(sys.KeyNone)
		}
		return CodeOf(err)
	case !ok:
		return int32(sys.KeyNone)
	}
	return int32(k)
}

// OpenWAD opens the asset named by the NUL terminated path. Without a NUL
// the whole slice is the name.
func (t *Table) OpenWAD(path []byte) int32 {
	if path == nil {
		return ErrCodeContract
	}
	h, err := t.sys.OpenAsset(CString(path))
	if err != nil {
		return CodeOf(err)
	}
	return int32(h)
}

// ReadWAD reads up to n bytes into buf. It returns 0 at end of data.
func (t *Table) ReadWAD(fd int32, buf []byte, n int32) int32 {
	switch {
	case n < 0 || int(n) > len(buf):
		return ErrCodeContract
	case n == 0:
		return 0
	}
	read, err := t.sys.ReadAsset(sys.Handle(fd), buf[:n])
	if err != nil {
		if errors.Is(err, io.EOF) {
			return 0
		}
		return CodeOf(err)
	}
	if read > math.MaxInt32 {
		return ErrCodeIO
	}
	return int32(read)
}

// CloseWAD releases fd.
func (t *Table) CloseWAD(fd int32) int32 {
	return CodeOf(t.sys.CloseAsset(sys.Handle(fd)))
}

// CString returns the bytes of b up to the first NUL.
func CString(b []byte) string {
	for i, c := range b {
		if c == 0 {
			return string(b[:i])
		}
	}
	return string(b)
}
