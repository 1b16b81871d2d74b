package iointernal

import (
	"io"
	"unicode/utf8"

	"github.com/srlehn/dghost/internal/consts"
	"github.com/srlehn/dghost/internal/errors"
)

type RuneReader interface {
	ReadRune() (r rune, size int, err error)
}

// NewRuneReader decodes UTF-8 from rdr one byte at a time so that it never reads
// ahead of a key press. Readers that already implement ReadRune are used directly.
func NewRuneReader(rdr io.Reader) RuneReader {
	if rdr == nil {
		return nil
	}
	if rnRdr, ok := rdr.(RuneReader); ok {
		return rnRdr
	}
	return &runeReader{reader: rdr}
}

var _ RuneReader = (*runeReader)(nil)

type runeReader struct {
	reader  io.Reader
	pending []byte // bytes read past an invalid sequence
}

func (r *runeReader) ReadRune() (rn rune, size int, err error) {
	if r == nil || r.reader == nil {
		return utf8.RuneError, 1, errors.New(consts.ErrNilReceiver)
	}
	var rb [utf8.UTFMax]byte
	n := copy(rb[:], r.pending)
	r.pending = r.pending[n:]
	for {
		if n > 0 && utf8.FullRune(rb[:n]) {
			break
		}
		var b [1]byte
		m, err := r.reader.Read(b[:])
		if m == 0 {
			if err == nil {
				continue
			}
			if n > 0 && err == io.EOF {
				// truncated sequence at end of input
				break
			}
			return utf8.RuneError, 0, err
		}
		rb[n] = b[0]
		n++
	}
	rn, size = utf8.DecodeRune(rb[:n])
	if size < n {
		r.pending = append(append([]byte(nil), rb[size:n]...), r.pending...)
	}
	return rn, size, nil
}
