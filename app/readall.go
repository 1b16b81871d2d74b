package app

import (
	"bytes"
	"io"

	"github.com/srlehn/dghost/internal/errors"
	"github.com/srlehn/dghost/sys"
)

const readChunk = 64 << 10

// ReadAll loads the asset at path through the handle calls of s.
func ReadAll(s sys.Syscalls, path string) (_ []byte, err error) {
	if s == nil {
		return nil, errors.NilParam()
	}
	h, err := s.OpenAsset(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if errClose := s.CloseAsset(h); errClose != nil && err == nil {
			err = errClose
		}
	}()
	var buf bytes.Buffer
	chunk := make([]byte, readChunk)
	for {
		n, err := s.ReadAsset(h, chunk)
		buf.Write(chunk[:n])
		if err == io.EOF {
			return buf.Bytes(), nil
		}
		if err != nil {
			return nil, err
		}
	}
}
