package abi

import "bytes"

const readChunk = 64 << 10

// ReadAll loads the asset at path with OpenWAD, ReadWAD and CloseWAD. A
// negative result code is returned as the sys error it stands for.
func (t *Table) ReadAll(path string) (_ []byte, err error) {
	fd := t.OpenWAD(append([]byte(path), 0))
	if fd < 0 {
		return nil, Err(fd)
	}
	defer func() {
		if code := t.CloseWAD(fd); code < 0 && err == nil {
			err = Err(code)
		}
	}()
	var buf bytes.Buffer
	chunk := make([]byte, readChunk)
	for {
		n := t.ReadWAD(fd, chunk, int32(len(chunk)))
		switch {
		case n < 0:
			return nil, Err(n)
		case n == 0:
			return buf.Bytes(), nil
		}
		buf.Write(chunk[:n])
	}
}
