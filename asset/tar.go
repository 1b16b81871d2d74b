package asset

import (
	"archive/tar"
	"io"

	"github.com/srlehn/dghost/internal/errors"
)

// MaxTarEntrySize bounds a single archive member loaded by Tar.
const MaxTarEntrySize = 1 << 30

// Tar loads the regular files of a tar archive (ustar, pax or gnu) into memory.
// Directories, links and device nodes are skipped.
func Tar(r io.Reader) (Store, error) {
	if r == nil {
		return nil, errors.NilParam()
	}
	s := newMemStore()
	tr := tar.NewReader(r)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.New(err)
		}
		if !hdr.FileInfo().Mode().IsRegular() {
			continue
		}
		if hdr.Size > MaxTarEntrySize {
			return nil, errors.Errorf(`tar member %s: %d bytes exceed limit`, hdr.Name, hdr.Size)
		}
		data := make([]byte, hdr.Size)
		if _, err := io.ReadFull(tr, data); err != nil {
			return nil, errors.WrapPrefix(err, `tar member `+hdr.Name, 0)
		}
		if err := s.put(hdr.Name, data); err != nil {
			return nil, err
		}
	}
	return s, nil
}
