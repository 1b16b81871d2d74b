// Package asset implements read-only asset namespaces: a directory, an fs.FS,
// a tar archive or a set of in-memory files.
//
// Errors follow io/fs: missing assets match fs.ErrNotExist, names outside of the
// namespace match fs.ErrInvalid.
package asset

import (
	"io"
	"io/fs"
	"os"
	"path"
	"strings"

	"github.com/srlehn/dghost/internal/errors"
)

// Info describes an asset.
type Info struct {
	Name string
	Size int64
}

// Store is a read-only asset namespace.
type Store interface {
	Open(name string) (io.ReadCloser, error)
	Stat(name string) (Info, error)
	List() ([]Info, error)
	Close() error
}

// Clean turns a path of the asset namespace into a store name. A leading slash
// denotes the namespace root. Paths that are empty, contain NUL bytes or climb
// out of the root are rejected.
func Clean(p string) (string, error) {
	if strings.IndexByte(p, 0) >= 0 {
		return ``, invalid(`open`, p)
	}
	name := path.Clean(strings.TrimLeft(p, `/`))
	if name == `.` || !fs.ValidPath(name) {
		return ``, invalid(`open`, p)
	}
	return name, nil
}

func invalid(op, p string) error {
	return errors.New(&fs.PathError{Op: op, Path: p, Err: fs.ErrInvalid})
}

func notExist(op, p string) error {
	return errors.New(&fs.PathError{Op: op, Path: p, Err: fs.ErrNotExist})
}

// Open opens a directory (Dir) or a tar archive (Tar) depending on what path is.
func Open(p string) (Store, error) {
	fi, err := os.Stat(p)
	if err != nil {
		return nil, errors.New(err)
	}
	if fi.IsDir() {
		return Dir(p)
	}
	f, err := os.Open(p)
	if err != nil {
		return nil, errors.New(err)
	}
	defer f.Close()
	return Tar(f)
}
