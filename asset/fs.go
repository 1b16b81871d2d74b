package asset

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/srlehn/dghost/internal/errors"
)

var _ Store = (*fsStore)(nil)

type fsStore struct {
	fsys fs.FS
	// set by Dir
	root *os.Root
	dir  string
}

// FS serves the regular files of fsys, e.g. an embed.FS.
func FS(fsys fs.FS) (Store, error) {
	if fsys == nil {
		return nil, errors.NilParam()
	}
	return &fsStore{fsys: fsys}, nil
}

// Dir serves the regular files below root. Names resolving outside of root,
// through ".." or symbolic links, are rejected with fs.ErrInvalid.
func Dir(root string) (Store, error) {
	fi, err := os.Stat(root)
	if err != nil {
		return nil, errors.New(err)
	}
	if !fi.IsDir() {
		return nil, errors.Errorf(`%s: not a directory`, root)
	}
	dir, err := filepath.EvalSymlinks(root)
	if err != nil {
		return nil, errors.New(err)
	}
	r, err := os.OpenRoot(dir)
	if err != nil {
		return nil, errors.New(err)
	}
	return &fsStore{fsys: r.FS(), root: r, dir: dir}, nil
}

// pathError classifies a failed lookup of a Dir store: os.Root reports names
// leaving the root with an unexported error.
func (s *fsStore) pathError(op, name string, err error) error {
	if s.root == nil || errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission) {
		return errors.New(err)
	}
	if s.escapes(name) {
		return invalid(op, name)
	}
	return errors.New(err)
}

func (s *fsStore) escapes(name string) bool {
	resolved, err := filepath.EvalSymlinks(filepath.Join(s.dir, filepath.FromSlash(name)))
	if err != nil {
		// os.Root refused a name we cannot resolve either
		return true
	}
	rel, err := filepath.Rel(s.dir, resolved)
	if err != nil {
		return true
	}
	return rel == `..` || strings.HasPrefix(rel, `..`+string(filepath.Separator))
}

func (s *fsStore) Open(name string) (io.ReadCloser, error) {
	if s.fsys == nil {
		return nil, &fs.PathError{Op: `open`, Path: name, Err: fs.ErrClosed}
	}
	f, err := s.fsys.Open(name)
	if err != nil {
		return nil, s.pathError(`open`, name, err)
	}
	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, errors.New(err)
	}
	if !fi.Mode().IsRegular() {
		f.Close()
		return nil, notExist(`open`, name)
	}
	return f, nil
}

func (s *fsStore) Stat(name string) (Info, error) {
	if s.fsys == nil {
		return Info{}, &fs.PathError{Op: `stat`, Path: name, Err: fs.ErrClosed}
	}
	fi, err := fs.Stat(s.fsys, name)
	if err != nil {
		return Info{}, s.pathError(`stat`, name, err)
	}
	if !fi.Mode().IsRegular() {
		return Info{}, notExist(`stat`, name)
	}
	return Info{Name: name, Size: fi.Size()}, nil
}

// List walks the tree in lexical order.
func (s *fsStore) List() ([]Info, error) {
	if s.fsys == nil {
		return nil, fs.ErrClosed
	}
	var infos []Info
	err := fs.WalkDir(s.fsys, `.`, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}
		fi, err := d.Info()
		if err != nil {
			return err
		}
		infos = append(infos, Info{Name: p, Size: fi.Size()})
		return nil
	})
	if err != nil {
		return nil, errors.New(err)
	}
	return infos, nil
}

func (s *fsStore) Close() error {
	s.fsys = nil
	if s.root == nil {
		return nil
	}
	r := s.root
	s.root = nil
	if err := r.Close(); err != nil {
		return errors.New(err)
	}
	return nil
}
