package asset

import (
	"bytes"
	"io"
	"io/fs"
	"sync"

	"github.com/google/btree"
)

type entry struct {
	name string
	data []byte
}

func entryLess(a, b *entry) bool { return a.name < b.name }

var _ Store = (*memStore)(nil)

// memStore keeps assets in memory, ordered by name.
type memStore struct {
	mu     sync.RWMutex
	tree   *btree.BTreeG[*entry]
	closed bool
}

func newMemStore() *memStore {
	return &memStore{tree: btree.NewG(16, entryLess)}
}

// Mem creates a store from name -> content pairs. Names are cleaned; invalid
// names are rejected.
func Mem(files map[string][]byte) (Store, error) {
	s := newMemStore()
	for name, data := range files {
		if err := s.put(name, data); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *memStore) put(name string, data []byte) error {
	clean, err := Clean(name)
	if err != nil {
		return err
	}
	s.tree.ReplaceOrInsert(&entry{name: clean, data: data})
	return nil
}

func (s *memStore) lookup(op, name string) (*entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, &fs.PathError{Op: op, Path: name, Err: fs.ErrClosed}
	}
	e, ok := s.tree.Get(&entry{name: name})
	if !ok {
		return nil, notExist(op, name)
	}
	return e, nil
}

func (s *memStore) Open(name string) (io.ReadCloser, error) {
	e, err := s.lookup(`open`, name)
	if err != nil {
		return nil, err
	}
	return io.NopCloser(bytes.NewReader(e.data)), nil
}

func (s *memStore) Stat(name string) (Info, error) {
	e, err := s.lookup(`stat`, name)
	if err != nil {
		return Info{}, err
	}
	return Info{Name: e.name, Size: int64(len(e.data))}, nil
}

func (s *memStore) List() ([]Info, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, fs.ErrClosed
	}
	infos := make([]Info, 0, s.tree.Len())
	s.tree.Ascend(func(e *entry) bool {
		infos = append(infos, Info{Name: e.name, Size: int64(len(e.data))})
		return true
	})
	return infos, nil
}

func (s *memStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.tree.Clear(false)
	return nil
}
