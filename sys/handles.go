package sys

import (
	"io"
	"sort"

	"github.com/srlehn/dghost/internal/errors"
)

type openAsset struct {
	name string
	rc   io.ReadCloser
	read int64
	eof  bool
}

// handleTable tracks open assets. Handle numbers are issued in increasing order
// and never handed out twice, so a stale handle can't alias a newer asset.
type handleTable struct {
	next Handle
	max  int
	open map[Handle]*openAsset
}

func newHandleTable(max int) *handleTable {
	return &handleTable{max: max, open: make(map[Handle]*openAsset)}
}

func (t *handleTable) full() bool { return t.max > 0 && len(t.open) >= t.max }

func (t *handleTable) add(name string, rc io.ReadCloser) (Handle, error) {
	if t.next < 0 {
		return -1, errors.Mark(ErrExhausted, errors.New(`handle space exhausted`))
	}
	h := t.next
	t.next++
	t.open[h] = &openAsset{name: name, rc: rc}
	return h, nil
}

func (t *handleTable) get(h Handle) (*openAsset, error) {
	a, ok := t.open[h]
	if !ok || a == nil {
		return nil, errors.Mark(ErrBadHandle, errors.Errorf(`handle %d`, h))
	}
	return a, nil
}

func (t *handleTable) remove(h Handle) (*openAsset, error) {
	a, err := t.get(h)
	if err != nil {
		return nil, err
	}
	delete(t.open, h)
	return a, nil
}

func (t *handleTable) len() int { return len(t.open) }

// closeAll releases every open asset, most recent first.
func (t *handleTable) closeAll() error {
	hs := make([]Handle, 0, len(t.open))
	for h := range t.open {
		hs = append(hs, h)
	}
	sort.Slice(hs, func(i, j int) bool { return hs[i] > hs[j] })
	var errs []error
	for _, h := range hs {
		if err := t.open[h].rc.Close(); err != nil {
			errs = append(errs, err)
		}
		delete(t.open, h)
	}
	return errors.Join(errs...)
}
