package systest

import (
	"context"
	"slices"
	"sync"

	"github.com/srlehn/dghost/sys"
)

// Call names recorded by Trace.
const (
	CallPresent    = `present`
	CallReadKey    = `read_key`
	CallOpenAsset  = `open_asset`
	CallReadAsset  = `read_asset`
	CallCloseAsset = `close_asset`
)

var _ sys.Syscalls = (*Trace)(nil)

// Trace records the order of calls made through it.
type Trace struct {
	sys.Syscalls
	mu    sync.Mutex
	calls []string
}

func NewTrace(s sys.Syscalls) *Trace { return &Trace{Syscalls: s} }

func (t *Trace) record(name string) {
	t.mu.Lock()
	t.calls = append(t.calls, name)
	t.mu.Unlock()
}

// Calls returns the recorded call names in order.
func (t *Trace) Calls() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return slices.Clone(t.calls)
}

// Count returns how often name was called.
func (t *Trace) Count(name string) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	var n int
	for _, c := range t.calls {
		if c == name {
			n++
		}
	}
	return n
}

func (t *Trace) Present(buf []uint32, width, height int) error {
	t.record(CallPresent)
	return t.Syscalls.Present(buf, width, height)
}

func (t *Trace) ReadKey(ctx context.Context) (sys.Key, bool, error) {
	t.record(CallReadKey)
	return t.Syscalls.ReadKey(ctx)
}

func (t *Trace) OpenAsset(path string) (sys.Handle, error) {
	t.record(CallOpenAsset)
	return t.Syscalls.OpenAsset(path)
}

func (t *Trace) ReadAsset(h sys.Handle, buf []byte) (int, error) {
	t.record(CallReadAsset)
	return t.Syscalls.ReadAsset(h, buf)
}

func (t *Trace) CloseAsset(h sys.Handle) error {
	t.record(CallCloseAsset)
	return t.Syscalls.CloseAsset(h)
}
