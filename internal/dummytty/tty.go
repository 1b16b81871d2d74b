// Package dummytty provides a scripted terminal for tests and headless runs.
package dummytty

import (
	"io"
	"strings"
	"sync"

	"github.com/srlehn/dghost/internal"
	"github.com/srlehn/dghost/internal/errors"
)

// TTYDummy replays a fixed input script and discards output.
type TTYDummy struct {
	mu       sync.Mutex
	rdr      *strings.Reader
	fileName string
	hold     bool
	done     chan struct{}
	once     sync.Once
}

// New returns a tty that reads script and then reports io.EOF.
func New(script string) *TTYDummy {
	return &TTYDummy{
		rdr:      strings.NewReader(script),
		fileName: internal.DefaultTTYDevice(),
		done:     make(chan struct{}),
	}
}

// NewHolding returns a tty that reads script and then blocks until closed,
// like an idle terminal.
func NewHolding(script string) *TTYDummy {
	t := New(script)
	t.hold = true
	return t
}

func (t *TTYDummy) Write(b []byte) (n int, err error) { return io.Discard.Write(b) }

func (t *TTYDummy) Read(p []byte) (n int, err error) {
	if t == nil || t.rdr == nil {
		return 0, errors.NilReceiver()
	}
	t.mu.Lock()
	n, err = t.rdr.Read(p)
	t.mu.Unlock()
	if err == io.EOF && t.hold {
		<-t.done
		return 0, io.ErrClosedPipe
	}
	return n, err
}

func (t *TTYDummy) TTYDevName() string {
	if t == nil {
		return internal.DefaultTTYDevice()
	}
	return t.fileName
}

func (t *TTYDummy) Close() error {
	if t == nil {
		return nil
	}
	t.once.Do(func() { close(t.done) })
	return nil
}
