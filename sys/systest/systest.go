// Package systest provides in-memory displays and keyboards for testing code
// that runs on top of the sys boundary.
package systest

import (
	"context"
	"slices"
	"sync"

	"github.com/srlehn/dghost/internal/errors"
	"github.com/srlehn/dghost/sys"
)

var _ sys.Display = (*Recorder)(nil)

// Recorder is a display keeping a copy of every frame it was shown.
type Recorder struct {
	mu     sync.Mutex
	frames []sys.Framebuffer
	// Busy is the number of Show calls to fail with sys.ErrDisplayBusy before
	// frames are accepted.
	Busy int
	// Fail makes every Show call return it.
	Fail   error
	calls  int
	closed bool
}

func (r *Recorder) Name() string { return `recorder` }

func (r *Recorder) Show(fb *sys.Framebuffer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	switch {
	case r.closed:
		return errors.Mark(sys.ErrDisplayUnavailable, errors.New(`recorder closed`))
	case r.Fail != nil:
		return r.Fail
	case r.Busy > 0:
		r.Busy--
		return errors.New(sys.ErrDisplayBusy)
	}
	r.frames = append(r.frames, sys.Framebuffer{
		Pix:    slices.Clone(fb.Pix),
		Width:  fb.Width,
		Height: fb.Height,
	})
	return nil
}

func (r *Recorder) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true
	return nil
}

// Frames returns the frames shown so far.
func (r *Recorder) Frames() []sys.Framebuffer {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.frames)
}

// Calls counts Show invocations, including failed ones.
func (r *Recorder) Calls() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls
}

func (r *Recorder) Closed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.closed
}

var _ sys.Keyboard = (*Script)(nil)

// Script is a keyboard replaying a fixed list of keys. Once drained it behaves
// like an idle keyboard: non-blocking reads report no key, blocking reads wait
// for the context.
type Script struct {
	mu     sync.Mutex
	keys   []sys.Key
	closed bool
}

func NewScript(keys ...sys.Key) *Script { return &Script{keys: keys} }

// Runes is a shorthand for NewScript with the runes of s.
func Runes(s string) *Script {
	var keys []sys.Key
	for _, r := range s {
		keys = append(keys, sys.Key(r))
	}
	return NewScript(keys...)
}

func (s *Script) ReadKey(ctx context.Context, block bool) (sys.Key, bool, error) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return sys.KeyNone, false, errors.New(sys.ErrInputClosed)
	}
	if len(s.keys) > 0 {
		k := s.keys[0]
		s.keys = s.keys[1:]
		s.mu.Unlock()
		return k, true, nil
	}
	s.mu.Unlock()
	if !block {
		return sys.KeyNone, false, nil
	}
	<-ctx.Done()
	return sys.KeyNone, false, ctx.Err()
}

// Pending returns the number of keys not read yet.
func (s *Script) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.keys)
}

func (s *Script) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}
