package sys

import (
	"context"
	"io"
	"sync"

	"github.com/srlehn/dghost/internal/errors"
	"github.com/srlehn/dghost/internal/iointernal"
)

// Keyboard delivers key presses to the kernel.
type Keyboard interface {
	// ReadKey returns the next pending key. If block is false and no key is
	// pending, it returns ok == false at once. If block is true it waits for a
	// key or for ctx to be done.
	ReadKey(ctx context.Context, block bool) (k Key, ok bool, err error)
	Close() error
}

// keyQueueLen bounds the keys buffered between the tty reader and ReadKey.
const keyQueueLen = 64

var _ Keyboard = (*ttyKeyboard)(nil)

type ttyKeyboard struct {
	tty      TTY
	rdr      iointernal.RuneReader
	keys     chan Key
	done     chan struct{}
	err      error // set before keys is closed
	start    sync.Once
	stop     sync.Once
	closeErr error
}

// NewTTYKeyboard reads key presses from tty. A goroutine started on the first
// ReadKey pumps decoded runes into a bounded queue; it exits when the tty
// reports an error or the keyboard is closed.
func NewTTYKeyboard(tty TTY) (Keyboard, error) {
	if tty == nil {
		return nil, errors.NilParam()
	}
	return &ttyKeyboard{
		tty:  tty,
		rdr:  iointernal.NewRuneReader(tty),
		keys: make(chan Key, keyQueueLen),
		done: make(chan struct{}),
	}, nil
}

func (k *ttyKeyboard) pump() {
	defer close(k.keys)
	for {
		r, _, err := k.rdr.ReadRune()
		if err != nil {
			k.err = err
			return
		}
		if Key(r) == KeyNone {
			// NUL (^@) can't be told apart from "no key" in the integer ABI
			continue
		}
		select {
		case k.keys <- Key(r):
		case <-k.done:
			return
		}
	}
}

func (k *ttyKeyboard) ReadKey(ctx context.Context, block bool) (Key, bool, error) {
	if k == nil {
		return KeyNone, false, errors.NilReceiver()
	}
	select {
	case <-k.done:
		return KeyNone, false, errors.Mark(ErrInputClosed, errors.New(`keyboard closed`))
	default:
	}
	k.start.Do(func() { go k.pump() })
	if !block {
		select {
		case key, ok := <-k.keys:
			return k.received(key, ok)
		default:
			return KeyNone, false, nil
		}
	}
	if ctx == nil {
		ctx = context.Background()
	}
	select {
	case key, ok := <-k.keys:
		return k.received(key, ok)
	case <-k.done:
		return KeyNone, false, errors.Mark(ErrInputClosed, errors.New(`keyboard closed`))
	case <-ctx.Done():
		return KeyNone, false, ctx.Err()
	}
}

func (k *ttyKeyboard) received(key Key, ok bool) (Key, bool, error) {
	if ok {
		return key, true, nil
	}
	err := k.err
	if err == nil {
		err = io.EOF
	}
	return KeyNone, false, errors.Mark(ErrInputClosed, err)
}

func (k *ttyKeyboard) Close() error {
	if k == nil {
		return nil
	}
	k.stop.Do(func() {
		close(k.done)
		k.closeErr = k.tty.Close()
	})
	return k.closeErr
}
