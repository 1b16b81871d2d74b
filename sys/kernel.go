package sys

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/srlehn/dghost/asset"
	"github.com/srlehn/dghost/internal"
	"github.com/srlehn/dghost/internal/errors"
	"github.com/srlehn/dghost/internal/logx"
)

// AssetStore is the read-only namespace OpenAsset resolves paths in.
// Names passed to Open are already cleaned (see asset.Clean).
type AssetStore interface {
	Open(name string) (io.ReadCloser, error)
	Close() error
}

const (
	DefaultMaxHandles     = 64
	DefaultPresentRetries = 2
	DefaultPresentBackoff = 5 * time.Millisecond
)

var (
	_ Syscalls            = (*Kernel)(nil)
	_ logx.LoggerProvider = (*Kernel)(nil)
)

// Kernel implements Syscalls for a hosted application.
// The boundary is meant to be driven by a single goroutine; the mutex only
// guards against Close racing a running call.
type Kernel struct {
	mu       sync.Mutex
	display  Display
	keyboard Keyboard
	assets   AssetStore
	policy   KeyPolicy
	handles  *handleTable
	retries  int
	backoff  time.Duration
	logger   *slog.Logger
	closer   internal.Closer
	snapshot Framebuffer
	stats    Stats
	closed   bool
}

// Stats counts boundary traffic.
type Stats struct {
	Presents   int
	Keys       int
	Opens      int
	BytesRead  int64
	OpenAssets int
}

// New creates a kernel. Without options it has no display, no keyboard and an
// empty asset namespace.
func New(opts ...Option) (*Kernel, error) {
	k := &Kernel{
		policy:  NonBlocking,
		handles: newHandleTable(DefaultMaxHandles),
		retries: DefaultPresentRetries,
		backoff: DefaultPresentBackoff,
		closer:  internal.NewCloser(),
	}
	if err := k.SetOptions(opts...); err != nil {
		_ = k.closer.Close()
		return nil, err
	}
	k.closer.OnClose(func() error {
		var errs []error
		if k.display != nil {
			errs = append(errs, k.display.Close())
		}
		if k.keyboard != nil {
			errs = append(errs, k.keyboard.Close())
		}
		if k.assets != nil {
			errs = append(errs, k.assets.Close())
		}
		return errors.Join(errs...)
	})
	// registered last, runs first
	k.closer.OnClose(func() error {
		k.mu.Lock()
		defer k.mu.Unlock()
		return k.handles.closeAll()
	})
	attrs := []any{`policy`, k.policy.String()}
	if k.display != nil {
		attrs = append(attrs, `display`, k.display.Name())
	}
	logx.Info(`kernel started`, k, attrs...)
	return k, nil
}

func (k *Kernel) Logger() *slog.Logger {
	if k == nil {
		return nil
	}
	return k.logger
}

func (k *Kernel) KeyPolicy() KeyPolicy { return k.policy }

func (k *Kernel) Stats() Stats {
	k.mu.Lock()
	defer k.mu.Unlock()
	s := k.stats
	s.OpenAssets = k.handles.len()
	return s
}

// Present copies buf into a kernel owned frame and shows it. buf is not
// referenced after Present returns.
func (k *Kernel) Present(buf []uint32, width, height int) error {
	if k == nil {
		return errors.NilReceiver()
	}
	if err := checkDims(len(buf), width, height); err != nil {
		logx.IsErr(err, k, slog.LevelError, `syscall`, `present`)
		return err
	}
	k.mu.Lock()
	defer k.mu.Unlock()
	if k.closed || k.display == nil {
		return errors.Mark(ErrDisplayUnavailable, errors.New(`no display`))
	}
	k.snapshot.copyFrom(buf, width, height)
	var err error
	for attempt := 0; ; attempt++ {
		err = logx.TimeIt(func() error { return k.display.Show(&k.snapshot) },
			`present`, k, `display`, k.display.Name(), `width`, width, `height`, height)
		if err == nil || !errors.Is(err, ErrDisplayBusy) || attempt >= k.retries {
			break
		}
		logx.Warn(`display busy, retrying`, k, `attempt`, attempt+1)
		time.Sleep(k.backoff)
	}
	if err != nil {
		if !errors.Is(err, ErrDisplayUnavailable) && !errors.Is(err, ErrDisplayBusy) {
			err = errors.Mark(ErrDisplayUnavailable, err)
		}
		logx.IsErr(err, k, slog.LevelError, `syscall`, `present`)
		return err
	}
	k.stats.Presents++
	return nil
}

func (k *Kernel) ReadKey(ctx context.Context) (Key, bool, error) {
	if k == nil {
		return KeyNone, false, errors.NilReceiver()
	}
	if ctx == nil {
		ctx = context.Background()
	}
	k.mu.Lock()
	kb, closed := k.keyboard, k.closed
	k.mu.Unlock()
	if closed {
		return KeyNone, false, errors.Mark(ErrInputClosed, errors.New(`kernel closed`))
	}
	block := k.policy == Blocking
	if kb == nil {
		if !block {
			return KeyNone, false, nil
		}
		<-ctx.Done()
		return KeyNone, false, ctx.Err()
	}
	// not holding the lock, a blocking read must not stall Close
	key, ok, err := kb.ReadKey(ctx, block)
	if err != nil {
		if !errors.Is(err, ErrInputClosed) && !errors.Is(err, ctx.Err()) {
			err = errors.Mark(ErrInputClosed, err)
		}
		return KeyNone, false, err
	}
	if ok {
		k.mu.Lock()
		k.stats.Keys++
		k.mu.Unlock()
		logx.Debug(`key`, k, `syscall`, `read_key`, `key`, key.String())
	}
	return key, ok, nil
}

func (k *Kernel) OpenAsset(path string) (Handle, error) {
	if k == nil {
		return -1, errors.NilReceiver()
	}
	name, err := asset.Clean(path)
	if err != nil {
		err = assetError(err)
		logx.IsErr(err, k, slog.LevelWarn, `syscall`, `open_asset`, `path`, path)
		return -1, err
	}
	k.mu.Lock()
	defer k.mu.Unlock()
	if k.closed {
		return -1, errors.Mark(ErrIO, errors.New(`kernel closed`))
	}
	if k.assets == nil {
		return -1, errors.Mark(ErrNotFound, errors.Errorf(`%s: no asset namespace`, name))
	}
	if k.handles.full() {
		err := errors.Mark(ErrExhausted, errors.Errorf(`%d assets open`, k.handles.len()))
		logx.IsErr(err, k, slog.LevelWarn, `syscall`, `open_asset`, `path`, name)
		return -1, err
	}
	rc, err := k.assets.Open(name)
	if err != nil {
		err = assetError(err)
		logx.IsErr(err, k, slog.LevelWarn, `syscall`, `open_asset`, `path`, name)
		return -1, err
	}
	h, err := k.handles.add(name, rc)
	if err != nil {
		_ = rc.Close()
		return -1, err
	}
	k.stats.Opens++
	logx.Debug(`asset opened`, k, `syscall`, `open_asset`, `path`, name, `handle`, h)
	return h, nil
}

func (k *Kernel) ReadAsset(h Handle, buf []byte) (int, error) {
	if k == nil {
		return 0, errors.NilReceiver()
	}
	k.mu.Lock()
	defer k.mu.Unlock()
	a, err := k.handles.get(h)
	if err != nil {
		return 0, err
	}
	if len(buf) == 0 {
		return 0, nil
	}
	if a.eof {
		return 0, io.EOF
	}
	n, err := io.ReadFull(a.rc, buf)
	a.read += int64(n)
	k.stats.BytesRead += int64(n)
	switch {
	case err == nil:
		return n, nil
	case errors.Is(err, io.ErrUnexpectedEOF):
		a.eof = true
		return n, nil
	case errors.Is(err, io.EOF):
		a.eof = true
		logx.Debug(`asset drained`, k, `syscall`, `read_asset`, `handle`, h, `bytes`, a.read)
		return 0, io.EOF
	}
	err = errors.Mark(ErrIO, err)
	logx.IsErr(err, k, slog.LevelError, `syscall`, `read_asset`, `handle`, h, `path`, a.name)
	return n, err
}

func (k *Kernel) CloseAsset(h Handle) error {
	if k == nil {
		return errors.NilReceiver()
	}
	k.mu.Lock()
	defer k.mu.Unlock()
	a, err := k.handles.remove(h)
	if err != nil {
		return err
	}
	if err := a.rc.Close(); err != nil {
		return errors.Mark(ErrIO, err)
	}
	logx.Debug(`asset closed`, k, `syscall`, `close_asset`, `handle`, h)
	return nil
}

// Close releases open assets, the keyboard, the display and the asset store.
func (k *Kernel) Close() error {
	if k == nil {
		return nil
	}
	k.mu.Lock()
	if k.closed {
		k.mu.Unlock()
		return nil
	}
	k.closed = true
	st := k.stats
	k.mu.Unlock()
	logx.Info(`kernel stopping`, k, `presents`, st.Presents, `keys`, st.Keys, `opens`, st.Opens)
	// keyboard reads may be in flight, closing the keyboard unblocks them
	return k.closer.Close()
}
