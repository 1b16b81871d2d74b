package sys

import (
	"log/slog"
	"time"

	"github.com/srlehn/dghost/internal/errors"
	"github.com/srlehn/dghost/internal/logx"
)

type Option interface {
	ApplyOption(k *Kernel) error
}

var _ Option = (OptFunc)(nil)

type OptFunc func(*Kernel) error

func (o OptFunc) ApplyOption(k *Kernel) error { return o(k) }

var _ Option = (Options)(nil)

type Options []Option

func (o Options) ApplyOption(k *Kernel) error { return k.SetOptions([]Option(o)...) }

func (k *Kernel) SetOptions(opts ...Option) error {
	if k == nil {
		return errors.NilReceiver()
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt.ApplyOption(k); err != nil {
			return errors.New(err)
		}
	}
	return nil
}

// SetDisplay sets the display Present writes to. The kernel closes it on Close.
func SetDisplay(d Display) Option {
	return OptFunc(func(k *Kernel) error { k.display = d; return nil })
}

// SetKeyboard sets the key source of ReadKey. The kernel closes it on Close.
func SetKeyboard(kb Keyboard) Option {
	return OptFunc(func(k *Kernel) error { k.keyboard = kb; return nil })
}

// SetAssets sets the asset namespace. The kernel closes it on Close.
func SetAssets(s AssetStore) Option {
	return OptFunc(func(k *Kernel) error { k.assets = s; return nil })
}

func SetKeyPolicy(p KeyPolicy) Option {
	return OptFunc(func(k *Kernel) error {
		switch p {
		case Blocking, NonBlocking:
		default:
			return errors.Errorf(`invalid key policy %d`, p)
		}
		k.policy = p
		return nil
	})
}

// SetMaxHandles limits the number of simultaneously open assets. n <= 0 removes the limit.
func SetMaxHandles(n int) Option {
	return OptFunc(func(k *Kernel) error { k.handles.max = n; return nil })
}

// SetPresentRetries sets how often Present retries a busy display and the pause
// between attempts.
func SetPresentRetries(n int, backoff time.Duration) Option {
	return OptFunc(func(k *Kernel) error {
		if n < 0 || backoff < 0 {
			return errors.New(`negative retry setting`)
		}
		k.retries, k.backoff = n, backoff
		return nil
	})
}

func SetSLogger(h slog.Handler, enable bool) Option {
	return OptFunc(func(k *Kernel) error {
		if enable {
			if h == nil {
				k.logger = slog.Default()
			} else {
				k.logger = slog.New(h)
			}
		} else {
			k.logger = nil
		}
		return nil
	})
}

// SetLogFile appends the kernel log to the named file.
func SetLogFile(name string, debug bool) Option {
	return OptFunc(func(k *Kernel) error {
		lvl := slog.LevelInfo
		if debug {
			lvl = slog.LevelDebug
		}
		logger, f, err := logx.OpenFile(name, lvl)
		if err != nil {
			return err
		}
		k.logger = logger
		k.closer.AddClosers(f)
		return nil
	})
}
