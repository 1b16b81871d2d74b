package app

import (
	"log/slog"
	"time"

	"github.com/srlehn/dghost/internal/errors"
	"github.com/srlehn/dghost/sys"
)

type Option func(*Loop) error

// WithQuitKeys replaces the keys ending the loop.
func WithQuitKeys(keys ...sys.Key) Option {
	return func(l *Loop) error {
		if len(keys) == 0 {
			return errors.New(`no quit keys`)
		}
		l.quitKeys = append([]sys.Key(nil), keys...)
		return nil
	}
}

// WithIdle sets the pause between polls that returned no key.
func WithIdle(d time.Duration) Option {
	return func(l *Loop) error {
		if d < 0 {
			return errors.Errorf(`negative idle duration %s`, d)
		}
		l.idle = d
		return nil
	}
}

// WithPattern sets the frame content.
func WithPattern(p Pattern) Option {
	return func(l *Loop) error {
		if p == nil {
			return errors.NilParam()
		}
		l.pattern = p
		return nil
	}
}

// WithAnimate presents a new frame every interval while no key is pending.
// It needs a NonBlocking kernel.
func WithAnimate(interval time.Duration) Option {
	return func(l *Loop) error {
		if interval < 0 {
			return errors.Errorf(`negative frame interval %s`, interval)
		}
		l.animate = interval
		return nil
	}
}

// WithOverlay draws text in a status bar at the bottom of every frame.
func WithOverlay(text string) Option {
	return func(l *Loop) error { l.overlay = text; return nil }
}

func WithLogger(logger *slog.Logger) Option {
	return func(l *Loop) error { l.logger = logger; return nil }
}
