// Package app runs a demo application on top of the kernel boundary: it
// renders a frame, presents it and polls keys until a quit key arrives.
package app

import (
	"context"
	"log/slog"
	"slices"
	"time"

	"github.com/srlehn/dghost/internal/consts"
	"github.com/srlehn/dghost/internal/errors"
	"github.com/srlehn/dghost/internal/logx"
	"github.com/srlehn/dghost/sys"
)

// State is the lifecycle state of a Loop.
type State int

const (
	// Idle: nothing presented yet.
	Idle State = iota
	Running
	// Terminated is final.
	Terminated
)

func (s State) String() string {
	switch s {
	case Idle:
		return `idle`
	case Running:
		return `running`
	case Terminated:
		return `terminated`
	}
	return `unknown`
}

var ErrTerminated = consts.ErrTerminated

// DefaultQuitKeys end the loop unless WithQuitKeys overrides them.
var DefaultQuitKeys = []sys.Key{'q', 'Q', sys.KeyInterrupt}

const DefaultIdle = 10 * time.Millisecond

var _ logx.LoggerProvider = (*Loop)(nil)

// Loop owns its framebuffer and drives a sys.Syscalls. It is not safe for
// concurrent use.
type Loop struct {
	sys      sys.Syscalls
	fb       *sys.Framebuffer
	pattern  Pattern
	quitKeys []sys.Key
	idle     time.Duration
	animate  time.Duration
	overlay  string
	logger   *slog.Logger
	state    State
	frame    int
}

// New creates a loop rendering width x height frames.
func New(s sys.Syscalls, width, height int, opts ...Option) (*Loop, error) {
	if s == nil {
		return nil, errors.NilParam()
	}
	fb, err := sys.NewFramebuffer(width, height)
	if err != nil {
		return nil, err
	}
	l := &Loop{
		sys:      s,
		fb:       fb,
		pattern:  Gradient,
		quitKeys: DefaultQuitKeys,
		idle:     DefaultIdle,
	}
	if lp, ok := s.(logx.LoggerProvider); ok {
		l.logger = lp.Logger()
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(l); err != nil {
			return nil, err
		}
	}
	return l, nil
}

func (l *Loop) Logger() *slog.Logger {
	if l == nil {
		return nil
	}
	return l.logger
}

func (l *Loop) State() State { return l.state }

// Framebuffer returns the buffer the loop renders into.
func (l *Loop) Framebuffer() *sys.Framebuffer { return l.fb }

// Frames is the number of frames presented.
func (l *Loop) Frames() int { return l.frame }

// Run presents the first frame and polls keys until a quit key is read.
// Errors of the boundary end Run. A done ctx ends Run with ctx.Err(); the loop
// stays Running and a later Run continues polling.
func (l *Loop) Run(ctx context.Context) error {
	if l == nil {
		return errors.NilReceiver()
	}
	if l.state == Terminated {
		return errors.New(ErrTerminated)
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if l.state == Idle {
		if err := l.present(); err != nil {
			return err
		}
		l.setState(Running)
	}
	last := time.Now()
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		k, ok, err := l.sys.ReadKey(ctx)
		if err != nil {
			logx.IsErr(err, l, slog.LevelError, `state`, l.state.String())
			return err
		}
		if ok {
			if slices.Contains(l.quitKeys, k) {
				logx.Info(`quit key`, l, `key`, k.String(), `frames`, l.frame)
				l.setState(Terminated)
				return nil
			}
			logx.Debug(`key ignored`, l, `key`, k.String())
			continue
		}
		if l.animate > 0 && time.Since(last) >= l.animate {
			if err := l.present(); err != nil {
				return err
			}
			last = time.Now()
			continue
		}
		if err := l.wait(ctx); err != nil {
			return err
		}
	}
}

func (l *Loop) present() error {
	l.pattern(l.fb, l.frame)
	drawStatusBar(l.fb, l.overlay)
	if err := l.sys.Present(l.fb.Pix, l.fb.Width, l.fb.Height); err != nil {
		logx.IsErr(err, l, slog.LevelError, `frame`, l.frame)
		return err
	}
	l.frame++
	return nil
}

// wait is the idle step between empty polls.
func (l *Loop) wait(ctx context.Context) error {
	if l.idle <= 0 {
		return nil
	}
	t := time.NewTimer(l.idle)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func (l *Loop) setState(s State) {
	logx.Debug(`state`, l, `from`, l.state.String(), `to`, s.String())
	l.state = s
}
