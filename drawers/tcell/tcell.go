// Package tcell draws frames with half block cells on a tcell screen and reads
// key events from the same screen, so it serves as display and keyboard.
package tcell

import (
	"context"
	"image"
	"image/color"
	"log/slog"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/srlehn/dghost/internal/errors"
	"github.com/srlehn/dghost/internal/logx"
	"github.com/srlehn/dghost/resize/rdefault"
	"github.com/srlehn/dghost/sys"
)

const Name = `tcell`

func init() {
	sys.RegisterDisplay(Name, func(cfg sys.DisplayConfig) (sys.Display, error) {
		scr, err := newScreen(cfg.TTYName)
		if err != nil {
			return nil, err
		}
		return New(scr, cfg.Resizer, cfg.Logger)
	})
}

const keyQueueLen = 64

var (
	_ sys.Display         = (*Display)(nil)
	_ sys.Keyboard        = (*Display)(nil)
	_ logx.LoggerProvider = (*Display)(nil)
)

type Display struct {
	screen tcell.Screen
	rsz    sys.Resizer
	logger *slog.Logger
	keys   chan sys.Key
	done   chan struct{}
	start  sync.Once
	stop   sync.Once
}

// New initializes screen and takes ownership of it.
func New(screen tcell.Screen, rsz sys.Resizer, logger *slog.Logger) (*Display, error) {
	if screen == nil {
		return nil, errors.NilParam()
	}
	if err := screen.Init(); err != nil {
		return nil, errors.Mark(sys.ErrDisplayUnavailable, err)
	}
	screen.HideCursor()
	screen.Clear()
	if rsz == nil {
		rsz = &rdefault.Resizer{}
	}
	return &Display{
		screen: screen,
		rsz:    rsz,
		logger: logger,
		keys:   make(chan sys.Key, keyQueueLen),
		done:   make(chan struct{}),
	}, nil
}

func (d *Display) Name() string         { return Name }
func (d *Display) Logger() *slog.Logger { return d.logger }

func (d *Display) Show(fb *sys.Framebuffer) error {
	select {
	case <-d.done:
		return errors.Mark(sys.ErrDisplayUnavailable, errors.New(`screen closed`))
	default:
	}
	cols, rows := d.screen.Size()
	img, r, err := sys.Render(fb, image.Pt(cols, rows*2), d.rsz)
	if err != nil {
		return err
	}
	at := func(x, y int) tcell.Color {
		if !(image.Point{x, y}.In(r)) {
			return tcell.ColorBlack
		}
		b := img.Bounds()
		c := color.RGBAModel.Convert(img.At(b.Min.X+x-r.Min.X, b.Min.Y+y-r.Min.Y)).(color.RGBA)
		return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
	}
	d.screen.Clear()
	for row := r.Min.Y / 2; row < (r.Max.Y+1)/2; row++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			st := tcell.StyleDefault.Foreground(at(x, 2*row)).Background(at(x, 2*row+1))
			d.screen.SetContent(x, row, '▀', nil, st)
		}
	}
	d.screen.Show()
	return nil
}

func (d *Display) pump() {
	defer close(d.keys)
	for {
		ev := d.screen.PollEvent()
		switch ev := ev.(type) {
		case nil:
			// screen finalized
			return
		case *tcell.EventResize:
			d.screen.Sync()
		case *tcell.EventKey:
			k, ok := keyOf(ev)
			if !ok {
				logx.Debug(`unmapped key`, d, `key`, ev.Name())
				continue
			}
			select {
			case d.keys <- k:
			case <-d.done:
				return
			}
		}
	}
}

// keyOf maps tcell key events to key codes. Control keys use their ASCII code.
func keyOf(ev *tcell.EventKey) (sys.Key, bool) {
	if ev.Key() == tcell.KeyRune {
		return sys.Key(ev.Rune()), ev.Rune() != 0
	}
	// KeyNUL collides with sys.KeyNone
	if k := ev.Key(); k > 0 && k < 0x80 {
		return sys.Key(k), true
	}
	return sys.KeyNone, false
}

func (d *Display) ReadKey(ctx context.Context, block bool) (sys.Key, bool, error) {
	select {
	case <-d.done:
		return sys.KeyNone, false, errors.Mark(sys.ErrInputClosed, errors.New(`screen closed`))
	default:
	}
	d.start.Do(func() { go d.pump() })
	if ctx == nil {
		ctx = context.Background()
	}
	if !block {
		select {
		case k, ok := <-d.keys:
			return received(k, ok)
		default:
			return sys.KeyNone, false, nil
		}
	}
	select {
	case k, ok := <-d.keys:
		return received(k, ok)
	case <-d.done:
		return sys.KeyNone, false, errors.Mark(sys.ErrInputClosed, errors.New(`screen closed`))
	case <-ctx.Done():
		return sys.KeyNone, false, ctx.Err()
	}
}

func received(k sys.Key, ok bool) (sys.Key, bool, error) {
	if !ok {
		return sys.KeyNone, false, errors.Mark(sys.ErrInputClosed, errors.New(`screen finalized`))
	}
	return k, true, nil
}

// Close finalizes the screen. Display and keyboard share it, closing either
// closes both.
func (d *Display) Close() error {
	d.stop.Do(func() {
		close(d.done)
		d.screen.Fini()
	})
	return nil
}
