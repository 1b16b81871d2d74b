// Package sixel draws frames as DEC sixel graphics.
package sixel

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"log/slog"

	sixel "github.com/mattn/go-sixel"

	"github.com/srlehn/dghost/internal/errors"
	"github.com/srlehn/dghost/internal/logx"
	"github.com/srlehn/dghost/resize/rdefault"
	"github.com/srlehn/dghost/sys"
)

const Name = `sixel`

func init() {
	sys.RegisterDisplay(Name, func(cfg sys.DisplayConfig) (sys.Display, error) {
		return New(cfg)
	})
}

var (
	_ sys.Display         = (*Display)(nil)
	_ logx.LoggerProvider = (*Display)(nil)
)

type Display struct {
	w       io.Writer
	size    image.Point
	rsz     sys.Resizer
	logger  *slog.Logger
	buf     bytes.Buffer
	started bool
	// Dither enables error diffusion in the palette reduction.
	Dither bool
}

func New(cfg sys.DisplayConfig) (*Display, error) {
	if cfg.Output == nil {
		return nil, errors.New(`no terminal output`)
	}
	rsz := cfg.Resizer
	if rsz == nil {
		rsz = &rdefault.Resizer{}
	}
	return &Display{
		w:      cfg.Output,
		size:   cfg.Size,
		rsz:    rsz,
		logger: cfg.Logger,
	}, nil
}

func (d *Display) Name() string         { return Name }
func (d *Display) Logger() *slog.Logger { return d.logger }

// layout returns the pixel surface and the cell the image starts in.
func (d *Display) layout(frame image.Point) (surface image.Point, cell func(image.Point) image.Point) {
	cells, pixels, ok := sys.SurfaceSize(d.w)
	ok = ok && pixels.X > 0 && pixels.Y > 0
	cell = func(image.Point) image.Point { return image.Point{} }
	if ok {
		cell = func(p image.Point) image.Point {
			return image.Pt(p.X*cells.X/pixels.X, p.Y*cells.Y/pixels.Y)
		}
	}
	switch {
	case d.size.X > 0 && d.size.Y > 0:
		return d.size, cell
	case ok:
		return pixels, cell
	default:
		return frame, cell
	}
}

func (d *Display) Show(fb *sys.Framebuffer) error {
	if err := fb.Validate(); err != nil {
		return err
	}
	surface, cell := d.layout(fb.Bounds().Size())
	img, r, err := sys.Render(fb, surface, d.rsz)
	if err != nil {
		return err
	}
	d.buf.Reset()
	if !d.started {
		// hide cursor, clear
		d.buf.WriteString("\033[?25l\033[2J")
		d.started = true
	}
	pos := cell(r.Min)
	// "\033[?8452h" leaves the cursor right of the image instead of below it,
	// a frame touching the last line does not scroll the screen.
	fmt.Fprintf(&d.buf, "\033[%d;%dH\033[?8452h", pos.Y+1, pos.X+1)
	enc := sixel.NewEncoder(&d.buf)
	enc.Dither = d.Dither
	if err := enc.Encode(img); err != nil {
		return errors.New(err)
	}
	if _, err := d.w.Write(d.buf.Bytes()); err != nil {
		return errors.Mark(sys.ErrDisplayUnavailable, err)
	}
	return nil
}

func (d *Display) Close() error {
	if !d.started {
		return nil
	}
	_, err := io.WriteString(d.w, "\033[?8452l\033[?25h")
	if err != nil {
		return errors.New(err)
	}
	return nil
}
