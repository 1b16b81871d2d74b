// Package halfblock draws frames with truecolor upper half block characters:
// every terminal cell shows two vertically stacked pixels.
package halfblock

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"log/slog"
	"strings"

	"github.com/muesli/termenv"

	"github.com/srlehn/dghost/internal/consts"
	"github.com/srlehn/dghost/internal/errors"
	"github.com/srlehn/dghost/internal/logx"
	"github.com/srlehn/dghost/resize/rdefault"
	"github.com/srlehn/dghost/sys"
)

func init() {
	sys.RegisterDisplay(consts.DisplayHalfblockName, func(cfg sys.DisplayConfig) (sys.Display, error) {
		return New(cfg)
	})
}

const upperHalfBlock = "▀"

// DefaultCells is the surface used when the terminal size is unknown.
var DefaultCells = image.Pt(80, 24)

var (
	_ sys.Display         = (*Display)(nil)
	_ logx.LoggerProvider = (*Display)(nil)
)

type Display struct {
	w       io.Writer
	out     *termenv.Output
	cells   image.Point
	rsz     sys.Resizer
	logger  *slog.Logger
	last    image.Point
	started bool
	sb      strings.Builder
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
		out:    termenv.NewOutput(cfg.Output, termenv.WithProfile(termenv.TrueColor)),
		cells:  cfg.Size,
		rsz:    rsz,
		logger: cfg.Logger,
	}, nil
}

func (d *Display) Name() string { return consts.DisplayHalfblockName }

func (d *Display) Logger() *slog.Logger { return d.logger }

func (d *Display) surfaceCells() image.Point {
	if d.cells.X > 0 && d.cells.Y > 0 {
		return d.cells
	}
	if cells, _, ok := sys.SurfaceSize(d.w); ok {
		return cells
	}
	return DefaultCells
}

func (d *Display) Show(fb *sys.Framebuffer) error {
	cells := d.surfaceCells()
	img, r, err := sys.Render(fb, image.Pt(cells.X, cells.Y*2), d.rsz)
	if err != nil {
		return err
	}
	if !d.started {
		d.out.AltScreen()
		d.out.HideCursor()
		d.started = true
	}
	if cells != d.last {
		logx.Debug(`surface`, d, `cols`, cells.X, `rows`, cells.Y, `area`, r.String())
		d.out.ClearScreen()
		d.last = cells
	}
	d.sb.Reset()
	d.encode(&d.sb, img, r)
	if _, err := io.WriteString(d.w, d.sb.String()); err != nil {
		return errors.Mark(sys.ErrDisplayUnavailable, err)
	}
	return nil
}

// encode writes the cells covering r, pixel rows 2y and 2y+1 go to cell row y.
func (d *Display) encode(sb *strings.Builder, img image.Image, r image.Rectangle) {
	at := func(x, y int) color.RGBA {
		if !(image.Point{x, y}.In(r)) {
			return color.RGBA{A: 0xff}
		}
		b := img.Bounds()
		return color.RGBAModel.Convert(img.At(b.Min.X+x-r.Min.X, b.Min.Y+y-r.Min.Y)).(color.RGBA)
	}
	for row := r.Min.Y / 2; row < (r.Max.Y+1)/2; row++ {
		fmt.Fprintf(sb, termenv.CSI+termenv.CursorPositionSeq, row+1, r.Min.X+1)
		for x := r.Min.X; x < r.Max.X; x++ {
			top, bottom := at(x, 2*row), at(x, 2*row+1)
			sb.WriteString(d.out.String(upperHalfBlock).
				Foreground(d.out.Color(hex(top))).
				Background(d.out.Color(hex(bottom))).
				String())
		}
	}
}

func hex(c color.RGBA) string { return fmt.Sprintf(`#%02x%02x%02x`, c.R, c.G, c.B) }

// Close leaves the alternate screen.
func (d *Display) Close() error {
	if d == nil || !d.started {
		return nil
	}
	d.out.ShowCursor()
	d.out.ExitAltScreen()
	d.started = false
	return nil
}
