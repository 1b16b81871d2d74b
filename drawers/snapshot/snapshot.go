// Package snapshot provides displays writing every frame to a numbered image
// file, PNG or BMP.
package snapshot

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/image/bmp"

	"github.com/srlehn/dghost/internal/errors"
	"github.com/srlehn/dghost/resize/rdefault"
	"github.com/srlehn/dghost/sys"
)

func init() {
	for _, f := range []Format{PNG, BMP} {
		sys.RegisterDisplay(f.Name, func(cfg sys.DisplayConfig) (sys.Display, error) {
			return New(cfg.Dir, f, cfg.Size, cfg.Resizer)
		})
	}
}

// Format is an image file format.
type Format struct {
	Name   string
	Ext    string
	Encode func(w io.Writer, img image.Image) error
}

var (
	PNG = Format{Name: `png`, Ext: `.png`, Encode: png.Encode}
	BMP = Format{Name: `bmp`, Ext: `.bmp`, Encode: bmp.Encode}
)

var _ sys.Display = (*Display)(nil)

type Display struct {
	dir    string
	format Format
	size   image.Point
	rsz    sys.Resizer
	n      int
}

// New writes frames to dir, which is created if missing. A non-zero size
// scales frames to that size (see sys.Fit); otherwise they are stored as is.
func New(dir string, f Format, size image.Point, rsz sys.Resizer) (*Display, error) {
	if dir == `` {
		dir = `.`
	}
	if f.Encode == nil {
		return nil, errors.NilParam()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.New(err)
	}
	if rsz == nil {
		rsz = &rdefault.Resizer{}
	}
	return &Display{dir: dir, format: f, size: size, rsz: rsz}, nil
}

func (d *Display) Name() string { return d.format.Name }

// Path returns the file name of frame n (counting from 0).
func (d *Display) Path(n int) string {
	return filepath.Join(d.dir, fmt.Sprintf(`frame-%06d%s`, n, d.format.Ext))
}

func (d *Display) Show(fb *sys.Framebuffer) (err error) {
	if err := fb.Validate(); err != nil {
		return err
	}
	var img image.Image = fb
	if d.size != (image.Point{}) {
		scaled, r, err := sys.Render(fb, d.size, d.rsz)
		if err != nil {
			return err
		}
		canvas := image.NewRGBA(image.Rectangle{Max: d.size})
		draw.Draw(canvas, canvas.Bounds(), image.Black, image.Point{}, draw.Src)
		draw.Draw(canvas, r, scaled, scaled.Bounds().Min, draw.Src)
		img = canvas
	}
	f, err := os.Create(d.Path(d.n))
	if err != nil {
		return errors.Mark(sys.ErrDisplayUnavailable, err)
	}
	defer func() {
		if errClose := f.Close(); errClose != nil && err == nil {
			err = errors.New(errClose)
		}
	}()
	// the encoders read fb before returning
	if err := d.format.Encode(f, img); err != nil {
		return errors.New(err)
	}
	d.n++
	return nil
}

// Frames is the number of frames written.
func (d *Display) Frames() int { return d.n }

func (d *Display) Close() error { return nil }
