package sys

import (
	"image"
	"io"
	"log/slog"
	"sync"

	"github.com/srlehn/dghost/internal/errors"
	"github.com/srlehn/dghost/internal/util"
)

// Display is the output device Present hands frames to.
//
// Show must have finished reading fb when it returns; the kernel reuses the
// frame storage for the next Present.
type Display interface {
	Name() string
	Show(fb *Framebuffer) error
	Close() error
}

// Resizer scales an image to size.
type Resizer interface {
	Resize(img image.Image, size image.Point) (image.Image, error)
}

// DisplayConfig carries the settings a DisplayProvider may need.
type DisplayConfig struct {
	// Output is where terminal displays write escape sequences to.
	Output io.Writer
	// TTYName is the terminal device, used for size queries.
	TTYName string
	// Dir is the target directory of file based displays.
	Dir string
	// Device is the device node of hardware displays (e.g. /dev/fb0).
	Device string
	// Size overrides the surface size in the display's own units (cells for
	// text displays, pixels otherwise). Zero asks the device.
	Size    image.Point
	Resizer Resizer
	Logger  *slog.Logger
}

type DisplayProvider func(cfg DisplayConfig) (Display, error)

var (
	displaysMu         sync.RWMutex
	displaysRegistered = make(map[string]DisplayProvider)
)

// RegisterDisplay makes a display implementation available by name.
func RegisterDisplay(name string, prov DisplayProvider) {
	if prov == nil {
		return
	}
	displaysMu.Lock()
	defer displaysMu.Unlock()
	displaysRegistered[normalizeName(name)] = prov
}

// DisplayByName returns the provider registered for name.
func DisplayByName(name string) (DisplayProvider, bool) {
	displaysMu.RLock()
	defer displaysMu.RUnlock()
	prov, ok := displaysRegistered[normalizeName(name)]
	return prov, ok
}

// Displays lists the names of the registered display implementations.
func Displays() []string {
	displaysMu.RLock()
	defer displaysMu.RUnlock()
	return util.MapsKeysSorted(displaysRegistered)
}

// NewDisplay creates the display registered for name.
func NewDisplay(name string, cfg DisplayConfig) (Display, error) {
	prov, ok := DisplayByName(name)
	if !ok {
		return nil, errors.Mark(ErrDisplayUnavailable, errors.Errorf(`no display named %q`, name))
	}
	d, err := prov(cfg)
	if err != nil {
		return nil, errors.Mark(ErrDisplayUnavailable, err)
	}
	return d, nil
}

// Fit returns the area a frame of size frame occupies on a surface of size surface:
// the frame is scaled by the largest integer factor that fits (at least 1) and
// centered. Frames larger than the surface are scaled down keeping their aspect
// ratio.
func Fit(frame, surface image.Point) image.Rectangle {
	if frame.X <= 0 || frame.Y <= 0 || surface.X <= 0 || surface.Y <= 0 {
		return image.Rectangle{}
	}
	var size image.Point
	if scale := min(surface.X/frame.X, surface.Y/frame.Y); scale >= 1 {
		size = frame.Mul(scale)
	} else if frame.X*surface.Y > surface.X*frame.Y {
		// width bound
		size = image.Pt(surface.X, max(1, frame.Y*surface.X/frame.X))
	} else {
		size = image.Pt(max(1, frame.X*surface.Y/frame.Y), surface.Y)
	}
	origin := surface.Sub(size).Div(2)
	return image.Rectangle{Min: origin, Max: origin.Add(size)}
}

// Scale returns img resized to size, or img itself if no resizing is needed.
func Scale(img image.Image, size image.Point, rsz Resizer) (image.Image, error) {
	if img == nil {
		return nil, errors.NilParam()
	}
	if img.Bounds().Size() == size {
		return img, nil
	}
	if rsz == nil {
		return nil, errors.New(`nil resizer`)
	}
	return rsz.Resize(img, size)
}

// Render lays fb out on a surface of the given size (see Fit) and returns the
// scaled frame together with the target area.
func Render(fb *Framebuffer, surface image.Point, rsz Resizer) (image.Image, image.Rectangle, error) {
	if err := fb.Validate(); err != nil {
		return nil, image.Rectangle{}, err
	}
	r := Fit(fb.Bounds().Size(), surface)
	if r.Empty() {
		return nil, r, errors.Mark(ErrDisplayUnavailable, errors.Errorf(`surface %v too small`, surface))
	}
	img, err := Scale(fb, r.Size(), rsz)
	if err != nil {
		return nil, r, err
	}
	return img, r, nil
}

// SurfaceSize asks w for its size if it is a terminal.
func SurfaceSize(w io.Writer) (cells, pixels image.Point, ok bool) {
	szr, isSizer := w.(TTYSizer)
	if !isSizer {
		return image.Point{}, image.Point{}, false
	}
	cols, rows, xp, yp, err := szr.SizePixel()
	if err != nil || cols <= 0 || rows <= 0 {
		return image.Point{}, image.Point{}, false
	}
	return image.Pt(cols, rows), image.Pt(xp, yp), true
}
