// Package resize collects the scalers displays use to fit frames onto surfaces
// smaller or larger than an integer multiple of the frame.
//
// Implementations live in sub packages and register themselves by name.
package resize

import (
	"image"
	"image/draw"
	"strings"
	"sync"

	"github.com/srlehn/dghost/internal/consts"
	"github.com/srlehn/dghost/internal/errors"
	"github.com/srlehn/dghost/internal/util"
	"github.com/srlehn/dghost/sys"
)

// Filter is the interpolation a resizer uses.
type Filter int

const (
	// Nearest keeps hard pixel edges, the right choice for low resolution frames.
	Nearest Filter = iota
	Bilinear
	Lanczos
)

func (f Filter) String() string {
	switch f {
	case Nearest:
		return `nearest`
	case Bilinear:
		return `bilinear`
	case Lanczos:
		return `lanczos`
	}
	return `unknown`
}

func ParseFilter(s string) (Filter, error) {
	for _, f := range []Filter{Nearest, Bilinear, Lanczos} {
		if strings.EqualFold(s, f.String()) {
			return f, nil
		}
	}
	return Nearest, errors.Errorf(`unknown resize filter %q`, s)
}

type Provider func(f Filter) sys.Resizer

var (
	mu         sync.RWMutex
	registered = make(map[string]Provider)
)

func Register(name string, prov Provider) {
	if prov == nil {
		return
	}
	mu.Lock()
	defer mu.Unlock()
	registered[strings.ToLower(name)] = prov
}

// New returns the resizer registered as name using filter f.
func New(name string, f Filter) (sys.Resizer, error) {
	mu.RLock()
	prov, ok := registered[strings.ToLower(name)]
	mu.RUnlock()
	if !ok {
		return nil, errors.Errorf(`no resizer named %q`, name)
	}
	return prov(f), nil
}

// Names lists the registered resizers.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	return util.MapsKeysSorted(registered)
}

// RGBA returns img as *image.RGBA with its origin at 0,0, converting if necessary.
func RGBA(img image.Image) *image.RGBA {
	if m, ok := img.(*image.RGBA); ok && m.Rect.Min == (image.Point{}) {
		return m
	}
	b := img.Bounds()
	m := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(m, m.Bounds(), img, b.Min, draw.Src)
	return m
}

// Check validates the arguments of a Resize call.
func Check(img image.Image, size image.Point) error {
	if img == nil {
		return errors.New(consts.ErrNilImage)
	}
	if size.X <= 0 || size.Y <= 0 {
		return errors.Errorf(`invalid target size %v`, size)
	}
	return nil
}
