// Package xdraw provides a resizer implementation using golang.org/x/image/draw.
package xdraw

import (
	"image"

	"golang.org/x/image/draw"

	"github.com/srlehn/dghost/resize"
	"github.com/srlehn/dghost/sys"
)

func init() {
	resize.Register(`xdraw`, func(f resize.Filter) sys.Resizer { return New(f) })
}

// resizer uses "golang.org/x/image/draw"
type resizer struct {
	scaler draw.Scaler
}

var _ sys.Resizer = (*resizer)(nil)

func New(f resize.Filter) sys.Resizer {
	switch f {
	case resize.Bilinear:
		return ApproxBiLinear()
	case resize.Lanczos:
		return CatmullRom()
	}
	return NearestNeighbor()
}

// NearestNeighbor keeps pixel edges (fastest).
func NearestNeighbor() sys.Resizer { return &resizer{scaler: draw.NearestNeighbor} }

// ApproxBiLinear balances speed and quality.
func ApproxBiLinear() sys.Resizer { return &resizer{scaler: draw.ApproxBiLinear} }

// CatmullRom has the highest quality and is the slowest.
func CatmullRom() sys.Resizer { return &resizer{scaler: draw.CatmullRom} }

func (r *resizer) Resize(img image.Image, size image.Point) (image.Image, error) {
	if err := resize.Check(img, size); err != nil {
		return nil, err
	}
	dst := image.NewRGBA(image.Rectangle{Max: size})
	r.scaler.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst, nil
}
