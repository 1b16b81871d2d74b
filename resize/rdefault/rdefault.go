// Package rdefault picks a resizer: nearest neighbour scaling keeps the pixel
// look of low resolution frames, smoother filters go through rez on amd64.
package rdefault

import (
	"image"
	"runtime"

	"github.com/srlehn/dghost/resize"
	"github.com/srlehn/dghost/resize/rez"
	"github.com/srlehn/dghost/resize/xdraw"
	"github.com/srlehn/dghost/sys"
)

func init() {
	resize.Register(`default`, func(f resize.Filter) sys.Resizer { return &Resizer{Filter: f} })
}

type Resizer struct {
	Filter resize.Filter
}

var _ sys.Resizer = (*Resizer)(nil)

func (r *Resizer) Resize(img image.Image, size image.Point) (image.Image, error) {
	if r.Filter == resize.Nearest || runtime.GOARCH != `amd64` {
		return xdraw.New(r.Filter).Resize(img, size)
	}
	// use SIMD assembly if possible
	imgRet, err := (&rez.Resizer{Filter: r.Filter}).Resize(img, size)
	if err != nil {
		return xdraw.New(r.Filter).Resize(img, size)
	}
	return imgRet, nil
}
