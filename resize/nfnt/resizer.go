package nfnt

import (
	"image"

	"github.com/nfnt/resize"

	rsz "github.com/srlehn/dghost/resize"
	"github.com/srlehn/dghost/sys"
)

func init() {
	rsz.Register(`nfnt`, func(f rsz.Filter) sys.Resizer { return &Resizer{Filter: f} })
}

// Resizer uses "github.com/nfnt/resize"
type Resizer struct {
	Filter rsz.Filter
}

var _ sys.Resizer = (*Resizer)(nil)

func (r *Resizer) Resize(img image.Image, size image.Point) (image.Image, error) {
	if err := rsz.Check(img, size); err != nil {
		return nil, err
	}
	interp := resize.NearestNeighbor
	switch r.Filter {
	case rsz.Bilinear:
		interp = resize.Bilinear
	case rsz.Lanczos:
		interp = resize.Lanczos3
	}
	return resize.Resize(uint(size.X), uint(size.Y), img, interp), nil
}
