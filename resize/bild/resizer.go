package bild

import (
	"image"

	"github.com/anthonynsimon/bild/transform"

	"github.com/srlehn/dghost/resize"
	"github.com/srlehn/dghost/sys"
)

func init() {
	resize.Register(`bild`, func(f resize.Filter) sys.Resizer { return &Resizer{Filter: f} })
}

// Resizer uses "github.com/anthonynsimon/bild/transform"
type Resizer struct {
	Filter resize.Filter
}

var _ sys.Resizer = (*Resizer)(nil)

func (r *Resizer) Resize(img image.Image, size image.Point) (image.Image, error) {
	if err := resize.Check(img, size); err != nil {
		return nil, err
	}
	filter := transform.NearestNeighbor
	switch r.Filter {
	case resize.Bilinear:
		filter = transform.Linear
	case resize.Lanczos:
		filter = transform.Lanczos
	}
	return transform.Resize(img, size.X, size.Y, filter), nil
}
