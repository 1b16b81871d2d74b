package imaging

import (
	"image"

	"github.com/disintegration/imaging"

	"github.com/srlehn/dghost/resize"
	"github.com/srlehn/dghost/sys"
)

func init() {
	resize.Register(`imaging`, func(f resize.Filter) sys.Resizer { return &Resizer{Filter: f} })
}

// Resizer uses "github.com/disintegration/imaging"
type Resizer struct {
	Filter resize.Filter
}

var _ sys.Resizer = (*Resizer)(nil)

func (r *Resizer) Resize(img image.Image, size image.Point) (image.Image, error) {
	if err := resize.Check(img, size); err != nil {
		return nil, err
	}
	filter := imaging.NearestNeighbor
	switch r.Filter {
	case resize.Bilinear:
		filter = imaging.Linear
	case resize.Lanczos:
		filter = imaging.Lanczos
	}
	return imaging.Resize(img, size.X, size.Y, filter), nil
}
