package gift

import (
	"image"

	"github.com/disintegration/gift"

	"github.com/srlehn/dghost/resize"
	"github.com/srlehn/dghost/sys"
)

func init() {
	resize.Register(`gift`, func(f resize.Filter) sys.Resizer { return &Resizer{Filter: f} })
}

// Resizer uses "github.com/disintegration/gift"
type Resizer struct {
	Filter resize.Filter
}

var _ sys.Resizer = (*Resizer)(nil)

func (r *Resizer) Resize(img image.Image, size image.Point) (image.Image, error) {
	if err := resize.Check(img, size); err != nil {
		return nil, err
	}
	var resampling gift.Resampling
	switch r.Filter {
	case resize.Bilinear:
		resampling = gift.LinearResampling
	case resize.Lanczos:
		resampling = gift.LanczosResampling
	default:
		resampling = gift.NearestNeighborResampling
	}
	m := image.NewRGBA(image.Rectangle{Max: size})
	gift.New(gift.Resize(size.X, size.Y, resampling)).Draw(m, img)
	return m, nil
}
