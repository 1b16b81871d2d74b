package rez

import (
	"image"

	"github.com/bamiaux/rez"

	"github.com/srlehn/dghost/internal/errors"
	"github.com/srlehn/dghost/resize"
	"github.com/srlehn/dghost/sys"
)

func init() {
	resize.Register(`rez`, func(f resize.Filter) sys.Resizer { return &Resizer{Filter: f} })
}

// Resizer uses "github.com/bamiaux/rez". rez has no nearest neighbour filter,
// Nearest falls back to bilinear.
type Resizer struct {
	Filter resize.Filter
}

var _ sys.Resizer = (*Resizer)(nil)

func (r *Resizer) Resize(img image.Image, size image.Point) (image.Image, error) {
	if err := resize.Check(img, size); err != nil {
		return nil, err
	}
	filter := rez.NewBilinearFilter()
	if r.Filter == resize.Lanczos {
		filter = rez.NewLanczosFilter(3)
	}
	src := resize.RGBA(img)
	m := image.NewRGBA(image.Rectangle{Max: size})
	if err := rez.Convert(m, src, filter); err != nil {
		return nil, errors.New(err)
	}
	return m, nil
}
