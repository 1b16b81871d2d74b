package sys

import (
	"image"
	"image/color"
	"image/draw"
)

// BytesPerSample is the size of one packed 0x00RRGGBB sample.
const BytesPerSample = 4

// Framebuffer is a row-major grid of packed 0x00RRGGBB samples.
// The top byte of a sample is ignored.
type Framebuffer struct {
	Pix    []uint32
	Width  int
	Height int
}

var (
	_ image.Image = (*Framebuffer)(nil)
	_ draw.Image  = (*Framebuffer)(nil)
)

// NewFramebuffer allocates a zeroed width x height framebuffer.
func NewFramebuffer(width, height int) (*Framebuffer, error) {
	if width <= 0 || height <= 0 {
		return nil, contractErrorf(`framebuffer dimensions %dx%d not positive`, width, height)
	}
	if width > maxDimension/height {
		return nil, contractErrorf(`framebuffer dimensions %dx%d too large`, width, height)
	}
	return &Framebuffer{
		Pix:    make([]uint32, width*height),
		Width:  width,
		Height: height,
	}, nil
}

const maxDimension = 1 << 28

// checkDims verifies that a buffer of n samples holds a width x height frame.
func checkDims(n, width, height int) error {
	if width <= 0 || height <= 0 {
		return contractErrorf(`dimensions %dx%d not positive`, width, height)
	}
	if width > n/height {
		return contractErrorf(`dimensions %dx%d need %d bytes, buffer holds %d bytes`,
			width, height, int64(width)*int64(height)*BytesPerSample, int64(n)*BytesPerSample)
	}
	return nil
}

// Validate checks the declared dimensions against the buffer capacity.
func (f *Framebuffer) Validate() error {
	if f == nil {
		return contractErrorf(`nil framebuffer`)
	}
	return checkDims(len(f.Pix), f.Width, f.Height)
}

// SizeBytes is the size of the visible frame in bytes.
func (f *Framebuffer) SizeBytes() int {
	if f == nil {
		return 0
	}
	return f.Width * f.Height * BytesPerSample
}

func Pack(r, g, b uint8) uint32 { return uint32(r)<<16 | uint32(g)<<8 | uint32(b) }

func Unpack(p uint32) (r, g, b uint8) { return uint8(p >> 16), uint8(p >> 8), uint8(p) }

func (f *Framebuffer) ColorModel() color.Model { return color.RGBAModel }

func (f *Framebuffer) Bounds() image.Rectangle {
	if f == nil {
		return image.Rectangle{}
	}
	return image.Rect(0, 0, f.Width, f.Height)
}

func (f *Framebuffer) At(x, y int) color.Color {
	if f == nil || !(image.Point{x, y}.In(f.Bounds())) {
		return color.RGBA{}
	}
	r, g, b := Unpack(f.Pix[y*f.Width+x])
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

func (f *Framebuffer) Set(x, y int, c color.Color) {
	if f == nil || c == nil || !(image.Point{x, y}.In(f.Bounds())) {
		return
	}
	rgba := color.RGBAModel.Convert(c).(color.RGBA)
	f.Pix[y*f.Width+x] = Pack(rgba.R, rgba.G, rgba.B)
}

// PixAt returns the packed sample at x, y, 0 outside of the frame.
func (f *Framebuffer) PixAt(x, y int) uint32 {
	if f == nil || !(image.Point{x, y}.In(f.Bounds())) {
		return 0
	}
	return f.Pix[y*f.Width+x]
}

// Fill sets every sample of the frame to p.
func (f *Framebuffer) Fill(p uint32) {
	if f == nil {
		return
	}
	n := min(len(f.Pix), max(f.Width*f.Height, 0))
	for i := range f.Pix[:n] {
		f.Pix[i] = p
	}
}

// copyFrom reuses f's storage for a copy of buf.
func (f *Framebuffer) copyFrom(buf []uint32, width, height int) {
	n := width * height
	if cap(f.Pix) < n {
		f.Pix = make([]uint32, n)
	}
	f.Pix = f.Pix[:n]
	copy(f.Pix, buf[:n])
	f.Width, f.Height = width, height
}
