// Package framebuffer draws frames into the memory of a Linux framebuffer
// device (/dev/fb*).
package framebuffer

import (
	"encoding/binary"
	"image"
	"image/color"

	"github.com/srlehn/dghost/internal/errors"
	"github.com/srlehn/dghost/internal/linux"
)

const Name = `framebuffer`

// device is a mapped framebuffer with its pixel layout.
type device struct {
	mem        []byte
	lineLength int
	bpp        int // bytes per pixel
	offset     image.Point
	size       image.Point

	red, green, blue linux.Bitfield

	cleared bool
}

func newDevice(mem []byte, fix linux.FixScreenInfo, v linux.VarScreenInfo) (*device, error) {
	bpp := int(v.BitsPerPixel) / 8
	switch bpp {
	case 2, 3, 4:
	default:
		return nil, errors.Errorf(`unsupported pixel depth: %d bits`, v.BitsPerPixel)
	}
	d := &device{
		mem:        mem,
		lineLength: int(fix.LineLength),
		bpp:        bpp,
		offset:     image.Pt(int(v.XOffset), int(v.YOffset)),
		size:       image.Pt(int(v.XRes), int(v.YRes)),
		red:        v.Red,
		green:      v.Green,
		blue:       v.Blue,
	}
	if d.lineLength < d.size.X*bpp {
		return nil, errors.Errorf(`line length %d too short for %d pixels`, d.lineLength, d.size.X)
	}
	return d, nil
}

func channel(v uint8, f linux.Bitfield) uint32 {
	var c uint32
	switch {
	case f.Length == 0:
		return 0
	case f.Length < 8:
		c = uint32(v) >> (8 - f.Length)
	default:
		c = uint32(v) << (f.Length - 8)
	}
	return c << f.Offset
}

func (d *device) pack(c color.RGBA) uint32 {
	return channel(c.R, d.red) | channel(c.G, d.green) | channel(c.B, d.blue)
}

func (d *device) put(x, y int, p uint32) {
	i := (d.offset.Y+y)*d.lineLength + (d.offset.X+x)*d.bpp
	if i < 0 || i+d.bpp > len(d.mem) {
		return
	}
	switch d.bpp {
	case 4:
		binary.LittleEndian.PutUint32(d.mem[i:], p)
	case 3:
		d.mem[i], d.mem[i+1], d.mem[i+2] = byte(p), byte(p>>8), byte(p>>16)
	case 2:
		binary.LittleEndian.PutUint16(d.mem[i:], uint16(p))
	}
}

func (d *device) clear() {
	for y := range d.size.Y {
		start := (d.offset.Y+y)*d.lineLength + d.offset.X*d.bpp
		end := start + d.size.X*d.bpp
		if start < 0 || end > len(d.mem) {
			return
		}
		clear(d.mem[start:end])
	}
	d.cleared = true
}

// blit draws img into r of the visible screen.
func (d *device) blit(img image.Image, r image.Rectangle) {
	if !d.cleared {
		d.clear()
	}
	b := img.Bounds()
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			c := color.RGBAModel.Convert(img.At(b.Min.X+x-r.Min.X, b.Min.Y+y-r.Min.Y)).(color.RGBA)
			d.put(x, y, d.pack(c))
		}
	}
}
