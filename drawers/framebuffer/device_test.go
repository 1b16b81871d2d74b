package framebuffer

import (
	"encoding/binary"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srlehn/dghost/internal/linux"
)

func fakeDevice(t *testing.T, bits uint32, w, h int) *device {
	t.Helper()
	v := linux.VarScreenInfo{XRes: uint32(w), YRes: uint32(h), BitsPerPixel: bits}
	switch bits {
	case 16:
		v.Red = linux.Bitfield{Offset: 11, Length: 5}
		v.Green = linux.Bitfield{Offset: 5, Length: 6}
		v.Blue = linux.Bitfield{Offset: 0, Length: 5}
	default:
		v.Red = linux.Bitfield{Offset: 16, Length: 8}
		v.Green = linux.Bitfield{Offset: 8, Length: 8}
		v.Blue = linux.Bitfield{Offset: 0, Length: 8}
	}
	// padded lines
	fix := linux.FixScreenInfo{LineLength: uint32(w*int(bits)/8 + 8)}
	mem := make([]byte, int(fix.LineLength)*h)
	for i := range mem {
		mem[i] = 0xaa
	}
	d, err := newDevice(mem, fix, v)
	require.NoError(t, err)
	return d
}

func TestBlit32(t *testing.T) {
	d := fakeDevice(t, 32, 8, 4)
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(1, 1, color.RGBA{0x11, 0x22, 0x33, 0xff})
	d.blit(img, image.Rect(3, 1, 5, 3))

	at := func(x, y int) uint32 {
		return binary.LittleEndian.Uint32(d.mem[y*d.lineLength+x*4:])
	}
	assert.Equal(t, uint32(0x112233), at(4, 2))
	assert.Equal(t, uint32(0), at(3, 1))
	assert.Equal(t, uint32(0), at(0, 0), "visible area cleared")
	// padding is left alone
	assert.Equal(t, byte(0xaa), d.mem[d.lineLength-1])
}

func TestBlit16(t *testing.T) {
	d := fakeDevice(t, 16, 4, 2)
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.Set(0, 0, color.RGBA{0xff, 0x80, 0x08, 0xff})
	d.blit(img, image.Rect(1, 1, 2, 2))
	got := binary.LittleEndian.Uint16(d.mem[d.lineLength+2:])
	assert.Equal(t, uint16(0x1f<<11|0x20<<5|0x01), got)
}

func TestBlit24(t *testing.T) {
	d := fakeDevice(t, 24, 2, 1)
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.Set(0, 0, color.RGBA{0x01, 0x02, 0x03, 0xff})
	d.blit(img, image.Rect(1, 0, 2, 1))
	assert.Equal(t, []byte{0x03, 0x02, 0x01}, d.mem[3:6])
}

func TestNewDevice(t *testing.T) {
	_, err := newDevice(nil, linux.FixScreenInfo{LineLength: 8}, linux.VarScreenInfo{XRes: 2, BitsPerPixel: 8})
	assert.Error(t, err)
	_, err = newDevice(nil, linux.FixScreenInfo{LineLength: 4}, linux.VarScreenInfo{XRes: 2, BitsPerPixel: 32})
	assert.Error(t, err)
}
