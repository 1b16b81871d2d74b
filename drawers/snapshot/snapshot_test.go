package snapshot_test

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"

	"github.com/srlehn/dghost/drawers/snapshot"
	"github.com/srlehn/dghost/sys"
)

func frame(t *testing.T) *sys.Framebuffer {
	t.Helper()
	fb, err := sys.NewFramebuffer(4, 2)
	require.NoError(t, err)
	fb.Fill(sys.Pack(10, 20, 30))
	return fb
}

func TestPNG(t *testing.T) {
	d, err := snapshot.New(t.TempDir(), snapshot.PNG, image.Point{}, nil)
	require.NoError(t, err)
	fb := frame(t)
	require.NoError(t, d.Show(fb))
	require.NoError(t, d.Show(fb))
	assert.Equal(t, 2, d.Frames())

	f, err := os.Open(d.Path(1))
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, image.Pt(4, 2), img.Bounds().Size())
	assert.Equal(t, color.RGBA{R: 10, G: 20, B: 30, A: 0xff}, color.RGBAModel.Convert(img.At(3, 1)))
}

func TestBMPScaled(t *testing.T) {
	d, err := snapshot.New(t.TempDir(), snapshot.BMP, image.Pt(12, 8), nil)
	require.NoError(t, err)
	require.NoError(t, d.Show(frame(t)))

	f, err := os.Open(d.Path(0))
	require.NoError(t, err)
	defer f.Close()
	img, err := bmp.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, image.Pt(12, 8), img.Bounds().Size())
	// 3x scale, centered vertically: rows 1..6
	assert.Equal(t, color.RGBA{A: 0xff}, color.RGBAModel.Convert(img.At(0, 0)))
	assert.Equal(t, color.RGBA{R: 10, G: 20, B: 30, A: 0xff}, color.RGBAModel.Convert(img.At(11, 1)))
}

func TestRegistered(t *testing.T) {
	for _, name := range []string{`png`, `bmp`} {
		d, err := sys.NewDisplay(name, sys.DisplayConfig{Dir: t.TempDir()})
		require.NoError(t, err)
		assert.Equal(t, name, d.Name())
	}
}
