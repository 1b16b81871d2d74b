package halfblock_test

import (
	"bytes"
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srlehn/dghost/drawers/halfblock"
	"github.com/srlehn/dghost/sys"
)

func TestShow(t *testing.T) {
	var buf bytes.Buffer
	d, err := halfblock.New(sys.DisplayConfig{Output: &buf, Size: image.Pt(40, 12)})
	require.NoError(t, err)

	fb, err := sys.NewFramebuffer(32, 20)
	require.NoError(t, err)
	fb.Fill(sys.Pack(0xff, 0, 0))
	fb.Set(0, 1, color.White)
	require.NoError(t, d.Show(fb))

	out := buf.String()
	// 32x20 pixels on 40x24: origin 4,2 -> 10 cell rows starting at row 2
	assert.Equal(t, 32*10, strings.Count(out, "▀"))
	assert.Contains(t, out, "\x1b[2;5H")
	assert.Contains(t, out, "38;2;255;0;0")
	assert.Contains(t, out, "48;2;255;255;255")
	assert.Contains(t, out, "\x1b[?1049h")

	buf.Reset()
	require.NoError(t, d.Close())
	assert.Contains(t, buf.String(), "\x1b[?1049l")

	_, err = halfblock.New(sys.DisplayConfig{})
	assert.Error(t, err)
}

func TestTooSmall(t *testing.T) {
	var buf bytes.Buffer
	d, err := halfblock.New(sys.DisplayConfig{Output: &buf, Size: image.Pt(16, 5)})
	require.NoError(t, err)
	fb, err := sys.NewFramebuffer(320, 200)
	require.NoError(t, err)
	require.NoError(t, d.Show(fb))
	// downscaled to 16x10 pixels
	assert.Equal(t, 16*5, strings.Count(buf.String(), "▀"))
}
