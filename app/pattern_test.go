package app_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srlehn/dghost/app"
	"github.com/srlehn/dghost/sys"
)

func TestGradient(t *testing.T) {
	for _, size := range [][2]int{{320, 200}, {256, 256}, {1, 1}, {7, 3}} {
		fb, err := sys.NewFramebuffer(size[0], size[1])
		require.NoError(t, err)
		rng := rand.New(rand.NewPCG(1, 2))
		for i := range fb.Pix {
			fb.Pix[i] = rng.Uint32()
		}
		app.Gradient(fb, 0)

		r0, g0, b0 := sys.Unpack(fb.PixAt(0, 0))
		assert.Zero(t, r0)
		assert.Zero(t, g0)
		assert.Equal(t, uint8(128), b0)
		for y := 0; y < fb.Height; y++ {
			for x := 0; x < fb.Width; x++ {
				r, g, b := sys.Unpack(fb.PixAt(x, y))
				require.Equal(t, uint8(128), b)
				require.Equal(t, uint8(x*255/fb.Width), r)
				require.Equal(t, uint8(y*255/fb.Height), g)
				assert.Zero(t, fb.PixAt(x, y)>>24)
				if x > 0 {
					rl, _, _ := sys.Unpack(fb.PixAt(x-1, y))
					require.LessOrEqual(t, rl, r)
				}
				if y > 0 {
					_, gu, _ := sys.Unpack(fb.PixAt(x, y-1))
					require.LessOrEqual(t, gu, g)
				}
			}
		}
	}

	fb, err := sys.NewFramebuffer(256, 256)
	require.NoError(t, err)
	app.Gradient(fb, 0)
	r, g, _ := sys.Unpack(fb.PixAt(255, 255))
	assert.Equal(t, uint8(254), r)
	assert.Equal(t, uint8(254), g)
}

func TestFire(t *testing.T) {
	a, err := sys.NewFramebuffer(64, 40)
	require.NoError(t, err)
	b, err := sys.NewFramebuffer(64, 40)
	require.NoError(t, err)
	app.Fire(a, 3)
	b.Fill(0xffffff)
	app.Fire(b, 3)
	assert.Equal(t, a.Pix, b.Pix)

	app.Fire(b, 4)
	assert.NotEqual(t, a.Pix, b.Pix)
	for _, p := range b.Pix {
		r, g, _ := sys.Unpack(p)
		require.Equal(t, r/2, g)
	}

	p, ok := app.PatternByName(`fire`)
	require.True(t, ok)
	assert.NotNil(t, p)
	_, ok = app.PatternByName(`plasma`)
	assert.False(t, ok)
}
