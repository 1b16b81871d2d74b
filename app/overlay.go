package app

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/srlehn/dghost/sys"
)

// statusBarHeight is the height of the bar the overlay text is drawn on.
const statusBarHeight = 20

// drawStatusBar blanks the bottom rows of fb and writes text onto them.
func drawStatusBar(fb *sys.Framebuffer, text string) {
	if fb == nil || len(text) == 0 {
		return
	}
	face := basicfont.Face7x13
	h := min(statusBarHeight, fb.Height)
	bar := image.Rect(0, fb.Height-h, fb.Width, fb.Height)
	draw.Draw(fb, bar, image.NewUniform(color.Black), image.Point{}, draw.Src)
	// vertically centered baseline
	baseline := bar.Min.Y + (h+face.Ascent-face.Descent)/2
	d := &font.Drawer{
		Dst:  fb,
		Src:  image.NewUniform(color.White),
		Face: face,
		Dot:  fixed.P(4, baseline),
	}
	d.DrawString(text)
}
