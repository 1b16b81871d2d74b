package app

import "github.com/srlehn/dghost/sys"

// Pattern fills fb with the content of frame number frame. Patterns only
// depend on the pixel position and the frame number, never on the previous
// buffer contents.
type Pattern func(fb *sys.Framebuffer, frame int)

// Gradient shades red along x and green along y on a constant blue of 128.
func Gradient(fb *sys.Framebuffer, _ int) {
	if fb == nil || fb.Width <= 0 || fb.Height <= 0 {
		return
	}
	for y := 0; y < fb.Height; y++ {
		g := uint8(y * 255 / fb.Height)
		row := fb.Pix[y*fb.Width : (y+1)*fb.Width]
		for x := range row {
			row[x] = sys.Pack(uint8(x*255/fb.Width), g, 128)
		}
	}
}

// Fire is an animated red-orange xor pattern drifting with the frame number.
func Fire(fb *sys.Framebuffer, frame int) {
	if fb == nil || fb.Width <= 0 || fb.Height <= 0 {
		return
	}
	t := frame & 0xff
	for y := 0; y < fb.Height; y++ {
		fy := y * 256 / fb.Height
		row := fb.Pix[y*fb.Width : (y+1)*fb.Width]
		for x := range row {
			fx := x * 256 / fb.Width
			v := uint8(((fx + t) ^ (fy + t)) & 0xff)
			var b uint8
			if v > 200 {
				b = v - 200
			}
			row[x] = sys.Pack(v, v/2, b)
		}
	}
}

// Patterns maps the names accepted by PatternByName.
var Patterns = map[string]Pattern{
	`gradient`: Gradient,
	`fire`:     Fire,
}

func PatternByName(name string) (Pattern, bool) {
	p, ok := Patterns[name]
	return p, ok
}
