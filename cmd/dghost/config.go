package main

import (
	"fmt"
	"image"
	"os"

	"github.com/spf13/pflag"

	"github.com/srlehn/dghost"
	"github.com/srlehn/dghost/internal/consts"
	"github.com/srlehn/dghost/internal/errors"
	"github.com/srlehn/dghost/internal/xdg"
	"github.com/srlehn/dghost/resize"
	"github.com/srlehn/dghost/sys"
)

// hostFlags are the flags shared by the commands that start a kernel.
type hostFlags struct {
	display   string
	tty       string
	ttyDevice string
	assets    string
	resizer   string
	filter    string
	size      string
	dir       string
	device    string
	policy    string
}

func envOr(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && len(v) > 0 {
		return v
	}
	return def
}

func (f *hostFlags) register(fs *pflag.FlagSet) {
	def := dghost.DefaultConfig()
	assetsDef, _ := xdg.FindAssets()
	fs.StringVarP(&f.display, `display`, `D`, envOr(consts.EnvDisplay, def.Display), `display implementation (see "displays")`)
	fs.StringVarP(&f.tty, `tty`, `t`, def.TTY, `tty implementation, "`+dghost.TTYNone+`" disables keys`)
	fs.StringVar(&f.ttyDevice, `tty-device`, envOr(consts.EnvTTY, def.TTYDevice), `terminal device`)
	fs.StringVarP(&f.assets, `assets`, `a`, envOr(consts.EnvAssets, assetsDef), `asset directory or tar archive`)
	fs.StringVar(&f.resizer, `resizer`, def.Resizer, `resizer implementation`)
	fs.StringVar(&f.filter, `filter`, def.Filter.String(), `resampling filter (nearest, bilinear, lanczos)`)
	fs.StringVar(&f.size, `size`, ``, `surface size WxH in display units, empty asks the device`)
	fs.StringVar(&f.dir, `dir`, `.`, `output directory of the image file displays`)
	fs.StringVar(&f.device, `device`, ``, `framebuffer device`)
	fs.StringVar(&f.policy, `key-policy`, def.KeyPolicy.String(), `key read policy (blocking, non-blocking)`)
}

func (f *hostFlags) config() (dghost.Config, error) {
	cfg := dghost.DefaultConfig()
	cfg.Display = f.display
	cfg.TTY = f.tty
	cfg.TTYDevice = f.ttyDevice
	cfg.Assets = f.assets
	cfg.Resizer = f.resizer
	cfg.Dir = f.dir
	cfg.Device = f.device
	cfg.LogFile = logFileFlag
	cfg.Debug = debugFlag
	var err error
	if cfg.Filter, err = resize.ParseFilter(f.filter); err != nil {
		return cfg, err
	}
	if cfg.KeyPolicy, err = sys.ParseKeyPolicy(f.policy); err != nil {
		return cfg, err
	}
	if cfg.Size, err = parseSize(f.size); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func parseSize(s string) (image.Point, error) {
	if len(s) == 0 {
		return image.Point{}, nil
	}
	var p image.Point
	if _, err := fmt.Sscanf(s, `%dx%d`, &p.X, &p.Y); err != nil {
		return p, errors.Errorf(`size %q: want WxH`, s)
	}
	if p.X <= 0 || p.Y <= 0 {
		return p, errors.Errorf(`size %q: dimensions must be positive`, s)
	}
	return p, nil
}
