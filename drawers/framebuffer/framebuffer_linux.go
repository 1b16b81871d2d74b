//go:build linux && !android

package framebuffer

import (
	"log/slog"
	"os"
	"sync"

	"golang.org/x/sys/unix"

	"github.com/srlehn/dghost/internal"
	"github.com/srlehn/dghost/internal/errors"
	"github.com/srlehn/dghost/internal/linux"
	"github.com/srlehn/dghost/internal/logx"
	"github.com/srlehn/dghost/resize/rdefault"
	"github.com/srlehn/dghost/sys"
)

// DefaultDevice is opened when no device is configured.
const DefaultDevice = `/dev/fb0`

func init() {
	sys.RegisterDisplay(Name, func(cfg sys.DisplayConfig) (sys.Display, error) {
		return Open(cfg)
	})
}

var (
	_ sys.Display         = (*Display)(nil)
	_ logx.LoggerProvider = (*Display)(nil)
)

type Display struct {
	mu     sync.Mutex
	dev    *device
	rsz    sys.Resizer
	logger *slog.Logger
	closer internal.Closer
}

func Open(cfg sys.DisplayConfig) (_ *Display, err error) {
	name := cfg.Device
	if len(name) == 0 {
		name = DefaultDevice
	}
	rsz := cfg.Resizer
	if rsz == nil {
		rsz = &rdefault.Resizer{}
	}
	d := &Display{rsz: rsz, logger: cfg.Logger, closer: internal.NewCloser()}
	defer func() {
		if err != nil {
			_ = d.closer.Close()
		}
	}()

	f, err := os.OpenFile(name, os.O_RDWR, 0)
	if err != nil {
		return nil, errors.Mark(sys.ErrDisplayUnavailable, err)
	}
	d.closer.AddClosers(f)
	fix, v, err := linux.FBScreenInfo(f.Fd())
	if err != nil {
		return nil, errors.Mark(sys.ErrDisplayUnavailable, err)
	}
	mem, err := unix.Mmap(int(f.Fd()), 0, int(fix.SmemLen), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		return nil, errors.Mark(sys.ErrDisplayUnavailable, err)
	}
	d.closer.OnClose(func() error { return unix.Munmap(mem) })
	dev, err := newDevice(mem, fix, v)
	if err != nil {
		return nil, errors.Mark(sys.ErrDisplayUnavailable, err)
	}
	d.dev = dev

	logx.Info(`framebuffer opened`, d, `device`, name, `size`, dev.size, `bits_per_pixel`, v.BitsPerPixel)
	if mode, isConsole, err := linux.KDGetMode(os.Stdin.Fd()); err == nil && isConsole && mode != linux.KDGraphics {
		logx.Debug(`console in text mode, text output may overdraw frames`, d, `kd_mode`, mode)
	}
	return d, nil
}

func (d *Display) Name() string         { return Name }
func (d *Display) Logger() *slog.Logger { return d.logger }

func (d *Display) Show(fb *sys.Framebuffer) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.dev == nil {
		return errors.Mark(sys.ErrDisplayUnavailable, errors.New(`framebuffer closed`))
	}
	img, r, err := sys.Render(fb, d.dev.size, d.rsz)
	if err != nil {
		return err
	}
	d.dev.blit(img, r)
	return nil
}

func (d *Display) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.dev = nil
	return d.closer.Close()
}
