// Package dghost hosts an application behind the call boundary of package sys.
// It registers the bundled displays, terminals and resizers and wires a kernel
// from a Config.
package dghost

import (
	"image"
	"log/slog"
	"os"
	"slices"

	"github.com/srlehn/dghost/asset"
	"github.com/srlehn/dghost/internal"
	"github.com/srlehn/dghost/internal/consts"
	"github.com/srlehn/dghost/internal/errors"
	"github.com/srlehn/dghost/internal/logx"
	"github.com/srlehn/dghost/resize"
	"github.com/srlehn/dghost/sys"

	_ "github.com/srlehn/dghost/drawers/framebuffer"
	_ "github.com/srlehn/dghost/drawers/halfblock"
	_ "github.com/srlehn/dghost/drawers/null"
	_ "github.com/srlehn/dghost/drawers/sixel"
	_ "github.com/srlehn/dghost/drawers/snapshot"
	"github.com/srlehn/dghost/drawers/tcell"

	_ "github.com/srlehn/dghost/resize/bild"
	_ "github.com/srlehn/dghost/resize/gift"
	_ "github.com/srlehn/dghost/resize/imaging"
	_ "github.com/srlehn/dghost/resize/nfnt"
	_ "github.com/srlehn/dghost/resize/rdefault"
	_ "github.com/srlehn/dghost/resize/rez"
	_ "github.com/srlehn/dghost/resize/xdraw"

	_ "github.com/srlehn/dghost/tty/contdtty"
	_ "github.com/srlehn/dghost/tty/creacktty"
	_ "github.com/srlehn/dghost/tty/dumbtty"
	"github.com/srlehn/dghost/tty/gotty"
	_ "github.com/srlehn/dghost/tty/pkgterm"
	_ "github.com/srlehn/dghost/tty/uroottty"
)

// TTYNone disables the keyboard.
const TTYNone = `none`

// displays reading their own input; no tty is opened for them
var selfKeyed = []string{tcell.Name}

// Config selects the parts of a Host by their registered names.
type Config struct {
	Display string
	// TTY is the terminal implementation keys are read from, TTYNone for none.
	TTY       string
	TTYDevice string
	// Assets is a directory or tar archive. Empty means no assets.
	Assets    string
	Resizer   string
	Filter    resize.Filter
	Size      image.Point // surface size override, see sys.DisplayConfig
	Dir       string      // snapshot directory
	Device    string      // framebuffer device
	KeyPolicy sys.KeyPolicy
	LogFile   string
	Debug     bool
	// Logger is used when LogFile is empty.
	Logger *slog.Logger
}

func DefaultConfig() Config {
	return Config{
		Display:   consts.DisplayHalfblockName,
		TTY:       gotty.Name,
		TTYDevice: internal.DefaultTTYDevice(),
		Resizer:   `default`,
		Filter:    resize.Nearest,
		KeyPolicy: sys.NonBlocking,
	}
}

var _ logx.LoggerProvider = (*Host)(nil)

// Host is a kernel together with the resources opened for it.
type Host struct {
	*sys.Kernel
	closer internal.Closer
}

// New opens everything cfg names and starts a kernel on it.
func New(cfg Config) (_ *Host, err error) {
	h := &Host{closer: internal.NewCloser()}
	// closed in reverse order on failure; after sys.New the kernel owns them
	var owned []interface{ Close() error }
	defer func() {
		if err == nil {
			return
		}
		for i := len(owned) - 1; i >= 0; i-- {
			_ = owned[i].Close()
		}
		_ = h.closer.Close()
	}()

	logger := cfg.Logger
	if len(cfg.LogFile) > 0 {
		lvl := slog.LevelInfo
		if cfg.Debug {
			lvl = slog.LevelDebug
		}
		l, f, err := logx.OpenFile(cfg.LogFile, lvl)
		if err != nil {
			return nil, err
		}
		logger = l
		h.closer.AddClosers(f)
	}

	rszName := cfg.Resizer
	if len(rszName) == 0 {
		rszName = `default`
	}
	rsz, err := resize.New(rszName, cfg.Filter)
	if err != nil {
		return nil, err
	}

	var tty sys.TTY
	if cfg.TTY != TTYNone && !slices.Contains(selfKeyed, cfg.Display) {
		prov, ok := sys.TTYByName(cfg.TTY)
		if !ok {
			return nil, errors.Errorf(`unknown tty implementation %q, have %v`, cfg.TTY, sys.TTYs())
		}
		tty, err = prov(cfg.TTYDevice)
		if err != nil {
			return nil, err
		}
		owned = append(owned, tty)
	}

	dcfg := sys.DisplayConfig{
		Output:  os.Stdout,
		TTYName: cfg.TTYDevice,
		Dir:     cfg.Dir,
		Device:  cfg.Device,
		Size:    cfg.Size,
		Resizer: rsz,
		Logger:  logger,
	}
	if tty != nil {
		dcfg.Output = tty
	}
	disp, err := sys.NewDisplay(cfg.Display, dcfg)
	if err != nil {
		return nil, err
	}
	owned = append(owned, disp)

	var kb sys.Keyboard
	if k, isKeyboard := disp.(sys.Keyboard); isKeyboard && cfg.TTY != TTYNone {
		kb = k
	} else if tty != nil {
		kb, err = sys.NewTTYKeyboard(tty)
		if err != nil {
			return nil, err
		}
		// closes tty
		owned = slices.DeleteFunc(owned, func(c interface{ Close() error }) bool { return c == tty })
		owned = append(owned, kb)
	}

	var store asset.Store
	if len(cfg.Assets) > 0 {
		store, err = asset.Open(cfg.Assets)
	} else {
		store, err = asset.Mem(nil)
	}
	if err != nil {
		return nil, err
	}
	owned = append(owned, store)

	opts := sys.Options{
		sys.SetDisplay(disp),
		sys.SetAssets(store),
		sys.SetKeyPolicy(cfg.KeyPolicy),
		sys.SetSLogger(nil, false),
	}
	if kb != nil {
		opts = append(opts, sys.SetKeyboard(kb))
	}
	if logger != nil {
		opts = append(opts, sys.SetSLogger(logger.Handler(), true))
	}
	k, err := sys.New(opts...)
	if err != nil {
		return nil, err
	}
	h.Kernel = k
	return h, nil
}

// Close stops the kernel, then closes the log.
func (h *Host) Close() error {
	if h == nil {
		return nil
	}
	var errs []error
	if h.Kernel != nil {
		errs = append(errs, h.Kernel.Close())
	}
	errs = append(errs, h.closer.Close())
	return errors.Join(errs...)
}
