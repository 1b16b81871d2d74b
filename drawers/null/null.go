// Package null provides a display discarding every frame, for headless runs.
package null

import (
	"sync/atomic"

	"github.com/srlehn/dghost/internal/consts"
	"github.com/srlehn/dghost/sys"
)

func init() {
	sys.RegisterDisplay(consts.DisplayNullName, func(sys.DisplayConfig) (sys.Display, error) { return New(), nil })
}

var _ sys.Display = (*Display)(nil)

type Display struct {
	frames atomic.Int64
}

func New() *Display { return &Display{} }

func (d *Display) Name() string { return consts.DisplayNullName }

// Show only validates fb.
func (d *Display) Show(fb *sys.Framebuffer) error {
	if err := fb.Validate(); err != nil {
		return err
	}
	d.frames.Add(1)
	return nil
}

// Frames counts accepted frames.
func (d *Display) Frames() int64 { return d.frames.Load() }

func (d *Display) Close() error { return nil }
