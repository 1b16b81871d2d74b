package sys

import (
	"io"
	"sync"

	"github.com/iancoleman/strcase"

	"github.com/srlehn/dghost/internal/util"
)

// TTY is a terminal device keys are read from.
// Implementations may additionally provide ReadRune.
type TTY interface {
	TTYDevName() string
	io.ReadWriteCloser
}

// TTYSizer is implemented by terminals that can report their size in cells
// and, if known, in pixels.
type TTYSizer interface {
	SizePixel() (cols, rows, xpixels, ypixels int, err error)
}

type TTYProvider func(ttyFile string) (TTY, error)

var (
	ttysMu         sync.RWMutex
	ttysRegistered = make(map[string]TTYProvider)
)

// RegisterTTY makes a tty implementation available by name.
func RegisterTTY(name string, prov TTYProvider) {
	if prov == nil {
		return
	}
	ttysMu.Lock()
	defer ttysMu.Unlock()
	ttysRegistered[normalizeName(name)] = prov
}

// TTYByName returns the provider registered for name.
func TTYByName(name string) (TTYProvider, bool) {
	ttysMu.RLock()
	defer ttysMu.RUnlock()
	prov, ok := ttysRegistered[normalizeName(name)]
	return prov, ok
}

// TTYs lists the names of the registered tty implementations.
func TTYs() []string {
	ttysMu.RLock()
	defer ttysMu.RUnlock()
	return util.MapsKeysSorted(ttysRegistered)
}

func normalizeName(name string) string { return strcase.ToKebab(name) }
