package tty_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srlehn/dghost/internal"
	"github.com/srlehn/dghost/sys"
	_ "github.com/srlehn/dghost/tty/contdtty"
	"github.com/srlehn/dghost/tty/dumbtty"
	_ "github.com/srlehn/dghost/tty/gotty"
)

func TestRegistered(t *testing.T) {
	names := sys.TTYs()
	for _, name := range []string{`containerd`, `dumb`, `gotty`} {
		assert.Contains(t, names, name)
		_, ok := sys.TTYByName(name)
		assert.True(t, ok, name)
	}
}

// needs a controlling terminal
func TestTTYNewAll(t *testing.T) {
	for _, name := range sys.TTYs() {
		t.Run(name, func(t *testing.T) {
			prov, ok := sys.TTYByName(name)
			require.True(t, ok)
			tty, err := prov(internal.DefaultTTYDevice())
			if err != nil {
				t.Skipf("no terminal: %v", err)
			}
			defer tty.Close()
			assert.NotEmpty(t, tty.TTYDevName())
			if szr, ok := tty.(sys.TTYSizer); ok {
				cols, rows, _, _, err := szr.SizePixel()
				if err == nil {
					assert.Positive(t, cols)
					assert.Positive(t, rows)
				}
			}
		})
	}
}

func TestDumbStdin(t *testing.T) {
	tty, err := dumbtty.New(`-`)
	require.NoError(t, err)
	assert.Equal(t, `-`, tty.TTYDevName())
	require.NoError(t, tty.Close())
	require.NoError(t, tty.Close())
	_, err = tty.Read(make([]byte, 1))
	assert.Error(t, err)
}
