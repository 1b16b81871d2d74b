package tty_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srlehn/dghost/internal"
	"github.com/srlehn/dghost/sys"
	"github.com/srlehn/dghost/tty/creacktty"
	_ "github.com/srlehn/dghost/tty/pkgterm"
	_ "github.com/srlehn/dghost/tty/uroottty"
)

func TestCreackKeyboard(t *testing.T) {
	tty, err := creacktty.New(internal.DefaultTTYDevice())
	if err != nil {
		t.Skipf("no pty: %v", err)
	}
	require.NoError(t, tty.Setsize(80, 25, 640, 400))
	cols, rows, xp, yp, err := tty.SizePixel()
	require.NoError(t, err)
	assert.Equal(t, [4]int{80, 25, 640, 400}, [4]int{cols, rows, xp, yp})

	kb, err := sys.NewTTYKeyboard(tty)
	require.NoError(t, err)
	defer kb.Close()

	_, err = tty.Inject([]byte("aü\x03"))
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	var keys []sys.Key
	for range 3 {
		k, ok, err := kb.ReadKey(ctx, true)
		require.NoError(t, err)
		require.True(t, ok)
		keys = append(keys, k)
	}
	assert.Equal(t, []sys.Key{'a', 'ü', sys.KeyInterrupt}, keys)

	for _, name := range []string{`creack`, `pkgterm`, `uroot`} {
		assert.Contains(t, sys.TTYs(), name)
	}
}
