package sys_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srlehn/dghost/internal/dummytty"
	"github.com/srlehn/dghost/sys"
)

func TestTTYKeyboard(t *testing.T) {
	kb, err := sys.NewTTYKeyboard(dummytty.NewHolding("qé\x03"))
	require.NoError(t, err)
	defer kb.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	var got []sys.Key
	for range 3 {
		key, ok, err := kb.ReadKey(ctx, true)
		require.NoError(t, err)
		require.True(t, ok)
		got = append(got, key)
	}
	assert.Equal(t, []sys.Key{'q', 'é', sys.KeyInterrupt}, got)

	_, ok, err := kb.ReadKey(ctx, false)
	require.NoError(t, err)
	assert.False(t, ok)

	short, cancelShort := context.WithTimeout(ctx, 10*time.Millisecond)
	defer cancelShort()
	_, _, err = kb.ReadKey(short, true)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	require.NoError(t, kb.Close())
	_, _, err = kb.ReadKey(ctx, true)
	assert.ErrorIs(t, err, sys.ErrInputClosed)
}

func TestTTYKeyboardDropsNUL(t *testing.T) {
	kb, err := sys.NewTTYKeyboard(dummytty.New("\x00q\x00"))
	require.NoError(t, err)
	defer kb.Close()

	ctx := context.Background()
	key, ok, err := kb.ReadKey(ctx, true)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, sys.Key('q'), key)
	_, _, err = kb.ReadKey(ctx, true)
	assert.ErrorIs(t, err, sys.ErrInputClosed)
}

func TestTTYKeyboardEOF(t *testing.T) {
	kb, err := sys.NewTTYKeyboard(dummytty.New(`x`))
	require.NoError(t, err)
	defer kb.Close()

	ctx := context.Background()
	key, ok, err := kb.ReadKey(ctx, true)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, sys.Key('x'), key)
	_, _, err = kb.ReadKey(ctx, true)
	assert.ErrorIs(t, err, sys.ErrInputClosed)

	_, err = sys.NewTTYKeyboard(nil)
	assert.Error(t, err)
}

func TestKernelWithTTYKeyboard(t *testing.T) {
	kb, err := sys.NewTTYKeyboard(dummytty.NewHolding(`Q`))
	require.NoError(t, err)
	k := newKernel(t, sys.SetKeyboard(kb), sys.SetKeyPolicy(sys.Blocking))
	key, ok, err := k.ReadKey(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, sys.Key('Q'), key)

	done := make(chan error, 1)
	go func() {
		_, _, err := k.ReadKey(context.Background())
		done <- err
	}()
	time.Sleep(10 * time.Millisecond)
	require.NoError(t, k.Close())
	select {
	case err := <-done:
		assert.ErrorIs(t, err, sys.ErrInputClosed)
	case <-time.After(5 * time.Second):
		t.Fatal(`blocking ReadKey not released by Close`)
	}
}
