package sys_test

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srlehn/dghost/asset"
	"github.com/srlehn/dghost/internal/errors"
	"github.com/srlehn/dghost/sys"
	"github.com/srlehn/dghost/sys/systest"
)

func newKernel(t *testing.T, opts ...sys.Option) *sys.Kernel {
	t.Helper()
	k, err := sys.New(opts...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = k.Close() })
	return k
}

func TestPresentRejectsShortBuffer(t *testing.T) {
	rec := &systest.Recorder{}
	k := newKernel(t, sys.SetDisplay(rec))

	for _, c := range []struct {
		n, w, h int
	}{
		{n: 10, w: 4, h: 3},
		{n: 10, w: 0, h: 3},
		{n: 10, w: 3, h: -1},
		{n: 0, w: 1, h: 1},
	} {
		err := k.Present(make([]uint32, c.n), c.w, c.h)
		assert.ErrorIs(t, err, sys.ErrContract, `%+v`, c)
	}
	assert.Zero(t, rec.Calls())

	// larger buffers are fine, the tail is ignored
	require.NoError(t, k.Present(make([]uint32, 13), 4, 3))
	frames := rec.Frames()
	require.Len(t, frames, 1)
	assert.Len(t, frames[0].Pix, 12)
}

func TestPresentDoesNotRetainBuffer(t *testing.T) {
	var seen []uint32
	d := &showFunc{show: func(fb *sys.Framebuffer) error {
		seen = fb.Pix
		return nil
	}}
	k := newKernel(t, sys.SetDisplay(d))
	buf := []uint32{1, 2, 3, 4}
	require.NoError(t, k.Present(buf, 2, 2))
	buf[0] = 99
	assert.Equal(t, uint32(1), seen[0])
	require.NotEmpty(t, seen)
	assert.NotSame(t, &buf[0], &seen[0])
}

type showFunc struct {
	show func(fb *sys.Framebuffer) error
}

func (s *showFunc) Name() string                   { return `func` }
func (s *showFunc) Show(fb *sys.Framebuffer) error { return s.show(fb) }
func (s *showFunc) Close() error                   { return nil }

func TestPresentRetriesBusyDisplay(t *testing.T) {
	rec := &systest.Recorder{Busy: 2}
	k := newKernel(t, sys.SetDisplay(rec), sys.SetPresentRetries(2, time.Millisecond))
	require.NoError(t, k.Present([]uint32{0}, 1, 1))
	assert.Equal(t, 3, rec.Calls())
	assert.Len(t, rec.Frames(), 1)

	rec.Busy = 5
	err := k.Present([]uint32{0}, 1, 1)
	assert.ErrorIs(t, err, sys.ErrDisplayBusy)
	assert.Equal(t, 6, rec.Calls())
	assert.Equal(t, 1, k.Stats().Presents)
}

func TestPresentDisplayFailure(t *testing.T) {
	rec := &systest.Recorder{Fail: errors.New(`gone`)}
	k := newKernel(t, sys.SetDisplay(rec))
	err := k.Present([]uint32{0}, 1, 1)
	assert.ErrorIs(t, err, sys.ErrDisplayUnavailable)
	assert.Equal(t, 1, rec.Calls())

	k = newKernel(t)
	assert.ErrorIs(t, k.Present([]uint32{0}, 1, 1), sys.ErrDisplayUnavailable)
}

func assetKernel(t *testing.T, opts ...sys.Option) *sys.Kernel {
	t.Helper()
	store, err := asset.Mem(map[string][]byte{
		`doom1.wad`: []byte(`IWAD0123456789`),
		`empty.lmp`: nil,
	})
	require.NoError(t, err)
	return newKernel(t, append([]sys.Option{sys.SetAssets(store)}, opts...)...)
}

func TestReadAsset(t *testing.T) {
	k := assetKernel(t)
	h, err := k.OpenAsset(`/doom1.wad`)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, int(h), 0)

	buf := make([]byte, 4)
	n, err := k.ReadAsset(h, buf)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Equal(t, `IWAD`, string(buf))

	n, err = k.ReadAsset(h, nil)
	require.NoError(t, err)
	assert.Zero(t, n)

	// min(L, R)
	big := make([]byte, 64)
	n, err = k.ReadAsset(h, big)
	require.NoError(t, err)
	assert.Equal(t, 10, n)
	assert.Equal(t, `0123456789`, string(big[:n]))

	for range 3 {
		n, err = k.ReadAsset(h, big)
		assert.ErrorIs(t, err, io.EOF)
		assert.Zero(t, n)
	}
	require.NoError(t, k.CloseAsset(h))
	_, err = k.ReadAsset(h, big)
	assert.ErrorIs(t, err, sys.ErrBadHandle)
	assert.ErrorIs(t, k.CloseAsset(h), sys.ErrBadHandle)

	h, err = k.OpenAsset(`empty.lmp`)
	require.NoError(t, err)
	n, err = k.ReadAsset(h, big)
	assert.ErrorIs(t, err, io.EOF)
	assert.Zero(t, n)

	st := k.Stats()
	assert.Equal(t, 2, st.Opens)
	assert.Equal(t, int64(14), st.BytesRead)
	assert.Equal(t, 1, st.OpenAssets)
}

func TestOpenAssetErrors(t *testing.T) {
	k := assetKernel(t)
	_, err := k.OpenAsset(`doom2.wad`)
	assert.ErrorIs(t, err, sys.ErrNotFound)
	for _, p := range []string{``, `../doom1.wad`, "doom1.wad\x00", `/`} {
		_, err = k.OpenAsset(p)
		assert.ErrorIs(t, err, sys.ErrNamespace, `%q`, p)
	}
	_, err = k.ReadAsset(-1, make([]byte, 1))
	assert.ErrorIs(t, err, sys.ErrBadHandle)
	_, err = k.ReadAsset(1000, make([]byte, 1))
	assert.ErrorIs(t, err, sys.ErrBadHandle)

	_, err = newKernel(t).OpenAsset(`doom1.wad`)
	assert.ErrorIs(t, err, sys.ErrNotFound)
}

func TestOpenAssetSymlinkOutsideRoot(t *testing.T) {
	outside := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(outside, `secret.txt`), []byte(`outside`), 0o644))
	root := t.TempDir()
	if err := os.Symlink(filepath.Join(outside, `secret.txt`), filepath.Join(root, `doom.wad`)); err != nil {
		t.Skipf(`symlinks unavailable: %v`, err)
	}
	store, err := asset.Dir(root)
	require.NoError(t, err)
	k := newKernel(t, sys.SetAssets(store))

	h, err := k.OpenAsset(`/doom.wad`)
	assert.ErrorIs(t, err, sys.ErrNamespace)
	assert.Less(t, int(h), 0)
	assert.Zero(t, k.Stats().OpenAssets)
}

func TestHandlesExhaustedAndNotReused(t *testing.T) {
	k := assetKernel(t, sys.SetMaxHandles(2))
	h0, err := k.OpenAsset(`doom1.wad`)
	require.NoError(t, err)
	h1, err := k.OpenAsset(`doom1.wad`)
	require.NoError(t, err)
	assert.NotEqual(t, h0, h1)

	_, err = k.OpenAsset(`doom1.wad`)
	assert.ErrorIs(t, err, sys.ErrExhausted)

	require.NoError(t, k.CloseAsset(h0))
	h2, err := k.OpenAsset(`doom1.wad`)
	require.NoError(t, err)
	assert.NotEqual(t, h0, h2)
	assert.NotEqual(t, h1, h2)
}

func TestReadKeyPolicies(t *testing.T) {
	k := newKernel(t, sys.SetKeyboard(systest.Runes(`a`)))
	assert.Equal(t, sys.NonBlocking, k.KeyPolicy())
	key, ok, err := k.ReadKey(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, sys.Key('a'), key)
	_, ok, err = k.ReadKey(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)

	k = newKernel(t, sys.SetKeyboard(systest.Runes(`b`)), sys.SetKeyPolicy(sys.Blocking))
	key, ok, err = k.ReadKey(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, sys.Key('b'), key)
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, ok, err = k.ReadKey(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.False(t, ok)
	assert.Equal(t, 1, k.Stats().Keys)

	// no keyboard: nothing ever pending
	k = newKernel(t)
	_, ok, err = k.ReadKey(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = sys.New(sys.SetKeyPolicy(sys.KeyPolicy(7)))
	assert.Error(t, err)
}

func TestReadKeyInputClosed(t *testing.T) {
	kb := systest.Runes(``)
	k := newKernel(t, sys.SetKeyboard(kb))
	require.NoError(t, kb.Close())
	_, _, err := k.ReadKey(context.Background())
	assert.ErrorIs(t, err, sys.ErrInputClosed)
}

func TestCloseReleasesResources(t *testing.T) {
	rec := &systest.Recorder{}
	store, err := asset.Mem(map[string][]byte{`a`: []byte(`x`)})
	require.NoError(t, err)
	kb := systest.Runes(`q`)
	k, err := sys.New(sys.SetDisplay(rec), sys.SetKeyboard(kb), sys.SetAssets(store))
	require.NoError(t, err)
	h, err := k.OpenAsset(`a`)
	require.NoError(t, err)

	require.NoError(t, k.Close())
	require.NoError(t, k.Close())
	assert.True(t, rec.Closed())
	assert.Zero(t, k.Stats().OpenAssets)
	_, err = k.ReadAsset(h, make([]byte, 1))
	assert.ErrorIs(t, err, sys.ErrBadHandle)
	_, _, err = k.ReadKey(context.Background())
	assert.ErrorIs(t, err, sys.ErrInputClosed)
	assert.ErrorIs(t, k.Present([]uint32{0}, 1, 1), sys.ErrDisplayUnavailable)
}

func TestLogFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), `dghost.log`)
	rec := &systest.Recorder{}
	k, err := sys.New(sys.SetDisplay(rec), sys.SetLogFile(p, true))
	require.NoError(t, err)
	_, err = k.OpenAsset(`missing`)
	require.Error(t, err)
	require.NoError(t, k.Close())

	b, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.Contains(t, string(b), `kernel started`)
	assert.Contains(t, string(b), `kernel stopping`)
	assert.Contains(t, string(b), `display=recorder`)
}

func TestTrace(t *testing.T) {
	k := newKernel(t, sys.SetDisplay(&systest.Recorder{}))
	tr := systest.NewTrace(k)
	require.NoError(t, tr.Present([]uint32{0}, 1, 1))
	_, _, err := tr.ReadKey(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{systest.CallPresent, systest.CallReadKey}, tr.Calls())
	assert.Equal(t, 1, tr.Count(systest.CallPresent))
}
