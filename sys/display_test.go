package sys_test

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srlehn/dghost/sys"
	"github.com/srlehn/dghost/sys/systest"
)

func TestFit(t *testing.T) {
	for _, c := range []struct {
		frame, surface image.Point
		want           image.Rectangle
	}{
		{image.Pt(320, 200), image.Pt(320, 200), image.Rect(0, 0, 320, 200)},
		{image.Pt(320, 200), image.Pt(1024, 768), image.Rect(32, 84, 992, 684)},
		{image.Pt(320, 200), image.Pt(1920, 1080), image.Rect(160, 40, 1760, 1040)},
		{image.Pt(320, 200), image.Pt(160, 200), image.Rect(0, 50, 160, 150)},
		{image.Pt(320, 200), image.Pt(320, 100), image.Rect(80, 0, 240, 100)},
		{image.Pt(320, 200), image.Pt(0, 100), image.Rectangle{}},
	} {
		got := sys.Fit(c.frame, c.surface)
		assert.Equal(t, c.want, got, `%v on %v`, c.frame, c.surface)
		if !got.Empty() {
			assert.True(t, got.In(image.Rectangle{Max: c.surface}))
		}
	}
}

func TestDisplayRegistry(t *testing.T) {
	sys.RegisterDisplay(`TestRecorder`, func(sys.DisplayConfig) (sys.Display, error) {
		return &systest.Recorder{}, nil
	})
	assert.Contains(t, sys.Displays(), `test-recorder`)
	d, err := sys.NewDisplay(`test-recorder`, sys.DisplayConfig{})
	require.NoError(t, err)
	assert.Equal(t, `recorder`, d.Name())

	_, err = sys.NewDisplay(`no-such-display`, sys.DisplayConfig{})
	assert.ErrorIs(t, err, sys.ErrDisplayUnavailable)
}

func TestKeyString(t *testing.T) {
	for k, want := range map[sys.Key]string{
		sys.KeyNone:      `NUL`,
		sys.KeyInterrupt: `^C`,
		sys.KeyEscape:    `ESC`,
		sys.KeyDelete:    `DEL`,
		'q':              `'q'`,
		-5:               `key(-5)`,
	} {
		assert.Equal(t, want, k.String())
	}
	assert.True(t, sys.KeyCtrlQ.IsControl())
	assert.False(t, sys.Key('Q').IsControl())
}

func TestParseKeyPolicy(t *testing.T) {
	for _, p := range []sys.KeyPolicy{sys.Blocking, sys.NonBlocking} {
		got, err := sys.ParseKeyPolicy(p.String())
		require.NoError(t, err)
		assert.Equal(t, p, got)
	}
	_, err := sys.ParseKeyPolicy(`sometimes`)
	assert.Error(t, err)
}
