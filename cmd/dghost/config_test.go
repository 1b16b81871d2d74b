package main

import (
	"image"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srlehn/dghost/resize"
	"github.com/srlehn/dghost/sys"
)

func TestParseSize(t *testing.T) {
	p, err := parseSize(`80x24`)
	require.NoError(t, err)
	assert.Equal(t, image.Pt(80, 24), p)

	p, err = parseSize(``)
	require.NoError(t, err)
	assert.Equal(t, image.Point{}, p)

	for _, s := range []string{`80`, `x24`, `0x24`, `-1x2`} {
		_, err = parseSize(s)
		assert.Error(t, err, s)
	}
}

func TestHostFlags(t *testing.T) {
	t.Setenv(`DGHOST_DISPLAY`, `sixel`)
	var f hostFlags
	fs := pflag.NewFlagSet(`test`, pflag.ContinueOnError)
	f.register(fs)
	require.NoError(t, fs.Parse([]string{`--filter`, `lanczos`, `--key-policy`, `blocking`, `--size`, `640x400`}))

	cfg, err := f.config()
	require.NoError(t, err)
	assert.Equal(t, `sixel`, cfg.Display)
	assert.Equal(t, resize.Lanczos, cfg.Filter)
	assert.Equal(t, sys.Blocking, cfg.KeyPolicy)
	assert.Equal(t, image.Pt(640, 400), cfg.Size)

	require.NoError(t, fs.Parse([]string{`--filter`, `sinc`}))
	_, err = f.config()
	assert.Error(t, err)
}

func TestImplementations(t *testing.T) {
	s := implementations()
	for _, want := range []string{`halfblock`, `gotty`, `default`} {
		assert.Contains(t, s, want)
	}
}
