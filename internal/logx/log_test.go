package logx_test

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srlehn/dghost/internal/logx"
)

type prov struct{ l *slog.Logger }

func (p prov) Logger() *slog.Logger { return p.l }

func TestOpenFile(t *testing.T) {
	name := filepath.Join(t.TempDir(), `test.log`)
	logger, c, err := logx.OpenFile(name, slog.LevelInfo)
	require.NoError(t, err)
	p := prov{l: logger}

	logx.Info(`started`, p, `frames`, 3)
	logx.Debug(`hidden`, p)
	assert.True(t, logx.IsErr(errors.Join(errors.New(`one`), errors.New(`two`)), p, slog.LevelError))
	assert.False(t, logx.IsErr(nil, p, slog.LevelError))
	require.NoError(t, logx.TimeIt(func() error { return nil }, `timed`, p))
	require.NoError(t, c.Close())

	b, err := os.ReadFile(name)
	require.NoError(t, err)
	s := string(b)
	assert.Contains(t, s, `msg=started frames=3`)
	assert.Contains(t, s, `msg=one`)
	assert.Contains(t, s, `msg=two`)
	assert.NotContains(t, s, `hidden`)
	assert.NotContains(t, s, `timed`)
}

func TestNilLogger(t *testing.T) {
	assert.NotPanics(t, func() {
		logx.Info(`x`, prov{}, `k`, `v`)
		logx.IsErr(errors.New(`x`), nil, slog.LevelError)
	})
}
