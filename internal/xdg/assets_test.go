package xdg_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/srlehn/dghost/internal/xdg"
)

func TestAssetDirs(t *testing.T) {
	for _, d := range xdg.AssetDirs() {
		assert.Equal(t, `dghost`, filepath.Base(d))
		assert.True(t, filepath.IsAbs(d) || len(filepath.Dir(d)) > 0)
	}
}
