// Package xdg locates asset namespaces in the XDG base directories.
package xdg

import (
	"os"
	"path/filepath"

	"github.com/rkoesters/xdg/basedir"

	"github.com/srlehn/dghost/internal/consts"
)

// AssetDirs lists the candidate asset directories, most specific first:
// $XDG_DATA_HOME/dghost followed by dghost below each of $XDG_DATA_DIRS.
func AssetDirs() []string {
	var dirs []string
	if len(basedir.DataHome) > 0 {
		dirs = append(dirs, filepath.Join(basedir.DataHome, consts.LibraryName))
	}
	for _, d := range basedir.DataDirs {
		if len(d) == 0 {
			continue
		}
		dirs = append(dirs, filepath.Join(d, consts.LibraryName))
	}
	return dirs
}

// FindAssets returns the first existing directory of AssetDirs.
func FindAssets() (string, bool) {
	for _, d := range AssetDirs() {
		if fi, err := os.Stat(d); err == nil && fi.IsDir() {
			return d, true
		}
	}
	return ``, false
}
