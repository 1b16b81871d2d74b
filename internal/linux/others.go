//go:build !linux

package linux

import (
	"github.com/srlehn/dghost/internal/consts"
	"github.com/srlehn/dghost/internal/errors"
)

func KDGetMode(fd uintptr) (mode KDMode, isLinuxConsole bool, _ error) {
	return -1, false, errors.New(consts.ErrPlatformNotSupported)
}

func FBScreenInfo(fd uintptr) (FixScreenInfo, VarScreenInfo, error) {
	return FixScreenInfo{}, VarScreenInfo{}, errors.New(consts.ErrPlatformNotSupported)
}
