//go:build linux

package linux

import (
	"golang.org/x/sys/unix"

	"github.com/srlehn/dghost/internal/errors"
)

// KDGetMode reports the mode of a virtual console. isLinuxConsole is false for
// file descriptors that aren't a Linux console.
func KDGetMode(fd uintptr) (mode KDMode, isLinuxConsole bool, _ error) {
	const KDGETMODE uint = 0x4b3b
	m, err := unix.IoctlGetInt(int(fd), KDGETMODE)
	if err == nil {
		return KDMode(m), true, nil
	}
	if errors.Is(err, unix.ENOTTY) || errors.Is(err, unix.EINVAL) {
		return -1, false, nil
	}
	return -1, false, errors.New(err)
}
