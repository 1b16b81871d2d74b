//go:build linux

package linux

import (
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/srlehn/dghost/internal/errors"
)

const (
	fbioGetVScreenInfo = 0x4600
	fbioGetFScreenInfo = 0x4602
)

// FBScreenInfo queries the fixed and variable screen info of a framebuffer device.
func FBScreenInfo(fd uintptr) (FixScreenInfo, VarScreenInfo, error) {
	var (
		finfo FixScreenInfo
		vinfo VarScreenInfo
	)
	if err := ioctl(fd, fbioGetFScreenInfo, unsafe.Pointer(&finfo)); err != nil {
		return finfo, vinfo, err
	}
	if err := ioctl(fd, fbioGetVScreenInfo, unsafe.Pointer(&vinfo)); err != nil {
		return finfo, vinfo, err
	}
	return finfo, vinfo, nil
}

func ioctl(fd uintptr, req uintptr, arg unsafe.Pointer) error {
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, fd, req, uintptr(arg))
	if errno != 0 {
		return errors.New(errno)
	}
	return nil
}
