package abi

// Syscall numbers of Dispatch.
const (
	SysFramebuffer uint32 = 0x100
	SysReadKey     uint32 = 0x101
	SysOpenWAD     uint32 = 0x102
	SysReadWAD     uint32 = 0x103
	SysCloseWAD    uint32 = 0x104
)

// Args holds the arguments of a dispatched call.
//
//	SysFramebuffer: Pix, A = width, B = height
//	SysReadKey:     -
//	SysOpenWAD:     Buf = path
//	SysReadWAD:     A = fd, Buf, B = length
//	SysCloseWAD:    A = fd
type Args struct {
	Pix []uint32
	Buf []byte
	A   int32
	B   int32
}

// Dispatch routes a numbered call to t. Unknown numbers return ErrCodeNoSys.
func (t *Table) Dispatch(num uint32, a Args) int32 {
	switch num {
	case SysFramebuffer:
		return t.Framebuffer(a.Pix, a.A, a.B)
	case SysReadKey:
		return t.ReadKey()
	case SysOpenWAD:
		return t.OpenWAD(a.Buf)
	case SysReadWAD:
		return t.ReadWAD(a.A, a.Buf, a.B)
	case SysCloseWAD:
		return t.CloseWAD(a.A)
	}
	return ErrCodeNoSys
}

// SyscallName returns the name of a syscall number, "" if unknown.
func SyscallName(num uint32) string {
	switch num {
	case SysFramebuffer:
		return `framebuffer`
	case SysReadKey:
		return `read_key`
	case SysOpenWAD:
		return `open_wad`
	case SysReadWAD:
		return `read_wad`
	case SysCloseWAD:
		return `close_wad`
	}
	return ``
}
