package sys

import (
	"context"
)

// Syscalls is the set of entry points an application may call into the kernel.
type Syscalls interface {
	// Present displays buf, a row-major grid of width*height packed samples.
	// It returns after the kernel has finished reading buf.
	Present(buf []uint32, width, height int) error
	// ReadKey returns one pending key. ok is false if no key is pending, which
	// only happens under the NonBlocking policy.
	ReadKey(ctx context.Context) (k Key, ok bool, err error)
	// OpenAsset opens a file of the asset namespace for reading.
	OpenAsset(path string) (Handle, error)
	// ReadAsset reads min(len(buf), remaining) bytes. At end of data it returns
	// 0, io.EOF until the handle is closed.
	ReadAsset(h Handle, buf []byte) (int, error)
	CloseAsset(h Handle) error
}

// Handle identifies an open asset. Valid handles are non-negative.
type Handle int32

// KeyPolicy selects how ReadKey behaves when no key is pending.
type KeyPolicy int

const (
	// NonBlocking returns immediately with ok == false.
	NonBlocking KeyPolicy = iota
	// Blocking waits for the next key or for the context to be done.
	Blocking
)

func (p KeyPolicy) String() string {
	switch p {
	case NonBlocking:
		return `non-blocking`
	case Blocking:
		return `blocking`
	}
	return `unknown`
}

// ParseKeyPolicy accepts the names returned by KeyPolicy.String.
func ParseKeyPolicy(s string) (KeyPolicy, error) {
	switch s {
	case `non-blocking`, `nonblocking`, `poll`:
		return NonBlocking, nil
	case `blocking`, `block`:
		return Blocking, nil
	}
	return NonBlocking, errorf(`unknown key policy %q`, s)
}
