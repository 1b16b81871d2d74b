// Package sys is the syscall boundary between a freestanding application and its
// host kernel.
//
// An application calls four operations, synchronously and one-way:
//
//   - Present copies a packed 0x00RRGGBB pixel buffer to the display
//   - ReadKey returns one pending key code
//   - OpenAsset opens a file in the read-only asset namespace
//   - ReadAsset reads bytes from an open asset
//
// plus CloseAsset, which releases a handle. The Kernel type implements the
// boundary on top of a Display, a Keyboard and an AssetStore. The application owns
// every buffer it passes in; the kernel only reads (Present) or writes (ReadAsset)
// it for the duration of the call.
package sys
