package terminal

import (
	"os"
	"syscall"
	"unsafe"

	"golang.org/x/sys/unix"
)

// PtsName returns the pathname of the pseudoterminal slave corresponding to
// the pseudoterminal master underlying the specified file descriptor. The
// TIOCPTYGNAME ioctl fills a fixed 128-byte buffer defined by the kernel.
func PtsName(fd int) (string, error) {
	var buffer [128]byte
	if _, _, errno := syscall.Syscall(
		syscall.SYS_IOCTL,
		uintptr(fd),
		uintptr(unix.TIOCPTYGNAME),
		uintptr(unsafe.Pointer(&buffer[0])),
	); errno != 0 {
		return "", os.NewSyscallError("ptsname", errno)
	}
	for i, b := range buffer {
		if b == 0 {
			return string(buffer[:i]), nil
		}
	}
	return string(buffer[:]), nil
}
