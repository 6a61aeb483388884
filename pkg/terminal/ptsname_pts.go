//go:build linux || freebsd

package terminal

import (
	"os"
	"strconv"

	"golang.org/x/sys/unix"
)

// PtsName returns the pathname of the pseudoterminal slave corresponding to
// the pseudoterminal master underlying the specified file descriptor. Both
// Linux and FreeBSD expose the slave index via the TIOCGPTN ioctl and name
// slave devices under /dev/pts.
func PtsName(fd int) (string, error) {
	index, err := unix.IoctlGetInt(fd, unix.TIOCGPTN)
	if err != nil {
		return "", os.NewSyscallError("ptsname", err)
	}
	return "/dev/pts/" + strconv.Itoa(index), nil
}
