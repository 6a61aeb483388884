package terminal

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// ttyName resolves the pathname of the terminal underlying the specified file
// descriptor by reading the descriptor's procfs symbolic link and verifying
// that the result still refers to the same character device.
func ttyName(fd int) (string, error) {
	// Verify that the descriptor refers to a character device.
	var metadata unix.Stat_t
	if err := fstatRetryingOnEINTR(fd, &metadata); err != nil {
		return "", err
	} else if metadata.Mode&unix.S_IFMT != unix.S_IFCHR {
		return "", unix.ENOTTY
	}

	// Resolve the descriptor's target path.
	path, err := os.Readlink(fmt.Sprintf("/proc/self/fd/%d", fd))
	if err != nil {
		return "", err
	}

	// Verify that the path still refers to the descriptor's device. The
	// descriptor could have outlived the name it was opened under (e.g. if a
	// pseudoterminal was closed and its name reused), in which case the
	// procfs link is stale.
	var check unix.Stat_t
	if err := unix.Stat(path, &check); err != nil {
		return "", unix.ENODEV
	} else if check.Mode&unix.S_IFMT != unix.S_IFCHR || check.Rdev != metadata.Rdev {
		return "", unix.ENODEV
	}

	return path, nil
}
