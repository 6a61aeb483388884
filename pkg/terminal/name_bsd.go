//go:build darwin || freebsd

package terminal

import (
	"io"

	"golang.org/x/sys/unix"

	"github.com/mutagen-io/posix/pkg/filesystem"
)

// devicesPath is the directory scanned for terminal device nodes.
const devicesPath = "/dev"

// ttyName resolves the pathname of the terminal underlying the specified file
// descriptor by scanning the device directory for a character device with a
// matching device number, the same strategy used by the platform C library
// implementations of ttyname.
func ttyName(fd int) (string, error) {
	// Verify that the descriptor refers to a character device.
	var metadata unix.Stat_t
	if err := fstatRetryingOnEINTR(fd, &metadata); err != nil {
		return "", err
	} else if metadata.Mode&unix.S_IFMT != unix.S_IFCHR {
		return "", unix.ENOTTY
	}

	// Scan the device directory for a matching character device.
	stream, err := filesystem.OpenStream(devicesPath)
	if err != nil {
		return "", err
	}
	defer stream.Close()
	for {
		name, err := stream.ReadName()
		if err == io.EOF {
			return "", unix.ENODEV
		} else if err != nil {
			return "", err
		}
		if name == "." || name == ".." {
			continue
		}
		path := devicesPath + "/" + name
		var candidate unix.Stat_t
		if err := unix.Stat(path, &candidate); err != nil {
			continue
		}
		if candidate.Mode&unix.S_IFMT == unix.S_IFCHR && candidate.Rdev == metadata.Rdev {
			return path, nil
		}
	}
}
