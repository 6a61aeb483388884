//go:build linux || darwin || freebsd

package terminal

import (
	"errors"

	"golang.org/x/sys/unix"
)

// getTermiosRetryingOnEINTR is a wrapper around the terminal attribute read
// ioctl that retries on EINTR errors and returns on the first successful call
// or non-EINTR error.
func getTermiosRetryingOnEINTR(fd int, request uint) (*unix.Termios, error) {
	for {
		result, err := unix.IoctlGetTermios(fd, request)
		if errors.Is(err, unix.EINTR) {
			continue
		}
		return result, err
	}
}

// setTermiosRetryingOnEINTR is a wrapper around the terminal attribute write
// ioctls that retries on EINTR errors and returns on the first successful
// call or non-EINTR error. POSIX permits tcsetattr to fail with EINTR.
func setTermiosRetryingOnEINTR(fd int, request uint, termios *unix.Termios) error {
	for {
		err := unix.IoctlSetTermios(fd, request, termios)
		if errors.Is(err, unix.EINTR) {
			continue
		}
		return err
	}
}

// ioctlSetIntRetryingOnEINTR is a wrapper around integer-argument ioctls that
// retries on EINTR errors and returns on the first successful call or
// non-EINTR error. It backs the line control operations, several of which
// (drain in particular) can block for extended periods and be interrupted by
// signals.
func ioctlSetIntRetryingOnEINTR(fd int, request uint, value int) error {
	for {
		err := unix.IoctlSetInt(fd, request, value)
		if errors.Is(err, unix.EINTR) {
			continue
		}
		return err
	}
}

// fstatRetryingOnEINTR is a wrapper around the fstat system call that retries
// on EINTR errors and returns on the first successful call or non-EINTR
// error.
func fstatRetryingOnEINTR(fd int, metadata *unix.Stat_t) error {
	for {
		err := unix.Fstat(fd, metadata)
		if errors.Is(err, unix.EINTR) {
			continue
		}
		return err
	}
}

// writeRetryingOnEINTR is a wrapper around the write system call that retries
// on EINTR errors and returns on the first successful call or non-EINTR
// error.
func writeRetryingOnEINTR(fd int, buffer []byte) (int, error) {
	for {
		result, err := unix.Write(fd, buffer)
		if errors.Is(err, unix.EINTR) {
			continue
		}
		return result, err
	}
}
