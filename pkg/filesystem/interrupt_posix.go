//go:build linux || darwin || freebsd

package filesystem

import (
	"errors"

	"golang.org/x/sys/unix"
)

// openRetryingOnEINTR is a wrapper around the open system call that retries on
// EINTR errors and returns on the first successful call or non-EINTR error.
func openRetryingOnEINTR(path string, flags int, mode uint32) (int, error) {
	for {
		result, err := unix.Open(path, flags, mode)
		if errors.Is(err, unix.EINTR) {
			continue
		}
		return result, err
	}
}

// readDirentRetryingOnEINTR is a wrapper around the getdents system call (or
// its platform equivalent) that retries on EINTR errors and returns on the
// first successful call or non-EINTR error. An interrupted read that yields no
// entries on retry simply continues until it produces entries or a clean
// end-of-stream indication (a zero-byte read).
func readDirentRetryingOnEINTR(directory int, buffer []byte) (int, error) {
	for {
		result, err := unix.ReadDirent(directory, buffer)
		if errors.Is(err, unix.EINTR) {
			continue
		}
		return result, err
	}
}

// mkdirRetryingOnEINTR is a wrapper around the mkdir system call that retries
// on EINTR errors and returns on the first successful call or non-EINTR error.
// POSIX doesn't permit mkdir to fail with EINTR, but such failures have been
// observed on macOS, so the retry policy is applied here as well.
func mkdirRetryingOnEINTR(path string, mode uint32) error {
	for {
		err := unix.Mkdir(path, mode)
		if errors.Is(err, unix.EINTR) {
			continue
		}
		return err
	}
}

// rmdirRetryingOnEINTR is a wrapper around the rmdir system call that retries
// on EINTR errors and returns on the first successful call or non-EINTR error.
func rmdirRetryingOnEINTR(path string) error {
	for {
		err := unix.Rmdir(path)
		if errors.Is(err, unix.EINTR) {
			continue
		}
		return err
	}
}

// chdirRetryingOnEINTR is a wrapper around the chdir system call that retries
// on EINTR errors and returns on the first successful call or non-EINTR error.
func chdirRetryingOnEINTR(path string) error {
	for {
		err := unix.Chdir(path)
		if errors.Is(err, unix.EINTR) {
			continue
		}
		return err
	}
}

// fchdirRetryingOnEINTR is a wrapper around the fchdir system call that
// retries on EINTR errors and returns on the first successful call or
// non-EINTR error.
func fchdirRetryingOnEINTR(directory int) error {
	for {
		err := unix.Fchdir(directory)
		if errors.Is(err, unix.EINTR) {
			continue
		}
		return err
	}
}

// seekConsideringEINTR is a direct passthrough to the lseek system call that
// doesn't retry on EINTR. It's only defined to highlight the intentional
// absence of seekRetryingOnEINTR. seekRetryingOnEINTR is left unimplemented
// because it would have to handle cases of partially successful seeks and
// because POSIX doesn't specify that lseek can return EINTR. The Go standard
// library and runtime also invoke lseek without retrying on EINTR.
func seekConsideringEINTR(file int, offset int64, whence int) (int64, error) {
	return unix.Seek(file, offset, whence)
}

// closeConsideringEINTR is a direct passthrough to the close system call that
// doesn't retry on EINTR. It's only defined to highlight the intentional
// absence of closeRetryingOnEINTR. closeRetryingOnEINTR is left unimplemented
// because POSIX makes no guarantees about the state of a file descriptor in
// the event of an EINTR error, and thus retrying closure could lead to a race
// condition with file descriptor re-use if the file is, in fact, closed. This
// is the same policy adopted by the Go standard library and runtime.
func closeConsideringEINTR(file int) error {
	return unix.Close(file)
}
