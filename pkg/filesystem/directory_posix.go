//go:build linux || darwin || freebsd

package filesystem

import (
	"os"

	"golang.org/x/sys/unix"
)

// Mkdir creates a directory at the specified path with the specified
// permission bits (subject to the process umask).
func Mkdir(path string, mode uint32) error {
	if err := mkdirRetryingOnEINTR(path, mode); err != nil {
		return &os.PathError{Op: "mkdir", Path: path, Err: err}
	}
	return nil
}

// Rmdir removes the directory at the specified path. The target must be
// empty.
func Rmdir(path string) error {
	if err := rmdirRetryingOnEINTR(path); err != nil {
		return &os.PathError{Op: "rmdir", Path: path, Err: err}
	}
	return nil
}

// CurrentDirectory returns the working directory of the calling process. The
// underlying getcwd call determines how symbolic links in the path are
// resolved, so the result is not guaranteed to be byte-identical to the path
// most recently passed to ChangeDirectory.
func CurrentDirectory() (string, error) {
	return unix.Getwd()
}

// ChangeDirectory changes the working directory of the calling process to the
// specified path.
func ChangeDirectory(path string) error {
	if err := chdirRetryingOnEINTR(path); err != nil {
		return &os.PathError{Op: "chdir", Path: path, Err: err}
	}
	return nil
}
