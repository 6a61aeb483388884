//go:build linux || darwin || freebsd

package terminal

import (
	"errors"
	"os"

	"golang.org/x/sys/unix"
)

// When selects the timing policy for attribute application.
type When uint8

const (
	// WhenNow applies attributes immediately (TCSANOW).
	WhenNow When = iota
	// WhenDrain applies attributes after pending output has drained
	// (TCSADRAIN).
	WhenDrain
	// WhenFlush applies attributes after pending output has drained and
	// discards pending input (TCSAFLUSH).
	WhenFlush
)

// errInvalidWhen indicates an unrecognized attribute application timing
// policy.
var errInvalidWhen = errors.New("invalid attribute application timing")

// Attributes is an opaque snapshot of a terminal's line-discipline settings.
// It is a value type: transformer methods return modified copies and never
// mutate their receiver, so a snapshot fetched from a terminal can serve as a
// pristine restoration point while modified copies are applied. Attributes
// values are comparable with ==.
type Attributes struct {
	// termios is the raw platform attribute structure.
	termios unix.Termios
}

// GetAttributes fetches the attribute snapshot of the terminal underlying the
// specified file descriptor.
func GetAttributes(fd int) (Attributes, error) {
	termios, err := getTermiosRetryingOnEINTR(fd, ioctlReadTermios)
	if err != nil {
		return Attributes{}, os.NewSyscallError("tcgetattr", err)
	}
	return Attributes{termios: *termios}, nil
}

// SetAttributes applies an attribute snapshot to the terminal underlying the
// specified file descriptor using the specified timing policy.
func SetAttributes(fd int, when When, attributes Attributes) error {
	if int(when) >= len(ioctlWriteTermios) {
		return errInvalidWhen
	}
	if err := setTermiosRetryingOnEINTR(fd, ioctlWriteTermios[when], &attributes.termios); err != nil {
		return os.NewSyscallError("tcsetattr", err)
	}
	return nil
}
