package terminal

import (
	"golang.org/x/sys/unix"
)

// ioctlReadTermios is the ioctl request used to read terminal attributes.
const ioctlReadTermios = unix.TIOCGETA

// ioctlWriteTermios maps When values to the ioctl requests used to write
// terminal attributes under the corresponding timing policy.
var ioctlWriteTermios = [...]uint{
	WhenNow:   unix.TIOCSETA,
	WhenDrain: unix.TIOCSETAW,
	WhenFlush: unix.TIOCSETAF,
}

// flagValue is the platform's terminal mode flag word type.
type flagValue = uint64

// speedValue is the platform's terminal speed field type.
type speedValue = uint64
