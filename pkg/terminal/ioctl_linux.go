package terminal

import (
	"golang.org/x/sys/unix"
)

// ioctlReadTermios is the ioctl request used to read terminal attributes.
const ioctlReadTermios = unix.TCGETS

// ioctlWriteTermios maps When values to the ioctl requests used to write
// terminal attributes under the corresponding timing policy.
var ioctlWriteTermios = [...]uint{
	WhenNow:   unix.TCSETS,
	WhenDrain: unix.TCSETSW,
	WhenFlush: unix.TCSETSF,
}

// flagValue is the platform's terminal mode flag word type.
type flagValue = uint32
