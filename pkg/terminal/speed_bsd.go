//go:build darwin || freebsd

package terminal

import (
	"golang.org/x/sys/unix"
)

// setInputSpeed encodes a numeric input baud rate into the attribute
// structure. BSD systems store terminal speeds as plain numeric fields, so
// any rate is representable.
func setInputSpeed(termios *unix.Termios, baud uint32) error {
	termios.Ispeed = speedValue(baud)
	return nil
}

// setOutputSpeed encodes a numeric output baud rate into the attribute
// structure.
func setOutputSpeed(termios *unix.Termios, baud uint32) error {
	termios.Ospeed = speedValue(baud)
	return nil
}

// inputSpeed decodes the numeric input baud rate from the attribute
// structure.
func inputSpeed(termios *unix.Termios) uint32 {
	return uint32(termios.Ispeed)
}

// outputSpeed decodes the numeric output baud rate from the attribute
// structure.
func outputSpeed(termios *unix.Termios) uint32 {
	return uint32(termios.Ospeed)
}
