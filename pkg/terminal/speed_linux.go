package terminal

import (
	"errors"

	"golang.org/x/sys/unix"
)

// errInvalidSpeed indicates a baud rate with no platform encoding.
var errInvalidSpeed = errors.New("baud rate not representable on this platform")

// baudBits maps numeric baud rates to their CBAUD encodings. Linux encodes
// terminal speeds as bit patterns within the control flag word rather than as
// plain numeric fields.
var baudBits = map[uint32]uint32{
	0:       unix.B0,
	50:      unix.B50,
	75:      unix.B75,
	110:     unix.B110,
	134:     unix.B134,
	150:     unix.B150,
	200:     unix.B200,
	300:     unix.B300,
	600:     unix.B600,
	1200:    unix.B1200,
	1800:    unix.B1800,
	2400:    unix.B2400,
	4800:    unix.B4800,
	9600:    unix.B9600,
	19200:   unix.B19200,
	38400:   unix.B38400,
	57600:   unix.B57600,
	115200:  unix.B115200,
	230400:  unix.B230400,
	460800:  unix.B460800,
	500000:  unix.B500000,
	576000:  unix.B576000,
	921600:  unix.B921600,
	1000000: unix.B1000000,
	1152000: unix.B1152000,
	1500000: unix.B1500000,
	2000000: unix.B2000000,
	2500000: unix.B2500000,
	3000000: unix.B3000000,
	3500000: unix.B3500000,
	4000000: unix.B4000000,
}

// baudRates is the inverse of baudBits.
var baudRates map[uint32]uint32

func init() {
	baudRates = make(map[uint32]uint32, len(baudBits))
	for rate, bits := range baudBits {
		baudRates[bits] = rate
	}
}

// setInputSpeed encodes a numeric input baud rate into the attribute
// structure. Linux stores the input speed in the CIBAUD region of the control
// flag word, where a zero value means "same as output speed".
func setInputSpeed(termios *unix.Termios, baud uint32) error {
	bits, ok := baudBits[baud]
	if !ok {
		return errInvalidSpeed
	}
	termios.Cflag &^= unix.CIBAUD
	termios.Cflag |= bits << unix.IBSHIFT
	termios.Ispeed = baud
	return nil
}

// setOutputSpeed encodes a numeric output baud rate into the attribute
// structure.
func setOutputSpeed(termios *unix.Termios, baud uint32) error {
	bits, ok := baudBits[baud]
	if !ok {
		return errInvalidSpeed
	}
	termios.Cflag &^= unix.CBAUD
	termios.Cflag |= bits
	termios.Ospeed = baud
	return nil
}

// inputSpeed decodes the numeric input baud rate from the attribute
// structure.
func inputSpeed(termios *unix.Termios) uint32 {
	bits := (termios.Cflag & unix.CIBAUD) >> unix.IBSHIFT
	if bits == 0 {
		return outputSpeed(termios)
	}
	return baudRates[bits]
}

// outputSpeed decodes the numeric output baud rate from the attribute
// structure.
func outputSpeed(termios *unix.Termios) uint32 {
	return baudRates[termios.Cflag&unix.CBAUD]
}
