//go:build linux || darwin || freebsd

package terminal

import (
	"golang.org/x/sys/unix"
)

// WithInputFlags returns a copy of the attributes with the specified input
// mode flags set.
func (a Attributes) WithInputFlags(flags uint64) Attributes {
	a.termios.Iflag |= flagValue(flags)
	return a
}

// WithoutInputFlags returns a copy of the attributes with the specified input
// mode flags cleared.
func (a Attributes) WithoutInputFlags(flags uint64) Attributes {
	a.termios.Iflag &^= flagValue(flags)
	return a
}

// InputFlags returns the attributes' input mode flags.
func (a Attributes) InputFlags() uint64 {
	return uint64(a.termios.Iflag)
}

// WithOutputFlags returns a copy of the attributes with the specified output
// mode flags set.
func (a Attributes) WithOutputFlags(flags uint64) Attributes {
	a.termios.Oflag |= flagValue(flags)
	return a
}

// WithoutOutputFlags returns a copy of the attributes with the specified
// output mode flags cleared.
func (a Attributes) WithoutOutputFlags(flags uint64) Attributes {
	a.termios.Oflag &^= flagValue(flags)
	return a
}

// OutputFlags returns the attributes' output mode flags.
func (a Attributes) OutputFlags() uint64 {
	return uint64(a.termios.Oflag)
}

// WithControlFlags returns a copy of the attributes with the specified
// control mode flags set.
func (a Attributes) WithControlFlags(flags uint64) Attributes {
	a.termios.Cflag |= flagValue(flags)
	return a
}

// WithoutControlFlags returns a copy of the attributes with the specified
// control mode flags cleared.
func (a Attributes) WithoutControlFlags(flags uint64) Attributes {
	a.termios.Cflag &^= flagValue(flags)
	return a
}

// ControlFlags returns the attributes' control mode flags.
func (a Attributes) ControlFlags() uint64 {
	return uint64(a.termios.Cflag)
}

// WithLocalFlags returns a copy of the attributes with the specified local
// mode flags set.
func (a Attributes) WithLocalFlags(flags uint64) Attributes {
	a.termios.Lflag |= flagValue(flags)
	return a
}

// WithoutLocalFlags returns a copy of the attributes with the specified local
// mode flags cleared.
func (a Attributes) WithoutLocalFlags(flags uint64) Attributes {
	a.termios.Lflag &^= flagValue(flags)
	return a
}

// LocalFlags returns the attributes' local mode flags.
func (a Attributes) LocalFlags() uint64 {
	return uint64(a.termios.Lflag)
}

// WithControlCharacter returns a copy of the attributes with the control
// character at the specified index (e.g. unix.VINTR) replaced. It panics if
// the index is outside the platform's control character array.
func (a Attributes) WithControlCharacter(index int, value byte) Attributes {
	a.termios.Cc[index] = value
	return a
}

// ControlCharacter returns the control character at the specified index. It
// panics if the index is outside the platform's control character array.
func (a Attributes) ControlCharacter(index int) byte {
	return a.termios.Cc[index]
}

// WithMinimumInput returns a copy of the attributes with the minimum input
// count (VMIN) for non-canonical reads replaced.
func (a Attributes) WithMinimumInput(count byte) Attributes {
	a.termios.Cc[unix.VMIN] = count
	return a
}

// MinimumInput returns the attributes' minimum input count (VMIN).
func (a Attributes) MinimumInput() byte {
	return a.termios.Cc[unix.VMIN]
}

// WithReadTimeout returns a copy of the attributes with the read timeout
// (VTIME, in tenths of a second) for non-canonical reads replaced.
func (a Attributes) WithReadTimeout(deciseconds byte) Attributes {
	a.termios.Cc[unix.VTIME] = deciseconds
	return a
}

// ReadTimeout returns the attributes' read timeout (VTIME, in tenths of a
// second).
func (a Attributes) ReadTimeout() byte {
	return a.termios.Cc[unix.VTIME]
}

// WithInputSpeed returns a copy of the attributes with the input baud rate
// replaced. It fails if the platform has no encoding for the rate.
func (a Attributes) WithInputSpeed(baud uint32) (Attributes, error) {
	if err := setInputSpeed(&a.termios, baud); err != nil {
		return a, err
	}
	return a, nil
}

// InputSpeed returns the attributes' input baud rate.
func (a Attributes) InputSpeed() uint32 {
	return inputSpeed(&a.termios)
}

// WithOutputSpeed returns a copy of the attributes with the output baud rate
// replaced. It fails if the platform has no encoding for the rate.
func (a Attributes) WithOutputSpeed(baud uint32) (Attributes, error) {
	if err := setOutputSpeed(&a.termios, baud); err != nil {
		return a, err
	}
	return a, nil
}

// OutputSpeed returns the attributes' output baud rate.
func (a Attributes) OutputSpeed() uint32 {
	return outputSpeed(&a.termios)
}
