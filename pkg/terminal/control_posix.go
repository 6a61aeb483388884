//go:build linux || darwin || freebsd

package terminal

import (
	"errors"
	"os"

	"golang.org/x/sys/unix"
)

// Queue identifies a terminal data queue for flush operations.
type Queue uint8

const (
	// QueueInput selects pending input that has been received but not read.
	QueueInput Queue = iota
	// QueueOutput selects pending output that has been written but not
	// transmitted.
	QueueOutput
	// QueueBoth selects both pending input and pending output.
	QueueBoth
)

// FlowAction identifies a flow control action.
type FlowAction uint8

const (
	// FlowSuspendOutput suspends output transmission (TCOOFF).
	FlowSuspendOutput FlowAction = iota
	// FlowRestartOutput restarts suspended output transmission (TCOON).
	FlowRestartOutput
	// FlowTransmitStop transmits a STOP character, asking the peer to pause
	// transmission (TCIOFF).
	FlowTransmitStop
	// FlowTransmitStart transmits a START character, asking the peer to
	// resume transmission (TCION).
	FlowTransmitStart
)

// errInvalidQueue indicates an unrecognized queue selector.
var errInvalidQueue = errors.New("invalid queue selector")

// errInvalidFlowAction indicates an unrecognized flow control action.
var errInvalidFlowAction = errors.New("invalid flow control action")

// SendBreak transmits a break (a continuous stream of zero-valued bits) for a
// platform-determined duration on the terminal underlying the specified file
// descriptor.
func SendBreak(fd int) error {
	if err := sendBreak(fd); err != nil {
		return os.NewSyscallError("tcsendbreak", err)
	}
	return nil
}

// Drain blocks until all pending output on the terminal underlying the
// specified file descriptor has been transmitted. It can block indefinitely
// if the consuming device never drains its buffer.
func Drain(fd int) error {
	if err := drain(fd); err != nil {
		return os.NewSyscallError("tcdrain", err)
	}
	return nil
}

// Flush discards data in the selected queue(s) of the terminal underlying
// the specified file descriptor.
func Flush(fd int, queue Queue) error {
	if queue > QueueBoth {
		return errInvalidQueue
	}
	if err := flush(fd, queue); err != nil {
		return os.NewSyscallError("tcflush", err)
	}
	return nil
}

// Flow applies a flow control action to the terminal underlying the specified
// file descriptor.
func Flow(fd int, action FlowAction) error {
	if action > FlowTransmitStart {
		return errInvalidFlowAction
	}
	if err := flow(fd, action); err != nil {
		return os.NewSyscallError("tcflow", err)
	}
	return nil
}

// GetProcessGroup returns the foreground process group of the terminal
// underlying the specified file descriptor.
func GetProcessGroup(fd int) (int, error) {
	pgid, err := unix.IoctlGetInt(fd, unix.TIOCGPGRP)
	if err != nil {
		return 0, os.NewSyscallError("tcgetpgrp", err)
	}
	return pgid, nil
}

// SetProcessGroup sets the foreground process group of the terminal
// underlying the specified file descriptor.
func SetProcessGroup(fd int, pgid int) error {
	if err := unix.IoctlSetPointerInt(fd, unix.TIOCSPGRP, pgid); err != nil {
		return os.NewSyscallError("tcsetpgrp", err)
	}
	return nil
}
