//go:build darwin || freebsd

package terminal

import (
	"time"

	"golang.org/x/sys/unix"
)

// breakDuration is the duration for which a break condition is asserted. BSD
// systems don't provide a single fixed-duration break ioctl, so break
// transmission is implemented as an assert-sleep-clear sequence, the same way
// the platform C libraries implement tcsendbreak.
const breakDuration = 400 * time.Millisecond

// fread and fwrite are the kernel queue selector flags accepted by the
// TIOCFLUSH ioctl (FREAD and FWRITE from sys/file.h).
const (
	fread  = 0x1
	fwrite = 0x2
)

// sendBreak transmits a break by asserting the break condition, sleeping, and
// clearing it.
func sendBreak(fd int) error {
	if err := ioctlSetIntRetryingOnEINTR(fd, unix.TIOCSBRK, 0); err != nil {
		return err
	}
	time.Sleep(breakDuration)
	return ioctlSetIntRetryingOnEINTR(fd, unix.TIOCCBRK, 0)
}

// drain waits for pending output using the TIOCDRAIN ioctl.
func drain(fd int) error {
	return ioctlSetIntRetryingOnEINTR(fd, unix.TIOCDRAIN, 0)
}

// flushSelectors maps Queue values to TIOCFLUSH arguments.
var flushSelectors = [...]int{
	QueueInput:  fread,
	QueueOutput: fwrite,
	QueueBoth:   fread | fwrite,
}

// flush discards pending data using the TIOCFLUSH ioctl, which takes its
// queue selector by pointer.
func flush(fd int, queue Queue) error {
	return unix.IoctlSetPointerInt(fd, unix.TIOCFLUSH, flushSelectors[queue])
}

// flow applies a flow control action. Output suspension and restart have
// dedicated ioctls; peer transmission control is implemented by writing the
// terminal's STOP or START character, the same way the platform C libraries
// implement tcflow. A disabled control character (VDISABLE) makes the
// corresponding action a no-op.
func flow(fd int, action FlowAction) error {
	switch action {
	case FlowSuspendOutput:
		return ioctlSetIntRetryingOnEINTR(fd, unix.TIOCSTOP, 0)
	case FlowRestartOutput:
		return ioctlSetIntRetryingOnEINTR(fd, unix.TIOCSTART, 0)
	case FlowTransmitStop, FlowTransmitStart:
		termios, err := getTermiosRetryingOnEINTR(fd, ioctlReadTermios)
		if err != nil {
			return err
		}
		index := unix.VSTOP
		if action == FlowTransmitStart {
			index = unix.VSTART
		}
		character := termios.Cc[index]
		if character == vdisable {
			return nil
		}
		_, err = writeRetryingOnEINTR(fd, []byte{character})
		return err
	default:
		return errInvalidFlowAction
	}
}

// vdisable is the control character value that disables the corresponding
// function (_POSIX_VDISABLE).
const vdisable = 0xff
