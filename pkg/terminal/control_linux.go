package terminal

import (
	"golang.org/x/sys/unix"
)

// sendBreak transmits a break using the TCSBRKP ioctl with a zero duration,
// which selects the platform default of 0.25 to 0.5 seconds.
func sendBreak(fd int) error {
	return ioctlSetIntRetryingOnEINTR(fd, unix.TCSBRKP, 0)
}

// drain waits for pending output using the TCSBRK ioctl with a non-zero
// argument, which Linux defines to mean tcdrain rather than break
// transmission.
func drain(fd int) error {
	return ioctlSetIntRetryingOnEINTR(fd, unix.TCSBRK, 1)
}

// flushSelectors maps Queue values to TCFLSH arguments.
var flushSelectors = [...]int{
	QueueInput:  unix.TCIFLUSH,
	QueueOutput: unix.TCOFLUSH,
	QueueBoth:   unix.TCIOFLUSH,
}

// flush discards pending data using the TCFLSH ioctl.
func flush(fd int, queue Queue) error {
	return ioctlSetIntRetryingOnEINTR(fd, unix.TCFLSH, flushSelectors[queue])
}

// flowActions maps FlowAction values to TCXONC arguments.
var flowActions = [...]int{
	FlowSuspendOutput: unix.TCOOFF,
	FlowRestartOutput: unix.TCOON,
	FlowTransmitStop:  unix.TCIOFF,
	FlowTransmitStart: unix.TCION,
}

// flow applies a flow control action using the TCXONC ioctl.
func flow(fd int, action FlowAction) error {
	return ioctlSetIntRetryingOnEINTR(fd, unix.TCXONC, flowActions[action])
}
