package rlimit

import (
	"golang.org/x/sys/unix"
)

func init() {
	// Register the Linux-specific resource categories.
	resourceValues[PendingSignals] = unix.RLIMIT_SIGPENDING
	resourceValues[MessageQueueBytes] = unix.RLIMIT_MSGQUEUE
	resourceValues[NicePriority] = unix.RLIMIT_NICE
	resourceValues[RealtimePriority] = unix.RLIMIT_RTPRIO
	resourceValues[RealtimeTimeout] = unix.RLIMIT_RTTIME
	resourceValues[FileLocks] = unix.RLIMIT_LOCKS
}
