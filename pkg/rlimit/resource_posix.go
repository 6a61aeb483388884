//go:build linux || darwin || freebsd

package rlimit

import (
	"sort"

	"golang.org/x/sys/unix"
)

// Resource identifies a resource category subject to limits.
type Resource int

const (
	// CPUTime limits CPU time consumption, in seconds.
	CPUTime Resource = iota
	// FileSize limits the size of created files, in bytes.
	FileSize
	// DataSize limits the size of the process data segment, in bytes.
	DataSize
	// StackSize limits the size of the process stack, in bytes.
	StackSize
	// CoreFileSize limits the size of core files, in bytes.
	CoreFileSize
	// ResidentSetSize limits the process resident set, in bytes.
	ResidentSetSize
	// MemoryLocked limits the amount of locked memory, in bytes.
	MemoryLocked
	// Processes limits the number of processes for the invoking user.
	Processes
	// OpenFiles limits the number of open file descriptors.
	OpenFiles
	// AddressSpace limits the size of the process address space, in bytes.
	AddressSpace
	// PendingSignals limits the number of queued signals (Linux only).
	PendingSignals
	// MessageQueueBytes limits POSIX message queue allocations (Linux only).
	MessageQueueBytes
	// NicePriority limits the nice priority ceiling (Linux only).
	NicePriority
	// RealtimePriority limits the realtime priority ceiling (Linux only).
	RealtimePriority
	// RealtimeTimeout limits unblocked realtime CPU consumption, in
	// microseconds (Linux only).
	RealtimeTimeout
	// FileLocks limits the number of file locks (Linux only, historical).
	FileLocks
)

// resourceValues maps resource categories to their operating system values.
// Categories available on every supported platform are registered here;
// platform-specific categories are registered by per-platform init functions.
// A category absent from this map is unsupported on the running platform.
var resourceValues = map[Resource]int{
	CPUTime:         unix.RLIMIT_CPU,
	FileSize:        unix.RLIMIT_FSIZE,
	DataSize:        unix.RLIMIT_DATA,
	StackSize:       unix.RLIMIT_STACK,
	CoreFileSize:    unix.RLIMIT_CORE,
	ResidentSetSize: unix.RLIMIT_RSS,
	MemoryLocked:    unix.RLIMIT_MEMLOCK,
	Processes:       unix.RLIMIT_NPROC,
	OpenFiles:       unix.RLIMIT_NOFILE,
	AddressSpace:    unix.RLIMIT_AS,
}

// resourceNames maps resource categories to their names.
var resourceNames = map[Resource]string{
	CPUTime:           "cpu-time",
	FileSize:          "file-size",
	DataSize:          "data-size",
	StackSize:         "stack-size",
	CoreFileSize:      "core-file-size",
	ResidentSetSize:   "resident-set-size",
	MemoryLocked:      "memory-locked",
	Processes:         "processes",
	OpenFiles:         "open-files",
	AddressSpace:      "address-space",
	PendingSignals:    "pending-signals",
	MessageQueueBytes: "message-queue-bytes",
	NicePriority:      "nice-priority",
	RealtimePriority:  "realtime-priority",
	RealtimeTimeout:   "realtime-timeout",
	FileLocks:         "file-locks",
}

// byteValued indicates which resource categories have byte-denominated
// limits. It exists to support human-readable rendering.
var byteValued = map[Resource]bool{
	FileSize:          true,
	DataSize:          true,
	StackSize:         true,
	CoreFileSize:      true,
	ResidentSetSize:   true,
	MemoryLocked:      true,
	AddressSpace:      true,
	MessageQueueBytes: true,
}

// String provides a human-readable representation of the resource category.
func (r Resource) String() string {
	if name, ok := resourceNames[r]; ok {
		return name
	}
	return "invalid"
}

// Supported returns whether or not the resource category is supported on the
// running platform.
func (r Resource) Supported() bool {
	_, ok := resourceValues[r]
	return ok
}

// ByteValued returns whether or not the resource category's limits are
// denominated in bytes.
func (r Resource) ByteValued() bool {
	return byteValued[r]
}

// ParseResource converts a resource category name (as produced by String) to
// the corresponding Resource value. It returns a boolean indicating whether
// or not the name was valid.
func ParseResource(name string) (Resource, bool) {
	for resource, candidate := range resourceNames {
		if candidate == name {
			return resource, true
		}
	}
	return 0, false
}

// Resources returns the resource categories supported on the running
// platform, in stable order.
func Resources() []Resource {
	resources := make([]Resource, 0, len(resourceValues))
	for resource := range resourceValues {
		resources = append(resources, resource)
	}
	sort.Slice(resources, func(i, j int) bool {
		return resources[i] < resources[j]
	})
	return resources
}
