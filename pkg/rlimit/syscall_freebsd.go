package rlimit

// rlimitValue is the element type of the platform rlimit structure.
type rlimitValue = int64
