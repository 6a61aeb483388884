package rlimit

import (
	"strconv"
)

// LimitKind identifies the variant held by a Limit value.
type LimitKind uint8

const (
	// LimitKindExact indicates a concrete numeric limit.
	LimitKindExact LimitKind = iota
	// LimitKindInfinite indicates the absence of any limit, corresponding to
	// the operating system's RLIM_INFINITY sentinel.
	LimitKindInfinite
	// LimitKindUnknown indicates a limit that the operating system reported
	// using a reserved sentinel value (such as RLIM_SAVED_CUR or
	// RLIM_SAVED_MAX on platforms that define them distinctly) and whose
	// numeric value is therefore not representable.
	LimitKindUnknown
)

// String provides a human-readable representation of a limit kind.
func (k LimitKind) String() string {
	switch k {
	case LimitKindExact:
		return "exact"
	case LimitKindInfinite:
		return "infinite"
	case LimitKindUnknown:
		return "unknown"
	default:
		return "invalid"
	}
}

// Limit represents a single resource limit value: either a concrete numeric
// ceiling, the infinite marker, or the unknown marker. The zero value is an
// exact limit of zero.
type Limit struct {
	// kind is the limit's variant.
	kind LimitKind
	// value is the limit's numeric value. It is only meaningful when kind is
	// LimitKindExact.
	value uint64
}

// Exact returns a concrete numeric limit.
func Exact(value uint64) Limit {
	return Limit{kind: LimitKindExact, value: value}
}

// Infinite returns the infinite limit marker.
func Infinite() Limit {
	return Limit{kind: LimitKindInfinite}
}

// Unknown returns the unknown limit marker.
func Unknown() Limit {
	return Limit{kind: LimitKindUnknown}
}

// Kind returns the limit's variant.
func (l Limit) Kind() LimitKind {
	return l.kind
}

// Value returns the limit's numeric value and whether or not that value is
// meaningful (i.e. whether or not the limit is an exact limit).
func (l Limit) Value() (uint64, bool) {
	return l.value, l.kind == LimitKindExact
}

// String provides a human-readable representation of the limit.
func (l Limit) String() string {
	switch l.kind {
	case LimitKindExact:
		return strconv.FormatUint(l.value, 10)
	case LimitKindInfinite:
		return "unlimited"
	case LimitKindUnknown:
		return "unknown"
	default:
		return "invalid"
	}
}
