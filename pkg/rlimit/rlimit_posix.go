//go:build linux || darwin || freebsd

package rlimit

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"
)

// ErrUnsupportedResource indicates that a resource category is not supported
// on the running platform.
var ErrUnsupportedResource = errors.New("resource not supported on this platform")

// errUnsettableLimit indicates an attempt to set a limit whose value is not
// representable to the operating system.
var errUnsettableLimit = errors.New("limit value cannot be set")

// savedLimitSentinels enumerates the platform's reserved "saved" rlimit
// sentinel values (RLIM_SAVED_CUR and RLIM_SAVED_MAX where they differ from
// RLIM_INFINITY). POSIX reserves these sentinels but the platforms currently
// supported by this package don't define them distinctly, so the slice is
// empty here. It remains a variable so that platforms which do define them
// can contribute values and so that translation of the unknown variant stays
// exercised by tests.
var savedLimitSentinels []uint64

// limitFromRaw translates a raw operating system limit value into a Limit.
func limitFromRaw(raw uint64) Limit {
	if raw == unix.RLIM_INFINITY {
		return Infinite()
	}
	for _, sentinel := range savedLimitSentinels {
		if raw == sentinel {
			return Unknown()
		}
	}
	return Exact(raw)
}

// rawFromLimit translates a Limit into a raw operating system limit value.
// Unknown limits are rejected because their numeric value is, by definition,
// not representable.
func rawFromLimit(limit Limit) (uint64, error) {
	switch limit.Kind() {
	case LimitKindExact:
		value, _ := limit.Value()
		return value, nil
	case LimitKindInfinite:
		return unix.RLIM_INFINITY, nil
	case LimitKindUnknown:
		return 0, errUnsettableLimit
	default:
		return 0, errUnsettableLimit
	}
}

// Get returns the current soft and hard limits for the specified resource
// category.
func Get(resource Resource) (Limit, Limit, error) {
	// Look up the platform value for the resource.
	value, ok := resourceValues[resource]
	if !ok {
		return Limit{}, Limit{}, fmt.Errorf("%s: %w", resource, ErrUnsupportedResource)
	}

	// Perform the query.
	var raw unix.Rlimit
	if err := unix.Getrlimit(value, &raw); err != nil {
		return Limit{}, Limit{}, fmt.Errorf("unable to query %s limits: %w", resource, err)
	}

	// Translate the results.
	return limitFromRaw(uint64(raw.Cur)), limitFromRaw(uint64(raw.Max)), nil
}

// Set applies the specified soft and hard limits to the specified resource
// category. Raising the hard limit or raising the soft limit above the hard
// limit requires appropriate privileges, which this function does not check;
// the operating system's denial is simply propagated.
func Set(resource Resource, soft, hard Limit) error {
	// Look up the platform value for the resource.
	value, ok := resourceValues[resource]
	if !ok {
		return fmt.Errorf("%s: %w", resource, ErrUnsupportedResource)
	}

	// Translate the limits, rejecting unrepresentable values before reaching
	// the operating system.
	rawSoft, err := rawFromLimit(soft)
	if err != nil {
		return fmt.Errorf("invalid soft limit: %w", err)
	}
	rawHard, err := rawFromLimit(hard)
	if err != nil {
		return fmt.Errorf("invalid hard limit: %w", err)
	}

	// Perform the update.
	raw := unix.Rlimit{Cur: rlimitValue(rawSoft), Max: rlimitValue(rawHard)}
	if err := unix.Setrlimit(value, &raw); err != nil {
		return fmt.Errorf("unable to set %s limits: %w", resource, err)
	}

	// Success.
	return nil
}
