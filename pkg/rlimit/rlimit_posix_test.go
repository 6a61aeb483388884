//go:build linux || darwin || freebsd

package rlimit

import (
	"errors"
	"testing"

	"golang.org/x/sys/unix"
)

func TestTranslateInfinity(t *testing.T) {
	if limit := limitFromRaw(unix.RLIM_INFINITY); limit.Kind() != LimitKindInfinite {
		t.Error("infinite sentinel not translated to infinite marker:", limit)
	}
}

func TestTranslateExact(t *testing.T) {
	if limit := limitFromRaw(1024); limit != Exact(1024) {
		t.Error("numeric value not translated to exact limit:", limit)
	}
}

func TestTranslateSavedSentinel(t *testing.T) {
	// Inject a saved sentinel value and defer its removal. The platforms we
	// support don't define saved sentinels distinctly, so this is the only
	// way to exercise the unknown variant's translation.
	saved := savedLimitSentinels
	savedLimitSentinels = []uint64{1 << 40}
	defer func() {
		savedLimitSentinels = saved
	}()

	if limit := limitFromRaw(1 << 40); limit.Kind() != LimitKindUnknown {
		t.Error("saved sentinel not translated to unknown marker:", limit)
	}
}

func TestUnknownLimitNotSettable(t *testing.T) {
	if _, err := rawFromLimit(Unknown()); err == nil {
		t.Error("unknown limit translation to raw value succeeded")
	}
	if err := Set(OpenFiles, Unknown(), Infinite()); err == nil {
		t.Error("setting an unknown limit succeeded")
	}
}

func TestGetAllSupported(t *testing.T) {
	for _, resource := range Resources() {
		if soft, hard, err := Get(resource); err != nil {
			t.Errorf("unable to query %s limits: %v", resource, err)
		} else if soft.Kind() == LimitKindUnknown || hard.Kind() == LimitKindUnknown {
			t.Errorf("%s limits reported as unknown on a platform without saved sentinels", resource)
		}
	}
}

func TestGetUnsupportedResource(t *testing.T) {
	// Remove a resource registration and defer its restoration.
	value, registered := resourceValues[FileLocks]
	delete(resourceValues, FileLocks)
	defer func() {
		if registered {
			resourceValues[FileLocks] = value
		}
	}()

	if _, _, err := Get(FileLocks); err == nil {
		t.Error("query succeeded for unsupported resource")
	} else if !errors.Is(err, ErrUnsupportedResource) {
		t.Error("query error does not indicate unsupported resource:", err)
	}
}

func TestSetGetRoundTrip(t *testing.T) {
	// Query the current core file size limits and defer their restoration.
	originalSoft, originalHard, err := Get(CoreFileSize)
	if err != nil {
		t.Fatal("unable to query core file size limits:", err)
	}
	defer func() {
		if err := Set(CoreFileSize, originalSoft, originalHard); err != nil {
			t.Error("unable to restore core file size limits:", err)
		}
	}()

	// Lower the soft limit to a concrete value and verify the round trip.
	if err := Set(CoreFileSize, Exact(0), originalHard); err != nil {
		t.Fatal("unable to set core file size limits:", err)
	}
	if soft, hard, err := Get(CoreFileSize); err != nil {
		t.Fatal("unable to re-query core file size limits:", err)
	} else if soft != Exact(0) {
		t.Error("soft limit does not match the value just set:", soft)
	} else if hard != originalHard {
		t.Error("hard limit changed unexpectedly:", hard)
	}
}

func TestSetInfiniteRoundTrip(t *testing.T) {
	// Query the current core file size limits and defer their restoration.
	// Raising the soft limit to infinity requires an infinite hard limit, so
	// skip the test if that's not the environment we're running in.
	originalSoft, originalHard, err := Get(CoreFileSize)
	if err != nil {
		t.Fatal("unable to query core file size limits:", err)
	}
	if originalHard.Kind() != LimitKindInfinite {
		t.Skip("core file size hard limit is not infinite")
	}
	defer func() {
		if err := Set(CoreFileSize, originalSoft, originalHard); err != nil {
			t.Error("unable to restore core file size limits:", err)
		}
	}()

	// Raise the soft limit to infinity and verify that reading it back
	// yields the infinite marker rather than a numeric value.
	if err := Set(CoreFileSize, Infinite(), originalHard); err != nil {
		t.Fatal("unable to set core file size limits:", err)
	}
	if soft, _, err := Get(CoreFileSize); err != nil {
		t.Fatal("unable to re-query core file size limits:", err)
	} else if soft.Kind() != LimitKindInfinite {
		t.Error("soft limit is not the infinite marker:", soft)
	}
}

func TestParseResourceRoundTrip(t *testing.T) {
	for _, resource := range Resources() {
		if parsed, ok := ParseResource(resource.String()); !ok {
			t.Errorf("unable to parse resource name %q", resource)
		} else if parsed != resource {
			t.Errorf("resource name round trip mismatch: %s != %s", parsed, resource)
		}
	}
	if _, ok := ParseResource("does-not-exist"); ok {
		t.Error("parsing succeeded for invalid resource name")
	}
}
