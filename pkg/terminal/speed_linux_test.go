package terminal

import (
	"testing"
)

func TestUnrepresentableSpeedRejected(t *testing.T) {
	var original Attributes
	if _, err := original.WithInputSpeed(12345); err == nil {
		t.Error("unrepresentable input speed accepted")
	}
	if _, err := original.WithOutputSpeed(12345); err == nil {
		t.Error("unrepresentable output speed accepted")
	}
}

func TestInputSpeedFollowsOutputWhenUnset(t *testing.T) {
	// An unset input speed region means "same as output speed".
	var original Attributes
	modified, err := original.WithOutputSpeed(9600)
	if err != nil {
		t.Fatal("unable to set output speed:", err)
	}
	if speed := modified.InputSpeed(); speed != 9600 {
		t.Error("input speed does not follow output speed:", speed)
	}
}
