//go:build linux || darwin || freebsd

package terminal

import (
	"bytes"
	"os"
	"runtime"
	"testing"

	"github.com/creack/pty"
	"golang.org/x/sys/unix"

	"github.com/mutagen-io/posix/pkg/logging"
	"github.com/mutagen-io/posix/pkg/must"
)

// openPty opens a pseudoterminal pair and registers cleanup for both ends.
func openPty(t *testing.T) (*os.File, *os.File) {
	t.Helper()
	logger := logging.NewLogger(logging.LevelError, &bytes.Buffer{})
	master, slave, err := pty.Open()
	if err != nil {
		t.Fatal("unable to open pseudoterminal:", err)
	}
	t.Cleanup(func() {
		must.Close(master, logger)
		must.Close(slave, logger)
	})
	return master, slave
}

func TestIsTerminal(t *testing.T) {
	_, slave := openPty(t)
	if !IsTerminal(int(slave.Fd())) {
		t.Error("pseudoterminal slave not identified as a terminal")
	}

	file, err := os.CreateTemp(t.TempDir(), "posix_terminal")
	if err != nil {
		t.Fatal("unable to create temporary file:", err)
	}
	defer file.Close()
	if IsTerminal(int(file.Fd())) {
		t.Error("regular file identified as a terminal")
	}
}

func TestGetSetAttributes(t *testing.T) {
	_, slave := openPty(t)
	fd := int(slave.Fd())

	// Fetch the current attributes and defer their restoration.
	original, err := GetAttributes(fd)
	if err != nil {
		t.Fatal("unable to fetch attributes:", err)
	}
	defer func() {
		if err := SetAttributes(fd, WhenNow, original); err != nil {
			t.Error("unable to restore attributes:", err)
		}
	}()

	// Apply a modified snapshot and verify that the modification took
	// effect.
	modified := original.WithoutLocalFlags(unix.ECHO).WithMinimumInput(1).WithReadTimeout(0)
	if err := SetAttributes(fd, WhenFlush, modified); err != nil {
		t.Fatal("unable to apply attributes:", err)
	}
	current, err := GetAttributes(fd)
	if err != nil {
		t.Fatal("unable to re-fetch attributes:", err)
	}
	if current.LocalFlags()&unix.ECHO != 0 {
		t.Error("echo flag still set after application")
	}
	if current.MinimumInput() != 1 {
		t.Error("minimum input count not applied:", current.MinimumInput())
	}
}

func TestSetAttributesInvalidWhen(t *testing.T) {
	_, slave := openPty(t)
	if err := SetAttributes(int(slave.Fd()), When(42), Attributes{}); err != errInvalidWhen {
		t.Error("invalid timing policy not rejected:", err)
	}
}

func TestGetAttributesNonTerminal(t *testing.T) {
	file, err := os.CreateTemp(t.TempDir(), "posix_terminal")
	if err != nil {
		t.Fatal("unable to create temporary file:", err)
	}
	defer file.Close()
	if _, err := GetAttributes(int(file.Fd())); err == nil {
		t.Error("attribute fetch succeeded for non-terminal descriptor")
	}
}

func TestName(t *testing.T) {
	_, slave := openPty(t)
	name, err := Name(int(slave.Fd()))
	if err != nil {
		t.Fatal("unable to resolve terminal name:", err)
	}
	if name != slave.Name() {
		t.Errorf("terminal name does not match: %s != %s", name, slave.Name())
	}
}

func TestNameNonTerminal(t *testing.T) {
	file, err := os.CreateTemp(t.TempDir(), "posix_terminal")
	if err != nil {
		t.Fatal("unable to create temporary file:", err)
	}
	defer file.Close()
	if _, err := Name(int(file.Fd())); err == nil {
		t.Error("name resolution succeeded for non-terminal descriptor")
	}
}

func TestPtsName(t *testing.T) {
	master, slave := openPty(t)
	name, err := PtsName(int(master.Fd()))
	if err != nil {
		t.Fatal("unable to resolve slave name:", err)
	}
	if name != slave.Name() {
		t.Errorf("slave name does not match: %s != %s", name, slave.Name())
	}
}

func TestPtsNameNonMaster(t *testing.T) {
	file, err := os.CreateTemp(t.TempDir(), "posix_terminal")
	if err != nil {
		t.Fatal("unable to create temporary file:", err)
	}
	defer file.Close()
	if _, err := PtsName(int(file.Fd())); err == nil {
		t.Error("slave name resolution succeeded for non-master descriptor")
	}
}

func TestControllingName(t *testing.T) {
	if name := ControllingName(); name != "/dev/tty" {
		t.Error("controlling terminal name has unexpected value:", name)
	}
}

func TestFlush(t *testing.T) {
	_, slave := openPty(t)
	fd := int(slave.Fd())
	for _, queue := range []Queue{QueueInput, QueueOutput, QueueBoth} {
		if err := Flush(fd, queue); err != nil {
			t.Errorf("unable to flush queue %d: %v", queue, err)
		}
	}
	if err := Flush(fd, Queue(42)); err != errInvalidQueue {
		t.Error("invalid queue selector not rejected:", err)
	}
}

func TestFlow(t *testing.T) {
	_, slave := openPty(t)
	fd := int(slave.Fd())

	// Suspend and restart output.
	if err := Flow(fd, FlowSuspendOutput); err != nil {
		t.Error("unable to suspend output:", err)
	}
	if err := Flow(fd, FlowRestartOutput); err != nil {
		t.Error("unable to restart output:", err)
	}

	// Verify rejection of invalid actions.
	if err := Flow(fd, FlowAction(42)); err != errInvalidFlowAction {
		t.Error("invalid flow action not rejected:", err)
	}
}

func TestDrain(t *testing.T) {
	_, slave := openPty(t)
	if err := Drain(int(slave.Fd())); err != nil {
		t.Error("unable to drain pending output:", err)
	}
}

func TestSendBreak(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("break transmission on pseudoterminals is only reliable on Linux")
	}
	_, slave := openPty(t)
	if err := SendBreak(int(slave.Fd())); err != nil {
		t.Error("unable to send break:", err)
	}
}

func TestProcessGroup(t *testing.T) {
	// A freshly opened pseudoterminal is not the controlling terminal of any
	// session, so the query may be denied with ENOTTY depending on the
	// platform. The requirement here is a well-formed result or a
	// well-formed error, never a crash.
	_, slave := openPty(t)
	if pgid, err := GetProcessGroup(int(slave.Fd())); err == nil {
		if pgid < 0 {
			t.Error("foreground process group is negative:", pgid)
		}
	}
}
