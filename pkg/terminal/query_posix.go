//go:build linux || darwin || freebsd

package terminal

import (
	"os"

	"github.com/mattn/go-isatty"
)

// controllingTerminalPath is the pathname of the calling process's
// controlling terminal, as returned by ctermid. POSIX fixes this to a
// constant that's valid whether or not the process currently has a
// controlling terminal.
const controllingTerminalPath = "/dev/tty"

// IsTerminal returns whether or not the specified file descriptor is
// connected to a terminal.
func IsTerminal(fd int) bool {
	return isatty.IsTerminal(uintptr(fd))
}

// Name returns the pathname of the terminal underlying the specified file
// descriptor.
func Name(fd int) (string, error) {
	name, err := ttyName(fd)
	if err != nil {
		return "", os.NewSyscallError("ttyname", err)
	}
	return name, nil
}

// ControllingName returns the pathname of the calling process's controlling
// terminal.
func ControllingName() string {
	return controllingTerminalPath
}
