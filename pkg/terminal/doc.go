// Package terminal provides access to POSIX terminal line-discipline
// facilities: attribute snapshots (termios), line control (break, drain,
// flush, and flow control), terminal identification, pseudoterminal slave
// name resolution, and controlling process group management. Attribute
// snapshots are immutable values transformed by copy-modify-apply cycles.
package terminal
