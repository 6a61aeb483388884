//go:build unix && !linux && !darwin && !freebsd

package terminal

// PtsName returns the pathname of the pseudoterminal slave corresponding to
// the pseudoterminal master underlying the specified file descriptor. It is
// unsupported on this platform.
func PtsName(fd int) (string, error) {
	return "", ErrNotSupported
}
