package terminal

import (
	"errors"
)

// ErrNotSupported indicates that a terminal facility is not supported on the
// running platform.
var ErrNotSupported = errors.New("not supported on this platform")
