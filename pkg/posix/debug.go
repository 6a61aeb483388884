package posix

import (
	"os"
)

// DebugEnabled controls whether or not debugging is enabled for the library.
// It is set automatically based on the POSIX_DEBUG environment variable.
var DebugEnabled bool

func init() {
	// Check whether or not debugging should be enabled.
	DebugEnabled = os.Getenv("POSIX_DEBUG") == "1"
}
