// Package must provides helpers for cleanup operations whose failures are
// worth reporting but not worth propagating.
package must

import (
	"io"

	"github.com/mutagen-io/posix/pkg/logging"
)

// Close closes a closer and logs any failure.
func Close(c io.Closer, logger *logging.Logger) {
	if err := c.Close(); err != nil {
		logger.Warnf("Unable to close: %s", err.Error())
	}
}

// Succeed logs a failure of the specified task.
func Succeed(err error, task string, logger *logging.Logger) {
	if err != nil {
		logger.Warnf("Unable to succeed at %s: %s", task, err.Error())
	}
}
