// Package filesystem provides thin wrappers around POSIX directory
// facilities: directory creation and removal, working directory control, and
// readdir-style directory streams with telldir/seekdir support. All wrappers
// retry transparently on EINTR where retrying is safe.
package filesystem
