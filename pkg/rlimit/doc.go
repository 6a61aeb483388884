// Package rlimit provides access to process resource limits via the POSIX
// getrlimit and setrlimit facilities. Limit values are modeled as a tagged
// union that distinguishes concrete ceilings from the operating system's
// infinite and platform-reserved sentinel values, so that sentinels can never
// be mistaken for ordinary numeric limits.
package rlimit
