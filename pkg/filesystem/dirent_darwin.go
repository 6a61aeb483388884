package filesystem

import (
	"errors"
	"unsafe"

	"golang.org/x/sys/unix"
)

// errCorruptDirectoryEntry indicates that the operating system returned a raw
// directory entry with an invalid record length.
var errCorruptDirectoryEntry = errors.New("corrupt directory entry")

// parseDirent decodes the first raw directory entry in the buffer. It returns
// the entry's name, the stream position cookie for resuming iteration after
// the entry, and the number of buffer bytes consumed. An empty name with a
// nil error indicates an entry that should be skipped (a hole left by
// deletion).
func parseDirent(buffer []byte) (string, int64, int, error) {
	// Ensure that a full header is present and that the record length is
	// sane.
	entry := (*unix.Dirent)(unsafe.Pointer(&buffer[0]))
	if len(buffer) < int(unsafe.Offsetof(entry.Name)) {
		return "", 0, 0, errCorruptDirectoryEntry
	}
	length := int(entry.Reclen)
	if length < int(unsafe.Offsetof(entry.Name)) || length > len(buffer) {
		return "", 0, 0, errCorruptDirectoryEntry
	}

	// Skip entries for deleted files.
	if entry.Ino == 0 {
		return "", int64(entry.Seekoff), length, nil
	}

	// Extract the name using its recorded length, guarding against a length
	// that overruns the record.
	if int(unsafe.Offsetof(entry.Name))+int(entry.Namlen) > length {
		return "", 0, 0, errCorruptDirectoryEntry
	}
	name := buffer[unsafe.Offsetof(entry.Name) : int(unsafe.Offsetof(entry.Name))+int(entry.Namlen)]

	return string(name), int64(entry.Seekoff), length, nil
}
