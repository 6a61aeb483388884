//go:build linux || darwin || freebsd

package filesystem

import (
	"io"
	"os"

	"golang.org/x/sys/unix"
)

// streamBufferSize is the size of the buffer used for raw directory entry
// reads. It matches the buffer size used by the os package for the same
// purpose.
const streamBufferSize = 8192

// Stream represents an open directory stream, analogous to the DIR stream
// produced by opendir. It reads raw directory entries from the operating
// system in batches and yields one entry name per ReadName call. A Stream is
// exclusively owned by its creator and is not safe for concurrent usage. It
// must be released with a single call to Close.
type Stream struct {
	// path is the path with which the stream was opened. It is retained for
	// error reporting only.
	path string
	// descriptor is the directory's file descriptor.
	descriptor int
	// buffer is the raw entry read buffer.
	buffer []byte
	// pending is the unparsed remainder of the most recent raw read. It
	// aliases buffer.
	pending []byte
	// position is the stream position cookie corresponding to the next entry
	// to be returned, suitable for use with Seek.
	position int64
}

// OpenStream opens the directory at the specified path for iteration. Unlike
// most open operations in this package's sibling code, symbolic links are
// traversed, matching opendir semantics. A path that doesn't exist yields an
// error satisfying os.IsNotExist.
func OpenStream(path string) (*Stream, error) {
	descriptor, err := openRetryingOnEINTR(path, unix.O_RDONLY|unix.O_DIRECTORY|unix.O_CLOEXEC, 0)
	if err != nil {
		return nil, &os.PathError{Op: "opendir", Path: path, Err: err}
	}
	return &Stream{
		path:       path,
		descriptor: descriptor,
		buffer:     make([]byte, streamBufferSize),
	}, nil
}

// ReadName returns the name of the next directory entry. It returns io.EOF
// once the stream is exhausted. Entries for the directory itself (".") and
// its parent ("..") are returned if the operating system reports them, just
// as readdir reports them. Reads interrupted by signals are retried
// transparently, so callers never observe EINTR.
func (s *Stream) ReadName() (string, error) {
	for {
		// Parse any entries remaining from the previous raw read.
		for len(s.pending) > 0 {
			name, cookie, consumed, err := parseDirent(s.pending)
			if err != nil {
				return "", &os.PathError{Op: "readdir", Path: s.path, Err: err}
			}
			s.pending = s.pending[consumed:]
			s.position = cookie
			if name == "" {
				// The entry was a hole left by a deletion. Skip it.
				continue
			}
			return name, nil
		}

		// Perform a raw read. A zero-byte result indicates a clean end of
		// the stream.
		count, err := readDirentRetryingOnEINTR(s.descriptor, s.buffer)
		if err != nil {
			return "", &os.PathError{Op: "readdir", Path: s.path, Err: err}
		} else if count == 0 {
			return "", io.EOF
		}
		s.pending = s.buffer[:count]
	}
}

// ReadNames reads the stream to exhaustion and returns all remaining entry
// names.
func (s *Stream) ReadNames() ([]string, error) {
	var names []string
	for {
		name, err := s.ReadName()
		if err == io.EOF {
			return names, nil
		} else if err != nil {
			return nil, err
		}
		names = append(names, name)
	}
}

// Tell returns an opaque cookie representing the current stream position. The
// cookie is only meaningful as an argument to Seek on the same stream, with
// telldir semantics: passing it to Seek resumes iteration at the entry that
// would have been returned next.
func (s *Stream) Tell() int64 {
	return s.position
}

// Seek restores a stream position previously returned by Tell, with seekdir
// semantics. Any buffered entries are discarded.
func (s *Stream) Seek(offset int64) error {
	if _, err := seekConsideringEINTR(s.descriptor, offset, 0); err != nil {
		return &os.PathError{Op: "seekdir", Path: s.path, Err: err}
	}
	s.pending = nil
	s.position = offset
	return nil
}

// Rewind resets the stream to its beginning, with rewinddir semantics.
func (s *Stream) Rewind() error {
	if _, err := seekConsideringEINTR(s.descriptor, 0, 0); err != nil {
		return &os.PathError{Op: "rewinddir", Path: s.path, Err: err}
	}
	s.pending = nil
	s.position = 0
	return nil
}

// ChangeDirectory changes the working directory of the calling process to the
// directory underlying the stream.
func (s *Stream) ChangeDirectory() error {
	if err := fchdirRetryingOnEINTR(s.descriptor); err != nil {
		return &os.PathError{Op: "fchdir", Path: s.path, Err: err}
	}
	return nil
}

// Descriptor provides access to the raw file descriptor underlying the
// stream. It should not be used or retained beyond the point in time where
// the Close method is called, and it should not be closed externally.
func (s *Stream) Descriptor() int {
	return s.descriptor
}

// Close closes the stream. It must be called exactly once.
func (s *Stream) Close() error {
	if err := closeConsideringEINTR(s.descriptor); err != nil {
		return &os.PathError{Op: "closedir", Path: s.path, Err: err}
	}
	return nil
}
