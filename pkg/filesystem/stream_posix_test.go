//go:build linux || darwin || freebsd

package filesystem

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/mutagen-io/posix/pkg/logging"
	"github.com/mutagen-io/posix/pkg/must"
)

// createTestEntries populates the specified directory with a known set of
// entries (three files and one subdirectory) and returns their names.
func createTestEntries(t *testing.T, directory string) []string {
	t.Helper()
	names := []string{"alpha", "beta", "gamma"}
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(directory, name), []byte(name), 0600); err != nil {
			t.Fatal("unable to create test file:", err)
		}
	}
	if err := os.Mkdir(filepath.Join(directory, "delta"), 0700); err != nil {
		t.Fatal("unable to create test subdirectory:", err)
	}
	return append(names, "delta")
}

// readNonDotNames reads the stream to exhaustion, filtering out "." and ".."
// entries and sorting the result.
func readNonDotNames(t *testing.T, stream *Stream) []string {
	t.Helper()
	var names []string
	for {
		name, err := stream.ReadName()
		if err == io.EOF {
			break
		} else if err != nil {
			t.Fatal("unable to read stream entry:", err)
		}
		if name == "." || name == ".." {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func TestOpenStreamNotExist(t *testing.T) {
	if _, err := OpenStream("/does/not/exist"); err == nil {
		t.Error("stream open succeeded for non-existent path")
	} else if !os.IsNotExist(err) {
		t.Error("stream open error does not indicate non-existence:", err)
	}
}

func TestOpenStreamNonDirectory(t *testing.T) {
	// Create an empty temporary file.
	file, err := os.CreateTemp(t.TempDir(), "posix_filesystem")
	if err != nil {
		t.Fatal("unable to create temporary file:", err)
	} else if err = file.Close(); err != nil {
		t.Error("unable to close temporary file:", err)
	}

	// Ensure that stream opening fails.
	if _, err := OpenStream(file.Name()); err == nil {
		t.Error("stream open succeeded for non-directory path")
	}
}

func TestStreamReadsAllEntries(t *testing.T) {
	logger := logging.NewLogger(logging.LevelError, &bytes.Buffer{})

	// Create a directory with known contents.
	directory := t.TempDir()
	expected := createTestEntries(t, directory)
	sort.Strings(expected)

	// Open a stream on the directory and defer its closure.
	stream, err := OpenStream(directory)
	if err != nil {
		t.Fatal("unable to open stream:", err)
	}
	defer must.Close(stream, logger)

	// Read the stream to exhaustion and verify that we see exactly the
	// expected entries.
	names := readNonDotNames(t, stream)
	if len(names) != len(expected) {
		t.Fatalf("entry count mismatch: %d != %d", len(names), len(expected))
	}
	for i, name := range names {
		if name != expected[i] {
			t.Errorf("entry mismatch at index %d: %s != %s", i, name, expected[i])
		}
	}

	// Verify that reads after exhaustion continue to indicate end-of-stream.
	if _, err := stream.ReadName(); err != io.EOF {
		t.Error("read after exhaustion did not indicate end-of-stream:", err)
	}
}

func TestStreamRewind(t *testing.T) {
	logger := logging.NewLogger(logging.LevelError, &bytes.Buffer{})

	// Create a directory with known contents and open a stream on it.
	directory := t.TempDir()
	createTestEntries(t, directory)
	stream, err := OpenStream(directory)
	if err != nil {
		t.Fatal("unable to open stream:", err)
	}
	defer must.Close(stream, logger)

	// Read the stream to exhaustion twice, with an intervening rewind, and
	// verify that both passes yield the same entries.
	first := readNonDotNames(t, stream)
	if err := stream.Rewind(); err != nil {
		t.Fatal("unable to rewind stream:", err)
	}
	second := readNonDotNames(t, stream)
	if len(first) != len(second) {
		t.Fatalf("entry count mismatch after rewind: %d != %d", len(second), len(first))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("entry mismatch after rewind at index %d: %s != %s", i, second[i], first[i])
		}
	}
}

func TestStreamTellSeek(t *testing.T) {
	logger := logging.NewLogger(logging.LevelError, &bytes.Buffer{})

	// Create a directory with known contents and open a stream on it.
	directory := t.TempDir()
	createTestEntries(t, directory)
	stream, err := OpenStream(directory)
	if err != nil {
		t.Fatal("unable to open stream:", err)
	}
	defer must.Close(stream, logger)

	// Read one entry, record the stream position, and read the next entry.
	if _, err := stream.ReadName(); err != nil {
		t.Fatal("unable to read first entry:", err)
	}
	position := stream.Tell()
	next, err := stream.ReadName()
	if err != nil {
		t.Fatal("unable to read second entry:", err)
	}

	// Restore the recorded position and verify that iteration resumes with
	// the same entry.
	if err := stream.Seek(position); err != nil {
		t.Fatal("unable to seek stream:", err)
	}
	if resumed, err := stream.ReadName(); err != nil {
		t.Fatal("unable to read entry after seek:", err)
	} else if resumed != next {
		t.Errorf("entry after seek does not match: %s != %s", resumed, next)
	}
}

func TestStreamChangeDirectory(t *testing.T) {
	logger := logging.NewLogger(logging.LevelError, &bytes.Buffer{})

	// Save the working directory and defer its restoration.
	saved, err := os.Getwd()
	if err != nil {
		t.Fatal("unable to query working directory:", err)
	}
	defer func() {
		must.Succeed(os.Chdir(saved), "working directory restoration", logger)
	}()

	// Open a stream on a temporary directory and defer its closure.
	directory := t.TempDir()
	stream, err := OpenStream(directory)
	if err != nil {
		t.Fatal("unable to open stream:", err)
	}
	defer must.Close(stream, logger)

	// Change into the stream's directory and verify the result, tolerating
	// symbolic link resolution by the operating system.
	if err := stream.ChangeDirectory(); err != nil {
		t.Fatal("unable to change into stream directory:", err)
	}
	current, err := CurrentDirectory()
	if err != nil {
		t.Fatal("unable to query working directory:", err)
	}
	expected, err := filepath.EvalSymlinks(directory)
	if err != nil {
		t.Fatal("unable to resolve expected directory:", err)
	}
	if resolved, err := filepath.EvalSymlinks(current); err != nil {
		t.Fatal("unable to resolve working directory:", err)
	} else if resolved != expected {
		t.Errorf("working directory does not match: %s != %s", resolved, expected)
	}
}
