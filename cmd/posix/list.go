package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/mutagen-io/posix/cmd"
	"github.com/mutagen-io/posix/pkg/filesystem"
	"github.com/mutagen-io/posix/pkg/must"
	"github.com/mutagen-io/posix/pkg/terminal"
)

// directoryColor renders directory entry names in listings when color output
// is enabled.
var directoryColor = color.New(color.FgBlue, color.Bold)

// listMain is the entry point for the list command.
func listMain(_ *cobra.Command, arguments []string) error {
	// Validate arguments.
	if len(arguments) != 1 {
		return errors.New("expected a single directory path")
	}
	path := arguments[0]

	// Create a sublogger for diagnostics.
	logger := logger.Sublogger("list")

	// Open a stream on the directory and defer its closure.
	stream, err := filesystem.OpenStream(path)
	if err != nil {
		return errors.Wrap(err, "unable to open directory")
	}
	defer must.Close(stream, logger)

	// Determine whether or not to colorize output.
	colorize := terminal.IsTerminal(int(os.Stdout.Fd()))

	// Iterate the stream to exhaustion.
	var count int
	for {
		name, err := stream.ReadName()
		if err == io.EOF {
			break
		} else if err != nil {
			return errors.Wrap(err, "unable to read directory entry")
		}
		logger.Tracef("read entry: %s", name)
		count++
		if !listConfiguration.all && (name == "." || name == "..") {
			continue
		}
		if colorize {
			if info, err := os.Lstat(filepath.Join(path, name)); err == nil && info.IsDir() {
				directoryColor.Println(name)
				continue
			}
		}
		fmt.Println(name)
	}
	logger.Debugf("read %d entries from %s", count, path)

	// Success.
	return nil
}

// listCommand is the list command.
var listCommand = &cobra.Command{
	Use:   "list <directory>",
	Short: "List the entries of a directory using a directory stream",
	Run:   cmd.Mainify(listMain),
}

// listConfiguration stores configuration for the list command.
var listConfiguration struct {
	// help indicates whether or not to show help information and exit.
	help bool
	// all indicates whether or not to include "." and ".." entries.
	all bool
}

func init() {
	// Grab a handle for the command line flags.
	flags := listCommand.Flags()

	// Disable alphabetical sorting of flags in help output.
	flags.SortFlags = false

	// Manually add a help flag to override the default message. Cobra will
	// still implement its logic automatically.
	flags.BoolVarP(&listConfiguration.help, "help", "h", false, "Show help information")

	// Wire up list flags.
	flags.BoolVarP(&listConfiguration.all, "all", "a", false, "Include \".\" and \"..\" entries")
}
