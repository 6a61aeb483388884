package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/mutagen-io/posix/cmd"
	"github.com/mutagen-io/posix/pkg/filesystem"
)

// cwdMain is the entry point for the cwd command.
func cwdMain(_ *cobra.Command, _ []string) error {
	// Query the working directory.
	path, err := filesystem.CurrentDirectory()
	if err != nil {
		return errors.Wrap(err, "unable to query working directory")
	}

	// Print it.
	fmt.Println(path)

	// Success.
	return nil
}

// cwdCommand is the cwd command.
var cwdCommand = &cobra.Command{
	Use:   "cwd",
	Short: "Print the working directory of the process",
	Args:  cobra.NoArgs,
	Run:   cmd.Mainify(cwdMain),
}

// cwdConfiguration stores configuration for the cwd command.
var cwdConfiguration struct {
	// help indicates whether or not to show help information and exit.
	help bool
}

func init() {
	// Grab a handle for the command line flags.
	flags := cwdCommand.Flags()

	// Disable alphabetical sorting of flags in help output.
	flags.SortFlags = false

	// Manually add a help flag to override the default message. Cobra will
	// still implement its logic automatically.
	flags.BoolVarP(&cwdConfiguration.help, "help", "h", false, "Show help information")
}
