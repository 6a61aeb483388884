package main

import (
	"fmt"
	"os"

	"github.com/mutagen-io/gopass"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/sys/unix"

	"github.com/mutagen-io/posix/cmd"
	"github.com/mutagen-io/posix/pkg/terminal"
)

// ttyMain is the entry point for the tty command.
func ttyMain(_ *cobra.Command, _ []string) error {
	// Check whether or not standard input is a terminal.
	fd := int(os.Stdin.Fd())
	if !terminal.IsTerminal(fd) {
		fmt.Println("standard input is not a terminal")
		return nil
	}

	// Resolve the terminal's name.
	name, err := terminal.Name(fd)
	if err != nil {
		return errors.Wrap(err, "unable to resolve terminal name")
	}
	fmt.Println("name:", name)
	fmt.Println("controlling terminal:", terminal.ControllingName())

	// Fetch and summarize the terminal's attributes.
	attributes, err := terminal.GetAttributes(fd)
	if err != nil {
		return errors.Wrap(err, "unable to fetch terminal attributes")
	}
	fmt.Println("echo:", attributes.LocalFlags()&unix.ECHO != 0)
	fmt.Println("canonical:", attributes.LocalFlags()&unix.ICANON != 0)
	fmt.Println("input speed:", attributes.InputSpeed())
	fmt.Println("output speed:", attributes.OutputSpeed())
	fmt.Println("minimum input:", attributes.MinimumInput())
	fmt.Println("read timeout:", attributes.ReadTimeout())

	// Query the foreground process group, tolerating denial on descriptors
	// that aren't the controlling terminal.
	if pgid, err := terminal.GetProcessGroup(fd); err == nil {
		fmt.Println("foreground process group:", pgid)
	}

	// Success.
	return nil
}

// ttyCommand is the tty command.
var ttyCommand = &cobra.Command{
	Use:   "tty",
	Short: "Report the terminal connected to standard input",
	Args:  cobra.NoArgs,
	Run:   cmd.Mainify(ttyMain),
}

// ttyConfiguration stores configuration for the tty command.
var ttyConfiguration struct {
	// help indicates whether or not to show help information and exit.
	help bool
}

// ttyPromptMain is the entry point for the tty prompt command.
func ttyPromptMain(_ *cobra.Command, _ []string) error {
	// Figure out which getter to use.
	getter := gopass.GetPasswd
	if ttyPromptConfiguration.echoMasked {
		getter = gopass.GetPasswdMasked
	}

	// Print the prompt.
	fmt.Print("Enter value: ")

	// Read the response with echo disabled via a terminal attribute cycle.
	result, err := getter()
	if err != nil {
		return errors.Wrap(err, "unable to read response")
	}

	// Report what was read without echoing it.
	fmt.Printf("read %d bytes\n", len(result))

	// Success.
	return nil
}

// ttyPromptCommand is the tty prompt command.
var ttyPromptCommand = &cobra.Command{
	Use:   "prompt",
	Short: "Read a line from the terminal with echo disabled",
	Args:  cobra.NoArgs,
	Run:   cmd.Mainify(ttyPromptMain),
}

// ttyPromptConfiguration stores configuration for the tty prompt command.
var ttyPromptConfiguration struct {
	// help indicates whether or not to show help information and exit.
	help bool
	// echoMasked indicates whether or not to echo masking characters.
	echoMasked bool
}

func init() {
	// Grab a handle for the command line flags.
	flags := ttyCommand.Flags()

	// Disable alphabetical sorting of flags in help output.
	flags.SortFlags = false

	// Manually add a help flag to override the default message. Cobra will
	// still implement its logic automatically.
	flags.BoolVarP(&ttyConfiguration.help, "help", "h", false, "Show help information")

	// Perform the same setup for the tty prompt command and wire up its
	// flags.
	promptFlags := ttyPromptCommand.Flags()
	promptFlags.SortFlags = false
	promptFlags.BoolVarP(&ttyPromptConfiguration.help, "help", "h", false, "Show help information")
	promptFlags.BoolVarP(&ttyPromptConfiguration.echoMasked, "masked", "m", false, "Echo masking characters")

	// Register subcommands.
	ttyCommand.AddCommand(ttyPromptCommand)
}
