package main

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/mutagen-io/posix/pkg/logging"
	"github.com/mutagen-io/posix/pkg/posix"
)

// logger is the logger used for command diagnostics. It is reconfigured from
// the log level flag before any command runs.
var logger = logging.RootLogger

// rootPersistentMain configures diagnostic logging before command execution.
func rootPersistentMain(_ *cobra.Command, _ []string) error {
	// Parse the requested log level.
	level, ok := logging.ParseLevel(rootConfiguration.logLevel)
	if !ok {
		return errors.Errorf("unknown log level: %s", rootConfiguration.logLevel)
	}

	// If debugging is enabled via the environment, then enforce a debug
	// logging floor regardless of the flag.
	if posix.DebugEnabled && level < logging.LevelDebug {
		level = logging.LevelDebug
	}

	// Create the logger.
	logger = logging.NewLogger(level, os.Stderr)

	// Success.
	return nil
}

// rootMain is the entry point for the root command.
func rootMain(command *cobra.Command, _ []string) error {
	// If no commands were given, then print help information and bail. We
	// don't have to worry about warning about arguments being present here
	// (which would be incorrect usage) because arguments can't even reach
	// this point (they will be mistaken for subcommands and an error will be
	// displayed).
	command.Help()

	// Success.
	return nil
}

// rootCommand is the root command.
var rootCommand = &cobra.Command{
	Use:               "posix",
	Version:           posix.Version,
	Short:             "Inspect and control POSIX operating system facilities",
	PersistentPreRunE: rootPersistentMain,
	RunE:              rootMain,
	SilenceUsage:      true,
}

// rootConfiguration stores configuration for the root command.
var rootConfiguration struct {
	// help indicates whether or not to show help information and exit.
	help bool
	// logLevel is the name of the diagnostic log level.
	logLevel string
}

func init() {
	// Disable Cobra's command sorting behavior. By default, it sorts commands
	// alphabetically in the help output.
	cobra.EnableCommandSorting = false

	// Disable Cobra's use of mousetrap.
	cobra.MousetrapHelpText = ""

	// Set the template used by the version flag.
	rootCommand.SetVersionTemplate("posix version {{ .Version }}\n")

	// Grab a handle for the command line flags.
	flags := rootCommand.Flags()

	// Disable alphabetical sorting of flags in help output.
	flags.SortFlags = false

	// Manually add a help flag to override the default message. Cobra will
	// still implement its logic automatically.
	flags.BoolVarP(&rootConfiguration.help, "help", "h", false, "Show help information")

	// Wire up the log level flag, inherited by all subcommands.
	rootCommand.PersistentFlags().StringVar(
		&rootConfiguration.logLevel,
		"log-level",
		logging.LevelWarn.String(),
		"Set the diagnostic log level (disabled, error, warn, info, debug, or trace)",
	)

	// Hide Cobra's completion command.
	rootCommand.CompletionOptions.HiddenDefaultCmd = true

	// Register commands. We do this here (rather than in individual init
	// functions) so that we can control the order.
	rootCommand.AddCommand(
		listCommand,
		cwdCommand,
		limitsCommand,
		ttyCommand,
		versionCommand,
	)
}

func main() {
	// Execute the root command.
	if err := rootCommand.Execute(); err != nil {
		os.Exit(1)
	}
}
