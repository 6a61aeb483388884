package main

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/mutagen-io/posix/cmd"
	"github.com/mutagen-io/posix/pkg/rlimit"
)

// formatLimit renders a limit for display, humanizing byte-denominated
// values.
func formatLimit(resource rlimit.Resource, limit rlimit.Limit) string {
	if value, ok := limit.Value(); ok && resource.ByteValued() {
		return humanize.IBytes(value)
	}
	return limit.String()
}

// parseLimit converts a command line limit specification ("unlimited" or a
// non-negative integer) to a Limit.
func parseLimit(specification string) (rlimit.Limit, error) {
	if specification == "unlimited" {
		return rlimit.Infinite(), nil
	}
	value, err := strconv.ParseUint(specification, 10, 64)
	if err != nil {
		return rlimit.Limit{}, errors.Wrap(err, "unable to parse limit value")
	}
	return rlimit.Exact(value), nil
}

// printLimits renders the limits for the specified resources as a table.
func printLimits(resources []rlimit.Resource) error {
	writer := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(writer, "RESOURCE\tSOFT\tHARD")
	for _, resource := range resources {
		soft, hard, err := rlimit.Get(resource)
		if err != nil {
			return errors.Wrapf(err, "unable to query %s limits", resource)
		}
		fmt.Fprintf(writer, "%s\t%s\t%s\n",
			resource,
			formatLimit(resource, soft),
			formatLimit(resource, hard),
		)
	}
	return writer.Flush()
}

// limitsMain is the entry point for the limits command.
func limitsMain(_ *cobra.Command, arguments []string) error {
	// If no resource was specified, then list all supported resources.
	if len(arguments) == 0 {
		return printLimits(rlimit.Resources())
	} else if len(arguments) != 1 {
		return errors.New("expected at most one resource name")
	}

	// Otherwise resolve and display the single requested resource.
	resource, ok := rlimit.ParseResource(arguments[0])
	if !ok {
		return errors.Errorf("unknown resource: %s", arguments[0])
	}
	return printLimits([]rlimit.Resource{resource})
}

// limitsCommand is the limits command.
var limitsCommand = &cobra.Command{
	Use:   "limits [<resource>]",
	Short: "Show process resource limits",
	Run:   cmd.Mainify(limitsMain),
}

// limitsConfiguration stores configuration for the limits command.
var limitsConfiguration struct {
	// help indicates whether or not to show help information and exit.
	help bool
}

// limitsSetMain is the entry point for the limits set command.
func limitsSetMain(_ *cobra.Command, arguments []string) error {
	// Validate and parse arguments.
	if len(arguments) != 3 {
		return errors.New("expected a resource name, a soft limit, and a hard limit")
	}
	resource, ok := rlimit.ParseResource(arguments[0])
	if !ok {
		return errors.Errorf("unknown resource: %s", arguments[0])
	}
	soft, err := parseLimit(arguments[1])
	if err != nil {
		return errors.Wrap(err, "invalid soft limit")
	}
	hard, err := parseLimit(arguments[2])
	if err != nil {
		return errors.Wrap(err, "invalid hard limit")
	}

	// Apply the limits.
	if err := rlimit.Set(resource, soft, hard); err != nil {
		return errors.Wrap(err, "unable to set limits")
	}
	logger.Sublogger("limits").Infof("set %s limits to %s/%s", resource, soft, hard)

	// Success.
	return nil
}

// limitsSetCommand is the limits set command.
var limitsSetCommand = &cobra.Command{
	Use:   "set <resource> <soft> <hard>",
	Short: "Set process resource limits",
	Run:   cmd.Mainify(limitsSetMain),
}

// limitsSetConfiguration stores configuration for the limits set command.
var limitsSetConfiguration struct {
	// help indicates whether or not to show help information and exit.
	help bool
}

func init() {
	// Grab a handle for the command line flags.
	flags := limitsCommand.Flags()

	// Disable alphabetical sorting of flags in help output.
	flags.SortFlags = false

	// Manually add a help flag to override the default message. Cobra will
	// still implement its logic automatically.
	flags.BoolVarP(&limitsConfiguration.help, "help", "h", false, "Show help information")

	// Perform the same setup for the limits set command.
	setFlags := limitsSetCommand.Flags()
	setFlags.SortFlags = false
	setFlags.BoolVarP(&limitsSetConfiguration.help, "help", "h", false, "Show help information")

	// Register subcommands.
	limitsCommand.AddCommand(limitsSetCommand)
}
