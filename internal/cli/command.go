package cli

import (
	"errors"
	"fmt"
	"slices"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/idelchi/dirsize/internal/dirsize"
)

// CLI represents the command-line interface.
type CLI struct {
	version string
}

// New creates a new CLI instance with the given version.
func New(version string) CLI {
	return CLI{version: version}
}

// Command builds the root command.
//
//nolint:funlen // Flag declarations
func (c CLI) Command() *cobra.Command {
	var (
		options dirsize.Options
		output  string
	)

	allowedOutputs := []string{"text", "json"}
	allowedEngines := []string{dirsize.EngineRecursive, dirsize.EngineFastwalk}

	cmd := &cobra.Command{
		Use:   "dirsize [flags] <path>",
		Short: "Report the total size of a file or directory tree",
		Long: heredoc.Doc(`
			dirsize reports the apparent size of a file, or the total size of all
			regular files below a directory, in human-readable and exact byte form.

			Directories are summed in parallel. Symbolic links, sockets, devices and
			pipes count as zero, and unreadable directories are skipped rather than
			aborting the scan. Pseudo-filesystems (/proc, /sys, /dev) are not entered.

			Positional Arguments:
			  path                   File or directory to measure.
		`),
		Example: heredoc.Doc(`
			dirsize .
			dirsize -o json /var/log
			dirsize --engine fastwalk -j 16 ~/src
		`),
		Version: c.version,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Arguments are valid past this point; further errors are not usage errors.
			cmd.SilenceUsage = true

			if !slices.Contains(allowedOutputs, output) {
				return fmt.Errorf("invalid output format %q: must be one of %v", output, allowedOutputs)
			}

			if !slices.Contains(allowedEngines, options.Engine) {
				return fmt.Errorf("invalid engine %q: must be one of %v", options.Engine, allowedEngines)
			}

			if options.Workers < 0 {
				return errors.New("workers cannot be negative")
			}

			options.Path = args[0]
			options.Log = cmd.ErrOrStderr()

			return logic(cmd, options, output)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&output, "output", "o", "text", "Output format: text or json")
	flags.StringVarP(&options.Engine, "engine", "e", dirsize.EngineRecursive, "Directory engine: recursive or fastwalk")
	flags.IntVarP(&options.Workers, "workers", "j", 0, "Maximum concurrent traversal workers (0=GOMAXPROCS)")
	flags.StringSliceVar(
		&options.PseudoPrefixes,
		"pseudo",
		dirsize.DefaultPseudoPrefixes(),
		"Pseudo-filesystem roots that are never entered",
	)
	flags.BoolVar(&options.Debug, "debug", false, "Enable debug output")
	flags.SortFlags = false

	return cmd
}

// Execute runs the CLI with the process arguments.
func (c CLI) Execute() error {
	return c.Command().Execute()
}
