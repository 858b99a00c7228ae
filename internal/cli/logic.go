package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/idelchi/dirsize/internal/dirsize"
)

// run measures a target; replaced in tests.
//
//nolint:gochecknoglobals // Test seam
var run = dirsize.Run

// logic measures the target and prints the result.
//
// A missing path is returned as an error, which terminates with a non-zero status.
// A target that exists but cannot be read is reported on stderr and the command
// still succeeds.
func logic(cmd *cobra.Command, options dirsize.Options, output string) error {
	result, err := run(options)

	var readErr *dirsize.ReadError

	switch {
	case errors.As(err, &readErr):
		fmt.Fprintf(cmd.ErrOrStderr(), "Error %s\n", readErr)

		return nil
	case err != nil:
		return err
	}

	switch output {
	case "json":
		return PrintJSON(result, cmd.OutOrStdout())
	case "text":
		return PrintText(result, cmd.OutOrStdout())
	default:
		return fmt.Errorf("unknown output format: %s", output)
	}
}
