package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/idelchi/dirsize/internal/dirsize"
)

// units are the display units in ascending order; nothing scales beyond the last.
//
//nolint:gochecknoglobals // Config constant
var units = []string{"B", "KB", "MB", "GB", "TB", "PB", "EB"}

// HumanSize formats a byte count with 1024-based units and one fractional digit,
// e.g. "0.0 B", "1.5 KB", "16.0 EB".
func HumanSize(bytes uint64) string {
	return humanSize(float64(bytes))
}

// humanSize also accepts magnitudes beyond uint64, which all land in EB.
func humanSize(size float64) string {
	unit := 0

	for size >= 1024 && unit < len(units)-1 {
		size /= 1024
		unit++
	}

	return fmt.Sprintf("%.1f %s", size, units[unit])
}

// PrintText outputs the result as a single human-readable line.
func PrintText(result *dirsize.Result, writer io.Writer) error {
	label := "File"
	if result.Kind == dirsize.KindDirectory {
		label = "Directory"
	}

	_, err := fmt.Fprintf(writer, "%s '%s' has %s (%d bytes)\n",
		label, result.Path, HumanSize(result.Bytes), result.Bytes)

	return err
}

// PrintJSON outputs the result in JSON format.
func PrintJSON(result *dirsize.Result, writer io.Writer) error {
	out := struct {
		*dirsize.Result

		Human string `json:"human"`
	}{
		Result: result,
		Human:  HumanSize(result.Bytes),
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding JSON output: %w", err)
	}

	if _, err := fmt.Fprintln(writer, string(data)); err != nil {
		return err
	}

	return nil
}
