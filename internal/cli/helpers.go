package cli

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tagdo/internal/tags"
)

// ParseTaskID parses a positional task id argument
func ParseTaskID(arg string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(arg), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid task ID: %s", arg)
	}
	return id, nil
}

// ParsePosition parses a 0-based list position argument
func ParsePosition(arg string) (int, error) {
	pos, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil {
		return 0, fmt.Errorf("invalid position: %s", arg)
	}
	return pos, nil
}

// ParseTag maps a user-supplied tag string to a label
func ParseTag(input string) (string, error) {
	label, err := tags.Parse(input)
	if err != nil {
		return "", fmt.Errorf("invalid tag '%s' (must be one of: %s)", input, strings.Join(tags.Labels(), ", "))
	}
	return label, nil
}

// ReportError writes an error through the formatter and wraps it with an exit
// code for the caller to return
func ReportError(f *OutputFormatter, exitCode int, code string, err error, suggestion string) error {
	if fmtErr := f.ErrorWithSuggestion(code, err.Error(), suggestion); fmtErr != nil {
		slog.Error("Error formatting error message", "error", fmtErr)
	}
	return &ExitCodeError{Code: exitCode, Err: err, Reported: true}
}

// CloseCLI closes the CLI and logs, rather than returns, any failure
func CloseCLI(c *CLI) {
	if err := c.Close(); err != nil {
		slog.Error("Error closing CLI", "error", err)
	}
}

// ExactArgs is cobra.ExactArgs reporting a usage exit code
func ExactArgs(n int) cobra.PositionalArgs {
	return usageArgs(cobra.ExactArgs(n))
}

// MinimumNArgs is cobra.MinimumNArgs reporting a usage exit code
func MinimumNArgs(n int) cobra.PositionalArgs {
	return usageArgs(cobra.MinimumNArgs(n))
}

func usageArgs(check cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := check(cmd, args); err != nil {
			return Exit(ExitUsage, err)
		}
		return nil
	}
}
