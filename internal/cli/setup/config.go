// Package setup holds the cli commands that prepare tagdo's own files,
// e.g., tagdo config ...
package setup

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tagdo/internal/cli"
	"github.com/thenoetrevino/tagdo/internal/config"
)

// ConfigCmd returns the config parent command
func ConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
	}

	cmd.AddCommand(InitCmd())
	cmd.AddCommand(PathCmd())

	return cmd
}

// InitCmd returns the config init subcommand
func InitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with the default settings",
		Long: `Write the default key mappings, theme, storage and tag settings to the
config file so they can be edited.

Examples:
  tagdo config init

  # Replace an existing file
  tagdo config init --force
`,
		Args: cli.ExactArgs(0),
		RunE: runInit,
	}

	cmd.Flags().Bool("force", false, "Overwrite an existing config file")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runInit(cmd *cobra.Command, args []string) error {
	f := cli.NewFormatter(cmd)
	force, _ := cmd.Flags().GetBool("force")

	path, err := config.Path()
	if err != nil {
		return cli.ReportError(f, cli.ExitError, "CONFIG_PATH_ERROR", err, "")
	}

	if _, err := os.Stat(path); err == nil && !force {
		return cli.ReportError(f, cli.ExitValidation, "CONFIG_EXISTS",
			fmt.Errorf("config file already exists: %s", path),
			"Pass --force to overwrite it")
	}

	if err := config.Default().Save(); err != nil {
		return cli.ReportError(f, cli.ExitError, "CONFIG_WRITE_ERROR", err, "")
	}

	if f.JSON {
		return f.WriteJSON(map[string]interface{}{"success": true, "path": path})
	}
	if f.Quiet {
		_, _ = fmt.Fprintln(f.Out, path)
		return nil
	}
	f.Printf("Wrote default config to %s\n", path)
	return nil
}

// PathCmd returns the config path subcommand
func PathCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "path",
		Short: "Print the config file location",
		Args:  cli.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			f := cli.NewFormatter(cmd)
			path, err := config.Path()
			if err != nil {
				return cli.ReportError(f, cli.ExitError, "CONFIG_PATH_ERROR", err, "")
			}
			if f.JSON {
				return f.WriteJSON(map[string]interface{}{"success": true, "path": path})
			}
			_, err = fmt.Fprintln(f.Out, path)
			return err
		},
	}

	cli.AddOutputFlags(cmd)

	return cmd
}
