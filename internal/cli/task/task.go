package task

import (
	"github.com/spf13/cobra"
)

// Commands returns the task subcommands, registered directly on the root
// command
func Commands() []*cobra.Command {
	return []*cobra.Command{
		AddCmd(),
		ListCmd(),
		DoneCmd(),
		TagCmd(),
		RmCmd(),
		ClearCmd(),
		MoveCmd(),
		TagsCmd(),
	}
}
