// Package configcmd provides config management commands.
package configcmd

import (
	"github.com/spf13/cobra"
)

// envVars lists the environment variables that override the config file.
var envVars = []string{"CJKB_EITHER", "CJKB_NORMALIZE", "CJKB_PUNCT_SPACE", "CJKB_PUNCT_ADD", "CJKB_PUNCT_REMOVE"}

// NewCmdConfig creates the config command.
func NewCmdConfig() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage cjkb configuration",
		Long:  `Commands for viewing and clearing cjkb configuration.`,
	}

	cmd.AddCommand(NewCmdShow())
	cmd.AddCommand(NewCmdClear())

	return cmd
}
