package configcmd

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/cjk-breaks/internal/cmd/cmdutil"
	"github.com/open-cli-collective/cjk-breaks/internal/view"
)

// NewCmdClear creates the config clear command.
func NewCmdClear() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove stored configuration",
		Long:  `Delete the cjkb configuration file. Environment variables will still be used if set.`,
		Example: `  # Clear config
  cjkb config clear`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			noColor, _ := cmd.Flags().GetBool("no-color")
			return runClear(cmd.OutOrStdout(), cmdutil.ConfigPath(cmd), noColor)
		},
	}

	return cmd
}

func runClear(w io.Writer, configPath string, noColor bool) error {
	if noColor {
		color.NoColor = true
	}

	err := os.Remove(configPath)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove config file: %w", err)
	}

	v := view.NewRenderer(view.FormatTable, noColor)
	v.SetWriter(w)
	dim := color.New(color.Faint)

	if os.IsNotExist(err) {
		v.Success("No config file to remove")
	} else {
		v.Success("Configuration cleared from " + configPath)
	}

	var activeVars []string
	for _, v := range envVars {
		if os.Getenv(v) != "" {
			activeVars = append(activeVars, v)
		}
	}

	if len(activeVars) > 0 {
		_, _ = dim.Fprintf(w, "\nNote: Environment variables will still be used: %v\n", activeVars)
	}

	return nil
}
