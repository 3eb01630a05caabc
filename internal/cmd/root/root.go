// Package root provides the root command for the cjkb CLI.
package root

import (
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/cjk-breaks/internal/cmd/breaks"
	"github.com/open-cli-collective/cjk-breaks/internal/cmd/completion"
	"github.com/open-cli-collective/cjk-breaks/internal/cmd/configcmd"
	initcmd "github.com/open-cli-collective/cjk-breaks/internal/cmd/init"
	"github.com/open-cli-collective/cjk-breaks/internal/cmd/render"
	"github.com/open-cli-collective/cjk-breaks/internal/version"
)

// NewCmdRoot creates the root command for cjkb.
func NewCmdRoot() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cjkb",
		Short: "Resolve soft line breaks in CJK markdown",
		Long: `cjkb renders markdown with CJK-aware soft line breaks.

A line break between two wide characters (Chinese, Japanese) is dropped
instead of turning into a space, and sentence-final punctuation can be
followed by a configurable space when its break disappears.

Get started by running: cjkb init`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version.Version,
	}

	// Global flags
	cmd.PersistentFlags().StringP("config", "c", "", "config file (default: ~/.config/cjkb/config.yml)")
	cmd.PersistentFlags().StringP("output", "o", "", "output format: table, json, plain")
	cmd.PersistentFlags().Bool("no-color", false, "disable colored output")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "log every break decision to stderr")

	cmd.SetVersionTemplate("cjkb version " + version.String() + "\n")

	// Subcommands
	cmd.AddCommand(initcmd.NewCmdInit())
	cmd.AddCommand(render.NewCmdRender())
	cmd.AddCommand(breaks.NewCmdBreaks())
	cmd.AddCommand(configcmd.NewCmdConfig())
	cmd.AddCommand(completion.NewCmdCompletion())

	return cmd
}
