package configcmd

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/cjk-breaks/internal/cmd/cmdutil"
	"github.com/open-cli-collective/cjk-breaks/internal/config"
	"github.com/open-cli-collective/cjk-breaks/internal/view"
	"github.com/open-cli-collective/cjk-breaks/pkg/cjk"
)

// NewCmdShow creates the config show command.
func NewCmdShow() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Display current configuration",
		Long:  `Display the current cjkb configuration with source indicators.`,
		Example: `  # Show current config
  cjkb config show`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			noColor, _ := cmd.Flags().GetBool("no-color")
			return runShow(cmd.OutOrStdout(), cmdutil.ConfigPath(cmd), noColor)
		},
	}

	return cmd
}

func runShow(w io.Writer, configPath string, noColor bool) error {
	if noColor {
		color.NoColor = true
	}

	// Load file config (may not exist)
	fileCfg, fileErr := config.Load(configPath)
	if fileErr != nil {
		fileCfg = &config.Config{}
	}

	// Load full config with env overrides
	cfg, _ := config.LoadWithEnv(configPath)

	bold := color.New(color.Bold)
	dim := color.New(color.Faint)

	printField := func(label, value, fileValue, envVar string) {
		_, _ = bold.Fprintf(w, "%-20s", label+":")
		if value == "" {
			_, _ = dim.Fprintln(w, "-")
			return
		}

		_, _ = fmt.Fprint(w, value)

		// Determine source
		source := "-"
		switch {
		case envVar != "" && os.Getenv(envVar) != "" && fileValue != value:
			source = envVar
		case fileErr == nil && fileValue == value:
			source = "config"
		}

		_, _ = dim.Fprintf(w, "  (source: %s)\n", source)
	}

	printField("Either", flag(cfg.Either), flag(fileCfg.Either), "CJKB_EITHER")
	printField("Normalize", flag(cfg.NormalizeSoftBreaks), flag(fileCfg.NormalizeSoftBreaks), "CJKB_NORMALIZE")
	printField("Punctuation space", cfg.SpaceAfterPunctuation, fileCfg.SpaceAfterPunctuation, "CJKB_PUNCT_SPACE")
	printField("Targets", targets(cfg), targets(fileCfg), "")
	printField("Add targets", list(cfg.PunctuationTargetsAdd), list(fileCfg.PunctuationTargetsAdd), "CJKB_PUNCT_ADD")
	printField("Remove targets", list(cfg.PunctuationTargetsRemove), list(fileCfg.PunctuationTargetsRemove), "CJKB_PUNCT_REMOVE")
	printField("Output", cfg.OutputFormat, fileCfg.OutputFormat, "")

	_, _ = fmt.Fprintln(w)
	v := view.NewRenderer(view.FormatTable, noColor)
	v.SetWriter(w)
	v.RenderKeyValue("Config file", configPath)
	if fileErr != nil {
		_, _ = dim.Fprintln(w, "(file not found)")
	}

	return nil
}

func flag(v bool) string {
	return strconv.FormatBool(v)
}

func list(items []string) string {
	return strings.Join(items, " ")
}

// targets describes the base punctuation list before add/remove.
func targets(cfg *config.Config) string {
	switch {
	case cfg.PunctuationTargetsDisabled:
		return "disabled"
	case cfg.PunctuationTargets == nil:
		return list(cjk.DefaultPunctuationTargets()) + " (default)"
	case len(*cfg.PunctuationTargets) == 0:
		return "none"
	}
	return list(*cfg.PunctuationTargets)
}
