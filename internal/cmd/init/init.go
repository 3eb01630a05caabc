// Package init provides the init command for cjkb.
package init

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/cjk-breaks/internal/cmd/cmdutil"
	"github.com/open-cli-collective/cjk-breaks/internal/config"
	"github.com/open-cli-collective/cjk-breaks/internal/view"
	"github.com/open-cli-collective/cjk-breaks/pkg/cjk"
	"github.com/open-cli-collective/cjk-breaks/pkg/md"
)

// previewSample exercises a wide break, a punctuation break and a latin break.
const previewSample = "日本語の\n文章です！\nNext line\nそして"

// spaceOff is the select value for disabled punctuation spacing.
const spaceOff = "off"

// NewCmdInit creates the init command.
func NewCmdInit() *cobra.Command {
	var noPreview bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize cjkb configuration",
		Long: `Initialize cjkb with your preferred break handling.

This command will guide you through choosing how soft line breaks and
sentence-final punctuation are treated. The configuration will be saved
to ~/.config/cjkb/config.yml.`,
		Example: `  # Interactive setup
  cjkb init

  # Skip the rendered preview
  cjkb init --no-preview`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd.OutOrStdout(), cmdutil.ConfigPath(cmd), noPreview)
		},
	}

	cmd.Flags().BoolVar(&noPreview, "no-preview", false, "Skip rendering a sample with the new settings")

	return cmd
}

func runInit(w io.Writer, configPath string, noPreview bool) error {
	// Check if config already exists
	if _, err := os.Stat(configPath); err == nil {
		var overwrite bool
		err := huh.NewConfirm().
			Title("Configuration already exists").
			Description(fmt.Sprintf("Overwrite %s?", configPath)).
			Value(&overwrite).
			Run()
		if err != nil {
			return err
		}
		if !overwrite {
			_, _ = fmt.Fprintln(w, "Initialization cancelled.")
			return nil
		}
	}

	cfg := &config.Config{}
	space := cjk.SpaceHalf
	var add string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Drop breaks next to a single wide character?").
				Description("No: only breaks between two wide characters are removed").
				Value(&cfg.Either),

			huh.NewConfirm().
				Title("Split line feeds out of text first?").
				Description("Treat every line feed inside text as its own break").
				Value(&cfg.NormalizeSoftBreaks),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Space after punctuation").
				Description("Inserted after ！ ？ and friends when their line break is removed").
				Options(
					huh.NewOption("Off", spaceOff),
					huh.NewOption("Half width (U+0020)", cjk.SpaceHalf),
					huh.NewOption("Full width (U+3000)", cjk.SpaceFull),
				).
				Value(&space),

			huh.NewInput().
				Title("Extra punctuation targets (optional)").
				Description("Comma separated, added to: " + strings.Join(cjk.DefaultPunctuationTargets(), " ")).
				Placeholder("。,、").
				Value(&add),

			huh.NewSelect[string]().
				Title("Default output format").
				Options(
					huh.NewOption("Table", string(view.FormatTable)),
					huh.NewOption("JSON", string(view.FormatJSON)),
					huh.NewOption("Plain", string(view.FormatPlain)),
				).
				Value(&cfg.OutputFormat),
		),
	)

	if err := form.Run(); err != nil {
		return err
	}

	applyAnswers(cfg, space, add)

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if !noPreview {
		out, err := preview(cfg)
		if err != nil {
			return fmt.Errorf("preview failed: %w", err)
		}
		_, _ = fmt.Fprintf(w, "Preview:\n%s\n", out)
	}

	// Save configuration
	if err := cfg.Save(configPath); err != nil {
		return err
	}

	v := view.NewRenderer(view.FormatTable, false)
	v.SetWriter(w)
	_, _ = fmt.Fprintln(w)
	v.Success("Configuration saved to " + configPath)
	_, _ = fmt.Fprintln(w, "\nYou're all set! Try running:")
	_, _ = fmt.Fprintln(w, "  cjkb render README.md")
	_, _ = fmt.Fprintln(w, "  cjkb breaks README.md")

	return nil
}

// applyAnswers copies the form values that need translation into cfg.
func applyAnswers(cfg *config.Config, space, add string) {
	if space == spaceOff {
		space = ""
	}
	cfg.SpaceAfterPunctuation = space

	cfg.PunctuationTargetsAdd = nil
	for _, target := range strings.Split(add, ",") {
		if target = strings.TrimSpace(target); target != "" {
			cfg.PunctuationTargetsAdd = append(cfg.PunctuationTargetsAdd, target)
		}
	}
	if cfg.OutputFormat == string(view.FormatTable) {
		cfg.OutputFormat = ""
	}
}

// preview renders previewSample with cfg.
func preview(cfg *config.Config) (string, error) {
	html, err := md.ToHTML([]byte(previewSample), cfg.MDOptions()...)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(html), nil
}
