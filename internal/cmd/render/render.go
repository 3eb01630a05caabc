// Package render provides the render command.
package render

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/cjk-breaks/internal/cmd/cmdutil"
	"github.com/open-cli-collective/cjk-breaks/internal/config"
	"github.com/open-cli-collective/cjk-breaks/pkg/md"
)

type renderOptions struct {
	to    string
	flags cmdutil.BreakFlags
}

// NewCmdRender creates the render command.
func NewCmdRender() *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render markdown with CJK-aware soft breaks",
		Long: `Render markdown to HTML, or back to markdown, resolving soft line breaks
between CJK characters.

Reads from the file argument, or from stdin when no file (or "-") is given.`,
		Example: `  # Render a file to HTML
  cjkb render notes.md

  # Rewrite markdown with joined lines
  cjkb render notes.md --to markdown

  # Insert a full width space after sentence-final punctuation
  cat notes.md | cjkb render --punct-space full`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, opts, args)
		},
	}

	cmd.Flags().StringVar(&opts.to, "to", "html", "Output: html or markdown")
	opts.flags.Register(cmd)

	return cmd
}

func runRender(cmd *cobra.Command, opts *renderOptions, args []string) error {
	cfg, err := cmdutil.LoadConfig(cmd)
	if err != nil {
		return err
	}
	opts.flags.Apply(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	input, err := cmdutil.ReadInput(args, cmd.InOrStdin())
	if err != nil {
		return err
	}

	out, err := convert(input, opts.to, cfg, md.WithLogger(cmdutil.Logger(cmd)))
	if err != nil {
		return err
	}
	return write(cmd.OutOrStdout(), out)
}

func convert(input []byte, to string, cfg *config.Config, extra ...md.Option) (string, error) {
	mdOpts := append(cfg.MDOptions(), extra...)
	switch to {
	case "html":
		return md.ToHTML(input, mdOpts...)
	case "markdown", "md":
		return md.ToMarkdown(input, mdOpts...)
	}
	return "", fmt.Errorf("invalid --to value %q (valid: html, markdown)", to)
}

func write(w io.Writer, out string) error {
	if out == "" {
		return nil
	}
	if out[len(out)-1] != '\n' {
		out += "\n"
	}
	_, err := io.WriteString(w, out)
	return err
}
