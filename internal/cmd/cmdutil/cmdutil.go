// Package cmdutil holds helpers shared by the cjkb commands that process
// markdown: break flags, config loading, input reading and logging.
package cmdutil

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/open-cli-collective/cjk-breaks/internal/config"
	"github.com/open-cli-collective/cjk-breaks/internal/logging"
	"github.com/open-cli-collective/cjk-breaks/internal/view"
)

// ErrNoInput is returned when no file is given and stdin is a terminal.
var ErrNoInput = errors.New("no input: pass a markdown file or pipe markdown on stdin")

// BreakFlags are the per-invocation overrides of the break settings.
type BreakFlags struct {
	Either         bool
	Normalize      bool
	PunctSpace     string
	PunctTargets   []string
	NoPunctTargets bool
	PunctAdd       []string
	PunctRemove    []string
}

// Register adds the break flags to cmd.
func (f *BreakFlags) Register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.BoolVar(&f.Either, "either", false, "Remove a break when either side is wide")
	flags.BoolVar(&f.Normalize, "normalize", false, "Split line feeds out of text before resolving")
	flags.StringVar(&f.PunctSpace, "punct-space", "", `Spacing after punctuation: "half", "full" or a literal string`)
	flags.StringSliceVar(&f.PunctTargets, "punct-targets", nil, "Replace the punctuation targets (empty disables)")
	flags.BoolVar(&f.NoPunctTargets, "no-punct-targets", false, "Disable punctuation spacing")
	flags.StringSliceVar(&f.PunctAdd, "punct-add", nil, "Add punctuation targets")
	flags.StringSliceVar(&f.PunctRemove, "punct-remove", nil, "Remove punctuation targets")
}

// Apply overrides cfg with the flags that were set on the command line.
func (f *BreakFlags) Apply(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("either") {
		cfg.Either = f.Either
	}
	if flags.Changed("normalize") {
		cfg.NormalizeSoftBreaks = f.Normalize
	}
	if flags.Changed("punct-space") {
		cfg.SpaceAfterPunctuation = f.PunctSpace
	}
	if flags.Changed("punct-targets") {
		targets := append([]string{}, f.PunctTargets...)
		cfg.PunctuationTargets = &targets
	}
	if flags.Changed("no-punct-targets") {
		cfg.PunctuationTargetsDisabled = f.NoPunctTargets
	}
	if flags.Changed("punct-add") {
		cfg.PunctuationTargetsAdd = f.PunctAdd
	}
	if flags.Changed("punct-remove") {
		cfg.PunctuationTargetsRemove = f.PunctRemove
	}
}

// ConfigPath returns the --config flag value or the default path.
func ConfigPath(cmd *cobra.Command) string {
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		return path
	}
	return config.DefaultConfigPath()
}

// LoadConfig loads the config file with environment overrides and checks it.
func LoadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.LoadWithEnv(ConfigPath(cmd))
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w (run 'cjkb init' to reconfigure)", err)
	}
	return cfg, nil
}

// OutputFormat picks the --output flag, then the configured format, then
// the table format.
func OutputFormat(cmd *cobra.Command, cfg *config.Config) (view.Format, error) {
	format, _ := cmd.Flags().GetString("output")
	if format == "" {
		format = cfg.OutputFormat
	}
	if format == "" {
		return view.FormatTable, nil
	}
	if err := view.ValidateFormat(format); err != nil {
		return "", err
	}
	return view.Format(format), nil
}

// ReadInput reads the file named by args[0], or stdin when no file is
// given. An interactive terminal on stdin is refused.
func ReadInput(args []string, stdin io.Reader) ([]byte, error) {
	if len(args) > 0 && args[0] != "-" {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return nil, fmt.Errorf("failed to read file: %w", err)
		}
		return data, nil
	}

	if f, ok := stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return nil, ErrNoInput
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return nil, fmt.Errorf("failed to read stdin: %w", err)
	}
	return data, nil
}

// Logger builds the command logger from the --verbose and --no-color flags.
func Logger(cmd *cobra.Command) *zerolog.Logger {
	verbose, _ := cmd.Flags().GetBool("verbose")
	noColor, _ := cmd.Flags().GetBool("no-color")
	logger := logging.New(cmd.ErrOrStderr(), verbose, noColor)
	return &logger
}
