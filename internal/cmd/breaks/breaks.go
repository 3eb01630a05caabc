// Package breaks provides the breaks command, which reports how every soft
// break in a document is resolved.
package breaks

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/cjk-breaks/internal/cmd/cmdutil"
	"github.com/open-cli-collective/cjk-breaks/internal/view"
	"github.com/open-cli-collective/cjk-breaks/pkg/md"
)

// sourceWidth is the display width of the SOURCE column.
const sourceWidth = 32

type breaksOptions struct {
	removedOnly bool
	flags       cmdutil.BreakFlags
}

// breakRow is the JSON shape of one decision.
type breakRow struct {
	Block     int    `json:"block"`
	Kind      string `json:"kind"`
	Line      int    `json:"line"`
	Last      string `json:"last"`
	Next      string `json:"next"`
	WidthLast string `json:"width_last"`
	WidthNext string `json:"width_next"`
	Removed   bool   `json:"removed"`
	Reason    string `json:"reason"`
	Inserted  string `json:"inserted,omitempty"`
	Embedded  bool   `json:"embedded,omitempty"`
	Source    string `json:"source"`
}

// NewCmdBreaks creates the breaks command.
func NewCmdBreaks() *cobra.Command {
	opts := &breaksOptions{}

	cmd := &cobra.Command{
		Use:   "breaks [file]",
		Short: "Report how soft line breaks are resolved",
		Long: `List every soft line break in a markdown document together with the
characters on either side, their East Asian Width, and whether the break
is removed or kept.

Reads from the file argument, or from stdin when no file (or "-") is given.`,
		Example: `  # Show decisions as a table
  cjkb breaks notes.md

  # Only the breaks that disappear, as JSON
  cjkb breaks notes.md --removed -o json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBreaks(cmd, opts, args)
		},
	}

	cmd.Flags().BoolVar(&opts.removedOnly, "removed", false, "Only list removed breaks")
	opts.flags.Register(cmd)

	return cmd
}

func runBreaks(cmd *cobra.Command, opts *breaksOptions, args []string) error {
	cfg, err := cmdutil.LoadConfig(cmd)
	if err != nil {
		return err
	}
	opts.flags.Apply(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}
	format, err := cmdutil.OutputFormat(cmd, cfg)
	if err != nil {
		return err
	}

	input, err := cmdutil.ReadInput(args, cmd.InOrStdin())
	if err != nil {
		return err
	}

	mdOpts := append(cfg.MDOptions(), md.WithLogger(cmdutil.Logger(cmd)))
	rows := collectRows(md.Inspect(input, mdOpts...), opts.removedOnly)

	noColor, _ := cmd.Flags().GetBool("no-color")
	v := view.NewRenderer(format, noColor)
	v.SetWriter(cmd.OutOrStdout())

	if v.Format() == view.FormatJSON {
		if rows == nil {
			rows = []breakRow{}
		}
		return v.RenderJSON(rows)
	}
	if len(rows) == 0 {
		v.RenderText("No soft breaks found.")
		return nil
	}

	headers := []string{"BLOCK", "LINE", "LAST", "NEXT", "WIDTHS", "RESULT", "REASON", "INSERTED", "SOURCE"}
	tableRows := make([][]string, 0, len(rows))
	for _, r := range rows {
		result := "kept"
		if r.Removed {
			result = "removed"
		}
		inserted := "-"
		if r.Inserted != "" {
			inserted = strconv.Quote(r.Inserted)
		}
		tableRows = append(tableRows, []string{
			strconv.Itoa(r.Block),
			strconv.Itoa(r.Line),
			r.Last,
			r.Next,
			r.WidthLast + "/" + r.WidthNext,
			result,
			r.Reason,
			inserted,
			view.Truncate(r.Source, sourceWidth),
		})
	}
	v.RenderTable(headers, tableRows)
	return nil
}

func collectRows(reports []md.BlockReport, removedOnly bool) []breakRow {
	var rows []breakRow
	for _, report := range reports {
		source := strings.ReplaceAll(report.Raw, "\n", "↵")
		for _, d := range report.Decisions {
			if removedOnly && !d.Removed {
				continue
			}
			rows = append(rows, breakRow{
				Block:     report.Index,
				Kind:      report.Kind,
				Line:      report.Line,
				Last:      quoteRune(d.Last),
				Next:      quoteRune(d.Next),
				WidthLast: d.WidthLast.String(),
				WidthNext: d.WidthNext.String(),
				Removed:   d.Removed,
				Reason:    string(d.Reason),
				Inserted:  d.Inserted,
				Embedded:  d.Embedded,
				Source:    source,
			})
		}
	}
	return rows
}

func quoteRune(r rune) string {
	return strconv.QuoteRune(r)
}
