package main

import (
	"os"

	"github.com/open-cli-collective/cjk-breaks/internal/cmd/root"
	"github.com/open-cli-collective/cjk-breaks/internal/view"
)

func main() {
	cmd := root.NewCmdRoot()
	if err := cmd.Execute(); err != nil {
		noColor, _ := cmd.PersistentFlags().GetBool("no-color")
		v := view.NewRenderer(view.FormatPlain, noColor)
		v.SetWriter(os.Stderr)
		v.Error(err.Error())
		os.Exit(1)
	}
}
