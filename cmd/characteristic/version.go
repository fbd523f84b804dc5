package main

import (
	"runtime"

	"github.com/spf13/cobra"

	"github.com/dball/characteristic/internal/cli/ui"
)

func newVersionCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			p := ui.NewPrinter(cmd.OutOrStdout(), &ui.PrinterOptions{NoColor: !a.config.Color})
			p.Field("characteristic version", Version)
			p.Field("Git commit", GitCommit)
			p.Field("Build date", BuildDate)
			p.Field("Go version", runtime.Version())
		},
	}
}
