package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "itrgo %s (commit %s, built %s)\n", version, commit, date)
			if info := buildInfo(); info != "" {
				fmt.Fprintln(cmd.OutOrStdout(), info)
			}
		},
	}
}

func buildInfo() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
		return bi.String()
	}
	return ""
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "itrgo",
		Short: "Indian income-tax calculator: Old vs New regime",
		Long: "Computes salaried income tax for AY 2026-27 under both the Old and the New regime,\n" +
			"recommends the cheaper one and finds the deductions at which the Old regime breaks even.",
		SilenceUsage: true,
	}

	pf := root.PersistentFlags()
	pf.String("config", "", "settings file (default ./itrgo.yaml or $HOME/.config/itrgo/itrgo.yaml)")
	pf.StringP("format", "f", "console", "output format")
	pf.String("rules", "", "YAML rules file overlaid on the built-in FY 2025-26 rules")
	pf.String("log-level", "info", "log level: debug, info, warn, error")
	pf.String("log-format", "console", "log format: console or json")

	root.AddCommand(
		calculateCmd(),
		compareCmd(),
		breakEvenCmd(),
		validateCmd(),
		rulesCmd(),
		whatIfCmd(),
		serveCmd(),
		tuiCmd(),
		versionCmd(),
	)
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
