package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	inputPath    string
	nVarsFlag    int
	doNotCheck   bool
	loggingLevel string
	assumeLits   []string
)

var logger *slog.Logger

var rootCmd = &cobra.Command{
	Use:          "decdnnf",
	Short:        "Query engines for compiled Decision-DNNF formulas",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger = newLogger(loggingLevel)
		return nil
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&inputPath, "input", "i", "", "path to the Decision-DNNF to load (required)")
	pf.IntVar(&nVarsFlag, "n-vars", 0, "declare (or extend) the number of variables")
	pf.BoolVar(&doNotCheck, "do-not-check", false, "skip the input's reachability/acyclicity check")
	pf.StringVar(&loggingLevel, "logging-level", "info", "log level: debug, info, warn, error")
	pf.StringSliceVarP(&assumeLits, "assume", "a", nil, "space-separated DIMACS literals to assume, may repeat")

	rootCmd.AddCommand(
		translationCmd,
		modelCountingCmd,
		modelEnumerationCmd,
		directAccessCmd,
		computeModelCmd,
		samplingCmd,
	)
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}
