package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	configFile  string
	metricsFile string
)

// rootCmd is the bureau entry point
var rootCmd = &cobra.Command{
	Use:   "bureau",
	Short: "Run paperwork through a grade-gated office",
	Long: `bureau hires bureaucrats, has the intern draft forms, and walks them
through signing and execution.

Available subcommands:
  demo  - Run the built-in walkthrough
  run   - Run a scenario file
  forms - List the forms the intern can draft`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (YAML)")
	rootCmd.PersistentFlags().StringVar(&metricsFile, "metrics-file", "", "write Prometheus metrics to this file when the run ends")

	rootCmd.AddCommand(demoCmd, runCmd, formsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
