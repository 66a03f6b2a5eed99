package main

import (
	"fmt"
	"strconv"

	"github.com/serroba/bureau/internal/form"
	"github.com/serroba/bureau/internal/intern"
	"github.com/serroba/bureau/internal/render"
	"github.com/serroba/bureau/internal/scenario"
	"github.com/spf13/cobra"
)

var strict bool

// demoCmd runs the embedded walkthrough
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the built-in walkthrough",
	RunE: func(cmd *cobra.Command, _ []string) error {
		s, err := scenario.Demo()
		if err != nil {
			return err
		}

		return playScenario(cmd, s)
	},
}

// runCmd runs a scenario file
var runCmd = &cobra.Command{
	Use:   "run <scenario.yaml>",
	Short: "Run a scenario file",
	Long: `Run a YAML scenario against a fresh office.

A step that fails is reported and the rest of its section is skipped.
With --strict the command exits non-zero if any step failed.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := scenario.Load(args[0])
		if err != nil {
			return err
		}

		return playScenario(cmd, s)
	},
}

// formsCmd lists what the intern can draft
var formsCmd = &cobra.Command{
	Use:   "forms",
	Short: "List the forms the intern can draft",
	RunE: func(cmd *cobra.Command, _ []string) error {
		rows := [][]string{{"FORM", "SIGN", "EXECUTE"}}

		for _, k := range intern.Catalog() {
			sign, exec := k.Requirements()
			rows = append(rows, []string{k.String(), strconv.Itoa(int(sign)), strconv.Itoa(int(exec))})
		}

		_, err := fmt.Fprint(cmd.OutOrStdout(), render.Table(rows))

		return err
	},
}

func init() {
	runCmd.Flags().BoolVar(&strict, "strict", false, "exit non-zero if any step failed")
}

func playScenario(cmd *cobra.Command, s *scenario.Scenario) error {
	a, err := newApp(cmd.OutOrStdout())
	if err != nil {
		return err
	}
	defer a.close()

	report := a.play(s)

	fmt.Fprintln(cmd.OutOrStdout())
	fmt.Fprintln(cmd.OutOrStdout(), render.Header(fmt.Sprintf("%d steps, %d failed, %d skipped", report.Steps, report.Failures, report.Skipped)))

	if a.cfg.Office.ArtifactDir != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "Shrubberies are in %s (files ending in %s)\n", a.cfg.Office.ArtifactDir, form.ShrubberySuffix)
	}

	if strict && report.Failures > 0 {
		return fmt.Errorf("%d step(s) failed", report.Failures)
	}

	return nil
}
