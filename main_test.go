package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/serroba/bureau/internal/form"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	t.Cleanup(func() {
		configFile, metricsFile, strict = "", "", false
	})

	var out bytes.Buffer

	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()

	return out.String(), err
}

func TestFormsCommand(t *testing.T) {
	out, err := execute(t, "forms")
	require.NoError(t, err)

	require.Contains(t, out, "shrubbery creation")
	require.Contains(t, out, "robotomy request")
	require.Contains(t, out, "presidential pardon")

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Equal(t, []string{
		"FORM                 SIGN  EXECUTE",
		"shrubbery creation   145   137",
		"robotomy request     72    45",
		"presidential pardon  25    5",
	}, lines)
}

func TestDemoCommand(t *testing.T) {
	dir := t.TempDir()
	journalPath := filepath.Join(dir, "journal.jsonl")
	metricsPath := filepath.Join(dir, "bureau.prom")

	t.Setenv("BUREAU_OFFICE_ARTIFACT_DIR", dir)
	t.Setenv("BUREAU_OFFICE_SEED", "42")
	t.Setenv("BUREAU_JOURNAL_PATH", journalPath)
	t.Setenv("BUREAU_APP_LOG_LEVEL", "error")

	out, err := execute(t, "demo", "--metrics-file", metricsPath)
	require.NoError(t, err)
	require.Contains(t, out, "failed, 0 skipped")
	require.Contains(t, out, "Arthur Dent has been pardoned by Zaphod Beeblebrox.")

	_, err = os.Stat(filepath.Join(dir, "home"+form.ShrubberySuffix))
	require.NoError(t, err)

	f, err := os.Open(journalPath)
	require.NoError(t, err)
	defer f.Close()

	lines := 0
	scanner := bufio.NewScanner(f)

	for scanner.Scan() {
		var ev struct {
			Seq  int    `json:"seq"`
			Type string `json:"type"`
		}

		require.NoError(t, json.Unmarshal(scanner.Bytes(), &ev))
		lines++
		require.Equal(t, lines, ev.Seq)
	}

	require.NoError(t, scanner.Err())
	require.Positive(t, lines)

	metrics, err := os.ReadFile(metricsPath)
	require.NoError(t, err)
	require.Contains(t, string(metrics), "bureau_executions_total")
}

func TestRunCommand_Strict(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "s.yaml")

	require.NoError(t, os.WriteFile(path, []byte("steps:\n  - hire: {name: Giant, grade: 200}\n"), 0o644))
	t.Setenv("BUREAU_OFFICE_ARTIFACT_DIR", dir)

	out, err := execute(t, "run", path)
	require.NoError(t, err)
	require.Contains(t, out, "1 failed")

	out, err = execute(t, "run", "--strict", path)
	require.EqualError(t, err, "1 step(s) failed")
	require.NotContains(t, out, "Error:")
}
