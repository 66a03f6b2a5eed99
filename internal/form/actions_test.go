package form_test

import (
	"bytes"
	"errors"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/serroba/bureau/internal/form"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type outcome struct {
	kind    form.Kind
	success bool
}

func signedForm(t *testing.T, f *form.Form) *form.Form {
	t.Helper()

	require.NoError(t, f.Sign(1))

	return f
}

func TestActions_Shrubbery(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	var outcomes []outcome

	actions := form.NewActions(form.ActionsConfig{
		Dir:    dir,
		Logger: zaptest.NewLogger(t),
		OnOutcome: func(k form.Kind, ok bool) {
			outcomes = append(outcomes, outcome{k, ok})
		},
	})

	f := signedForm(t, form.NewShrubbery("home"))
	require.NoError(t, f.Execute(1, actions))

	path := filepath.Join(dir, "home_shrubbery")
	require.Equal(t, path, actions.ArtifactPath("home"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, form.ShrubberyArt, string(data))
	require.Equal(t, 2, strings.Count(string(data), "{               }"))

	require.Equal(t, []outcome{{form.ShrubberyCreation, true}}, outcomes)
}

func TestActions_Shrubbery_Overwrites(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "garden_shrubbery")
	require.NoError(t, os.WriteFile(path, []byte(strings.Repeat("weeds\n", 100)), 0o644))

	actions := form.NewActions(form.ActionsConfig{Dir: dir})
	f := signedForm(t, form.NewShrubbery("garden"))

	require.NoError(t, f.Execute(1, actions))
	require.NoError(t, f.Execute(1, actions))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, form.ShrubberyArt, string(data))
}

func TestActions_Shrubbery_WriteFailure(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "missing")

	var outcomes []outcome

	actions := form.NewActions(form.ActionsConfig{
		Dir: dir,
		OnOutcome: func(k form.Kind, ok bool) {
			outcomes = append(outcomes, outcome{k, ok})
		},
	})

	f := signedForm(t, form.NewShrubbery("home"))

	err := f.Execute(1, actions)
	if !errors.Is(err, form.ErrArtifactWrite) {
		t.Errorf("expected ErrArtifactWrite, got %v", err)
	}

	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected underlying not-exist error, got %v", err)
	}

	require.Equal(t, []outcome{{form.ShrubberyCreation, false}}, outcomes)
}

func TestActions_Robotomy(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	successes, failures := 0, 0

	actions := form.NewActions(form.ActionsConfig{
		Out:  &out,
		Rand: rand.New(rand.NewPCG(1, 2)),
		OnOutcome: func(_ form.Kind, ok bool) {
			if ok {
				successes++
			} else {
				failures++
			}
		},
	})

	f := signedForm(t, form.NewRobotomy("Bender"))

	for range 64 {
		require.NoError(t, f.Execute(45, actions))
	}

	text := out.String()
	require.Equal(t, 64, strings.Count(text, "* BZZZZZZT! WHIRRRRR! DRRRRRR! *"))
	require.Equal(t, successes, strings.Count(text, "Bender has been robotomized successfully!"))
	require.Equal(t, failures, strings.Count(text, "Robotomy on Bender failed!"))

	if successes == 0 || failures == 0 {
		t.Errorf("expected both outcomes over 64 draws, got %d/%d", successes, failures)
	}
}

func TestActions_Robotomy_SameSeedSameOutcomes(t *testing.T) {
	t.Parallel()

	run := func() string {
		var out bytes.Buffer

		actions := form.NewActions(form.ActionsConfig{
			Out:  &out,
			Rand: rand.New(rand.NewPCG(7, 7)),
		})
		f := signedForm(t, form.NewRobotomy("C3PO"))

		for range 10 {
			require.NoError(t, f.Execute(1, actions))
		}

		return out.String()
	}

	require.Equal(t, run(), run())
}

func TestActions_Pardon(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	actions := form.NewActions(form.ActionsConfig{Out: &out})
	f := signedForm(t, form.NewPardon("Arthur Dent"))

	require.NoError(t, f.Execute(5, actions))
	require.Equal(t, "Arthur Dent has been pardoned by Zaphod Beeblebrox.\n", out.String())
}

func TestActions_Plain(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	actions := form.NewActions(form.ActionsConfig{Out: &out, Dir: t.TempDir()})

	f, err := form.New("T", 30, 10)
	require.NoError(t, err)
	require.NoError(t, f.Sign(20))
	require.NoError(t, f.Execute(10, actions))
	require.Empty(t, out.String())
}
