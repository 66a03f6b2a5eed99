package form

import (
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// ShrubberySuffix is appended to the target to name the shrubbery artifact.
const ShrubberySuffix = "_shrubbery"

const bush = `       _-_
    /~~   ~~\
 /~~         ~~\
{               }
 \  _-     -_  /
   ~  \\ //  ~
_- -   | | _- _
  _ -  | |   -_
      // \\
`

// ShrubberyArt is the content written for every shrubbery creation.
const ShrubberyArt = bush + "\n" + bush

// Actions performs the side effect of each form kind.
type Actions struct {
	out       io.Writer
	dir       string
	rng       *rand.Rand
	logger    *zap.Logger
	onOutcome func(kind Kind, success bool)
}

// ActionsConfig holds configuration for creating Actions.
type ActionsConfig struct {
	// Out receives the messages printed by robotomies and pardons.
	Out io.Writer
	// Dir is where shrubbery artifacts are written. Empty means the
	// working directory.
	Dir string
	// Rand decides robotomy outcomes. It should be seeded once per process.
	Rand   *rand.Rand
	Logger *zap.Logger
	// OnOutcome, if set, is told how every executed action turned out.
	OnOutcome func(kind Kind, success bool)
}

// NewActions creates a Performer for the three form kinds.
func NewActions(cfg ActionsConfig) *Actions {
	out := cfg.Out
	if out == nil {
		out = io.Discard
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	return &Actions{
		out:       out,
		dir:       cfg.Dir,
		rng:       rng,
		logger:    logger,
		onOutcome: cfg.OnOutcome,
	}
}

// Perform dispatches on the form's kind.
func (a *Actions) Perform(f *Form) error {
	var (
		success bool
		err     error
	)

	switch f.Kind() {
	case ShrubberyCreation:
		err = a.plantShrubbery(f.Target())
		success = err == nil
	case RobotomyRequest:
		success = a.robotomize(f.Target())
	case PresidentialPardon:
		a.pardon(f.Target())

		success = true
	case Plain:
		success = true
	default:
		return fmt.Errorf("form %s has unknown kind %d", f.Name(), f.Kind())
	}

	if a.onOutcome != nil {
		a.onOutcome(f.Kind(), success)
	}

	return err
}

// ArtifactPath returns where the shrubbery for target is written.
func (a *Actions) ArtifactPath(target string) string {
	return filepath.Join(a.dir, target+ShrubberySuffix)
}

func (a *Actions) plantShrubbery(target string) error {
	path := a.ArtifactPath(target)

	// WriteFile truncates, so a second planting replaces the first.
	if err := os.WriteFile(path, []byte(ShrubberyArt), 0o644); err != nil {
		a.logger.Error("shrubbery not planted", zap.String("path", path), zap.Error(err))

		return fmt.Errorf("%w %s: %w", ErrArtifactWrite, path, err)
	}

	a.logger.Debug("shrubbery planted", zap.String("path", path))

	return nil
}

func (a *Actions) robotomize(target string) bool {
	a.printf("* BZZZZZZT! WHIRRRRR! DRRRRRR! *\n")
	a.printf("* Drilling noises... *\n")

	if a.rng.IntN(2) == 0 {
		a.printf("%s has been robotomized successfully!\n", target)

		return true
	}

	a.printf("Robotomy on %s failed!\n", target)

	return false
}

func (a *Actions) pardon(target string) {
	a.printf("%s has been pardoned by Zaphod Beeblebrox.\n", target)
}

func (a *Actions) printf(format string, args ...any) {
	if _, err := fmt.Fprintf(a.out, format, args...); err != nil {
		a.logger.Warn("failed to write action output", zap.Error(err))
	}
}

// Ensure Actions implements Performer.
var _ Performer = (*Actions)(nil)
