package form

import (
	"errors"
	"fmt"

	"github.com/serroba/bureau/internal/grade"
)

// Common errors.
var (
	ErrInsufficientGrade = errors.New("grade is too low")
	ErrNotSigned         = errors.New("form is not signed")
	ErrArtifactWrite     = errors.New("could not write artifact")
)

// Performer carries out the side effect of an executed form.
type Performer interface {
	Perform(f *Form) error
}

// Form is a document that must be signed, and then executed, by bureaucrats
// of sufficient grade.
type Form struct {
	name      string
	target    string
	kind      Kind
	signGrade grade.Grade
	execGrade grade.Grade
	signed    bool
}

// New creates a plain form with the given thresholds.
func New(name string, signGrade, execGrade int) (*Form, error) {
	return build(name, "", Plain, signGrade, execGrade)
}

// NewShrubbery creates a shrubbery creation form aimed at target.
func NewShrubbery(target string) *Form {
	return mustKind(ShrubberyCreation, target)
}

// NewRobotomy creates a robotomy request form aimed at target.
func NewRobotomy(target string) *Form {
	return mustKind(RobotomyRequest, target)
}

// NewPardon creates a presidential pardon form aimed at target.
func NewPardon(target string) *Form {
	return mustKind(PresidentialPardon, target)
}

func mustKind(k Kind, target string) *Form {
	sign, exec := k.Requirements()

	f, err := build(k.Title(), target, k, int(sign), int(exec))
	if err != nil {
		panic(fmt.Sprintf("form: invalid requirements for %s: %v", k, err))
	}

	return f
}

func build(name, target string, kind Kind, signGrade, execGrade int) (*Form, error) {
	sign, err := grade.New(signGrade)
	if err != nil {
		return nil, fmt.Errorf("grade to sign: %w", err)
	}

	exec, err := grade.New(execGrade)
	if err != nil {
		return nil, fmt.Errorf("grade to execute: %w", err)
	}

	return &Form{
		name:      name,
		target:    target,
		kind:      kind,
		signGrade: sign,
		execGrade: exec,
	}, nil
}

// Name returns the form name.
func (f *Form) Name() string {
	return f.name
}

// Target returns the subject of the form's action.
func (f *Form) Target() string {
	return f.target
}

// Kind returns what the form does once executed.
func (f *Form) Kind() Kind {
	return f.kind
}

// SignGrade returns the grade required to sign.
func (f *Form) SignGrade() grade.Grade {
	return f.signGrade
}

// ExecGrade returns the grade required to execute.
func (f *Form) ExecGrade() grade.Grade {
	return f.execGrade
}

// Signed reports whether the form has been signed.
func (f *Form) Signed() bool {
	return f.signed
}

// Sign marks the form signed if g meets the signing threshold.
// Signing an already signed form succeeds without change.
func (f *Form) Sign(g grade.Grade) error {
	if !g.Meets(f.signGrade) {
		return fmt.Errorf("%w: %s needs %d to sign, got %d", ErrInsufficientGrade, f.name, f.signGrade, g)
	}

	f.signed = true

	return nil
}

// Execute runs the form's action through p. The form must be signed and g
// must meet the execution threshold; otherwise p is never called.
func (f *Form) Execute(g grade.Grade, p Performer) error {
	if !f.signed {
		return fmt.Errorf("%w: %s", ErrNotSigned, f.name)
	}

	if !g.Meets(f.execGrade) {
		return fmt.Errorf("%w: %s needs %d to execute, got %d", ErrInsufficientGrade, f.name, f.execGrade, g)
	}

	return p.Perform(f)
}

// Clone returns an independent copy, including the signed state.
func (f *Form) Clone() *Form {
	c := *f

	return &c
}

// Assign copies the signed state of other. Name, target and thresholds
// belong to the form's identity and are left alone.
func (f *Form) Assign(other *Form) {
	if f == other {
		return
	}

	f.signed = other.signed
}

// String renders the form the way it is printed on office output.
func (f *Form) String() string {
	signed := "no"
	if f.signed {
		signed = "yes"
	}

	return fmt.Sprintf("Form: %s, grade to sign: %d, grade to execute: %d, signed: %s",
		f.name, f.signGrade, f.execGrade, signed)
}
