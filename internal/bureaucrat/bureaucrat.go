// Package bureaucrat models the officials who sign and execute forms.
package bureaucrat

import (
	"fmt"

	"github.com/serroba/bureau/internal/form"
	"github.com/serroba/bureau/internal/grade"
)

// Bureaucrat is a named official holding a grade.
type Bureaucrat struct {
	name  string
	grade grade.Grade
}

// New creates a bureaucrat, failing with grade.ErrTooHigh or
// grade.ErrTooLow when g is out of range.
func New(name string, g int) (*Bureaucrat, error) {
	valid, err := grade.New(g)
	if err != nil {
		return nil, fmt.Errorf("bureaucrat %s: %w", name, err)
	}

	return &Bureaucrat{name: name, grade: valid}, nil
}

// Name returns the bureaucrat's name.
func (b *Bureaucrat) Name() string {
	return b.name
}

// Grade returns the bureaucrat's current grade.
func (b *Bureaucrat) Grade() grade.Grade {
	return b.grade
}

// Promote moves the bureaucrat one grade up. The grade is unchanged on error.
func (b *Bureaucrat) Promote() error {
	next := b.grade - 1
	if err := next.Validate(); err != nil {
		return fmt.Errorf("promote %s: %w", b.name, err)
	}

	b.grade = next

	return nil
}

// Demote moves the bureaucrat one grade down. The grade is unchanged on error.
func (b *Bureaucrat) Demote() error {
	next := b.grade + 1
	if err := next.Validate(); err != nil {
		return fmt.Errorf("demote %s: %w", b.name, err)
	}

	b.grade = next

	return nil
}

// SignResult is the outcome of asking a bureaucrat to sign a form.
type SignResult struct {
	Signer string
	Form   string
	Signed bool
	// Reason explains a refusal. It is nil when Signed is true.
	Reason error
}

// String renders the result as the office reports it.
func (r SignResult) String() string {
	if r.Signed {
		return fmt.Sprintf("%s signed %s", r.Signer, r.Form)
	}

	return fmt.Sprintf("%s couldn't sign %s because %v", r.Signer, r.Form, r.Reason)
}

// SignForm tries to sign f. Refusals are routine and come back in the
// result rather than as an error.
func (b *Bureaucrat) SignForm(f *form.Form) SignResult {
	result := SignResult{Signer: b.name, Form: f.Name()}

	if err := f.Sign(b.grade); err != nil {
		result.Reason = err

		return result
	}

	result.Signed = true

	return result
}

// ExecuteForm executes f through p. Every failure is returned to the caller.
func (b *Bureaucrat) ExecuteForm(f *form.Form, p form.Performer) error {
	if err := f.Execute(b.grade, p); err != nil {
		return fmt.Errorf("%s couldn't execute %s: %w", b.name, f.Name(), err)
	}

	return nil
}

// Clone returns an independent copy of the bureaucrat.
func (b *Bureaucrat) Clone() *Bureaucrat {
	c := *b

	return &c
}

// Assign takes over other's grade. The name never changes.
func (b *Bureaucrat) Assign(other *Bureaucrat) {
	if b == other {
		return
	}

	b.grade = other.grade
}

// String renders the bureaucrat as "<name>, bureaucrat grade <grade>".
func (b *Bureaucrat) String() string {
	return fmt.Sprintf("%s, bureaucrat grade %d", b.name, b.grade)
}
