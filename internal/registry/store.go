package registry

import (
	"errors"

	"github.com/serroba/bureau/internal/bureaucrat"
	"github.com/serroba/bureau/internal/form"
)

// Common errors.
var (
	ErrBureaucratNotFound = errors.New("bureaucrat not found")
	ErrBureaucratExists   = errors.New("bureaucrat already exists")
	ErrFormNotFound       = errors.New("form not found")
	ErrAliasTaken         = errors.New("form alias already taken")
)

// Record is a filed form together with the handles it can be found by.
type Record struct {
	ID    string
	Alias string
	Form  *form.Form
}

// Store defines the interface for keeping an office's staff and paperwork.
type Store interface {
	// Hire adds a bureaucrat.
	// Returns ErrBureaucratExists if the name is already on staff.
	Hire(b *bureaucrat.Bureaucrat) error

	// Bureaucrat returns the bureaucrat with the given name.
	// Returns ErrBureaucratNotFound if there is none.
	Bureaucrat(name string) (*bureaucrat.Bureaucrat, error)

	// Staff returns every bureaucrat, ordered by name.
	Staff() []*bureaucrat.Bureaucrat

	// File stores a form under a fresh ID and an optional alias.
	// Returns ErrAliasTaken if the alias is already in use.
	File(alias string, f *form.Form) (Record, error)

	// Form returns the record whose ID or alias matches ref.
	// Returns ErrFormNotFound if there is none.
	Form(ref string) (Record, error)

	// Forms returns every filed form in filing order.
	Forms() []Record

	// Shred removes a form by ID or alias.
	// Returns ErrFormNotFound if there is none.
	Shred(ref string) error
}
