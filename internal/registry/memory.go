package registry

import (
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/serroba/bureau/internal/bureaucrat"
	"github.com/serroba/bureau/internal/form"
)

// MemoryStore is an in-memory implementation of the Store interface.
// It is not safe for concurrent use; an office runs on one goroutine.
type MemoryStore struct {
	staff   map[string]*bureaucrat.Bureaucrat
	forms   map[string]Record
	aliases map[string]string // alias -> ID
	order   []string
}

// NewMemoryStore creates a new in-memory registry.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		staff:   make(map[string]*bureaucrat.Bureaucrat),
		forms:   make(map[string]Record),
		aliases: make(map[string]string),
	}
}

// Hire adds a bureaucrat.
func (m *MemoryStore) Hire(b *bureaucrat.Bureaucrat) error {
	if _, exists := m.staff[b.Name()]; exists {
		return ErrBureaucratExists
	}

	m.staff[b.Name()] = b

	return nil
}

// Bureaucrat returns the bureaucrat with the given name.
func (m *MemoryStore) Bureaucrat(name string) (*bureaucrat.Bureaucrat, error) {
	b, exists := m.staff[name]
	if !exists {
		return nil, ErrBureaucratNotFound
	}

	return b, nil
}

// Staff returns every bureaucrat, ordered by name.
func (m *MemoryStore) Staff() []*bureaucrat.Bureaucrat {
	result := make([]*bureaucrat.Bureaucrat, 0, len(m.staff))

	for _, b := range m.staff {
		result = append(result, b)
	}

	slices.SortFunc(result, func(a, b *bureaucrat.Bureaucrat) int {
		return strings.Compare(a.Name(), b.Name())
	})

	return result
}

// File stores a form under a fresh ID and an optional alias.
func (m *MemoryStore) File(alias string, f *form.Form) (Record, error) {
	if alias != "" {
		if _, taken := m.aliases[alias]; taken {
			return Record{}, ErrAliasTaken
		}
	}

	rec := Record{
		ID:    uuid.NewString(),
		Alias: alias,
		Form:  f,
	}

	m.forms[rec.ID] = rec
	m.order = append(m.order, rec.ID)

	if alias != "" {
		m.aliases[alias] = rec.ID
	}

	return rec, nil
}

// Form returns the record whose ID or alias matches ref.
func (m *MemoryStore) Form(ref string) (Record, error) {
	id, ok := m.resolve(ref)
	if !ok {
		return Record{}, ErrFormNotFound
	}

	return m.forms[id], nil
}

// Forms returns every filed form in filing order.
func (m *MemoryStore) Forms() []Record {
	result := make([]Record, 0, len(m.order))

	for _, id := range m.order {
		result = append(result, m.forms[id])
	}

	return result
}

// Shred removes a form by ID or alias.
func (m *MemoryStore) Shred(ref string) error {
	id, ok := m.resolve(ref)
	if !ok {
		return ErrFormNotFound
	}

	rec := m.forms[id]
	delete(m.forms, id)

	if rec.Alias != "" {
		delete(m.aliases, rec.Alias)
	}

	m.order = slices.DeleteFunc(m.order, func(v string) bool { return v == id })

	return nil
}

// resolve maps an alias or ID to a filed form's ID.
func (m *MemoryStore) resolve(ref string) (string, bool) {
	if id, ok := m.aliases[ref]; ok {
		return id, true
	}

	if _, ok := m.forms[ref]; ok {
		return ref, true
	}

	return "", false
}

// Ensure MemoryStore implements Store.
var _ Store = (*MemoryStore)(nil)
