// Package intern drafts forms by name.
package intern

import (
	"strings"

	"github.com/serroba/bureau/internal/form"
	"go.uber.org/zap"
)

type entry struct {
	kind  form.Kind
	build func(target string) *form.Form
}

// table is scanned in order; labels are matched exactly.
var table = [...]entry{
	{form.ShrubberyCreation, form.NewShrubbery},
	{form.RobotomyRequest, form.NewRobotomy},
	{form.PresidentialPardon, form.NewPardon},
}

// Intern drafts forms on request.
type Intern struct {
	logger *zap.Logger
}

// New creates an intern that reports through logger.
func New(logger *zap.Logger) *Intern {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Intern{logger: logger}
}

// MakeForm drafts the form called name for target. An unknown name is not
// an error: the intern reports the valid names and returns false.
func (i *Intern) MakeForm(name, target string) (*form.Form, bool) {
	for _, e := range table {
		if e.kind.String() == name {
			i.logger.Info("intern creates form", zap.String("form", name), zap.String("target", target))

			return e.build(target), true
		}
	}

	i.logger.Warn("intern does not know form",
		zap.String("form", name),
		zap.String("available", strings.Join(Kinds(), ", ")),
	)

	return nil, false
}

// Kinds returns the form names the intern knows, in lookup order.
func Kinds() []string {
	labels := make([]string, 0, len(table))

	for _, e := range table {
		labels = append(labels, e.kind.String())
	}

	return labels
}

// Catalog returns the kinds the intern can draft, in lookup order.
func Catalog() []form.Kind {
	kinds := make([]form.Kind, 0, len(table))

	for _, e := range table {
		kinds = append(kinds, e.kind)
	}

	return kinds
}
