package form

import "github.com/serroba/bureau/internal/grade"

// Kind identifies what a form does once executed.
type Kind int

const (
	// Plain forms are gated like any other but do nothing when executed.
	Plain Kind = iota
	ShrubberyCreation
	RobotomyRequest
	PresidentialPardon
)

// String returns the label the intern uses to look the kind up.
func (k Kind) String() string {
	switch k {
	case Plain:
		return "plain"
	case ShrubberyCreation:
		return "shrubbery creation"
	case RobotomyRequest:
		return "robotomy request"
	case PresidentialPardon:
		return "presidential pardon"
	default:
		return "unknown"
	}
}

// Title returns the form name printed on forms of this kind.
func (k Kind) Title() string {
	switch k {
	case ShrubberyCreation:
		return "Shrubbery Creation"
	case RobotomyRequest:
		return "Robotomy Request"
	case PresidentialPardon:
		return "Presidential Pardon"
	default:
		return ""
	}
}

// Requirements returns the grades needed to sign and to execute forms of
// this kind. Plain forms choose their own and report zero here.
func (k Kind) Requirements() (sign, exec grade.Grade) {
	switch k {
	case ShrubberyCreation:
		return 145, 137
	case RobotomyRequest:
		return 72, 45
	case PresidentialPardon:
		return 25, 5
	default:
		return 0, 0
	}
}
