package scenario

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed demo.yaml
var demoYAML []byte

// Common errors.
var (
	ErrInvalidStep = errors.New("invalid step")
)

// Scenario is a scripted sequence of office operations.
type Scenario struct {
	Name  string `yaml:"name"`
	Steps []Step `yaml:"steps"`
}

// Step holds exactly one operation.
type Step struct {
	Section string     `yaml:"section,omitempty"`
	Note    string     `yaml:"note,omitempty"`
	Hire    *Hire      `yaml:"hire,omitempty"`
	Draft   *Draft     `yaml:"draft,omitempty"`
	Form    *PlainForm `yaml:"form,omitempty"`
	Sign    *Action    `yaml:"sign,omitempty"`
	Execute *Action    `yaml:"execute,omitempty"`
	Promote string     `yaml:"promote,omitempty"`
	Demote  string     `yaml:"demote,omitempty"`
	Show    string     `yaml:"show,omitempty"`
	Shred   string     `yaml:"shred,omitempty"`
	List    string     `yaml:"list,omitempty"`
}

// Hire adds a bureaucrat.
type Hire struct {
	Name  string `yaml:"name"`
	Grade int    `yaml:"grade"`
}

// Draft asks the intern for a form.
type Draft struct {
	Kind   string `yaml:"kind"`
	Target string `yaml:"target"`
	As     string `yaml:"as,omitempty"`
}

// PlainForm files a form with explicit thresholds and no action.
type PlainForm struct {
	As   string `yaml:"as"`
	Name string `yaml:"name"`
	Sign int    `yaml:"sign"`
	Exec int    `yaml:"exec"`
}

// Action has a bureaucrat sign or execute a form, Repeat times (default 1).
type Action struct {
	By     string `yaml:"by"`
	Form   string `yaml:"form"`
	Repeat int    `yaml:"repeat,omitempty"`
}

// Parse decodes and validates a scenario.
func Parse(data []byte) (*Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decode scenario: %w", err)
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}

	return &s, nil
}

// Load reads a scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return s, nil
}

// Demo returns the built-in walkthrough.
func Demo() (*Scenario, error) {
	return Parse(demoYAML)
}

// Validate checks that every step names exactly one operation.
func (s *Scenario) Validate() error {
	for i, step := range s.Steps {
		if n := step.operations(); n != 1 {
			return fmt.Errorf("%w: step %d has %d operations, want 1", ErrInvalidStep, i+1, n)
		}

		if err := step.validate(); err != nil {
			return fmt.Errorf("%w: step %d: %w", ErrInvalidStep, i+1, err)
		}
	}

	return nil
}

func (st Step) operations() int {
	n := 0

	for _, set := range []bool{
		st.Section != "",
		st.Note != "",
		st.Hire != nil,
		st.Draft != nil,
		st.Form != nil,
		st.Sign != nil,
		st.Execute != nil,
		st.Promote != "",
		st.Demote != "",
		st.Show != "",
		st.Shred != "",
		st.List != "",
	} {
		if set {
			n++
		}
	}

	return n
}

func (st Step) validate() error {
	switch {
	case st.Hire != nil && st.Hire.Name == "":
		return errors.New("hire needs a name")
	case st.Draft != nil && st.Draft.Kind == "":
		return errors.New("draft needs a kind")
	case st.Form != nil && st.Form.Name == "":
		return errors.New("form needs a name")
	case st.Sign != nil && (st.Sign.By == "" || st.Sign.Form == ""):
		return errors.New("sign needs by and form")
	case st.Execute != nil && (st.Execute.By == "" || st.Execute.Form == ""):
		return errors.New("execute needs by and form")
	case st.List != "" && st.List != "forms" && st.List != "staff":
		return fmt.Errorf("list must be forms or staff, got %q", st.List)
	default:
		return nil
	}
}
