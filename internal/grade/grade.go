package grade

import (
	"errors"
	"fmt"
	"strconv"
)

// Grade is a bureaucratic rank. Smaller grades carry more authority.
type Grade int

const (
	// Highest is the most senior grade that can exist.
	Highest Grade = 1
	// Lowest is the most junior grade that can exist.
	Lowest Grade = 150
)

// Common errors.
var (
	ErrTooHigh = errors.New("grade is too high")
	ErrTooLow  = errors.New("grade is too low")
)

// New validates n and returns it as a Grade.
func New(n int) (Grade, error) {
	g := Grade(n)

	if err := g.Validate(); err != nil {
		return 0, err
	}

	return g, nil
}

// Validate reports whether g lies within [Highest, Lowest].
func (g Grade) Validate() error {
	switch {
	case g < Highest:
		return fmt.Errorf("%w: %d is above %d", ErrTooHigh, int(g), int(Highest))
	case g > Lowest:
		return fmt.Errorf("%w: %d is below %d", ErrTooLow, int(g), int(Lowest))
	default:
		return nil
	}
}

// Meets returns true if g carries at least the authority of required.
func (g Grade) Meets(required Grade) bool {
	return g <= required
}

// String returns the decimal form of the grade.
func (g Grade) String() string {
	return strconv.Itoa(int(g))
}
