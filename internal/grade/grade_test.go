package grade_test

import (
	"errors"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/serroba/bureau/internal/grade"
	"github.com/stretchr/testify/require"
)

func TestNew_Bounds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		value    int
		expected error
	}{
		{"zero", 0, grade.ErrTooHigh},
		{"negative", -5, grade.ErrTooHigh},
		{"highest", 1, nil},
		{"middle", 75, nil},
		{"lowest", 150, nil},
		{"just below lowest", 151, grade.ErrTooLow},
		{"far below", 200, grade.ErrTooLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			g, err := grade.New(tt.value)
			if tt.expected == nil {
				require.NoError(t, err)

				if int(g) != tt.value {
					t.Errorf("expected grade %d, got %d", tt.value, g)
				}

				return
			}

			if !errors.Is(err, tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, err)
			}
		})
	}
}

func TestGrade_Meets(t *testing.T) {
	t.Parallel()

	tests := []struct {
		g        grade.Grade
		required grade.Grade
		expected bool
	}{
		{1, 150, true},
		{30, 30, true},
		{31, 30, false},
		{150, 1, false},
	}

	for _, tt := range tests {
		if tt.g.Meets(tt.required) != tt.expected {
			t.Errorf("%d meets %d: expected %v", tt.g, tt.required, tt.expected)
		}
	}
}

func TestGrade_String(t *testing.T) {
	t.Parallel()

	if grade.Grade(42).String() != "42" {
		t.Errorf("expected \"42\", got %q", grade.Grade(42).String())
	}
}

func TestNew_Properties(t *testing.T) {
	t.Parallel()

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("in-range values are accepted", prop.ForAll(
		func(n int) bool {
			g, err := grade.New(n)

			return err == nil && int(g) == n
		},
		gen.IntRange(1, 150),
	))

	properties.Property("values above the top are too high", prop.ForAll(
		func(n int) bool {
			_, err := grade.New(n)

			return errors.Is(err, grade.ErrTooHigh)
		},
		gen.IntRange(-10000, 0),
	))

	properties.Property("values past the bottom are too low", prop.ForAll(
		func(n int) bool {
			_, err := grade.New(n)

			return errors.Is(err, grade.ErrTooLow)
		},
		gen.IntRange(151, 10000),
	))

	properties.TestingRun(t)
}
