package solver

import (
	"errors"
	"fmt"

	"svw.info/advent/internal/ports"
)

var (
	// ErrUnknownDay is returned by ByDay for a day with no registered solver.
	ErrUnknownDay = errors.New("solver: unknown day")
	// ErrBadInput wraps every parse failure.
	ErrBadInput = errors.New("solver: bad input")
)

// All returns the registered solvers in day order.
func All() []ports.Solver {
	return []ports.Solver{
		NewSonar(3),
		NewDive(),
		NewDiagnostic(),
		NewBingo(),
		NewVents(),
	}
}

// ByDay finds the solver registered for day.
func ByDay(day int) (ports.Solver, error) {
	for _, s := range All() {
		if s.Day() == day {
			return s, nil
		}
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownDay, day)
}

func badInput(err error) error {
	return fmt.Errorf("%w: %w", ErrBadInput, err)
}
