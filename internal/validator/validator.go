package validator

import (
	"context"
	"errors"
	"fmt"

	"svw.info/advent/internal/domain"
)

// ErrNotSquare is returned when a grid has no rows or a row length differs from the row count.
var ErrNotSquare = errors.New("grid is not square")

type FastValidator struct{}

func New() *FastValidator { return &FastValidator{} }

// Validate reports every cell whose value already appeared earlier in row-major order.
func (v *FastValidator) Validate(ctx context.Context, g domain.Grid) (bool, []domain.CellCoord, error) {
	if err := Square(g); err != nil {
		return false, nil, err
	}
	conf := Duplicates(g)
	return len(conf) == 0, conf, nil
}

// Square checks that g is a non-empty n×n grid.
func Square(g domain.Grid) error {
	n := len(g)
	if n == 0 {
		return fmt.Errorf("%w: no rows", ErrNotSquare)
	}
	for r, row := range g {
		if len(row) != n {
			return fmt.Errorf("%w: row %d has %d cells, want %d", ErrNotSquare, r, len(row), n)
		}
	}
	return nil
}

// Duplicates returns the cells holding a value seen earlier in the grid.
func Duplicates(g domain.Grid) []domain.CellCoord {
	var conf []domain.CellCoord
	seen := make(map[int]struct{}, len(g)*len(g))
	for r, row := range g {
		for c, val := range row {
			if _, ok := seen[val]; ok {
				conf = append(conf, domain.CellCoord{Row: r, Col: c})
				continue
			}
			seen[val] = struct{}{}
		}
	}
	return conf
}
