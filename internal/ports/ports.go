package ports

import (
	"context"
	"time"

	"svw.info/advent/internal/domain"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Duration time.Duration
}

// Solver computes the answers of one day from its raw text input.
type Solver interface {
	Day() int
	Name() string
	Solve(ctx context.Context, input []byte) (domain.Answer, error)
}

// Inputs loads raw puzzle text by day.
type Inputs interface {
	Load(ctx context.Context, day int) ([]byte, error)
}

// Generator creates random bingo puzzles.
type Generator interface {
	Generate(ctx context.Context, seed int64, spec domain.GenerateSpec) (*domain.BingoInput, Stats, error)
}

// Validator performs fast constraint checks on a single grid (shape and unique values).
type Validator interface {
	Validate(ctx context.Context, g domain.Grid) (ok bool, conflicts []domain.CellCoord, err error)
}

// Storage persists and retrieves harness reports as JSON.
type Storage interface {
	Save(ctx context.Context, r *domain.Report) error
	Load(ctx context.Context, id string) (*domain.Report, error)
	List(ctx context.Context) ([]domain.ReportMeta, error)
}
