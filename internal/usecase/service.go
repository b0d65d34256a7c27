package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"svw.info/advent/internal/bingo"
	"svw.info/advent/internal/domain"
	"svw.info/advent/internal/metrics"
	"svw.info/advent/internal/ports"
)

// ErrUnknownDay is returned when a requested day has no solver.
var ErrUnknownDay = errors.New("usecase: unknown day")

var errNotConfigured = errors.New("usecase dependency not configured")

type Service struct {
	Solvers   []ports.Solver
	Inputs    ports.Inputs
	Generator ports.Generator
	Validator ports.Validator
	Storage   ports.Storage

	Logger  *slog.Logger
	Metrics *metrics.Metrics
	Tracer  trace.Tracer
}

func NewService(solvers []ports.Solver, in ports.Inputs, g ports.Generator, v ports.Validator, st ports.Storage) *Service {
	return &Service{
		Solvers:   solvers,
		Inputs:    in,
		Generator: g,
		Validator: v,
		Storage:   st,
		Logger:    slog.Default(),
		Metrics:   metrics.NewNoop(),
		Tracer:    otel.Tracer("svw.info/advent/usecase"),
	}
}

func (u *Service) solver(day int) (ports.Solver, error) {
	for _, s := range u.Solvers {
		if s.Day() == day {
			return s, nil
		}
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownDay, day)
}

// Run solves the requested days, or every registered day, in registry order
// using the configured inputs. A failing puzzle is recorded in its result and
// does not stop the run.
func (u *Service) Run(ctx context.Context, days ...int) (*domain.Report, error) {
	if u.Inputs == nil {
		return nil, errNotConfigured
	}
	selected := u.Solvers
	if len(days) > 0 {
		selected = make([]ports.Solver, 0, len(days))
		for _, d := range days {
			s, err := u.solver(d)
			if err != nil {
				return nil, err
			}
			selected = append(selected, s)
		}
	}

	u.Metrics.RunStarted()
	report := &domain.Report{ID: uuid.NewString(), CreatedAt: time.Now().UnixNano()}
	for _, s := range selected {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		res := domain.Result{Day: s.Day(), Name: s.Name()}
		in, err := u.Inputs.Load(ctx, s.Day())
		if err != nil {
			res.Error = err.Error()
			u.Logger.Warn("input unavailable", "day", s.Day(), "puzzle", s.Name(), "err", err)
			report.Results = append(report.Results, res)
			continue
		}
		ans, st, err := u.solve(ctx, s, in)
		res.Elapsed = st.Duration
		if err != nil {
			res.Error = err.Error()
		} else {
			res.Parts = ans.Parts
		}
		report.Results = append(report.Results, res)
	}
	return report, nil
}

// Solve runs one day's solver over raw input.
func (u *Service) Solve(ctx context.Context, day int, input []byte) (domain.Answer, ports.Stats, error) {
	s, err := u.solver(day)
	if err != nil {
		return domain.Answer{}, ports.Stats{}, err
	}
	return u.solve(ctx, s, input)
}

func (u *Service) solve(ctx context.Context, s ports.Solver, input []byte) (domain.Answer, ports.Stats, error) {
	ctx, span := u.Tracer.Start(ctx, "solve", trace.WithAttributes(
		attribute.Int("puzzle.day", s.Day()),
		attribute.String("puzzle.name", s.Name()),
	))
	defer span.End()

	start := time.Now()
	ans, err := s.Solve(ctx, input)
	dur := time.Since(start)
	u.Metrics.ObserveSolve(s.Name(), dur, err)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		u.Logger.Warn("solve failed", "day", s.Day(), "puzzle", s.Name(), "dur", dur, "err", err)
		return domain.Answer{}, ports.Stats{Duration: dur}, err
	}
	u.Logger.Debug("solved", "day", s.Day(), "puzzle", s.Name(), "dur", dur)
	return ans, ports.Stats{Duration: dur}, nil
}

type winnerLister interface {
	Winners(ctx context.Context, input []byte) ([]bingo.Winner, error)
}

// Winners lists the bingo boards in winning order for raw day 4 input.
func (u *Service) Winners(ctx context.Context, input []byte) ([]bingo.Winner, error) {
	s, err := u.solver(4)
	if err != nil {
		return nil, err
	}
	wl, ok := s.(winnerLister)
	if !ok {
		return nil, errNotConfigured
	}
	return wl.Winners(ctx, input)
}

func (u *Service) Generate(ctx context.Context, seed int64, spec domain.GenerateSpec) (*domain.BingoInput, ports.Stats, error) {
	if u.Generator == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	return u.Generator.Generate(ctx, seed, spec)
}

func (u *Service) Validate(ctx context.Context, g domain.Grid) (bool, []domain.CellCoord, error) {
	if u.Validator == nil {
		return false, nil, errNotConfigured
	}
	return u.Validator.Validate(ctx, g)
}

// Persistence
func (u *Service) Save(ctx context.Context, r *domain.Report) error {
	if u.Storage == nil {
		return errNotConfigured
	}
	return u.Storage.Save(ctx, r)
}
func (u *Service) Load(ctx context.Context, id string) (*domain.Report, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.Load(ctx, id)
}
func (u *Service) List(ctx context.Context) ([]domain.ReportMeta, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.List(ctx)
}
