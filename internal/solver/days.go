package solver

import (
	"context"
	"fmt"

	"svw.info/advent/internal/diagnostic"
	"svw.info/advent/internal/dive"
	"svw.info/advent/internal/domain"
	"svw.info/advent/internal/input"
	"svw.info/advent/internal/sonar"
	"svw.info/advent/internal/vents"
)

// Sonar solves day 1.
type Sonar struct {
	Window int
}

func NewSonar(window int) *Sonar { return &Sonar{Window: window} }

func (s *Sonar) Day() int     { return 1 }
func (s *Sonar) Name() string { return "sonar_deep" }

func (s *Sonar) Solve(ctx context.Context, in []byte) (domain.Answer, error) {
	if err := ctx.Err(); err != nil {
		return domain.Answer{}, err
	}
	depths, err := input.Ints(in)
	if err != nil {
		return domain.Answer{}, badInput(err)
	}
	sw := sonar.New(depths)
	return domain.Answer{Day: s.Day(), Name: s.Name(), Parts: []domain.Part{
		{Label: "Sonar Deep increases", Value: sw.Increases()},
		{Label: fmt.Sprintf("Sonar Deep increases on %d window", s.Window), Value: sw.WindowIncreases(s.Window)},
	}}, nil
}

// Dive solves day 2.
type Dive struct{}

func NewDive() *Dive { return &Dive{} }

func (d *Dive) Day() int     { return 2 }
func (d *Dive) Name() string { return "dive" }

func (d *Dive) Solve(ctx context.Context, in []byte) (domain.Answer, error) {
	if err := ctx.Err(); err != nil {
		return domain.Answer{}, err
	}
	cmds, err := input.Commands(in)
	if err != nil {
		return domain.Answer{}, badInput(err)
	}
	c := dive.New(cmds)
	return domain.Answer{Day: d.Day(), Name: d.Name(), Parts: []domain.Part{
		{Label: "Part 1 :: forward × depth", Value: c.Forward() * c.NaiveDepth()},
		{Label: "Part 2 :: forward × aimed depth", Value: c.Forward() * c.AimedDepth()},
	}}, nil
}

// Diagnostic solves day 3.
type Diagnostic struct{}

func NewDiagnostic() *Diagnostic { return &Diagnostic{} }

func (d *Diagnostic) Day() int     { return 3 }
func (d *Diagnostic) Name() string { return "binary_diagnostic" }

func (d *Diagnostic) Solve(ctx context.Context, in []byte) (domain.Answer, error) {
	if err := ctx.Err(); err != nil {
		return domain.Answer{}, err
	}
	rows, err := input.Bits(in)
	if err != nil {
		return domain.Answer{}, badInput(err)
	}
	r, err := diagnostic.New(rows)
	if err != nil {
		return domain.Answer{}, badInput(err)
	}
	return domain.Answer{Day: d.Day(), Name: d.Name(), Parts: []domain.Part{
		{Label: "Binary Diagnostic Part 1 :: power consumption", Value: r.PowerConsumption()},
		{Label: "Binary Diagnostic Part 2 :: life support", Value: r.LifeSupport()},
	}}, nil
}

// Vents solves day 5.
type Vents struct{}

func NewVents() *Vents { return &Vents{} }

func (v *Vents) Day() int     { return 5 }
func (v *Vents) Name() string { return "hydrothermal_venture" }

func (v *Vents) Solve(ctx context.Context, in []byte) (domain.Answer, error) {
	if err := ctx.Err(); err != nil {
		return domain.Answer{}, err
	}
	segs, err := input.Segments(in)
	if err != nil {
		return domain.Answer{}, badInput(err)
	}
	f := vents.New(segs)
	return domain.Answer{Day: v.Day(), Name: v.Name(), Parts: []domain.Part{
		{Label: "Vents Part 1 :: overlaps", Value: f.Overlaps()},
		{Label: "Vents Part 2 :: overlaps diagonal", Value: f.OverlapsDiagonal()},
	}}, nil
}
