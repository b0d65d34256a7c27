package solver

import (
	"context"

	"svw.info/advent/internal/bingo"
	"svw.info/advent/internal/domain"
	"svw.info/advent/internal/input"
)

// Bingo solves day 4: score of the first and of the last winning board.
type Bingo struct{}

func NewBingo() *Bingo { return &Bingo{} }

func (b *Bingo) Day() int     { return 4 }
func (b *Bingo) Name() string { return "giant_squid" }

func (b *Bingo) Solve(ctx context.Context, in []byte) (domain.Answer, error) {
	set, err := b.load(ctx, in)
	if err != nil {
		return domain.Answer{}, err
	}
	first, err := set.FirstWinningScore()
	if err != nil {
		return domain.Answer{}, err
	}
	last, err := set.LastWinningScore()
	if err != nil {
		return domain.Answer{}, err
	}
	return domain.Answer{Day: b.Day(), Name: b.Name(), Parts: []domain.Part{
		{Label: "Bingo Part 1 :: winner code", Value: first},
		{Label: "Bingo Part 2 :: winner code", Value: last},
	}}, nil
}

// Winners returns every board in the order it won.
func (b *Bingo) Winners(ctx context.Context, in []byte) ([]bingo.Winner, error) {
	set, err := b.load(ctx, in)
	if err != nil {
		return nil, err
	}
	return set.Winners(), nil
}

func (b *Bingo) load(ctx context.Context, in []byte) (*bingo.BoardSet, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	parsed, err := input.Bingo(in)
	if err != nil {
		return nil, badInput(err)
	}
	return bingo.NewBoardSet(parsed.Draws, parsed.Boards)
}
