package generator

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"svw.info/advent/internal/domain"
	"svw.info/advent/internal/ports"
)

const (
	defaultBoards   = 3
	defaultSize     = 5
	defaultMaxValue = 100

	MaxBoards   = 1000
	MaxSize     = 100
	MaxMaxValue = 1 << 20
)

// ErrSpec is returned for a spec that cannot produce valid boards.
var ErrSpec = errors.New("generator: invalid spec")

// RandomGenerator creates bingo puzzles whose boards hold distinct values and
// whose draw order is a shuffle of every value, so every board eventually wins.
type RandomGenerator struct{}

func New() *RandomGenerator { return &RandomGenerator{} }

// Normalize fills zero fields with defaults and rejects impossible specs.
func Normalize(spec domain.GenerateSpec) (domain.GenerateSpec, error) {
	if spec.Boards == 0 {
		spec.Boards = defaultBoards
	}
	if spec.Size == 0 {
		spec.Size = defaultSize
	}
	if spec.MaxValue == 0 {
		spec.MaxValue = max(defaultMaxValue, spec.Size*spec.Size)
	}
	switch {
	case spec.Boards < 0 || spec.Size < 0:
		return spec, fmt.Errorf("%w: negative boards or size", ErrSpec)
	case spec.Boards > MaxBoards:
		return spec, fmt.Errorf("%w: %d boards exceeds %d", ErrSpec, spec.Boards, MaxBoards)
	case spec.Size > MaxSize:
		return spec, fmt.Errorf("%w: size %d exceeds %d", ErrSpec, spec.Size, MaxSize)
	case spec.MaxValue > MaxMaxValue:
		return spec, fmt.Errorf("%w: max value %d exceeds %d", ErrSpec, spec.MaxValue, MaxMaxValue)
	case spec.MaxValue < spec.Size*spec.Size:
		return spec, fmt.Errorf("%w: %d values cannot fill a %dx%d board", ErrSpec, spec.MaxValue, spec.Size, spec.Size)
	}
	return spec, nil
}

// Generate is deterministic per seed.
func (g *RandomGenerator) Generate(ctx context.Context, seed int64, spec domain.GenerateSpec) (*domain.BingoInput, ports.Stats, error) {
	start := time.Now()
	spec, err := Normalize(spec)
	if err != nil {
		return nil, ports.Stats{}, err
	}
	rng := rand.New(rand.NewSource(seed))

	pool := make([]int, spec.MaxValue)
	for i := range pool {
		pool[i] = i
	}
	out := &domain.BingoInput{Boards: make([]domain.Grid, 0, spec.Boards)}
	for b := 0; b < spec.Boards; b++ {
		if err := ctx.Err(); err != nil {
			return nil, ports.Stats{Duration: time.Since(start)}, err
		}
		// partial Fisher-Yates: the first size² entries become the board
		n := spec.Size * spec.Size
		for i := 0; i < n; i++ {
			j := i + rng.Intn(len(pool)-i)
			pool[i], pool[j] = pool[j], pool[i]
		}
		grid := make(domain.Grid, spec.Size)
		for r := range grid {
			grid[r] = append([]int(nil), pool[r*spec.Size:(r+1)*spec.Size]...)
		}
		out.Boards = append(out.Boards, grid)
	}

	out.Draws = make([]int, spec.MaxValue)
	for i := range out.Draws {
		out.Draws[i] = i
	}
	rng.Shuffle(len(out.Draws), func(i, j int) { out.Draws[i], out.Draws[j] = out.Draws[j], out.Draws[i] })
	return out, ports.Stats{Duration: time.Since(start)}, nil
}

// Format renders in as puzzle text: the draw line, then each board after a
// blank line with right-aligned columns.
func Format(in *domain.BingoInput) []byte {
	var buf bytes.Buffer
	draws := make([]string, len(in.Draws))
	for i, d := range in.Draws {
		draws[i] = strconv.Itoa(d)
	}
	buf.WriteString(strings.Join(draws, ","))
	buf.WriteByte('\n')

	width := 1
	for _, g := range in.Boards {
		for _, row := range g {
			for _, v := range row {
				width = max(width, len(strconv.Itoa(v)))
			}
		}
	}
	for _, g := range in.Boards {
		buf.WriteByte('\n')
		for _, row := range g {
			for c, v := range row {
				if c > 0 {
					buf.WriteByte(' ')
				}
				fmt.Fprintf(&buf, "%*d", width, v)
			}
			buf.WriteByte('\n')
		}
	}
	return buf.Bytes()
}
