// Package input parses raw puzzle text into the structures the puzzle
// packages consume. Parsers never panic; errors carry the 1-based line number.
package input

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"

	"svw.info/advent/internal/dive"
	"svw.info/advent/internal/domain"
	"svw.info/advent/internal/vents"
)

var ErrEmpty = errors.New("input: empty")

// number parses s as a signed integer of type T.
func number[T constraints.Signed](s string) (T, error) {
	var zero T
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return zero, err
	}
	if int64(T(v)) != v {
		return zero, fmt.Errorf("%d out of range", v)
	}
	return T(v), nil
}

func numbers[T constraints.Signed](fields []string) ([]T, error) {
	out := make([]T, 0, len(fields))
	for _, f := range fields {
		v, err := number[T](f)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

type line struct {
	no   int
	text string
}

// lines splits text into trimmed non-blank lines.
func lines(text []byte) []line {
	var out []line
	for i, l := range strings.Split(strings.ReplaceAll(string(text), "\r\n", "\n"), "\n") {
		if l = strings.TrimSpace(l); l != "" {
			out = append(out, line{no: i + 1, text: l})
		}
	}
	return out
}

// Ints parses one integer per line.
func Ints(text []byte) ([]int, error) {
	ls := lines(text)
	if len(ls) == 0 {
		return nil, ErrEmpty
	}
	out := make([]int, 0, len(ls))
	for _, l := range ls {
		v, err := number[int](l.text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", l.no, err)
		}
		out = append(out, v)
	}
	return out, nil
}

// Commands parses "direction value" lines.
func Commands(text []byte) ([]dive.Command, error) {
	ls := lines(text)
	if len(ls) == 0 {
		return nil, ErrEmpty
	}
	out := make([]dive.Command, 0, len(ls))
	for _, l := range ls {
		f := strings.Fields(l.text)
		if len(f) != 2 {
			return nil, fmt.Errorf("line %d: want \"direction value\", got %q", l.no, l.text)
		}
		d, err := dive.ParseDirection(f[0])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", l.no, err)
		}
		v, err := number[int](f[1])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", l.no, err)
		}
		out = append(out, dive.Command{Dir: d, Value: v})
	}
	return out, nil
}

// Bits parses lines of 0 and 1 characters.
func Bits(text []byte) ([][]uint8, error) {
	ls := lines(text)
	if len(ls) == 0 {
		return nil, ErrEmpty
	}
	out := make([][]uint8, 0, len(ls))
	for _, l := range ls {
		row := make([]uint8, 0, len(l.text))
		for i, c := range l.text {
			if c != '0' && c != '1' {
				return nil, fmt.Errorf("line %d: column %d: %q is not a bit", l.no, i+1, c)
			}
			row = append(row, uint8(c-'0'))
		}
		out = append(out, row)
	}
	return out, nil
}

// Segments parses "x1,y1 -> x2,y2" lines.
func Segments(text []byte) ([]vents.Segment, error) {
	ls := lines(text)
	if len(ls) == 0 {
		return nil, ErrEmpty
	}
	out := make([]vents.Segment, 0, len(ls))
	for _, l := range ls {
		a, b, ok := strings.Cut(l.text, "->")
		if !ok {
			return nil, fmt.Errorf("line %d: missing \"->\" in %q", l.no, l.text)
		}
		pa, err := point(a)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", l.no, err)
		}
		pb, err := point(b)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", l.no, err)
		}
		out = append(out, vents.Segment{A: pa, B: pb})
	}
	return out, nil
}

// point reads one vent coordinate. Coordinates are held to int16 so a
// segment covers at most 65536 points.
func point(s string) (vents.Point, error) {
	xy, err := numbers[int16](strings.Split(s, ","))
	if err != nil {
		return vents.Point{}, err
	}
	if len(xy) != 2 {
		return vents.Point{}, fmt.Errorf("point %q: want x,y", strings.TrimSpace(s))
	}
	return vents.Point{X: int(xy[0]), Y: int(xy[1])}, nil
}

// Bingo parses a comma separated draw line followed by blank-line separated
// whitespace grids. Grid shape is left to the bingo package to judge.
func Bingo(text []byte) (*domain.BingoInput, error) {
	all := strings.Split(strings.ReplaceAll(string(text), "\r\n", "\n"), "\n")
	i := 0
	for i < len(all) && strings.TrimSpace(all[i]) == "" {
		i++
	}
	if i == len(all) {
		return nil, ErrEmpty
	}
	draws, err := numbers[int](strings.Split(all[i], ","))
	if err != nil {
		return nil, fmt.Errorf("line %d: draws: %w", i+1, err)
	}

	in := &domain.BingoInput{Draws: draws}
	var cur domain.Grid
	for i++; i < len(all); i++ {
		l := strings.TrimSpace(all[i])
		if l == "" {
			if cur != nil {
				in.Boards = append(in.Boards, cur)
				cur = nil
			}
			continue
		}
		row, err := numbers[int](strings.Fields(l))
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		cur = append(cur, row)
	}
	if cur != nil {
		in.Boards = append(in.Boards, cur)
	}
	return in, nil
}
