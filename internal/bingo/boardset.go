// Package bingo finds the first and last winning boards of a bingo game
// replayed in a fixed draw order.
//
// A BoardSet is immutable once built. Every query replays the draws on its
// own marking state, so queries can run in any order, repeatedly, or from
// several goroutines and still agree.
package bingo

import (
	"fmt"

	"svw.info/advent/internal/domain"
	"svw.info/advent/internal/validator"
)

// Winner records a board at the moment it completed a row or column.
type Winner struct {
	Board int `json:"board"`
	Turn  int `json:"turn"` // position in the draw sequence
	Draw  int `json:"draw"`
	Score int `json:"score"`
}

// BoardSet owns a draw sequence and the boards it is played against.
type BoardSet struct {
	n      int
	draws  []int
	boards []board
}

// NewBoardSet validates every board and builds its value index. Boards must
// be square, share one size and hold distinct values.
func NewBoardSet(draws []int, boards []domain.Grid) (*BoardSet, error) {
	s := &BoardSet{
		draws:  append([]int(nil), draws...),
		boards: make([]board, 0, len(boards)),
	}
	for i, g := range boards {
		if err := validator.Square(g); err != nil {
			return nil, &InvalidBoardError{Board: i, Reason: err.Error(), Err: err}
		}
		if i == 0 {
			s.n = len(g)
		} else if len(g) != s.n {
			return nil, &InvalidBoardError{Board: i, Reason: fmt.Sprintf("size %d differs from %d", len(g), s.n)}
		}
		if dup := validator.Duplicates(g); len(dup) > 0 {
			c := dup[0]
			return nil, &InvalidBoardError{
				Board:  i,
				Reason: fmt.Sprintf("value %d repeated at row %d col %d", g[c.Row][c.Col], c.Row, c.Col),
				Cells:  dup,
			}
		}
		s.boards = append(s.boards, newBoard(g))
	}
	return s, nil
}

// Size is the side length shared by all boards, 0 for an empty set.
func (s *BoardSet) Size() int { return s.n }

// Len is the number of boards.
func (s *BoardSet) Len() int { return len(s.boards) }

// Draws returns a copy of the draw sequence.
func (s *BoardSet) Draws() []int { return append([]int(nil), s.draws...) }

// Board returns a copy of board i's grid.
func (s *BoardSet) Board(i int) domain.Grid { return s.boards[i].grid() }

// Position reports where value sits on board i.
func (s *BoardSet) Position(i, value int) (row, col int, ok bool) {
	b := &s.boards[i]
	cell, ok := b.ix.lookup(value)
	if !ok {
		return 0, 0, false
	}
	return cell / b.n, cell % b.n, true
}

// FirstWinningScore returns the score of the first board to complete a row
// or column. Boards completing on the same draw go to the lowest index.
func (s *BoardSet) FirstWinningScore() (int, error) {
	g := s.newGame()
	for turn, v := range s.draws {
		if won := g.step(turn, v); len(won) > 0 {
			return won[0].Score, nil
		}
	}
	return 0, g.exhausted()
}

// LastWinningScore returns the score of the last board to win. Boards
// completing on the same draw win in index order, so the highest index among
// the final co-winners is last.
func (s *BoardSet) LastWinningScore() (int, error) {
	g := s.newGame()
	if !g.play() {
		return 0, g.exhausted()
	}
	return g.winners[len(g.winners)-1].Score, nil
}

// Winners replays the draws until every board has won or the draws run out
// and returns the boards in the order they won.
func (s *BoardSet) Winners() []Winner {
	g := s.newGame()
	g.play()
	return g.winners
}

// game is the mutable replay state of one query.
type game struct {
	set      *BoardSet
	marked   [][]bool
	rows     [][]int // marked cells per row
	cols     [][]int // marked cells per column
	unmarked []int   // sum of unmarked values
	won      []bool
	winners  []Winner
	drawn    int
}

func (s *BoardSet) newGame() *game {
	g := &game{
		set:      s,
		marked:   make([][]bool, len(s.boards)),
		rows:     make([][]int, len(s.boards)),
		cols:     make([][]int, len(s.boards)),
		unmarked: make([]int, len(s.boards)),
		won:      make([]bool, len(s.boards)),
	}
	for i := range s.boards {
		b := &s.boards[i]
		g.marked[i] = make([]bool, b.n*b.n)
		g.rows[i] = make([]int, b.n)
		g.cols[i] = make([]int, b.n)
		g.unmarked[i] = b.total
	}
	return g
}

// play steps through the draws until every board has won. It reports false
// when the draws run out first, or when there are no boards at all.
func (g *game) play() bool {
	total := len(g.set.boards)
	if total == 0 {
		return false
	}
	for turn, v := range g.set.draws {
		g.step(turn, v)
		if len(g.winners) == total {
			return true
		}
	}
	return false
}

// step marks v on every board holding it and returns the boards that
// completed a line on this draw, in board order.
func (g *game) step(turn, v int) []Winner {
	g.drawn = turn + 1
	first := len(g.winners)
	for i := range g.set.boards {
		b := &g.set.boards[i]
		cell, ok := b.ix.lookup(v)
		if !ok || g.marked[i][cell] {
			continue
		}
		g.marked[i][cell] = true
		g.unmarked[i] -= v
		r, c := cell/b.n, cell%b.n
		g.rows[i][r]++
		g.cols[i][c]++
		if g.won[i] {
			continue
		}
		// only the row and column of this cell changed
		if g.rows[i][r] == b.n || g.cols[i][c] == b.n {
			g.won[i] = true
			g.winners = append(g.winners, Winner{Board: i, Turn: turn, Draw: v, Score: g.unmarked[i] * v})
		}
	}
	return g.winners[first:]
}

func (g *game) exhausted() error {
	return &NoWinnerError{Draws: g.drawn, Boards: len(g.set.boards), Winners: len(g.winners)}
}
