package bingo

import (
	"errors"
	"fmt"

	"svw.info/advent/internal/domain"
)

var (
	// ErrInvalidBoard matches every *InvalidBoardError.
	ErrInvalidBoard = errors.New("bingo: invalid board")
	// ErrNoWinner matches every *NoWinnerError.
	ErrNoWinner = errors.New("bingo: no winner")
)

// InvalidBoardError reports a board rejected at construction.
type InvalidBoardError struct {
	Board  int
	Reason string
	// Cells lists the offending cells when the reason is a repeated value.
	Cells []domain.CellCoord
	Err   error
}

func (e *InvalidBoardError) Error() string {
	return fmt.Sprintf("bingo: invalid board %d: %s", e.Board, e.Reason)
}

func (e *InvalidBoardError) Unwrap() error { return e.Err }

func (e *InvalidBoardError) Is(target error) bool { return target == ErrInvalidBoard }

// NoWinnerError reports a draw sequence that ran out before the query was satisfied.
type NoWinnerError struct {
	Draws   int
	Boards  int
	Winners int
}

func (e *NoWinnerError) Error() string {
	return fmt.Sprintf("bingo: draws exhausted after %d numbers with %d of %d boards won", e.Draws, e.Winners, e.Boards)
}

func (e *NoWinnerError) Is(target error) bool { return target == ErrNoWinner }
