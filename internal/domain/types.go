package domain

import "time"

// Grid is a square board of integers, indexed [row][col].
type Grid [][]int

// CellCoord identifies a cell on a grid.
type CellCoord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Part is one labelled numeric answer of a puzzle.
type Part struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

// Answer holds every part computed for one day.
type Answer struct {
	Day   int    `json:"day"`
	Name  string `json:"name"`
	Parts []Part `json:"parts"`
}

// Result is an answer plus how long it took, as recorded by the harness.
type Result struct {
	Day     int           `json:"day"`
	Name    string        `json:"name"`
	Parts   []Part        `json:"parts,omitempty"`
	Elapsed time.Duration `json:"elapsed"`
	Error   string        `json:"error,omitempty"`
}

// Report is a persisted harness run.
type Report struct {
	ID        string   `json:"id"`
	CreatedAt int64    `json:"createdAt"`
	Results   []Result `json:"results"`
}

// ReportMeta is a lightweight listing entry.
type ReportMeta struct {
	ID        string `json:"id"`
	CreatedAt int64  `json:"createdAt"`
	Puzzles   int    `json:"puzzles"`
	Failed    int    `json:"failed"`
}

// BingoInput is the parsed form of a bingo puzzle.
type BingoInput struct {
	Draws  []int  `json:"draws"`
	Boards []Grid `json:"boards"`
}

// GenerateSpec describes a random bingo puzzle.
type GenerateSpec struct {
	Boards   int `json:"boards"`
	Size     int `json:"size"`
	MaxValue int `json:"maxValue"`
}
