// Package diagnostic decodes the submarine's binary diagnostic report.
package diagnostic

import (
	"errors"
	"fmt"
)

var ErrEmpty = errors.New("diagnostic: empty report")

// Report holds the rates decoded from equal-width rows of bits.
type Report struct {
	width   int
	gamma   int
	epsilon int
	oxygen  int
	co2     int
}

// New decodes rows of 0/1 values, most significant bit first.
func New(rows [][]uint8) (*Report, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmpty
	}
	width := len(rows[0])
	for i, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("diagnostic: row %d has %d bits, want %d", i, len(row), width)
		}
		for j, b := range row {
			if b > 1 {
				return nil, fmt.Errorf("diagnostic: row %d bit %d is %d", i, j, b)
			}
		}
	}

	// a gamma bit needs a strict majority of ones; an even split sets the
	// epsilon bit instead
	r := &Report{width: width}
	for col := 0; col < width; col++ {
		r.gamma <<= 1
		if 2*ones(rows, col) > len(rows) {
			r.gamma |= 1
		}
	}
	r.epsilon = r.gamma ^ (1<<width - 1)
	r.oxygen = value(filter(rows, func(most uint8) uint8 { return most }))
	r.co2 = value(filter(rows, func(most uint8) uint8 { return 1 - most }))
	return r, nil
}

func (r *Report) Gamma() int   { return r.gamma }
func (r *Report) Epsilon() int { return r.epsilon }
func (r *Report) Oxygen() int  { return r.oxygen }
func (r *Report) CO2() int     { return r.co2 }

// PowerConsumption is gamma × epsilon.
func (r *Report) PowerConsumption() int { return r.gamma * r.epsilon }

// LifeSupport is oxygen × CO2.
func (r *Report) LifeSupport() int { return r.oxygen * r.co2 }

func ones(rows [][]uint8, col int) int {
	n := 0
	for _, row := range rows {
		n += int(row[col])
	}
	return n
}

// mostCommon returns the most common bit in col; ties go to 1.
func mostCommon(rows [][]uint8, col int) uint8 {
	if 2*ones(rows, col) >= len(rows) {
		return 1
	}
	return 0
}

// filter narrows rows column by column, keeping those whose bit equals
// keep(most common bit), until one row is left. A column that would drop
// every row is skipped.
func filter(rows [][]uint8, keep func(most uint8) uint8) []uint8 {
	cur := rows
	for col := 0; len(cur) > 1 && col < len(rows[0]); col++ {
		want := keep(mostCommon(cur, col))
		next := make([][]uint8, 0, len(cur))
		for _, row := range cur {
			if row[col] == want {
				next = append(next, row)
			}
		}
		if len(next) > 0 {
			cur = next
		}
	}
	return cur[0]
}

func value(bits []uint8) int {
	v := 0
	for _, b := range bits {
		v = v<<1 | int(b)
	}
	return v
}
