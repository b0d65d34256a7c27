package bingo

import "svw.info/advent/internal/domain"

// maxDenseSpan bounds the value range served by the slice-backed index.
const maxDenseSpan = 1 << 16

// index maps a cell value to its cell number (row*n + col).
type index struct {
	min    int
	dense  []int32 // value-min -> cell+1, 0 when absent
	sparse map[int]int
}

func newIndex(values []int) index {
	lo, hi := values[0], values[0]
	for _, v := range values {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	if span := hi - lo + 1; span > 0 && span <= maxDenseSpan {
		ix := index{min: lo, dense: make([]int32, span)}
		for cell, v := range values {
			ix.dense[v-lo] = int32(cell + 1)
		}
		return ix
	}
	ix := index{sparse: make(map[int]int, len(values))}
	for cell, v := range values {
		ix.sparse[v] = cell
	}
	return ix
}

func (ix *index) lookup(v int) (int, bool) {
	if ix.sparse != nil {
		cell, ok := ix.sparse[v]
		return cell, ok
	}
	off := v - ix.min
	if off < 0 || off >= len(ix.dense) || ix.dense[off] == 0 {
		return 0, false
	}
	return int(ix.dense[off]) - 1, true
}

// board is an immutable n×n grid stored row-major with its value index.
type board struct {
	n      int
	values []int
	total  int
	ix     index
}

func newBoard(g domain.Grid) board {
	n := len(g)
	b := board{n: n, values: make([]int, 0, n*n)}
	for _, row := range g {
		for _, v := range row {
			b.values = append(b.values, v)
			b.total += v
		}
	}
	b.ix = newIndex(b.values)
	return b
}

func (b *board) grid() domain.Grid {
	g := make(domain.Grid, b.n)
	for r := range g {
		g[r] = append([]int(nil), b.values[r*b.n:(r+1)*b.n]...)
	}
	return g
}
