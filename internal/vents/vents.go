// Package vents maps hydrothermal vent lines onto the ocean floor and counts
// the points where they overlap.
package vents

// Point is a floor coordinate.
type Point struct{ X, Y int }

// Segment runs from A to B inclusive.
type Segment struct{ A, B Point }

func (s Segment) straight() bool { return s.A.X == s.B.X || s.A.Y == s.B.Y }

func (s Segment) diagonal() bool { return abs(s.A.X-s.B.X) == abs(s.A.Y-s.B.Y) }

// points walks the segment one step at a time. Only straight and 45°
// segments are walkable.
func (s Segment) points(yield func(Point)) {
	dx, dy := sign(s.B.X-s.A.X), sign(s.B.Y-s.A.Y)
	p := s.A
	for {
		yield(p)
		if p == s.B {
			return
		}
		p.X += dx
		p.Y += dy
	}
}

// Floor counts vent coverage, with and without diagonal segments.
type Floor struct {
	straight map[Point]int
	all      map[Point]int
}

func New(segments []Segment) *Floor {
	f := &Floor{straight: map[Point]int{}, all: map[Point]int{}}
	for _, s := range segments {
		switch {
		case s.straight():
			s.points(func(p Point) {
				f.straight[p]++
				f.all[p]++
			})
		case s.diagonal():
			s.points(func(p Point) { f.all[p]++ })
		}
	}
	return f
}

// Overlaps counts points covered by at least two horizontal or vertical segments.
func (f *Floor) Overlaps() int { return overlaps(f.straight) }

// OverlapsDiagonal also counts 45° segments.
func (f *Floor) OverlapsDiagonal() int { return overlaps(f.all) }

// Coverage returns how many segments cover p.
func (f *Floor) Coverage(p Point, diagonal bool) int {
	if diagonal {
		return f.all[p]
	}
	return f.straight[p]
}

func overlaps(m map[Point]int) int {
	n := 0
	for _, c := range m {
		if c > 1 {
			n++
		}
	}
	return n
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}
