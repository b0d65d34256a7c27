// Package sonar counts depth increases in a sonar sweep.
package sonar

// Sweep is an ordered list of depth measurements.
type Sweep struct {
	depths []int
}

func New(depths []int) *Sweep {
	return &Sweep{depths: append([]int(nil), depths...)}
}

// Increases counts measurements larger than the one before.
func (s *Sweep) Increases() int { return s.WindowIncreases(1) }

// WindowIncreases counts sliding windows whose sum is larger than the
// previous window's sum. Two neighbouring windows share all but one value on
// each end, so only those two values are compared.
func (s *Sweep) WindowIncreases(window int) int {
	if window <= 0 || window >= len(s.depths) {
		return 0
	}
	n := 0
	for i := window; i < len(s.depths); i++ {
		if s.depths[i] > s.depths[i-window] {
			n++
		}
	}
	return n
}
