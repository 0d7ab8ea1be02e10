package advanced

import "math"

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

// Exact equality unless a tolerance is given. Slopes and intercepts are
// derived values, so exact comparison can miss lines that are parallel on
// paper.
func equalWithin(a, b, epsilon float64) bool {
	if epsilon <= 0 {
		return a == b
	}
	return math.Abs(a-b) <= epsilon
}
