package vmath

import "github.com/lixenwraith/rampage/core"

// Abs returns absolute value
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Sign returns -1, 0, or 1
func Sign(x int) int {
	if x < 0 {
		return -1
	}
	if x > 0 {
		return 1
	}
	return 0
}

// Manhattan returns |dx| + |dy|
func Manhattan(a, b core.Point) int {
	return Abs(a.X-b.X) + Abs(a.Y-b.Y)
}

// Chebyshev returns max(|dx|, |dy|)
func Chebyshev(a, b core.Point) int {
	return max(Abs(a.X-b.X), Abs(a.Y-b.Y))
}

// Clamp bounds v to [lo, hi]
func Clamp[T int | float64](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
