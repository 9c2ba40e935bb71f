package vmath

import "github.com/lixenwraith/rampage/core"

// AreaRandomPoint returns a random point within area using provided RNG
// X is drawn before Y
func AreaRandomPoint(a core.Area, rng Rand) core.Point {
	x := a.X
	y := a.Y
	if a.Width > 1 {
		x += rng.Intn(a.Width)
	}
	if a.Height > 1 {
		y += rng.Intn(a.Height)
	}
	return core.Point{X: x, Y: y}
}
